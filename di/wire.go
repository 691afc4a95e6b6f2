//go:build wireinject
// +build wireinject

package di

import (
	"thorn/config"
	"thorn/infras/jwt"
	"thorn/infras/kafka"
	"thorn/infras/otel"
	"thorn/infras/postgres"
	"thorn/infras/redis"
	"thorn/infras/s3"
	"thorn/infras/smtp"
	"thorn/internal/scheduler"
	"thorn/permissions"
	"thorn/shared/cache"
	"thorn/transport/http"
	"thorn/transport/http/middleware"
	"thorn/transport/http/router"

	availabilityRepository "thorn/internal/domains/availability/repository"
	availabilityService "thorn/internal/domains/availability/service"
	authService "thorn/internal/domains/auth/service"
	blockedtimeRepository "thorn/internal/domains/blockedtime/repository"
	blockedtimeService "thorn/internal/domains/blockedtime/service"
	bookingRepository "thorn/internal/domains/booking/repository"
	bookingService "thorn/internal/domains/booking/service"
	catalogRepository "thorn/internal/domains/catalog/repository"
	catalogService "thorn/internal/domains/catalog/service"
	categoryRepository "thorn/internal/domains/category/repository"
	categoryService "thorn/internal/domains/category/service"
	clientnoteRepository "thorn/internal/domains/clientnote/repository"
	clientnoteService "thorn/internal/domains/clientnote/service"
	notificationService "thorn/internal/domains/notification/service"
	settingsRepository "thorn/internal/domains/settings/repository"
	settingsService "thorn/internal/domains/settings/service"
	userRepository "thorn/internal/domains/user/repository"
	userService "thorn/internal/domains/user/service"

	authHandler "thorn/internal/handlers/auth"
	availabilityHandler "thorn/internal/handlers/availability"
	blockedtimeHandler "thorn/internal/handlers/blockedtime"
	bookingHandler "thorn/internal/handlers/booking"
	catalogHandler "thorn/internal/handlers/catalog"
	categoryHandler "thorn/internal/handlers/category"
	clientnoteHandler "thorn/internal/handlers/clientnote"
	settingsHandler "thorn/internal/handlers/settings"
	staffHandler "thorn/internal/handlers/staff"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
	smtp.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
	userService.New,
)

var settingsDomain = wire.NewSet(
	settingsRepository.New,
	settingsService.New,
	notificationService.New,
)

var catalogDomain = wire.NewSet(
	categoryRepository.New,
	categoryService.New,
	catalogRepository.New,
	catalogService.New,
)

var calendarDomain = wire.NewSet(
	availabilityRepository.New,
	availabilityService.New,
	blockedtimeRepository.New,
	blockedtimeService.New,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	bookingService.New,
	clientnoteRepository.New,
	clientnoteService.New,
)

var domains = wire.NewSet(
	authDomain,
	settingsDomain,
	catalogDomain,
	calendarDomain,
	bookingDomain,
	scheduler.New,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	bookingHandler.New,
	categoryHandler.New,
	catalogHandler.New,
	availabilityHandler.New,
	blockedtimeHandler.New,
	settingsHandler.New,
	clientnoteHandler.New,
	staffHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
