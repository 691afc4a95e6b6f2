package router

import (
	"thorn/internal/handlers/auth"
	"thorn/internal/handlers/availability"
	"thorn/internal/handlers/blockedtime"
	"thorn/internal/handlers/booking"
	"thorn/internal/handlers/catalog"
	"thorn/internal/handlers/category"
	"thorn/internal/handlers/clientnote"
	"thorn/internal/handlers/settings"
	"thorn/internal/handlers/staff"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Booking      booking.Handler
	Category     category.Handler
	Catalog      catalog.Handler
	Availability availability.Handler
	BlockedTime  blockedtime.Handler
	Settings     settings.Handler
	ClientNote   clientnote.Handler
	Staff        staff.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Booking.PublicRouter(routerGroup)

		routerGroup.Route("/admin", func(adminGroup chi.Router) {
			r.DomainHandlers.Auth.Router(adminGroup)
			r.DomainHandlers.Booking.Router(adminGroup)
			r.DomainHandlers.Category.Router(adminGroup)
			r.DomainHandlers.Catalog.Router(adminGroup)
			r.DomainHandlers.Availability.Router(adminGroup)
			r.DomainHandlers.BlockedTime.Router(adminGroup)
			r.DomainHandlers.Settings.Router(adminGroup)
			r.DomainHandlers.ClientNote.Router(adminGroup)
			r.DomainHandlers.Staff.Router(adminGroup)
		})
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
