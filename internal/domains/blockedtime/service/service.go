package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"thorn/config"
	"thorn/infras/otel"
	"thorn/internal/domains/blockedtime/model"
	"thorn/internal/domains/blockedtime/model/dto"
	"thorn/internal/domains/blockedtime/repository"
	"thorn/shared"
	"thorn/shared/cache"
	"thorn/shared/clock"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
	"thorn/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetAllBlockedTime = "blocked_time:gets"

type BlockedTime interface {
	Create(ctx context.Context, req dto.CreateBlockedTimeRequest) (dto.BlockedTimeResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBlockedTimesResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.BlockedTime
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.BlockedTime, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) BlockedTime {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// validate enforces the block shape. Recurring blocks need a weekday, one-off
// blocks need a date, and timed blocks need an ordered start and end.
func validate(req dto.CreateBlockedTimeRequest) error {
	if req.RecurringWeekly {
		if req.RecurringDayOfWeek == nil {
			return failure.BadRequestFromString("recurring_day_of_week is required for recurring blocks") // nolint:wrapcheck
		}
	} else if req.Date == constant.Empty {
		return failure.BadRequestFromString("date is required for one-off blocks") // nolint:wrapcheck
	}

	if req.AllDay {
		return nil
	}

	if req.StartTime == nil || req.EndTime == nil {
		return failure.BadRequestFromString("start_time and end_time are required unless all_day is set") // nolint:wrapcheck
	}

	startMin, err := clock.ToMinutes(*req.StartTime)
	if err != nil {
		return failure.BadRequestFromString("start_time is not a valid time") // nolint:wrapcheck
	}

	endMin, err := clock.ToMinutes(*req.EndTime)
	if err != nil {
		return failure.BadRequestFromString("end_time is not a valid time") // nolint:wrapcheck
	}

	if startMin >= endMin {
		return failure.BadRequestFromString("start_time must be before end_time") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateBlockedTimeRequest) (res dto.BlockedTimeResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validate(req); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	blockedTime := req.ToModel(user)

	if err = s.repo.Insert(ctx, blockedTime); err != nil {
		log.Error().Err(err).Msg("failed to insert blocked time")

		return res, fmt.Errorf("failed to insert blocked time: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(blockedTime)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBlockedTimesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBlockedTime, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count blocked times")

		return res, fmt.Errorf("failed to count blocked times: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get blocked times")

		return res, fmt.Errorf("failed to get blocked times: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save blocked times to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	idFilter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, idFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if blocked time exists")

		return fmt.Errorf("failed to check if blocked time exists: %w", err)
	}

	if !exist {
		return failure.NotFound("blocked time not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, idFilter); err != nil {
		log.Error().Err(err).Msg("failed to delete blocked time")

		return fmt.Errorf("failed to delete blocked time: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBlockedTime)
	}()
}
