package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"thorn/config"
	"thorn/infras/otel"
	"thorn/internal/domains/availability/model"
	"thorn/internal/domains/availability/model/dto"
	"thorn/internal/domains/availability/repository"
	"thorn/shared"
	"thorn/shared/cache"
	"thorn/shared/clock"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
	"thorn/shared/failure"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetAvailability    = "availability:get"
	cacheGetAllAvailability = "availability:gets"
)

type Availability interface {
	Create(ctx context.Context, req dto.CreateAvailabilityRequest) (dto.AvailabilityResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAvailabilitiesResponse, error)
	Get(ctx context.Context, id string) (dto.AvailabilityResponse, error)
	Update(ctx context.Context, req dto.UpdateAvailabilityRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.Availability
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Availability, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Availability {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// validateWindow rejects windows where the start does not come before the end.
func validateWindow(start, end string) error {
	startMin, err := clock.ToMinutes(start)
	if err != nil {
		return failure.BadRequestFromString("start_time is not a valid time") // nolint:wrapcheck
	}

	endMin, err := clock.ToMinutes(end)
	if err != nil {
		return failure.BadRequestFromString("end_time is not a valid time") // nolint:wrapcheck
	}

	if startMin >= endMin {
		return failure.BadRequestFromString("start_time must be before end_time") // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAvailabilityRequest) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	if err = validateWindow(req.StartTime, req.EndTime); err != nil {
		return res, err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	availability := req.ToModel(user)

	if err = s.repo.Insert(ctx, availability); err != nil {
		log.Error().Err(err).Msg("failed to insert availability")

		return res, fmt.Errorf("failed to insert availability: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(availability)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAvailabilitiesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAvailability, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count availabilities")

		return res, fmt.Errorf("failed to count availabilities: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availabilities")

		return res, fmt.Errorf("failed to get availabilities: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availabilities to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AvailabilityResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAvailability, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	availability, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability")

		return res, fmt.Errorf("failed to get availability: %w", err)
	}

	if availability.ID == constant.Empty {
		return res, failure.NotFound("availability not found") // nolint:wrapcheck
	}

	res.FromModel(availability)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save availability to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAvailabilityRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateAvailabilityRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	idFilter := shared.FilterByID(id, model.FieldID, model.TableName)

	availability, err := s.repo.Get(ctx, idFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get availability")

		return fmt.Errorf("failed to get availability: %w", err)
	}

	if availability.ID == constant.Empty {
		return failure.NotFound("availability not found") // nolint:wrapcheck
	}

	start := availability.StartTime
	if req.StartTime != constant.Empty {
		start = req.StartTime
	}

	end := availability.EndTime
	if req.EndTime != constant.Empty {
		end = req.EndTime
	}

	if err = validateWindow(start, end); err != nil {
		return err
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, idFilter); err != nil {
		log.Error().Err(err).Msg("failed to update availability")

		return fmt.Errorf("failed to update availability: %w", err)
	}

	s.invalidate(ctx, shared.BuildCacheKey(cacheGetAvailability, id))

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	idFilter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, idFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if availability exists")

		return fmt.Errorf("failed to check if availability exists: %w", err)
	}

	if !exist {
		return failure.NotFound("availability not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, idFilter); err != nil {
		log.Error().Err(err).Msg("failed to delete availability")

		return fmt.Errorf("failed to delete availability: %w", err)
	}

	s.invalidate(ctx, shared.BuildCacheKey(cacheGetAvailability, id))

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context, keys ...string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAvailability)

		for _, key := range keys {
			if err := s.cache.Delete(c, key); err != nil {
				log.Error().Err(err).Msg("failed to delete availability from cache")
			}
		}
	}()
}
