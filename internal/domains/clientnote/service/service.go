package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"strings"

	"thorn/config"
	"thorn/infras/otel"
	"thorn/internal/domains/clientnote/model"
	"thorn/internal/domains/clientnote/model/dto"
	"thorn/internal/domains/clientnote/repository"
	"thorn/shared"
	"thorn/shared/cache"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
	"thorn/shared/failure"

	"github.com/rs/zerolog/log"
)

const cacheGetAllClientNote = "client_note:gets"

type ClientNote interface {
	Create(ctx context.Context, req dto.CreateClientNoteRequest) (dto.ClientNoteResponse, error)
	GetAll(ctx context.Context, req gDto.QueryParams, clientEmail string) (dto.GetClientNotesResponse, error)
	Get(ctx context.Context, id string) (dto.ClientNoteResponse, error)
	Update(ctx context.Context, req dto.UpdateClientNoteRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo  repository.ClientNote
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.ClientNote, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) ClientNote {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateClientNoteRequest) (res dto.ClientNoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	note := req.ToModel(user)

	if err = s.repo.Insert(ctx, note); err != nil {
		log.Error().Err(err).Msg("failed to insert client note")

		return res, fmt.Errorf("failed to insert client note: %w", err)
	}

	s.invalidate(ctx)

	res.FromModel(note)

	return res, nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, clientEmail string) (res dto.GetClientNotesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := gDto.FilterGroup{}
	if clientEmail != constant.Empty {
		filter = shared.FilterByID(strings.ToLower(clientEmail), model.FieldClientEmail, model.TableName)
	}

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllClientNote, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count client notes")

		return res, fmt.Errorf("failed to count client notes: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get client notes")

		return res, fmt.Errorf("failed to get client notes: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save client notes to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ClientNoteResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	note, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get client note")

		return res, fmt.Errorf("failed to get client note: %w", err)
	}

	if note.ID == constant.Empty {
		return res, failure.NotFound("client note not found") // nolint:wrapcheck
	}

	res.FromModel(note)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateClientNoteRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateClientNoteRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	idFilter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, idFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if client note exists")

		return fmt.Errorf("failed to check if client note exists: %w", err)
	}

	if !exist {
		return failure.NotFound("client note not found") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, idFilter); err != nil {
		log.Error().Err(err).Msg("failed to update client note")

		return fmt.Errorf("failed to update client note: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	idFilter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, idFilter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if client note exists")

		return fmt.Errorf("failed to check if client note exists: %w", err)
	}

	if !exist {
		return failure.NotFound("client note not found") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, idFilter); err != nil {
		log.Error().Err(err).Msg("failed to delete client note")

		return fmt.Errorf("failed to delete client note: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllClientNote)
	}()
}
