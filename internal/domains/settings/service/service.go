package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=./mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"
	"maps"
	"strconv"

	"thorn/config"
	"thorn/infras/otel"
	"thorn/infras/smtp"
	"thorn/internal/domains/settings/model"
	"thorn/internal/domains/settings/model/dto"
	"thorn/internal/domains/settings/repository"
	"thorn/shared"
	"thorn/shared/cache"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
	"thorn/shared/failure"
	gModel "thorn/shared/model"
	"thorn/shared/timezone"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	cacheSettings = "settings:all"

	maskedValue = "********"
)

type Settings interface {
	GetAll(ctx context.Context) (dto.GetSettingsResponse, error)
	Update(ctx context.Context, req dto.UpdateSettingsRequest) error
	Value(ctx context.Context, key string) string
	Bool(ctx context.Context, key string) bool
	Int(ctx context.Context, key string) int
	SMTP(ctx context.Context) (smtp.Settings, error)
}

type serviceImpl struct {
	repo  repository.Settings
	cfg   *config.Config
	cache cache.RedisCache
	otel  otel.Otel
}

func New(repo repository.Settings, cfg *config.Config, cache cache.RedisCache, otel otel.Otel) Settings {
	return &serviceImpl{
		repo:  repo,
		cfg:   cfg,
		cache: cache,
		otel:  otel,
	}
}

// resolved returns defaults overlaid with every stored row.
func (s *serviceImpl) resolved(ctx context.Context) (map[string]string, error) {
	values := map[string]string{}

	err := s.cache.Get(ctx, cacheSettings, &values)
	if err == nil {
		return values, nil
	}

	rows, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	values = maps.Clone(model.Defaults)

	for _, row := range rows {
		values[row.Key] = row.Value
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheSettings, values, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save settings to cache")
		}
	}()

	return values, nil
}

// GetAll returns every setting with secrets masked.
func (s *serviceImpl) GetAll(ctx context.Context) (res dto.GetSettingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	values, err := s.resolved(ctx)
	if err != nil {
		log.Error().Err(err).Msg("failed to resolve settings")

		return res, err
	}

	res.Settings = maps.Clone(values)

	if res.Settings[model.KeySMTPPassword] != constant.Empty {
		res.Settings[model.KeySMTPPassword] = maskedValue
	}

	return res, nil
}

// Update upserts the given keys. Unknown keys are rejected, and the masked
// password placeholder leaves the stored password untouched.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateSettingsRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	attempted := false

	// Invalidate even when an upsert fails partway through, since earlier
	// keys may already be persisted.
	defer func() {
		if !attempted {
			return
		}

		go func() {
			c := context.WithoutCancel(ctx)

			if err := s.cache.Delete(c, cacheSettings); err != nil {
				log.Error().Err(err).Msg("failed to invalidate settings cache")
			}
		}()
	}()

	for key, value := range req.Settings {
		if _, known := model.Defaults[key]; !known {
			return failure.BadRequestFromString(fmt.Sprintf("unknown setting: %s", key)) // nolint:wrapcheck
		}

		if key == model.KeySMTPPassword && value == maskedValue {
			continue
		}

		attempted = true

		if err = s.upsert(ctx, key, value, user); err != nil {
			return err
		}
	}

	return nil
}

func (s *serviceImpl) upsert(ctx context.Context, key, value, user string) error {
	keyFilter := shared.FilterByID(key, model.FieldKey, model.TableName)

	exists, err := s.repo.Exist(ctx, keyFilter)
	if err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to check if setting exists")

		return fmt.Errorf("failed to check if setting exists: %w", err)
	}

	if exists {
		updatedFields := map[string]any{
			model.FieldValue:         value,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err = s.repo.Update(ctx, updatedFields, keyFilter); err != nil {
			log.Error().Err(err).Str("key", key).Msg("failed to update setting")

			return fmt.Errorf("failed to update setting: %w", err)
		}

		return nil
	}

	setting := model.Setting{
		ID:    uuid.NewString(),
		Key:   key,
		Value: value,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}

	if err = s.repo.Insert(ctx, setting); err != nil {
		log.Error().Err(err).Str("key", key).Msg("failed to insert setting")

		return fmt.Errorf("failed to insert setting: %w", err)
	}

	return nil
}

// Value returns the resolved value for a key, or the default when lookups fail.
func (s *serviceImpl) Value(ctx context.Context, key string) string {
	values, err := s.resolved(ctx)
	if err != nil {
		log.Warn().Err(err).Str("key", key).Msg("falling back to default setting value")

		return model.Defaults[key]
	}

	return values[key]
}

func (s *serviceImpl) Bool(ctx context.Context, key string) bool {
	value, err := strconv.ParseBool(s.Value(ctx, key))
	if err != nil {
		return false
	}

	return value
}

func (s *serviceImpl) Int(ctx context.Context, key string) int {
	value, err := strconv.Atoi(s.Value(ctx, key))
	if err != nil {
		return 0
	}

	return value
}

// SMTP assembles the mail connection settings from the stored rows.
func (s *serviceImpl) SMTP(ctx context.Context) (smtp.Settings, error) {
	values, err := s.resolved(ctx)
	if err != nil {
		return smtp.Settings{}, err
	}

	if values[model.KeySMTPHost] == constant.Empty {
		return smtp.Settings{}, failure.BadRequestFromString("smtp host is not configured") // nolint:wrapcheck
	}

	port, err := strconv.Atoi(values[model.KeySMTPPort])
	if err != nil {
		return smtp.Settings{}, failure.BadRequestFromString("smtp port is not a number") // nolint:wrapcheck
	}

	useTLS, _ := strconv.ParseBool(values[model.KeySMTPUseTLS])

	return smtp.Settings{
		Host:     values[model.KeySMTPHost],
		Port:     port,
		Username: values[model.KeySMTPUsername],
		Password: values[model.KeySMTPPassword],
		UseTLS:   useTLS,
		FromName: values[model.KeyBusinessName],
	}, nil
}
