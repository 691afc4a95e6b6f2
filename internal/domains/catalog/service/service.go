package service

import (
	"context"
	"fmt"

	"thorn/config"
	"thorn/infras/otel"
	"thorn/infras/s3"
	categoryModel "thorn/internal/domains/category/model"
	categoryRepo "thorn/internal/domains/category/repository"
	"thorn/internal/domains/catalog/model"
	"thorn/internal/domains/catalog/model/dto"
	"thorn/internal/domains/catalog/repository"
	settingsModel "thorn/internal/domains/settings/model"
	settingsService "thorn/internal/domains/settings/service"
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
	cacheGetService    = "service:get"
	cacheGetAllService = "service:gets"
	cachePublicCatalog = "catalog:public"
)

type Catalog interface {
	Create(ctx context.Context, req dto.CreateServiceRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetServicesResponse, error)
	Get(ctx context.Context, id string) (dto.ServiceResponse, error)
	Update(ctx context.Context, req dto.UpdateServiceRequest, id string) error
	Reorder(ctx context.Context, req dto.ReorderServicesRequest) error
	Delete(ctx context.Context, id string) error
	PublicCatalog(ctx context.Context) (dto.PublicCatalogResponse, error)
	ImportPreview(ctx context.Context, data []byte) (dto.ImportPreviewResponse, error)
	ImportConfirm(ctx context.Context, data []byte, fileName string) (dto.ImportConfirmResponse, error)
}

type serviceImpl struct {
	repo         repository.Catalog
	categoryRepo categoryRepo.Category
	settings     settingsService.Settings
	cfg          *config.Config
	cache        cache.RedisCache
	s3           s3.S3
	otel         otel.Otel
}

func New(
	repo repository.Catalog,
	categoryRepo categoryRepo.Category,
	settings settingsService.Settings,
	cfg *config.Config,
	cache cache.RedisCache,
	s3Client s3.S3,
	otel otel.Otel,
) Catalog {
	return &serviceImpl{
		repo:         repo,
		categoryRepo: categoryRepo,
		settings:     settings,
		cfg:          cfg,
		cache:        cache,
		s3:           s3Client,
		otel:         otel,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateServiceRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if req.CategoryID != nil {
		exists, err := s.categoryRepo.Exist(ctx, shared.FilterByID(*req.CategoryID, categoryModel.FieldID, categoryModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if category exists")

			return fmt.Errorf("failed to check if category exists: %w", err)
		}

		if !exists {
			return failure.BadRequestFromString("category does not exist") // nolint:wrapcheck
		}
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create service")

		return fmt.Errorf("failed to create service: %w", err)
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetServicesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllService, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for services")

		return res, nil
	}

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count services")

		return res, fmt.Errorf("failed to count services: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get services")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save services to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ServiceResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetService, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	service, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get service")

		return res, fmt.Errorf("failed to get service: %w", err)
	}

	if service.ID == constant.Empty {
		return res, failure.NotFound("service not found") // nolint:wrapcheck
	}

	res.FromModel(service)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save service to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateServiceRequest, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()

	if req == (dto.UpdateServiceRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service exists")

		return fmt.Errorf("failed to check if service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service not found") // nolint:wrapcheck
	}

	if req.CategoryID != nil && *req.CategoryID != constant.Empty {
		exists, err := s.categoryRepo.Exist(ctx, shared.FilterByID(*req.CategoryID, categoryModel.FieldID, categoryModel.TableName))
		if err != nil {
			log.Error().Err(err).Msg("failed to check if category exists")

			return fmt.Errorf("failed to check if category exists: %w", err)
		}

		if !exists {
			return failure.BadRequestFromString("category does not exist") // nolint:wrapcheck
		}
	}

	updatedFields := shared.TransformFields(req, user)
	if err := s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update service")

		return fmt.Errorf("failed to update service: %w", err)
	}

	s.invalidate(ctx)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetService, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete service from cache")
		}
	}()

	return nil
}

// Reorder rewrites display_order to match the given ID ordering.
func (s *serviceImpl) Reorder(ctx context.Context, req dto.ReorderServicesRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reorder")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	for position, id := range req.IDs {
		updatedFields := map[string]any{
			model.FieldDisplayOrder:  position,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("id", id).Msg("failed to reorder service")

			return fmt.Errorf("failed to reorder service: %w", err)
		}
	}

	s.invalidate(ctx)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) error {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if service exists")

		return fmt.Errorf("failed to check if service exists: %w", err)
	}

	if !exist {
		return failure.NotFound("service not found") // nolint:wrapcheck
	}

	if err := s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to delete service")

		return fmt.Errorf("failed to delete service: %w", err)
	}

	s.invalidate(ctx)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetService, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete service from cache")
		}
	}()

	return nil
}

// PublicCatalog assembles the booking page payload: active categories with
// their active services plus the public business details.
func (s *serviceImpl) PublicCatalog(ctx context.Context) (res dto.PublicCatalogResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".PublicCatalog")
	defer scope.End()
	defer scope.TraceIfError(err)

	err = s.cache.Get(ctx, cachePublicCatalog, &res)
	if err == nil {
		return res, nil
	}

	activeFilter := func(table, field string) gDto.FilterGroup {
		return gDto.FilterGroup{
			Filters: []any{
				gDto.Filter{
					Field:    field,
					Operator: gDto.FilterOperatorEq,
					Value:    true,
					Table:    table,
				},
			},
		}
	}

	ordering := gDto.QueryParams{SortBy: model.FieldDisplayOrder, SortDir: gDto.SortDirAsc}

	categories, err := s.categoryRepo.GetAll(ctx, ordering, activeFilter(categoryModel.TableName, categoryModel.FieldActive))
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories for public catalog")

		return res, fmt.Errorf("failed to get categories: %w", err)
	}

	services, err := s.repo.GetAll(ctx, ordering, activeFilter(model.TableName, model.FieldActive))
	if err != nil {
		log.Error().Err(err).Msg("failed to get services for public catalog")

		return res, fmt.Errorf("failed to get services: %w", err)
	}

	res.FromModels(categories, services)
	res.BusinessName = s.settings.Value(ctx, settingsModel.KeyBusinessName)
	res.BusinessPhone = s.settings.Value(ctx, settingsModel.KeyBusinessPhone)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cachePublicCatalog, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save public catalog to cache")
		}
	}()

	return res, nil
}

// ImportPreview parses the uploaded CSV and reports per-row validity without
// touching the database.
func (s *serviceImpl) ImportPreview(ctx context.Context, data []byte) (res dto.ImportPreviewResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ImportPreview")
	defer scope.End()
	defer scope.TraceIfError(err)

	rows, err := parseImportCSV(data)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	res.Rows = rows

	for _, row := range rows {
		if len(row.Errors) == 0 {
			res.ValidCount++
		} else {
			res.ErrorCount++
		}
	}

	return res, nil
}

// ImportConfirm inserts every valid CSV row, resolving category names against
// existing categories, and archives the original file.
func (s *serviceImpl) ImportConfirm(ctx context.Context, data []byte, fileName string) (res dto.ImportConfirmResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ImportConfirm")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	rows, err := parseImportCSV(data)
	if err != nil {
		return res, failure.BadRequest(err) // nolint:wrapcheck
	}

	categories, err := s.categoryRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get categories for import")

		return res, fmt.Errorf("failed to get categories: %w", err)
	}

	categoryIDByName := map[string]string{}
	for _, cat := range categories {
		categoryIDByName[cat.Name] = cat.ID
	}

	services := []model.Service{}

	for _, row := range rows {
		if len(row.Errors) > 0 {
			continue
		}

		var categoryID *string
		if id, ok := categoryIDByName[row.CategoryName]; ok {
			categoryID = &id
		}

		services = append(services, model.Service{
			ID:              uuid.NewString(),
			CategoryID:      categoryID,
			Name:            row.Name,
			DurationMinutes: row.DurationMinutes,
			Price:           row.Price,
			Description:     row.Description,
			Active:          true,
			Metadata: gModel.Metadata{
				CreatedAt:  timezone.Now(),
				ModifiedAt: timezone.Now(),
				CreatedBy:  user,
				ModifiedBy: user,
			},
		})
	}

	if len(services) == 0 {
		return res, failure.BadRequestFromString("no valid rows to import") // nolint:wrapcheck
	}

	if err = s.repo.InsertBulk(ctx, services); err != nil {
		log.Error().Err(err).Msg("failed to import services")

		return res, fmt.Errorf("failed to import services: %w", err)
	}

	res.Imported = len(services)
	res.ArchiveURL = s.archiveImport(ctx, data, fileName)

	s.invalidate(ctx)

	return res, nil
}

func (s *serviceImpl) archiveImport(ctx context.Context, data []byte, fileName string) string {
	if s.cfg.External.S3.BucketName == constant.Empty {
		return constant.Empty
	}

	objectName := fmt.Sprintf("%d-%s", timezone.Now().Unix(), fileName)

	url, err := s.s3.UploadFileBytes(ctx, constant.Empty, s.cfg.External.S3.ImportDirectory, objectName, constant.ContentTypeCSV, data)
	if err != nil {
		log.Warn().Err(err).Str("file", fileName).Msg("failed to archive import file")

		return constant.Empty
	}

	return url
}

func (s *serviceImpl) invalidate(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllService)

		if err := s.cache.Delete(c, cachePublicCatalog); err != nil {
			log.Error().Err(err).Msg("failed to delete public catalog cache")
		}
	}()
}
