package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"thorn/config"
	"thorn/infras/otel/mocks"
	s3Mocks "thorn/infras/s3/mocks"
	categoryMocks "thorn/internal/domains/category/mocks"
	categoryModel "thorn/internal/domains/category/model"
	catalogMocks "thorn/internal/domains/catalog/mocks"
	"thorn/internal/domains/catalog/model"
	"thorn/internal/domains/catalog/model/dto"
	"thorn/internal/domains/catalog/service"
	settingsModel "thorn/internal/domains/settings/model"
	settingsServiceMocks "thorn/internal/domains/settings/service/mocks"
	cacheMocks "thorn/shared/cache/mocks"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
)

type fixture struct {
	repo     *catalogMocks.MockCatalog
	category *categoryMocks.MockCategory
	settings *settingsServiceMocks.MockSettings
	cache    *cacheMocks.MockRedisCache
	s3       *s3Mocks.MockS3
	cfg      *config.Config
	svc      service.Catalog
}

func newFixture(ctrl *gomock.Controller) *fixture {
	f := &fixture{
		repo:     catalogMocks.NewMockCatalog(ctrl),
		category: categoryMocks.NewMockCategory(ctrl),
		settings: settingsServiceMocks.NewMockSettings(ctrl),
		cache:    cacheMocks.NewMockRedisCache(ctrl),
		s3:       s3Mocks.NewMockS3(ctrl),
		cfg:      &config.Config{},
	}

	f.cfg.Cache.TTL = 3600

	f.svc = service.New(f.repo, f.category, f.settings, f.cfg, f.cache, f.s3, mocks.NewOtel())

	f.cache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	f.cache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	return f
}

func strPtr(value string) *string {
	return &value
}

func TestCatalogService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateServiceRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "service without category",
			req: dto.CreateServiceRequest{
				Name:            "Septum Piercing",
				DurationMinutes: 45,
				Price:           60,
			},
			setupMock: func() {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "service with an existing category",
			req: dto.CreateServiceRequest{
				CategoryID:      strPtr("cat-1"),
				Name:            "Septum Piercing",
				DurationMinutes: 45,
			},
			setupMock: func() {
				f.category.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown category is rejected",
			req: dto.CreateServiceRequest{
				CategoryID:      strPtr("missing-cat"),
				Name:            "Septum Piercing",
				DurationMinutes: 45,
			},
			setupMock: func() {
				f.category.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateServiceRequest{
				Name:            "Septum Piercing",
				DurationMinutes: 45,
			},
			setupMock: func() {
				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := f.svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogService_PublicCatalog(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	f.category.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]categoryModel.Category{
			{ID: "cat-1", Name: "Piercings", Active: true},
			{ID: "cat-2", Name: "Empty Category", Active: true},
		}, nil)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Service{
			{ID: "svc-1", CategoryID: strPtr("cat-1"), Name: "Septum Piercing", DurationMinutes: 45, Price: 60, Active: true},
			{ID: "svc-2", Name: "Jewellery Consultation", DurationMinutes: 15, Active: true},
		}, nil)

	f.settings.EXPECT().
		Value(gomock.Any(), settingsModel.KeyBusinessName).
		Return("The Studio")

	f.settings.EXPECT().
		Value(gomock.Any(), settingsModel.KeyBusinessPhone).
		Return("0123456789")

	res, err := f.svc.PublicCatalog(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "The Studio", res.BusinessName)
	assert.Equal(t, "0123456789", res.BusinessPhone)

	// empty categories are dropped, uncategorized services trail in "Other"
	assert.Len(t, res.Categories, 2)
	assert.Equal(t, "Piercings", res.Categories[0].Name)
	assert.Equal(t, "Septum Piercing", res.Categories[0].Services[0].Name)
	assert.Equal(t, "Other", res.Categories[1].Name)
	assert.Equal(t, "Jewellery Consultation", res.Categories[1].Services[0].Name)
}

func TestCatalogService_ImportPreview(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	tests := []struct {
		name       string
		data       []byte
		wantErr    bool
		wantValid  int
		wantBroken int
	}{
		{
			name:      "sample file parses clean",
			data:      service.SampleCSV(),
			wantValid: 3,
		},
		{
			name: "mixed rows are counted per line",
			data: []byte("category,name,duration_minutes,price,description\n" +
				"Piercings,Lobe Piercing,30,45.00,\n" +
				"Piercings,,30,45.00,\n" +
				"Piercings,Nostril Piercing,abc,45.00,\n" +
				"Piercings,Septum Piercing,45,-5,\n"),
			wantValid:  1,
			wantBroken: 3,
		},
		{
			name:       "short rows are flagged",
			data:       []byte("category,name,duration_minutes,price,description\nPiercings,Lobe Piercing\n"),
			wantBroken: 1,
		},
		{
			name:    "unexpected header",
			data:    []byte("foo,bar\n1,2\n"),
			wantErr: true,
		},
		{
			name:    "empty file",
			data:    []byte(""),
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.svc.ImportPreview(context.Background(), tt.data)

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.wantValid, res.ValidCount)
			assert.Equal(t, tt.wantBroken, res.ErrorCount)
		})
	}
}

func TestCatalogService_ImportConfirm(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	validCSV := []byte("category,name,duration_minutes,price,description\n" +
		"Piercings,Lobe Piercing,30,45.00,Jewellery included\n" +
		"Unknown Category,Septum Piercing,45,60.00,\n" +
		"Piercings,,30,45.00,\n")

	t.Run("imports valid rows and resolves categories", func(t *testing.T) {
		f := newFixture(ctrl)

		f.category.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]categoryModel.Category{{ID: "cat-1", Name: "Piercings"}}, nil)

		f.repo.EXPECT().
			InsertBulk(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, services []model.Service) error {
				assert.Len(t, services, 2)
				assert.Equal(t, "cat-1", *services[0].CategoryID)
				assert.Nil(t, services[1].CategoryID)
				assert.True(t, services[0].Active)

				return nil
			})

		ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
		res, err := f.svc.ImportConfirm(ctx, validCSV, "services.csv")

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Imported)
		assert.Empty(t, res.ArchiveURL)
	})

	t.Run("archives the file when a bucket is configured", func(t *testing.T) {
		f := newFixture(ctrl)
		f.cfg.External.S3.BucketName = "imports-bucket"
		f.cfg.External.S3.ImportDirectory = "imports"

		f.category.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]categoryModel.Category{}, nil)

		f.repo.EXPECT().
			InsertBulk(gomock.Any(), gomock.Any()).
			Return(nil)

		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), "imports", gomock.Any(), constant.ContentTypeCSV, gomock.Any()).
			Return("https://bucket.example.com/imports/services.csv", nil)

		res, err := f.svc.ImportConfirm(context.Background(), validCSV, "services.csv")

		assert.NoError(t, err)
		assert.Equal(t, "https://bucket.example.com/imports/services.csv", res.ArchiveURL)
	})

	t.Run("archive failure does not fail the import", func(t *testing.T) {
		f := newFixture(ctrl)
		f.cfg.External.S3.BucketName = "imports-bucket"

		f.category.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]categoryModel.Category{}, nil)

		f.repo.EXPECT().
			InsertBulk(gomock.Any(), gomock.Any()).
			Return(nil)

		f.s3.EXPECT().
			UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return("", errors.New("upload failed"))

		res, err := f.svc.ImportConfirm(context.Background(), validCSV, "services.csv")

		assert.NoError(t, err)
		assert.Equal(t, 2, res.Imported)
		assert.Empty(t, res.ArchiveURL)
	})

	t.Run("no valid rows", func(t *testing.T) {
		f := newFixture(ctrl)

		f.category.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]categoryModel.Category{}, nil)

		onlyBroken := []byte("category,name,duration_minutes,price,description\nPiercings,,30,45.00,\n")

		_, err := f.svc.ImportConfirm(context.Background(), onlyBroken, "services.csv")

		assert.Error(t, err)
	})

	t.Run("bulk insert error", func(t *testing.T) {
		f := newFixture(ctrl)

		f.category.EXPECT().
			GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
			Return([]categoryModel.Category{}, nil)

		f.repo.EXPECT().
			InsertBulk(gomock.Any(), gomock.Any()).
			Return(errors.New("database error"))

		_, err := f.svc.ImportConfirm(context.Background(), validCSV, "services.csv")

		assert.Error(t, err)
	})
}

func TestCatalogService_Reorder(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	tests := []struct {
		name      string
		req       dto.ReorderServicesRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "positions follow the given order",
			req:  dto.ReorderServicesRequest{IDs: []string{"svc-2", "svc-1"}},
			setupMock: func() {
				positions := map[string]int{}

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, filter gDto.FilterGroup) error {
						id := filter.Filters[0].(gDto.Filter).Value.(string)
						positions[id] = fields[model.FieldDisplayOrder].(int)

						if len(positions) == 2 {
							assert.Equal(t, 0, positions["svc-2"])
							assert.Equal(t, 1, positions["svc-1"])
						}

						return nil
					}).
					Times(2)
			},
			wantErr: false,
		},
		{
			name: "update failure aborts the reorder",
			req:  dto.ReorderServicesRequest{IDs: []string{"svc-1", "svc-2"}},
			setupMock: func() {
				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := f.svc.Reorder(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	durationPtr := func(value int) *int {
		return &value
	}

	tests := []struct {
		name      string
		req       dto.UpdateServiceRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateServiceRequest{DurationMinutes: durationPtr(60)},
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateServiceRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "service not found",
			req:  dto.UpdateServiceRequest{DurationMinutes: durationPtr(60)},
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "new category does not exist",
			req:  dto.UpdateServiceRequest{CategoryID: strPtr("missing-cat")},
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.category.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := f.svc.Update(ctx, tt.req, "svc-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCatalogService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				f.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "service not found",
			setupMock: func() {
				f.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := f.svc.Delete(context.Background(), "svc-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
