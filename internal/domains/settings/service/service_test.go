package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"thorn/config"
	"thorn/infras/otel/mocks"
	settingsMocks "thorn/internal/domains/settings/mocks"
	"thorn/internal/domains/settings/model"
	"thorn/internal/domains/settings/model/dto"
	"thorn/internal/domains/settings/service"
	cacheMocks "thorn/shared/cache/mocks"
	"thorn/shared/constant"
)

func newService(ctrl *gomock.Controller) (service.Settings, *settingsMocks.MockSettings, *cacheMocks.MockRedisCache) {
	mockRepo := settingsMocks.NewMockSettings(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	return svc, mockRepo, mockCache
}

func cacheMiss(mockCache *cacheMocks.MockRedisCache) {
	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()
}

func TestSettingsService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newService(ctrl)

	cacheMiss(mockCache)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Setting{
			{ID: "row-1", Key: model.KeyBusinessName, Value: "Thorn & Needle"},
			{ID: "row-2", Key: model.KeySMTPPassword, Value: "secret"},
		}, nil)

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, "Thorn & Needle", res.Settings[model.KeyBusinessName])
	assert.NotEqual(t, "secret", res.Settings[model.KeySMTPPassword])
	// unset keys fall back to defaults
	assert.Equal(t, model.Defaults[model.KeySMTPPort], res.Settings[model.KeySMTPPort])
}

func TestSettingsService_GetAll_EmptyPasswordStaysEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newService(ctrl)

	cacheMiss(mockCache)

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Setting{}, nil)

	res, err := svc.GetAll(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, constant.Empty, res.Settings[model.KeySMTPPassword])
}

func TestSettingsService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newService(ctrl)

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	tests := []struct {
		name      string
		req       dto.UpdateSettingsRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "updates an existing row",
			req: dto.UpdateSettingsRequest{
				Settings: map[string]string{model.KeyBusinessName: "Thorn & Needle"},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "inserts a missing row",
			req: dto.UpdateSettingsRequest{
				Settings: map[string]string{model.KeySMTPHost: "smtp.example.com"},
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "unknown key is rejected",
			req: dto.UpdateSettingsRequest{
				Settings: map[string]string{"nonsense_key": "value"},
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "masked password placeholder is skipped",
			req: dto.UpdateSettingsRequest{
				Settings: map[string]string{model.KeySMTPPassword: "********"},
			},
			setupMock: func() {},
			wantErr:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSettingsService_Update_InvalidatesCacheAfterFailedWrite(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newService(ctrl)

	mockRepo.EXPECT().
		Exist(gomock.Any(), gomock.Any()).
		Return(false, errors.New("connection reset"))

	invalidated := make(chan struct{})

	mockCache.EXPECT().
		Delete(gomock.Any(), gomock.Any()).
		DoAndReturn(func(context.Context, string) error {
			close(invalidated)

			return nil
		})

	ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
	err := svc.Update(ctx, dto.UpdateSettingsRequest{
		Settings: map[string]string{model.KeyBusinessName: "Thorn & Needle"},
	})

	assert.Error(t, err)

	select {
	case <-invalidated:
	case <-time.After(time.Second):
		t.Fatal("settings cache was not invalidated after a failed update")
	}
}

func TestSettingsService_TypedAccessors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newService(ctrl)

	rows := []model.Setting{
		{ID: "row-1", Key: model.KeyEmailEnabled, Value: "true"},
		{ID: "row-2", Key: model.KeyReminderHoursBefore, Value: "48"},
		{ID: "row-3", Key: model.KeyBusinessName, Value: "Thorn & Needle"},
	}

	mockCache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss")).
		AnyTimes()

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockRepo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(rows, nil).
		AnyTimes()

	ctx := context.Background()

	assert.Equal(t, "Thorn & Needle", svc.Value(ctx, model.KeyBusinessName))
	assert.True(t, svc.Bool(ctx, model.KeyEmailEnabled))
	assert.Equal(t, 48, svc.Int(ctx, model.KeyReminderHoursBefore))
	// defaults apply to unset keys
	assert.False(t, svc.Bool(ctx, model.KeySendFollowupEmail))
	assert.Equal(t, 0, svc.Int(ctx, model.KeyBusinessPhone))
}

func TestSettingsService_SMTP(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newService(ctrl)

	tests := []struct {
		name    string
		rows    []model.Setting
		wantErr bool
	}{
		{
			name: "complete settings",
			rows: []model.Setting{
				{ID: "row-1", Key: model.KeySMTPHost, Value: "smtp.example.com"},
				{ID: "row-2", Key: model.KeySMTPPort, Value: "465"},
				{ID: "row-3", Key: model.KeySMTPUsername, Value: "mailer@example.com"},
				{ID: "row-4", Key: model.KeySMTPPassword, Value: "secret"},
				{ID: "row-5", Key: model.KeySMTPUseTLS, Value: "true"},
			},
			wantErr: false,
		},
		{
			name:    "missing host",
			rows:    []model.Setting{},
			wantErr: true,
		},
		{
			name: "port is not a number",
			rows: []model.Setting{
				{ID: "row-1", Key: model.KeySMTPHost, Value: "smtp.example.com"},
				{ID: "row-2", Key: model.KeySMTPPort, Value: "not-a-port"},
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cacheMiss(mockCache)

			mockRepo.EXPECT().
				GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
				Return(tt.rows, nil)

			settings, err := svc.SMTP(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "smtp.example.com", settings.Host)
				assert.Equal(t, 465, settings.Port)
				assert.True(t, settings.UseTLS)
			}
		})
	}
}
