package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"thorn/config"
	"thorn/infras/otel/mocks"
	clientnoteMocks "thorn/internal/domains/clientnote/mocks"
	"thorn/internal/domains/clientnote/model"
	"thorn/internal/domains/clientnote/model/dto"
	"thorn/internal/domains/clientnote/service"
	cacheMocks "thorn/shared/cache/mocks"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
)

func newService(ctrl *gomock.Controller) (service.ClientNote, *clientnoteMocks.MockClientNote, *cacheMocks.MockRedisCache) {
	mockRepo := clientnoteMocks.NewMockClientNote(ctrl)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(mockRepo, cfg, mockCache, mocks.NewOtel())

	mockCache.EXPECT().
		Clear(gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	mockCache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	return svc, mockRepo, mockCache
}

func TestClientNoteService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateClientNoteRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "stores the client email lowercased",
			req: dto.CreateClientNoteRequest{
				ClientEmail: "Jamie@Example.COM",
				ClientName:  "Jamie",
				Note:        "allergic to nickel",
				IsAlert:     true,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, note model.ClientNote) error {
						assert.Equal(t, "jamie@example.com", note.ClientEmail)
						assert.True(t, note.IsAlert)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "repository error",
			req: dto.CreateClientNoteRequest{
				ClientEmail: "jamie@example.com",
				Note:        "allergic to nickel",
			},
			setupMock: func() {
				mockRepo.EXPECT().
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
			res, err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.ID)
				assert.Equal(t, "jamie@example.com", res.ClientEmail)
			}
		})
	}
}

func TestClientNoteService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockCache := newService(ctrl)

	tests := []struct {
		name        string
		clientEmail string
		setupMock   func()
		wantErr     bool
	}{
		{
			name:        "filters by lowercased client email",
			clientEmail: "Jamie@Example.COM",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
						assert.Equal(t, "jamie@example.com", filter.Filters[0].(gDto.Filter).Value)

						return 1, nil
					})

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.ClientNote{{ID: "note-1", ClientEmail: "jamie@example.com"}}, nil)
			},
			wantErr: false,
		},
		{
			name:        "no email lists every note",
			clientEmail: "",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
						assert.Empty(t, filter.Filters)

						return 2, nil
					})

				mockRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.ClientNote{{ID: "note-1"}, {ID: "note-2"}}, nil)
			},
			wantErr: false,
		},
		{
			name:        "count error",
			clientEmail: "",
			setupMock: func() {
				mockCache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("count error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, tt.clientEmail)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClientNoteService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.ClientNote{ID: "note-1", Note: "allergic to nickel"}, nil)
			},
			wantErr: false,
		},
		{
			name: "not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.ClientNote{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), "note-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClientNoteService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl)

	tests := []struct {
		name      string
		req       dto.UpdateClientNoteRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateClientNoteRequest{Note: "prefers afternoon slots"},
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
			name:      "empty update request",
			req:       dto.UpdateClientNoteRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "client note not found",
			req:  dto.UpdateClientNoteRequest{Note: "prefers afternoon slots"},
			setupMock: func() {
				mockRepo.EXPECT().
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
			err := svc.Update(ctx, tt.req, "note-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestClientNoteService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _ := newService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful delete",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "client note not found",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), "note-1")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
