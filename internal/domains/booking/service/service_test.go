package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"thorn/config"
	kafkaMocks "thorn/infras/kafka/mocks"
	"thorn/infras/otel/mocks"
	availabilityModel "thorn/internal/domains/availability/model"
	availabilityMocks "thorn/internal/domains/availability/mocks"
	blockedtimeModel "thorn/internal/domains/blockedtime/model"
	blockedtimeMocks "thorn/internal/domains/blockedtime/mocks"
	bookingMocks "thorn/internal/domains/booking/mocks"
	"thorn/internal/domains/booking/model"
	"thorn/internal/domains/booking/model/dto"
	"thorn/internal/domains/booking/service"
	catalogModel "thorn/internal/domains/catalog/model"
	catalogMocks "thorn/internal/domains/catalog/mocks"
	notificationMocks "thorn/internal/domains/notification/mocks"
	settingsModel "thorn/internal/domains/settings/model"
	settingsServiceMocks "thorn/internal/domains/settings/service/mocks"
	cacheMocks "thorn/shared/cache/mocks"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
	"thorn/shared/timezone"
)

type fixture struct {
	repo         *bookingMocks.MockBooking
	catalog      *catalogMocks.MockCatalog
	availability *availabilityMocks.MockAvailability
	blocked      *blockedtimeMocks.MockBlockedTime
	notification *notificationMocks.MockNotification
	settings     *settingsServiceMocks.MockSettings
	events       *kafkaMocks.MockClient
	cache        *cacheMocks.MockRedisCache
	svc          service.Booking
}

func newFixture(ctrl *gomock.Controller) *fixture {
	f := &fixture{
		repo:         bookingMocks.NewMockBooking(ctrl),
		catalog:      catalogMocks.NewMockCatalog(ctrl),
		availability: availabilityMocks.NewMockAvailability(ctrl),
		blocked:      blockedtimeMocks.NewMockBlockedTime(ctrl),
		notification: notificationMocks.NewMockNotification(ctrl),
		settings:     settingsServiceMocks.NewMockSettings(ctrl),
		events:       kafkaMocks.NewMockClient(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600
	cfg.App.BookingWindowDays = 30

	f.svc = service.New(f.repo, f.catalog, f.availability, f.blocked, f.notification,
		f.settings, f.events, cfg, f.cache, mocks.NewOtel())

	// cache invalidation and confirmation dispatch run off the request path
	f.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	f.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	return f
}

func tomorrow() string {
	return timezone.Now().AddDate(0, 0, 1).Format(constant.DateOnlyFormat)
}

func activeService() catalogModel.Service {
	return catalogModel.Service{
		ID:              "service-id",
		Name:            "Septum Piercing",
		DurationMinutes: 60,
		Active:          true,
	}
}

func openDay(f *fixture) {
	f.blocked.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]blockedtimeModel.BlockedTime{}, nil)

	f.availability.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]availabilityModel.Availability{
			{ID: "window-id", StartTime: "09:00", EndTime: "17:00", Active: true},
		}, nil)
}

func TestBookingService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateBookingRequest
		setupMock func()
		wantErr   bool
		wantEnd   string
	}{
		{
			name: "successful booking",
			req: dto.CreateBookingRequest{
				ServiceID:     "service-id",
				CustomerName:  "Jamie",
				CustomerEmail: "Jamie@Example.com",
				BookingDate:   tomorrow(),
				StartTime:     "10:00",
			},
			setupMock: func() {
				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)

				openDay(f)

				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{}, nil)

				f.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)

				f.notification.EXPECT().
					SendConfirmation(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
			wantEnd: "11:00",
		},
		{
			name: "service not found",
			req: dto.CreateBookingRequest{
				ServiceID:     "missing-id",
				CustomerName:  "Jamie",
				CustomerEmail: "jamie@example.com",
				BookingDate:   tomorrow(),
				StartTime:     "10:00",
			},
			setupMock: func() {
				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(catalogModel.Service{}, nil)
			},
			wantErr: true,
		},
		{
			name: "inactive service",
			req: dto.CreateBookingRequest{
				ServiceID:     "service-id",
				CustomerName:  "Jamie",
				CustomerEmail: "jamie@example.com",
				BookingDate:   tomorrow(),
				StartTime:     "10:00",
			},
			setupMock: func() {
				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(catalogModel.Service{ID: "service-id", Active: false}, nil)
			},
			wantErr: true,
		},
		{
			name: "date outside booking window",
			req: dto.CreateBookingRequest{
				ServiceID:     "service-id",
				CustomerName:  "Jamie",
				CustomerEmail: "jamie@example.com",
				BookingDate:   timezone.Now().AddDate(0, 0, 45).Format(constant.DateOnlyFormat),
				StartTime:     "10:00",
			},
			setupMock: func() {
				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)
			},
			wantErr: true,
		},
		{
			name: "date in the past",
			req: dto.CreateBookingRequest{
				ServiceID:     "service-id",
				CustomerName:  "Jamie",
				CustomerEmail: "jamie@example.com",
				BookingDate:   "2020-01-01",
				StartTime:     "10:00",
			},
			setupMock: func() {
				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)
			},
			wantErr: true,
		},
		{
			name: "slot already booked",
			req: dto.CreateBookingRequest{
				ServiceID:     "service-id",
				CustomerName:  "Jamie",
				CustomerEmail: "jamie@example.com",
				BookingDate:   tomorrow(),
				StartTime:     "10:00",
			},
			setupMock: func() {
				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)

				openDay(f)

				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
						{ID: "other-id", StartTime: "10:30", EndTime: "11:30", Status: constant.BookingStatusConfirmed},
					}, nil)
			},
			wantErr: true,
		},
		{
			name: "slot outside working hours",
			req: dto.CreateBookingRequest{
				ServiceID:     "service-id",
				CustomerName:  "Jamie",
				CustomerEmail: "jamie@example.com",
				BookingDate:   tomorrow(),
				StartTime:     "20:00",
			},
			setupMock: func() {
				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)

				openDay(f)
			},
			wantErr: true,
		},
		{
			name: "slot blocked",
			req: dto.CreateBookingRequest{
				ServiceID:     "service-id",
				CustomerName:  "Jamie",
				CustomerEmail: "jamie@example.com",
				BookingDate:   tomorrow(),
				StartTime:     "10:00",
			},
			setupMock: func() {
				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)

				start := "10:00"
				end := "12:00"

				f.blocked.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]blockedtimeModel.BlockedTime{
						{ID: "block-id", StartTime: &start, EndTime: &end},
					}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.Create(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, constant.BookingStatusConfirmed, res.Status)
				assert.Equal(t, tt.wantEnd, res.EndTime)
				assert.Equal(t, "jamie@example.com", res.CustomerEmail)
			}
		})
	}
}

func TestBookingService_StatusTransitions(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	booking := func(status string) model.Booking {
		return model.Booking{ID: "booking-id", ServiceID: "service-id", Status: status}
	}

	tests := []struct {
		name      string
		run       func(ctx context.Context) error
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cancel confirmed booking",
			run:  func(ctx context.Context) error { return f.svc.Cancel(ctx, "booking-id") },
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(constant.BookingStatusConfirmed), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cancel completed booking is rejected",
			run:  func(ctx context.Context) error { return f.svc.Cancel(ctx, "booking-id") },
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(constant.BookingStatusCompleted), nil)
			},
			wantErr: true,
		},
		{
			name: "complete confirmed booking",
			run:  func(ctx context.Context) error { return f.svc.Complete(ctx, "booking-id") },
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(constant.BookingStatusConfirmed), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "no-show on completed booking",
			run:  func(ctx context.Context) error { return f.svc.NoShow(ctx, "booking-id") },
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(constant.BookingStatusCompleted), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "no-show on cancelled booking is rejected",
			run:  func(ctx context.Context) error { return f.svc.NoShow(ctx, "booking-id") },
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(constant.BookingStatusCancelled), nil)
			},
			wantErr: true,
		},
		{
			name: "undo no-show restores confirmed",
			run:  func(ctx context.Context) error { return f.svc.UndoNoShow(ctx, "booking-id") },
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(constant.BookingStatusNoShow), nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "undo no-show on confirmed booking is rejected",
			run:  func(ctx context.Context) error { return f.svc.UndoNoShow(ctx, "booking-id") },
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(booking(constant.BookingStatusConfirmed), nil)
			},
			wantErr: true,
		},
		{
			name: "booking not found",
			run:  func(ctx context.Context) error { return f.svc.Cancel(ctx, "booking-id") },
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Booking{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := tt.run(ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_Move(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	confirmed := model.Booking{
		ID:          "booking-id",
		ServiceID:   "service-id",
		BookingDate: timezone.Now(),
		StartTime:   "10:00",
		EndTime:     "11:00",
		Status:      constant.BookingStatusConfirmed,
	}

	tests := []struct {
		name      string
		req       dto.MoveBookingRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful move ignores own slot",
			req:  dto.MoveBookingRequest{BookingDate: tomorrow(), StartTime: "10:30"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)

				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)

				openDay(f)

				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
						{ID: "booking-id", StartTime: "10:00", EndTime: "11:00", Status: constant.BookingStatusConfirmed},
					}, nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				f.notification.EXPECT().
					SendReschedule(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil).
					AnyTimes()
			},
			wantErr: false,
		},
		{
			name: "cancelled booking cannot be moved",
			req:  dto.MoveBookingRequest{BookingDate: tomorrow(), StartTime: "10:30"},
			setupMock: func() {
				cancelled := confirmed
				cancelled.Status = constant.BookingStatusCancelled

				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(cancelled, nil)
			},
			wantErr: true,
		},
		{
			name: "target slot taken by another booking",
			req:  dto.MoveBookingRequest{BookingDate: tomorrow(), StartTime: "10:30"},
			setupMock: func() {
				f.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(confirmed, nil)

				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)

				openDay(f)

				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
						{ID: "other-id", StartTime: "11:00", EndTime: "12:00", Status: constant.BookingStatusConfirmed},
					}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := f.svc.Move(ctx, tt.req, "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_AvailableSlots(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	tests := []struct {
		name      string
		date      string
		setupMock func()
		wantSlots []string
	}{
		{
			name: "grid skips the booked hour",
			date: tomorrow(),
			setupMock: func() {
				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)

				f.blocked.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]blockedtimeModel.BlockedTime{}, nil)

				f.availability.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]availabilityModel.Availability{
						{ID: "window-id", StartTime: "09:00", EndTime: "12:00", Active: true},
					}, nil)

				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{
						{ID: "other-id", StartTime: "10:00", EndTime: "11:00", Status: constant.BookingStatusConfirmed},
					}, nil)
			},
			wantSlots: []string{"09:00", "11:00"},
		},
		{
			name: "all-day block empties the date",
			date: tomorrow(),
			setupMock: func() {
				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)

				f.blocked.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]blockedtimeModel.BlockedTime{
						{ID: "block-id", AllDay: true},
					}, nil)
			},
			wantSlots: []string{},
		},
		{
			name: "date outside the window returns no slots",
			date: "2020-01-01",
			setupMock: func() {
				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)
			},
			wantSlots: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := f.svc.AvailableSlots(context.Background(), dto.SlotsRequest{ServiceID: "service-id", Date: tt.date})

			assert.NoError(t, err)
			assert.Equal(t, tt.date, res.Date)
			assert.Equal(t, tt.wantSlots, res.Slots)
		})
	}
}

func TestBookingService_AutoCompletePast(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	yesterday := timezone.Now().AddDate(0, 0, -1)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{
			{ID: "past-id", BookingDate: yesterday, StartTime: "10:00", EndTime: "11:00", Status: constant.BookingStatusConfirmed},
			{ID: "today-id", BookingDate: timezone.Now(), StartTime: "23:00", EndTime: "23:59", Status: constant.BookingStatusConfirmed},
		}, nil)

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	count, err := f.svc.AutoCompletePast(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBookingService_SendDueReminders(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	f.settings.EXPECT().
		Int(gomock.Any(), settingsModel.KeyReminderHoursBefore).
		Return(24)

	due := model.Booking{
		ID:            "due-id",
		ServiceID:     "service-id",
		CustomerEmail: "jamie@example.com",
		BookingDate:   timezone.Now().AddDate(0, 0, 1),
		StartTime:     "00:00",
		EndTime:       "01:00",
		Status:        constant.BookingStatusConfirmed,
	}

	passed := model.Booking{
		ID:          "passed-id",
		ServiceID:   "service-id",
		BookingDate: timezone.Now(),
		StartTime:   "00:00",
		EndTime:     "01:00",
		Status:      constant.BookingStatusConfirmed,
	}

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{due, passed}, nil)

	f.catalog.EXPECT().
		Get(gomock.Any(), gomock.Any()).
		Return(activeService(), nil)

	f.notification.EXPECT().
		SendReminder(gomock.Any(), gomock.Any(), "Septum Piercing").
		Return(nil).
		Times(1)

	f.repo.EXPECT().
		Update(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		Times(1)

	count, err := f.svc.SendDueReminders(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestBookingService_SendDueFollowups(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	completed := model.Booking{
		ID:            "completed-id",
		ServiceID:     "service-id",
		CustomerEmail: "jamie@example.com",
		BookingDate:   timezone.Now().AddDate(0, 0, -42),
		StartTime:     "10:00",
		EndTime:       "11:00",
		Status:        constant.BookingStatusCompleted,
	}

	tests := []struct {
		name      string
		setupMock func()
		wantCount int
	}{
		{
			name: "sends and records the follow-up",
			setupMock: func() {
				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{completed}, nil)

				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)

				f.notification.EXPECT().
					SendFollowup(gomock.Any(), gomock.Any(), "Septum Piercing").
					Return(nil)

				f.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantCount: 1,
		},
		{
			name: "send failure is skipped, not counted",
			setupMock: func() {
				f.repo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]model.Booking{completed}, nil)

				f.catalog.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(activeService(), nil)

				f.notification.EXPECT().
					SendFollowup(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("smtp error"))
			},
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			count, err := f.svc.SendDueFollowups(context.Background())

			assert.NoError(t, err)
			assert.Equal(t, tt.wantCount, count)
		})
	}
}

func TestBookingService_Delete(t *testing.T) {
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
			name: "booking not found",
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

			err := f.svc.Delete(context.Background(), "booking-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingService_GetAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	f := newFixture(ctrl)

	f.cache.EXPECT().
		Get(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(errors.New("cache miss"))

	f.repo.EXPECT().
		Count(gomock.Any(), gomock.Any()).
		Return(1, nil)

	f.repo.EXPECT().
		GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
		Return([]model.Booking{
			{ID: "booking-id", BookingDate: time.Now(), Status: constant.BookingStatusConfirmed},
		}, nil)

	f.cache.EXPECT().
		Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	res, err := f.svc.GetAll(context.Background(), gDto.QueryParams{Page: 1, Limit: 10}, gDto.FilterGroup{})

	assert.NoError(t, err)
	assert.Equal(t, 1, res.TotalData)
	assert.Len(t, res.Bookings, 1)
}
