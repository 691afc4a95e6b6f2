package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"thorn/infras/otel/mocks"
	"thorn/infras/smtp"
	smtpMocks "thorn/infras/smtp/mocks"
	bookingModel "thorn/internal/domains/booking/model"
	"thorn/internal/domains/notification/service"
	settingsModel "thorn/internal/domains/settings/model"
	settingsServiceMocks "thorn/internal/domains/settings/service/mocks"
	"thorn/shared/timezone"
)

func booking() bookingModel.Booking {
	return bookingModel.Booking{
		ID:            "booking-id",
		ServiceID:     "service-id",
		CustomerName:  "Jamie",
		CustomerEmail: "jamie@example.com",
		BookingDate:   timezone.Now(),
		StartTime:     "10:00",
		EndTime:       "11:00",
	}
}

func TestNotificationService_SendConfirmation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettings := settingsServiceMocks.NewMockSettings(ctrl)
	mockMailer := smtpMocks.NewMockMailer(ctrl)

	svc := service.New(mockSettings, mockMailer, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "email disabled globally skips the send",
			setupMock: func() {
				mockSettings.EXPECT().
					Value(gomock.Any(), settingsModel.KeyBusinessName).
					Return("The Studio")

				mockSettings.EXPECT().
					Bool(gomock.Any(), settingsModel.KeyEmailEnabled).
					Return(false)
			},
			wantErr: false,
		},
		{
			name: "confirmation kind disabled skips the send",
			setupMock: func() {
				mockSettings.EXPECT().
					Value(gomock.Any(), settingsModel.KeyBusinessName).
					Return("The Studio")

				mockSettings.EXPECT().
					Bool(gomock.Any(), settingsModel.KeyEmailEnabled).
					Return(true)

				mockSettings.EXPECT().
					Bool(gomock.Any(), settingsModel.KeySendConfirmationEmail).
					Return(false)
			},
			wantErr: false,
		},
		{
			name: "enabled sends through the mailer",
			setupMock: func() {
				mockSettings.EXPECT().
					Value(gomock.Any(), settingsModel.KeyBusinessName).
					Return("The Studio")

				mockSettings.EXPECT().
					Bool(gomock.Any(), settingsModel.KeyEmailEnabled).
					Return(true)

				mockSettings.EXPECT().
					Bool(gomock.Any(), settingsModel.KeySendConfirmationEmail).
					Return(true)

				mockSettings.EXPECT().
					SMTP(gomock.Any()).
					Return(smtp.Settings{Host: "smtp.example.com", Port: 587}, nil)

				mockMailer.EXPECT().
					Send(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ smtp.Settings, message smtp.Message) error {
						assert.Equal(t, "jamie@example.com", message.To)
						assert.Contains(t, message.Subject, "The Studio")
						assert.Contains(t, message.TextBody, "Septum Piercing")

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "smtp settings failure surfaces",
			setupMock: func() {
				mockSettings.EXPECT().
					Value(gomock.Any(), settingsModel.KeyBusinessName).
					Return("The Studio")

				mockSettings.EXPECT().
					Bool(gomock.Any(), settingsModel.KeyEmailEnabled).
					Return(true)

				mockSettings.EXPECT().
					Bool(gomock.Any(), settingsModel.KeySendConfirmationEmail).
					Return(true)

				mockSettings.EXPECT().
					SMTP(gomock.Any()).
					Return(smtp.Settings{}, errors.New("smtp_host is not set"))
			},
			wantErr: true,
		},
		{
			name: "mailer failure surfaces",
			setupMock: func() {
				mockSettings.EXPECT().
					Value(gomock.Any(), settingsModel.KeyBusinessName).
					Return("The Studio")

				mockSettings.EXPECT().
					Bool(gomock.Any(), settingsModel.KeyEmailEnabled).
					Return(true)

				mockSettings.EXPECT().
					Bool(gomock.Any(), settingsModel.KeySendConfirmationEmail).
					Return(true)

				mockSettings.EXPECT().
					SMTP(gomock.Any()).
					Return(smtp.Settings{Host: "smtp.example.com", Port: 587}, nil)

				mockMailer.EXPECT().
					Send(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("connection refused"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.SendConfirmation(context.Background(), booking(), "Septum Piercing")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNotificationService_SendReschedule(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettings := settingsServiceMocks.NewMockSettings(ctrl)
	mockMailer := smtpMocks.NewMockMailer(ctrl)

	svc := service.New(mockSettings, mockMailer, mocks.NewOtel())

	// reschedule has no per-kind flag, only the global switch applies
	mockSettings.EXPECT().
		Value(gomock.Any(), settingsModel.KeyBusinessName).
		Return("The Studio")

	mockSettings.EXPECT().
		Bool(gomock.Any(), settingsModel.KeyEmailEnabled).
		Return(true)

	mockSettings.EXPECT().
		SMTP(gomock.Any()).
		Return(smtp.Settings{Host: "smtp.example.com", Port: 587}, nil)

	mockMailer.EXPECT().
		Send(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ smtp.Settings, message smtp.Message) error {
			assert.Contains(t, message.TextBody, "2026-08-01")
			assert.Contains(t, message.TextBody, "09:00")

			return nil
		})

	err := svc.SendReschedule(context.Background(), booking(), "Septum Piercing", "2026-08-01", "09:00")

	assert.NoError(t, err)
}

func TestNotificationService_SendTest(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSettings := settingsServiceMocks.NewMockSettings(ctrl)
	mockMailer := smtpMocks.NewMockMailer(ctrl)

	svc := service.New(mockSettings, mockMailer, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "sends even while email is disabled",
			setupMock: func() {
				mockSettings.EXPECT().
					SMTP(gomock.Any()).
					Return(smtp.Settings{Host: "smtp.example.com", Port: 587}, nil)

				mockSettings.EXPECT().
					Value(gomock.Any(), settingsModel.KeyBusinessName).
					Return("The Studio")

				mockMailer.EXPECT().
					Send(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ smtp.Settings, message smtp.Message) error {
						assert.Equal(t, "owner@example.com", message.To)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "incomplete smtp settings surface",
			setupMock: func() {
				mockSettings.EXPECT().
					SMTP(gomock.Any()).
					Return(smtp.Settings{}, errors.New("smtp_host is not set"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.SendTest(context.Background(), "owner@example.com")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
