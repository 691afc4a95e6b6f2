package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks

import (
	"context"
	"fmt"

	"thorn/infras/otel"
	"thorn/infras/smtp"
	"thorn/internal/domains/booking/model"
	settingsModel "thorn/internal/domains/settings/model"
	settingsService "thorn/internal/domains/settings/service"
	"thorn/shared/constant"

	"github.com/rs/zerolog/log"
)

// Notification sends the customer-facing emails. Every send resolves the SMTP
// connection from the settings rows at call time, so settings edits take
// effect without a restart.
type Notification interface {
	SendConfirmation(ctx context.Context, booking model.Booking, serviceName string) error
	SendReminder(ctx context.Context, booking model.Booking, serviceName string) error
	SendReschedule(ctx context.Context, booking model.Booking, serviceName, oldDate, oldStart string) error
	SendFollowup(ctx context.Context, booking model.Booking, serviceName string) error
	SendTest(ctx context.Context, recipient string) error
}

type serviceImpl struct {
	settings settingsService.Settings
	mailer   smtp.Mailer
	otel     otel.Otel
}

func New(settings settingsService.Settings, mailer smtp.Mailer, otel otel.Otel) Notification {
	return &serviceImpl{
		settings: settings,
		mailer:   mailer,
		otel:     otel,
	}
}

// send short-circuits when email is disabled globally or for the given kind.
// flagKey may be empty for unconditional kinds like the test email.
func (s *serviceImpl) send(ctx context.Context, flagKey string, message smtp.Message) error {
	if !s.settings.Bool(ctx, settingsModel.KeyEmailEnabled) {
		log.Debug().Str("subject", message.Subject).Msg("email disabled, skipping send")

		return nil
	}

	if flagKey != constant.Empty && !s.settings.Bool(ctx, flagKey) {
		log.Debug().Str("subject", message.Subject).Msg("email kind disabled, skipping send")

		return nil
	}

	settings, err := s.settings.SMTP(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve smtp settings: %w", err)
	}

	if err = s.mailer.Send(ctx, settings, message); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}

func (s *serviceImpl) businessName(ctx context.Context) string {
	return s.settings.Value(ctx, settingsModel.KeyBusinessName)
}

func (s *serviceImpl) SendConfirmation(ctx context.Context, booking model.Booking, serviceName string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendConfirmation")
	defer scope.End()
	defer scope.TraceIfError(err)

	business := s.businessName(ctx)
	date := booking.BookingDate.Format(constant.DateOnlyFormat)

	message := smtp.Message{
		To:      booking.CustomerEmail,
		Subject: fmt.Sprintf("Booking confirmed - %s", business),
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your booking for <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong> is confirmed.</p><p>See you then!<br>%s</p>",
			booking.CustomerName, serviceName, date, booking.StartTime, business),
		TextBody: fmt.Sprintf(
			"Hi %s,\n\nYour booking for %s on %s at %s is confirmed.\n\nSee you then!\n%s\n",
			booking.CustomerName, serviceName, date, booking.StartTime, business),
	}

	return s.send(ctx, settingsModel.KeySendConfirmationEmail, message)
}

func (s *serviceImpl) SendReminder(ctx context.Context, booking model.Booking, serviceName string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendReminder")
	defer scope.End()
	defer scope.TraceIfError(err)

	business := s.businessName(ctx)
	date := booking.BookingDate.Format(constant.DateOnlyFormat)

	message := smtp.Message{
		To:      booking.CustomerEmail,
		Subject: fmt.Sprintf("Reminder: your booking at %s", business),
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>This is a reminder of your booking for <strong>%s</strong> on <strong>%s</strong> at <strong>%s</strong>.</p><p>%s</p>",
			booking.CustomerName, serviceName, date, booking.StartTime, business),
		TextBody: fmt.Sprintf(
			"Hi %s,\n\nThis is a reminder of your booking for %s on %s at %s.\n\n%s\n",
			booking.CustomerName, serviceName, date, booking.StartTime, business),
	}

	return s.send(ctx, settingsModel.KeySendReminderEmail, message)
}

func (s *serviceImpl) SendReschedule(ctx context.Context, booking model.Booking, serviceName, oldDate, oldStart string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendReschedule")
	defer scope.End()
	defer scope.TraceIfError(err)

	business := s.businessName(ctx)
	date := booking.BookingDate.Format(constant.DateOnlyFormat)

	message := smtp.Message{
		To:      booking.CustomerEmail,
		Subject: fmt.Sprintf("Booking rescheduled - %s", business),
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>Your booking for <strong>%s</strong> has moved from %s at %s to <strong>%s</strong> at <strong>%s</strong>.</p><p>%s</p>",
			booking.CustomerName, serviceName, oldDate, oldStart, date, booking.StartTime, business),
		TextBody: fmt.Sprintf(
			"Hi %s,\n\nYour booking for %s has moved from %s at %s to %s at %s.\n\n%s\n",
			booking.CustomerName, serviceName, oldDate, oldStart, date, booking.StartTime, business),
	}

	return s.send(ctx, constant.Empty, message)
}

func (s *serviceImpl) SendFollowup(ctx context.Context, booking model.Booking, serviceName string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendFollowup")
	defer scope.End()
	defer scope.TraceIfError(err)

	business := s.businessName(ctx)

	message := smtp.Message{
		To:      booking.CustomerEmail,
		Subject: fmt.Sprintf("How is everything? - %s", business),
		HTMLBody: fmt.Sprintf(
			"<p>Hi %s,</p><p>It has been a while since your %s appointment. We would love to hear how everything is going.</p><p>%s</p>",
			booking.CustomerName, serviceName, business),
		TextBody: fmt.Sprintf(
			"Hi %s,\n\nIt has been a while since your %s appointment. We would love to hear how everything is going.\n\n%s\n",
			booking.CustomerName, serviceName, business),
	}

	return s.send(ctx, settingsModel.KeySendFollowupEmail, message)
}

// SendTest verifies the SMTP settings end to end. It bypasses the
// email_enabled flag on purpose, settings are being tested before enabling.
func (s *serviceImpl) SendTest(ctx context.Context, recipient string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SendTest")
	defer scope.End()
	defer scope.TraceIfError(err)

	settings, err := s.settings.SMTP(ctx)
	if err != nil {
		return fmt.Errorf("failed to resolve smtp settings: %w", err)
	}

	business := s.businessName(ctx)

	message := smtp.Message{
		To:       recipient,
		Subject:  fmt.Sprintf("Test email - %s", business),
		HTMLBody: fmt.Sprintf("<p>This is a test email from %s. Your SMTP settings work.</p>", business),
		TextBody: fmt.Sprintf("This is a test email from %s. Your SMTP settings work.\n", business),
	}

	if err = s.mailer.Send(ctx, settings, message); err != nil {
		return fmt.Errorf("failed to send test email: %w", err)
	}

	return nil
}
