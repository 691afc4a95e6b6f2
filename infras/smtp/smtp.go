package smtp

//go:generate go run go.uber.org/mock/mockgen -source=./smtp.go -destination=./mocks/smtp_mock.go -package=mocks

import (
	"context"
	"fmt"

	"thorn/infras/otel"
	"thorn/shared/constant"

	"github.com/rs/zerolog/log"
	"github.com/wneessen/go-mail"
)

const (
	otelAttrRecipient = "recipient"
	otelAttrSubject   = "subject"
)

// Settings carries the SMTP connection parameters. They live in the settings
// table rather than the environment, so the caller resolves them per send and
// no client is held open between sends.
type Settings struct {
	Host     string
	Port     int
	Username string
	Password string
	UseTLS   bool
	FromName string
}

type Message struct {
	To       string
	Subject  string
	HTMLBody string
	TextBody string
}

type Mailer interface {
	Send(ctx context.Context, settings Settings, message Message) error
}

type mailerImpl struct {
	otel otel.Otel
}

func New(otl otel.Otel) Mailer {
	return &mailerImpl{
		otel: otl,
	}
}

// Send implements Mailer.
func (m *mailerImpl) Send(ctx context.Context, settings Settings, message Message) (err error) {
	ctx, scope := m.otel.NewScope(ctx, constant.OtelExternalScopeName, constant.OtelExternalScopeName+".smtp.Send")
	defer scope.End()
	defer scope.TraceIfError(err)

	scope.SetAttributes(map[string]any{
		otelAttrRecipient: message.To,
		otelAttrSubject:   message.Subject,
	})

	msg, err := buildMessage(settings, message)
	if err != nil {
		return err
	}

	tlsPolicy := mail.TLSOpportunistic
	if settings.UseTLS {
		tlsPolicy = mail.TLSMandatory
	}

	client, err := mail.NewClient(settings.Host,
		mail.WithPort(settings.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(settings.Username),
		mail.WithPassword(settings.Password),
		mail.WithTLSPolicy(tlsPolicy),
	)
	if err != nil {
		log.Error().Err(err).Str("host", settings.Host).Msg("Failed to create SMTP client")

		return fmt.Errorf("failed to create SMTP client: %w", err)
	}

	if err = client.DialAndSendWithContext(ctx, msg); err != nil {
		log.Error().Err(err).Str("host", settings.Host).Str("to", message.To).Msg("Failed to send email")

		return fmt.Errorf("failed to send email: %w", err)
	}

	log.Info().Str("to", message.To).Str("subject", message.Subject).Msg("Email sent")

	return nil
}

func buildMessage(settings Settings, message Message) (*mail.Msg, error) {
	msg := mail.NewMsg()

	if err := msg.FromFormat(settings.FromName, settings.Username); err != nil {
		return nil, fmt.Errorf("failed to set sender address: %w", err)
	}

	if err := msg.To(message.To); err != nil {
		return nil, fmt.Errorf("failed to set recipient address: %w", err)
	}

	msg.Subject(message.Subject)

	// multipart/alternative parts are ordered least to most preferred, so the
	// plain text body goes first and the HTML rendition last.
	if message.TextBody != "" {
		msg.SetBodyString(mail.TypeTextPlain, message.TextBody)
		msg.AddAlternativeString(mail.TypeTextHTML, message.HTMLBody)
	} else {
		msg.SetBodyString(mail.TypeTextHTML, message.HTMLBody)
	}

	return msg, nil
}
