package model

import "thorn/shared/model"

const (
	TableName  = "settings"
	EntityName = "setting"

	FieldID    = "id"
	FieldKey   = "key"
	FieldValue = "value"
)

// Setting keys. Unset keys fall back to the compiled-in defaults below.
const (
	KeyBusinessName  = "business_name"
	KeyBusinessPhone = "business_phone"
	KeyBusinessEmail = "business_email"

	KeyEmailEnabled = "email_enabled"
	KeySMTPHost     = "smtp_host"
	KeySMTPPort     = "smtp_port"
	KeySMTPUsername = "smtp_username"
	KeySMTPPassword = "smtp_password"
	KeySMTPUseTLS   = "smtp_use_tls"

	KeySendConfirmationEmail = "send_confirmation_email"
	KeySendReminderEmail     = "send_reminder_email"
	KeySendFollowupEmail     = "send_followup_email"
	KeyReminderHoursBefore   = "reminder_hours_before"
)

// Defaults mirror the values a fresh installation starts with.
var Defaults = map[string]string{
	KeyBusinessName:  "The Studio",
	KeyBusinessPhone: "",
	KeyBusinessEmail: "",

	KeyEmailEnabled: "false",
	KeySMTPHost:     "",
	KeySMTPPort:     "587",
	KeySMTPUsername: "",
	KeySMTPPassword: "",
	KeySMTPUseTLS:   "true",

	KeySendConfirmationEmail: "true",
	KeySendReminderEmail:     "true",
	KeySendFollowupEmail:     "false",
	KeyReminderHoursBefore:   "24",
}

type Setting struct {
	ID    string `db:"id"`
	Key   string `db:"key"`
	Value string `db:"value"`
	model.Metadata
}
