package model

import "thorn/shared/model"

const (
	TableName  = "client_notes"
	EntityName = "client_note"

	FieldID          = "id"
	FieldClientEmail = "client_email"
	FieldClientName  = "client_name"
	FieldNote        = "note"
	FieldIsAlert     = "is_alert"
)

// ClientNote is a free-form note pinned to a client email. Alert notes are
// surfaced next to that client's bookings.
type ClientNote struct {
	ID          string `db:"id"`
	ClientEmail string `db:"client_email"`
	ClientName  string `db:"client_name"`
	Note        string `db:"note"`
	IsAlert     bool   `db:"is_alert"`
	model.Metadata
}
