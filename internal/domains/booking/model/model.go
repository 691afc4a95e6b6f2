package model

import (
	"time"

	"thorn/shared/model"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldServiceID        = "service_id"
	FieldCustomerName     = "customer_name"
	FieldCustomerEmail    = "customer_email"
	FieldCustomerPhone    = "customer_phone"
	FieldBookingDate      = "booking_date"
	FieldStartTime        = "start_time"
	FieldEndTime          = "end_time"
	FieldStatus           = "status"
	FieldNoShowAt         = "no_show_at"
	FieldNotes            = "notes"
	FieldConfirmationSent = "confirmation_sent"
	FieldReminderSent     = "reminder_sent"
	FieldFollowupSent     = "followup_sent"
)

// Booking is a customer appointment. StartTime and EndTime are "HH:MM",
// BookingDate carries the calendar day only.
type Booking struct {
	ID               string     `db:"id"`
	ServiceID        string     `db:"service_id"`
	CustomerName     string     `db:"customer_name"`
	CustomerEmail    string     `db:"customer_email"`
	CustomerPhone    string     `db:"customer_phone"`
	BookingDate      time.Time  `db:"booking_date"`
	StartTime        string     `db:"start_time"`
	EndTime          string     `db:"end_time"`
	Status           string     `db:"status"`
	NoShowAt         *time.Time `db:"no_show_at"`
	Notes            string     `db:"notes"`
	ConfirmationSent bool       `db:"confirmation_sent"`
	ReminderSent     bool       `db:"reminder_sent"`
	FollowupSent     bool       `db:"followup_sent"`
	model.Metadata
}
