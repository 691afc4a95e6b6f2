package model

import (
	"time"

	"thorn/shared/model"
)

const (
	TableName  = "blocked_times"
	EntityName = "blocked_time"

	FieldID                 = "id"
	FieldDate               = "date"
	FieldStartTime          = "start_time"
	FieldEndTime            = "end_time"
	FieldReason             = "reason"
	FieldAllDay             = "all_day"
	FieldRecurringWeekly    = "recurring_weekly"
	FieldRecurringDayOfWeek = "recurring_day_of_week"
)

// BlockedTime removes a window from the bookable calendar. AllDay blocks skip
// the time columns, recurring blocks repeat on RecurringDayOfWeek instead of
// a single date.
type BlockedTime struct {
	ID                 string    `db:"id"`
	Date               time.Time `db:"date"`
	StartTime          *string   `db:"start_time"`
	EndTime            *string   `db:"end_time"`
	Reason             string    `db:"reason"`
	AllDay             bool      `db:"all_day"`
	RecurringWeekly    bool      `db:"recurring_weekly"`
	RecurringDayOfWeek *int      `db:"recurring_day_of_week"`
	model.Metadata
}
