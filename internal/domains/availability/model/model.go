package model

import "thorn/shared/model"

const (
	TableName  = "availabilities"
	EntityName = "availability"

	FieldID        = "id"
	FieldDayOfWeek = "day_of_week"
	FieldStartTime = "start_time"
	FieldEndTime   = "end_time"
	FieldActive    = "active"
)

// Availability is one weekly working-hours window. DayOfWeek runs 0=Monday
// through 6=Sunday, times are "HH:MM".
type Availability struct {
	ID        string `db:"id"`
	DayOfWeek int    `db:"day_of_week"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	Active    bool   `db:"active"`
	model.Metadata
}
