package dto

import (
	"strings"
	"time"

	"thorn/internal/domains/booking/model"
	"thorn/shared"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
	gModel "thorn/shared/model"
	"thorn/shared/timezone"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	ServiceID     string `json:"service_id"     validate:"required"`
	CustomerName  string `json:"customer_name"  validate:"required,max=255"`
	CustomerEmail string `json:"customer_email" validate:"required,email,max=255"`
	CustomerPhone string `json:"customer_phone" validate:"omitempty,max=50"`
	BookingDate   string `json:"booking_date"   validate:"required,dateonly"`
	StartTime     string `json:"start_time"     validate:"required,clock"`
	Notes         string `json:"notes"          validate:"omitempty,max=2000"`
}

// ToModel builds the booking. EndTime is filled by the service from the
// service duration.
func (c *CreateBookingRequest) ToModel(user string) model.Booking {
	date, _ := timezone.Parse(constant.DateOnlyFormat, c.BookingDate)

	return model.Booking{
		ID:            uuid.NewString(),
		ServiceID:     c.ServiceID,
		CustomerName:  c.CustomerName,
		CustomerEmail: strings.ToLower(c.CustomerEmail),
		CustomerPhone: c.CustomerPhone,
		BookingDate:   date,
		StartTime:     c.StartTime,
		Status:        constant.BookingStatusConfirmed,
		Notes:         c.Notes,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type MoveBookingRequest struct {
	BookingDate string `json:"booking_date" validate:"required,dateonly"`
	StartTime   string `json:"start_time"   validate:"required,clock"`
}

type SlotsRequest struct {
	ServiceID string `json:"service_id" validate:"required"`
	Date      string `json:"date"       validate:"required,dateonly"`
}

type SlotsResponse struct {
	Date  string   `json:"date"`
	Slots []string `json:"slots"`
}

type BookingResponse struct {
	ID               string     `json:"id"`
	ServiceID        string     `json:"service_id"`
	CustomerName     string     `json:"customer_name"`
	CustomerEmail    string     `json:"customer_email"`
	CustomerPhone    string     `json:"customer_phone"`
	BookingDate      string     `json:"booking_date"`
	StartTime        string     `json:"start_time"`
	EndTime          string     `json:"end_time"`
	Status           string     `json:"status"`
	NoShowAt         *time.Time `json:"no_show_at,omitempty"`
	Notes            string     `json:"notes"`
	ConfirmationSent bool       `json:"confirmation_sent"`
	ReminderSent     bool       `json:"reminder_sent"`
	FollowupSent     bool       `json:"followup_sent"`
	gDto.Metadata
}

func (r *BookingResponse) FromModel(model model.Booking) {
	r.ID = model.ID
	r.ServiceID = model.ServiceID
	r.CustomerName = model.CustomerName
	r.CustomerEmail = model.CustomerEmail
	r.CustomerPhone = model.CustomerPhone
	r.BookingDate = model.BookingDate.Format(constant.DateOnlyFormat)
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Status = model.Status
	r.NoShowAt = model.NoShowAt
	r.Notes = model.Notes
	r.ConfirmationSent = model.ConfirmationSent
	r.ReminderSent = model.ReminderSent
	r.FollowupSent = model.FollowupSent
	r.Metadata.FromModel(model.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod)
	}
}

// BookingEvent is the kafka payload published on lifecycle changes.
type BookingEvent struct {
	Event       string `json:"event"`
	BookingID   string `json:"booking_id"`
	ServiceID   string `json:"service_id"`
	BookingDate string `json:"booking_date"`
	StartTime   string `json:"start_time"`
	Status      string `json:"status"`
	OccurredAt  string `json:"occurred_at"`
}

func NewBookingEvent(event string, booking model.Booking) BookingEvent {
	return BookingEvent{
		Event:       event,
		BookingID:   booking.ID,
		ServiceID:   booking.ServiceID,
		BookingDate: booking.BookingDate.Format(constant.DateOnlyFormat),
		StartTime:   booking.StartTime,
		Status:      booking.Status,
		OccurredAt:  timezone.Now().Format(constant.DateFormat),
	}
}
