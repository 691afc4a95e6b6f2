package dto

import (
	"thorn/internal/domains/availability/model"
	"thorn/shared"
	gDto "thorn/shared/dto"
	gModel "thorn/shared/model"
	"thorn/shared/timezone"

	"github.com/google/uuid"
)

type CreateAvailabilityRequest struct {
	DayOfWeek *int   `json:"day_of_week" validate:"required,gte=0,lte=6"`
	StartTime string `json:"start_time"  validate:"required,clock"`
	EndTime   string `json:"end_time"    validate:"required,clock"`
	Active    *bool  `json:"active"      validate:"omitempty"`
}

func (c *CreateAvailabilityRequest) ToModel(user string) model.Availability {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Availability{
		ID:        uuid.NewString(),
		DayOfWeek: *c.DayOfWeek,
		StartTime: c.StartTime,
		EndTime:   c.EndTime,
		Active:    active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateAvailabilityRequest struct {
	DayOfWeek *int   `db:"day_of_week" json:"day_of_week" validate:"omitempty,gte=0,lte=6"`
	StartTime string `db:"start_time"  json:"start_time"  validate:"omitempty,clock"`
	EndTime   string `db:"end_time"    json:"end_time"    validate:"omitempty,clock"`
	Active    *bool  `db:"active"      json:"active"      validate:"omitempty"`
}

type AvailabilityResponse struct {
	ID        string `json:"id"`
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	Active    bool   `json:"active"`
	gDto.Metadata
}

func (r *AvailabilityResponse) FromModel(model model.Availability) {
	r.ID = model.ID
	r.DayOfWeek = model.DayOfWeek
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetAvailabilitiesResponse struct {
	Availabilities []AvailabilityResponse `json:"availabilities"`
	TotalPage      int                    `json:"total_page"`
	TotalData      int                    `json:"total_data"`
}

func (r *GetAvailabilitiesResponse) FromModels(models []model.Availability, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Availabilities = make([]AvailabilityResponse, len(models))
	for i, mod := range models {
		r.Availabilities[i].FromModel(mod)
	}
}
