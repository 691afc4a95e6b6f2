package dto

import (
	"time"

	"thorn/internal/domains/blockedtime/model"
	"thorn/shared"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
	gModel "thorn/shared/model"
	"thorn/shared/timezone"

	"github.com/google/uuid"
)

type CreateBlockedTimeRequest struct {
	Date               string  `json:"date"                  validate:"omitempty,dateonly"`
	StartTime          *string `json:"start_time"            validate:"omitempty,clock"`
	EndTime            *string `json:"end_time"              validate:"omitempty,clock"`
	Reason             string  `json:"reason"                validate:"omitempty,max=255"`
	AllDay             bool    `json:"all_day"               validate:"omitempty"`
	RecurringWeekly    bool    `json:"recurring_weekly"      validate:"omitempty"`
	RecurringDayOfWeek *int    `json:"recurring_day_of_week" validate:"omitempty,gte=0,lte=6"`
}

func (c *CreateBlockedTimeRequest) ToModel(user string) model.BlockedTime {
	date, _ := time.Parse(constant.DateOnlyFormat, c.Date)

	return model.BlockedTime{
		ID:                 uuid.NewString(),
		Date:               date,
		StartTime:          c.StartTime,
		EndTime:            c.EndTime,
		Reason:             c.Reason,
		AllDay:             c.AllDay,
		RecurringWeekly:    c.RecurringWeekly,
		RecurringDayOfWeek: c.RecurringDayOfWeek,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type BlockedTimeResponse struct {
	ID                 string  `json:"id"`
	Date               string  `json:"date"`
	StartTime          *string `json:"start_time"`
	EndTime            *string `json:"end_time"`
	Reason             string  `json:"reason"`
	AllDay             bool    `json:"all_day"`
	RecurringWeekly    bool    `json:"recurring_weekly"`
	RecurringDayOfWeek *int    `json:"recurring_day_of_week"`
	gDto.Metadata
}

func (r *BlockedTimeResponse) FromModel(model model.BlockedTime) {
	r.ID = model.ID
	r.Date = model.Date.Format(constant.DateOnlyFormat)
	r.StartTime = model.StartTime
	r.EndTime = model.EndTime
	r.Reason = model.Reason
	r.AllDay = model.AllDay
	r.RecurringWeekly = model.RecurringWeekly
	r.RecurringDayOfWeek = model.RecurringDayOfWeek
	r.Metadata.FromModel(model.Metadata)
}

type GetBlockedTimesResponse struct {
	BlockedTimes []BlockedTimeResponse `json:"blocked_times"`
	TotalPage    int                   `json:"total_page"`
	TotalData    int                   `json:"total_data"`
}

func (r *GetBlockedTimesResponse) FromModels(models []model.BlockedTime, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.BlockedTimes = make([]BlockedTimeResponse, len(models))
	for i, mod := range models {
		r.BlockedTimes[i].FromModel(mod)
	}
}
