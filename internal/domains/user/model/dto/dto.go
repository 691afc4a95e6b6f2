package dto

import (
	"thorn/internal/domains/user/model"
	"thorn/shared"
	"thorn/shared/constant"
	gDto "thorn/shared/dto"
	gModel "thorn/shared/model"
	"thorn/shared/timezone"

	"github.com/google/uuid"
)

type CreateStaffRequest struct {
	Email    string  `json:"email"               validate:"required,email,max=120"`
	Password string  `json:"password"            validate:"required,min=8"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Level    string  `json:"level"               validate:"omitempty,oneof=owner staff"`
}

func (c *CreateStaffRequest) ToModel(username, hashedPassword string) model.User {
	level := c.Level
	if level == "" {
		level = constant.RoleStaff
	}

	return model.User{
		ID:       uuid.NewString(),
		Email:    c.Email,
		Password: hashedPassword,
		Level:    level,
		FullName: c.FullName,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  username,
			ModifiedBy: username,
		},
	}
}

type UpdateStaffRequest struct {
	FullName *string `db:"full_name" json:"full_name" validate:"omitempty,max=100"`
	Level    string  `db:"level"     json:"level"     validate:"omitempty,oneof=owner staff"`
	Active   *bool   `db:"active"    json:"active"    validate:"omitempty"`
}

type StaffResponse struct {
	ID        string  `json:"id"`
	Email     string  `json:"email"`
	Level     string  `json:"level"`
	FullName  *string `json:"full_name"`
	LastLogin *string `json:"last_login"`
	Active    bool    `json:"active"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(model model.User) {
	r.ID = model.ID
	r.Email = model.Email
	r.Level = model.Level
	r.FullName = model.FullName
	r.Active = model.Active

	if model.LastLogin != nil {
		lastLogin := timezone.Format(*model.LastLogin, constant.DateFormat)
		r.LastLogin = &lastLogin
	}

	r.Metadata.FromModel(model.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.User, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
