package dto

import (
	"thorn/internal/domains/category/model"
	"thorn/shared"
	gDto "thorn/shared/dto"
	gModel "thorn/shared/model"
	"thorn/shared/timezone"

	"github.com/google/uuid"
)

type CreateCategoryRequest struct {
	Name         string `json:"name"          validate:"required,max=100"`
	DisplayOrder int    `json:"display_order" validate:"omitempty,gte=0"`
	Active       *bool  `json:"active"        validate:"omitempty"`
}

func (c *CreateCategoryRequest) ToModel(user string) model.Category {
	active := true
	if c.Active != nil {
		active = *c.Active
	}

	return model.Category{
		ID:           uuid.NewString(),
		Name:         c.Name,
		DisplayOrder: c.DisplayOrder,
		Active:       active,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  user,
			ModifiedBy: user,
		},
	}
}

type UpdateCategoryRequest struct {
	Name         string `db:"name"          json:"name"          validate:"omitempty,max=100"`
	DisplayOrder *int   `db:"display_order" json:"display_order" validate:"omitempty,gte=0"`
	Active       *bool  `db:"active"        json:"active"        validate:"omitempty"`
}

type ReorderCategoriesRequest struct {
	IDs []string `json:"ids" validate:"required,min=1,dive,required"`
}

type CategoryResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	DisplayOrder int    `json:"display_order"`
	Active       bool   `json:"active"`
	gDto.Metadata
}

func (r *CategoryResponse) FromModel(model model.Category) {
	r.ID = model.ID
	r.Name = model.Name
	r.DisplayOrder = model.DisplayOrder
	r.Active = model.Active
	r.Metadata.FromModel(model.Metadata)
}

type GetCategoriesResponse struct {
	Categories []CategoryResponse `json:"categories"`
	TotalPage  int                `json:"total_page"`
	TotalData  int                `json:"total_data"`
}

func (r *GetCategoriesResponse) FromModels(models []model.Category, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Categories = make([]CategoryResponse, len(models))
	for i, mod := range models {
		r.Categories[i].FromModel(mod)
	}
}
