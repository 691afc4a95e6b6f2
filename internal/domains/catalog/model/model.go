package model

import "thorn/shared/model"

const (
	TableName  = "services"
	EntityName = "service"

	FieldID              = "id"
	FieldCategoryID      = "category_id"
	FieldName            = "name"
	FieldDurationMinutes = "duration_minutes"
	FieldPrice           = "price"
	FieldDescription     = "description"
	FieldDisplayOrder    = "display_order"
	FieldActive          = "active"
)

type Service struct {
	ID              string  `db:"id"`
	CategoryID      *string `db:"category_id"`
	Name            string  `db:"name"`
	DurationMinutes int     `db:"duration_minutes"`
	Price           float64 `db:"price"`
	Description     string  `db:"description"`
	DisplayOrder    int     `db:"display_order"`
	Active          bool    `db:"active"`
	model.Metadata
}
