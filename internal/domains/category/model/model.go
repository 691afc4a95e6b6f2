package model

import "thorn/shared/model"

const (
	TableName  = "categories"
	EntityName = "category"

	FieldID           = "id"
	FieldName         = "name"
	FieldDisplayOrder = "display_order"
	FieldActive       = "active"
)

type Category struct {
	ID           string `db:"id"`
	Name         string `db:"name"`
	DisplayOrder int    `db:"display_order"`
	Active       bool   `db:"active"`
	model.Metadata
}
