package shared_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"thorn/shared"
	"thorn/shared/constant"
	"thorn/shared/dto"
)

func TestConvertStringToBool(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  *bool
	}{
		{
			name:  "true",
			value: "true",
			want:  boolPtr(true),
		},
		{
			name:  "false",
			value: "false",
			want:  boolPtr(false),
		},
		{
			name:  "numeric true",
			value: "1",
			want:  boolPtr(true),
		},
		{
			name:  "empty returns nil",
			value: "",
			want:  nil,
		},
		{
			name:  "garbage returns nil",
			value: "maybe",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shared.ConvertStringToBool(tt.value)

			if tt.want == nil {
				assert.Nil(t, got)
			} else {
				assert.NotNil(t, got)
				assert.Equal(t, *tt.want, *got)
			}
		})
	}
}

func boolPtr(value bool) *bool {
	return &value
}

func TestCalculateTotalPage(t *testing.T) {
	tests := []struct {
		name  string
		total int
		limit int
		want  int
	}{
		{
			name:  "exact division",
			total: 20,
			limit: 10,
			want:  2,
		},
		{
			name:  "rounds up",
			total: 21,
			limit: 10,
			want:  3,
		},
		{
			name:  "zero total",
			total: 0,
			limit: 10,
			want:  1,
		},
		{
			name:  "zero limit",
			total: 20,
			limit: 0,
			want:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, shared.CalculateTotalPage(tt.total, tt.limit))
		})
	}
}

func TestTransformFields(t *testing.T) {
	type updateRequest struct {
		Name   string `db:"name"`
		Email  string `db:"email"`
		Hidden string
	}

	req := updateRequest{
		Name:   "New Name",
		Hidden: "not mapped",
	}

	fields := shared.TransformFields(req, "test-user")

	assert.Equal(t, "New Name", fields["name"])
	assert.NotContains(t, fields, "email")
	assert.Equal(t, "test-user", fields[constant.FieldModifiedBy])
	assert.Contains(t, fields, constant.FieldModifiedAt)
}

func TestBuildCacheKey(t *testing.T) {
	assert.Equal(t, "booking:gets:1", shared.BuildCacheKey("booking", "gets", "1"))
}

func TestBuildCacheKeyWithQuery(t *testing.T) {
	params := dto.QueryParams{Page: 2, Limit: 10}

	filter := dto.FilterGroup{
		Filters: []any{
			dto.Filter{
				Field:    "status",
				Value:    "confirmed",
				Operator: dto.FilterOperatorEq,
				Table:    "bookings",
			},
		},
	}

	first := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)
	second := shared.BuildCacheKeyWithQuery("booking:gets", params, filter)

	assert.Equal(t, first, second)
	assert.NotEqual(t, first, shared.BuildCacheKeyWithQuery("booking:gets", dto.QueryParams{Page: 3, Limit: 10}, filter))
}

func TestFilterByID(t *testing.T) {
	filter := shared.FilterByID("test-id", "id", "bookings")

	assert.Len(t, filter.Filters, 1)

	inner, ok := filter.Filters[0].(dto.Filter)

	assert.True(t, ok)
	assert.Equal(t, "id", inner.Field)
	assert.Equal(t, "test-id", inner.Value)
	assert.Equal(t, "bookings", inner.Table)
}
