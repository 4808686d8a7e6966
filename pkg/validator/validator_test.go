package validator

import (
	"encoding/json"
	"testing"

	"hospital-management-api/pkg/optional"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type contact struct {
	Name  string `json:"name" validate:"required,notblank,max=10"`
	Phone string `json:"phone" validate:"required,mindigits=10"`
	Email string `json:"email" validate:"required,emailish"`
}

type contactPatch struct {
	Name optional.Value[string] `json:"name" validate:"omitempty,min=1,max=10"`
	Age  optional.Value[int]    `json:"age" validate:"omitempty,gt=0,lt=150"`
	Code optional.Value[string] `json:"code" validate:"omitempty,startswith=H-"`
}

type ward struct {
	Beds      int `json:"beds"`
	Occupancy int `json:"occupancy"`
}

func TestValidate_CustomTags(t *testing.T) {
	cv := NewValidator()

	err := cv.Validate(&contact{Name: "Ana", Phone: "(555) 123-4567", Email: "ana@clinic.org"})
	assert.NoError(t, err)

	err = cv.Validate(&contact{Name: "   ", Phone: "555-123-456", Email: "ana-at-clinic"})
	require.Error(t, err)

	errs := cv.FormatValidationErrors(err)
	assert.Equal(t, "name cannot be empty", errs["name"])
	assert.Equal(t, "phone must have at least 10 digits", errs["phone"])
	assert.Equal(t, "invalid email format", errs["email"])
}

func TestValidate_OptionalFields(t *testing.T) {
	cv := NewValidator()

	tests := []struct {
		name    string
		payload string
		field   string
	}{
		{name: "absent fields are skipped", payload: `{}`},
		{name: "null fields are skipped", payload: `{"age": null, "name": null}`},
		{name: "empty string is checked", payload: `{"name": ""}`, field: "name"},
		{name: "zero age is checked", payload: `{"age": 0}`, field: "age"},
		{name: "upper age bound", payload: `{"age": 150}`, field: "age"},
		{name: "prefix", payload: `{"code": "X-1"}`, field: "code"},
		{name: "valid values", payload: `{"name": "Ana", "age": 149, "code": "H-1"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var p contactPatch
			require.NoError(t, json.Unmarshal([]byte(tt.payload), &p))

			err := cv.Validate(&p)
			if tt.field == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, cv.FormatValidationErrors(err), tt.field)
		})
	}
}

func TestValidate_StructLevel(t *testing.T) {
	cv := NewValidator()
	cv.RegisterStructValidation(func(sl validator.StructLevel) {
		w := sl.Current().Interface().(ward)
		if w.Occupancy > w.Beds {
			sl.ReportError(w.Occupancy, "occupancy", "Occupancy", "ltefield", "beds")
		}
	}, ward{})

	assert.NoError(t, cv.Validate(ward{Beds: 10, Occupancy: 10}))

	err := cv.Validate(ward{Beds: 10, Occupancy: 11})
	require.Error(t, err)
	assert.Equal(t, "occupancy (11) cannot exceed beds", cv.FormatValidationErrors(err)["occupancy"])
}
