// internal/utils/validator_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type clientForm struct {
	Name  string `validate:"required"`
	Phone string `validate:"required,phone"`
}

type attributeForm struct {
	Name   string `validate:"required,variant_attr"`
	Values string `validate:"required,variant_attr"`
}

func TestPhoneValidation(t *testing.T) {
	for _, phone := range []string{"0712345678", "+254712345678", "0712 345-678"} {
		assert.NoError(t, ValidateStruct(&clientForm{Name: "Jane", Phone: phone}), phone)
	}
	for _, phone := range []string{"12345", "07123abc78", "+2547123456789012"} {
		assert.Error(t, ValidateStruct(&clientForm{Name: "Jane", Phone: phone}), phone)
	}
}

func TestVariantAttrValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(&attributeForm{Name: "Size", Values: "S, M, L"}))
	assert.Error(t, ValidateStruct(&attributeForm{Name: "Size:", Values: "S"}))
	assert.Error(t, ValidateStruct(&attributeForm{Name: "Size", Values: " , ,"}))
}

func TestGetValidationErrors(t *testing.T) {
	errs := GetValidationErrors(ValidateStruct(&clientForm{Phone: "abc"}))
	require.Len(t, errs, 2)

	assert.Equal(t, "name", errs[0].Field)
	assert.Equal(t, "required", errs[0].Tag)
	assert.Equal(t, "phone", errs[1].Tag)
	assert.Equal(t, "Phone number must have 9 to 15 digits", errs[1].Message)

	assert.Empty(t, GetValidationErrors(nil))
}
