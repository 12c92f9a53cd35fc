package errors

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("student_id", "is required", "")

	assert.Equal(t, "student_id", err.Field)
	assert.Equal(t, "is required", err.Message)
	assert.Equal(t, "", err.Value)
	assert.Equal(t, "validation error on field 'student_id': is required", err.Error())
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "validation failed", errs.Error())

	errs = append(errs, *NewValidationError("month", "must be a month between 1 and 12", 13))
	assert.Equal(t, "validation failed: month must be a month between 1 and 12", errs.Error())

	errs = append(errs, *NewValidationError("year", "is required", 0))
	assert.Equal(t, "validation failed: 2 field errors", errs.Error())
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("report_type", "must be a valid report type (monthly, weekly)", "report_type", "daily")

	assert.Equal(t, "report_type", err.Rule)
	assert.Equal(t, "report_type", err.Field)
	assert.Equal(t, "daily", err.Value)
}

func TestToValidationErrors(t *testing.T) {
	type request struct {
		Start string `validate:"required,datetime=2006-01-02"`
		Order string `validate:"omitempty,oneof=asc desc"`
	}

	err := validator.New().Struct(request{Start: "2024/10/01", Order: "up"})
	require.Error(t, err)

	errs := ToValidationErrors(err)
	require.Len(t, errs, 2)
	assert.Equal(t, "Start", errs[0].Field)
	assert.Equal(t, "datetime", errs[0].Rule)
	assert.Equal(t, "must be a date in the format 2006-01-02", errs[0].Message)
	assert.Equal(t, "must be one of: asc desc", errs[1].Message)
}

func TestToValidationErrors_NonValidatorError(t *testing.T) {
	assert.Empty(t, ToValidationErrors(assert.AnError))
}
