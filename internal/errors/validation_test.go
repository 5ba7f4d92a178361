package errors

import (
	stderrors "errors"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError(t *testing.T) {
	err := NewValidationError("test_field", "test message", "test_value")

	assert.Equal(t, "test_field", err.Field)
	assert.Equal(t, "test message", err.Message)
	assert.Equal(t, "test_value", err.Value)
	assert.Equal(t, "validation error on field 'test_field': test message", err.Error())
}

func TestValidationErrors(t *testing.T) {
	var errs ValidationErrors
	assert.Equal(t, "validation failed", errs.Error())

	errs = append(errs, *NewValidationError("field1", "message1", nil))
	assert.Equal(t, "validation failed: field1 message1", errs.Error())

	errs = append(errs, *NewValidationError("field2", "message2", nil))
	assert.Equal(t, "validation failed: 2 field errors", errs.Error())
}

func TestNewValidationErrorWithRule(t *testing.T) {
	err := NewValidationErrorWithRule("test_field", "test message", "required", "test_value")

	assert.Equal(t, "required", err.Rule)
	assert.Equal(t, "test_field", err.Field)
}

func TestValidationError_Wrap(t *testing.T) {
	sentinel := stderrors.New("sentinel")
	err := NewValidationError("index", "out of range", 7).Wrap(sentinel)

	assert.True(t, stderrors.Is(err, sentinel))

	var ve *ValidationError
	require.True(t, stderrors.As(error(err), &ve))
	assert.Equal(t, 7, ve.Value)
}

func TestToValidationErrors(t *testing.T) {
	type sample struct {
		Name string `validate:"required"`
	}

	err := validator.New().Struct(sample{})
	require.Error(t, err)

	errs := ToValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "Name", errs[0].Field)
	assert.Equal(t, "is required", errs[0].Message)
	assert.Equal(t, "required", errs[0].Rule)

	assert.Empty(t, ToValidationErrors(stderrors.New("not a validator error")))
}
