package validation_test

import (
	"testing"

	"go-ats-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
)

func newValidator(t *testing.T) *validator.Validate {
	t.Helper()
	v := validator.New()
	validation.RegisterValidators(v)
	return v
}

func TestValidPhone(t *testing.T) {
	v := newValidator(t)

	type payload struct {
		Phone string `validate:"valid_phone"`
	}

	t.Run("Accepts E164-like numbers", func(t *testing.T) {
		assert.NoError(t, v.Struct(payload{Phone: "+6281234567890"}))
		assert.NoError(t, v.Struct(payload{Phone: "0812345678"}))
	})

	t.Run("Empty passes, pair with required when mandatory", func(t *testing.T) {
		assert.NoError(t, v.Struct(payload{Phone: ""}))
	})

	t.Run("Rejects letters and short numbers", func(t *testing.T) {
		assert.Error(t, v.Struct(payload{Phone: "not-a-phone"}))
		assert.Error(t, v.Struct(payload{Phone: "12345"}))
	})
}

func TestMinIfSet(t *testing.T) {
	v := newValidator(t)

	type payload struct {
		City string `validate:"min_if_set"`
	}

	assert.NoError(t, v.Struct(payload{City: ""}))
	assert.NoError(t, v.Struct(payload{City: "Oslo"}))
	assert.Error(t, v.Struct(payload{City: "ab"}))
}

func TestFormatValidationErrors(t *testing.T) {
	v := newValidator(t)

	type registration struct {
		Name     string `validate:"required,min=3"`
		Email    string `validate:"required,email"`
		Password string `validate:"required,min=8"`
	}

	err := v.Struct(registration{Name: "ab", Email: "nope", Password: ""})
	assert.Error(t, err)

	verrs, ok := err.(validator.ValidationErrors)
	assert.True(t, ok)

	messages := validation.FormatValidationErrors(verrs)
	// Every violation is reported, not just the first one.
	assert.Len(t, messages, 3)
}
