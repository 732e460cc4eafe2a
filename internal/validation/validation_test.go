package validation_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/validation"
)

func TestCheckQuantity(t *testing.T) {
	assert.NoError(t, validation.CheckQuantity(1))
	assert.NoError(t, validation.CheckQuantity(100))
	assert.ErrorIs(t, validation.CheckQuantity(0), validation.ErrInvalidQuantity)
	assert.ErrorIs(t, validation.CheckQuantity(-1), validation.ErrInvalidQuantity)
}

func TestAsErrorUnwrapsWrappedErrors(t *testing.T) {
	wrapped := fmt.Errorf("row 3: %w", validation.ErrItemNotFound)

	verr, ok := validation.AsError(wrapped)
	assert.True(t, ok)
	assert.Equal(t, validation.ReasonItemNotFound, verr.Reason)

	_, ok = validation.AsError(errors.New("disk gone"))
	assert.False(t, ok)
}
