package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
	}{
		{"validation", Validation("bad input"), http.StatusBadRequest},
		{"invalid quantity", InvalidQuantity("quantity must be positive"), http.StatusBadRequest},
		{"insufficient stock", InsufficientStock("aspirin"), http.StatusBadRequest},
		{"invalid credential", InvalidCredential("invalid password"), http.StatusUnauthorized},
		{"unauthorized", Unauthorized("access denied"), http.StatusForbidden},
		{"not found", NotFound("doctor"), http.StatusNotFound},
		{"drug not found", DrugNotFound("aspirin"), http.StatusNotFound},
		{"already confirmed", AlreadyConfirmed("order already confirmed"), http.StatusConflict},
		{"duplicate", Duplicate("account already exists"), http.StatusConflict},
		{"store", Store(errors.New("connection refused")), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.Status())
		})
	}
}

func TestConstructorMessages(t *testing.T) {
	assert.Equal(t, "doctor not found", NotFound("doctor").Message)
	assert.Equal(t, "not enough stock for aspirin", InsufficientStock("aspirin").Message)
	assert.Equal(t, "drug ibuprofen not found in inventory", DrugNotFound("ibuprofen").Message)
	assert.Equal(t, "internal server error", Store(errors.New("boom")).Message)
}

func TestErrorAndUnwrap(t *testing.T) {
	cause := errors.New("driver: bad connection")
	err := Store(cause)

	assert.Equal(t, "internal server error: driver: bad connection", err.Error())
	assert.Equal(t, cause, errors.Unwrap(err))
	assert.True(t, errors.Is(err, cause))

	plain := Validation("missing field")
	assert.Equal(t, "missing field", plain.Error())
	assert.Nil(t, errors.Unwrap(plain))
}

func TestAsThroughWrappedChain(t *testing.T) {
	inner := NotFound("patient")
	wrapped := fmt.Errorf("loading prescriptions: %w", inner)

	appErr, ok := As(wrapped)
	require.True(t, ok)
	assert.Equal(t, CodeNotFound, appErr.Code)
	assert.Equal(t, "patient not found", appErr.Message)

	_, ok = As(errors.New("plain error"))
	assert.False(t, ok)

	_, ok = As(nil)
	assert.False(t, ok)
}

func TestIsCode(t *testing.T) {
	err := fmt.Errorf("confirming order: %w", AlreadyConfirmed("order already confirmed"))

	assert.True(t, IsCode(err, CodeAlreadyConfirmed))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.False(t, IsCode(errors.New("plain"), CodeStore))
	assert.False(t, IsCode(nil, CodeStore))
}
