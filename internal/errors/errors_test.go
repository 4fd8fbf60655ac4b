package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapErrorToHTTP(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		statusCode int
		code       string
		message    string
	}{
		{"validation", ErrPasswordTooShort, http.StatusBadRequest, "VALIDATION_ERROR", "password must be at least 4 characters"},
		{"unauthenticated", ErrInvalidCredentials, http.StatusUnauthorized, "UNAUTHENTICATED", "invalid username or password"},
		{"forbidden", ErrForbidden, http.StatusForbidden, "FORBIDDEN", "admin privileges required"},
		{"not found", ErrNotFound, http.StatusNotFound, "NOT_FOUND", "record not found"},
		{"conflict is a bad request", ErrFoodExists, http.StatusBadRequest, "CONFLICT", "food already exists"},
		{"wrapped with context", fmt.Errorf("update user: %w", ErrUsernameTaken), http.StatusBadRequest, "CONFLICT", "update user: username already exists"},
		{"unknown hides detail", errors.New("dial tcp 10.0.0.1:3306: refused"), http.StatusInternalServerError, "INTERNAL_ERROR", "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			httpErr := MapErrorToHTTP(tt.err)
			assert.Equal(t, tt.statusCode, httpErr.StatusCode)
			assert.Equal(t, tt.code, httpErr.Code)
			assert.Equal(t, tt.message, httpErr.ToErrorResponse().Error)
		})
	}
}
