package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFromStatus(t *testing.T) {
	tests := []struct {
		name        string
		status      int
		code        string
		message     string
		wantCode    string
		wantMessage string
	}{
		{"server code kept", http.StatusUnprocessableEntity, "MOVEMENT_ALREADY_POSTED", "already posted", "MOVEMENT_ALREADY_POSTED", "already posted"},
		{"missing code derived", http.StatusNotFound, "", "gone", CodeNotFound, "gone"},
		{"missing message derived", http.StatusConflict, "", "", CodeConflict, "Conflict"},
		{"unknown status", http.StatusTeapot, "", "", CodeInternal, "I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := FromStatus(tt.status, tt.code, tt.message, nil)
			assert.Equal(t, tt.wantCode, err.Code)
			assert.Equal(t, tt.wantMessage, err.Message)
			assert.Equal(t, tt.status, err.HTTPStatus)
		})
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(NewNotFound("movement", "m1")))
	assert.True(t, IsNotFound(FromStatus(http.StatusNotFound, "SALE_NOT_FOUND", "", nil)))
	assert.True(t, IsNotFound(fmt.Errorf("wrapped: %w", NewNotFound("sale", "s1"))))
	assert.False(t, IsNotFound(NewConflict("busy")))
	assert.False(t, IsNotFound(errors.New("plain")))
}

func TestGetHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusBadGateway, GetHTTPStatus(NewUpstreamUnavailable(errors.New("dial"))))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(errors.New("plain")))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPStatus(&AppError{Code: "X"}))
}

func TestUnwrapKeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := NewUpstreamUnavailable(cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")
}
