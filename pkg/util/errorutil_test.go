package util

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/spec-kit/task-tracker/internal/domain"
)

func TestToDomainErrorMapsSentinels(t *testing.T) {
	cases := []struct {
		err        error
		wantCode   string
		wantStatus int
	}{
		{domain.ErrTaskNotFound, "NOT_FOUND", http.StatusNotFound},
		{domain.ErrUserNotFound, "NOT_FOUND", http.StatusNotFound},
		{domain.ErrDuplicateUsername, "DUPLICATE_USERNAME", http.StatusConflict},
		{domain.ErrEmptyTitle, "VALIDATION_FAILED", http.StatusBadRequest},
		{domain.ErrInvalidCredentials, "UNAUTHORIZED", http.StatusUnauthorized},
		{errors.New("boom"), "INTERNAL_ERROR", http.StatusInternalServerError},
	}

	for _, tc := range cases {
		got := ToDomainError(tc.err)
		assert.Equal(t, tc.wantCode, got.Code, tc.err.Error())
		assert.Equal(t, tc.wantStatus, got.HTTPStatus, tc.err.Error())
	}
}

func TestToDomainErrorMapsWrappedSentinels(t *testing.T) {
	wrapped := fmt.Errorf("lookup: %w", domain.ErrTaskNotFound)
	got := ToDomainError(wrapped)
	assert.Equal(t, "NOT_FOUND", got.Code)
}

func TestToDomainErrorPassesThroughDomainError(t *testing.T) {
	original := NewValidationError("bad input", map[string]any{"field": "title"})
	got := ToDomainError(original)
	assert.Equal(t, "VALIDATION_FAILED", got.Code)
	assert.Equal(t, "bad input", got.Message)
	assert.Equal(t, "title", got.Details["field"])
}

func TestToDomainErrorNil(t *testing.T) {
	assert.Nil(t, ToDomainError(nil))
}
