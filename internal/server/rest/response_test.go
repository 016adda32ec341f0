package rest

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/stretchr/testify/assert"
)

func TestFail_StatusMapping(t *testing.T) {
	env := newTestEnv(t)

	tests := []struct {
		name     string
		err      error
		resource string
		status   int
		message  string
	}{
		{"validation", common.NewValidationError("Title is required"), "Task", http.StatusBadRequest, "Title is required"},
		{"duplicate", fmt.Errorf("create: %w", &common.DuplicateFieldError{Field: "studentId"}), "", http.StatusBadRequest, "Student ID already exists"},
		{"already exists", common.ErrorAlreadyExists, "", http.StatusBadRequest, "User already exists"},
		{"credentials", common.ErrorInvalidCredentials, "", http.StatusUnauthorized, "Invalid credentials"},
		{"token missing", common.ErrTokenMissing, "", http.StatusUnauthorized, "Access token required"},
		{"token invalid", fmt.Errorf("%w: bad sig", common.ErrInvalidToken), "", http.StatusForbidden, "Invalid or expired token"},
		{"token expired", common.ErrTokenExpired, "", http.StatusForbidden, "Invalid or expired token"},
		{"not found", common.ErrorNotFound, "Task", http.StatusNotFound, "Task not found"},
		{"not found unnamed", common.ErrorNotFound, "", http.StatusNotFound, "Resource not found"},
		{"internal", errors.New("db error: connection reset"), "", http.StatusInternalServerError, "Internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			env.server.fail(rec, httptest.NewRequest(http.MethodGet, "/", nil), tt.err, tt.resource)

			assert.Equal(t, tt.status, rec.Code)
			assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
			assert.JSONEq(t, fmt.Sprintf(`{"success":false,"error":%q}`, tt.message), rec.Body.String())
		})
	}
}
