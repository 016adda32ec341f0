package rest

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dmitrijs2005/edvora/internal/common"
	"github.com/go-chi/chi/v5/middleware"
)

type envelope map[string]any

func (s *HTTPServer) writeJSON(w http.ResponseWriter, r *http.Request, status int, data envelope) {
	js, err := json.Marshal(data)
	if err != nil {
		s.logger.Error(r.Context(), "encode response", "error", err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(js)
}

func (s *HTTPServer) ok(w http.ResponseWriter, r *http.Request, status int, data envelope) {
	data["success"] = true
	s.writeJSON(w, r, status, data)
}

func (s *HTTPServer) errorMessage(w http.ResponseWriter, r *http.Request, status int, message string) {
	s.writeJSON(w, r, status, envelope{"success": false, "error": message})
}

func (s *HTTPServer) serverError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Error(r.Context(), "request failed",
		"method", r.Method,
		"path", r.URL.Path,
		"request_id", middleware.GetReqID(r.Context()),
		"error", err,
	)
	s.errorMessage(w, r, http.StatusInternalServerError, "Internal server error")
}

// fail maps a service error to its HTTP status. resource names the entity in
// the 404 message ("Task not found").
func (s *HTTPServer) fail(w http.ResponseWriter, r *http.Request, err error, resource string) {
	var (
		validation *common.ValidationError
		duplicate  *common.DuplicateFieldError
		tooLarge   *http.MaxBytesError
	)

	switch {
	case errors.As(err, &duplicate):
		s.errorMessage(w, r, http.StatusBadRequest, duplicateMessage(duplicate.Field))
	case errors.Is(err, common.ErrorAlreadyExists):
		s.errorMessage(w, r, http.StatusBadRequest, "User already exists")
	case errors.As(err, &validation):
		s.errorMessage(w, r, http.StatusBadRequest, validation.Message)
	case errors.As(err, &tooLarge):
		s.errorMessage(w, r, http.StatusRequestEntityTooLarge, "Request body too large")
	case errors.Is(err, common.ErrorInvalidCredentials):
		s.errorMessage(w, r, http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, common.ErrTokenMissing):
		s.errorMessage(w, r, http.StatusUnauthorized, "Access token required")
	case errors.Is(err, common.ErrInvalidToken), errors.Is(err, common.ErrTokenExpired):
		s.errorMessage(w, r, http.StatusForbidden, "Invalid or expired token")
	case errors.Is(err, common.ErrorNotFound):
		if resource == "" {
			resource = "Resource"
		}
		s.errorMessage(w, r, http.StatusNotFound, resource+" not found")
	default:
		s.serverError(w, r, err)
	}
}

func duplicateMessage(field string) string {
	switch field {
	case "username":
		return "Username already exists"
	case "email":
		return "Email already exists"
	case "studentId":
		return "Student ID already exists"
	}
	return field + " already exists"
}

func (s *HTTPServer) notFound(w http.ResponseWriter, r *http.Request) {
	s.errorMessage(w, r, http.StatusNotFound, "Route not found")
}

func (s *HTTPServer) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	s.errorMessage(w, r, http.StatusMethodNotAllowed, "Method not allowed")
}
