package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleListEvents accepts an optional ?month=YYYY-MM filter.
func (s *HTTPServer) handleListEvents(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Events.List(r.Context(), claimsFrom(r.Context()).UserID, r.URL.Query().Get("month"))
	if err != nil {
		s.fail(w, r, err, "Event")
		return
	}
	s.ok(w, r, http.StatusOK, envelope{"events": list})
}

func (s *HTTPServer) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err, "")
		return
	}

	event, err := s.svc.Events.Create(r.Context(), claimsFrom(r.Context()).UserID, req.input())
	if err != nil {
		s.fail(w, r, err, "Event")
		return
	}
	s.ok(w, r, http.StatusCreated, envelope{"event": event})
}

func (s *HTTPServer) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	var req eventRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err, "")
		return
	}

	event, err := s.svc.Events.Update(r.Context(), claimsFrom(r.Context()).UserID, chi.URLParam(r, "id"), req.input())
	if err != nil {
		s.fail(w, r, err, "Event")
		return
	}
	s.ok(w, r, http.StatusOK, envelope{"event": event})
}

func (s *HTTPServer) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Events.Delete(r.Context(), claimsFrom(r.Context()).UserID, chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err, "Event")
		return
	}
	s.ok(w, r, http.StatusOK, envelope{"message": "Event deleted successfully"})
}
