package rest

import (
	"net/http"
	"time"

	"github.com/dmitrijs2005/edvora/internal/server/services"
)

func (s *HTTPServer) handleWelcome(w http.ResponseWriter, r *http.Request) {
	s.ok(w, r, http.StatusOK, envelope{
		"message":   "Welcome to Edvora Student Platform API",
		"version":   apiVersion,
		"mode":      s.storage.Mode().Description(),
		"endpoints": endpointIndex,
		"health":    "/health",
	})
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	mode := s.storage.Mode()
	s.ok(w, r, http.StatusOK, envelope{
		"status":    "OK",
		"server":    "Running",
		"database":  mode.Database(),
		"timestamp": s.now().UTC().Format(time.RFC3339),
		"note":      mode.Note(),
	})
}

func (s *HTTPServer) handleQuote(w http.ResponseWriter, r *http.Request) {
	s.ok(w, r, http.StatusOK, envelope{"quote": services.RandomQuote()})
}

func (s *HTTPServer) handleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.Stats.ForUser(r.Context(), claimsFrom(r.Context()).UserID)
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	s.ok(w, r, http.StatusOK, envelope{"stats": stats})
}

func (s *HTTPServer) handleListSessions(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Pomodoro.List(r.Context(), claimsFrom(r.Context()).UserID)
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	s.ok(w, r, http.StatusOK, envelope{"sessions": list})
}

func (s *HTTPServer) handleRecordSession(w http.ResponseWriter, r *http.Request) {
	var req sessionRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err, "")
		return
	}

	session, err := s.svc.Pomodoro.Record(r.Context(), claimsFrom(r.Context()).UserID, req.input())
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	s.ok(w, r, http.StatusCreated, envelope{"session": session})
}

func (s *HTTPServer) handlePomodoroStats(w http.ResponseWriter, r *http.Request) {
	stats, err := s.svc.Pomodoro.Stats(r.Context(), claimsFrom(r.Context()).UserID)
	if err != nil {
		s.fail(w, r, err, "")
		return
	}
	s.ok(w, r, http.StatusOK, envelope{"stats": stats})
}
