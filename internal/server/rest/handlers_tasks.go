package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (s *HTTPServer) handleListTasks(w http.ResponseWriter, r *http.Request) {
	list, err := s.svc.Tasks.List(r.Context(), claimsFrom(r.Context()).UserID)
	if err != nil {
		s.fail(w, r, err, "Task")
		return
	}
	s.ok(w, r, http.StatusOK, envelope{"tasks": list})
}

func (s *HTTPServer) handleCreateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err, "")
		return
	}

	task, err := s.svc.Tasks.Create(r.Context(), claimsFrom(r.Context()).UserID, req.input())
	if err != nil {
		s.fail(w, r, err, "Task")
		return
	}
	s.ok(w, r, http.StatusCreated, envelope{"task": task})
}

func (s *HTTPServer) handleUpdateTask(w http.ResponseWriter, r *http.Request) {
	var req taskRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err, "")
		return
	}

	task, err := s.svc.Tasks.Update(r.Context(), claimsFrom(r.Context()).UserID, chi.URLParam(r, "id"), req.input())
	if err != nil {
		s.fail(w, r, err, "Task")
		return
	}
	s.ok(w, r, http.StatusOK, envelope{"task": task})
}

func (s *HTTPServer) handleDeleteTask(w http.ResponseWriter, r *http.Request) {
	if err := s.svc.Tasks.Delete(r.Context(), claimsFrom(r.Context()).UserID, chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err, "Task")
		return
	}
	s.ok(w, r, http.StatusOK, envelope{"message": "Task deleted successfully"})
}
