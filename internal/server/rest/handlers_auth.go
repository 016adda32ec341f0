package rest

import (
	"net/http"

	"github.com/dmitrijs2005/edvora/internal/server/services"
)

func (s *HTTPServer) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err, "")
		return
	}

	res, err := s.svc.Users.Register(r.Context(), services.RegisterInput{
		Username:   req.Username,
		Email:      req.Email,
		Password:   req.Password,
		Name:       req.Name,
		StudentID:  req.StudentID,
		Department: req.Department,
	})
	if err != nil {
		s.fail(w, r, err, "User")
		return
	}

	s.ok(w, r, http.StatusCreated, envelope{
		"message": "Registration successful!",
		"token":   res.Token,
		"user":    res.User,
	})
}

func (s *HTTPServer) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err, "")
		return
	}

	res, err := s.svc.Users.Login(r.Context(), req.login(), req.Password)
	if err != nil {
		s.fail(w, r, err, "User")
		return
	}

	s.ok(w, r, http.StatusOK, envelope{
		"message": "Login successful!",
		"token":   res.Token,
		"user":    res.User,
	})
}

func (s *HTTPServer) handleProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.svc.Users.Profile(r.Context(), claimsFrom(r.Context()).UserID)
	if err != nil {
		s.fail(w, r, err, "User")
		return
	}
	s.ok(w, r, http.StatusOK, envelope{"user": user})
}

func (s *HTTPServer) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req profileRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err, "")
		return
	}

	user, err := s.svc.Users.UpdateProfile(r.Context(), claimsFrom(r.Context()).UserID, req.input())
	if err != nil {
		s.fail(w, r, err, "User")
		return
	}
	s.ok(w, r, http.StatusOK, envelope{"message": "Profile updated successfully", "user": user})
}

func (s *HTTPServer) handleChangePassword(w http.ResponseWriter, r *http.Request) {
	var req passwordRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err, "")
		return
	}

	err := s.svc.Users.ChangePassword(r.Context(), claimsFrom(r.Context()).UserID, req.CurrentPassword, req.NewPassword)
	if err != nil {
		s.fail(w, r, err, "User")
		return
	}
	s.ok(w, r, http.StatusOK, envelope{"message": "Password updated successfully"})
}

func (s *HTTPServer) handleAvatarUpload(w http.ResponseWriter, r *http.Request) {
	var req avatarRequest
	if err := decodeJSON(r, &req); err != nil {
		s.fail(w, r, err, "")
		return
	}

	up, err := s.svc.Avatars.PresignUpload(r.Context(), claimsFrom(r.Context()).UserID, req.ContentType)
	if err != nil {
		s.fail(w, r, err, "User")
		return
	}
	s.ok(w, r, http.StatusOK, envelope{
		"uploadUrl": up.UploadURL,
		"avatarUrl": up.AvatarURL,
		"user":      up.User,
	})
}
