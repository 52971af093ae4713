package handler

import (
	"net/http"

	"github.com/ozodbek/blogapi/internal/service"
)

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Captcha  string `json:"captcha"`
}

// Register starts a registration: captcha, input checks, verification
// code by mail, pending data parked in the form session.
func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	err := h.auth.Register(r.Context(), h.formSessionID(r), service.RegisterParams{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Captcha:  req.Captcha,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, envelope{
		"message": "Tasdiqlash kodi emailingizga yuborildi",
	})
}

type verifyEmailRequest struct {
	Code string `json:"code"`
}

// VerifyEmail finishes a registration with the mailed code.
func (h *Handler) VerifyEmail(w http.ResponseWriter, r *http.Request) {
	var req verifyEmailRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.auth.VerifyEmail(r.Context(), h.formSessionID(r), req.Code); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, envelope{
		"message": "Ro'yxatdan o'tish muvaffaqiyatli yakunlandi!",
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Captcha  string `json:"captcha"`
}

// Login checks credentials and returns the user with a bearer token.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	user, sessionToken, err := h.auth.Login(r.Context(), h.formSessionID(r), service.LoginParams{
		Email:    req.Email,
		Password: req.Password,
		Captcha:  req.Captcha,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, envelope{
		"message": "Muvaffaqiyatli tizimga kirdingiz!",
		"user":    user,
		"token":   sessionToken,
	})
}

// Logout deletes the caller's session.
func (h *Handler) Logout(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Token string `json:"token"`
	}
	// Token may arrive in the body or the Authorization header.
	_ = decodeBody(r, &req)
	if req.Token == "" {
		req.Token = bearerToken(r)
	}

	if err := h.auth.Logout(r.Context(), req.Token); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, envelope{
		"message": "Tizimdan chiqdingiz",
	})
}
