package handler

import (
	"net/http"
	"time"

	"github.com/ozodbek/blogapi/internal/apierrors"
	"github.com/ozodbek/blogapi/internal/model"
)

type contactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
	Captcha string `json:"captcha"`
}

// Contact stores a captcha-gated contact form submission.
func (h *Handler) Contact(w http.ResponseWriter, r *http.Request) {
	var req contactRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.auth.CheckCaptcha(r.Context(), h.formSessionID(r), req.Captcha); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.contact.Submit(r.Context(), req.Name, req.Email, req.Message); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, envelope{"message": "Sizning habaringiz yuborildi"})
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// NewsletterSubscribe adds an email to the newsletter list.
func (h *Handler) NewsletterSubscribe(w http.ResponseWriter, r *http.Request) {
	var req subscribeRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.newsletter.Subscribe(r.Context(), req.Email); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, envelope{"message": "Muvaffaqiyatli obuna bo'ldingiz! 🎉"})
}

// AdminNewsletter lists subscribers for admin users.
func (h *Handler) AdminNewsletter(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Validate(r.Context(), bearerToken(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !user.IsAdmin {
		h.writeError(w, r, apierrors.NewAuthError("Admin huquqi kerak"))
		return
	}

	subscribers, err := h.newsletter.Subscribers(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if subscribers == nil {
		subscribers = []model.Subscriber{}
	}
	h.writeSuccess(w, envelope{"subscribers": subscribers})
}

// Test reports API liveness.
func (h *Handler) Test(w http.ResponseWriter, r *http.Request) {
	h.writeSuccess(w, envelope{
		"message":   "API ishlamoqda",
		"timestamp": time.Now().Format("2006-01-02 15:04:05"),
	})
}
