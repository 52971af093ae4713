package handler

import (
	"net/http"
	"time"

	"github.com/ozodbek/blogapi/internal/model"
)

// CaptchaImage issues a new challenge PNG and binds its answer to the
// caller's form session via the signed cookie.
func (h *Handler) CaptchaImage(w http.ResponseWriter, r *http.Request) {
	sessionID, png, err := h.captcha.Issue(r.Context(), h.formSessionID(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	signed, err := h.formToken.Sign(sessionID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     FormSessionCookie,
		Value:    signed,
		Path:     "/",
		MaxAge:   int(model.FormSessionDuration / time.Second),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", "no-store")
	if _, err := w.Write(png); err != nil {
		h.logger.Error("HTTP handler: failed to write captcha image",
			"error", err.Error())
	}
}
