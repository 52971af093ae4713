package handler

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ozodbek/blogapi/internal/logger"
	"github.com/ozodbek/blogapi/internal/service"
	"github.com/ozodbek/blogapi/internal/token"
)

// FormSessionCookie names the cookie carrying the signed form session ID.
const FormSessionCookie = "blog_form_session"

// Handler serves the JSON action API.
type Handler struct {
	auth       *service.Auth
	captcha    *service.Captcha
	content    *service.Content
	newsletter *service.Newsletter
	contact    *service.Contact
	media      *service.Media
	formToken  *token.FormToken
	logger     *logger.Logger
}

func New(
	auth *service.Auth,
	captcha *service.Captcha,
	content *service.Content,
	newsletter *service.Newsletter,
	contact *service.Contact,
	media *service.Media,
	formToken *token.FormToken,
	logger *logger.Logger,
) *Handler {
	return &Handler{
		auth:       auth,
		captcha:    captcha,
		content:    content,
		newsletter: newsletter,
		contact:    contact,
		media:      media,
		formToken:  formToken,
		logger:     logger,
	}
}

// envelope is the uniform response shape. Action-specific fields ride
// alongside success/message.
type envelope map[string]any

// writeJSON emits one envelope. The encoder keeps UTF-8 intact instead
// of HTML-escaping it.
func (h *Handler) writeJSON(w http.ResponseWriter, status int, body envelope) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(body); err != nil {
		h.logger.Error("HTTP handler: failed to encode response",
			"error", err.Error())
	}
}

func (h *Handler) writeSuccess(w http.ResponseWriter, body envelope) {
	if body == nil {
		body = envelope{}
	}
	body["success"] = true
	h.writeJSON(w, http.StatusOK, body)
}

// decodeBody parses a JSON request body into dst. An empty or invalid
// body is a soft validation failure.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errBadBody
	}
	return nil
}

// formSessionID resolves the caller's form session from the signed
// cookie. A missing or invalid cookie yields uuid.Nil.
func (h *Handler) formSessionID(r *http.Request) uuid.UUID {
	cookie, err := r.Cookie(FormSessionCookie)
	if err != nil {
		return uuid.Nil
	}
	id, err := h.formToken.Parse(cookie.Value)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// bearerToken extracts the session token from the Authorization header,
// falling back to the token query parameter.
func bearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if after, ok := strings.CutPrefix(auth, "Bearer "); ok {
		return strings.TrimSpace(after)
	}
	return r.URL.Query().Get("token")
}
