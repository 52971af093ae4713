package handler

import (
	"errors"
	"net/http"

	"github.com/ozodbek/blogapi/internal/apierrors"
)

// errBadBody marks an unparseable request body.
var errBadBody = apierrors.NewValidationError("Noto'g'ri so'rov ma'lumotlari")

// NotFound answers unknown actions and paths.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusNotFound, envelope{
		"success": false,
		"message": "Noto'g'ri so'rov",
	})
}

// writeError maps a service failure to one envelope. Known failures
// carry their own status and user-facing message; anything else is
// logged in full and reported generically.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var apiErr *apierrors.APIError
	if errors.As(err, &apiErr) {
		h.writeJSON(w, apiErr.HTTPStatus, envelope{
			"success": false,
			"message": apiErr.Message,
		})
		return
	}

	h.logger.Error("HTTP handler: request failed",
		"path", r.URL.Path,
		"action", r.URL.Query().Get("action"),
		"error", err.Error())

	h.writeJSON(w, http.StatusInternalServerError, envelope{
		"success": false,
		"message": "Server xatosi yuz berdi",
	})
}
