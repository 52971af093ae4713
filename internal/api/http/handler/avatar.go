package handler

import (
	"io"
	"net/http"

	"github.com/ozodbek/blogapi/internal/service"
)

// UploadAvatar stores the request body as the caller's avatar image.
// Content type comes from the Content-Type header.
func (h *Handler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	user, err := h.auth.Validate(r.Context(), bearerToken(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	data, err := io.ReadAll(io.LimitReader(r.Body, service.MaxAvatarSize+1))
	if err != nil {
		h.writeError(w, r, errBadBody)
		return
	}

	url, err := h.media.UploadAvatar(r.Context(), user.ID, r.Header.Get("Content-Type"), data)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, envelope{
		"message": "Rasm yuklandi",
		"avatar":  url,
	})
}
