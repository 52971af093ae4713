package handler

import (
	"net/http"
	"strconv"

	"github.com/ozodbek/blogapi/internal/model"
)

// Posts lists posts with pagination and optional search.
func (h *Handler) Posts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))

	posts, err := h.content.ListPosts(r.Context(), model.ListPostsParams{
		Page:   page,
		Limit:  limit,
		Search: q.Get("search"),
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if posts == nil {
		posts = []model.Post{}
	}
	h.writeSuccess(w, envelope{"posts": posts})
}

// Post returns a single post by id and counts the view.
func (h *Handler) Post(w http.ResponseWriter, r *http.Request) {
	id, _ := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)

	post, err := h.content.GetPost(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, envelope{"post": post})
}

type likeRequest struct {
	Token  string `json:"token"`
	PostID int64  `json:"post_id"`
}

// Like toggles the caller's like on a post.
func (h *Handler) Like(w http.ResponseWriter, r *http.Request) {
	var req likeRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Token == "" {
		req.Token = bearerToken(r)
	}

	user, err := h.auth.Validate(r.Context(), req.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	action, count, err := h.content.ToggleLike(r.Context(), user.ID, req.PostID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, envelope{
		"action":     action,
		"like_count": count,
	})
}

// Comments lists a post's comments.
func (h *Handler) Comments(w http.ResponseWriter, r *http.Request) {
	postID, _ := strconv.ParseInt(r.URL.Query().Get("post_id"), 10, 64)

	comments, err := h.content.ListComments(r.Context(), postID)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if comments == nil {
		comments = []model.Comment{}
	}
	h.writeSuccess(w, envelope{"comments": comments})
}

type addCommentRequest struct {
	Token   string `json:"token"`
	PostID  int64  `json:"post_id"`
	Content string `json:"content"`
}

// AddComment stores an authenticated comment on a post.
func (h *Handler) AddComment(w http.ResponseWriter, r *http.Request) {
	var req addCommentRequest
	if err := decodeBody(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	if req.Token == "" {
		req.Token = bearerToken(r)
	}

	user, err := h.auth.Validate(r.Context(), req.Token)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	if err := h.content.AddComment(r.Context(), user.ID, req.PostID, req.Content); err != nil {
		h.writeError(w, r, err)
		return
	}

	h.writeSuccess(w, envelope{"message": "Izoh qo'shildi"})
}
