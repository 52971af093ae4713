package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ozodbek/blogapi/internal/apierrors"
	"github.com/ozodbek/blogapi/internal/logger"
	"github.com/ozodbek/blogapi/internal/model"
)

const (
	defaultPostsPerPage = 10
	maxPostsPerPage     = 50
)

// Like toggle outcomes.
const (
	LikeActionLiked   = "liked"
	LikeActionUnliked = "unliked"
)

// Content implements reading posts, toggling likes and commenting.
type Content struct {
	postStore    model.PostStore
	likeStore    model.LikeStore
	commentStore model.CommentStore
	logger       *logger.Logger
}

func NewContent(
	postStore model.PostStore,
	likeStore model.LikeStore,
	commentStore model.CommentStore,
	logger *logger.Logger,
) *Content {
	return &Content{
		postStore:    postStore,
		likeStore:    likeStore,
		commentStore: commentStore,
		logger:       logger,
	}
}

// ListPosts returns one page of posts, newest first, optionally
// filtered by a search term over title, content and hashtags.
func (s *Content) ListPosts(ctx context.Context, params model.ListPostsParams) ([]model.Post, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = defaultPostsPerPage
	}
	if params.Limit > maxPostsPerPage {
		params.Limit = maxPostsPerPage
	}
	params.Search = strings.TrimSpace(params.Search)

	posts, err := s.postStore.List(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}

	return posts, nil
}

// GetPost returns a single post and counts the view.
func (s *Content) GetPost(ctx context.Context, id int64) (model.Post, error) {
	post, err := s.postStore.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.Post{}, apierrors.NewNotFoundError("Post topilmadi")
		}
		return model.Post{}, fmt.Errorf("failed to get post: %w", err)
	}

	if err := s.postStore.IncrementViews(ctx, id); err != nil {
		s.logger.Error("Content service: failed to increment views",
			"post_id", id,
			"error", err.Error())
	} else {
		post.Views++
	}

	return post, nil
}

// ToggleLike flips the caller's like on a post and returns the action
// taken with the resulting like count.
func (s *Content) ToggleLike(ctx context.Context, userID uuid.UUID, postID int64) (string, int64, error) {
	if _, err := s.postStore.GetByID(ctx, postID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return "", 0, apierrors.NewNotFoundError("Post topilmadi")
		}
		return "", 0, fmt.Errorf("failed to get post: %w", err)
	}

	liked, err := s.likeStore.Exists(ctx, userID, postID)
	if err != nil {
		return "", 0, fmt.Errorf("failed to check like: %w", err)
	}

	action := LikeActionLiked
	if liked {
		action = LikeActionUnliked
		err = s.likeStore.Delete(ctx, userID, postID)
	} else {
		err = s.likeStore.Create(ctx, userID, postID)
		// Two concurrent toggles can race past the existence check; the
		// primary key keeps the state consistent either way.
		if errors.Is(err, model.ErrDuplicate) {
			err = nil
		}
	}
	if err != nil {
		return "", 0, fmt.Errorf("failed to toggle like: %w", err)
	}

	count, err := s.likeStore.CountByPost(ctx, postID)
	if err != nil {
		return "", 0, fmt.Errorf("failed to count likes: %w", err)
	}

	s.logger.Debug("Content service: like toggled",
		"post_id", postID,
		"user_id", userID,
		"action", action)

	return action, count, nil
}

// ListComments returns a post's comments, newest first.
func (s *Content) ListComments(ctx context.Context, postID int64) ([]model.Comment, error) {
	comments, err := s.commentStore.ListByPost(ctx, postID)
	if err != nil {
		return nil, fmt.Errorf("failed to list comments: %w", err)
	}
	return comments, nil
}

// AddComment stores a new comment by the caller on a post.
func (s *Content) AddComment(ctx context.Context, userID uuid.UUID, postID int64, content string) error {
	content = strings.TrimSpace(content)
	if content == "" {
		return apierrors.NewValidationError("Izoh bo'sh bo'lishi mumkin emas")
	}

	if _, err := s.postStore.GetByID(ctx, postID); err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewNotFoundError("Post topilmadi")
		}
		return fmt.Errorf("failed to get post: %w", err)
	}

	comment := model.Comment{
		PostID:  postID,
		UserID:  userID,
		Content: content,
	}
	if err := s.commentStore.Create(ctx, comment); err != nil {
		return fmt.Errorf("failed to create comment: %w", err)
	}

	s.logger.Debug("Content service: comment added",
		"post_id", postID,
		"user_id", userID)

	return nil
}
