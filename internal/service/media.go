package service

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/ozodbek/blogapi/internal/apierrors"
	"github.com/ozodbek/blogapi/internal/logger"
	"github.com/ozodbek/blogapi/internal/model"
)

// MaxAvatarSize limits avatar uploads to 2 MiB.
const MaxAvatarSize = 2 << 20

var avatarExtensions = map[string]string{
	"image/png":  "png",
	"image/jpeg": "jpg",
}

// Media implements avatar uploads to object storage.
type Media struct {
	storage   model.Storage
	userStore model.UserStore
	logger    *logger.Logger
}

func NewMedia(storage model.Storage, userStore model.UserStore, logger *logger.Logger) *Media {
	return &Media{
		storage:   storage,
		userStore: userStore,
		logger:    logger,
	}
}

// UploadAvatar stores the image in object storage and records its
// public URL on the user. Returns the URL.
func (s *Media) UploadAvatar(ctx context.Context, userID uuid.UUID, contentType string, data []byte) (string, error) {
	ext, ok := avatarExtensions[contentType]
	if !ok {
		return "", apierrors.NewValidationError("Faqat PNG yoki JPEG rasm yuklash mumkin")
	}
	if len(data) == 0 || len(data) > MaxAvatarSize {
		return "", apierrors.NewValidationError("Rasm hajmi 2 MB dan oshmasligi kerak")
	}

	key := fmt.Sprintf("avatars/%s.%s", uuid.New(), ext)

	if err := s.storage.Upload(ctx, key, contentType, bytes.NewReader(data), int64(len(data))); err != nil {
		return "", fmt.Errorf("failed to upload avatar: %w", err)
	}

	url := s.storage.URL(key)
	if err := s.userStore.SetAvatar(ctx, userID, url); err != nil {
		if delErr := s.storage.Delete(ctx, key); delErr != nil {
			s.logger.Error("Media service: failed to delete orphaned avatar",
				"key", key,
				"error", delErr.Error())
		}
		return "", fmt.Errorf("failed to set avatar: %w", err)
	}

	s.logger.Info("Media service: avatar uploaded",
		"user_id", userID,
		"key", key)

	return url, nil
}
