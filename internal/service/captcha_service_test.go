package service

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ozodbek/blogapi/internal/logger"
	servermocks "github.com/ozodbek/blogapi/internal/mocks"
	"github.com/ozodbek/blogapi/internal/model"
)

var pngMagic = []byte{0x89, 'P', 'N', 'G'}

func TestCaptcha_Issue_NewSession(t *testing.T) {
	ctx := context.Background()
	formStore := &servermocks.FormSessionStore{}

	formStore.On("Create", mock.Anything, mock.MatchedBy(func(fs model.FormSession) bool {
		return fs.ID != uuid.Nil && fs.CaptchaCode != nil && len(*fs.CaptchaCode) == 6
	})).Return(nil)

	s := NewCaptcha(formStore, logger.New(0))

	sessionID, png, err := s.Issue(ctx, uuid.Nil)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sessionID)
	assert.True(t, bytes.HasPrefix(png, pngMagic))
	formStore.AssertExpectations(t)
}

func TestCaptcha_Issue_ReusesValidSession(t *testing.T) {
	ctx := context.Background()
	formStore := &servermocks.FormSessionStore{}

	existing := model.FormSession{
		ID:        uuid.New(),
		ExpiresAt: time.Now().Add(5 * time.Minute),
	}
	formStore.On("GetByID", mock.Anything, existing.ID).Return(existing, nil)
	formStore.On("SetCaptcha", mock.Anything, existing.ID, mock.Anything, mock.Anything).Return(nil)

	s := NewCaptcha(formStore, logger.New(0))

	sessionID, _, err := s.Issue(ctx, existing.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, sessionID)
	formStore.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCaptcha_Issue_ReplacesExpiredSession(t *testing.T) {
	ctx := context.Background()
	formStore := &servermocks.FormSessionStore{}

	expired := model.FormSession{
		ID:        uuid.New(),
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	formStore.On("GetByID", mock.Anything, expired.ID).Return(expired, nil)
	formStore.On("Create", mock.Anything, mock.Anything).Return(nil)

	s := NewCaptcha(formStore, logger.New(0))

	sessionID, _, err := s.Issue(ctx, expired.ID)
	require.NoError(t, err)
	assert.NotEqual(t, expired.ID, sessionID)
}
