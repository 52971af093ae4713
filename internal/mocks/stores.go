// Package mocks provides testify mocks for the model interfaces.
package mocks

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/ozodbek/blogapi/internal/model"
)

// UserStore mocks model.UserStore.
type UserStore struct {
	mock.Mock
}

func (m *UserStore) GetByUsernameOrEmail(ctx context.Context, username, email string) (model.User, error) {
	args := m.Called(ctx, username, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetVerifiedByEmail(ctx context.Context, email string) (model.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) GetByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) Create(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *UserStore) SetAvatar(ctx context.Context, id uuid.UUID, avatarURL string) error {
	args := m.Called(ctx, id, avatarURL)
	return args.Error(0)
}

// SessionStore mocks model.SessionStore.
type SessionStore struct {
	mock.Mock
}

func (m *SessionStore) Create(ctx context.Context, session model.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *SessionStore) GetUserByToken(ctx context.Context, token string, now time.Time) (model.User, error) {
	args := m.Called(ctx, token, now)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *SessionStore) DeleteByToken(ctx context.Context, token string) error {
	args := m.Called(ctx, token)
	return args.Error(0)
}

func (m *SessionStore) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	args := m.Called(ctx, now)
	return args.Get(0).(int64), args.Error(1)
}

// VerificationCodeStore mocks model.VerificationCodeStore.
type VerificationCodeStore struct {
	mock.Mock
}

func (m *VerificationCodeStore) Create(ctx context.Context, code model.VerificationCode) error {
	args := m.Called(ctx, code)
	return args.Error(0)
}

func (m *VerificationCodeStore) GetActive(ctx context.Context, email, purpose string) (model.VerificationCode, error) {
	args := m.Called(ctx, email, purpose)
	return args.Get(0).(model.VerificationCode), args.Error(1)
}

func (m *VerificationCodeStore) MarkUsed(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *VerificationCodeStore) SupersedeActive(ctx context.Context, email, purpose string) error {
	args := m.Called(ctx, email, purpose)
	return args.Error(0)
}

func (m *VerificationCodeStore) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// FormSessionStore mocks model.FormSessionStore.
type FormSessionStore struct {
	mock.Mock
}

func (m *FormSessionStore) Create(ctx context.Context, session model.FormSession) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *FormSessionStore) GetByID(ctx context.Context, id uuid.UUID) (model.FormSession, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.FormSession), args.Error(1)
}

func (m *FormSessionStore) SetCaptcha(ctx context.Context, id uuid.UUID, code string, expiresAt time.Time) error {
	args := m.Called(ctx, id, code, expiresAt)
	return args.Error(0)
}

func (m *FormSessionStore) ClearCaptcha(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *FormSessionStore) SetPending(ctx context.Context, id uuid.UUID, pending model.PendingRegistration) error {
	args := m.Called(ctx, id, pending)
	return args.Error(0)
}

func (m *FormSessionStore) ClearPending(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// PostStore mocks model.PostStore.
type PostStore struct {
	mock.Mock
}

func (m *PostStore) List(ctx context.Context, params model.ListPostsParams) ([]model.Post, error) {
	args := m.Called(ctx, params)
	return args.Get(0).([]model.Post), args.Error(1)
}

func (m *PostStore) GetByID(ctx context.Context, id int64) (model.Post, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Post), args.Error(1)
}

func (m *PostStore) IncrementViews(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// LikeStore mocks model.LikeStore.
type LikeStore struct {
	mock.Mock
}

func (m *LikeStore) Exists(ctx context.Context, userID uuid.UUID, postID int64) (bool, error) {
	args := m.Called(ctx, userID, postID)
	return args.Bool(0), args.Error(1)
}

func (m *LikeStore) Create(ctx context.Context, userID uuid.UUID, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *LikeStore) Delete(ctx context.Context, userID uuid.UUID, postID int64) error {
	args := m.Called(ctx, userID, postID)
	return args.Error(0)
}

func (m *LikeStore) CountByPost(ctx context.Context, postID int64) (int64, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).(int64), args.Error(1)
}

// CommentStore mocks model.CommentStore.
type CommentStore struct {
	mock.Mock
}

func (m *CommentStore) ListByPost(ctx context.Context, postID int64) ([]model.Comment, error) {
	args := m.Called(ctx, postID)
	return args.Get(0).([]model.Comment), args.Error(1)
}

func (m *CommentStore) Create(ctx context.Context, comment model.Comment) error {
	args := m.Called(ctx, comment)
	return args.Error(0)
}

// NewsletterStore mocks model.NewsletterStore.
type NewsletterStore struct {
	mock.Mock
}

func (m *NewsletterStore) GetByEmail(ctx context.Context, email string) (model.Subscriber, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Subscriber), args.Error(1)
}

func (m *NewsletterStore) Create(ctx context.Context, email string) (model.Subscriber, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.Subscriber), args.Error(1)
}

func (m *NewsletterStore) List(ctx context.Context) ([]model.Subscriber, error) {
	args := m.Called(ctx)
	return args.Get(0).([]model.Subscriber), args.Error(1)
}

// ContactStore mocks model.ContactStore.
type ContactStore struct {
	mock.Mock
}

func (m *ContactStore) Create(ctx context.Context, message model.ContactMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// Mailer mocks model.Mailer.
type Mailer struct {
	mock.Mock
}

func (m *Mailer) Send(to []string, subject, body string) error {
	args := m.Called(to, subject, body)
	return args.Error(0)
}

// Storage mocks model.Storage.
type Storage struct {
	mock.Mock
}

func (m *Storage) Upload(ctx context.Context, key, contentType string, reader io.Reader, size int64) error {
	args := m.Called(ctx, key, contentType, reader, size)
	return args.Error(0)
}

func (m *Storage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *Storage) URL(key string) string {
	args := m.Called(key)
	return args.String(0)
}
