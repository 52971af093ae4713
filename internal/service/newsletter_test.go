package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ozodbek/blogapi/internal/logger"
	servermocks "github.com/ozodbek/blogapi/internal/mocks"
	"github.com/ozodbek/blogapi/internal/model"
)

func TestNewsletter_Subscribe_Success(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.NewsletterStore{}
	store.On("Create", mock.Anything, "reader@example.com").Return(model.Subscriber{ID: 1, Email: "reader@example.com"}, nil)

	s := NewNewsletter(store, logger.New(0))

	require.NoError(t, s.Subscribe(ctx, " reader@example.com "))
	store.AssertExpectations(t)
}

func TestNewsletter_Subscribe_BadFormat(t *testing.T) {
	s := NewNewsletter(&servermocks.NewsletterStore{}, logger.New(0))

	err := s.Subscribe(context.Background(), "not-an-email")
	requireAPIError(t, err, "Noto'g'ri email format")
}

func TestNewsletter_Subscribe_Duplicate(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.NewsletterStore{}
	store.On("Create", mock.Anything, "reader@example.com").Return(model.Subscriber{}, model.ErrDuplicate)

	s := NewNewsletter(store, logger.New(0))

	err := s.Subscribe(ctx, "reader@example.com")
	requireAPIError(t, err, "Bu email allaqachon obuna bo'lgan")
}

func TestNewsletter_Subscribers(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.NewsletterStore{}
	store.On("List", mock.Anything).Return([]model.Subscriber{{ID: 2}, {ID: 1}}, nil)

	s := NewNewsletter(store, logger.New(0))

	subscribers, err := s.Subscribers(ctx)
	require.NoError(t, err)
	assert.Len(t, subscribers, 2)
}

func TestContact_Submit_Success(t *testing.T) {
	ctx := context.Background()
	store := &servermocks.ContactStore{}
	store.On("Create", mock.Anything, mock.MatchedBy(func(m model.ContactMessage) bool {
		return m.Name == "Ali" && m.Email == "ali@example.com" && m.Message == "salom"
	})).Return(nil)

	s := NewContact(store, logger.New(0))

	require.NoError(t, s.Submit(ctx, " Ali ", "ali@example.com", " salom "))
	store.AssertExpectations(t)
}

func TestContact_Submit_MissingFields(t *testing.T) {
	s := NewContact(&servermocks.ContactStore{}, logger.New(0))

	err := s.Submit(context.Background(), "", "ali@example.com", "salom")
	requireAPIError(t, err, "Barcha maydonlarni to'ldiring")
}

func TestContact_Submit_BadEmail(t *testing.T) {
	s := NewContact(&servermocks.ContactStore{}, logger.New(0))

	err := s.Submit(context.Background(), "Ali", "bad", "salom")
	requireAPIError(t, err, "Noto'g'ri email format")
}
