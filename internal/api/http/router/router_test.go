package router

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ozodbek/blogapi/internal/api/http/handler"
	servermocks "github.com/ozodbek/blogapi/internal/mocks"
	"github.com/ozodbek/blogapi/internal/model"
	"github.com/ozodbek/blogapi/internal/service"
	"github.com/ozodbek/blogapi/internal/testutil"
	"github.com/ozodbek/blogapi/internal/token"
)

type testEnv struct {
	router       http.Handler
	userStore    *servermocks.UserStore
	sessionStore *servermocks.SessionStore
	formStore    *servermocks.FormSessionStore
	postStore    *servermocks.PostStore
	likeStore    *servermocks.LikeStore
	commentStore *servermocks.CommentStore
	newsletter   *servermocks.NewsletterStore
	contactStore *servermocks.ContactStore
	formToken    *token.FormToken
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		userStore:    &servermocks.UserStore{},
		sessionStore: &servermocks.SessionStore{},
		formStore:    &servermocks.FormSessionStore{},
		postStore:    &servermocks.PostStore{},
		likeStore:    &servermocks.LikeStore{},
		commentStore: &servermocks.CommentStore{},
		newsletter:   &servermocks.NewsletterStore{},
		contactStore: &servermocks.ContactStore{},
		formToken:    token.NewFormToken("test-secret"),
	}

	log := testutil.MakeNoopLogger()
	verification := service.NewVerification(&servermocks.VerificationCodeStore{}, &servermocks.Mailer{}, log)
	auth := service.NewAuth(env.userStore, env.sessionStore, env.formStore, verification, log)
	captcha := service.NewCaptcha(env.formStore, log)
	content := service.NewContent(env.postStore, env.likeStore, env.commentStore, log)
	newsletter := service.NewNewsletter(env.newsletter, log)
	contact := service.NewContact(env.contactStore, log)
	media := service.NewMedia(&servermocks.Storage{}, env.userStore, log)

	h := handler.New(auth, captcha, content, newsletter, contact, media, env.formToken, log)
	env.router = New(h, log, "*")
	return env
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestRouter_UnknownAction(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api?action=nope", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Noto'g'ri so'rov", body["message"])
}

func TestRouter_MethodNotAllowedForAction(t *testing.T) {
	env := newTestEnv(t)

	// register is POST-only
	req := httptest.NewRequest(http.MethodGet, "/api?action=register", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_OptionsShortCircuit(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodOptions, "/api?action=posts", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Body.String())
}

func TestRouter_Test(t *testing.T) {
	env := newTestEnv(t)

	req := httptest.NewRequest(http.MethodGet, "/api?action=test", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "API ishlamoqda", body["message"])
	assert.NotEmpty(t, body["timestamp"])
}

func TestRouter_Posts(t *testing.T) {
	env := newTestEnv(t)

	env.postStore.On("List", mock.Anything, model.ListPostsParams{Page: 2, Limit: 5, Search: "go"}).
		Return([]model.Post{{ID: 1, Title: "salom"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api?action=posts&page=2&limit=5&search=go", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, true, body["success"])
	posts := body["posts"].([]any)
	require.Len(t, posts, 1)
}

func TestRouter_Post_NotFound(t *testing.T) {
	env := newTestEnv(t)

	env.postStore.On("GetByID", mock.Anything, int64(99)).Return(model.Post{}, model.ErrNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api?action=post&id=99", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusNotFound, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Post topilmadi", body["message"])
}

func TestRouter_Like_RequiresAuth(t *testing.T) {
	env := newTestEnv(t)

	payload, _ := json.Marshal(map[string]any{"post_id": 7})
	req := httptest.NewRequest(http.MethodPost, "/api?action=like", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Tizimga kiring", body["message"])
}

func TestRouter_Like_Toggle(t *testing.T) {
	env := newTestEnv(t)
	userID := uuid.New()

	env.sessionStore.On("GetUserByToken", mock.Anything, "tok", mock.Anything).
		Return(model.User{ID: userID}, nil)
	env.postStore.On("GetByID", mock.Anything, int64(7)).Return(model.Post{ID: 7}, nil)
	env.likeStore.On("Exists", mock.Anything, userID, int64(7)).Return(false, nil)
	env.likeStore.On("Create", mock.Anything, userID, int64(7)).Return(nil)
	env.likeStore.On("CountByPost", mock.Anything, int64(7)).Return(int64(3), nil)

	payload, _ := json.Marshal(map[string]any{"token": "tok", "post_id": 7})
	req := httptest.NewRequest(http.MethodPost, "/api?action=like", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "liked", body["action"])
	assert.Equal(t, float64(3), body["like_count"])
}

func TestRouter_Register_WrongCaptchaIsSoftFailure(t *testing.T) {
	env := newTestEnv(t)

	sessionID := uuid.New()
	code := "AB12cd"
	env.formStore.On("GetByID", mock.Anything, sessionID).Return(model.FormSession{
		ID:          sessionID,
		CaptchaCode: &code,
		ExpiresAt:   time.Now().Add(time.Minute),
	}, nil)
	env.formStore.On("ClearCaptcha", mock.Anything, sessionID).Return(nil)

	cookie, err := env.formToken.Sign(sessionID)
	require.NoError(t, err)

	payload, _ := json.Marshal(map[string]any{
		"username": "ali",
		"email":    "ali@gmail.com",
		"password": "secret123",
		"captcha":  "wrong",
	})
	req := httptest.NewRequest(http.MethodPost, "/api?action=register", bytes.NewReader(payload))
	req.AddCookie(&http.Cookie{Name: handler.FormSessionCookie, Value: cookie})
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	// soft failure: HTTP 200 with success=false
	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Captcha noto'g'ri", body["message"])
}

func TestRouter_NewsletterSubscribe_PreservesEmoji(t *testing.T) {
	env := newTestEnv(t)

	env.newsletter.On("Create", mock.Anything, "reader@example.com").
		Return(model.Subscriber{ID: 1, Email: "reader@example.com"}, nil)

	payload, _ := json.Marshal(map[string]any{"email": "reader@example.com"})
	req := httptest.NewRequest(http.MethodPost, "/api?action=newsletter-subscribe", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	// encoder must not HTML-escape; the emoji survives byte-for-byte
	assert.Contains(t, rec.Body.String(), "Muvaffaqiyatli obuna bo'ldingiz! 🎉")
}

func TestRouter_AdminNewsletter_RequiresAdmin(t *testing.T) {
	env := newTestEnv(t)

	env.sessionStore.On("GetUserByToken", mock.Anything, "tok", mock.Anything).
		Return(model.User{ID: uuid.New(), IsAdmin: false}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api?action=admin-newsletter&token=tok", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, "Admin huquqi kerak", body["message"])
}

func TestRouter_AdminNewsletter_ListsSubscribers(t *testing.T) {
	env := newTestEnv(t)

	env.sessionStore.On("GetUserByToken", mock.Anything, "tok", mock.Anything).
		Return(model.User{ID: uuid.New(), IsAdmin: true}, nil)
	env.newsletter.On("List", mock.Anything).Return([]model.Subscriber{{ID: 1}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api?action=admin-newsletter", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	require.Len(t, body["subscribers"].([]any), 1)
}

func TestRouter_CaptchaImage(t *testing.T) {
	env := newTestEnv(t)

	env.formStore.On("Create", mock.Anything, mock.Anything).Return(nil)

	req := httptest.NewRequest(http.MethodGet, "/api/captcha", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))

	var sessionCookie *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == handler.FormSessionCookie {
			sessionCookie = c
		}
	}
	require.NotNil(t, sessionCookie, "captcha response must set the form session cookie")

	id, err := env.formToken.Parse(sessionCookie.Value)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, id)
}

func TestRouter_Contact_CaptchaGate(t *testing.T) {
	env := newTestEnv(t)

	// no form session cookie at all
	payload, _ := json.Marshal(map[string]any{
		"name":    "Ali",
		"email":   "ali@example.com",
		"message": "salom",
		"captcha": "abc",
	})
	req := httptest.NewRequest(http.MethodPost, "/api?action=contact", bytes.NewReader(payload))
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Captcha noto'g'ri", body["message"])
}

func TestRouter_Comments_Get(t *testing.T) {
	env := newTestEnv(t)

	env.commentStore.On("ListByPost", mock.Anything, int64(7)).
		Return([]model.Comment{{ID: 2, Content: "ikkinchi"}, {ID: 1, Content: "birinchi"}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api?action=comments&post_id=7", nil)
	rec := httptest.NewRecorder()
	env.router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeEnvelope(t, rec)
	require.Len(t, body["comments"].([]any), 2)
}
