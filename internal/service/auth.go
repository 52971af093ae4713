package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ozodbek/blogapi/internal/apierrors"
	"github.com/ozodbek/blogapi/internal/captcha"
	"github.com/ozodbek/blogapi/internal/logger"
	"github.com/ozodbek/blogapi/internal/model"
)

// Auth implements the registration, email verification, login and
// session lifecycle.
type Auth struct {
	userStore    model.UserStore
	sessionStore model.SessionStore
	formStore    model.FormSessionStore
	verification *Verification
	logger       *logger.Logger
}

func NewAuth(
	userStore model.UserStore,
	sessionStore model.SessionStore,
	formStore model.FormSessionStore,
	verification *Verification,
	logger *logger.Logger,
) *Auth {
	return &Auth{
		userStore:    userStore,
		sessionStore: sessionStore,
		formStore:    formStore,
		verification: verification,
		logger:       logger,
	}
}

// RegisterParams defines the parameters for starting a registration.
type RegisterParams struct {
	Username string
	Email    string
	Password string
	Captcha  string
}

// LoginParams defines the parameters for user login.
type LoginParams struct {
	Email    string
	Password string
	Captcha  string
}

// Register validates the captcha and input, sends a verification code
// and parks the registration in the caller's form session until the
// code is confirmed. No user row is created here.
func (a *Auth) Register(ctx context.Context, formSessionID uuid.UUID, params RegisterParams) error {
	a.logger.Debug("Auth service: starting registration",
		"username", params.Username,
		"email", params.Email)

	if err := a.CheckCaptcha(ctx, formSessionID, params.Captcha); err != nil {
		return err
	}

	if params.Username == "" || params.Password == "" {
		return apierrors.NewValidationError("Barcha maydonlarni to'ldiring")
	}

	if !isAllowedEmail(params.Email) {
		return apierrors.NewValidationError("Faqat @gmail.com manzillari qabul qilinadi")
	}

	// Fast-path duplicate check. The unique constraint on insert is the
	// authoritative signal; see VerifyEmail.
	existing, err := a.userStore.GetByUsernameOrEmail(ctx, params.Username, params.Email)
	if err != nil && !errors.Is(err, model.ErrNotFound) {
		a.logger.Error("Auth service: failed to check existing user",
			"email", params.Email,
			"error", err.Error())
		return fmt.Errorf("failed to get user by username or email: %w", err)
	}
	if existing.ID != uuid.Nil {
		a.logger.Info("Auth service: user already exists",
			"username", params.Username,
			"email", params.Email)
		return apierrors.NewConflictError("Foydalanuvchi yoki email allaqachon mavjud")
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := a.verification.Issue(ctx, params.Email, model.PurposeRegistration); err != nil {
		return err
	}

	pending := model.PendingRegistration{
		Username:     params.Username,
		Email:        params.Email,
		PasswordHash: string(passwordHash),
	}
	if err := a.formStore.SetPending(ctx, formSessionID, pending); err != nil {
		return fmt.Errorf("failed to store pending registration: %w", err)
	}

	a.logger.Info("Auth service: registration started",
		"username", params.Username,
		"email", params.Email)

	return nil
}

// VerifyEmail consumes the submitted code against the pending
// registration held in the form session and creates the verified user.
func (a *Auth) VerifyEmail(ctx context.Context, formSessionID uuid.UUID, code string) error {
	a.logger.Debug("Auth service: verifying email",
		"form_session_id", formSessionID)

	fs, err := a.formStore.GetByID(ctx, formSessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return apierrors.NewValidationError("Ro'yxatdan o'tish sessiyasi topilmadi")
		}
		return fmt.Errorf("failed to get form session: %w", err)
	}
	if fs.Expired(time.Now()) || fs.Pending == nil {
		return apierrors.NewValidationError("Ro'yxatdan o'tish sessiyasi topilmadi")
	}

	pending := *fs.Pending

	if err := a.verification.Verify(ctx, pending.Email, code, model.PurposeRegistration); err != nil {
		return err
	}

	now := time.Now()
	user := model.User{
		ID:           uuid.New(),
		Username:     pending.Username,
		Email:        pending.Email,
		PasswordHash: pending.PasswordHash,
		IsVerified:   true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if _, err := a.userStore.Create(ctx, user); err != nil {
		if errors.Is(err, model.ErrDuplicate) {
			return apierrors.NewConflictError("Foydalanuvchi yoki email allaqachon mavjud")
		}
		a.logger.Error("Auth service: failed to create user",
			"email", pending.Email,
			"error", err.Error())
		return fmt.Errorf("failed to create user: %w", err)
	}

	if err := a.formStore.ClearPending(ctx, formSessionID); err != nil {
		a.logger.Error("Auth service: failed to clear pending registration",
			"form_session_id", formSessionID,
			"error", err.Error())
	}

	a.logger.Info("Auth service: registration completed",
		"username", pending.Username,
		"email", pending.Email)

	return nil
}

// Login checks the captcha and credentials and issues a bearer token
// valid for the session duration.
func (a *Auth) Login(ctx context.Context, formSessionID uuid.UUID, params LoginParams) (model.User, string, error) {
	a.logger.Debug("Auth service: starting login",
		"email", params.Email)

	if err := a.CheckCaptcha(ctx, formSessionID, params.Captcha); err != nil {
		return model.User{}, "", err
	}

	user, err := a.userStore.GetVerifiedByEmail(ctx, params.Email)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, "", apierrors.NewValidationError("Email yoki parol noto'g'ri")
		}
		return model.User{}, "", fmt.Errorf("failed to get verified user by email: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(params.Password)); err != nil {
		return model.User{}, "", apierrors.NewValidationError("Email yoki parol noto'g'ri")
	}

	sessionToken, err := generateSessionToken()
	if err != nil {
		return model.User{}, "", fmt.Errorf("failed to generate session token: %w", err)
	}

	now := time.Now()
	session := model.Session{
		Token:     sessionToken,
		UserID:    user.ID,
		ExpiresAt: now.Add(model.SessionDuration),
		CreatedAt: now,
	}
	if err := a.sessionStore.Create(ctx, session); err != nil {
		return model.User{}, "", fmt.Errorf("failed to create session: %w", err)
	}

	a.logger.Info("Auth service: login completed",
		"email", params.Email,
		"user_id", user.ID)

	return user, sessionToken, nil
}

// Validate resolves a bearer token to its user. Expired or unknown
// tokens are reported as an auth failure.
func (a *Auth) Validate(ctx context.Context, sessionToken string) (model.User, error) {
	if sessionToken == "" {
		return model.User{}, apierrors.NewAuthError("Tizimga kiring")
	}

	user, err := a.sessionStore.GetUserByToken(ctx, sessionToken, time.Now())
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.User{}, apierrors.NewAuthError("Tizimga kiring")
		}
		return model.User{}, fmt.Errorf("failed to get user by session token: %w", err)
	}

	return user, nil
}

// Logout deletes the session row for the presented token.
func (a *Auth) Logout(ctx context.Context, sessionToken string) error {
	if sessionToken == "" {
		return apierrors.NewAuthError("Tizimga kiring")
	}
	if err := a.sessionStore.DeleteByToken(ctx, sessionToken); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// CheckCaptcha consumes the challenge stored in the form session and
// compares it with the submission. The stored answer is cleared on
// every attempt, so each rendered challenge is checked at most once.
func (a *Auth) CheckCaptcha(ctx context.Context, formSessionID uuid.UUID, submitted string) error {
	wrong := apierrors.NewValidationError("Captcha noto'g'ri")

	if formSessionID == uuid.Nil {
		return wrong
	}

	fs, err := a.formStore.GetByID(ctx, formSessionID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return wrong
		}
		return fmt.Errorf("failed to get form session: %w", err)
	}

	if fs.Expired(time.Now()) || fs.CaptchaCode == nil {
		return wrong
	}

	stored := *fs.CaptchaCode
	if err := a.formStore.ClearCaptcha(ctx, formSessionID); err != nil {
		return fmt.Errorf("failed to clear captcha: %w", err)
	}

	if !captcha.Check(submitted, stored) {
		return wrong
	}

	return nil
}

func generateSessionToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

func isAllowedEmail(email string) bool {
	if _, err := mail.ParseAddress(email); err != nil {
		return false
	}
	return strings.HasSuffix(strings.ToLower(email), "@gmail.com")
}
