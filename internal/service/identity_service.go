package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"romeo/internal/auth"
	apperrors "romeo/internal/errors"
	"romeo/internal/model"
	"romeo/internal/repository"
)

const (
	bcryptCost        = 10
	minPasswordLength = 6
)

// SignupInput carries the signup form fields.
type SignupInput struct {
	Name            string
	Email           string
	Phone           string
	Password        string
	ConfirmPassword string
	AgreeTerms      bool
}

// IdentityService handles signup, login, logout and password reset.
type IdentityService interface {
	Signup(ctx context.Context, in SignupInput) (*model.Session, string, error)
	Login(ctx context.Context, email, password string, rememberMe bool) (*model.Session, string, string, error)
	Restore(ctx context.Context, rememberToken string) (*model.Session, string, error)
	Logout(ctx context.Context, rememberToken string) error
	ResetPassword(ctx context.Context, email string) error
	Current(ctx context.Context) (*model.Session, error)
}

type identityService struct {
	users      repository.UserRepository
	sessions   repository.SessionRepository
	jwtService *auth.JWTService
	remember   auth.RememberStoreInterface
}

// NewIdentityService creates a new identity service.
func NewIdentityService(
	users repository.UserRepository,
	sessions repository.SessionRepository,
	jwtService *auth.JWTService,
	remember auth.RememberStoreInterface,
) IdentityService {
	return &identityService{
		users:      users,
		sessions:   sessions,
		jwtService: jwtService,
		remember:   remember,
	}
}

// normalizeEmail closes the case-sensitivity gap the storefront carried:
// emails compare trimmed and lower-cased everywhere.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Signup registers a new customer and logs them in.
func (s *identityService) Signup(ctx context.Context, in SignupInput) (*model.Session, string, error) {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = normalizeEmail(in.Email)
	in.Phone = strings.TrimSpace(in.Phone)

	if in.Name == "" {
		return nil, "", apperrors.NewValidation("name", "name is required")
	}
	if in.Email == "" {
		return nil, "", apperrors.NewValidation("email", "email is required")
	}
	if in.Phone == "" {
		return nil, "", apperrors.NewValidation("phone", "phone is required")
	}
	if in.Password == "" {
		return nil, "", apperrors.NewValidation("password", "password is required")
	}
	if len(in.Password) < minPasswordLength {
		return nil, "", apperrors.NewValidation("password", "password must be at least 6 characters long")
	}
	if in.Password != in.ConfirmPassword {
		return nil, "", apperrors.NewValidation("confirm_password", "passwords do not match")
	}
	if !in.AgreeTerms {
		return nil, "", apperrors.NewValidation("agree_terms", "terms and conditions must be accepted")
	}

	if _, err := s.users.FindByEmail(ctx, in.Email); err == nil {
		return nil, "", apperrors.ErrDuplicateEmail
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, "", fmt.Errorf("hash password: %w", err)
	}

	user := model.User{
		ID:           uuid.New().String(),
		Name:         in.Name,
		Email:        in.Email,
		Phone:        in.Phone,
		PasswordHash: string(hashed),
		CreatedAt:    time.Now(),
	}
	if err := s.users.Append(ctx, user); err != nil {
		return nil, "", fmt.Errorf("persist user: %w", err)
	}

	session := user.Session()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, "", fmt.Errorf("persist session: %w", err)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate access token: %w", err)
	}

	return &session, accessToken, nil
}

// Login authenticates a customer. With rememberMe it also mints a remember
// token and sets the remember flag.
func (s *identityService) Login(ctx context.Context, email, password string, rememberMe bool) (*model.Session, string, string, error) {
	email = normalizeEmail(email)
	if email == "" {
		return nil, "", "", apperrors.NewValidation("email", "email is required")
	}
	if password == "" {
		return nil, "", "", apperrors.NewValidation("password", "password is required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, "", "", apperrors.ErrNotFound
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", "", apperrors.ErrBadCredentials
	}

	session := user.Session()
	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, "", "", fmt.Errorf("persist session: %w", err)
	}

	var rememberToken string
	if rememberMe {
		if err := s.sessions.SetRemember(ctx, true); err != nil {
			return nil, "", "", fmt.Errorf("persist remember flag: %w", err)
		}
		rememberToken, err = s.remember.Issue(ctx, session)
		if err != nil {
			return nil, "", "", fmt.Errorf("issue remember token: %w", err)
		}
	}

	accessToken, err := s.jwtService.GenerateAccessToken(user.ID, user.Email)
	if err != nil {
		return nil, "", "", fmt.Errorf("generate access token: %w", err)
	}

	return &session, accessToken, rememberToken, nil
}

// Restore re-establishes a session from an unexpired remember token.
func (s *identityService) Restore(ctx context.Context, rememberToken string) (*model.Session, string, error) {
	session, err := s.remember.Lookup(ctx, rememberToken)
	if err != nil {
		return nil, "", apperrors.ErrBadCredentials
	}

	if err := s.sessions.Save(ctx, *session); err != nil {
		return nil, "", fmt.Errorf("persist session: %w", err)
	}

	accessToken, err := s.jwtService.GenerateAccessToken(session.ID, session.Email)
	if err != nil {
		return nil, "", fmt.Errorf("generate access token: %w", err)
	}

	return session, accessToken, nil
}

// Logout clears the session and the remember flag, revoking the remember
// token when one is presented.
func (s *identityService) Logout(ctx context.Context, rememberToken string) error {
	if err := s.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	if err := s.sessions.SetRemember(ctx, false); err != nil {
		return fmt.Errorf("clear remember flag: %w", err)
	}
	if rememberToken != "" {
		_ = s.remember.Revoke(ctx, rememberToken)
	}
	return nil
}

// ResetPassword validates that the email belongs to a registered customer.
// There is no mail transport, so no token is sent and the hash is untouched.
func (s *identityService) ResetPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)
	if email == "" {
		return apperrors.NewValidation("email", "email is required")
	}
	if _, err := s.users.FindByEmail(ctx, email); err != nil {
		return apperrors.ErrNotFound
	}
	return nil
}

// Current returns the stored session, or nil when nobody is logged in.
func (s *identityService) Current(ctx context.Context) (*model.Session, error) {
	return s.sessions.Current(ctx)
}
