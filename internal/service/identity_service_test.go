package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"romeo/internal/auth"
	apperrors "romeo/internal/errors"
	"romeo/internal/repository"
	"romeo/internal/store"
)

func newIdentityFixture() (IdentityService, store.Store) {
	st := store.NewMemory()
	svc := NewIdentityService(
		repository.NewUserRepository(st),
		repository.NewSessionRepository(st),
		auth.NewJWTService("test-secret"),
		auth.NewRememberStore(st),
	)
	return svc, st
}

func validSignup() SignupInput {
	return SignupInput{
		Name:            "Test Customer",
		Email:           "test@example.com",
		Phone:           "+1-555-0100",
		Password:        "password123",
		ConfirmPassword: "password123",
		AgreeTerms:      true,
	}
}

func TestIdentityService_Signup(t *testing.T) {
	tests := []struct {
		name          string
		mutate        func(*SignupInput)
		expectedField string
	}{
		{name: "valid signup", mutate: func(in *SignupInput) {}},
		{name: "missing name", mutate: func(in *SignupInput) { in.Name = " " }, expectedField: "name"},
		{name: "missing phone", mutate: func(in *SignupInput) { in.Phone = "" }, expectedField: "phone"},
		{name: "short password", mutate: func(in *SignupInput) { in.Password = "abc"; in.ConfirmPassword = "abc" }, expectedField: "password"},
		{name: "confirmation mismatch", mutate: func(in *SignupInput) { in.ConfirmPassword = "different1" }, expectedField: "confirm_password"},
		{name: "terms not accepted", mutate: func(in *SignupInput) { in.AgreeTerms = false }, expectedField: "agree_terms"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newIdentityFixture()
			in := validSignup()
			tt.mutate(&in)

			session, accessToken, err := svc.Signup(context.Background(), in)

			if tt.expectedField != "" {
				var ve *apperrors.ValidationError
				assert.ErrorAs(t, err, &ve)
				assert.Equal(t, tt.expectedField, ve.Field)
				assert.Nil(t, session)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, session)
				assert.NotEmpty(t, session.ID)
				assert.Equal(t, "test@example.com", session.Email)
				assert.NotEmpty(t, accessToken)
			}
		})
	}
}

func TestIdentityService_Signup_DuplicateEmail(t *testing.T) {
	ctx := context.Background()
	svc, _ := newIdentityFixture()

	_, _, err := svc.Signup(ctx, validSignup())
	assert.NoError(t, err)

	// second signup with the same email fails, case-insensitively
	in := validSignup()
	in.Email = "TEST@example.com"
	_, _, err = svc.Signup(ctx, in)
	assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
}

func TestIdentityService_Login(t *testing.T) {
	ctx := context.Background()
	svc, _ := newIdentityFixture()

	_, _, err := svc.Signup(ctx, validSignup())
	assert.NoError(t, err)

	tests := []struct {
		name          string
		email         string
		password      string
		expectedError error
	}{
		{name: "signup then login succeeds", email: "test@example.com", password: "password123"},
		{name: "unknown email", email: "nobody@example.com", password: "password123", expectedError: apperrors.ErrNotFound},
		{name: "wrong password", email: "test@example.com", password: "wrongpass", expectedError: apperrors.ErrBadCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			session, accessToken, rememberToken, err := svc.Login(ctx, tt.email, tt.password, false)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, session)
			} else {
				assert.NoError(t, err)
				assert.NotNil(t, session)
				assert.NotEmpty(t, accessToken)
				assert.Empty(t, rememberToken, "no remember token without remember-me")
			}
		})
	}
}

func TestIdentityService_RememberMe(t *testing.T) {
	ctx := context.Background()
	svc, st := newIdentityFixture()

	_, _, err := svc.Signup(ctx, validSignup())
	assert.NoError(t, err)

	session, _, rememberToken, err := svc.Login(ctx, "test@example.com", "password123", true)
	assert.NoError(t, err)
	assert.NotNil(t, session)
	assert.NotEmpty(t, rememberToken)

	var flag bool
	assert.True(t, store.GetJSON(ctx, st, "rememberMe", &flag))
	assert.True(t, flag)

	// logout clears the session and the flag
	assert.NoError(t, svc.Logout(ctx, rememberToken))
	current, err := svc.Current(ctx)
	assert.NoError(t, err)
	assert.Nil(t, current)
	assert.False(t, store.GetJSON(ctx, st, "rememberMe", &flag))

	// the revoked token no longer restores
	_, _, err = svc.Restore(ctx, rememberToken)
	assert.ErrorIs(t, err, apperrors.ErrBadCredentials)
}

func TestIdentityService_Restore(t *testing.T) {
	ctx := context.Background()
	svc, st := newIdentityFixture()

	_, _, err := svc.Signup(ctx, validSignup())
	assert.NoError(t, err)
	_, _, rememberToken, err := svc.Login(ctx, "test@example.com", "password123", true)
	assert.NoError(t, err)

	assert.NoError(t, svc.Logout(ctx, ""))

	restored, accessToken, err := svc.Restore(ctx, rememberToken)
	assert.NoError(t, err)
	assert.Equal(t, "test@example.com", restored.Email)
	assert.NotEmpty(t, accessToken)

	current, err := svc.Current(ctx)
	assert.NoError(t, err)
	assert.NotNil(t, current)

	// an expired record is rejected and removed
	expired := auth.RememberRecord{Session: *restored, ExpiresAt: time.Now().Add(-time.Minute)}
	assert.NoError(t, store.SetJSON(ctx, st, "remember_stale", expired))
	_, _, err = svc.Restore(ctx, "stale")
	assert.ErrorIs(t, err, apperrors.ErrBadCredentials)
}

func TestIdentityService_ResetPassword(t *testing.T) {
	ctx := context.Background()
	svc, _ := newIdentityFixture()

	_, _, err := svc.Signup(ctx, validSignup())
	assert.NoError(t, err)

	assert.NoError(t, svc.ResetPassword(ctx, "Test@Example.com"))
	assert.ErrorIs(t, svc.ResetPassword(ctx, "nobody@example.com"), apperrors.ErrNotFound)

	// reset never touches the stored hash; the old password still works
	_, _, _, err = svc.Login(ctx, "test@example.com", "password123", false)
	assert.NoError(t, err)
}
