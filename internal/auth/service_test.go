package auth_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/usersvc/internal/auth"
	"github.com/dmitrymomot/usersvc/internal/user"
	"github.com/dmitrymomot/usersvc/pkg/password"
	"github.com/dmitrymomot/usersvc/pkg/token"
)

func storedUser(t *testing.T, plaintext string) user.User {
	t.Helper()
	hash, err := password.Hash(plaintext)
	require.NoError(t, err)
	return user.User{
		ID:           1,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "a@example.com",
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC().Truncate(time.Second),
	}
}

func TestRegister(t *testing.T) {
	t.Parallel()

	t.Run("creates user and issues token", func(t *testing.T) {
		t.Parallel()
		storage := new(MockStorage)
		issuer := new(MockIssuer)
		svc := auth.NewService(storage, issuer)

		created := storedUser(t, "s3cret")
		storage.On("Create", mock.Anything, "Ada", "Lovelace", "a@example.com", mock.MatchedBy(func(hash string) bool {
			// The stored value must be a verifiable hash, never the plaintext.
			ok, err := password.Verify("s3cret", hash)
			return err == nil && ok
		})).Return(created, nil)
		issuer.On("Issue", mock.MatchedBy(func(identity token.Identity) bool {
			return identity.ID == created.ID && identity.Email == created.Email
		})).Return("signed-token", nil)

		tok, err := svc.Register(context.Background(), auth.RegisterInput{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Email:     "a@example.com",
			Password:  "s3cret",
		})
		require.NoError(t, err)
		assert.Equal(t, "signed-token", tok)
		storage.AssertExpectations(t)
		issuer.AssertExpectations(t)
	})

	t.Run("duplicate email", func(t *testing.T) {
		t.Parallel()
		storage := new(MockStorage)
		issuer := new(MockIssuer)
		svc := auth.NewService(storage, issuer)

		storage.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(user.User{}, user.ErrEmailTaken)

		_, err := svc.Register(context.Background(), auth.RegisterInput{Email: "a@example.com", Password: "x"})
		require.ErrorIs(t, err, user.ErrEmailTaken)
		issuer.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("issuer failure surfaces as error", func(t *testing.T) {
		t.Parallel()
		storage := new(MockStorage)
		issuer := new(MockIssuer)
		svc := auth.NewService(storage, issuer)

		storage.On("Create", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(storedUser(t, "x"), nil)
		issuer.On("Issue", mock.Anything).Return("", errors.New("sign failed"))

		_, err := svc.Register(context.Background(), auth.RegisterInput{Email: "a@example.com", Password: "x"})
		require.Error(t, err)
		require.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}

func TestLogin(t *testing.T) {
	t.Parallel()

	t.Run("valid credentials", func(t *testing.T) {
		t.Parallel()
		storage := new(MockStorage)
		issuer := new(MockIssuer)
		svc := auth.NewService(storage, issuer)

		u := storedUser(t, "s3cret")
		storage.On("GetByEmail", mock.Anything, u.Email).Return(u, nil)
		issuer.On("Issue", mock.MatchedBy(func(identity token.Identity) bool {
			return identity.ID == u.ID && identity.Email == u.Email
		})).Return("signed-token", nil)

		tok, err := svc.Login(context.Background(), u.Email, "s3cret")
		require.NoError(t, err)
		assert.Equal(t, "signed-token", tok)
	})

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		storage := new(MockStorage)
		issuer := new(MockIssuer)
		svc := auth.NewService(storage, issuer)

		u := storedUser(t, "s3cret")
		storage.On("GetByEmail", mock.Anything, u.Email).Return(u, nil)

		_, err := svc.Login(context.Background(), u.Email, "wrong")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
		issuer.AssertNotCalled(t, "Issue", mock.Anything)
	})

	t.Run("unknown email is indistinguishable from wrong password", func(t *testing.T) {
		t.Parallel()
		storage := new(MockStorage)
		issuer := new(MockIssuer)
		svc := auth.NewService(storage, issuer)

		storage.On("GetByEmail", mock.Anything, "nobody@example.com").
			Return(user.User{}, user.ErrNotFound)

		_, err := svc.Login(context.Background(), "nobody@example.com", "whatever")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("corrupt stored hash is logged but rejected generically", func(t *testing.T) {
		t.Parallel()
		storage := new(MockStorage)
		issuer := new(MockIssuer)

		var buf bytes.Buffer
		log := slog.New(slog.NewJSONHandler(&buf, nil))
		svc := auth.NewService(storage, issuer, auth.WithLogger(log))

		u := storedUser(t, "s3cret")
		u.PasswordHash = "corrupted"
		storage.On("GetByEmail", mock.Anything, u.Email).Return(u, nil)

		_, err := svc.Login(context.Background(), u.Email, "s3cret")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
		assert.Contains(t, buf.String(), "stored password hash is unusable")
	})

	t.Run("storage failure is not a credential error", func(t *testing.T) {
		t.Parallel()
		storage := new(MockStorage)
		issuer := new(MockIssuer)
		svc := auth.NewService(storage, issuer)

		storage.On("GetByEmail", mock.Anything, "a@example.com").
			Return(user.User{}, errors.New("connection refused"))

		_, err := svc.Login(context.Background(), "a@example.com", "x")
		require.Error(t, err)
		require.NotErrorIs(t, err, auth.ErrInvalidCredentials)
	})
}
