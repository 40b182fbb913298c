package auth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/dmitrymomot/usersvc/internal/user"
	"github.com/dmitrymomot/usersvc/pkg/logger"
	"github.com/dmitrymomot/usersvc/pkg/password"
	"github.com/dmitrymomot/usersvc/pkg/token"
)

// Storage is the credential store surface the service needs;
// *user.Repository satisfies it.
type Storage interface {
	Create(ctx context.Context, firstName, lastName, email, passwordHash string) (user.User, error)
	GetByEmail(ctx context.Context, email string) (user.User, error)
}

// TokenIssuer mints a signed bearer token for a verified identity;
// *token.Service satisfies it.
type TokenIssuer interface {
	Issue(identity token.Identity) (string, error)
}

// Service implements signup and login: it owns the password hash/verify step
// and hands verified identities to the token issuer.
type Service struct {
	storage Storage
	tokens  TokenIssuer
	log     *slog.Logger
}

// Option configures the Service.
type Option func(*Service)

// WithLogger sets the logger used for operator-facing diagnostics.
func WithLogger(log *slog.Logger) Option {
	return func(s *Service) {
		if log != nil {
			s.log = log
		}
	}
}

func NewService(storage Storage, tokens TokenIssuer, opts ...Option) *Service {
	s := &Service{
		storage: storage,
		tokens:  tokens,
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// RegisterInput is the data required to create an account.
type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
}

// Register hashes the password, stores the new user, and returns a freshly
// issued bearer token. A duplicate email surfaces as user.ErrEmailTaken.
func (s *Service) Register(ctx context.Context, in RegisterInput) (string, error) {
	hash, err := password.Hash(in.Password)
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}

	u, err := s.storage.Create(ctx, in.FirstName, in.LastName, in.Email, hash)
	if err != nil {
		if errors.Is(err, user.ErrEmailTaken) {
			return "", user.ErrEmailTaken
		}
		return "", fmt.Errorf("register: %w", err)
	}

	tok, err := s.tokens.Issue(identityOf(u))
	if err != nil {
		return "", fmt.Errorf("register: %w", err)
	}
	return tok, nil
}

// Login verifies the email/password pair and returns a freshly issued bearer
// token. Unknown email and wrong password return the same
// ErrInvalidCredentials so callers cannot enumerate accounts. A stored hash
// that cannot be parsed is logged as a data integrity problem and still
// surfaces as ErrInvalidCredentials outward.
func (s *Service) Login(ctx context.Context, email, plaintext string) (string, error) {
	u, err := s.storage.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", fmt.Errorf("login: %w", err)
	}

	ok, err := password.Verify(plaintext, u.PasswordHash)
	if err != nil {
		// Corrupt stored hash, not a wrong password. Operators need to know;
		// the caller must not.
		s.log.ErrorContext(ctx, "stored password hash is unusable",
			logger.UserID(u.ID),
			logger.Error(err),
			logger.Component("auth"),
		)
		return "", ErrInvalidCredentials
	}
	if !ok {
		return "", ErrInvalidCredentials
	}

	tok, err := s.tokens.Issue(identityOf(u))
	if err != nil {
		return "", fmt.Errorf("login: %w", err)
	}
	return tok, nil
}

// identityOf maps a stored record to its token claims. The password hash is
// deliberately left behind.
func identityOf(u user.User) token.Identity {
	return token.Identity{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		CreatedAt: u.CreatedAt,
	}
}
