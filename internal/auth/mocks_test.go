package auth_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/dmitrymomot/usersvc/internal/user"
	"github.com/dmitrymomot/usersvc/pkg/token"
)

// MockStorage is a mock implementation of auth.Storage.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) Create(ctx context.Context, firstName, lastName, email, passwordHash string) (user.User, error) {
	args := m.Called(ctx, firstName, lastName, email, passwordHash)
	return args.Get(0).(user.User), args.Error(1)
}

func (m *MockStorage) GetByEmail(ctx context.Context, email string) (user.User, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(user.User), args.Error(1)
}

// MockIssuer is a mock implementation of auth.TokenIssuer.
type MockIssuer struct {
	mock.Mock
}

func (m *MockIssuer) Issue(identity token.Identity) (string, error) {
	args := m.Called(identity)
	return args.String(0), args.Error(1)
}
