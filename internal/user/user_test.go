package user_test

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/usersvc/internal/user"
)

func TestProfile(t *testing.T) {
	t.Parallel()

	u := user.User{
		ID:           7,
		FirstName:    "Ada",
		LastName:     "Lovelace",
		Email:        "a@example.com",
		PasswordHash: "$2a$10$should-never-leak",
		CreatedAt:    time.Now(),
	}

	p := u.Profile()
	assert.Equal(t, u.ID, p.ID)
	assert.Equal(t, u.Email, p.Email)

	// The serialized profile must not contain the password hash anywhere.
	raw, err := json.Marshal(p)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), u.PasswordHash)
	assert.NotContains(t, string(raw), "password")
}
