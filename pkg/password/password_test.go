package password_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/usersvc/pkg/password"
)

func TestHash(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		hash, err := password.Hash("s3cret")
		require.NoError(t, err)
		require.NotEmpty(t, hash)

		ok, err := password.Verify("s3cret", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("salted output differs between calls", func(t *testing.T) {
		t.Parallel()
		first, err := password.Hash("secret")
		require.NoError(t, err)
		second, err := password.Hash("secret")
		require.NoError(t, err)
		require.NotEqual(t, first, second)

		for _, hash := range []string{first, second} {
			ok, err := password.Verify("secret", hash)
			require.NoError(t, err)
			assert.True(t, ok)

			ok, err = password.Verify("other", hash)
			require.NoError(t, err)
			assert.False(t, ok)
		}
	})

	t.Run("empty password still hashes", func(t *testing.T) {
		t.Parallel()
		hash, err := password.Hash("")
		require.NoError(t, err)

		ok, err := password.Verify("", hash)
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

func TestVerify(t *testing.T) {
	t.Parallel()

	t.Run("wrong password", func(t *testing.T) {
		t.Parallel()
		hash, err := password.Hash("correct horse")
		require.NoError(t, err)

		ok, err := password.Verify("battery staple", hash)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed stored hash", func(t *testing.T) {
		t.Parallel()
		ok, err := password.Verify("whatever", "not-a-bcrypt-hash")
		require.ErrorIs(t, err, password.ErrInvalidHash)
		assert.False(t, ok)
	})

	t.Run("empty stored hash", func(t *testing.T) {
		t.Parallel()
		ok, err := password.Verify("whatever", "")
		require.ErrorIs(t, err, password.ErrInvalidHash)
		assert.False(t, ok)
	})
}
