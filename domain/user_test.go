package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewUser(t *testing.T) {
	strongPassword := "corridor-lantern-42-echo"

	t.Run("creates a user with a hashed password", func(t *testing.T) {
		user, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "explorer_one",
			PlainPassword: strongPassword,
		})
		assert.NoError(t, err)
		assert.NotEqual(t, strongPassword, user.PasswordHash)
		assert.True(t, user.VerifyPassword(strongPassword))
		assert.False(t, user.VerifyPassword("wrong password"))
	})

	t.Run("rejects short usernames", func(t *testing.T) {
		_, err := NewUser(UserConfig{ID: uuid.New(), Username: "ab", PlainPassword: strongPassword})
		assert.Error(t, err)
	})

	t.Run("rejects long usernames", func(t *testing.T) {
		_, err := NewUser(UserConfig{
			ID:            uuid.New(),
			Username:      "this_username_is_way_too_long_to_pass",
			PlainPassword: strongPassword,
		})
		assert.Error(t, err)
	})

	t.Run("rejects invalid username characters", func(t *testing.T) {
		_, err := NewUser(UserConfig{ID: uuid.New(), Username: "bad name!", PlainPassword: strongPassword})
		assert.Error(t, err)
	})

	t.Run("rejects weak passwords", func(t *testing.T) {
		_, err := NewUser(UserConfig{ID: uuid.New(), Username: "explorer_one", PlainPassword: "password"})
		assert.Error(t, err)
	})
}
