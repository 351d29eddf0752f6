package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
)

func registerTestUser(t *testing.T, users user.Repository, sessions user.SessionStore) *user.User {
	t.Helper()
	h := NewRegisterHandler(users, sessions, nil, nil)
	res, err := h.Handle(context.Background(), RegisterCommand{
		Name:     "Alex Doe",
		Email:    "test@skillconnect.io",
		Password: "password",
	})
	require.NoError(t, err)
	return res.User
}

func TestRegisterHandler(t *testing.T) {
	t.Run("creates account and starts session", func(t *testing.T) {
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		events := &recordingPublisher{}

		h := NewRegisterHandler(users, sessions, events, nil)
		res, err := h.Handle(context.Background(), RegisterCommand{
			Name:     "Alex Doe",
			Email:    "test@skillconnect.io",
			Password: "password",
		})
		require.NoError(t, err)

		assert.NotEmpty(t, res.User.ID)
		assert.Equal(t, user.DefaultBio, res.User.Bio)

		// password stored only as a hash
		assert.NotEqual(t, "password", res.User.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(res.User.PasswordHash), []byte("password")))

		current, err := sessions.Current(context.Background())
		require.NoError(t, err)
		assert.Equal(t, res.User.Email, current)

		assert.Contains(t, events.typesSeen(), shared.EventUserRegistered)
	})

	t.Run("duplicate email rejected", func(t *testing.T) {
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		registerTestUser(t, users, sessions)

		h := NewRegisterHandler(users, sessions, nil, nil)
		_, err := h.Handle(context.Background(), RegisterCommand{
			Name:     "Someone Else",
			Email:    "test@skillconnect.io",
			Password: "other",
		})

		assert.ErrorIs(t, err, shared.ErrDuplicateAccount)
	})

	t.Run("email matching is case-sensitive", func(t *testing.T) {
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		registerTestUser(t, users, sessions)

		h := NewRegisterHandler(users, sessions, nil, nil)
		_, err := h.Handle(context.Background(), RegisterCommand{
			Name:     "Alex Doe",
			Email:    "Test@skillconnect.io",
			Password: "password",
		})

		assert.NoError(t, err)
	})

	t.Run("invalid email", func(t *testing.T) {
		h := NewRegisterHandler(newMemoryUserRepo(), newMemorySessionStore(), nil, nil)
		_, err := h.Handle(context.Background(), RegisterCommand{
			Name:     "Alex",
			Email:    "not-an-email",
			Password: "password",
		})
		assert.Error(t, err)
	})

	t.Run("missing fields", func(t *testing.T) {
		h := NewRegisterHandler(newMemoryUserRepo(), newMemorySessionStore(), nil, nil)
		_, err := h.Handle(context.Background(), RegisterCommand{Email: "a@b.io"})
		assert.Error(t, err)
	})
}
