package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
)

func TestLoginHandler(t *testing.T) {
	t.Run("valid credentials start session", func(t *testing.T) {
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		registered := registerTestUser(t, users, sessions)
		require.NoError(t, sessions.Clear(context.Background()))

		h := NewLoginHandler(users, sessions, nil)
		res, err := h.Handle(context.Background(), LoginCommand{
			Email:    "test@skillconnect.io",
			Password: "password",
		})
		require.NoError(t, err)

		assert.Equal(t, registered.ID, res.User.ID)

		current, err := sessions.Current(context.Background())
		require.NoError(t, err)
		assert.Equal(t, registered.Email, current)
	})

	t.Run("wrong password", func(t *testing.T) {
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		registerTestUser(t, users, sessions)
		require.NoError(t, sessions.Clear(context.Background()))

		h := NewLoginHandler(users, sessions, nil)
		_, err := h.Handle(context.Background(), LoginCommand{
			Email:    "test@skillconnect.io",
			Password: "wrong",
		})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)

		_, err = sessions.Current(context.Background())
		assert.ErrorIs(t, err, shared.ErrNotAuthenticated)
	})

	t.Run("unknown email looks like wrong password", func(t *testing.T) {
		h := NewLoginHandler(newMemoryUserRepo(), newMemorySessionStore(), nil)
		_, err := h.Handle(context.Background(), LoginCommand{
			Email:    "nobody@skillconnect.io",
			Password: "password",
		})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})

	t.Run("case-sensitive email lookup", func(t *testing.T) {
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		registerTestUser(t, users, sessions)

		h := NewLoginHandler(users, sessions, nil)
		_, err := h.Handle(context.Background(), LoginCommand{
			Email:    "TEST@skillconnect.io",
			Password: "password",
		})

		assert.ErrorIs(t, err, shared.ErrInvalidCredentials)
	})
}

func TestLogoutHandler(t *testing.T) {
	users := newMemoryUserRepo()
	sessions := newMemorySessionStore()
	registerTestUser(t, users, sessions)

	h := NewLogoutHandler(sessions, nil)
	require.NoError(t, h.Handle(context.Background(), LogoutCommand{}))

	_, err := sessions.Current(context.Background())
	assert.ErrorIs(t, err, shared.ErrNotAuthenticated)

	// idempotent
	assert.NoError(t, h.Handle(context.Background(), LogoutCommand{}))
}
