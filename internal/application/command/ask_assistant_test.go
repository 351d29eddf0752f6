package command

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
)

func TestAskAssistantHandler(t *testing.T) {
	t.Run("passes profile and returns reply", func(t *testing.T) {
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		registerTestUser(t, users, sessions)

		bio := "Learning Go."
		skills := []string{"Go", "SQL"}
		update := NewUpdateProfileHandler(users, sessions, nil, nil)
		_, err := update.Handle(context.Background(), UpdateProfileCommand{
			Update: user.ProfileUpdate{Bio: &bio, Skills: &skills},
		})
		require.NoError(t, err)

		assistant := &stubAssistant{reply: "Try the Data Science course!"}
		h := NewAskAssistantHandler(assistant, users, sessions, nil)

		res, err := h.Handle(context.Background(), AskAssistantCommand{Message: "What should I learn next?"})
		require.NoError(t, err)

		assert.Equal(t, "Try the Data Science course!", res.Reply)
		assert.False(t, res.Degraded)
		assert.Equal(t, "Alex Doe", assistant.lastProfile.Name)
		assert.Equal(t, "Learning Go.", assistant.lastProfile.Bio)
		assert.Equal(t, []string{"Go", "SQL"}, assistant.lastProfile.Skills)
		assert.Equal(t, "What should I learn next?", assistant.lastMessage)
	})

	t.Run("assistant failure degrades to fallback", func(t *testing.T) {
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		registerTestUser(t, users, sessions)

		assistant := &stubAssistant{err: errors.New("upstream 503")}
		h := NewAskAssistantHandler(assistant, users, sessions, nil)

		res, err := h.Handle(context.Background(), AskAssistantCommand{Message: "Hello"})
		require.NoError(t, err)

		assert.Equal(t, FallbackReply, res.Reply)
		assert.True(t, res.Degraded)
	})

	t.Run("requires session", func(t *testing.T) {
		h := NewAskAssistantHandler(&stubAssistant{}, newMemoryUserRepo(), newMemorySessionStore(), nil)
		_, err := h.Handle(context.Background(), AskAssistantCommand{Message: "Hi"})

		assert.ErrorIs(t, err, shared.ErrNotAuthenticated)
	})

	t.Run("blank message rejected", func(t *testing.T) {
		h := NewAskAssistantHandler(&stubAssistant{}, newMemoryUserRepo(), newMemorySessionStore(), nil)
		_, err := h.Handle(context.Background(), AskAssistantCommand{Message: "   "})

		assert.Error(t, err)
	})
}

func TestUpdateProfileHandler(t *testing.T) {
	t.Run("partial update", func(t *testing.T) {
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		registered := registerTestUser(t, users, sessions)

		bio := "Hello!"
		h := NewUpdateProfileHandler(users, sessions, nil, nil)
		res, err := h.Handle(context.Background(), UpdateProfileCommand{
			Update: user.ProfileUpdate{Bio: &bio},
		})
		require.NoError(t, err)

		assert.Equal(t, []string{"bio"}, res.ChangedFields)
		assert.Equal(t, "Hello!", res.User.Bio)
		assert.Equal(t, registered.Name, res.User.Name)

		// persisted
		stored, err := users.GetByID(context.Background(), registered.ID)
		require.NoError(t, err)
		assert.Equal(t, "Hello!", stored.Bio)
	})

	t.Run("empty update skips save", func(t *testing.T) {
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		registerTestUser(t, users, sessions)
		events := &recordingPublisher{}

		h := NewUpdateProfileHandler(users, sessions, events, nil)
		res, err := h.Handle(context.Background(), UpdateProfileCommand{})
		require.NoError(t, err)

		assert.Empty(t, res.ChangedFields)
		assert.Empty(t, events.typesSeen())
	})

	t.Run("requires session", func(t *testing.T) {
		h := NewUpdateProfileHandler(newMemoryUserRepo(), newMemorySessionStore(), nil, nil)
		_, err := h.Handle(context.Background(), UpdateProfileCommand{})

		assert.ErrorIs(t, err, shared.ErrNotAuthenticated)
	})
}
