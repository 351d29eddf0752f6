package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
)

func TestPostJobHandler(t *testing.T) {
	t.Run("posting goes to the top of the board", func(t *testing.T) {
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		board := newMemoryBoard()
		events := &recordingPublisher{}
		u := registerTestUser(t, users, sessions)

		h := NewPostJobHandler(board, users, sessions, events, nil)

		first, err := h.Handle(context.Background(), PostJobCommand{
			Title:   "Backend Engineer",
			Company: "Innovatech",
		})
		require.NoError(t, err)
		assert.Equal(t, u.ID, first.Job.PostedBy)

		second, err := h.Handle(context.Background(), PostJobCommand{
			Title:   "Data Analyst",
			Company: "QuantumLeap",
		})
		require.NoError(t, err)

		list, err := board.List(context.Background())
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, second.Job.ID, list[0].ID)
		assert.Equal(t, first.Job.ID, list[1].ID)

		assert.Equal(t, []shared.EventType{shared.EventJobPosted, shared.EventJobPosted}, events.typesSeen())
	})

	t.Run("requires session", func(t *testing.T) {
		h := NewPostJobHandler(newMemoryBoard(), newMemoryUserRepo(), newMemorySessionStore(), nil, nil)
		_, err := h.Handle(context.Background(), PostJobCommand{Title: "X", Company: "Y"})

		assert.ErrorIs(t, err, shared.ErrNotAuthenticated)
	})

	t.Run("missing title", func(t *testing.T) {
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		registerTestUser(t, users, sessions)

		h := NewPostJobHandler(newMemoryBoard(), users, sessions, nil, nil)
		_, err := h.Handle(context.Background(), PostJobCommand{Company: "Y"})

		assert.Error(t, err)
	})
}
