package job

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewJob(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		j, err := NewJob(NewJobParams{
			ID:             "job-1",
			Title:          "Senior Go Engineer",
			Company:        "Innovatech",
			Location:       "Remote",
			RequiredSkills: []string{"Go", "PostgreSQL"},
			ContactInfo:    "careers@innovatech.com",
			PostedBy:       "user-1",
		})
		require.NoError(t, err)

		assert.Equal(t, "Senior Go Engineer", j.Title)
		assert.Equal(t, "user-1", j.PostedBy)
		assert.False(t, j.PostedAt.IsZero())
	})

	t.Run("nil skills become empty slice", func(t *testing.T) {
		j, err := NewJob(NewJobParams{
			ID: "job-1", Title: "X", Company: "Y", PostedBy: "user-1",
		})
		require.NoError(t, err)
		assert.NotNil(t, j.RequiredSkills)
		assert.Empty(t, j.RequiredSkills)
	})

	t.Run("missing author", func(t *testing.T) {
		_, err := NewJob(NewJobParams{ID: "job-1", Title: "X", Company: "Y"})
		assert.ErrorIs(t, err, ErrInvalidJob)
	})

	t.Run("blank title", func(t *testing.T) {
		_, err := NewJob(NewJobParams{ID: "job-1", Title: "  ", Company: "Y", PostedBy: "u"})
		assert.ErrorIs(t, err, ErrInvalidJob)
	})
}
