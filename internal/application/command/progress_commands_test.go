package command

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillconnect/skillconnect-hub/internal/domain/course"
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
)

func commandTestCatalog(t *testing.T) *course.Catalog {
	t.Helper()
	catalog, err := course.NewCatalog([]*course.Course{
		{
			ID:    "course-1",
			Title: "Full-Stack Web Development",
			Level: course.LevelBeginner,
			Tags:  []string{"React", "Node.js"},
			Curriculum: []course.CurriculumItem{
				{ID: "c1-1", Topic: "HTML & CSS"},
				{ID: "c1-2", Topic: "JavaScript"},
				{ID: "c1-3", Topic: "React"},
			},
		},
		{
			ID:    "course-2",
			Title: "Advanced Machine Learning",
			Level: course.LevelAdvanced,
			Tags:  []string{"Python"},
			Curriculum: []course.CurriculumItem{
				{ID: "c2-1", Topic: "Neural Networks"},
				{ID: "c2-2", Topic: "CNNs"},
			},
		},
	})
	require.NoError(t, err)
	return catalog
}

func TestEnrollCourseHandler(t *testing.T) {
	t.Run("enroll and repeat", func(t *testing.T) {
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		events := &recordingPublisher{}
		registerTestUser(t, users, sessions)

		h := NewEnrollCourseHandler(users, sessions, commandTestCatalog(t), events, nil)

		res, err := h.Handle(context.Background(), EnrollCourseCommand{CourseID: "course-1"})
		require.NoError(t, err)
		assert.False(t, res.AlreadyEnrolled)
		assert.True(t, res.User.IsEnrolled("course-1"))

		res, err = h.Handle(context.Background(), EnrollCourseCommand{CourseID: "course-1"})
		require.NoError(t, err)
		assert.True(t, res.AlreadyEnrolled)

		// only the first call publishes
		assert.Equal(t, []shared.EventType{shared.EventCourseEnrolled}, events.typesSeen())
	})

	t.Run("unknown course", func(t *testing.T) {
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		registerTestUser(t, users, sessions)

		h := NewEnrollCourseHandler(users, sessions, commandTestCatalog(t), nil, nil)
		_, err := h.Handle(context.Background(), EnrollCourseCommand{CourseID: "course-99"})

		assert.ErrorIs(t, err, shared.ErrCourseNotFound)
	})

	t.Run("requires session", func(t *testing.T) {
		h := NewEnrollCourseHandler(newMemoryUserRepo(), newMemorySessionStore(), commandTestCatalog(t), nil, nil)
		_, err := h.Handle(context.Background(), EnrollCourseCommand{CourseID: "course-1"})

		assert.ErrorIs(t, err, shared.ErrNotAuthenticated)
	})
}

func TestToggleLessonHandler(t *testing.T) {
	setup := func(t *testing.T) (*ToggleLessonHandler, *recordingPublisher) {
		t.Helper()
		users := newMemoryUserRepo()
		sessions := newMemorySessionStore()
		events := &recordingPublisher{}
		catalog := commandTestCatalog(t)
		registerTestUser(t, users, sessions)

		enroll := NewEnrollCourseHandler(users, sessions, catalog, nil, nil)
		_, err := enroll.Handle(context.Background(), EnrollCourseCommand{CourseID: "course-2"})
		require.NoError(t, err)

		return NewToggleLessonHandler(users, sessions, catalog, events, nil), events
	}

	t.Run("toggle marks and unmarks", func(t *testing.T) {
		h, _ := setup(t)

		res, err := h.Handle(context.Background(), ToggleLessonCommand{CourseID: "course-2", LessonID: "c2-1"})
		require.NoError(t, err)
		assert.True(t, res.Done)
		assert.True(t, res.User.HasCompletedLesson("course-2", "c2-1"))

		res, err = h.Handle(context.Background(), ToggleLessonCommand{CourseID: "course-2", LessonID: "c2-1"})
		require.NoError(t, err)
		assert.False(t, res.Done)
		assert.False(t, res.User.HasCompletedLesson("course-2", "c2-1"))
	})

	t.Run("last lesson completes the course", func(t *testing.T) {
		h, events := setup(t)

		_, err := h.Handle(context.Background(), ToggleLessonCommand{CourseID: "course-2", LessonID: "c2-1"})
		require.NoError(t, err)

		res, err := h.Handle(context.Background(), ToggleLessonCommand{CourseID: "course-2", LessonID: "c2-2"})
		require.NoError(t, err)

		assert.True(t, res.Completed)
		assert.True(t, res.User.IsCompleted("course-2"))
		assert.Contains(t, events.typesSeen(), shared.EventCourseCompleted)
	})

	t.Run("unmarking revokes completion", func(t *testing.T) {
		h, events := setup(t)

		for _, lesson := range []shared.CurriculumID{"c2-1", "c2-2"} {
			_, err := h.Handle(context.Background(), ToggleLessonCommand{CourseID: "course-2", LessonID: lesson})
			require.NoError(t, err)
		}

		res, err := h.Handle(context.Background(), ToggleLessonCommand{CourseID: "course-2", LessonID: "c2-1"})
		require.NoError(t, err)

		assert.True(t, res.CompletionRevoked)
		assert.False(t, res.User.IsCompleted("course-2"))
		assert.Contains(t, events.typesSeen(), shared.EventCourseCompletionRevoked)
	})

	t.Run("not enrolled", func(t *testing.T) {
		h, _ := setup(t)
		_, err := h.Handle(context.Background(), ToggleLessonCommand{CourseID: "course-1", LessonID: "c1-1"})
		assert.ErrorIs(t, err, shared.ErrCourseNotFound)
	})
}
