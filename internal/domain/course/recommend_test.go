package course

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
)

func testCatalog(t *testing.T) *Catalog {
	t.Helper()
	catalog, err := NewCatalog([]*Course{
		{ID: "course-1", Title: "Full-Stack Web Development", Level: LevelBeginner, Tags: []string{"React", "Node.js", "MongoDB"}},
		{ID: "course-2", Title: "Advanced Machine Learning", Level: LevelAdvanced, Tags: []string{"Python", "TensorFlow"}},
		{ID: "course-3", Title: "Data Science Fundamentals", Level: LevelIntermediate, Tags: []string{"Python", "Pandas"}},
	})
	require.NoError(t, err)
	return catalog
}

func testRecommendUser(t *testing.T, skills []string, enrolled ...shared.CourseID) *user.User {
	t.Helper()
	email, err := shared.NewEmailAddress("test@skillconnect.io")
	require.NoError(t, err)

	u, err := user.NewUser(user.NewUserParams{
		ID:           "user-1",
		Name:         "Alex Doe",
		Email:        email,
		PasswordHash: "hash",
	})
	require.NoError(t, err)

	u.Skills = skills
	for _, id := range enrolled {
		_, err := u.Enroll(id)
		require.NoError(t, err)
	}
	return u
}

func TestRecommend(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("skill match wins over catalog order", func(t *testing.T) {
		u := testRecommendUser(t, []string{"Python"})

		got, ok := Recommend(u, catalog)
		require.True(t, ok)
		assert.Equal(t, shared.CourseID("course-2"), got.ID)
	})

	t.Run("enrolled courses excluded", func(t *testing.T) {
		u := testRecommendUser(t, []string{"Python"}, "course-2")

		got, ok := Recommend(u, catalog)
		require.True(t, ok)
		assert.Equal(t, shared.CourseID("course-3"), got.ID)
	})

	t.Run("no skill match falls back to first unenrolled", func(t *testing.T) {
		u := testRecommendUser(t, []string{"Rust"})

		got, ok := Recommend(u, catalog)
		require.True(t, ok)
		assert.Equal(t, shared.CourseID("course-1"), got.ID)
	})

	t.Run("fully enrolled gets nothing", func(t *testing.T) {
		u := testRecommendUser(t, []string{"Python"}, "course-1", "course-2", "course-3")

		got, ok := Recommend(u, catalog)
		assert.False(t, ok)
		assert.Nil(t, got)
	})

	t.Run("empty skills fall back to first unenrolled", func(t *testing.T) {
		u := testRecommendUser(t, nil)

		got, ok := Recommend(u, catalog)
		require.True(t, ok)
		assert.Equal(t, shared.CourseID("course-1"), got.ID)
	})
}

func TestCatalog(t *testing.T) {
	catalog := testCatalog(t)

	t.Run("get known course", func(t *testing.T) {
		c, err := catalog.Get("course-2")
		require.NoError(t, err)
		assert.Equal(t, "Advanced Machine Learning", c.Title)
	})

	t.Run("get unknown course", func(t *testing.T) {
		_, err := catalog.Get("course-99")
		assert.ErrorIs(t, err, shared.ErrCourseNotFound)
	})

	t.Run("duplicate ids rejected", func(t *testing.T) {
		_, err := NewCatalog([]*Course{
			{ID: "course-1", Title: "A", Level: LevelBeginner},
			{ID: "course-1", Title: "B", Level: LevelBeginner},
		})
		assert.Error(t, err)
	})

	t.Run("order preserved", func(t *testing.T) {
		all := catalog.All()
		require.Len(t, all, 3)
		assert.Equal(t, shared.CourseID("course-1"), all[0].ID)
		assert.Equal(t, shared.CourseID("course-3"), all[2].ID)
	})
}

func TestNextIncompleteItem(t *testing.T) {
	c := &Course{
		ID:    "course-1",
		Title: "Full-Stack Web Development",
		Level: LevelBeginner,
		Curriculum: []CurriculumItem{
			{ID: "c1-1", Topic: "HTML & CSS"},
			{ID: "c1-2", Topic: "JavaScript Basics"},
			{ID: "c1-3", Topic: "React"},
		},
	}

	item, ok := c.NextIncompleteItem(nil)
	require.True(t, ok)
	assert.Equal(t, shared.CurriculumID("c1-1"), item.ID)

	item, ok = c.NextIncompleteItem([]shared.CurriculumID{"c1-1", "c1-3"})
	require.True(t, ok)
	assert.Equal(t, shared.CurriculumID("c1-2"), item.ID)

	_, ok = c.NextIncompleteItem([]shared.CurriculumID{"c1-1", "c1-2", "c1-3"})
	assert.False(t, ok)
}

func TestNewCourse(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		c, err := NewCourse(Course{
			ID:    "course-1",
			Title: "Full-Stack Web Development",
			Level: LevelBeginner,
			Curriculum: []CurriculumItem{
				{ID: "c1-1", Topic: "HTML & CSS"},
			},
		})
		require.NoError(t, err)
		assert.Equal(t, []shared.CurriculumID{"c1-1"}, c.CurriculumIDs())
	})

	t.Run("duplicate curriculum item", func(t *testing.T) {
		_, err := NewCourse(Course{
			ID:    "course-1",
			Title: "X",
			Level: LevelBeginner,
			Curriculum: []CurriculumItem{
				{ID: "c1-1"}, {ID: "c1-1"},
			},
		})
		assert.ErrorIs(t, err, ErrDuplicateCurriculumItem)
	})

	t.Run("bad level", func(t *testing.T) {
		_, err := NewCourse(Course{ID: "course-1", Title: "X", Level: "Expert"})
		assert.ErrorIs(t, err, ErrInvalidCourse)
	})
}
