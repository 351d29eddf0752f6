package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
)

func mustEmail(t *testing.T, raw string) shared.EmailAddress {
	t.Helper()
	email, err := shared.NewEmailAddress(raw)
	require.NoError(t, err)
	return email
}

func newTestUser(t *testing.T) *User {
	t.Helper()
	u, err := NewUser(NewUserParams{
		ID:           "3f2e1d0c-0000-0000-0000-000000000001",
		Name:         "Alex Doe",
		Email:        mustEmail(t, "test@skillconnect.io"),
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
	})
	require.NoError(t, err)
	return u
}

func TestNewUser(t *testing.T) {
	t.Run("valid params", func(t *testing.T) {
		u := newTestUser(t)

		assert.Equal(t, "Alex Doe", u.Name)
		assert.Equal(t, DefaultBio, u.Bio)
		assert.Empty(t, u.Skills)
		assert.Empty(t, u.EnrolledCourses)
		assert.Empty(t, u.CompletedCourses)
		assert.NotNil(t, u.CourseProgress)
		assert.False(t, u.CreatedAt.IsZero())
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := NewUser(NewUserParams{
			Name:         "Alex",
			Email:        mustEmail(t, "a@b.io"),
			PasswordHash: "hash",
		})
		assert.Error(t, err)
	})

	t.Run("empty name", func(t *testing.T) {
		_, err := NewUser(NewUserParams{
			ID:           "id-1",
			Name:         "   ",
			Email:        mustEmail(t, "a@b.io"),
			PasswordHash: "hash",
		})
		assert.ErrorIs(t, err, ErrInvalidName)
	})

	t.Run("missing password hash", func(t *testing.T) {
		_, err := NewUser(NewUserParams{
			ID:    "id-1",
			Name:  "Alex",
			Email: mustEmail(t, "a@b.io"),
		})
		assert.ErrorIs(t, err, ErrEmptyPasswordHash)
	})
}

func TestApplyProfileUpdate(t *testing.T) {
	t.Run("partial update touches only named fields", func(t *testing.T) {
		u := newTestUser(t)
		originalName := u.Name

		bio := "Building things."
		skills := []string{"Go", "SQL"}
		changed, err := u.ApplyProfileUpdate(ProfileUpdate{
			Bio:    &bio,
			Skills: &skills,
		})
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"bio", "skills"}, changed)
		assert.Equal(t, originalName, u.Name)
		assert.Equal(t, "Building things.", u.Bio)
		assert.Equal(t, []string{"Go", "SQL"}, u.Skills)
	})

	t.Run("arrays replaced wholesale", func(t *testing.T) {
		u := newTestUser(t)
		u.Skills = []string{"React", "Node.js", "Python"}

		skills := []string{"Go"}
		_, err := u.ApplyProfileUpdate(ProfileUpdate{Skills: &skills})
		require.NoError(t, err)

		assert.Equal(t, []string{"Go"}, u.Skills)
	})

	t.Run("invalid name rejected without side effects", func(t *testing.T) {
		u := newTestUser(t)
		bad := ""
		bio := "should not apply"
		_, err := u.ApplyProfileUpdate(ProfileUpdate{Name: &bad, Bio: &bio})

		assert.ErrorIs(t, err, ErrInvalidName)
		assert.Equal(t, DefaultBio, u.Bio)
	})

	t.Run("empty update changes nothing", func(t *testing.T) {
		u := newTestUser(t)
		update := ProfileUpdate{}

		assert.True(t, update.IsEmpty())

		changed, err := u.ApplyProfileUpdate(update)
		require.NoError(t, err)
		assert.Empty(t, changed)
	})

	t.Run("education and experience records", func(t *testing.T) {
		u := newTestUser(t)

		edu := []EducationRecord{{Institution: "State University", Degree: "B.S. Computer Science", Year: "2020"}}
		exp := []ExperienceRecord{{Company: "Tech Solutions Inc.", Role: "Frontend Developer", Years: "2021-2023"}}
		changed, err := u.ApplyProfileUpdate(ProfileUpdate{Education: &edu, Experience: &exp})
		require.NoError(t, err)

		assert.ElementsMatch(t, []string{"education", "experience"}, changed)
		assert.Len(t, u.Education, 1)
		assert.Len(t, u.Experience, 1)
	})
}

func TestUserClone(t *testing.T) {
	u := newTestUser(t)
	_, err := u.Enroll("course-1")
	require.NoError(t, err)
	u.Skills = []string{"Go"}

	clone := u.Clone()
	clone.Skills[0] = "Rust"
	clone.CourseProgress["course-1"] = append(clone.CourseProgress["course-1"], "c1-1")

	assert.Equal(t, "Go", u.Skills[0])
	assert.Empty(t, u.CourseProgress["course-1"])
}

func TestUserString(t *testing.T) {
	u := newTestUser(t)
	u.PasswordHash = "secret-hash"

	assert.NotContains(t, u.String(), "secret-hash")
	assert.Contains(t, u.String(), u.ID)
}
