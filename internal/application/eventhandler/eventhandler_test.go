package eventhandler

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillconnect/skillconnect-hub/internal/domain/course"
	"github.com/skillconnect/skillconnect-hub/internal/domain/job"
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
)

type fakeUserRepo struct {
	users []*user.User
}

func (r *fakeUserRepo) Create(_ context.Context, u *user.User) error {
	r.users = append(r.users, u)
	return nil
}

func (r *fakeUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return nil, shared.ErrAccountNotFound
}

func (r *fakeUserRepo) GetByEmail(_ context.Context, email shared.EmailAddress) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u.Clone(), nil
		}
	}
	return nil, shared.ErrAccountNotFound
}

func (r *fakeUserRepo) Update(_ context.Context, u *user.User) error {
	for i, existing := range r.users {
		if existing.ID == u.ID {
			r.users[i] = u.Clone()
			return nil
		}
	}
	return shared.ErrAccountNotFound
}

func (r *fakeUserRepo) List(_ context.Context) ([]*user.User, error) {
	out := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Clone())
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(_ context.Context, _ string) error {
	return shared.ErrDeleteNotAllowed
}

type fakeBoard struct {
	jobs []*job.Job
}

func (b *fakeBoard) Add(_ context.Context, j *job.Job) error {
	b.jobs = append([]*job.Job{j}, b.jobs...)
	return nil
}

func (b *fakeBoard) List(_ context.Context) ([]*job.Job, error) {
	return b.jobs, nil
}

func (b *fakeBoard) GetByID(_ context.Context, id string) (*job.Job, error) {
	for _, j := range b.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, shared.ErrJobNotFound
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func handlerTestUser(t *testing.T, id string, skills []string) *user.User {
	t.Helper()
	email, err := shared.NewEmailAddress(id + "@skillconnect.io")
	require.NoError(t, err)
	u, err := user.NewUser(user.NewUserParams{
		ID:           id,
		Name:         "Test User",
		Email:        email,
		PasswordHash: "$2a$10$hash",
	})
	require.NoError(t, err)
	u.Skills = skills
	return u
}

func handlerTestCatalog(t *testing.T) *course.Catalog {
	t.Helper()
	catalog, err := course.NewCatalog([]*course.Course{
		{
			ID:    "course-1",
			Title: "Full-Stack Web Development",
			Level: course.LevelBeginner,
			Tags:  []string{"React", "Node.js"},
			Curriculum: []course.CurriculumItem{
				{ID: "c1-1", Topic: "HTML & CSS"},
			},
		},
		{
			ID:    "course-2",
			Title: "Advanced Machine Learning",
			Level: course.LevelAdvanced,
			Tags:  []string{"Python", "TensorFlow"},
			Curriculum: []course.CurriculumItem{
				{ID: "c2-1", Topic: "Neural Networks"},
			},
		},
	})
	require.NoError(t, err)
	return catalog
}

func TestOnCourseCompletedHandler(t *testing.T) {
	t.Run("processes completion for known user and course", func(t *testing.T) {
		u := handlerTestUser(t, "user-1", []string{"Python"})
		_, err := u.Enroll("course-2")
		require.NoError(t, err)
		repo := &fakeUserRepo{users: []*user.User{u}}

		h := NewOnCourseCompletedHandler(repo, handlerTestCatalog(t), quietLogger(), DefaultCourseCompletedConfig())

		err = h.Handle(shared.NewCourseCompletedEvent("user-1", "course-2"))
		assert.NoError(t, err)
	})

	t.Run("ignores events of a different type", func(t *testing.T) {
		repo := &fakeUserRepo{}
		h := NewOnCourseCompletedHandler(repo, handlerTestCatalog(t), quietLogger(), DefaultCourseCompletedConfig())

		err := h.Handle(shared.NewJobPostedEvent("job-1", "Engineer", "Acme", "user-1"))
		assert.NoError(t, err)
	})

	t.Run("fails when user is unknown", func(t *testing.T) {
		repo := &fakeUserRepo{}
		h := NewOnCourseCompletedHandler(repo, handlerTestCatalog(t), quietLogger(), DefaultCourseCompletedConfig())

		err := h.Handle(shared.NewCourseCompletedEvent("ghost", "course-1"))
		assert.ErrorIs(t, err, shared.ErrAccountNotFound)
	})

	t.Run("tolerates course missing from catalog", func(t *testing.T) {
		u := handlerTestUser(t, "user-1", nil)
		repo := &fakeUserRepo{users: []*user.User{u}}
		h := NewOnCourseCompletedHandler(repo, handlerTestCatalog(t), quietLogger(), DefaultCourseCompletedConfig())

		err := h.Handle(shared.NewCourseCompletedEvent("user-1", "course-gone"))
		assert.NoError(t, err)
	})
}

func TestOnUserRegisteredHandler(t *testing.T) {
	t.Run("suggests starter course for new account", func(t *testing.T) {
		u := handlerTestUser(t, "user-1", []string{"React"})
		repo := &fakeUserRepo{users: []*user.User{u}}
		h := NewOnUserRegisteredHandler(repo, handlerTestCatalog(t), quietLogger(), DefaultUserRegisteredConfig())

		err := h.Handle(shared.NewUserRegisteredEvent("user-1", "user-1@skillconnect.io", "Test User"))
		assert.NoError(t, err)
	})

	t.Run("skips lookup when suggestions disabled", func(t *testing.T) {
		repo := &fakeUserRepo{}
		h := NewOnUserRegisteredHandler(repo, handlerTestCatalog(t), quietLogger(), UserRegisteredConfig{SuggestStarterCourse: false})

		err := h.Handle(shared.NewUserRegisteredEvent("ghost", "ghost@skillconnect.io", "Ghost"))
		assert.NoError(t, err)
	})
}

func TestOnJobPostedHandler(t *testing.T) {
	postJob := func(t *testing.T, board *fakeBoard) *job.Job {
		t.Helper()
		j, err := job.NewJob(job.NewJobParams{
			ID:             "job-1",
			Title:          "Frontend Engineer",
			Company:        "Acme",
			RequiredSkills: []string{"React"},
			PostedBy:       "poster-1",
		})
		require.NoError(t, err)
		require.NoError(t, board.Add(context.Background(), j))
		return j
	}

	t.Run("matches candidates by skill overlap", func(t *testing.T) {
		board := &fakeBoard{}
		j := postJob(t, board)

		repo := &fakeUserRepo{users: []*user.User{
			handlerTestUser(t, "poster-1", []string{"React"}),
			handlerTestUser(t, "user-2", []string{"React", "CSS"}),
			handlerTestUser(t, "user-3", []string{"Go"}),
		}}
		h := NewOnJobPostedHandler(board, repo, quietLogger(), DefaultJobPostedConfig())

		matched, err := h.matchCandidates(context.Background(), j)
		require.NoError(t, err)
		require.Len(t, matched, 1)
		assert.Equal(t, "user-2", matched[0].ID)
	})

	t.Run("handles posted event end to end", func(t *testing.T) {
		board := &fakeBoard{}
		postJob(t, board)
		repo := &fakeUserRepo{users: []*user.User{
			handlerTestUser(t, "user-2", []string{"React"}),
		}}
		h := NewOnJobPostedHandler(board, repo, quietLogger(), DefaultJobPostedConfig())

		err := h.Handle(shared.NewJobPostedEvent("job-1", "Frontend Engineer", "Acme", "poster-1"))
		assert.NoError(t, err)
	})

	t.Run("fails when job is missing from board", func(t *testing.T) {
		h := NewOnJobPostedHandler(&fakeBoard{}, &fakeUserRepo{}, quietLogger(), DefaultJobPostedConfig())

		err := h.Handle(shared.NewJobPostedEvent("job-gone", "Engineer", "Acme", "poster-1"))
		assert.ErrorIs(t, err, shared.ErrJobNotFound)
	})
}
