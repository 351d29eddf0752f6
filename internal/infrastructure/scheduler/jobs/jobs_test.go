package jobs

import (
	"context"
	"errors"
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

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeUserRepo struct {
	users   []*user.User
	listErr error
}

func (r *fakeUserRepo) Create(ctx context.Context, u *user.User) error {
	r.users = append(r.users, u.Clone())
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	for _, u := range r.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return nil, shared.ErrAccountNotFound
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email shared.EmailAddress) (*user.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			return u.Clone(), nil
		}
	}
	return nil, shared.ErrAccountNotFound
}

func (r *fakeUserRepo) Update(ctx context.Context, u *user.User) error {
	for i, existing := range r.users {
		if existing.ID == u.ID {
			r.users[i] = u.Clone()
			return nil
		}
	}
	return shared.ErrAccountNotFound
}

func (r *fakeUserRepo) List(ctx context.Context) ([]*user.User, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := make([]*user.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, u.Clone())
	}
	return out, nil
}

func (r *fakeUserRepo) Delete(ctx context.Context, id string) error {
	return shared.ErrDeleteNotAllowed
}

type fakeBoard struct {
	jobs []*job.Job
}

func (b *fakeBoard) Add(ctx context.Context, j *job.Job) error {
	b.jobs = append([]*job.Job{j}, b.jobs...)
	return nil
}

func (b *fakeBoard) List(ctx context.Context) ([]*job.Job, error) {
	return b.jobs, nil
}

func (b *fakeBoard) GetByID(ctx context.Context, id string) (*job.Job, error) {
	for _, j := range b.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, shared.ErrJobNotFound
}

func testCatalog(t *testing.T) *course.Catalog {
	t.Helper()

	react, err := course.NewCourse(course.Course{
		ID:    "course-1",
		Title: "React Essentials",
		Level: course.LevelBeginner,
		Tags:  []string{"React"},
		Curriculum: []course.CurriculumItem{
			{ID: "c1-1", Topic: "Components"},
		},
	})
	require.NoError(t, err)

	catalog, err := course.NewCatalog([]*course.Course{react})
	require.NoError(t, err)
	return catalog
}

func testUser(t *testing.T, id string, enrolled, completed []shared.CourseID) *user.User {
	t.Helper()

	u, err := user.NewUser(user.NewUserParams{
		ID:           id,
		Name:         "User " + id,
		Email:        shared.EmailAddress(id + "@skillconnect.io"),
		PasswordHash: "$2a$10$hash",
	})
	require.NoError(t, err)

	u.EnrolledCourses = enrolled
	u.CompletedCourses = completed
	return u
}

func TestEngagementReportJob_Run(t *testing.T) {
	repo := &fakeUserRepo{users: []*user.User{
		testUser(t, "user-1", []shared.CourseID{"course-1", "course-2"}, []shared.CourseID{"course-1"}),
		testUser(t, "user-2", []shared.CourseID{"course-1"}, nil),
	}}
	board := &fakeBoard{}
	posting, err := job.NewJob(job.NewJobParams{
		ID:       "job-1",
		Title:    "Frontend Developer",
		Company:  "Acme",
		PostedBy: "user-2",
	})
	require.NoError(t, err)
	require.NoError(t, board.Add(context.Background(), posting))

	j := NewEngagementReportJob(repo, testCatalog(t), board, quietLogger(), DefaultEngagementReportConfig())

	require.NoError(t, j.Run(context.Background()))

	report := j.LastReport()
	require.NotNil(t, report)
	assert.Equal(t, 2, report.TotalAccounts)
	assert.Equal(t, 3, report.TotalEnrollments)
	assert.Equal(t, 1, report.TotalCompletions)
	assert.Equal(t, 1, report.CoursesInCatalog)
	assert.Equal(t, 1, report.OpenJobPostings)
	assert.Equal(t, 2, report.EnrolledPerCourse["course-1"])
}

func TestEngagementReportJob_ListFailure(t *testing.T) {
	repo := &fakeUserRepo{listErr: errors.New("storage down")}
	j := NewEngagementReportJob(repo, testCatalog(t), &fakeBoard{}, quietLogger(), DefaultEngagementReportConfig())

	err := j.Run(context.Background())
	require.Error(t, err)
	assert.Nil(t, j.LastReport())
}

func TestEngagementReportJob_Metadata(t *testing.T) {
	j := NewEngagementReportJob(&fakeUserRepo{}, testCatalog(t), &fakeBoard{}, quietLogger(), DefaultEngagementReportConfig())
	assert.Equal(t, "engagement_report", j.Name())
	assert.NotEmpty(t, j.Description())
}

type fakePinger struct {
	err error
}

func (p *fakePinger) Ping(ctx context.Context) error {
	return p.err
}

func TestStorageHealthJob_Healthy(t *testing.T) {
	pinger := &fakePinger{}
	j := NewStorageHealthJob(pinger, quietLogger(), DefaultStorageHealthConfig("redis"))

	require.NoError(t, j.Run(context.Background()))
	assert.Equal(t, 0, j.ConsecutiveFailures())
}

func TestStorageHealthJob_CountsFailures(t *testing.T) {
	pinger := &fakePinger{err: errors.New("connection refused")}
	j := NewStorageHealthJob(pinger, quietLogger(), DefaultStorageHealthConfig("postgres"))

	for i := 1; i <= 4; i++ {
		err := j.Run(context.Background())
		require.Error(t, err)
		assert.Equal(t, i, j.ConsecutiveFailures())
	}
}

func TestStorageHealthJob_ResetsOnRecovery(t *testing.T) {
	pinger := &fakePinger{err: errors.New("connection refused")}
	j := NewStorageHealthJob(pinger, quietLogger(), DefaultStorageHealthConfig("postgres"))

	require.Error(t, j.Run(context.Background()))
	require.Equal(t, 1, j.ConsecutiveFailures())

	pinger.err = nil
	require.NoError(t, j.Run(context.Background()))
	assert.Equal(t, 0, j.ConsecutiveFailures())
}
