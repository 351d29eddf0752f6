package scheduler

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingJob struct {
	name string
	runs atomic.Int64
	err  error
}

func (j *countingJob) Name() string        { return j.name }
func (j *countingJob) Description() string { return "counts its own executions" }

func (j *countingJob) Run(ctx context.Context) error {
	j.runs.Add(1)
	return j.err
}

func newTestScheduler() *Scheduler {
	cfg := DefaultConfig()
	cfg.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg.TickInterval = 10 * time.Millisecond
	return New(cfg)
}

func TestScheduler_Register(t *testing.T) {
	s := newTestScheduler()
	job := &countingJob{name: "digest"}

	require.NoError(t, s.Register(job, NewIntervalSchedule(time.Hour)))

	err := s.Register(job, NewIntervalSchedule(time.Hour))
	assert.ErrorIs(t, err, ErrJobAlreadyExists)

	assert.ErrorIs(t, s.Register(nil, NewIntervalSchedule(time.Hour)), ErrNilJob)
	assert.ErrorIs(t, s.Register(&countingJob{name: "other"}, nil), ErrNilSchedule)

	jobs := s.ListJobs()
	require.Len(t, jobs, 1)
	assert.Equal(t, "digest", jobs[0].Name)
	assert.Equal(t, "@every 1h0m0s", jobs[0].Schedule)
	assert.False(t, jobs[0].NextRun.IsZero())
}

func TestScheduler_Unregister(t *testing.T) {
	s := newTestScheduler()
	require.NoError(t, s.Register(&countingJob{name: "digest"}, NewIntervalSchedule(time.Hour)))

	require.NoError(t, s.Unregister("digest"))
	assert.Empty(t, s.ListJobs())

	assert.ErrorIs(t, s.Unregister("digest"), ErrJobNotFound)
}

func TestScheduler_StartStop(t *testing.T) {
	s := newTestScheduler()
	require.NoError(t, s.Start(context.Background()))
	assert.True(t, s.IsRunning())

	assert.ErrorIs(t, s.Start(context.Background()), ErrSchedulerAlreadyRunning)

	require.NoError(t, s.Stop())
	assert.False(t, s.IsRunning())
	assert.ErrorIs(t, s.Stop(), ErrSchedulerNotRunning)
}

func TestScheduler_RunsDueJobs(t *testing.T) {
	s := newTestScheduler()
	job := &countingJob{name: "fast"}
	require.NoError(t, s.Register(job, NewIntervalSchedule(20*time.Millisecond)))

	require.NoError(t, s.Start(context.Background()))
	defer s.Stop()

	assert.Eventually(t, func() bool {
		return job.runs.Load() >= 2
	}, 2*time.Second, 10*time.Millisecond)
}

func TestScheduler_RunNow(t *testing.T) {
	s := newTestScheduler()
	job := &countingJob{name: "digest"}
	require.NoError(t, s.Register(job, NewIntervalSchedule(time.Hour)))

	result, err := s.RunNow(context.Background(), "digest")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.Equal(t, int64(1), job.runs.Load())

	_, err = s.RunNow(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestScheduler_RunNow_FailureRecorded(t *testing.T) {
	s := newTestScheduler()
	job := &countingJob{name: "flaky", err: errors.New("boom")}
	require.NoError(t, s.Register(job, NewIntervalSchedule(time.Hour)))

	result, err := s.RunNow(context.Background(), "flaky")
	require.Error(t, err)
	assert.False(t, result.Success)

	snap := s.Metrics().Snapshot()
	assert.Equal(t, int64(1), snap.TotalExecutions)
	assert.Equal(t, int64(1), snap.TotalFailures)
	assert.Equal(t, float64(0), snap.SuccessRate)

	infos := s.ListJobs()
	require.Len(t, infos, 1)
	assert.Equal(t, int64(1), infos[0].FailCount)
}

func TestIntervalSchedule(t *testing.T) {
	s := NewIntervalSchedule(time.Minute)
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	assert.Equal(t, base.Add(time.Minute), s.Next(base))
	assert.Equal(t, "@every 1m0s", s.String())
}

func TestDailySchedule(t *testing.T) {
	s := NewDailySchedule(3, 30)

	before := time.Date(2026, 8, 28, 1, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 28, 3, 30, 0, 0, time.UTC), s.Next(before))

	after := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 29, 3, 30, 0, 0, time.UTC), s.Next(after))

	exact := time.Date(2026, 8, 28, 3, 30, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2026, 8, 29, 3, 30, 0, 0, time.UTC), s.Next(exact))

	assert.Equal(t, "@daily 03:30", s.String())
}
