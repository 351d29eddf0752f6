package messaging

import (
	"errors"
	"io"
	"log/slog"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
)

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func syncBus() *InMemoryEventBus {
	cfg := DefaultInMemoryEventBusConfig()
	cfg.AsyncMode = false
	cfg.Logger = quietLogger()
	return NewInMemoryEventBus(cfg)
}

func TestInMemoryEventBus_PublishToSubscriber(t *testing.T) {
	bus := syncBus()
	defer bus.Close()

	var got atomic.Value
	err := bus.Subscribe(shared.EventCourseEnrolled, func(event shared.Event) error {
		got.Store(event)
		return nil
	})
	require.NoError(t, err)

	event := shared.NewCourseEnrolledEvent("user-1", "course-2")
	require.NoError(t, bus.Publish(event))

	received, ok := got.Load().(shared.CourseEnrolledEvent)
	require.True(t, ok)
	assert.Equal(t, "user-1", received.AggregateID())
	assert.Equal(t, "course-2", received.CourseID)
}

func TestInMemoryEventBus_TypeFiltering(t *testing.T) {
	bus := syncBus()
	defer bus.Close()

	var calls atomic.Int64
	require.NoError(t, bus.Subscribe(shared.EventJobPosted, func(shared.Event) error {
		calls.Add(1)
		return nil
	}))

	require.NoError(t, bus.Publish(shared.NewCourseEnrolledEvent("user-1", "course-1")))
	assert.Equal(t, int64(0), calls.Load())

	require.NoError(t, bus.Publish(shared.NewJobPostedEvent("job-1", "Engineer", "Acme", "user-1")))
	assert.Equal(t, int64(1), calls.Load())
}

func TestInMemoryEventBus_SubscribeAll(t *testing.T) {
	bus := syncBus()
	defer bus.Close()

	var calls atomic.Int64
	require.NoError(t, bus.SubscribeAll(func(shared.Event) error {
		calls.Add(1)
		return nil
	}))

	require.NoError(t, bus.Publish(shared.NewCourseEnrolledEvent("user-1", "course-1")))
	require.NoError(t, bus.Publish(shared.NewJobPostedEvent("job-1", "Engineer", "Acme", "user-1")))
	assert.Equal(t, int64(2), calls.Load())
}

func TestInMemoryEventBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := syncBus()
	defer bus.Close()

	var calls atomic.Int64
	require.NoError(t, bus.Subscribe(shared.EventUserRegistered, func(shared.Event) error {
		return errors.New("boom")
	}))
	require.NoError(t, bus.Subscribe(shared.EventUserRegistered, func(shared.Event) error {
		calls.Add(1)
		return nil
	}))

	require.NoError(t, bus.Publish(shared.NewUserRegisteredEvent("user-1", "a@skillconnect.io", "A")))
	assert.Equal(t, int64(1), calls.Load())
}

func TestInMemoryEventBus_Close(t *testing.T) {
	bus := syncBus()

	require.NoError(t, bus.Close())
	// Idempotent
	require.NoError(t, bus.Close())

	err := bus.Publish(shared.NewCourseEnrolledEvent("user-1", "course-1"))
	assert.ErrorIs(t, err, ErrEventBusClosed)

	err = bus.Subscribe(shared.EventCourseEnrolled, func(shared.Event) error { return nil })
	assert.ErrorIs(t, err, ErrEventBusClosed)
}

func TestInMemoryEventBus_AsyncDelivery(t *testing.T) {
	cfg := DefaultInMemoryEventBusConfig()
	cfg.Logger = quietLogger()
	bus := NewInMemoryEventBus(cfg)
	defer bus.Close()

	var calls atomic.Int64
	require.NoError(t, bus.Subscribe(shared.EventCourseCompleted, func(shared.Event) error {
		calls.Add(1)
		return nil
	}))

	require.NoError(t, bus.Publish(shared.NewCourseCompletedEvent("user-1", "course-1")))

	assert.Eventually(t, func() bool {
		return calls.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestInMemoryEventBus_Metrics(t *testing.T) {
	bus := syncBus()
	defer bus.Close()

	require.NoError(t, bus.Subscribe(shared.EventCourseEnrolled, func(shared.Event) error {
		return nil
	}))
	require.NoError(t, bus.Publish(shared.NewCourseEnrolledEvent("user-1", "course-1")))

	snap := bus.Metrics().Snapshot()
	assert.Equal(t, int64(1), snap.TotalPublished)
	assert.Equal(t, int64(1), snap.TotalHandlerExecs)
	assert.Equal(t, float64(1), snap.HandlerSuccessRate)
}

func TestDispatcher_DispatchesToRegisteredHandler(t *testing.T) {
	bus := syncBus()
	defer bus.Close()

	cfg := DefaultDispatcherConfig(bus)
	cfg.Logger = quietLogger()
	d := NewDispatcher(cfg)

	var calls atomic.Int64
	require.NoError(t, d.RegisterSync(shared.EventJobPosted, "test_handler", func(shared.Event) error {
		calls.Add(1)
		return nil
	}))
	require.NoError(t, d.Start())
	defer d.Stop()

	require.NoError(t, bus.Publish(shared.NewJobPostedEvent("job-1", "Engineer", "Acme", "user-1")))

	assert.Eventually(t, func() bool {
		return calls.Load() == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestDeadLetterQueue_CapacityEviction(t *testing.T) {
	q := NewDeadLetterQueue(2)

	for i := 0; i < 3; i++ {
		q.Add(DeadLetterEntry{
			Event:       shared.NewCourseEnrolledEvent("user-1", "course-1"),
			HandlerName: "h",
			FailedAt:    time.Now(),
		})
	}

	assert.Equal(t, 2, q.Size())
}
