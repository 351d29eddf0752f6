package shared

import (
	"time"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types. Each event records something significant that
// happened in the domain; the dispatcher feeds them to the logger and
// any other in-process subscribers.
const (
	// Account events
	EventUserRegistered EventType = "account.registered"
	EventUserLoggedIn   EventType = "account.logged_in"
	EventUserLoggedOut  EventType = "account.logged_out"
	EventProfileUpdated EventType = "account.profile_updated"

	// Progress events
	EventCourseEnrolled          EventType = "progress.course_enrolled"
	EventLessonToggled           EventType = "progress.lesson_toggled"
	EventCourseCompleted         EventType = "progress.course_completed"
	EventCourseCompletionRevoked EventType = "progress.course_completion_revoked"

	// Job board events
	EventJobPosted EventType = "jobs.posted"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// Payload returns the event data as a map for serialization.
	Payload() map[string]interface{}
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	Type        EventType `json:"type"`
	Timestamp   time.Time `json:"timestamp"`
	AggregateId string    `json:"aggregate_id"`
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		Type:        eventType,
		Timestamp:   time.Now().UTC(),
		AggregateId: aggregateID,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Account Events
// ═══════════════════════════════════════════════════════════════════════════

// UserRegisteredEvent is emitted when a new account is created.
type UserRegisteredEvent struct {
	BaseEvent
	Email string `json:"email"`
	Name  string `json:"name"`
}

// Payload implements Event interface.
func (e UserRegisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_id": e.AggregateId,
		"email":   e.Email,
		"name":    e.Name,
	}
}

// NewUserRegisteredEvent creates a registration event.
func NewUserRegisteredEvent(userID, email, name string) UserRegisteredEvent {
	return UserRegisteredEvent{
		BaseEvent: NewBaseEvent(EventUserRegistered, userID),
		Email:     email,
		Name:      name,
	}
}

// ProfileUpdatedEvent is emitted when profile fields change.
type ProfileUpdatedEvent struct {
	BaseEvent
	ChangedFields []string `json:"changed_fields"`
}

// Payload implements Event interface.
func (e ProfileUpdatedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_id":        e.AggregateId,
		"changed_fields": e.ChangedFields,
	}
}

// NewProfileUpdatedEvent creates a profile update event.
func NewProfileUpdatedEvent(userID string, changed []string) ProfileUpdatedEvent {
	return ProfileUpdatedEvent{
		BaseEvent:     NewBaseEvent(EventProfileUpdated, userID),
		ChangedFields: changed,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Progress Events
// ═══════════════════════════════════════════════════════════════════════════

// CourseEnrolledEvent is emitted when a user enrolls in a course.
type CourseEnrolledEvent struct {
	BaseEvent
	CourseID string `json:"course_id"`
}

// Payload implements Event interface.
func (e CourseEnrolledEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_id":   e.AggregateId,
		"course_id": e.CourseID,
	}
}

// NewCourseEnrolledEvent creates an enrollment event.
func NewCourseEnrolledEvent(userID, courseID string) CourseEnrolledEvent {
	return CourseEnrolledEvent{
		BaseEvent: NewBaseEvent(EventCourseEnrolled, userID),
		CourseID:  courseID,
	}
}

// LessonToggledEvent is emitted when a lesson's done flag flips.
type LessonToggledEvent struct {
	BaseEvent
	CourseID     string `json:"course_id"`
	CurriculumID string `json:"curriculum_id"`
	Done         bool   `json:"done"`
}

// Payload implements Event interface.
func (e LessonToggledEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_id":       e.AggregateId,
		"course_id":     e.CourseID,
		"curriculum_id": e.CurriculumID,
		"done":          e.Done,
	}
}

// NewLessonToggledEvent creates a lesson toggle event.
func NewLessonToggledEvent(userID, courseID, curriculumID string, done bool) LessonToggledEvent {
	return LessonToggledEvent{
		BaseEvent:    NewBaseEvent(EventLessonToggled, userID),
		CourseID:     courseID,
		CurriculumID: curriculumID,
		Done:         done,
	}
}

// CourseCompletedEvent is emitted when an enrolled course reaches full
// curriculum coverage.
type CourseCompletedEvent struct {
	BaseEvent
	CourseID string `json:"course_id"`
}

// Payload implements Event interface.
func (e CourseCompletedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_id":   e.AggregateId,
		"course_id": e.CourseID,
	}
}

// NewCourseCompletedEvent creates a completion event.
func NewCourseCompletedEvent(userID, courseID string) CourseCompletedEvent {
	return CourseCompletedEvent{
		BaseEvent: NewBaseEvent(EventCourseCompleted, userID),
		CourseID:  courseID,
	}
}

// CourseCompletionRevokedEvent is emitted when a completed course drops
// below full coverage (a lesson was un-ticked).
type CourseCompletionRevokedEvent struct {
	BaseEvent
	CourseID string `json:"course_id"`
}

// Payload implements Event interface.
func (e CourseCompletionRevokedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"user_id":   e.AggregateId,
		"course_id": e.CourseID,
	}
}

// NewCourseCompletionRevokedEvent creates a revocation event.
func NewCourseCompletionRevokedEvent(userID, courseID string) CourseCompletionRevokedEvent {
	return CourseCompletionRevokedEvent{
		BaseEvent: NewBaseEvent(EventCourseCompletionRevoked, userID),
		CourseID:  courseID,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Job Board Events
// ═══════════════════════════════════════════════════════════════════════════

// JobPostedEvent is emitted when a job is posted.
type JobPostedEvent struct {
	BaseEvent
	Title    string `json:"title"`
	Company  string `json:"company"`
	PostedBy string `json:"posted_by"`
}

// Payload implements Event interface.
func (e JobPostedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"job_id":    e.AggregateId,
		"title":     e.Title,
		"company":   e.Company,
		"posted_by": e.PostedBy,
	}
}

// NewJobPostedEvent creates a job posted event.
func NewJobPostedEvent(jobID, title, company, postedBy string) JobPostedEvent {
	return JobPostedEvent{
		BaseEvent: NewBaseEvent(EventJobPosted, jobID),
		Title:     title,
		Company:   company,
		PostedBy:  postedBy,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Publishing
// ═══════════════════════════════════════════════════════════════════════════

// EventHandler processes a single event.
type EventHandler func(event Event) error

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	// Publish delivers the event to all subscribers.
	Publish(event Event) error
}

// EventSubscriber defines the interface for subscribing to events.
type EventSubscriber interface {
	// Subscribe registers a handler for the given event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for every event type.
	SubscribeAll(handler EventHandler) error
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}

// NopPublisher discards all events. Useful in tests.
type NopPublisher struct{}

// Publish implements EventPublisher.
func (NopPublisher) Publish(Event) error { return nil }
