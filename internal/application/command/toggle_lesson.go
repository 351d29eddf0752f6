package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillconnect/skillconnect-hub/internal/domain/course"
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
	"github.com/skillconnect/skillconnect-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// TOGGLE LESSON COMMAND
// Flips one curriculum item between done and not done for the current
// user, then re-derives course completion from the full curriculum.
// ══════════════════════════════════════════════════════════════════════════════

// ToggleLessonCommand identifies the curriculum item to flip.
type ToggleLessonCommand struct {
	// CourseID is the catalog course identifier.
	CourseID shared.CourseID

	// LessonID is the curriculum item identifier.
	LessonID shared.CurriculumID
}

// Validate validates the command.
func (c ToggleLessonCommand) Validate() error {
	if !c.CourseID.IsValid() {
		return errors.New("toggle_lesson: course_id is required")
	}
	if !c.LessonID.IsValid() {
		return errors.New("toggle_lesson: lesson_id is required")
	}
	return nil
}

// ToggleLessonResult contains the result of the toggle.
type ToggleLessonResult struct {
	// User is a snapshot of the account after the toggle.
	User *user.User

	// Done is the new state of the item.
	Done bool

	// Completed is true when this toggle completed the course.
	Completed bool

	// CompletionRevoked is true when this toggle un-completed the course.
	CompletionRevoked bool
}

// ToggleLessonHandler handles the ToggleLessonCommand.
type ToggleLessonHandler struct {
	users    user.Repository
	sessions user.SessionStore
	catalog  *course.Catalog
	events   shared.EventPublisher
	log      *logger.Logger
}

// NewToggleLessonHandler creates a new ToggleLessonHandler.
func NewToggleLessonHandler(
	users user.Repository,
	sessions user.SessionStore,
	catalog *course.Catalog,
	events shared.EventPublisher,
	log *logger.Logger,
) *ToggleLessonHandler {
	if events == nil {
		events = shared.NopPublisher{}
	}
	return &ToggleLessonHandler{
		users:    users,
		sessions: sessions,
		catalog:  catalog,
		events:   events,
		log:      log,
	}
}

// Handle executes the toggle command.
func (h *ToggleLessonHandler) Handle(
	ctx context.Context,
	cmd ToggleLessonCommand,
) (*ToggleLessonResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("toggle_lesson: validation failed: %w", err)
	}

	c, err := h.catalog.Get(cmd.CourseID)
	if err != nil {
		return nil, err
	}

	u, err := currentUser(ctx, h.sessions, h.users)
	if err != nil {
		return nil, err
	}

	outcome, err := u.ToggleLesson(cmd.CourseID, c.CurriculumIDs(), cmd.LessonID)
	if err != nil {
		return nil, fmt.Errorf("toggle_lesson: %w", err)
	}

	if err := h.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("toggle_lesson: save account: %w", err)
	}

	_ = h.events.Publish(shared.NewLessonToggledEvent(
		u.ID, cmd.CourseID.String(), cmd.LessonID.String(), outcome.Done,
	))
	if outcome.Completed {
		_ = h.events.Publish(shared.NewCourseCompletedEvent(u.ID, cmd.CourseID.String()))
	}
	if outcome.CompletionRevoked {
		_ = h.events.Publish(shared.NewCourseCompletionRevokedEvent(u.ID, cmd.CourseID.String()))
	}

	if h.log != nil {
		h.log.Info("lesson toggled",
			logger.UserID(u.ID),
			logger.CourseID(cmd.CourseID.String()),
			logger.LessonID(cmd.LessonID.String()),
			logger.Bool("done", outcome.Done),
		)
	}

	return &ToggleLessonResult{
		User:              u.Clone(),
		Done:              outcome.Done,
		Completed:         outcome.Completed,
		CompletionRevoked: outcome.CompletionRevoked,
	}, nil
}
