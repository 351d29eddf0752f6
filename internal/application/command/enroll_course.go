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
// ENROLL COURSE COMMAND
// Enrolls the current user into a catalog course. Idempotent: enrolling
// twice leaves the account unchanged. There is no unenroll.
// ══════════════════════════════════════════════════════════════════════════════

// EnrollCourseCommand contains the course to enroll into.
type EnrollCourseCommand struct {
	// CourseID is the catalog course identifier.
	CourseID shared.CourseID
}

// Validate validates the command.
func (c EnrollCourseCommand) Validate() error {
	if !c.CourseID.IsValid() {
		return errors.New("enroll_course: course_id is required")
	}
	return nil
}

// EnrollCourseResult contains the result of enrollment.
type EnrollCourseResult struct {
	// User is a snapshot of the account after enrollment.
	User *user.User

	// AlreadyEnrolled is true when the call was a no-op.
	AlreadyEnrolled bool
}

// EnrollCourseHandler handles the EnrollCourseCommand.
type EnrollCourseHandler struct {
	users    user.Repository
	sessions user.SessionStore
	catalog  *course.Catalog
	events   shared.EventPublisher
	log      *logger.Logger
}

// NewEnrollCourseHandler creates a new EnrollCourseHandler.
func NewEnrollCourseHandler(
	users user.Repository,
	sessions user.SessionStore,
	catalog *course.Catalog,
	events shared.EventPublisher,
	log *logger.Logger,
) *EnrollCourseHandler {
	if events == nil {
		events = shared.NopPublisher{}
	}
	return &EnrollCourseHandler{
		users:    users,
		sessions: sessions,
		catalog:  catalog,
		events:   events,
		log:      log,
	}
}

// Handle executes the enroll command.
func (h *EnrollCourseHandler) Handle(
	ctx context.Context,
	cmd EnrollCourseCommand,
) (*EnrollCourseResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("enroll_course: validation failed: %w", err)
	}

	// The course must exist in the catalog
	if _, err := h.catalog.Get(cmd.CourseID); err != nil {
		return nil, err
	}

	u, err := currentUser(ctx, h.sessions, h.users)
	if err != nil {
		return nil, err
	}

	added, err := u.Enroll(cmd.CourseID)
	if err != nil {
		return nil, fmt.Errorf("enroll_course: %w", err)
	}

	if !added {
		return &EnrollCourseResult{User: u.Clone(), AlreadyEnrolled: true}, nil
	}

	if err := h.users.Update(ctx, u); err != nil {
		return nil, fmt.Errorf("enroll_course: save account: %w", err)
	}

	_ = h.events.Publish(shared.NewCourseEnrolledEvent(u.ID, cmd.CourseID.String()))

	if h.log != nil {
		h.log.Info("course enrolled",
			logger.UserID(u.ID),
			logger.CourseID(cmd.CourseID.String()),
		)
	}

	return &EnrollCourseResult{User: u.Clone()}, nil
}
