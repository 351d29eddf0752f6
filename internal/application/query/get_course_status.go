package query

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillconnect/skillconnect-hub/internal/domain/course"
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// GET COURSE STATUS QUERY
// Detailed view of one catalog course for the current user: lesson by
// lesson completion state.
// ══════════════════════════════════════════════════════════════════════════════

// GetCourseStatusQuery identifies the course to inspect.
type GetCourseStatusQuery struct {
	// CourseID is the catalog course identifier.
	CourseID shared.CourseID
}

// Validate validates the query.
func (q GetCourseStatusQuery) Validate() error {
	if !q.CourseID.IsValid() {
		return errors.New("get_course_status: course_id is required")
	}
	return nil
}

// LessonStatus is one curriculum item with its completion flag.
type LessonStatus struct {
	Item course.CurriculumItem
	Done bool
}

// CourseStatusResult is the assembled course view.
type CourseStatusResult struct {
	// Course is the catalog course.
	Course *course.Course

	// Enrolled is true when the current user is enrolled.
	Enrolled bool

	// Completed is true when the whole curriculum is covered.
	Completed bool

	// ProgressPercent is the share of curriculum items done (0-100).
	ProgressPercent int

	// Lessons lists curriculum items in course order.
	Lessons []LessonStatus
}

// GetCourseStatusHandler handles the GetCourseStatusQuery.
type GetCourseStatusHandler struct {
	users    user.Repository
	sessions user.SessionStore
	catalog  *course.Catalog
}

// NewGetCourseStatusHandler creates a new GetCourseStatusHandler.
func NewGetCourseStatusHandler(
	users user.Repository,
	sessions user.SessionStore,
	catalog *course.Catalog,
) *GetCourseStatusHandler {
	return &GetCourseStatusHandler{
		users:    users,
		sessions: sessions,
		catalog:  catalog,
	}
}

// Handle executes the course status query.
func (h *GetCourseStatusHandler) Handle(
	ctx context.Context,
	q GetCourseStatusQuery,
) (*CourseStatusResult, error) {
	if err := q.Validate(); err != nil {
		return nil, fmt.Errorf("get_course_status: validation failed: %w", err)
	}

	c, err := h.catalog.Get(q.CourseID)
	if err != nil {
		return nil, err
	}

	u, err := resolveCurrentUser(ctx, h.sessions, h.users)
	if err != nil {
		return nil, err
	}

	lessons := make([]LessonStatus, len(c.Curriculum))
	for i, item := range c.Curriculum {
		lessons[i] = LessonStatus{
			Item: item,
			Done: u.HasCompletedLesson(q.CourseID, item.ID),
		}
	}

	return &CourseStatusResult{
		Course:          c,
		Enrolled:        u.IsEnrolled(q.CourseID),
		Completed:       u.IsCompleted(q.CourseID),
		ProgressPercent: u.ProgressPercent(q.CourseID, c.CurriculumIDs()),
		Lessons:         lessons,
	}, nil
}
