// Package query contains read operations (CQRS - Queries).
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
// GET DASHBOARD QUERY
// Builds the home view for the current user: enrolled courses with
// progress, the next lesson to take, and a recommended course.
// ══════════════════════════════════════════════════════════════════════════════

// GetDashboardQuery requests the dashboard of the current user.
type GetDashboardQuery struct{}

// EnrolledCourseView is one enrolled course with derived progress.
type EnrolledCourseView struct {
	// Course is the catalog course.
	Course *course.Course

	// ProgressPercent is the share of curriculum items done (0-100).
	ProgressPercent int

	// Completed is true when the whole curriculum is covered.
	Completed bool

	// NextLesson is the first not-yet-done curriculum item.
	// Nil when the course is completed.
	NextLesson *course.CurriculumItem
}

// DashboardResult is the assembled dashboard.
type DashboardResult struct {
	// User is a snapshot of the current account.
	User *user.User

	// Enrolled lists enrolled courses in enrollment order.
	Enrolled []EnrolledCourseView

	// Recommended is the suggested next course. Nil when the user
	// is enrolled in everything.
	Recommended *course.Course
}

// GetDashboardHandler handles the GetDashboardQuery.
type GetDashboardHandler struct {
	users    user.Repository
	sessions user.SessionStore
	catalog  *course.Catalog
}

// NewGetDashboardHandler creates a new GetDashboardHandler.
func NewGetDashboardHandler(
	users user.Repository,
	sessions user.SessionStore,
	catalog *course.Catalog,
) *GetDashboardHandler {
	return &GetDashboardHandler{
		users:    users,
		sessions: sessions,
		catalog:  catalog,
	}
}

// Handle executes the dashboard query.
func (h *GetDashboardHandler) Handle(ctx context.Context, _ GetDashboardQuery) (*DashboardResult, error) {
	u, err := resolveCurrentUser(ctx, h.sessions, h.users)
	if err != nil {
		return nil, err
	}

	enrolled := make([]EnrolledCourseView, 0, len(u.EnrolledCourses))
	for _, courseID := range u.EnrolledCourses {
		c, err := h.catalog.Get(courseID)
		if err != nil {
			// Progress for a course missing from the catalog is kept
			// in the account but not shown
			continue
		}

		view := EnrolledCourseView{
			Course:          c,
			ProgressPercent: u.ProgressPercent(courseID, c.CurriculumIDs()),
			Completed:       u.IsCompleted(courseID),
		}
		if item, ok := c.NextIncompleteItem(u.ProgressFor(courseID)); ok {
			next := item
			view.NextLesson = &next
		}
		enrolled = append(enrolled, view)
	}

	recommended, _ := course.Recommend(u, h.catalog)

	return &DashboardResult{
		User:        u.Clone(),
		Enrolled:    enrolled,
		Recommended: recommended,
	}, nil
}

// resolveCurrentUser resolves the account behind the active session.
func resolveCurrentUser(
	ctx context.Context,
	sessions user.SessionStore,
	users user.Repository,
) (*user.User, error) {
	email, err := sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	u, err := users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrAccountNotFound) {
			return nil, shared.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("query: resolve current user: %w", err)
	}

	return u, nil
}
