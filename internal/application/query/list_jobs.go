package query

import (
	"context"
	"fmt"

	"github.com/skillconnect/skillconnect-hub/internal/domain/job"
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// LIST JOBS QUERY
// The job board, newest postings first. Optionally filtered by a
// skill tag.
// ══════════════════════════════════════════════════════════════════════════════

// ListJobsQuery requests the board contents.
type ListJobsQuery struct {
	// Skill filters postings to those requiring the tag.
	// Empty means no filter.
	Skill string
}

// ListJobsResult contains postings, newest first.
type ListJobsResult struct {
	Jobs []*job.Job
}

// ListJobsHandler handles the ListJobsQuery.
type ListJobsHandler struct {
	board job.Board
}

// NewListJobsHandler creates a new ListJobsHandler.
func NewListJobsHandler(board job.Board) *ListJobsHandler {
	return &ListJobsHandler{board: board}
}

// Handle executes the list jobs query.
func (h *ListJobsHandler) Handle(ctx context.Context, q ListJobsQuery) (*ListJobsResult, error) {
	jobs, err := h.board.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list_jobs: load board: %w", err)
	}

	if q.Skill == "" {
		return &ListJobsResult{Jobs: jobs}, nil
	}

	filtered := make([]*job.Job, 0, len(jobs))
	for _, j := range jobs {
		if shared.TagsIntersect(j.RequiredSkills, []string{q.Skill}) {
			filtered = append(filtered, j)
		}
	}

	return &ListJobsResult{Jobs: filtered}, nil
}
