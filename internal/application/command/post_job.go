package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/skillconnect/skillconnect-hub/internal/domain/job"
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
	"github.com/skillconnect/skillconnect-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// POST JOB COMMAND
// Publishes a job on behalf of the current user. The board keeps
// postings newest-first; published postings are immutable.
// ══════════════════════════════════════════════════════════════════════════════

// PostJobCommand contains the posting data.
type PostJobCommand struct {
	Title          string
	Company        string
	Location       string
	Description    string
	RequiredSkills []string
	ContactInfo    string
}

// Validate validates the command.
func (c PostJobCommand) Validate() error {
	if strings.TrimSpace(c.Title) == "" {
		return errors.New("post_job: title is required")
	}
	if strings.TrimSpace(c.Company) == "" {
		return errors.New("post_job: company is required")
	}
	return nil
}

// PostJobResult contains the published posting.
type PostJobResult struct {
	Job *job.Job
}

// PostJobHandler handles the PostJobCommand.
type PostJobHandler struct {
	board    job.Board
	users    user.Repository
	sessions user.SessionStore
	events   shared.EventPublisher
	log      *logger.Logger
}

// NewPostJobHandler creates a new PostJobHandler.
func NewPostJobHandler(
	board job.Board,
	users user.Repository,
	sessions user.SessionStore,
	events shared.EventPublisher,
	log *logger.Logger,
) *PostJobHandler {
	if events == nil {
		events = shared.NopPublisher{}
	}
	return &PostJobHandler{
		board:    board,
		users:    users,
		sessions: sessions,
		events:   events,
		log:      log,
	}
}

// Handle executes the post job command.
func (h *PostJobHandler) Handle(ctx context.Context, cmd PostJobCommand) (*PostJobResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("post_job: validation failed: %w", err)
	}

	// Only authenticated users publish postings
	u, err := currentUser(ctx, h.sessions, h.users)
	if err != nil {
		return nil, err
	}

	j, err := job.NewJob(job.NewJobParams{
		ID:             uuid.NewString(),
		Title:          cmd.Title,
		Company:        cmd.Company,
		Location:       cmd.Location,
		Description:    cmd.Description,
		RequiredSkills: cmd.RequiredSkills,
		ContactInfo:    cmd.ContactInfo,
		PostedBy:       u.ID,
	})
	if err != nil {
		return nil, fmt.Errorf("post_job: %w", err)
	}

	if err := h.board.Add(ctx, j); err != nil {
		return nil, fmt.Errorf("post_job: save posting: %w", err)
	}

	_ = h.events.Publish(shared.NewJobPostedEvent(j.ID, j.Title, j.Company, j.PostedBy))

	if h.log != nil {
		h.log.Info("job posted",
			logger.UserID(u.ID),
			logger.JobID(j.ID),
		)
	}

	return &PostJobResult{Job: j}, nil
}
