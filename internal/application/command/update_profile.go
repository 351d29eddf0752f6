package command

import (
	"context"
	"fmt"
	"time"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
	"github.com/skillconnect/skillconnect-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// UPDATE PROFILE COMMAND
// Applies a structured profile update to the current user. Only the
// listed fields change; arrays are replaced wholesale. Email, password
// and enrollment state are out of reach here.
// ══════════════════════════════════════════════════════════════════════════════

// UpdateProfileCommand contains the profile fields to change.
// nil values mean "don't change".
type UpdateProfileCommand struct {
	Update user.ProfileUpdate
}

// Validate validates the command.
func (c UpdateProfileCommand) Validate() error {
	return c.Update.Validate()
}

// UpdateProfileResult contains the result of the update.
type UpdateProfileResult struct {
	// User is a snapshot of the account after the update.
	User *user.User

	// ChangedFields lists which fields were changed.
	ChangedFields []string

	// UpdatedAt is when the profile was updated.
	UpdatedAt time.Time
}

// UpdateProfileHandler handles the UpdateProfileCommand.
type UpdateProfileHandler struct {
	users    user.Repository
	sessions user.SessionStore
	events   shared.EventPublisher
	log      *logger.Logger
}

// NewUpdateProfileHandler creates a new UpdateProfileHandler.
func NewUpdateProfileHandler(
	users user.Repository,
	sessions user.SessionStore,
	events shared.EventPublisher,
	log *logger.Logger,
) *UpdateProfileHandler {
	if events == nil {
		events = shared.NopPublisher{}
	}
	return &UpdateProfileHandler{
		users:    users,
		sessions: sessions,
		events:   events,
		log:      log,
	}
}

// Handle executes the update profile command.
func (h *UpdateProfileHandler) Handle(
	ctx context.Context,
	cmd UpdateProfileCommand,
) (*UpdateProfileResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("update_profile: validation failed: %w", err)
	}

	u, err := currentUser(ctx, h.sessions, h.users)
	if err != nil {
		return nil, err
	}

	changed, err := u.ApplyProfileUpdate(cmd.Update)
	if err != nil {
		return nil, fmt.Errorf("update_profile: %w", err)
	}

	// Save only if something changed
	if len(changed) > 0 {
		if err := h.users.Update(ctx, u); err != nil {
			return nil, fmt.Errorf("update_profile: save account: %w", err)
		}

		_ = h.events.Publish(shared.NewProfileUpdatedEvent(u.ID, changed))

		if h.log != nil {
			h.log.Info("profile updated",
				logger.UserID(u.ID),
				logger.Any("changed", changed),
			)
		}
	}

	return &UpdateProfileResult{
		User:          u.Clone(),
		ChangedFields: changed,
		UpdatedAt:     u.UpdatedAt,
	}, nil
}
