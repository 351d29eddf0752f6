package command

import (
	"context"
	"fmt"

	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
	"github.com/skillconnect/skillconnect-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// LOGOUT COMMAND
// Clears the session pointer. Idempotent: logging out without a session
// succeeds and changes nothing.
// ══════════════════════════════════════════════════════════════════════════════

// LogoutCommand ends the current session.
type LogoutCommand struct{}

// LogoutHandler handles the LogoutCommand.
type LogoutHandler struct {
	sessions user.SessionStore
	log      *logger.Logger
}

// NewLogoutHandler creates a new LogoutHandler.
func NewLogoutHandler(sessions user.SessionStore, log *logger.Logger) *LogoutHandler {
	return &LogoutHandler{sessions: sessions, log: log}
}

// Handle executes the logout command.
func (h *LogoutHandler) Handle(ctx context.Context, _ LogoutCommand) error {
	if err := h.sessions.Clear(ctx); err != nil {
		return fmt.Errorf("logout: clear session: %w", err)
	}

	if h.log != nil {
		h.log.Info("session cleared")
	}

	return nil
}
