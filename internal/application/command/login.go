package command

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
	"github.com/skillconnect/skillconnect-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// LOGIN COMMAND
// Verifies credentials and starts a session. Unknown email and wrong
// password produce the same error so the response does not reveal
// whether an account exists.
// ══════════════════════════════════════════════════════════════════════════════

// LoginCommand contains the credentials to check.
type LoginCommand struct {
	// Email is the account email (case-sensitive match).
	Email string

	// Password is the plaintext password to verify.
	Password string
}

// Validate validates the command.
func (c LoginCommand) Validate() error {
	if c.Email == "" {
		return errors.New("login: email is required")
	}
	if c.Password == "" {
		return errors.New("login: password is required")
	}
	return nil
}

// LoginResult contains the result of a successful login.
type LoginResult struct {
	// User is a snapshot of the authenticated account.
	User *user.User
}

// LoginHandler handles the LoginCommand.
type LoginHandler struct {
	users    user.Repository
	sessions user.SessionStore
	log      *logger.Logger
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(
	users user.Repository,
	sessions user.SessionStore,
	log *logger.Logger,
) *LoginHandler {
	return &LoginHandler{
		users:    users,
		sessions: sessions,
		log:      log,
	}
}

// Handle executes the login command.
func (h *LoginHandler) Handle(ctx context.Context, cmd LoginCommand) (*LoginResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("login: validation failed: %w", err)
	}

	email, err := shared.NewEmailAddress(cmd.Email)
	if err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	u, err := h.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrAccountNotFound) {
			return nil, shared.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("login: lookup account: %w", err)
	}

	// Constant-time comparison under the hood
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(cmd.Password)); err != nil {
		return nil, shared.ErrInvalidCredentials
	}

	if err := h.sessions.SetCurrent(ctx, u.Email); err != nil {
		return nil, fmt.Errorf("login: start session: %w", err)
	}

	if h.log != nil {
		h.log.Info("user logged in", logger.UserID(u.ID), logger.Email(u.Email.String()))
	}

	return &LoginResult{User: u.Clone()}, nil
}
