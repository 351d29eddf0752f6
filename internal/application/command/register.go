package command

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
	"github.com/skillconnect/skillconnect-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// REGISTER COMMAND
// Creates a new account and starts a session for it. Email is the
// uniqueness key; the plaintext password never leaves this handler.
// ══════════════════════════════════════════════════════════════════════════════

// RegisterCommand contains the data to create an account.
type RegisterCommand struct {
	// Name is the display name.
	Name string

	// Email is the unique account email.
	Email string

	// Password is the plaintext password. It is hashed before storage.
	Password string
}

// Validate validates the command.
func (c RegisterCommand) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("register: name is required")
	}
	if c.Email == "" {
		return errors.New("register: email is required")
	}
	if c.Password == "" {
		return errors.New("register: password is required")
	}
	return nil
}

// RegisterResult contains the result of registration.
type RegisterResult struct {
	// User is a snapshot of the freshly created account.
	User *user.User

	// CreatedAt is when the account was created.
	CreatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// HANDLER
// ══════════════════════════════════════════════════════════════════════════════

// RegisterHandler handles the RegisterCommand.
type RegisterHandler struct {
	users    user.Repository
	sessions user.SessionStore
	events   shared.EventPublisher
	log      *logger.Logger
}

// NewRegisterHandler creates a new RegisterHandler.
func NewRegisterHandler(
	users user.Repository,
	sessions user.SessionStore,
	events shared.EventPublisher,
	log *logger.Logger,
) *RegisterHandler {
	if events == nil {
		events = shared.NopPublisher{}
	}
	return &RegisterHandler{
		users:    users,
		sessions: sessions,
		events:   events,
		log:      log,
	}
}

// Handle executes the register command.
func (h *RegisterHandler) Handle(ctx context.Context, cmd RegisterCommand) (*RegisterResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("register: validation failed: %w", err)
	}

	email, err := shared.NewEmailAddress(cmd.Email)
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	// Check for an existing account before the expensive hash
	if _, err := h.users.GetByEmail(ctx, email); err == nil {
		return nil, shared.ErrDuplicateAccount
	} else if !errors.Is(err, shared.ErrAccountNotFound) {
		return nil, fmt.Errorf("register: lookup existing account: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(cmd.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("register: hash password: %w", err)
	}

	u, err := user.NewUser(user.NewUserParams{
		ID:           uuid.NewString(),
		Name:         cmd.Name,
		Email:        email,
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, fmt.Errorf("register: %w", err)
	}

	if err := h.users.Create(ctx, u); err != nil {
		// The store enforces uniqueness too; a concurrent registration
		// surfaces here
		if errors.Is(err, shared.ErrDuplicateAccount) {
			return nil, shared.ErrDuplicateAccount
		}
		return nil, fmt.Errorf("register: save account: %w", err)
	}

	if err := h.sessions.SetCurrent(ctx, u.Email); err != nil {
		return nil, fmt.Errorf("register: start session: %w", err)
	}

	_ = h.events.Publish(shared.NewUserRegisteredEvent(u.ID, u.Email.String(), u.Name))

	if h.log != nil {
		h.log.Info("account registered",
			logger.UserID(u.ID),
			logger.Email(u.Email.String()),
		)
	}

	return &RegisterResult{User: u.Clone(), CreatedAt: u.CreatedAt}, nil
}
