package command

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
	"github.com/skillconnect/skillconnect-hub/pkg/logger"
)

// ══════════════════════════════════════════════════════════════════════════════
// ASK ASSISTANT COMMAND
// Sends one message to the career assistant on behalf of the current
// user. Assistant failures never surface as errors: the user gets a
// friendly fallback reply instead.
// ══════════════════════════════════════════════════════════════════════════════

// ChatRole identifies the author of a chat turn.
type ChatRole string

const (
	RoleUser      ChatRole = "user"
	RoleAssistant ChatRole = "assistant"
)

// ChatTurn is one message in the conversation history.
type ChatTurn struct {
	Role ChatRole
	Text string
}

// AssistantProfile is the slice of the account the assistant is
// allowed to see.
type AssistantProfile struct {
	Name   string
	Bio    string
	Skills []string
}

// Assistant generates replies for the career chat.
// Implementations live in infrastructure (Gemini).
type Assistant interface {
	// Reply produces the assistant's answer to message, given the
	// user's profile and the conversation so far.
	Reply(ctx context.Context, profile AssistantProfile, history []ChatTurn, message string) (string, error)
}

// FallbackReply is returned when the assistant is unreachable.
const FallbackReply = "I'm having a little trouble connecting right now. Please try again in a moment!"

// AskAssistantCommand contains the user's message.
type AskAssistantCommand struct {
	// Message is the user's chat message.
	Message string

	// History is the conversation so far, oldest first.
	History []ChatTurn
}

// Validate validates the command.
func (c AskAssistantCommand) Validate() error {
	if strings.TrimSpace(c.Message) == "" {
		return errors.New("ask_assistant: message is required")
	}
	return nil
}

// AskAssistantResult contains the assistant's reply.
type AskAssistantResult struct {
	// Reply is the assistant's answer or the fallback text.
	Reply string

	// Degraded is true when the reply is the fallback.
	Degraded bool
}

// AskAssistantHandler handles the AskAssistantCommand.
type AskAssistantHandler struct {
	assistant Assistant
	users     user.Repository
	sessions  user.SessionStore
	log       *logger.Logger
}

// NewAskAssistantHandler creates a new AskAssistantHandler.
func NewAskAssistantHandler(
	assistant Assistant,
	users user.Repository,
	sessions user.SessionStore,
	log *logger.Logger,
) *AskAssistantHandler {
	return &AskAssistantHandler{
		assistant: assistant,
		users:     users,
		sessions:  sessions,
		log:       log,
	}
}

// Handle executes the ask assistant command.
func (h *AskAssistantHandler) Handle(
	ctx context.Context,
	cmd AskAssistantCommand,
) (*AskAssistantResult, error) {
	if err := cmd.Validate(); err != nil {
		return nil, fmt.Errorf("ask_assistant: validation failed: %w", err)
	}

	u, err := currentUser(ctx, h.sessions, h.users)
	if err != nil {
		return nil, err
	}

	profile := AssistantProfile{
		Name:   u.Name,
		Bio:    u.Bio,
		Skills: append([]string{}, u.Skills...),
	}

	reply, err := h.assistant.Reply(ctx, profile, cmd.History, cmd.Message)
	if err != nil {
		// Degrade, don't fail: the chat stays usable without the model
		if h.log != nil {
			h.log.Warn("assistant unavailable",
				logger.UserID(u.ID),
				logger.Err(err),
			)
		}
		return &AskAssistantResult{Reply: FallbackReply, Degraded: true}, nil
	}

	return &AskAssistantResult{Reply: reply}, nil
}
