// Package gemini implements the career assistant on top of the
// Google Gemini API. Calls go through a retrier and a circuit breaker
// so a flaky upstream degrades the chat instead of breaking it.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"google.golang.org/genai"

	"github.com/skillconnect/skillconnect-hub/internal/application/command"
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/pkg/circuitbreaker"
	"github.com/skillconnect/skillconnect-hub/pkg/logger"
	"github.com/skillconnect/skillconnect-hub/pkg/retry"
)

// ══════════════════════════════════════════════════════════════════════════════
// CONFIGURATION
// ══════════════════════════════════════════════════════════════════════════════

// Config holds assistant configuration.
type Config struct {
	// APIKey is the Gemini API key.
	APIKey string

	// Model is the model identifier.
	Model string

	// RequestTimeout bounds a single generation call.
	RequestTimeout time.Duration

	// Temperature controls response randomness.
	Temperature float32

	// TopP controls nucleus sampling.
	TopP float32
}

// DefaultConfig returns the production defaults.
func DefaultConfig() Config {
	return Config{
		Model:          "gemini-2.5-flash",
		RequestTimeout: 30 * time.Second,
		Temperature:    0.7,
		TopP:           0.9,
	}
}

// ══════════════════════════════════════════════════════════════════════════════
// ASSISTANT
// ══════════════════════════════════════════════════════════════════════════════

// Assistant implements command.Assistant using the Gemini API.
type Assistant struct {
	client  *genai.Client
	config  Config
	breaker *circuitbreaker.CircuitBreaker
	retrier *retry.Retrier
	limiter *RateLimiter
	log     *logger.Logger
}

// New creates a new Assistant.
func New(ctx context.Context, cfg Config, log *logger.Logger) (*Assistant, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini: api key is required")
	}
	if cfg.Model == "" {
		cfg.Model = DefaultConfig().Model
	}
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = DefaultConfig().RequestTimeout
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{APIKey: cfg.APIKey})
	if err != nil {
		return nil, fmt.Errorf("gemini: create client: %w", err)
	}

	onStateChange := func(name string, from, to circuitbreaker.State) {
		if log != nil {
			log.Warn("assistant breaker state changed",
				logger.Component(name),
				logger.String("from", from.String()),
				logger.String("to", to.String()),
			)
		}
	}

	return &Assistant{
		client:  client,
		config:  cfg,
		breaker: circuitbreaker.AssistantBreaker(onStateChange),
		retrier: retry.AssistantRetrier(),
		limiter: NewRateLimiter(DefaultRateLimiterConfig()),
		log:     log,
	}, nil
}

// systemInstruction builds the persona prompt from the user's profile.
func systemInstruction(profile command.AssistantProfile) string {
	skills := "not listed yet"
	if len(profile.Skills) > 0 {
		skills = strings.Join(profile.Skills, ", ")
	}

	return fmt.Sprintf(
		"You are SkillBuddy, a friendly and encouraging AI career advisor for the SkillConnect platform. "+
			"The user you are talking to is named %s. Their bio is: %q. Their listed skills are: %s. "+
			"Your goal is to provide helpful, positive career advice, suggest skills to learn, and help with job hunting. "+
			"Keep your responses concise (under 100 words) and use markdown for formatting.",
		profile.Name, profile.Bio, skills,
	)
}

// Reply produces the assistant's answer to message.
// Failures are wrapped in shared.ErrAssistantUnavailable; the caller
// decides how to degrade.
func (a *Assistant) Reply(
	ctx context.Context,
	profile command.AssistantProfile,
	history []command.ChatTurn,
	message string,
) (string, error) {
	contents := make([]*genai.Content, 0, len(history)+1)
	for _, turn := range history {
		role := genai.Role(genai.RoleUser)
		if turn.Role == command.RoleAssistant {
			role = genai.RoleModel
		}
		contents = append(contents, genai.NewContentFromText(turn.Text, role))
	}
	contents = append(contents, genai.NewContentFromText(message, genai.RoleUser))

	genConfig := &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction(profile), genai.RoleUser),
		Temperature:       genai.Ptr[float32](a.config.Temperature),
		TopP:              genai.Ptr[float32](a.config.TopP),
	}

	if err := a.limiter.Allow(ctx); err != nil {
		return "", fmt.Errorf("%w: %v", shared.ErrAssistantUnavailable, err)
	}

	var reply string
	err := a.breaker.Execute(ctx, func(ctx context.Context) error {
		return a.retrier.Do(ctx, func(ctx context.Context) error {
			callCtx, cancel := context.WithTimeout(ctx, a.config.RequestTimeout)
			defer cancel()

			resp, err := a.client.Models.GenerateContent(callCtx, a.config.Model, contents, genConfig)
			if err != nil {
				return retry.Retryable(err)
			}

			text := resp.Text()
			if strings.TrimSpace(text) == "" {
				return retry.Retryable(errors.New("empty response"))
			}

			reply = text
			return nil
		})
	})
	if err != nil {
		if a.log != nil {
			a.log.Warn("assistant call failed",
				logger.Component("gemini"),
				logger.Err(err),
			)
		}
		return "", fmt.Errorf("%w: %v", shared.ErrAssistantUnavailable, err)
	}

	return reply, nil
}
