package eventhandler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillconnect/skillconnect-hub/internal/domain/course"
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
)

// ═══════════════════════════════════════════════════════════════════════════
// ON USER REGISTERED HANDLER
// Обрабатывает событие регистрации нового пользователя.
//
// Ключевые функции:
// 1. Фиксирует появление нового аккаунта в журнале
// 2. Подбирает стартовый курс для нового пользователя
// ═══════════════════════════════════════════════════════════════════════════

// OnUserRegisteredHandler обрабатывает событие регистрации.
type OnUserRegisteredHandler struct {
	users   user.Repository
	catalog *course.Catalog
	logger  *slog.Logger
	config  UserRegisteredConfig
}

// UserRegisteredConfig содержит конфигурацию обработчика.
type UserRegisteredConfig struct {
	// SuggestStarterCourse — подбирать ли стартовый курс новичку.
	SuggestStarterCourse bool
}

// DefaultUserRegisteredConfig возвращает конфигурацию по умолчанию.
func DefaultUserRegisteredConfig() UserRegisteredConfig {
	return UserRegisteredConfig{
		SuggestStarterCourse: true,
	}
}

// NewOnUserRegisteredHandler создаёт новый обработчик события регистрации.
func NewOnUserRegisteredHandler(
	users user.Repository,
	catalog *course.Catalog,
	logger *slog.Logger,
	config UserRegisteredConfig,
) *OnUserRegisteredHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &OnUserRegisteredHandler{
		users:   users,
		catalog: catalog,
		logger:  logger.With("handler", "on_user_registered"),
		config:  config,
	}
}

// Handle обрабатывает событие регистрации.
// Реализует интерфейс shared.EventHandler.
func (h *OnUserRegisteredHandler) Handle(event shared.Event) error {
	ctx := context.Background()

	registeredEvent, ok := event.(shared.UserRegisteredEvent)
	if !ok {
		h.logger.Warn("received non-UserRegisteredEvent",
			"event_type", event.EventType(),
		)
		return nil
	}

	h.logger.Info("new account registered",
		"user_id", registeredEvent.AggregateID(),
		"name", registeredEvent.Name,
	)

	if !h.config.SuggestStarterCourse {
		return nil
	}

	u, err := h.users.GetByID(ctx, registeredEvent.AggregateID())
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	if starter, ok := course.Recommend(u, h.catalog); ok {
		h.logger.Info("starter course suggestion",
			"user_id", u.ID,
			"course_id", starter.ID,
			"course_title", starter.Title,
		)
	}

	return nil
}
