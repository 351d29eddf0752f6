// Package eventhandler содержит обработчики доменных событий.
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
// ON COURSE COMPLETED HANDLER
// Обрабатывает событие полного прохождения курса.
//
// Ключевые функции:
// 1. Фиксирует завершение курса в журнале
// 2. Подбирает следующий курс по навыкам пользователя
// ═══════════════════════════════════════════════════════════════════════════

// OnCourseCompletedHandler обрабатывает событие завершения курса.
type OnCourseCompletedHandler struct {
	users   user.Repository
	catalog *course.Catalog
	logger  *slog.Logger
	config  CourseCompletedConfig
}

// CourseCompletedConfig содержит конфигурацию обработчика.
type CourseCompletedConfig struct {
	// RecommendNext — подбирать ли следующий курс после завершения.
	RecommendNext bool
}

// DefaultCourseCompletedConfig возвращает конфигурацию по умолчанию.
func DefaultCourseCompletedConfig() CourseCompletedConfig {
	return CourseCompletedConfig{
		RecommendNext: true,
	}
}

// NewOnCourseCompletedHandler создаёт новый обработчик события завершения курса.
func NewOnCourseCompletedHandler(
	users user.Repository,
	catalog *course.Catalog,
	logger *slog.Logger,
	config CourseCompletedConfig,
) *OnCourseCompletedHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &OnCourseCompletedHandler{
		users:   users,
		catalog: catalog,
		logger:  logger.With("handler", "on_course_completed"),
		config:  config,
	}
}

// Handle обрабатывает событие завершения курса.
// Реализует интерфейс shared.EventHandler.
func (h *OnCourseCompletedHandler) Handle(event shared.Event) error {
	ctx := context.Background()

	completedEvent, ok := event.(shared.CourseCompletedEvent)
	if !ok {
		h.logger.Warn("received non-CourseCompletedEvent",
			"event_type", event.EventType(),
		)
		return nil
	}

	h.logger.Info("processing course completed event",
		"user_id", completedEvent.AggregateID(),
		"course_id", completedEvent.CourseID,
	)

	u, err := h.users.GetByID(ctx, completedEvent.AggregateID())
	if err != nil {
		return fmt.Errorf("get user: %w", err)
	}

	completed, err := h.catalog.Get(shared.CourseID(completedEvent.CourseID))
	if err != nil {
		h.logger.Warn("completed course missing from catalog",
			"course_id", completedEvent.CourseID,
		)
		return nil
	}

	h.logger.Info("course completed",
		"user_id", u.ID,
		"course_title", completed.Title,
		"completed_total", len(u.CompletedCourses),
	)

	if h.config.RecommendNext {
		if next, ok := course.Recommend(u, h.catalog); ok {
			h.logger.Info("next course suggestion",
				"user_id", u.ID,
				"course_id", next.ID,
				"course_title", next.Title,
			)
		}
	}

	return nil
}
