package eventhandler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/skillconnect/skillconnect-hub/internal/domain/job"
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
)

// ═══════════════════════════════════════════════════════════════════════════
// ON JOB POSTED HANDLER
// Обрабатывает событие публикации вакансии.
//
// Ключевые функции:
// 1. Фиксирует публикацию в журнале
// 2. Ищет пользователей, чьи навыки пересекаются с требованиями вакансии
// ═══════════════════════════════════════════════════════════════════════════

// OnJobPostedHandler обрабатывает событие публикации вакансии.
type OnJobPostedHandler struct {
	board  job.Board
	users  user.Repository
	logger *slog.Logger
	config JobPostedConfig
}

// JobPostedConfig содержит конфигурацию обработчика.
type JobPostedConfig struct {
	// MatchCandidates — искать ли кандидатов по навыкам.
	MatchCandidates bool

	// MaxMatchesLogged — максимум кандидатов в журнале.
	MaxMatchesLogged int
}

// DefaultJobPostedConfig возвращает конфигурацию по умолчанию.
func DefaultJobPostedConfig() JobPostedConfig {
	return JobPostedConfig{
		MatchCandidates:  true,
		MaxMatchesLogged: 10,
	}
}

// NewOnJobPostedHandler создаёт новый обработчик события публикации вакансии.
func NewOnJobPostedHandler(
	board job.Board,
	users user.Repository,
	logger *slog.Logger,
	config JobPostedConfig,
) *OnJobPostedHandler {
	if logger == nil {
		logger = slog.Default()
	}

	return &OnJobPostedHandler{
		board:  board,
		users:  users,
		logger: logger.With("handler", "on_job_posted"),
		config: config,
	}
}

// Handle обрабатывает событие публикации вакансии.
// Реализует интерфейс shared.EventHandler.
func (h *OnJobPostedHandler) Handle(event shared.Event) error {
	ctx := context.Background()

	postedEvent, ok := event.(shared.JobPostedEvent)
	if !ok {
		h.logger.Warn("received non-JobPostedEvent",
			"event_type", event.EventType(),
		)
		return nil
	}

	h.logger.Info("job posted",
		"job_id", postedEvent.AggregateID(),
		"title", postedEvent.Title,
		"company", postedEvent.Company,
	)

	if !h.config.MatchCandidates {
		return nil
	}

	posted, err := h.board.GetByID(ctx, postedEvent.AggregateID())
	if err != nil {
		return fmt.Errorf("get job: %w", err)
	}
	if len(posted.RequiredSkills) == 0 {
		return nil
	}

	candidates, err := h.matchCandidates(ctx, posted)
	if err != nil {
		return err
	}

	logged := len(candidates)
	if h.config.MaxMatchesLogged > 0 && logged > h.config.MaxMatchesLogged {
		logged = h.config.MaxMatchesLogged
	}

	h.logger.Info("candidate skill matches",
		"job_id", posted.ID,
		"matched_total", len(candidates),
	)
	for _, c := range candidates[:logged] {
		h.logger.Debug("matched candidate",
			"job_id", posted.ID,
			"user_id", c.ID,
		)
	}

	return nil
}

// matchCandidates возвращает пользователей с пересечением навыков,
// исключая автора вакансии.
func (h *OnJobPostedHandler) matchCandidates(ctx context.Context, posted *job.Job) ([]*user.User, error) {
	all, err := h.users.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}

	matched := make([]*user.User, 0)
	for _, u := range all {
		if u.ID == posted.PostedBy {
			continue
		}
		if shared.TagsIntersect(posted.RequiredSkills, u.Skills) {
			matched = append(matched, u)
		}
	}

	return matched, nil
}
