package job

import "context"

// Board определяет контракт доски вакансий.
// Объявления не редактируются и не удаляются после публикации.
type Board interface {
	// Add публикует объявление.
	Add(ctx context.Context, j *Job) error

	// List возвращает объявления, свежие первыми.
	List(ctx context.Context) ([]*Job, error)

	// GetByID возвращает объявление по идентификатору.
	// Возвращает shared.ErrJobNotFound, если объявления нет.
	GetByID(ctx context.Context, id string) (*Job, error)
}
