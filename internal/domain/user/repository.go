package user

import (
	"context"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
)

// Repository определяет контракт хранилища аккаунтов.
// Реализации живут в infrastructure-слое (Postgres, Redis).
type Repository interface {
	// Create сохраняет нового пользователя.
	// Возвращает shared.ErrDuplicateAccount при конфликте email.
	Create(ctx context.Context, u *User) error

	// GetByID возвращает пользователя по внутреннему идентификатору.
	// Возвращает shared.ErrAccountNotFound, если пользователь не найден.
	GetByID(ctx context.Context, id string) (*User, error)

	// GetByEmail возвращает пользователя по email (регистрозависимо).
	// Возвращает shared.ErrAccountNotFound, если пользователь не найден.
	GetByEmail(ctx context.Context, email shared.EmailAddress) (*User, error)

	// Update сохраняет изменённого пользователя целиком.
	// При конкурентных обновлениях побеждает последняя запись.
	Update(ctx context.Context, u *User) error

	// List возвращает все аккаунты в порядке создания.
	List(ctx context.Context) ([]*User, error)

	// Delete не поддерживается доменом и всегда возвращает
	// shared.ErrDeleteNotAllowed. Метод оставлен в контракте,
	// чтобы запрет был явным на уровне интерфейса.
	Delete(ctx context.Context, id string) error
}

// SessionStore хранит указатель текущей сессии: email вошедшего
// пользователя. Одновременно активна максимум одна сессия.
type SessionStore interface {
	// SetCurrent сохраняет email текущего пользователя.
	SetCurrent(ctx context.Context, email shared.EmailAddress) error

	// Current возвращает email текущего пользователя.
	// Возвращает shared.ErrNotAuthenticated, если сессии нет.
	Current(ctx context.Context) (shared.EmailAddress, error)

	// Clear завершает сессию. Идемпотентна: отсутствие сессии
	// ошибкой не считается.
	Clear(ctx context.Context) error
}
