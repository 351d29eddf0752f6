// Package command contains write operations (CQRS - Commands).
package command

import (
	"context"
	"errors"
	"fmt"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
)

// currentUser resolves the authenticated user behind the active session.
// Returns shared.ErrNotAuthenticated when no session exists. A dangling
// session pointer (account removed underneath) is treated the same way.
func currentUser(
	ctx context.Context,
	sessions user.SessionStore,
	users user.Repository,
) (*user.User, error) {
	email, err := sessions.Current(ctx)
	if err != nil {
		return nil, err
	}

	u, err := users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, shared.ErrAccountNotFound) {
			return nil, shared.ErrNotAuthenticated
		}
		return nil, fmt.Errorf("session: resolve current user: %w", err)
	}

	return u, nil
}
