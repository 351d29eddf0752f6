package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// ACCOUNT REPOSITORY
// Scalar fields in columns, list-shaped profile and progress data in
// JSONB. Email uniqueness is enforced by the table constraint.
// ══════════════════════════════════════════════════════════════════════════════

// AccountRepo implements user.Repository on PostgreSQL.
type AccountRepo struct {
	conn *Connection
}

// NewAccountRepo creates a new AccountRepo.
func NewAccountRepo(conn *Connection) *AccountRepo {
	return &AccountRepo{conn: conn}
}

const accountColumns = `
	id, name, email, password_hash, bio,
	skills, education, experience,
	enrolled_courses, completed_courses, course_progress,
	created_at, updated_at
`

type accountRow struct {
	skills     []byte
	education  []byte
	experience []byte
	enrolled   []byte
	completed  []byte
	progress   []byte
}

func marshalAccount(u *user.User) (accountRow, error) {
	var row accountRow
	var err error

	if row.skills, err = json.Marshal(u.Skills); err != nil {
		return row, fmt.Errorf("marshal skills: %w", err)
	}
	if row.education, err = json.Marshal(u.Education); err != nil {
		return row, fmt.Errorf("marshal education: %w", err)
	}
	if row.experience, err = json.Marshal(u.Experience); err != nil {
		return row, fmt.Errorf("marshal experience: %w", err)
	}
	if row.enrolled, err = json.Marshal(u.EnrolledCourses); err != nil {
		return row, fmt.Errorf("marshal enrolled courses: %w", err)
	}
	if row.completed, err = json.Marshal(u.CompletedCourses); err != nil {
		return row, fmt.Errorf("marshal completed courses: %w", err)
	}
	if row.progress, err = json.Marshal(u.CourseProgress); err != nil {
		return row, fmt.Errorf("marshal course progress: %w", err)
	}

	return row, nil
}

func scanAccount(row interface {
	Scan(dest ...interface{}) error
}) (*user.User, error) {
	var u user.User
	var email string
	var data accountRow

	err := row.Scan(
		&u.ID, &u.Name, &email, &u.PasswordHash, &u.Bio,
		&data.skills, &data.education, &data.experience,
		&data.enrolled, &data.completed, &data.progress,
		&u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	parsedEmail, err := shared.NewEmailAddress(email)
	if err != nil {
		return nil, fmt.Errorf("postgres: stored email invalid: %w", err)
	}
	u.Email = parsedEmail

	if err := json.Unmarshal(data.skills, &u.Skills); err != nil {
		return nil, fmt.Errorf("unmarshal skills: %w", err)
	}
	if err := json.Unmarshal(data.education, &u.Education); err != nil {
		return nil, fmt.Errorf("unmarshal education: %w", err)
	}
	if err := json.Unmarshal(data.experience, &u.Experience); err != nil {
		return nil, fmt.Errorf("unmarshal experience: %w", err)
	}
	if err := json.Unmarshal(data.enrolled, &u.EnrolledCourses); err != nil {
		return nil, fmt.Errorf("unmarshal enrolled courses: %w", err)
	}
	if err := json.Unmarshal(data.completed, &u.CompletedCourses); err != nil {
		return nil, fmt.Errorf("unmarshal completed courses: %w", err)
	}
	if err := json.Unmarshal(data.progress, &u.CourseProgress); err != nil {
		return nil, fmt.Errorf("unmarshal course progress: %w", err)
	}

	return &u, nil
}

// Create inserts a new account. Duplicate email maps to
// shared.ErrDuplicateAccount.
func (r *AccountRepo) Create(ctx context.Context, u *user.User) error {
	data, err := marshalAccount(u)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}

	query := `
		INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err = r.conn.Exec(ctx, query,
		u.ID, u.Name, u.Email.String(), u.PasswordHash, u.Bio,
		data.skills, data.education, data.experience,
		data.enrolled, data.completed, data.progress,
		u.CreatedAt, u.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return shared.ErrDuplicateAccount
		}
		return fmt.Errorf("postgres: create account: %w", err)
	}

	return nil
}

// GetByID returns the account with the given internal ID.
func (r *AccountRepo) GetByID(ctx context.Context, id string) (*user.User, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE id = $1`

	u, err := scanAccount(r.conn.QueryRow(ctx, query, id))
	if err != nil {
		if IsNoRows(err) {
			return nil, shared.ErrAccountNotFound
		}
		return nil, fmt.Errorf("postgres: get account by id: %w", err)
	}

	return u, nil
}

// GetByEmail returns the account for the email (case-sensitive).
func (r *AccountRepo) GetByEmail(ctx context.Context, email shared.EmailAddress) (*user.User, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE email = $1`

	u, err := scanAccount(r.conn.QueryRow(ctx, query, email.String()))
	if err != nil {
		if IsNoRows(err) {
			return nil, shared.ErrAccountNotFound
		}
		return nil, fmt.Errorf("postgres: get account by email: %w", err)
	}

	return u, nil
}

// Update replaces the stored account wholesale. Last write wins.
func (r *AccountRepo) Update(ctx context.Context, u *user.User) error {
	data, err := marshalAccount(u)
	if err != nil {
		return fmt.Errorf("postgres: %w", err)
	}

	query := `
		UPDATE accounts SET
			name = $2, bio = $3,
			skills = $4, education = $5, experience = $6,
			enrolled_courses = $7, completed_courses = $8, course_progress = $9,
			updated_at = $10
		WHERE id = $1
	`

	tag, err := r.conn.Exec(ctx, query,
		u.ID, u.Name, u.Bio,
		data.skills, data.education, data.experience,
		data.enrolled, data.completed, data.progress,
		u.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return shared.ErrAccountNotFound
	}

	return nil
}

// List returns all accounts in creation order.
func (r *AccountRepo) List(ctx context.Context) ([]*user.User, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY created_at`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: list accounts: %w", err)
	}
	defer rows.Close()

	var users []*user.User
	for rows.Next() {
		u, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan account: %w", err)
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

// Delete is not supported for accounts.
func (r *AccountRepo) Delete(ctx context.Context, _ string) error {
	return shared.ErrDeleteNotAllowed
}

// ══════════════════════════════════════════════════════════════════════════════
// SESSION POINTER
// One row in session_pointer holds the email of the logged-in user.
// ══════════════════════════════════════════════════════════════════════════════

// SessionRepo implements user.SessionStore on PostgreSQL.
type SessionRepo struct {
	conn *Connection
}

// NewSessionRepo creates a new SessionRepo.
func NewSessionRepo(conn *Connection) *SessionRepo {
	return &SessionRepo{conn: conn}
}

// SetCurrent stores the email of the logged-in user.
func (r *SessionRepo) SetCurrent(ctx context.Context, email shared.EmailAddress) error {
	query := `
		INSERT INTO session_pointer (slot, email) VALUES ('current', $1)
		ON CONFLICT (slot) DO UPDATE SET email = EXCLUDED.email
	`

	if _, err := r.conn.Exec(ctx, query, email.String()); err != nil {
		return fmt.Errorf("postgres: set session: %w", err)
	}
	return nil
}

// Current returns the email of the logged-in user.
func (r *SessionRepo) Current(ctx context.Context) (shared.EmailAddress, error) {
	var raw string
	err := r.conn.QueryRow(ctx, `SELECT email FROM session_pointer WHERE slot = 'current'`).Scan(&raw)
	if err != nil {
		if IsNoRows(err) {
			return "", shared.ErrNotAuthenticated
		}
		return "", fmt.Errorf("postgres: get session: %w", err)
	}

	email, err := shared.NewEmailAddress(raw)
	if err != nil {
		return "", shared.ErrNotAuthenticated
	}
	return email, nil
}

// Clear removes the session pointer. Idempotent.
func (r *SessionRepo) Clear(ctx context.Context) error {
	if _, err := r.conn.Exec(ctx, `DELETE FROM session_pointer WHERE slot = 'current'`); err != nil {
		return fmt.Errorf("postgres: clear session: %w", err)
	}
	return nil
}
