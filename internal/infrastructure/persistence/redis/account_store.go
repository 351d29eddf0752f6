package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// ACCOUNT STORE
// All accounts live under one key as a JSON array; every write
// replaces the whole array. Fine for the scale this system targets,
// and it keeps the stored shape inspectable with a single GET.
// ══════════════════════════════════════════════════════════════════════════════

// accountDocument is the stored form of a user account.
type accountDocument struct {
	ID               string                `json:"id"`
	Name             string                `json:"name"`
	Email            string                `json:"email"`
	PasswordHash     string                `json:"passwordHash"`
	Bio              string                `json:"bio"`
	Skills           []string              `json:"skills"`
	Education        []user.EducationRecord  `json:"education"`
	Experience       []user.ExperienceRecord `json:"experience"`
	EnrolledCourses  []string              `json:"enrolledCourses"`
	CompletedCourses []string              `json:"completedCourses"`
	CourseProgress   map[string][]string   `json:"courseProgress"`
	CreatedAt        time.Time             `json:"createdAt"`
	UpdatedAt        time.Time             `json:"updatedAt"`
}

func toDocument(u *user.User) accountDocument {
	doc := accountDocument{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email.String(),
		PasswordHash:     u.PasswordHash,
		Bio:              u.Bio,
		Skills:           u.Skills,
		Education:        u.Education,
		Experience:       u.Experience,
		EnrolledCourses:  make([]string, len(u.EnrolledCourses)),
		CompletedCourses: make([]string, len(u.CompletedCourses)),
		CourseProgress:   make(map[string][]string, len(u.CourseProgress)),
		CreatedAt:        u.CreatedAt,
		UpdatedAt:        u.UpdatedAt,
	}
	for i, id := range u.EnrolledCourses {
		doc.EnrolledCourses[i] = id.String()
	}
	for i, id := range u.CompletedCourses {
		doc.CompletedCourses[i] = id.String()
	}
	for courseID, progress := range u.CourseProgress {
		items := make([]string, len(progress))
		for i, id := range progress {
			items[i] = id.String()
		}
		doc.CourseProgress[courseID.String()] = items
	}
	return doc
}

func fromDocument(doc accountDocument) (*user.User, error) {
	email, err := shared.NewEmailAddress(doc.Email)
	if err != nil {
		return nil, fmt.Errorf("account store: stored email invalid: %w", err)
	}

	u := &user.User{
		ID:               doc.ID,
		Name:             doc.Name,
		Email:            email,
		PasswordHash:     doc.PasswordHash,
		Bio:              doc.Bio,
		Skills:           doc.Skills,
		Education:        doc.Education,
		Experience:       doc.Experience,
		EnrolledCourses:  make([]shared.CourseID, len(doc.EnrolledCourses)),
		CompletedCourses: make([]shared.CourseID, len(doc.CompletedCourses)),
		CourseProgress:   make(map[shared.CourseID][]shared.CurriculumID, len(doc.CourseProgress)),
		CreatedAt:        doc.CreatedAt,
		UpdatedAt:        doc.UpdatedAt,
	}
	for i, id := range doc.EnrolledCourses {
		u.EnrolledCourses[i] = shared.CourseID(id)
	}
	for i, id := range doc.CompletedCourses {
		u.CompletedCourses[i] = shared.CourseID(id)
	}
	for courseID, progress := range doc.CourseProgress {
		items := make([]shared.CurriculumID, len(progress))
		for i, id := range progress {
			items[i] = shared.CurriculumID(id)
		}
		u.CourseProgress[shared.CourseID(courseID)] = items
	}
	return u, nil
}

// AccountStore implements user.Repository on Redis.
type AccountStore struct {
	store *Store
}

// NewAccountStore creates a new AccountStore.
func NewAccountStore(store *Store) *AccountStore {
	return &AccountStore{store: store}
}

func (s *AccountStore) load(ctx context.Context) ([]accountDocument, error) {
	var docs []accountDocument
	if err := s.store.GetJSON(ctx, KeyAccounts, &docs); err != nil {
		if errors.Is(err, ErrKeyMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("account store: load accounts: %w", err)
	}
	return docs, nil
}

func (s *AccountStore) save(ctx context.Context, docs []accountDocument) error {
	if err := s.store.SetJSON(ctx, KeyAccounts, docs, 0); err != nil {
		return fmt.Errorf("account store: save accounts: %w", err)
	}
	return nil
}

// Create appends a new account. Duplicate email is rejected.
func (s *AccountStore) Create(ctx context.Context, u *user.User) error {
	docs, err := s.load(ctx)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		if doc.Email == u.Email.String() {
			return shared.ErrDuplicateAccount
		}
	}

	docs = append(docs, toDocument(u))
	return s.save(ctx, docs)
}

// GetByID returns the account with the given internal ID.
func (s *AccountStore) GetByID(ctx context.Context, id string) (*user.User, error) {
	docs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if doc.ID == id {
			return fromDocument(doc)
		}
	}
	return nil, shared.ErrAccountNotFound
}

// GetByEmail returns the account for the email (case-sensitive).
func (s *AccountStore) GetByEmail(ctx context.Context, email shared.EmailAddress) (*user.User, error) {
	docs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if doc.Email == email.String() {
			return fromDocument(doc)
		}
	}
	return nil, shared.ErrAccountNotFound
}

// Update replaces the stored account wholesale. Last write wins.
func (s *AccountStore) Update(ctx context.Context, u *user.User) error {
	docs, err := s.load(ctx)
	if err != nil {
		return err
	}

	for i, doc := range docs {
		if doc.ID == u.ID {
			docs[i] = toDocument(u)
			return s.save(ctx, docs)
		}
	}
	return shared.ErrAccountNotFound
}

// List returns all accounts in creation order.
func (s *AccountStore) List(ctx context.Context) ([]*user.User, error) {
	docs, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	users := make([]*user.User, 0, len(docs))
	for _, doc := range docs {
		u, err := fromDocument(doc)
		if err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, nil
}

// Delete is not supported for accounts.
func (s *AccountStore) Delete(ctx context.Context, _ string) error {
	return shared.ErrDeleteNotAllowed
}

// ══════════════════════════════════════════════════════════════════════════════
// SESSION STORE
// The session pointer is the email of the logged-in user under a
// dedicated key. No TTL: the session lives until logout.
// ══════════════════════════════════════════════════════════════════════════════

// SessionStore implements user.SessionStore on Redis.
type SessionStore struct {
	store *Store
}

// NewSessionStore creates a new SessionStore.
func NewSessionStore(store *Store) *SessionStore {
	return &SessionStore{store: store}
}

// SetCurrent stores the email of the logged-in user.
func (s *SessionStore) SetCurrent(ctx context.Context, email shared.EmailAddress) error {
	if err := s.store.SetString(ctx, KeySession, email.String(), 0); err != nil {
		return fmt.Errorf("session store: set current: %w", err)
	}
	return nil
}

// Current returns the email of the logged-in user.
func (s *SessionStore) Current(ctx context.Context) (shared.EmailAddress, error) {
	raw, err := s.store.GetString(ctx, KeySession)
	if err != nil {
		if errors.Is(err, ErrKeyMiss) {
			return "", shared.ErrNotAuthenticated
		}
		return "", fmt.Errorf("session store: get current: %w", err)
	}

	email, err := shared.NewEmailAddress(raw)
	if err != nil {
		return "", shared.ErrNotAuthenticated
	}
	return email, nil
}

// Clear removes the session pointer. Idempotent.
func (s *SessionStore) Clear(ctx context.Context) error {
	if err := s.store.Delete(ctx, KeySession); err != nil {
		return fmt.Errorf("session store: clear: %w", err)
	}
	return nil
}
