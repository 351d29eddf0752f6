package command

import (
	"context"
	"sync"

	"github.com/skillconnect/skillconnect-hub/internal/domain/job"
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
)

// In-memory doubles shared by the handler tests.

type memoryUserRepo struct {
	mu    sync.Mutex
	users []*user.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{}
}

func (r *memoryUserRepo) Create(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return shared.ErrDuplicateAccount
		}
	}
	r.users = append(r.users, u.Clone())
	return nil
}

func (r *memoryUserRepo) GetByID(_ context.Context, id string) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.ID == id {
			return u.Clone(), nil
		}
	}
	return nil, shared.ErrAccountNotFound
}

func (r *memoryUserRepo) GetByEmail(_ context.Context, email shared.EmailAddress) (*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return u.Clone(), nil
		}
	}
	return nil, shared.ErrAccountNotFound
}

func (r *memoryUserRepo) Update(_ context.Context, u *user.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i, existing := range r.users {
		if existing.ID == u.ID {
			r.users[i] = u.Clone()
			return nil
		}
	}
	return shared.ErrAccountNotFound
}

func (r *memoryUserRepo) List(_ context.Context) ([]*user.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*user.User, len(r.users))
	for i, u := range r.users {
		out[i] = u.Clone()
	}
	return out, nil
}

func (r *memoryUserRepo) Delete(_ context.Context, _ string) error {
	return shared.ErrDeleteNotAllowed
}

type memorySessionStore struct {
	mu      sync.Mutex
	current shared.EmailAddress
	active  bool
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{}
}

func (s *memorySessionStore) SetCurrent(_ context.Context, email shared.EmailAddress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = email
	s.active = true
	return nil
}

func (s *memorySessionStore) Current(_ context.Context) (shared.EmailAddress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.active {
		return "", shared.ErrNotAuthenticated
	}
	return s.current, nil
}

func (s *memorySessionStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = ""
	s.active = false
	return nil
}

type memoryBoard struct {
	mu   sync.Mutex
	jobs []*job.Job
}

func newMemoryBoard() *memoryBoard {
	return &memoryBoard{}
}

func (b *memoryBoard) Add(_ context.Context, j *job.Job) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	// newest first
	b.jobs = append([]*job.Job{j}, b.jobs...)
	return nil
}

func (b *memoryBoard) List(_ context.Context) ([]*job.Job, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]*job.Job, len(b.jobs))
	copy(out, b.jobs)
	return out, nil
}

func (b *memoryBoard) GetByID(_ context.Context, id string) (*job.Job, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, j := range b.jobs {
		if j.ID == id {
			return j, nil
		}
	}
	return nil, shared.ErrJobNotFound
}

type recordingPublisher struct {
	mu     sync.Mutex
	events []shared.Event
}

func (p *recordingPublisher) Publish(event shared.Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *recordingPublisher) typesSeen() []shared.EventType {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]shared.EventType, len(p.events))
	for i, e := range p.events {
		out[i] = e.EventType()
	}
	return out
}

type stubAssistant struct {
	reply string
	err   error

	lastProfile AssistantProfile
	lastMessage string
}

func (a *stubAssistant) Reply(
	_ context.Context,
	profile AssistantProfile,
	_ []ChatTurn,
	message string,
) (string, error) {
	a.lastProfile = profile
	a.lastMessage = message
	if a.err != nil {
		return "", a.err
	}
	return a.reply, nil
}
