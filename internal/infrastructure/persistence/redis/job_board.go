package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/skillconnect/skillconnect-hub/internal/domain/job"
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// JOB BOARD
// Postings live under one key as a JSON array ordered newest first.
// New postings are prepended; published postings never change.
// ══════════════════════════════════════════════════════════════════════════════

// jobDocument is the stored form of a posting.
type jobDocument struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Company        string    `json:"company"`
	Location       string    `json:"location"`
	Description    string    `json:"description"`
	RequiredSkills []string  `json:"requiredSkills"`
	ContactInfo    string    `json:"contactInfo"`
	PostedBy       string    `json:"postedBy"`
	PostedAt       time.Time `json:"postedAt"`
}

func toJobDocument(j *job.Job) jobDocument {
	return jobDocument(*j)
}

func fromJobDocument(doc jobDocument) *job.Job {
	j := job.Job(doc)
	return &j
}

// JobBoard implements job.Board on Redis.
type JobBoard struct {
	store *Store
}

// NewJobBoard creates a new JobBoard.
func NewJobBoard(store *Store) *JobBoard {
	return &JobBoard{store: store}
}

func (b *JobBoard) load(ctx context.Context) ([]jobDocument, error) {
	var docs []jobDocument
	if err := b.store.GetJSON(ctx, KeyJobs, &docs); err != nil {
		if errors.Is(err, ErrKeyMiss) {
			return nil, nil
		}
		return nil, fmt.Errorf("job board: load postings: %w", err)
	}
	return docs, nil
}

// Add prepends a posting to the board.
func (b *JobBoard) Add(ctx context.Context, j *job.Job) error {
	docs, err := b.load(ctx)
	if err != nil {
		return err
	}

	docs = append([]jobDocument{toJobDocument(j)}, docs...)
	if err := b.store.SetJSON(ctx, KeyJobs, docs, 0); err != nil {
		return fmt.Errorf("job board: save postings: %w", err)
	}
	return nil
}

// List returns postings newest first.
func (b *JobBoard) List(ctx context.Context) ([]*job.Job, error) {
	docs, err := b.load(ctx)
	if err != nil {
		return nil, err
	}

	jobs := make([]*job.Job, len(docs))
	for i, doc := range docs {
		jobs[i] = fromJobDocument(doc)
	}
	return jobs, nil
}

// GetByID returns one posting.
func (b *JobBoard) GetByID(ctx context.Context, id string) (*job.Job, error) {
	docs, err := b.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, doc := range docs {
		if doc.ID == id {
			return fromJobDocument(doc), nil
		}
	}
	return nil, shared.ErrJobNotFound
}
