package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/skillconnect/skillconnect-hub/internal/domain/job"
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
)

// JobRepo implements job.Board on PostgreSQL.
// Ordering comes from posted_at, newest first.
type JobRepo struct {
	conn *Connection
}

// NewJobRepo creates a new JobRepo.
func NewJobRepo(conn *Connection) *JobRepo {
	return &JobRepo{conn: conn}
}

const jobColumns = `
	id, title, company, location, description,
	required_skills, contact_info, posted_by, posted_at
`

func scanJob(row interface {
	Scan(dest ...interface{}) error
}) (*job.Job, error) {
	var j job.Job
	var skills []byte

	err := row.Scan(
		&j.ID, &j.Title, &j.Company, &j.Location, &j.Description,
		&skills, &j.ContactInfo, &j.PostedBy, &j.PostedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(skills, &j.RequiredSkills); err != nil {
		return nil, fmt.Errorf("unmarshal required skills: %w", err)
	}

	return &j, nil
}

// Add inserts a posting.
func (r *JobRepo) Add(ctx context.Context, j *job.Job) error {
	skills, err := json.Marshal(j.RequiredSkills)
	if err != nil {
		return fmt.Errorf("postgres: marshal required skills: %w", err)
	}

	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err = r.conn.Exec(ctx, query,
		j.ID, j.Title, j.Company, j.Location, j.Description,
		skills, j.ContactInfo, j.PostedBy, j.PostedAt,
	)
	if err != nil {
		return fmt.Errorf("postgres: add job: %w", err)
	}

	return nil
}

// List returns postings newest first.
func (r *JobRepo) List(ctx context.Context) ([]*job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs ORDER BY posted_at DESC`

	rows, err := r.conn.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("postgres: list jobs: %w", err)
	}
	defer rows.Close()

	var jobs []*job.Job
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, fmt.Errorf("postgres: scan job: %w", err)
		}
		jobs = append(jobs, j)
	}

	return jobs, rows.Err()
}

// GetByID returns one posting.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*job.Job, error) {
	query := `SELECT ` + jobColumns + ` FROM jobs WHERE id = $1`

	j, err := scanJob(r.conn.QueryRow(ctx, query, id))
	if err != nil {
		if IsNoRows(err) {
			return nil, shared.ErrJobNotFound
		}
		return nil, fmt.Errorf("postgres: get job: %w", err)
	}

	return j, nil
}
