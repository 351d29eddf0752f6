package postgres

// GetMigrations returns all embedded migrations.
func GetMigrations() []Migration {
	return []Migration{
		{
			Version: 1,
			Name:    "create_accounts",
			UpSQL:   migration001Up,
			DownSQL: migration001Down,
		},
		{
			Version: 2,
			Name:    "create_jobs",
			UpSQL:   migration002Up,
			DownSQL: migration002Down,
		},
		{
			Version: 3,
			Name:    "create_session",
			UpSQL:   migration003Up,
			DownSQL: migration003Down,
		},
	}
}

const migration001Up = `
CREATE TABLE IF NOT EXISTS accounts (
	id                TEXT PRIMARY KEY,
	name              TEXT NOT NULL,
	email             TEXT NOT NULL UNIQUE,
	password_hash     TEXT NOT NULL,
	bio               TEXT NOT NULL DEFAULT '',
	skills            JSONB NOT NULL DEFAULT '[]',
	education         JSONB NOT NULL DEFAULT '[]',
	experience        JSONB NOT NULL DEFAULT '[]',
	enrolled_courses  JSONB NOT NULL DEFAULT '[]',
	completed_courses JSONB NOT NULL DEFAULT '[]',
	course_progress   JSONB NOT NULL DEFAULT '{}',
	created_at        TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW(),
	updated_at        TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_accounts_email ON accounts (email);
`

const migration001Down = `
DROP TABLE IF EXISTS accounts;
`

const migration002Up = `
CREATE TABLE IF NOT EXISTS jobs (
	id              TEXT PRIMARY KEY,
	title           TEXT NOT NULL,
	company         TEXT NOT NULL,
	location        TEXT NOT NULL DEFAULT '',
	description     TEXT NOT NULL DEFAULT '',
	required_skills JSONB NOT NULL DEFAULT '[]',
	contact_info    TEXT NOT NULL DEFAULT '',
	posted_by       TEXT NOT NULL DEFAULT '',
	posted_at       TIMESTAMP WITH TIME ZONE NOT NULL DEFAULT NOW()
);

CREATE INDEX IF NOT EXISTS idx_jobs_posted_at ON jobs (posted_at DESC);
`

const migration002Down = `
DROP TABLE IF EXISTS jobs;
`

// Single-row table: the session pointer for the one active session.
const migration003Up = `
CREATE TABLE IF NOT EXISTS session_pointer (
	slot  TEXT PRIMARY KEY DEFAULT 'current',
	email TEXT NOT NULL,
	CONSTRAINT single_slot CHECK (slot = 'current')
);
`

const migration003Down = `
DROP TABLE IF EXISTS session_pointer;
`
