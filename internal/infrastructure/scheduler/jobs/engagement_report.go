// Package jobs contains implementations of scheduled jobs for SkillConnect.
package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/skillconnect/skillconnect-hub/internal/domain/course"
	"github.com/skillconnect/skillconnect-hub/internal/domain/job"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// ENGAGEMENT REPORT JOB
// ══════════════════════════════════════════════════════════════════════════════

// EngagementReportJob aggregates platform activity and writes a periodic
// digest to the log: account totals, enrollment and completion counts,
// and the size of the job board.
type EngagementReportJob struct {
	users   user.Repository
	catalog *course.Catalog
	board   job.Board
	logger  *slog.Logger
	config  EngagementReportConfig

	lastReport atomic.Value // *EngagementReport
}

// EngagementReportConfig contains configuration for the report job.
type EngagementReportConfig struct {
	// Timeout is the maximum duration for one report run.
	Timeout time.Duration

	// LogPerCourse enables a per-course enrollment breakdown in the log.
	LogPerCourse bool
}

// DefaultEngagementReportConfig returns sensible defaults.
func DefaultEngagementReportConfig() EngagementReportConfig {
	return EngagementReportConfig{
		Timeout:      time.Minute,
		LogPerCourse: false,
	}
}

// EngagementReport contains the aggregated figures from one run.
type EngagementReport struct {
	GeneratedAt       time.Time
	TotalAccounts     int
	TotalEnrollments  int
	TotalCompletions  int
	CoursesInCatalog  int
	OpenJobPostings   int
	EnrolledPerCourse map[string]int
}

// NewEngagementReportJob creates a new engagement report job.
func NewEngagementReportJob(
	users user.Repository,
	catalog *course.Catalog,
	board job.Board,
	logger *slog.Logger,
	config EngagementReportConfig,
) *EngagementReportJob {
	if logger == nil {
		logger = slog.Default()
	}

	return &EngagementReportJob{
		users:   users,
		catalog: catalog,
		board:   board,
		logger:  logger.With("job", "engagement_report"),
		config:  config,
	}
}

// Name returns the job name.
func (j *EngagementReportJob) Name() string {
	return "engagement_report"
}

// Description returns a human-readable description.
func (j *EngagementReportJob) Description() string {
	return "Aggregates enrollment, completion and job board activity into a log digest"
}

// Run executes the job.
func (j *EngagementReportJob) Run(ctx context.Context) error {
	if j.config.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, j.config.Timeout)
		defer cancel()
	}

	accounts, err := j.users.List(ctx)
	if err != nil {
		return fmt.Errorf("list accounts: %w", err)
	}

	postings, err := j.board.List(ctx)
	if err != nil {
		return fmt.Errorf("list job postings: %w", err)
	}

	report := &EngagementReport{
		GeneratedAt:       time.Now(),
		TotalAccounts:     len(accounts),
		CoursesInCatalog:  j.catalog.Len(),
		OpenJobPostings:   len(postings),
		EnrolledPerCourse: make(map[string]int),
	}

	for _, u := range accounts {
		report.TotalEnrollments += len(u.EnrolledCourses)
		report.TotalCompletions += len(u.CompletedCourses)
		for _, courseID := range u.EnrolledCourses {
			report.EnrolledPerCourse[string(courseID)]++
		}
	}

	j.lastReport.Store(report)

	j.logger.Info("engagement digest",
		"accounts", report.TotalAccounts,
		"enrollments", report.TotalEnrollments,
		"completions", report.TotalCompletions,
		"catalog_courses", report.CoursesInCatalog,
		"job_postings", report.OpenJobPostings,
	)

	if j.config.LogPerCourse {
		for courseID, count := range report.EnrolledPerCourse {
			j.logger.Debug("course enrollment",
				"course_id", courseID,
				"enrolled", count,
			)
		}
	}

	return nil
}

// LastReport returns the most recent report, or nil if none has run yet.
func (j *EngagementReportJob) LastReport() *EngagementReport {
	report, _ := j.lastReport.Load().(*EngagementReport)
	return report
}
