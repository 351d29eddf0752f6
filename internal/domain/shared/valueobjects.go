package shared

import (
	"regexp"
	"strings"
)

// ═══════════════════════════════════════════════════════════════════════════
// IDENTIFIERS
// Course and curriculum identifiers are shared between the user domain
// (progress tracking) and the course domain (catalog), so they live here.
// ═══════════════════════════════════════════════════════════════════════════

// CourseID identifies a course in the catalog.
// Seed data uses readable IDs like "course-1"; new entities use UUIDs.
type CourseID string

// IsValid checks that the ID is non-empty and free of whitespace.
func (c CourseID) IsValid() bool {
	s := string(c)
	return len(s) > 0 && len(s) <= 64 && !strings.ContainsAny(s, " \t\n\r")
}

// String returns the string representation.
func (c CourseID) String() string {
	return string(c)
}

// CurriculumID identifies one lesson unit within a course.
// The ID is stable and scoped to its course (e.g. "c1-2").
type CurriculumID string

// IsValid checks that the ID is non-empty and free of whitespace.
func (c CurriculumID) IsValid() bool {
	s := string(c)
	return len(s) > 0 && len(s) <= 64 && !strings.ContainsAny(s, " \t\n\r")
}

// String returns the string representation.
func (c CurriculumID) String() string {
	return string(c)
}

// ═══════════════════════════════════════════════════════════════════════════
// EMAIL
// ═══════════════════════════════════════════════════════════════════════════

// EmailAddress is a user's email. Matching is case-sensitive: two
// addresses differing only in case are distinct accounts.
type EmailAddress string

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// IsValid checks the address against a permissive format check.
func (e EmailAddress) IsValid() bool {
	return emailRegex.MatchString(string(e))
}

// String returns the string representation.
func (e EmailAddress) String() string {
	return string(e)
}

// NewEmailAddress validates and constructs an EmailAddress.
func NewEmailAddress(value string) (EmailAddress, error) {
	e := EmailAddress(strings.TrimSpace(value))
	if !e.IsValid() {
		return "", NewDomainError("shared", "NewEmailAddress", ErrInvalidFormat, "invalid email address")
	}
	return e, nil
}

// ═══════════════════════════════════════════════════════════════════════════
// SKILL TAG
// Skill tags connect user profiles, course tags, and job requirements.
// ═══════════════════════════════════════════════════════════════════════════

// SkillTag is a free-form skill label ("React", "UI/UX Design").
// Tags compare by exact string match.
type SkillTag string

// IsValid checks that the tag is non-empty after trimming.
func (s SkillTag) IsValid() bool {
	t := strings.TrimSpace(string(s))
	return len(t) > 0 && len(t) <= 60
}

// String returns the string representation.
func (s SkillTag) String() string {
	return string(s)
}

// TagsIntersect reports whether any tag in a appears in b.
func TagsIntersect(a, b []string) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	set := make(map[string]struct{}, len(b))
	for _, t := range b {
		set[t] = struct{}{}
	}
	for _, t := range a {
		if _, ok := set[t]; ok {
			return true
		}
	}
	return false
}
