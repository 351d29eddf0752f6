// Package course содержит каталог курсов и правила рекомендаций.
// Каталог статичен в рамках запущенного процесса: курсы не создаются
// и не изменяются пользователями.
package course

import (
	"errors"
	"fmt"
	"strings"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// SkillLevel - уровень сложности курса.
type SkillLevel string

const (
	LevelBeginner     SkillLevel = "Beginner"
	LevelIntermediate SkillLevel = "Intermediate"
	LevelAdvanced     SkillLevel = "Advanced"
)

// IsValid проверяет корректность уровня.
func (l SkillLevel) IsValid() bool {
	switch l {
	case LevelBeginner, LevelIntermediate, LevelAdvanced:
		return true
	}
	return false
}

// String возвращает строковое представление уровня.
func (l SkillLevel) String() string {
	return string(l)
}

// CurriculumItem - один пункт учебного плана курса.
type CurriculumItem struct {
	// ID - идентификатор пункта, уникальный в пределах курса.
	ID shared.CurriculumID `json:"id"`

	// Topic - тема пункта.
	Topic string `json:"topic"`

	// Details - краткое описание содержания.
	Details string `json:"details"`
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: COURSE
// ══════════════════════════════════════════════════════════════════════════════

// Course - курс из каталога.
type Course struct {
	// ID - уникальный идентификатор курса.
	ID shared.CourseID `json:"id"`

	// Title - название курса.
	Title string `json:"title"`

	// Description - описание курса.
	Description string `json:"description"`

	// Instructor - имя преподавателя.
	Instructor string `json:"instructor"`

	// Duration - человекочитаемая длительность, например "6 Weeks".
	Duration string `json:"duration"`

	// Level - уровень сложности.
	Level SkillLevel `json:"level"`

	// Tags - навыки-теги, по которым курс сопоставляется с профилем.
	Tags []string `json:"tags"`

	// Curriculum - упорядоченный учебный план.
	Curriculum []CurriculumItem `json:"curriculum"`
}

var (
	// ErrInvalidCourse - курс не прошёл валидацию.
	ErrInvalidCourse = errors.New("invalid course")

	// ErrDuplicateCurriculumItem - повторяющийся идентификатор пункта
	// учебного плана внутри курса.
	ErrDuplicateCurriculumItem = errors.New("duplicate curriculum item id")
)

// NewCourse создаёт курс с валидацией полей и учебного плана.
func NewCourse(course Course) (*Course, error) {
	if !course.ID.IsValid() {
		return nil, fmt.Errorf("%w: bad id %q", ErrInvalidCourse, course.ID)
	}
	if strings.TrimSpace(course.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidCourse)
	}
	if !course.Level.IsValid() {
		return nil, fmt.Errorf("%w: bad level %q", ErrInvalidCourse, course.Level)
	}

	seen := make(map[shared.CurriculumID]struct{}, len(course.Curriculum))
	for _, item := range course.Curriculum {
		if !item.ID.IsValid() {
			return nil, fmt.Errorf("%w: bad curriculum id %q", ErrInvalidCourse, item.ID)
		}
		if _, ok := seen[item.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateCurriculumItem, item.ID)
		}
		seen[item.ID] = struct{}{}
	}

	return &course, nil
}

// CurriculumIDs возвращает идентификаторы пунктов учебного плана
// в порядке следования.
func (c *Course) CurriculumIDs() []shared.CurriculumID {
	ids := make([]shared.CurriculumID, len(c.Curriculum))
	for i, item := range c.Curriculum {
		ids[i] = item.ID
	}
	return ids
}

// NextIncompleteItem возвращает первый по порядку учебного плана пункт,
// отсутствующий в прогрессе. Второе значение false, если таких нет.
func (c *Course) NextIncompleteItem(progress []shared.CurriculumID) (CurriculumItem, bool) {
	done := make(map[shared.CurriculumID]struct{}, len(progress))
	for _, id := range progress {
		done[id] = struct{}{}
	}

	for _, item := range c.Curriculum {
		if _, ok := done[item.ID]; !ok {
			return item, true
		}
	}

	return CurriculumItem{}, false
}

// String возвращает строковое представление курса для логирования.
func (c *Course) String() string {
	return fmt.Sprintf("Course{ID: %s, Title: %s, Lessons: %d}", c.ID, c.Title, len(c.Curriculum))
}
