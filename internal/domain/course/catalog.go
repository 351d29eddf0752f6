package course

import (
	"fmt"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
)

// Catalog - упорядоченный неизменяемый каталог курсов.
// Порядок курсов определяет порядок рекомендаций и вывода.
type Catalog struct {
	courses []*Course
	byID    map[shared.CourseID]*Course
}

// NewCatalog собирает каталог из списка курсов с проверкой
// уникальности идентификаторов.
func NewCatalog(courses []*Course) (*Catalog, error) {
	byID := make(map[shared.CourseID]*Course, len(courses))
	ordered := make([]*Course, 0, len(courses))

	for _, c := range courses {
		if _, ok := byID[c.ID]; ok {
			return nil, fmt.Errorf("duplicate course id %q", c.ID)
		}
		byID[c.ID] = c
		ordered = append(ordered, c)
	}

	return &Catalog{courses: ordered, byID: byID}, nil
}

// Get возвращает курс по идентификатору.
// Возвращает shared.ErrCourseNotFound, если курса нет.
func (c *Catalog) Get(id shared.CourseID) (*Course, error) {
	course, ok := c.byID[id]
	if !ok {
		return nil, shared.ErrCourseNotFound
	}
	return course, nil
}

// All возвращает курсы в порядке каталога.
// Возвращается копия среза; сами курсы не копируются.
func (c *Catalog) All() []*Course {
	out := make([]*Course, len(c.courses))
	copy(out, c.courses)
	return out
}

// Len возвращает количество курсов в каталоге.
func (c *Catalog) Len() int {
	return len(c.courses)
}
