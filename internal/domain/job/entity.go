// Package job содержит доску вакансий: объявления и контракт хранилища.
package job

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Job - объявление о вакансии на доске.
type Job struct {
	// ID - уникальный идентификатор объявления.
	ID string `json:"id"`

	// Title - название позиции.
	Title string `json:"title"`

	// Company - компания.
	Company string `json:"company"`

	// Location - локация, например "Remote" или город.
	Location string `json:"location"`

	// Description - описание вакансии.
	Description string `json:"description"`

	// RequiredSkills - требуемые навыки-теги.
	RequiredSkills []string `json:"requiredSkills"`

	// ContactInfo - контакт для отклика (email или ссылка).
	ContactInfo string `json:"contactInfo"`

	// PostedBy - идентификатор пользователя-автора.
	// Пусто для предзаполненных объявлений.
	PostedBy string `json:"postedBy"`

	// PostedAt - время публикации. Определяет порядок на доске:
	// свежие объявления первыми.
	PostedAt time.Time `json:"postedAt"`
}

var (
	// ErrInvalidJob - объявление не прошло валидацию.
	ErrInvalidJob = errors.New("invalid job posting")
)

// NewJobParams содержит параметры нового объявления.
type NewJobParams struct {
	ID             string
	Title          string
	Company        string
	Location       string
	Description    string
	RequiredSkills []string
	ContactInfo    string
	PostedBy       string
}

// NewJob создаёт объявление с валидацией обязательных полей.
// Автор обязателен: публиковать вакансии могут только
// аутентифицированные пользователи.
func NewJob(params NewJobParams) (*Job, error) {
	if params.ID == "" {
		return nil, fmt.Errorf("%w: id is required", ErrInvalidJob)
	}
	if strings.TrimSpace(params.Title) == "" {
		return nil, fmt.Errorf("%w: title is required", ErrInvalidJob)
	}
	if strings.TrimSpace(params.Company) == "" {
		return nil, fmt.Errorf("%w: company is required", ErrInvalidJob)
	}
	if params.PostedBy == "" {
		return nil, fmt.Errorf("%w: author is required", ErrInvalidJob)
	}

	skills := params.RequiredSkills
	if skills == nil {
		skills = []string{}
	}

	return &Job{
		ID:             params.ID,
		Title:          strings.TrimSpace(params.Title),
		Company:        strings.TrimSpace(params.Company),
		Location:       params.Location,
		Description:    params.Description,
		RequiredSkills: skills,
		ContactInfo:    params.ContactInfo,
		PostedBy:       params.PostedBy,
		PostedAt:       time.Now().UTC(),
	}, nil
}

// String возвращает строковое представление объявления для логирования.
func (j *Job) String() string {
	return fmt.Sprintf("Job{ID: %s, Title: %s, Company: %s}", j.ID, j.Title, j.Company)
}
