// Package user содержит доменную модель пользователя SkillConnect.
// Это ядро бизнес-логики - здесь нет внешних зависимостей.
package user

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// VALUE OBJECTS
// ══════════════════════════════════════════════════════════════════════════════

// EducationRecord представляет одну запись об образовании.
type EducationRecord struct {
	// Institution - учебное заведение.
	Institution string `json:"institution"`

	// Degree - полученная степень или квалификация.
	Degree string `json:"degree"`

	// Year - год окончания (свободный текст, как ввёл пользователь).
	Year string `json:"year"`
}

// ExperienceRecord представляет одну запись об опыте работы.
type ExperienceRecord struct {
	// Company - компания.
	Company string `json:"company"`

	// Role - должность.
	Role string `json:"role"`

	// Years - период работы (свободный текст, например "2020-2022").
	Years string `json:"years"`
}

// ══════════════════════════════════════════════════════════════════════════════
// MAIN ENTITY: USER
// ══════════════════════════════════════════════════════════════════════════════

// User - центральная сущность системы, представляющая аккаунт пользователя.
type User struct {
	// ID - внутренний уникальный идентификатор (UUID в строковом формате).
	// Неизменяем после создания.
	ID string

	// Name - отображаемое имя пользователя.
	Name string

	// Email - адрес электронной почты. Уникален среди всех аккаунтов,
	// сравнение регистрозависимое.
	Email shared.EmailAddress

	// PasswordHash - bcrypt-хеш пароля. Открытый пароль нигде не хранится.
	PasswordHash string

	// Bio - краткое описание профиля.
	Bio string

	// Skills - упорядоченный список навыков-тегов.
	Skills []string

	// Education - упорядоченный список записей об образовании.
	Education []EducationRecord

	// Experience - упорядоченный список записей об опыте работы.
	Experience []ExperienceRecord

	// EnrolledCourses - курсы, на которые пользователь записан
	// (упорядоченное множество идентификаторов).
	EnrolledCourses []shared.CourseID

	// CompletedCourses - завершённые курсы. Производное состояние:
	// курс попадает сюда, когда прогресс покрывает весь учебный план.
	// Всегда подмножество EnrolledCourses.
	CompletedCourses []shared.CourseID

	// CourseProgress - прогресс по курсам: для каждого записанного курса
	// множество выполненных пунктов учебного плана. Ключи совпадают
	// с EnrolledCourses (запись есть даже при пустом прогрессе).
	CourseProgress map[shared.CourseID][]shared.CurriculumID

	// CreatedAt - время создания аккаунта.
	CreatedAt time.Time

	// UpdatedAt - время последнего обновления.
	UpdatedAt time.Time
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN ERRORS
// ══════════════════════════════════════════════════════════════════════════════

var (
	// ErrInvalidName - невалидное имя пользователя.
	ErrInvalidName = errors.New("invalid name: must be 1-100 chars")

	// ErrInvalidEmail - невалидный email.
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrEmptyPasswordHash - пустой хеш пароля.
	ErrEmptyPasswordHash = errors.New("password hash is required")

	// ErrInvalidCourseID - невалидный идентификатор курса.
	ErrInvalidCourseID = errors.New("invalid course id")

	// ErrInvalidCurriculumID - невалидный идентификатор пункта учебного плана.
	ErrInvalidCurriculumID = errors.New("invalid curriculum id")
)

// ══════════════════════════════════════════════════════════════════════════════
// FACTORY & VALIDATION
// ══════════════════════════════════════════════════════════════════════════════

// NewUserParams содержит параметры для создания нового пользователя.
type NewUserParams struct {
	ID           string
	Name         string
	Email        shared.EmailAddress
	PasswordHash string
	Bio          string
}

// DefaultBio - приветственный текст профиля для нового аккаунта.
const DefaultBio = "Welcome to SkillConnect! Tell us about yourself."

// NewUser создаёт нового пользователя с валидацией всех полей.
// Новый аккаунт начинает с пустыми навыками, образованием, опытом
// и без записей на курсы.
func NewUser(params NewUserParams) (*User, error) {
	if params.ID == "" {
		return nil, errors.New("user id is required")
	}

	name := strings.TrimSpace(params.Name)
	if len(name) == 0 || len(name) > 100 {
		return nil, ErrInvalidName
	}

	if !params.Email.IsValid() {
		return nil, ErrInvalidEmail
	}

	if params.PasswordHash == "" {
		return nil, ErrEmptyPasswordHash
	}

	bio := params.Bio
	if bio == "" {
		bio = DefaultBio
	}

	now := time.Now().UTC()

	return &User{
		ID:               params.ID,
		Name:             name,
		Email:            params.Email,
		PasswordHash:     params.PasswordHash,
		Bio:              bio,
		Skills:           []string{},
		Education:        []EducationRecord{},
		Experience:       []ExperienceRecord{},
		EnrolledCourses:  []shared.CourseID{},
		CompletedCourses: []shared.CourseID{},
		CourseProgress:   map[shared.CourseID][]shared.CurriculumID{},
		CreatedAt:        now,
		UpdatedAt:        now,
	}, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// PROFILE UPDATE
// Явный структурированный тип обновления вместо открытого merge:
// перечислены ровно те поля, которые пользователь может менять.
// Массивы заменяются целиком, не дополняются.
// ══════════════════════════════════════════════════════════════════════════════

// ProfileUpdate перечисляет изменяемые поля профиля.
// Nil-поле означает "не трогать".
type ProfileUpdate struct {
	Name       *string
	Bio        *string
	Skills     *[]string
	Education  *[]EducationRecord
	Experience *[]ExperienceRecord
}

// Validate проверяет корректность обновления.
func (p ProfileUpdate) Validate() error {
	if p.Name != nil {
		name := strings.TrimSpace(*p.Name)
		if len(name) == 0 || len(name) > 100 {
			return ErrInvalidName
		}
	}
	return nil
}

// IsEmpty возвращает true, если обновление не меняет ни одного поля.
func (p ProfileUpdate) IsEmpty() bool {
	return p.Name == nil && p.Bio == nil && p.Skills == nil &&
		p.Education == nil && p.Experience == nil
}

// ApplyProfileUpdate применяет обновление к пользователю и возвращает
// список изменённых полей. Email, пароль и состояние записи на курсы
// через профиль не меняются.
func (u *User) ApplyProfileUpdate(update ProfileUpdate) ([]string, error) {
	if err := update.Validate(); err != nil {
		return nil, err
	}

	var changed []string

	if update.Name != nil {
		u.Name = strings.TrimSpace(*update.Name)
		changed = append(changed, "name")
	}
	if update.Bio != nil {
		u.Bio = *update.Bio
		changed = append(changed, "bio")
	}
	if update.Skills != nil {
		u.Skills = append([]string{}, (*update.Skills)...)
		changed = append(changed, "skills")
	}
	if update.Education != nil {
		u.Education = append([]EducationRecord{}, (*update.Education)...)
		changed = append(changed, "education")
	}
	if update.Experience != nil {
		u.Experience = append([]ExperienceRecord{}, (*update.Experience)...)
		changed = append(changed, "experience")
	}

	if len(changed) > 0 {
		u.UpdatedAt = time.Now().UTC()
	}

	return changed, nil
}

// ══════════════════════════════════════════════════════════════════════════════
// DOMAIN METHODS
// ══════════════════════════════════════════════════════════════════════════════

// HasSkill проверяет наличие навыка (точное совпадение строки).
func (u *User) HasSkill(tag string) bool {
	for _, s := range u.Skills {
		if s == tag {
			return true
		}
	}
	return false
}

// String возвращает строковое представление пользователя для логирования.
// Пароль и его хеш в вывод не попадают.
func (u *User) String() string {
	return fmt.Sprintf(
		"User{ID: %s, Email: %s, Enrolled: %d, Completed: %d}",
		u.ID, u.Email, len(u.EnrolledCourses), len(u.CompletedCourses),
	)
}

// Clone создаёт глубокую копию пользователя.
// Снимок текущего пользователя в сессии - всегда копия; авторитетная
// запись живёт в хранилище аккаунтов.
func (u *User) Clone() *User {
	if u == nil {
		return nil
	}

	clone := *u
	clone.Skills = append([]string{}, u.Skills...)
	clone.Education = append([]EducationRecord{}, u.Education...)
	clone.Experience = append([]ExperienceRecord{}, u.Experience...)
	clone.EnrolledCourses = append([]shared.CourseID{}, u.EnrolledCourses...)
	clone.CompletedCourses = append([]shared.CourseID{}, u.CompletedCourses...)

	clone.CourseProgress = make(map[shared.CourseID][]shared.CurriculumID, len(u.CourseProgress))
	for id, progress := range u.CourseProgress {
		clone.CourseProgress[id] = append([]shared.CurriculumID{}, progress...)
	}

	return &clone
}
