package user

import (
	"time"

	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
)

// ══════════════════════════════════════════════════════════════════════════════
// PROGRESS & ENROLLMENT ENGINE
// Состояние записи на курсы и прогресса живёт целиком на пользователе.
// Завершённость курса - производный факт: прогресс как множество
// покрывает весь учебный план.
// ══════════════════════════════════════════════════════════════════════════════

// ToggleOutcome описывает результат переключения пункта учебного плана.
type ToggleOutcome struct {
	// Done - новое состояние пункта: true, если после переключения
	// пункт отмечен выполненным.
	Done bool

	// Completed - true, если этим переключением курс стал завершённым.
	Completed bool

	// CompletionRevoked - true, если этим переключением курс перестал
	// быть завершённым.
	CompletionRevoked bool
}

// IsEnrolled проверяет, записан ли пользователь на курс.
func (u *User) IsEnrolled(courseID shared.CourseID) bool {
	for _, id := range u.EnrolledCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

// IsCompleted проверяет, завершён ли курс.
func (u *User) IsCompleted(courseID shared.CourseID) bool {
	for _, id := range u.CompletedCourses {
		if id == courseID {
			return true
		}
	}
	return false
}

// ProgressFor возвращает множество выполненных пунктов по курсу.
// Для незаписанного курса возвращает nil.
func (u *User) ProgressFor(courseID shared.CourseID) []shared.CurriculumID {
	return u.CourseProgress[courseID]
}

// HasCompletedLesson проверяет, отмечен ли пункт учебного плана выполненным.
func (u *User) HasCompletedLesson(courseID shared.CourseID, lessonID shared.CurriculumID) bool {
	for _, id := range u.CourseProgress[courseID] {
		if id == lessonID {
			return true
		}
	}
	return false
}

// Enroll записывает пользователя на курс. Операция идемпотентна:
// повторная запись на тот же курс ничего не меняет и возвращает false.
// Существующий прогресс при повторной записи сохраняется.
func (u *User) Enroll(courseID shared.CourseID) (bool, error) {
	if !courseID.IsValid() {
		return false, ErrInvalidCourseID
	}

	if u.IsEnrolled(courseID) {
		return false, nil
	}

	u.EnrolledCourses = append(u.EnrolledCourses, courseID)
	if u.CourseProgress == nil {
		u.CourseProgress = map[shared.CourseID][]shared.CurriculumID{}
	}
	if _, ok := u.CourseProgress[courseID]; !ok {
		u.CourseProgress[courseID] = []shared.CurriculumID{}
	}
	u.UpdatedAt = time.Now().UTC()

	return true, nil
}

// Unenroll не поддерживается: записаться на курс можно, отписаться нельзя.
func (u *User) Unenroll(courseID shared.CourseID) error {
	return shared.ErrUnenrollNotAllowed
}

// ToggleLesson переключает состояние пункта учебного плана: выполненный
// пункт становится невыполненным и наоборот. curriculum - полный список
// пунктов учебного плана курса; по нему определяется завершённость.
//
// Завершённость считается по равенству множеств: курс завершён тогда
// и только тогда, когда каждый пункт учебного плана присутствует
// в прогрессе. Пункты, не входящие в учебный план, на завершённость
// не влияют.
func (u *User) ToggleLesson(
	courseID shared.CourseID,
	curriculum []shared.CurriculumID,
	lessonID shared.CurriculumID,
) (ToggleOutcome, error) {
	if !courseID.IsValid() {
		return ToggleOutcome{}, ErrInvalidCourseID
	}
	if !lessonID.IsValid() {
		return ToggleOutcome{}, ErrInvalidCurriculumID
	}
	if !u.IsEnrolled(courseID) {
		return ToggleOutcome{}, shared.ErrCourseNotFound
	}

	wasCompleted := u.IsCompleted(courseID)

	progress := u.CourseProgress[courseID]
	done := true
	next := make([]shared.CurriculumID, 0, len(progress)+1)
	for _, id := range progress {
		if id == lessonID {
			done = false
			continue
		}
		next = append(next, id)
	}
	if done {
		next = append(next, lessonID)
	}
	u.CourseProgress[courseID] = next

	nowCompleted := coversCurriculum(next, curriculum)
	outcome := ToggleOutcome{Done: done}

	switch {
	case nowCompleted && !wasCompleted:
		u.CompletedCourses = append(u.CompletedCourses, courseID)
		outcome.Completed = true
	case !nowCompleted && wasCompleted:
		u.CompletedCourses = removeCourse(u.CompletedCourses, courseID)
		outcome.CompletionRevoked = true
	}

	u.UpdatedAt = time.Now().UTC()

	return outcome, nil
}

// ProgressPercent возвращает долю выполненных пунктов учебного плана
// в процентах (0-100). Пункты вне учебного плана не учитываются.
func (u *User) ProgressPercent(courseID shared.CourseID, curriculum []shared.CurriculumID) int {
	if len(curriculum) == 0 {
		return 0
	}

	progress := u.CourseProgress[courseID]
	if len(progress) == 0 {
		return 0
	}

	set := make(map[shared.CurriculumID]struct{}, len(progress))
	for _, id := range progress {
		set[id] = struct{}{}
	}

	done := 0
	for _, id := range curriculum {
		if _, ok := set[id]; ok {
			done++
		}
	}

	return done * 100 / len(curriculum)
}

// coversCurriculum проверяет, что каждый пункт учебного плана
// присутствует в прогрессе. Пустой учебный план считается непокрытым.
func coversCurriculum(progress, curriculum []shared.CurriculumID) bool {
	if len(curriculum) == 0 {
		return false
	}

	set := make(map[shared.CurriculumID]struct{}, len(progress))
	for _, id := range progress {
		set[id] = struct{}{}
	}

	for _, id := range curriculum {
		if _, ok := set[id]; !ok {
			return false
		}
	}

	return true
}

func removeCourse(courses []shared.CourseID, courseID shared.CourseID) []shared.CourseID {
	out := courses[:0]
	for _, id := range courses {
		if id != courseID {
			out = append(out, id)
		}
	}
	return out
}
