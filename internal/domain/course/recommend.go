package course

import (
	"github.com/skillconnect/skillconnect-hub/internal/domain/shared"
	"github.com/skillconnect/skillconnect-hub/internal/domain/user"
)

// ══════════════════════════════════════════════════════════════════════════════
// RECOMMENDATION
// Детерминированное правило подбора следующего курса:
//   1. первый по порядку каталога незаписанный курс, теги которого
//      пересекаются с навыками пользователя;
//   2. иначе первый незаписанный курс;
//   3. иначе ничего (пользователь записан на всё).
// ══════════════════════════════════════════════════════════════════════════════

// Recommend возвращает рекомендованный курс для пользователя.
// Второе значение false, если рекомендовать нечего.
func Recommend(u *user.User, catalog *Catalog) (*Course, bool) {
	var firstUnenrolled *Course

	for _, c := range catalog.All() {
		if u.IsEnrolled(c.ID) {
			continue
		}
		if firstUnenrolled == nil {
			firstUnenrolled = c
		}
		if shared.TagsIntersect(c.Tags, u.Skills) {
			return c, true
		}
	}

	if firstUnenrolled != nil {
		return firstUnenrolled, true
	}
	return nil, false
}
