// Package entitlement решает, можно ли записаться на занятие по абонементу.
package entitlement

import (
	"time"

	"github.com/mcgege/openstudio/internal/domain"
)

type MembershipSet map[string]struct{}

func NewMembershipSet(ids ...string) MembershipSet {
	set := make(MembershipSet, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func (s MembershipSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Evaluate возвращает все причины отказа сразу, а не первую найденную.
// ValidUntil включает весь календарный день; today сравнивается только по дате.
func Evaluate(option domain.ClassPassOption, memberships MembershipSet, today time.Time) domain.Evaluation {
	reasons := make([]domain.Reason, 0, 4)

	if !option.Allowed {
		reasons = append(reasons, domain.ReasonNotAllowedForClass)
	}
	if option.RequiredMembershipID != nil && !memberships.Has(*option.RequiredMembershipID) {
		reasons = append(reasons, domain.ReasonMembershipRequired)
	}
	if dateOf(today).After(dateOf(option.ValidUntil)) {
		reasons = append(reasons, domain.ReasonExpired)
	}
	if !option.Unlimited && option.ClassesRemaining <= 0 {
		reasons = append(reasons, domain.ReasonNoClassesRemaining)
	}

	return domain.Evaluation{Usable: len(reasons) == 0, Reasons: reasons}
}

// EvaluateAll размечает список абонементов для показа, сохраняя порядок.
func EvaluateAll(options []domain.ClassPassOption, memberships MembershipSet, today time.Time) []domain.EvaluatedOption {
	res := make([]domain.EvaluatedOption, 0, len(options))
	for _, o := range options {
		res = append(res, domain.EvaluatedOption{Option: o, Evaluation: Evaluate(o, memberships, today)})
	}
	return res
}

// dateOf отбрасывает время суток в собственной зоне значения.
func dateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
