package utils

import (
	"time"

	"libris-backend/internal/domain"
)

// OverdueDays returns the number of whole calendar days (UTC) the loan is
// past due at the evaluation time. On-time or early evaluation yields 0.
func OverdueDays(dueDate, at time.Time) int32 {
	due := dueDate.UTC().Truncate(24 * time.Hour)
	eval := at.UTC().Truncate(24 * time.Hour)
	if !eval.After(due) {
		return 0
	}
	return int32(eval.Sub(due).Hours() / 24)
}

// CalculateFine computes the fine owed in cents for a loan with the given due
// date when returned (or evaluated) at the given time, under the supplied
// rule. The rule's per-loan cap is always applied. Pure function; callers
// decide whether the result is a projection or the finalized amount.
func CalculateFine(dueDate, at time.Time, rule *domain.FineRule) int32 {
	days := OverdueDays(dueDate, at)
	fine := days * rule.DailyFineRateCents
	if fine > rule.MaxFineCents {
		fine = rule.MaxFineCents
	}
	return fine
}
