package jobs

import (
	"context"

	"libris-backend/internal/logger"
)

// MarkOverdueLoans flips loans past their due_date from BORROWED to OVERDUE.
// The sweep is a single conditional update, so rerunning it (or racing a
// return/renew) never double-processes a loan.
func (jr *JobRunner) MarkOverdueLoans() {
	jr.runWithRecovery("MarkOverdueLoans", func() {
		ctx := context.Background()

		count, err := jr.loanSvc.SweepOverdue(ctx)
		if err != nil {
			logger.Error("Failed to mark overdue loans", "error", err)
			return
		}

		logger.Info("Marked loans as overdue", "count", count)
	})
}
