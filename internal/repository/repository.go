package repository

import (
	"context"
	"time"

	"libris-backend/internal/domain"
)

type BookRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Book, error)
	List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error)
	// AdjustAvailable moves available_copies by delta, refusing any change
	// that would leave the count negative or above total_copies. Consumed by
	// the catalog collaborator; the loan transactions below carry their own
	// in-transaction reserve/release.
	AdjustAvailable(ctx context.Context, bookID, delta int32) error
}

// LoanRepository owns the loan lifecycle transitions. Borrow, Return and
// Renew are each a single transaction: the state checks, the copy-count
// change and the loan row mutation commit or roll back together.
type LoanRepository interface {
	Borrow(ctx context.Context, loan *domain.Loan) error
	Return(ctx context.Context, loanID int32, returnedAt time.Time, rule *domain.FineRule) (*domain.Loan, error)
	Renew(ctx context.Context, loanID, extensionDays, maxRenewals int32) (*domain.Loan, error)
	GetByID(ctx context.Context, id int32) (*domain.Loan, error)
	ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Loan, int32, error)
	List(ctx context.Context, status string, page, pageSize int32) ([]domain.Loan, int32, error)
	// SweepOverdue flips every BORROWED loan with due_date before asOf to
	// OVERDUE and returns how many changed. Safe to re-run; already-overdue
	// loans are untouched.
	SweepOverdue(ctx context.Context, asOf time.Time) (int32, error)
}

type RuleRepository interface {
	Get(ctx context.Context) (*domain.FineRule, error)
	// Update replaces the singleton rule. The stored updated_on must match
	// rule.UpdatedOn or the write is rejected with a conflict.
	Update(ctx context.Context, rule *domain.FineRule) (*domain.FineRule, error)
}
