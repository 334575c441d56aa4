package service

import (
	"context"

	"libris-backend/internal/domain"
)

// LoanService is the borrowing lifecycle engine. It validates requests against
// the active fine rule and drives the transactional repository transitions.
type LoanService interface {
	Borrow(ctx context.Context, userID, bookID, durationDays int32) (*domain.Loan, error)
	Return(ctx context.Context, callerID int32, role domain.Role, loanID int32) (*domain.Loan, error)
	Renew(ctx context.Context, callerID int32, role domain.Role, loanID, extensionDays int32) (*domain.Loan, error)
	GetLoan(ctx context.Context, callerID int32, role domain.Role, loanID int32) (*domain.Loan, error)
	ListMyLoans(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Loan, int32, error)
	ListAllLoans(ctx context.Context, role domain.Role, status string, page, pageSize int32) ([]domain.Loan, int32, error)
	SweepOverdue(ctx context.Context) (int32, error)
}

type RuleService interface {
	GetRule(ctx context.Context) (*domain.FineRule, error)
	UpdateRule(ctx context.Context, role domain.Role, rule *domain.FineRule) (*domain.FineRule, error)
}

// CatalogService is the read-only view of the catalog collaborator this
// backend exposes; record management happens elsewhere.
type CatalogService interface {
	GetBook(ctx context.Context, id int32) (*domain.Book, error)
	ListBooks(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error)
}
