package service

import (
	"context"
	"fmt"
	"time"

	"libris-backend/internal/domain"
	"libris-backend/internal/logger"
	"libris-backend/internal/repository"
	"libris-backend/internal/utils"
)

type loanService struct {
	loanRepo repository.LoanRepository
	ruleRepo repository.RuleRepository
	now      func() time.Time
}

func NewLoanService(loanRepo repository.LoanRepository, ruleRepo repository.RuleRepository) LoanService {
	return &loanService{
		loanRepo: loanRepo,
		ruleRepo: ruleRepo,
		now:      time.Now,
	}
}

func (s *loanService) Borrow(ctx context.Context, userID, bookID, durationDays int32) (*domain.Loan, error) {
	rule, err := s.ruleRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if !rule.DurationAllowed(durationDays) {
		return nil, fmt.Errorf("%w (%d days)", domain.ErrBadDuration, durationDays)
	}

	now := s.now().UTC()
	loan := &domain.Loan{
		UserID:     userID,
		BookID:     bookID,
		BorrowDate: now,
		DueDate:    now.AddDate(0, 0, int(durationDays)),
		Status:     domain.LoanStatusBorrowed,
	}
	if err := s.loanRepo.Borrow(ctx, loan); err != nil {
		return nil, err
	}

	logger.Info("loan issued",
		"loan_id", loan.ID,
		"user_id", userID,
		"book_id", bookID,
		"due_date", loan.DueDate.Format("2006-01-02"))
	return loan, nil
}

func (s *loanService) Return(ctx context.Context, callerID int32, role domain.Role, loanID int32) (*domain.Loan, error) {
	if err := s.authorize(ctx, callerID, role, loanID); err != nil {
		return nil, err
	}
	rule, err := s.ruleRepo.Get(ctx)
	if err != nil {
		return nil, err
	}

	// The repository re-validates state under the row lock; the fine is
	// computed there from this rule snapshot so the release, the status flip
	// and the finalized amount commit together.
	ln, err := s.loanRepo.Return(ctx, loanID, s.now().UTC(), rule)
	if err != nil {
		return nil, err
	}

	logger.Info("loan returned",
		"loan_id", ln.ID,
		"user_id", ln.UserID,
		"book_id", ln.BookID,
		"fine_amount_cents", ln.FineAmountCents)
	return ln, nil
}

func (s *loanService) Renew(ctx context.Context, callerID int32, role domain.Role, loanID, extensionDays int32) (*domain.Loan, error) {
	if err := s.authorize(ctx, callerID, role, loanID); err != nil {
		return nil, err
	}
	rule, err := s.ruleRepo.Get(ctx)
	if err != nil {
		return nil, err
	}
	if extensionDays <= 0 || extensionDays > rule.MaxRenewalExtensionDays {
		return nil, fmt.Errorf("%w (%d days, max %d)", domain.ErrBadExtension, extensionDays, rule.MaxRenewalExtensionDays)
	}

	ln, err := s.loanRepo.Renew(ctx, loanID, extensionDays, rule.MaxRenewals)
	if err != nil {
		return nil, err
	}

	logger.Info("loan renewed",
		"loan_id", ln.ID,
		"renewal_count", ln.RenewalCount,
		"due_date", ln.DueDate.Format("2006-01-02"))
	return ln, nil
}

func (s *loanService) GetLoan(ctx context.Context, callerID int32, role domain.Role, loanID int32) (*domain.Loan, error) {
	ln, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return nil, err
	}
	if ln.UserID != callerID && !role.Staff() {
		return nil, domain.ErrPermission
	}
	if err := s.projectFines(ctx, []domain.Loan{}, ln); err != nil {
		return nil, err
	}
	return ln, nil
}

func (s *loanService) ListMyLoans(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Loan, int32, error) {
	loans, count, err := s.loanRepo.ListByUser(ctx, userID, status, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	if err := s.projectFines(ctx, loans); err != nil {
		return nil, 0, err
	}
	return loans, count, nil
}

func (s *loanService) ListAllLoans(ctx context.Context, role domain.Role, status string, page, pageSize int32) ([]domain.Loan, int32, error) {
	if !role.Staff() {
		return nil, 0, domain.ErrPermission
	}
	loans, count, err := s.loanRepo.List(ctx, status, page, pageSize)
	if err != nil {
		return nil, 0, err
	}
	if err := s.projectFines(ctx, loans); err != nil {
		return nil, 0, err
	}
	return loans, count, nil
}

func (s *loanService) SweepOverdue(ctx context.Context) (int32, error) {
	count, err := s.loanRepo.SweepOverdue(ctx, s.now().UTC())
	if err != nil {
		return count, err
	}
	logger.Info("overdue sweep completed", "transitioned", count)
	return count, nil
}

// authorize lets the loan holder and staff act on a loan.
func (s *loanService) authorize(ctx context.Context, callerID int32, role domain.Role, loanID int32) error {
	if role.Staff() {
		return nil
	}
	ln, err := s.loanRepo.GetByID(ctx, loanID)
	if err != nil {
		return err
	}
	if ln.UserID != callerID {
		return domain.ErrPermission
	}
	return nil
}

// projectFines fills in the would-be fine for outstanding loans that are past
// due. The stored amount stays untouched until the return finalizes it.
func (s *loanService) projectFines(ctx context.Context, loans []domain.Loan, extra ...*domain.Loan) error {
	now := s.now().UTC()

	needsRule := false
	for i := range loans {
		if loans[i].Active() && now.After(loans[i].DueDate) {
			needsRule = true
		}
	}
	for _, ln := range extra {
		if ln.Active() && now.After(ln.DueDate) {
			needsRule = true
		}
	}
	if !needsRule {
		return nil
	}

	rule, err := s.ruleRepo.Get(ctx)
	if err != nil {
		return err
	}
	for i := range loans {
		if loans[i].Active() {
			loans[i].FineAmountCents = utils.CalculateFine(loans[i].DueDate, now, rule)
		}
	}
	for _, ln := range extra {
		if ln.Active() {
			ln.FineAmountCents = utils.CalculateFine(ln.DueDate, now, rule)
		}
	}
	return nil
}
