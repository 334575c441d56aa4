package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"libris-backend/internal/domain"
	"libris-backend/internal/logger"
	"libris-backend/internal/repository"
	"libris-backend/internal/utils"
)

type loanRepository struct {
	db *sql.DB
}

func NewLoanRepository(db *sql.DB) repository.LoanRepository {
	return &loanRepository{db: db}
}

const loanColumns = `id, user_id, book_id, borrow_date, due_date, return_date, status, renewal_count, fine_amount_cents, created_on, updated_on`

func scanLoan(row interface {
	Scan(dest ...interface{}) error
}) (*domain.Loan, error) {
	ln := &domain.Loan{}
	err := row.Scan(&ln.ID, &ln.UserID, &ln.BookID, &ln.BorrowDate, &ln.DueDate, &ln.ReturnDate, &ln.Status, &ln.RenewalCount, &ln.FineAmountCents, &ln.CreatedOn, &ln.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return ln, nil
}

// Borrow issues a loan inside one transaction: it locks the book row, checks
// for a duplicate active loan and remaining copies, reserves a copy and
// inserts the loan. Any refusal rolls the whole unit back.
func (r *loanRepository) Borrow(ctx context.Context, loan *domain.Loan) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return storageErr("begin borrow", err)
	}
	defer tx.Rollback()

	var total, available int32
	err = tx.QueryRowContext(ctx, `SELECT total_copies, available_copies FROM books WHERE id = $1 FOR UPDATE`, loan.BookID).
		Scan(&total, &available)
	if err != nil {
		return scanErr("lock book", err, domain.ErrBookNotFound)
	}

	var hasActive bool
	err = tx.QueryRowContext(ctx,
		`SELECT EXISTS(SELECT 1 FROM loans WHERE user_id = $1 AND book_id = $2 AND status IN ('BORROWED', 'OVERDUE'))`,
		loan.UserID, loan.BookID).Scan(&hasActive)
	if err != nil {
		return storageErr("check active loan", err)
	}
	if hasActive {
		return domain.ErrDuplicateActiveLoan
	}

	if available <= 0 {
		return domain.ErrNoCopiesAvailable
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE books SET available_copies = available_copies - 1, updated_on = NOW() WHERE id = $1 AND available_copies > 0`,
		loan.BookID)
	if err != nil {
		return storageErr("reserve copy", err)
	}
	if n, err := res.RowsAffected(); err != nil || n != 1 {
		if err != nil {
			return storageErr("reserve copy", err)
		}
		return domain.ErrNoCopiesAvailable
	}

	err = tx.QueryRowContext(ctx,
		`INSERT INTO loans (user_id, book_id, borrow_date, due_date, status, renewal_count, fine_amount_cents, created_on, updated_on)
		 VALUES ($1, $2, $3, $4, $5, 0, 0, NOW(), NOW())
		 RETURNING id, created_on, updated_on`,
		loan.UserID, loan.BookID, loan.BorrowDate, loan.DueDate, loan.Status).
		Scan(&loan.ID, &loan.CreatedOn, &loan.UpdatedOn)
	if err != nil {
		return storageErr("insert loan", err)
	}

	if err := tx.Commit(); err != nil {
		return storageErr("commit borrow", err)
	}
	return nil
}

// Return finalizes a loan: it locks the loan row, re-validates the state,
// computes the fine from the supplied rule snapshot and releases the copy.
func (r *loanRepository) Return(ctx context.Context, loanID int32, returnedAt time.Time, rule *domain.FineRule) (*domain.Loan, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr("begin return", err)
	}
	defer tx.Rollback()

	ln, err := scanLoan(tx.QueryRowContext(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1 FOR UPDATE`, loanID))
	if err != nil {
		return nil, scanErr("lock loan", err, domain.ErrLoanNotFound)
	}
	if ln.Status == domain.LoanStatusReturned {
		return nil, domain.ErrAlreadyReturned
	}

	fine := utils.CalculateFine(ln.DueDate, returnedAt, rule)

	_, err = tx.ExecContext(ctx,
		`UPDATE loans SET status = $1, return_date = $2, fine_amount_cents = $3, updated_on = NOW() WHERE id = $4`,
		domain.LoanStatusReturned, returnedAt, fine, loanID)
	if err != nil {
		return nil, storageErr("finalize loan", err)
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE books SET available_copies = available_copies + 1, updated_on = NOW() WHERE id = $1 AND available_copies < total_copies`,
		ln.BookID)
	if err != nil {
		return nil, storageErr("release copy", err)
	}
	if n, err := res.RowsAffected(); err != nil || n != 1 {
		if err != nil {
			return nil, storageErr("release copy", err)
		}
		logger.Error("copy release refused, counts are inconsistent", "loan_id", loanID, "book_id", ln.BookID)
		return nil, domain.ErrInventoryIntegrity
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr("commit return", err)
	}

	ln.Status = domain.LoanStatusReturned
	ln.ReturnDate = &returnedAt
	ln.FineAmountCents = fine
	return ln, nil
}

// Renew extends a borrowed loan's due date. The eligibility checks run after
// the row lock is taken, so a loan swept to OVERDUE (or returned) by a
// concurrent writer is re-observed and refused here.
func (r *loanRepository) Renew(ctx context.Context, loanID, extensionDays, maxRenewals int32) (*domain.Loan, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, storageErr("begin renew", err)
	}
	defer tx.Rollback()

	ln, err := scanLoan(tx.QueryRowContext(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1 FOR UPDATE`, loanID))
	if err != nil {
		return nil, scanErr("lock loan", err, domain.ErrLoanNotFound)
	}
	if ln.Status != domain.LoanStatusBorrowed {
		return nil, domain.ErrLoanNotRenewable
	}
	if ln.RenewalCount >= maxRenewals {
		return nil, domain.ErrRenewalLimitReached
	}

	newDue := ln.DueDate.AddDate(0, 0, int(extensionDays))
	err = tx.QueryRowContext(ctx,
		`UPDATE loans SET due_date = $1, renewal_count = renewal_count + 1, updated_on = NOW() WHERE id = $2 RETURNING renewal_count, updated_on`,
		newDue, loanID).Scan(&ln.RenewalCount, &ln.UpdatedOn)
	if err != nil {
		return nil, storageErr("extend loan", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, storageErr("commit renew", err)
	}

	ln.DueDate = newDue
	return ln, nil
}

func (r *loanRepository) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	ln, err := scanLoan(r.db.QueryRowContext(ctx, `SELECT `+loanColumns+` FROM loans WHERE id = $1`, id))
	if err != nil {
		return nil, scanErr("get loan", err, domain.ErrLoanNotFound)
	}
	return ln, nil
}

func (r *loanRepository) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Loan, int32, error) {
	query := `SELECT ` + loanColumns + ` FROM loans WHERE user_id = $1`
	args := []interface{}{userID}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	return r.list(ctx, query, args, page, pageSize)
}

func (r *loanRepository) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Loan, int32, error) {
	query := `SELECT ` + loanColumns + ` FROM loans`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	return r.list(ctx, query, args, page, pageSize)
}

func (r *loanRepository) list(ctx context.Context, query string, args []interface{}, page, pageSize int32) ([]domain.Loan, int32, error) {
	offset := (page - 1) * pageSize

	var count int32
	countQuery := `SELECT count(*) FROM (` + query + `) AS sub`
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&count); err != nil {
		return nil, 0, storageErr("count loans", err)
	}

	query += fmt.Sprintf(` ORDER BY created_on DESC LIMIT $%d OFFSET $%d`, len(args)+1, len(args)+2)
	args = append(args, pageSize, offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, 0, storageErr("list loans", err)
	}
	defer rows.Close()

	var loans []domain.Loan
	for rows.Next() {
		ln, err := scanLoan(rows)
		if err != nil {
			return nil, 0, storageErr("scan loan", err)
		}
		loans = append(loans, *ln)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, storageErr("iterate loans", err)
	}
	return loans, count, nil
}

// SweepOverdue is a single conditional update, so each row flips atomically
// and re-running the sweep in the same window changes nothing.
func (r *loanRepository) SweepOverdue(ctx context.Context, asOf time.Time) (int32, error) {
	query := `
		UPDATE loans
		SET status = 'OVERDUE',
		    updated_on = NOW()
		WHERE status = 'BORROWED'
		  AND due_date < $1
		RETURNING id, user_id, book_id, due_date
	`

	rows, err := r.db.QueryContext(ctx, query, asOf)
	if err != nil {
		return 0, storageErr("sweep overdue loans", err)
	}
	defer rows.Close()

	var count int32
	for rows.Next() {
		var id, userID, bookID int32
		var dueDate time.Time
		if err := rows.Scan(&id, &userID, &bookID, &dueDate); err != nil {
			return count, storageErr("scan swept loan", err)
		}
		count++
		logger.Debug("marked loan as overdue",
			"loan_id", id,
			"user_id", userID,
			"book_id", bookID,
			"due_date", dueDate.Format("2006-01-02"))
	}
	if err := rows.Err(); err != nil {
		return count, storageErr("iterate swept loans", err)
	}
	return count, nil
}
