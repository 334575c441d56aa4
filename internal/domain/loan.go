package domain

import "time"

type LoanStatus string

const (
	LoanStatusBorrowed LoanStatus = "BORROWED"
	LoanStatusOverdue  LoanStatus = "OVERDUE"
	LoanStatusReturned LoanStatus = "RETURNED"
)

type Loan struct {
	ID           int32      `json:"id"`
	UserID       int32      `json:"user_id"`
	BookID       int32      `json:"book_id"`
	BorrowDate   time.Time  `json:"borrow_date"`
	DueDate      time.Time  `json:"due_date"`
	ReturnDate   *time.Time `json:"return_date,omitempty"`
	Status       LoanStatus `json:"status"`
	RenewalCount int32      `json:"renewal_count"`
	// Finalized at return. For outstanding overdue loans the API layer
	// fills in a projection from the active fine rule instead.
	FineAmountCents int32     `json:"fine_amount_cents"`
	CreatedOn       time.Time `json:"created_on"`
	UpdatedOn       time.Time `json:"updated_on"`
}

// Active reports whether the loan still holds a copy.
func (l *Loan) Active() bool {
	return l.Status == LoanStatusBorrowed || l.Status == LoanStatusOverdue
}
