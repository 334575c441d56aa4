package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"libris-backend/internal/domain"
	"libris-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.BookRepository
	repository.LoanRepository
	repository.RuleRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:             db,
		BookRepository: NewBookRepository(db),
		LoanRepository: NewLoanRepository(db),
		RuleRepository: NewRuleRepository(db),
	}
}

// storageErr classifies a driver/connection failure so callers can tell it
// apart from business conflicts.
func storageErr(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", domain.ErrStorage, op, err)
}

// scanErr maps sql.ErrNoRows to the given not-found error, anything else to
// a storage failure.
func scanErr(op string, err, notFound error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return notFound
	}
	return storageErr(op, err)
}
