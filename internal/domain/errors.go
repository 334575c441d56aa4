package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every error the services return wraps exactly one of these,
// so callers can classify with errors.Is without string matching.
var (
	ErrValidation = errors.New("invalid input")
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrPermission = errors.New("permission denied")
	ErrStorage    = errors.New("storage failure")
)

// Named conditions.
var (
	ErrBookNotFound = fmt.Errorf("book %w", ErrNotFound)
	ErrLoanNotFound = fmt.Errorf("loan %w", ErrNotFound)

	ErrNoCopiesAvailable   = fmt.Errorf("%w: no copies available", ErrConflict)
	ErrDuplicateActiveLoan = fmt.Errorf("%w: user already holds an active loan on this book", ErrConflict)
	ErrAlreadyReturned     = fmt.Errorf("%w: loan already returned", ErrConflict)
	ErrLoanNotRenewable    = fmt.Errorf("%w: only borrowed loans can be renewed", ErrConflict)
	ErrRenewalLimitReached = fmt.Errorf("%w: renewal limit reached", ErrConflict)
	ErrRuleVersionConflict = fmt.Errorf("%w: fine rule was modified concurrently", ErrConflict)

	ErrBadDuration  = fmt.Errorf("%w: loan duration is not allowed by the active rule", ErrValidation)
	ErrBadExtension = fmt.Errorf("%w: renewal extension exceeds the per-renewal maximum", ErrValidation)

	// ErrInventoryIntegrity means a release would push available_copies past
	// total_copies. That is a bug, not a user-facing conflict.
	ErrInventoryIntegrity = fmt.Errorf("%w: available copies would violate the book invariant", ErrStorage)
)
