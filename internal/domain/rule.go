package domain

import (
	"fmt"
	"time"
)

// MaxLoanDurationDays is the longest loan a rule may allow.
const MaxLoanDurationDays = 60

// MaxRenewalExtensionCapDays bounds the per-renewal extension any rule may grant.
const MaxRenewalExtensionCapDays = 30

var standardDurations = map[int32]bool{15: true, 30: true, 45: true, 60: true}

// FineRule is the single active lending policy. UpdatedOn doubles as the
// optimistic version for administrative updates.
type FineRule struct {
	AllowedDurations        []int32   `json:"allowed_durations"`
	MaxRenewalExtensionDays int32     `json:"max_renewal_extension_days"`
	MaxRenewals             int32     `json:"max_renewals"`
	DailyFineRateCents      int32     `json:"daily_fine_rate_cents"`
	MaxFineCents            int32     `json:"max_fine_cents"`
	UpdatedOn               time.Time `json:"updated_on"`
}

// DurationAllowed reports whether a borrow for the given number of days is
// permitted under this rule.
func (r *FineRule) DurationAllowed(days int32) bool {
	for _, d := range r.AllowedDurations {
		if d == days {
			return true
		}
	}
	return false
}

// Validate checks the rule fields against the policy bounds.
func (r *FineRule) Validate() error {
	if len(r.AllowedDurations) == 0 {
		return fmt.Errorf("%w: at least one loan duration is required", ErrValidation)
	}
	for _, d := range r.AllowedDurations {
		if !standardDurations[d] {
			return fmt.Errorf("%w: loan duration %d is not one of 15/30/45/60 days", ErrValidation, d)
		}
		if d > MaxLoanDurationDays {
			return fmt.Errorf("%w: loan duration %d exceeds %d days", ErrValidation, d, MaxLoanDurationDays)
		}
	}
	if r.MaxRenewalExtensionDays <= 0 || r.MaxRenewalExtensionDays > MaxRenewalExtensionCapDays {
		return fmt.Errorf("%w: renewal extension must be between 1 and %d days", ErrValidation, MaxRenewalExtensionCapDays)
	}
	if r.MaxRenewals < 0 {
		return fmt.Errorf("%w: max renewals must not be negative", ErrValidation)
	}
	if r.DailyFineRateCents < 0 {
		return fmt.Errorf("%w: daily fine rate must not be negative", ErrValidation)
	}
	if r.MaxFineCents < 0 {
		return fmt.Errorf("%w: max fine must not be negative", ErrValidation)
	}
	return nil
}
