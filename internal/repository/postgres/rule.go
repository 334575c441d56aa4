package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"libris-backend/internal/domain"
	"libris-backend/internal/repository"

	"github.com/lib/pq"
)

// The fine rule is a singleton row; the schema seeds it and nothing deletes it.
const fineRuleID = 1

type ruleRepository struct {
	db *sql.DB
}

func NewRuleRepository(db *sql.DB) repository.RuleRepository {
	return &ruleRepository{db: db}
}

func (r *ruleRepository) Get(ctx context.Context) (*domain.FineRule, error) {
	rule := &domain.FineRule{}
	var durations pq.Int64Array
	query := `SELECT allowed_durations, max_renewal_extension_days, max_renewals, daily_fine_rate_cents, max_fine_cents, updated_on
	          FROM fine_rules WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, fineRuleID).
		Scan(&durations, &rule.MaxRenewalExtensionDays, &rule.MaxRenewals, &rule.DailyFineRateCents, &rule.MaxFineCents, &rule.UpdatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storageErr("get fine rule", errors.New("fine rule row is missing"))
		}
		return nil, storageErr("get fine rule", err)
	}
	rule.AllowedDurations = make([]int32, len(durations))
	for i, d := range durations {
		rule.AllowedDurations[i] = int32(d)
	}
	return rule, nil
}

// Update replaces the rule only if the caller saw the current version.
// Losing the race is an ordinary conflict the admin can retry.
func (r *ruleRepository) Update(ctx context.Context, rule *domain.FineRule) (*domain.FineRule, error) {
	durations := make(pq.Int64Array, len(rule.AllowedDurations))
	for i, d := range rule.AllowedDurations {
		durations[i] = int64(d)
	}

	var updatedOn time.Time
	query := `UPDATE fine_rules
	          SET allowed_durations = $1,
	              max_renewal_extension_days = $2,
	              max_renewals = $3,
	              daily_fine_rate_cents = $4,
	              max_fine_cents = $5,
	              updated_on = NOW()
	          WHERE id = $6 AND updated_on = $7
	          RETURNING updated_on`
	err := r.db.QueryRowContext(ctx, query,
		durations, rule.MaxRenewalExtensionDays, rule.MaxRenewals,
		rule.DailyFineRateCents, rule.MaxFineCents,
		fineRuleID, rule.UpdatedOn).Scan(&updatedOn)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrRuleVersionConflict
		}
		return nil, storageErr("update fine rule", err)
	}

	updated := *rule
	updated.UpdatedOn = updatedOn
	return &updated, nil
}
