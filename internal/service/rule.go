package service

import (
	"context"

	"libris-backend/internal/domain"
	"libris-backend/internal/logger"
	"libris-backend/internal/repository"
)

type ruleService struct {
	ruleRepo repository.RuleRepository
}

func NewRuleService(ruleRepo repository.RuleRepository) RuleService {
	return &ruleService{ruleRepo: ruleRepo}
}

func (s *ruleService) GetRule(ctx context.Context) (*domain.FineRule, error) {
	return s.ruleRepo.Get(ctx)
}

// UpdateRule replaces the active rule. Already-finalized fines are never
// recomputed; the new rule only governs computations from here on.
func (s *ruleService) UpdateRule(ctx context.Context, role domain.Role, rule *domain.FineRule) (*domain.FineRule, error) {
	if role != domain.RoleAdmin {
		return nil, domain.ErrPermission
	}
	if err := rule.Validate(); err != nil {
		return nil, err
	}

	// A request without a version adopts the current one; the guarded update
	// still refuses the write if another admin slips in between.
	if rule.UpdatedOn.IsZero() {
		current, err := s.ruleRepo.Get(ctx)
		if err != nil {
			return nil, err
		}
		rule.UpdatedOn = current.UpdatedOn
	}

	updated, err := s.ruleRepo.Update(ctx, rule)
	if err != nil {
		return nil, err
	}

	logger.Info("fine rule updated",
		"allowed_durations", updated.AllowedDurations,
		"max_renewals", updated.MaxRenewals,
		"daily_fine_rate_cents", updated.DailyFineRateCents,
		"max_fine_cents", updated.MaxFineCents)
	return updated, nil
}
