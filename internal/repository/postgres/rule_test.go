package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"libris-backend/internal/domain"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRuleRepository_Get(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRuleRepository(db)
	ctx := context.Background()
	now := time.Now()

	rows := sqlmock.NewRows([]string{"allowed_durations", "max_renewal_extension_days", "max_renewals", "daily_fine_rate_cents", "max_fine_cents", "updated_on"}).
		AddRow([]byte("{15,30,45,60}"), 30, 2, 50, 2000, now)

	mock.ExpectQuery("SELECT (.+) FROM fine_rules WHERE id = \\$1").
		WithArgs(1).
		WillReturnRows(rows)

	rule, err := repo.Get(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []int32{15, 30, 45, 60}, rule.AllowedDurations)
	assert.Equal(t, int32(2), rule.MaxRenewals)
	assert.Equal(t, int32(50), rule.DailyFineRateCents)
}

func TestRuleRepository_Update(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRuleRepository(db)
	ctx := context.Background()
	version := time.Now().Add(-time.Hour)

	rule := &domain.FineRule{
		AllowedDurations:        []int32{15, 30},
		MaxRenewalExtensionDays: 14,
		MaxRenewals:             1,
		DailyFineRateCents:      100,
		MaxFineCents:            5000,
		UpdatedOn:               version,
	}

	t.Run("Success bumps the version", func(t *testing.T) {
		newVersion := time.Now()
		mock.ExpectQuery("UPDATE fine_rules").
			WillReturnRows(sqlmock.NewRows([]string{"updated_on"}).AddRow(newVersion))

		updated, err := repo.Update(ctx, rule)
		assert.NoError(t, err)
		assert.Equal(t, newVersion, updated.UpdatedOn)
		// The input rule is left untouched.
		assert.Equal(t, version, rule.UpdatedOn)
	})

	t.Run("Stale version is a conflict", func(t *testing.T) {
		mock.ExpectQuery("UPDATE fine_rules").
			WillReturnError(sql.ErrNoRows)

		_, err := repo.Update(ctx, rule)
		assert.ErrorIs(t, err, domain.ErrRuleVersionConflict)
		assert.ErrorIs(t, err, domain.ErrConflict)
	})
}
