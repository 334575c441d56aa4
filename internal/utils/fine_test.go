package utils

import (
	"testing"
	"time"

	"libris-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

func TestOverdueDays(t *testing.T) {
	due, _ := time.Parse("2006-01-02", "2024-03-10")

	t.Run("Returned before due date", func(t *testing.T) {
		at, _ := time.Parse("2006-01-02", "2024-03-05")
		assert.Equal(t, int32(0), OverdueDays(due, at))
	})

	t.Run("Returned on due date", func(t *testing.T) {
		assert.Equal(t, int32(0), OverdueDays(due, due))
	})

	t.Run("Same day but later hour", func(t *testing.T) {
		at := due.Add(5 * time.Hour)
		assert.Equal(t, int32(0), OverdueDays(due, at))
	})

	t.Run("Five days late", func(t *testing.T) {
		at, _ := time.Parse("2006-01-02", "2024-03-15")
		assert.Equal(t, int32(5), OverdueDays(due, at))
	})

	t.Run("Cross month boundary", func(t *testing.T) {
		at, _ := time.Parse("2006-01-02", "2024-04-02")
		assert.Equal(t, int32(23), OverdueDays(due, at))
	})
}

func TestCalculateFine(t *testing.T) {
	rule := &domain.FineRule{
		DailyFineRateCents: 50,   // $0.50/day
		MaxFineCents:       2000, // $20.00 cap
	}
	due, _ := time.Parse("2006-01-02", "2024-03-10")

	t.Run("On-time return owes nothing", func(t *testing.T) {
		at, _ := time.Parse("2006-01-02", "2024-03-08")
		assert.Equal(t, int32(0), CalculateFine(due, at, rule))
	})

	t.Run("5 days late", func(t *testing.T) {
		at, _ := time.Parse("2006-01-02", "2024-03-15")
		assert.Equal(t, int32(250), CalculateFine(due, at, rule)) // $2.50
	})

	t.Run("50 days late hits the cap", func(t *testing.T) {
		at, _ := time.Parse("2006-01-02", "2024-04-29")
		assert.Equal(t, int32(2000), CalculateFine(due, at, rule)) // capped at $20
	})

	t.Run("Fine is non-decreasing in overdue days", func(t *testing.T) {
		prev := int32(0)
		for days := 0; days <= 60; days++ {
			fine := CalculateFine(due, due.AddDate(0, 0, days), rule)
			assert.GreaterOrEqual(t, fine, prev)
			prev = fine
		}
	})

	t.Run("Zero rate", func(t *testing.T) {
		free := &domain.FineRule{DailyFineRateCents: 0, MaxFineCents: 2000}
		at, _ := time.Parse("2006-01-02", "2024-05-01")
		assert.Equal(t, int32(0), CalculateFine(due, at, free))
	})
}
