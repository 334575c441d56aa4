package service

import (
	"context"
	"time"

	"libris-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockLoanRepo
type MockLoanRepo struct {
	mock.Mock
}

func (m *MockLoanRepo) Borrow(ctx context.Context, loan *domain.Loan) error {
	args := m.Called(ctx, loan)
	return args.Error(0)
}
func (m *MockLoanRepo) Return(ctx context.Context, loanID int32, returnedAt time.Time, rule *domain.FineRule) (*domain.Loan, error) {
	args := m.Called(ctx, loanID, returnedAt, rule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) Renew(ctx context.Context, loanID, extensionDays, maxRenewals int32) (*domain.Loan, error) {
	args := m.Called(ctx, loanID, extensionDays, maxRenewals)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) GetByID(ctx context.Context, id int32) (*domain.Loan, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanRepo) ListByUser(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Loan, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Loan), args.Get(1).(int32), args.Error(2)
}
func (m *MockLoanRepo) List(ctx context.Context, status string, page, pageSize int32) ([]domain.Loan, int32, error) {
	args := m.Called(ctx, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Loan), args.Get(1).(int32), args.Error(2)
}
func (m *MockLoanRepo) SweepOverdue(ctx context.Context, asOf time.Time) (int32, error) {
	args := m.Called(ctx, asOf)
	return args.Get(0).(int32), args.Error(1)
}

// MockRuleRepo
type MockRuleRepo struct {
	mock.Mock
}

func (m *MockRuleRepo) Get(ctx context.Context) (*domain.FineRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FineRule), args.Error(1)
}
func (m *MockRuleRepo) Update(ctx context.Context, rule *domain.FineRule) (*domain.FineRule, error) {
	args := m.Called(ctx, rule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FineRule), args.Error(1)
}

// MockBookRepo
type MockBookRepo struct {
	mock.Mock
}

func (m *MockBookRepo) GetByID(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockBookRepo) List(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Book), args.Get(1).(int32), args.Error(2)
}
func (m *MockBookRepo) AdjustAvailable(ctx context.Context, bookID, delta int32) error {
	args := m.Called(ctx, bookID, delta)
	return args.Error(0)
}

func defaultRule() *domain.FineRule {
	return &domain.FineRule{
		AllowedDurations:        []int32{15, 30, 45, 60},
		MaxRenewalExtensionDays: 30,
		MaxRenewals:             2,
		DailyFineRateCents:      50,
		MaxFineCents:            2000,
		UpdatedOn:               time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}
