package http

import (
	"context"

	"libris-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockLoanService struct {
	mock.Mock
}

func (m *MockLoanService) Borrow(ctx context.Context, userID, bookID, durationDays int32) (*domain.Loan, error) {
	args := m.Called(ctx, userID, bookID, durationDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) Return(ctx context.Context, callerID int32, role domain.Role, loanID int32) (*domain.Loan, error) {
	args := m.Called(ctx, callerID, role, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) Renew(ctx context.Context, callerID int32, role domain.Role, loanID, extensionDays int32) (*domain.Loan, error) {
	args := m.Called(ctx, callerID, role, loanID, extensionDays)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) GetLoan(ctx context.Context, callerID int32, role domain.Role, loanID int32) (*domain.Loan, error) {
	args := m.Called(ctx, callerID, role, loanID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Loan), args.Error(1)
}
func (m *MockLoanService) ListMyLoans(ctx context.Context, userID int32, status string, page, pageSize int32) ([]domain.Loan, int32, error) {
	args := m.Called(ctx, userID, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Loan), args.Get(1).(int32), args.Error(2)
}
func (m *MockLoanService) ListAllLoans(ctx context.Context, role domain.Role, status string, page, pageSize int32) ([]domain.Loan, int32, error) {
	args := m.Called(ctx, role, status, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Loan), args.Get(1).(int32), args.Error(2)
}
func (m *MockLoanService) SweepOverdue(ctx context.Context) (int32, error) {
	args := m.Called(ctx)
	return args.Get(0).(int32), args.Error(1)
}

type MockRuleService struct {
	mock.Mock
}

func (m *MockRuleService) GetRule(ctx context.Context) (*domain.FineRule, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FineRule), args.Error(1)
}
func (m *MockRuleService) UpdateRule(ctx context.Context, role domain.Role, rule *domain.FineRule) (*domain.FineRule, error) {
	args := m.Called(ctx, role, rule)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.FineRule), args.Error(1)
}

type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) GetBook(ctx context.Context, id int32) (*domain.Book, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Book), args.Error(1)
}
func (m *MockCatalogService) ListBooks(ctx context.Context, page, pageSize int32) ([]domain.Book, int32, error) {
	args := m.Called(ctx, page, pageSize)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int32), args.Error(2)
	}
	return args.Get(0).([]domain.Book), args.Get(1).(int32), args.Error(2)
}
