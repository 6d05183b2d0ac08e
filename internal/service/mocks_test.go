package service

import (
	"context"

	"github.com/stretchr/testify/mock"

	"sunlight-vm-backend/internal/domain"
)

// MockUnitRepo
type MockUnitRepo struct {
	mock.Mock
}

func (m *MockUnitRepo) Insert(ctx context.Context, u *domain.Unit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUnitRepo) Update(ctx context.Context, u *domain.Unit) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUnitRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockUnitRepo) ListAll(ctx context.Context) ([]domain.Unit, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Unit), args.Error(1)
}

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) Insert(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) Update(ctx context.Context, b *domain.Booking) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}
func (m *MockBookingRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBookingRepo) ListAll(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}

// MockExpenseRepo
type MockExpenseRepo struct {
	mock.Mock
}

func (m *MockExpenseRepo) Insert(ctx context.Context, e *domain.Expense) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockExpenseRepo) Update(ctx context.Context, e *domain.Expense) error {
	args := m.Called(ctx, e)
	return args.Error(0)
}
func (m *MockExpenseRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockExpenseRepo) ListAll(ctx context.Context) ([]domain.Expense, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Expense), args.Error(1)
}

// MockSubscriptionRepo
type MockSubscriptionRepo struct {
	mock.Mock
}

func (m *MockSubscriptionRepo) Insert(ctx context.Context, s *domain.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSubscriptionRepo) Update(ctx context.Context, s *domain.Subscription) error {
	args := m.Called(ctx, s)
	return args.Error(0)
}
func (m *MockSubscriptionRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSubscriptionRepo) ListAll(ctx context.Context) ([]domain.Subscription, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Subscription), args.Error(1)
}
func (m *MockSubscriptionRepo) ListEndingBetween(ctx context.Context, from, to string) ([]domain.Subscription, error) {
	args := m.Called(ctx, from, to)
	return args.Get(0).([]domain.Subscription), args.Error(1)
}

// MockSessionLogRepo
type MockSessionLogRepo struct {
	mock.Mock
}

func (m *MockSessionLogRepo) Insert(ctx context.Context, l *domain.SessionLog) error {
	args := m.Called(ctx, l)
	return args.Error(0)
}
func (m *MockSessionLogRepo) Touch(ctx context.Context, id, lastActiveAt string) error {
	args := m.Called(ctx, id, lastActiveAt)
	return args.Error(0)
}
func (m *MockSessionLogRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockSessionLogRepo) DeleteIdleBefore(ctx context.Context, cutoff string) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockSessionLogRepo) ListAll(ctx context.Context) ([]domain.SessionLog, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.SessionLog), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Insert(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) ListAll(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.User), args.Error(1)
}
