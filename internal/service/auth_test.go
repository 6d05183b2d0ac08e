package service

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/security"
	"sunlight-vm-backend/internal/state"
)

type authFixture struct {
	userRepo       *MockUserRepo
	sessionLogRepo *MockSessionLogRepo
	unitRepo       *MockUnitRepo
	bookingRepo    *MockBookingRepo
	expenseRepo    *MockExpenseRepo
	subRepo        *MockSubscriptionRepo
	sessions       *state.Manager
	tokens         security.TokenManager
	svc            AuthService
}

func newAuthFixture() *authFixture {
	f := &authFixture{
		userRepo:       new(MockUserRepo),
		sessionLogRepo: new(MockSessionLogRepo),
		unitRepo:       new(MockUnitRepo),
		bookingRepo:    new(MockBookingRepo),
		expenseRepo:    new(MockExpenseRepo),
		subRepo:        new(MockSubscriptionRepo),
		sessions:       state.NewManager(),
		tokens:         security.NewTokenManager("test-secret", time.Hour, 24*time.Hour),
	}
	f.svc = NewAuthService(
		f.userRepo, f.sessionLogRepo, f.unitRepo, f.bookingRepo,
		f.expenseRepo, f.subRepo, f.sessions, f.tokens,
	)
	return f
}

func testUser(role domain.UserRole, password string) *domain.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	return &domain.User{
		ID:           "user-1",
		Name:         "Test User",
		Email:        "user@test.com",
		PasswordHash: string(hash),
		Role:         role,
	}
}

func (f *authFixture) expectHydration() {
	f.unitRepo.On("ListAll", mock.Anything).Return([]domain.Unit{{ID: "u1", Name: "Palm Chalet"}}, nil)
	f.bookingRepo.On("ListAll", mock.Anything).Return([]domain.Booking{{ID: "b1", UnitID: "u1"}}, nil)
	f.expenseRepo.On("ListAll", mock.Anything).Return([]domain.Expense{}, nil)
	f.subRepo.On("ListAll", mock.Anything).Return([]domain.Subscription{{ID: "s1"}}, nil)
	f.sessionLogRepo.On("ListAll", mock.Anything).Return([]domain.SessionLog{}, nil)
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("AdminHydratesEverything", func(t *testing.T) {
		f := newAuthFixture()
		user := testUser(domain.UserRoleAdmin, "secret-pass")

		f.userRepo.On("GetByEmail", ctx, "user@test.com").Return(user, nil)
		f.sessionLogRepo.On("Insert", ctx, mock.AnythingOfType("*domain.SessionLog")).Return(nil)
		f.expectHydration()

		res, err := f.svc.Login(ctx, "user@test.com", "secret-pass", DeviceInfo{DeviceID: "dev-1"})
		assert.NoError(t, err)
		assert.NotEmpty(t, res.AccessToken)
		assert.NotEmpty(t, res.RefreshToken)
		assert.NotEmpty(t, res.SessionID)

		st, ok := f.sessions.Get(res.SessionID)
		assert.True(t, ok)
		assert.Equal(t, 1, st.Units.Len())
		assert.Equal(t, 1, st.Bookings.Len())
		assert.Equal(t, 1, st.Subscriptions.Len())

		claims, err := f.tokens.ValidateToken(res.AccessToken)
		assert.NoError(t, err)
		assert.Equal(t, res.SessionID, claims.SessionID)
		assert.Equal(t, "ADMIN", claims.Role)
	})

	t.Run("OwnerSkipsAdminLists", func(t *testing.T) {
		f := newAuthFixture()
		user := testUser(domain.UserRoleOwner, "secret-pass")

		f.userRepo.On("GetByEmail", ctx, "user@test.com").Return(user, nil)
		f.sessionLogRepo.On("Insert", ctx, mock.AnythingOfType("*domain.SessionLog")).Return(nil)
		f.unitRepo.On("ListAll", mock.Anything).Return([]domain.Unit{{ID: "u1"}}, nil)
		f.bookingRepo.On("ListAll", mock.Anything).Return([]domain.Booking{}, nil)
		f.expenseRepo.On("ListAll", mock.Anything).Return([]domain.Expense{}, nil)

		res, err := f.svc.Login(ctx, "user@test.com", "secret-pass", DeviceInfo{})
		assert.NoError(t, err)

		st, _ := f.sessions.Get(res.SessionID)
		assert.Equal(t, 0, st.Subscriptions.Len())
		f.subRepo.AssertNotCalled(t, "ListAll", mock.Anything)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		f := newAuthFixture()
		user := testUser(domain.UserRoleOwner, "secret-pass")

		f.userRepo.On("GetByEmail", ctx, "user@test.com").Return(user, nil)

		_, err := f.svc.Login(ctx, "user@test.com", "wrong", DeviceInfo{})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
		assert.Equal(t, 0, f.sessions.Count())
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.On("GetByEmail", ctx, "ghost@test.com").Return(nil, sql.ErrNoRows)

		_, err := f.svc.Login(ctx, "ghost@test.com", "whatever", DeviceInfo{})
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}

func TestAuthService_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("KeepsSessionIdentity", func(t *testing.T) {
		f := newAuthFixture()
		user := testUser(domain.UserRoleOwner, "secret-pass")

		f.userRepo.On("GetByEmail", ctx, "user@test.com").Return(user, nil)
		f.userRepo.On("GetByID", ctx, "user-1").Return(user, nil)
		f.sessionLogRepo.On("Insert", ctx, mock.AnythingOfType("*domain.SessionLog")).Return(nil)
		f.unitRepo.On("ListAll", mock.Anything).Return([]domain.Unit{}, nil)
		f.bookingRepo.On("ListAll", mock.Anything).Return([]domain.Booking{}, nil)
		f.expenseRepo.On("ListAll", mock.Anything).Return([]domain.Expense{}, nil)

		res, err := f.svc.Login(ctx, "user@test.com", "secret-pass", DeviceInfo{})
		assert.NoError(t, err)

		access, err := f.svc.Refresh(ctx, res.RefreshToken)
		assert.NoError(t, err)

		claims, err := f.tokens.ValidateToken(access)
		assert.NoError(t, err)
		assert.Equal(t, res.SessionID, claims.SessionID)
		assert.Equal(t, security.TokenTypeAccess, claims.Type)
	})

	t.Run("AccessTokenRejected", func(t *testing.T) {
		f := newAuthFixture()
		access, _ := f.tokens.GenerateAccessToken("user-1", "user@test.com", "OWNER", "sess-1")

		_, err := f.svc.Refresh(ctx, access)
		assert.ErrorIs(t, err, security.ErrWrongTokenType)
	})

	t.Run("DeadSessionRejected", func(t *testing.T) {
		f := newAuthFixture()
		refresh, _ := f.tokens.GenerateRefreshToken("user-1", "user@test.com", "sess-gone")

		_, err := f.svc.Refresh(ctx, refresh)
		assert.Error(t, err)
	})
}

func TestAuthService_Logout(t *testing.T) {
	f := newAuthFixture()
	f.sessions.Put(state.NewStore("sess-1", "user-1"))

	assert.NoError(t, f.svc.Logout(context.Background(), "sess-1"))
	_, ok := f.sessions.Get("sess-1")
	assert.False(t, ok)
}

func TestAuthService_CreateUser(t *testing.T) {
	ctx := context.Background()

	t.Run("HashesPassword", func(t *testing.T) {
		f := newAuthFixture()
		f.userRepo.On("Insert", ctx, mock.AnythingOfType("*domain.User")).Return(nil)

		user, err := f.svc.CreateUser(ctx, "New Owner", "owner@test.com", "plain-pass", domain.UserRoleOwner)
		assert.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.NotEqual(t, "plain-pass", user.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("plain-pass")))
	})

	t.Run("InvalidRole", func(t *testing.T) {
		f := newAuthFixture()
		_, err := f.svc.CreateUser(ctx, "X", "x@test.com", "pass", "SUPERUSER")
		assert.Error(t, err)
	})
}
