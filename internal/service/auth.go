package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/logger"
	"sunlight-vm-backend/internal/repository"
	"sunlight-vm-backend/internal/security"
	"sunlight-vm-backend/internal/state"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type authService struct {
	userRepo         repository.UserRepository
	sessionLogRepo   repository.SessionLogRepository
	unitRepo         repository.UnitRepository
	bookingRepo      repository.BookingRepository
	expenseRepo      repository.ExpenseRepository
	subscriptionRepo repository.SubscriptionRepository
	sessions         *state.Manager
	tokens           security.TokenManager
}

func NewAuthService(
	userRepo repository.UserRepository,
	sessionLogRepo repository.SessionLogRepository,
	unitRepo repository.UnitRepository,
	bookingRepo repository.BookingRepository,
	expenseRepo repository.ExpenseRepository,
	subscriptionRepo repository.SubscriptionRepository,
	sessions *state.Manager,
	tokens security.TokenManager,
) AuthService {
	return &authService{
		userRepo:         userRepo,
		sessionLogRepo:   sessionLogRepo,
		unitRepo:         unitRepo,
		bookingRepo:      bookingRepo,
		expenseRepo:      expenseRepo,
		subscriptionRepo: subscriptionRepo,
		sessions:         sessions,
		tokens:           tokens,
	}
}

// Login authenticates the user, records a session log, hydrates a fresh
// session store from the remote lists and registers it. The working set
// exists only between login and logout.
func (s *authService) Login(ctx context.Context, email, password string, device DeviceInfo) (*LoginResult, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	sessionID := uuid.NewString()
	access, err := s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role), sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}
	refresh, err := s.tokens.GenerateRefreshToken(user.ID, user.Email, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to sign refresh token: %w", err)
	}

	now := time.Now().UTC().Format(time.RFC3339)
	log := &domain.SessionLog{
		ID:           sessionID,
		UserID:       user.ID,
		DeviceID:     device.DeviceID,
		UserAgent:    device.UserAgent,
		IPAddress:    device.IPAddress,
		LoginAt:      now,
		LastActiveAt: now,
	}
	if err := s.sessionLogRepo.Insert(ctx, log); err != nil {
		return nil, fmt.Errorf("failed to record session: %w", err)
	}

	st, err := s.hydrate(ctx, sessionID, user)
	if err != nil {
		return nil, err
	}
	s.sessions.Put(st)

	logger.Info("Session opened", "user_id", user.ID, "session_id", sessionID)
	return &LoginResult{User: user, AccessToken: access, RefreshToken: refresh, SessionID: sessionID}, nil
}

// hydrate fetches every entity list the user may see. Admin sessions also
// carry the subscription and session-log working sets.
func (s *authService) hydrate(ctx context.Context, sessionID string, user *domain.User) (*state.Store, error) {
	st := state.NewStore(sessionID, user.ID)

	units, err := s.unitRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load units: %w", err)
	}
	st.Units.Reset(units)

	bookings, err := s.bookingRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load bookings: %w", err)
	}
	st.Bookings.Reset(bookings)

	expenses, err := s.expenseRepo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	st.Expenses.Reset(expenses)

	if user.Role == domain.UserRoleAdmin {
		subs, err := s.subscriptionRepo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load subscriptions: %w", err)
		}
		st.Subscriptions.Reset(subs)

		logs, err := s.sessionLogRepo.ListAll(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to load session logs: %w", err)
		}
		st.SessionLogs.Reset(logs)
	}
	return st, nil
}

// Refresh issues a new access token against the same session, keeping the
// hydrated working set alive.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.ValidateToken(refreshToken)
	if err != nil {
		return "", err
	}
	if claims.Type != security.TokenTypeRefresh {
		return "", security.ErrWrongTokenType
	}
	if _, ok := s.sessions.Get(claims.SessionID); !ok {
		return "", fmt.Errorf("session %s is no longer active", claims.SessionID)
	}
	user, err := s.userRepo.GetByID(ctx, claims.UserID)
	if err != nil {
		return "", fmt.Errorf("failed to load user: %w", err)
	}
	return s.tokens.GenerateAccessToken(user.ID, user.Email, string(user.Role), claims.SessionID)
}

// Logout discards the session's working set. The next login rehydrates
// everything from the remote store.
func (s *authService) Logout(ctx context.Context, sessionID string) error {
	s.sessions.Remove(sessionID)
	logger.Info("Session closed", "session_id", sessionID)
	return nil
}

func (s *authService) CreateUser(ctx context.Context, name, email, password string, role domain.UserRole) (*domain.User, error) {
	if role != domain.UserRoleAdmin && role != domain.UserRoleOwner {
		return nil, fmt.Errorf("invalid role %q", role)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	user := &domain.User{
		ID:           uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedOn:    time.Now().UTC().Format(time.RFC3339),
	}
	if err := s.userRepo.Insert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return user, nil
}

// TouchSession refreshes the session log's last-active timestamp. Failures
// are logged and dropped; activity tracking never blocks a request.
func (s *authService) TouchSession(ctx context.Context, sessionID string) {
	now := time.Now().UTC().Format(time.RFC3339)
	if err := s.sessionLogRepo.Touch(ctx, sessionID, now); err != nil {
		logger.Warn("Failed to touch session log", "session_id", sessionID, "error", err)
	}
}
