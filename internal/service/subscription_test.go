package service

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/state"
)

func TestSubscriptionService_Create(t *testing.T) {
	ctx := context.Background()
	owner := &domain.User{ID: "user-2", Name: "Owner", Email: "owner@test.com", Role: domain.UserRoleOwner}

	t.Run("Success", func(t *testing.T) {
		repo := new(MockSubscriptionRepo)
		userRepo := new(MockUserRepo)
		svc := NewSubscriptionService(repo, userRepo)
		st := state.NewStore("sess-1", "user-1")

		userRepo.On("GetByID", ctx, "user-2").Return(owner, nil)
		repo.On("Insert", ctx, mock.AnythingOfType("*domain.Subscription")).Return(nil)

		sub := &domain.Subscription{
			UserID:       "user-2",
			StartDate:    "2026-01-01",
			DurationDays: 30,
			Price:        1200,
			Status:       domain.SubscriptionStatusActive,
		}
		assert.NoError(t, svc.Create(ctx, st, sub))
		assert.NotEmpty(t, sub.ID)
		assert.Equal(t, 1, st.Subscriptions.Len())
	})

	t.Run("ExpiredIsNotStorable", func(t *testing.T) {
		svc := NewSubscriptionService(new(MockSubscriptionRepo), new(MockUserRepo))
		st := state.NewStore("sess-1", "user-1")

		sub := &domain.Subscription{
			UserID:       "user-2",
			StartDate:    "2026-01-01",
			DurationDays: 30,
			Status:       domain.SubscriptionStatusExpired,
		}
		assert.Error(t, svc.Create(ctx, st, sub))
		assert.Equal(t, 0, st.Subscriptions.Len())
	})

	t.Run("UnknownUser", func(t *testing.T) {
		repo := new(MockSubscriptionRepo)
		userRepo := new(MockUserRepo)
		svc := NewSubscriptionService(repo, userRepo)
		st := state.NewStore("sess-1", "user-1")

		userRepo.On("GetByID", ctx, "ghost").Return(nil, sql.ErrNoRows)

		sub := &domain.Subscription{
			UserID:       "ghost",
			StartDate:    "2026-01-01",
			DurationDays: 30,
			Status:       domain.SubscriptionStatusActive,
		}
		assert.ErrorIs(t, svc.Create(ctx, st, sub), domain.ErrNotFound)
	})

	t.Run("RemoteFailureRollsBack", func(t *testing.T) {
		repo := new(MockSubscriptionRepo)
		userRepo := new(MockUserRepo)
		svc := NewSubscriptionService(repo, userRepo)
		st := state.NewStore("sess-1", "user-1")

		userRepo.On("GetByID", ctx, "user-2").Return(owner, nil)
		repo.On("Insert", ctx, mock.AnythingOfType("*domain.Subscription")).Return(errors.New("boom"))

		sub := &domain.Subscription{
			UserID:       "user-2",
			StartDate:    "2026-01-01",
			DurationDays: 30,
			Status:       domain.SubscriptionStatusActive,
		}
		var perr *domain.PersistenceError
		assert.ErrorAs(t, svc.Create(ctx, st, sub), &perr)
		assert.Equal(t, 0, st.Subscriptions.Len())
	})
}

func TestSubscriptionService_UpdateDelete(t *testing.T) {
	ctx := context.Background()
	owner := &domain.User{ID: "user-2", Name: "Owner", Email: "owner@test.com", Role: domain.UserRoleOwner}
	stored := domain.Subscription{
		ID: "s1", UserID: "user-2", StartDate: "2026-01-01", DurationDays: 30,
		Price: 1200, Status: domain.SubscriptionStatusActive,
	}

	t.Run("PauseAndResume", func(t *testing.T) {
		repo := new(MockSubscriptionRepo)
		userRepo := new(MockUserRepo)
		svc := NewSubscriptionService(repo, userRepo)
		st := state.NewStore("sess-1", "user-1")
		st.Subscriptions.Reset([]domain.Subscription{stored})

		userRepo.On("GetByID", ctx, "user-2").Return(owner, nil)
		repo.On("Update", ctx, mock.AnythingOfType("*domain.Subscription")).Return(nil)

		paused := stored
		paused.Status = domain.SubscriptionStatusPaused
		assert.NoError(t, svc.Update(ctx, st, &paused))

		got, _ := st.Subscriptions.Get("s1")
		assert.Equal(t, domain.SubscriptionStatusPaused, got.Status)

		resumed := paused
		resumed.Status = domain.SubscriptionStatusActive
		assert.NoError(t, svc.Update(ctx, st, &resumed))

		got, _ = st.Subscriptions.Get("s1")
		assert.Equal(t, domain.SubscriptionStatusActive, got.Status)
	})

	t.Run("DeleteRollsBackOnFailure", func(t *testing.T) {
		repo := new(MockSubscriptionRepo)
		svc := NewSubscriptionService(repo, new(MockUserRepo))
		st := state.NewStore("sess-1", "user-1")
		st.Subscriptions.Reset([]domain.Subscription{stored})

		repo.On("Delete", ctx, "s1").Return(errors.New("boom"))

		var perr *domain.PersistenceError
		assert.ErrorAs(t, svc.Delete(ctx, st, "s1"), &perr)
		assert.Equal(t, 1, st.Subscriptions.Len())
	})
}
