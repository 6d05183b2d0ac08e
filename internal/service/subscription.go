package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/repository"
	"sunlight-vm-backend/internal/state"
)

type subscriptionService struct {
	repo     repository.SubscriptionRepository
	userRepo repository.UserRepository
}

func NewSubscriptionService(repo repository.SubscriptionRepository, userRepo repository.UserRepository) SubscriptionService {
	return &subscriptionService{repo: repo, userRepo: userRepo}
}

func (s *subscriptionService) Create(ctx context.Context, st *state.Store, sub *domain.Subscription) error {
	col := &st.Subscriptions
	col.BeginMutation()
	defer col.EndMutation()

	if err := s.validate(ctx, sub); err != nil {
		return err
	}
	sub.ID = uuid.NewString()
	sub.CreatedOn = time.Now().UTC().Format(time.RFC3339)

	col.InsertHead(*sub)
	return persist("subscription", "insert",
		func() { col.Remove(sub.ID) },
		func() error { return s.repo.Insert(ctx, sub) })
}

func (s *subscriptionService) Update(ctx context.Context, st *state.Store, sub *domain.Subscription) error {
	col := &st.Subscriptions
	col.BeginMutation()
	defer col.EndMutation()

	if err := s.validate(ctx, sub); err != nil {
		return err
	}
	prev, ok := col.Replace(*sub)
	if !ok {
		return fmt.Errorf("%w: subscription %s", domain.ErrNotFound, sub.ID)
	}
	// Identity is immutable; carry the original creation timestamp forward.
	sub.CreatedOn = prev.CreatedOn
	col.Replace(*sub)
	return persist("subscription", "update",
		func() { col.Replace(prev) },
		func() error { return s.repo.Update(ctx, sub) })
}

func (s *subscriptionService) Delete(ctx context.Context, st *state.Store, id string) error {
	col := &st.Subscriptions
	col.BeginMutation()
	defer col.EndMutation()

	prev, idx, ok := col.Remove(id)
	if !ok {
		return fmt.Errorf("%w: subscription %s", domain.ErrNotFound, id)
	}
	return persist("subscription", "delete",
		func() { col.InsertAt(idx, prev) },
		func() error { return s.repo.Delete(ctx, id) })
}

func (s *subscriptionService) List(st *state.Store) []domain.Subscription {
	return st.Subscriptions.Snapshot()
}

func (s *subscriptionService) validate(ctx context.Context, sub *domain.Subscription) error {
	if sub.DurationDays <= 0 {
		return fmt.Errorf("subscription duration must be positive, got %d", sub.DurationDays)
	}
	// EXPIRED is derived, never stored.
	if !domain.ValidStoredSubscriptionStatus(sub.Status) {
		return fmt.Errorf("invalid subscription status %q", sub.Status)
	}
	if _, err := s.userRepo.GetByID(ctx, sub.UserID); err != nil {
		return fmt.Errorf("%w: user %s", domain.ErrNotFound, sub.UserID)
	}
	return nil
}
