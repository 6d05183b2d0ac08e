package service

import (
	"context"
	"fmt"

	"sunlight-vm-backend/internal/domain"
	"sunlight-vm-backend/internal/repository"
	"sunlight-vm-backend/internal/state"
)

type sessionLogService struct {
	repo repository.SessionLogRepository
}

func NewSessionLogService(repo repository.SessionLogRepository) SessionLogService {
	return &sessionLogService{repo: repo}
}

func (s *sessionLogService) Delete(ctx context.Context, st *state.Store, id string) error {
	col := &st.SessionLogs
	col.BeginMutation()
	defer col.EndMutation()

	prev, idx, ok := col.Remove(id)
	if !ok {
		return fmt.Errorf("%w: session log %s", domain.ErrNotFound, id)
	}
	return persist("session_log", "delete",
		func() { col.InsertAt(idx, prev) },
		func() error { return s.repo.Delete(ctx, id) })
}

func (s *sessionLogService) List(st *state.Store) []domain.SessionLog {
	return st.SessionLogs.Snapshot()
}
