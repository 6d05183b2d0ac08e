package service

import "sunlight-vm-backend/internal/domain"

// persist runs the remote leg of an optimistic mutation. The local change
// has already been applied by the caller; when the remote call fails the
// rollback is executed and the failure is wrapped as a PersistenceError so
// the caller never observes a phantom local success.
func persist(kind, op string, rollback func(), remote func() error) error {
	if err := remote(); err != nil {
		rollback()
		return &domain.PersistenceError{Kind: kind, Op: op, Err: err}
	}
	return nil
}
