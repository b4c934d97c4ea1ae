package service

import (
	"campuskit/lms-app/internal/domain"
	"campuskit/lms-app/internal/repository"
	"context"
	"errors"
)

var ErrInvalidStatus = errors.New("invalid account status")

// AdminService handles moderation of user accounts.
type AdminService interface {
	ListUsers(ctx context.Context) ([]domain.User, error)
	// SetUserStatus updates the account status. Suspension takes effect on
	// the user's next authenticated request; no token revocation is needed.
	SetUserStatus(ctx context.Context, userID string, status domain.Status) error
}

type adminService struct {
	userRepo repository.UserRepository
}

// NewAdminService creates a new instance of adminService.
func NewAdminService(userRepo repository.UserRepository) AdminService {
	return &adminService{userRepo: userRepo}
}

// ListUsers returns the full user list. Password hashes stay out of responses
// at the handler layer.
func (s *adminService) ListUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.List(ctx)
}

// SetUserStatus validates and applies a status change.
func (s *adminService) SetUserStatus(ctx context.Context, userID string, status domain.Status) error {
	if !domain.ValidStatus(status) {
		return ErrInvalidStatus
	}
	if err := s.userRepo.UpdateStatus(ctx, userID, status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	return nil
}
