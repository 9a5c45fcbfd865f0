package service

import (
	"context"
	"errors"
	"fmt"

	"steelcatalog/internal/model"
	"steelcatalog/internal/repository"

	"gorm.io/gorm"
)

// AdminIdentity is attached to admin requests once the gate lets them through
type AdminIdentity struct {
	FirebaseUID string `json:"firebaseUid"`
	Role        string `json:"role"`
	IsActive    bool   `json:"isActive"`
}

type CheckAdminRequest struct {
	FirebaseUID string `json:"firebaseUid" binding:"required"`
}

type CheckAdminResponse struct {
	IsAdmin  bool `json:"isAdmin"`
	IsActive bool `json:"isActive"`
}

type AuthService interface {
	CheckAdmin(ctx context.Context, firebaseUID string) (CheckAdminResponse, error)
	AuthorizeAdmin(ctx context.Context, firebaseUID string) (AdminIdentity, error)
}

type authService struct {
	userRepo repository.UserRepository
}

func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// CheckAdmin never fails for an unknown uid; it reports false for both flags.
func (s *authService) CheckAdmin(ctx context.Context, firebaseUID string) (CheckAdminResponse, error) {
	if firebaseUID == "" {
		return CheckAdminResponse{}, invalidf("Missing required fields")
	}
	user, err := s.userRepo.GetByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return CheckAdminResponse{}, nil
		}
		return CheckAdminResponse{}, fmt.Errorf("failed to look up user: %w", err)
	}
	return CheckAdminResponse{
		IsAdmin:  user.Role == model.RoleAdmin && user.IsActive,
		IsActive: user.IsActive,
	}, nil
}

// AuthorizeAdmin returns ErrUnauthorized for a missing or unknown uid and
// ErrForbidden for an inactive or non-admin user.
func (s *authService) AuthorizeAdmin(ctx context.Context, firebaseUID string) (AdminIdentity, error) {
	if firebaseUID == "" {
		return AdminIdentity{}, fmt.Errorf("%w: No Firebase UID provided", ErrUnauthorized)
	}
	user, err := s.userRepo.GetByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return AdminIdentity{}, fmt.Errorf("%w: User not found", ErrUnauthorized)
		}
		return AdminIdentity{}, fmt.Errorf("failed to look up user: %w", err)
	}
	if !user.IsActive {
		return AdminIdentity{}, fmt.Errorf("%w: Account is inactive", ErrForbidden)
	}
	if user.Role != model.RoleAdmin {
		return AdminIdentity{}, fmt.Errorf("%w: Admin access required", ErrForbidden)
	}
	return AdminIdentity{FirebaseUID: firebaseUID, Role: user.Role, IsActive: user.IsActive}, nil
}
