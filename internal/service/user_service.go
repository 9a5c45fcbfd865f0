package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"steelcatalog/internal/events"
	"steelcatalog/internal/model"
	"steelcatalog/internal/repository"
)

const defaultPhone = "0000000000"

// DTOs for Request validation
type RegisterUserRequest struct {
	FirebaseUID string `json:"firebase_uid" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	FirstName   string `json:"firstName"`
	LastName    string `json:"lastName"`
	Phone       string `json:"phone"`
	Company     string `json:"company"`
	GSTNumber   string `json:"gst_number"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required,oneof=client admin logistics"`
}

// ListUsersQuery carries the raw admin listing parameters; Limit and Offset are already clamped.
type ListUsersQuery struct {
	Status    string
	Role      string
	Timeframe string
	SortBy    string
	Order     string
	Limit     int
	Offset    int
}

type UserResponse struct {
	UserID      uint       `json:"user_id"`
	FirebaseUID string     `json:"firebase_uid"`
	Email       string     `json:"email"`
	FullName    string     `json:"full_name"`
	Phone       string     `json:"phone"`
	CompanyName *string    `json:"company_name"`
	GSTNumber   *string    `json:"gst_number"`
	Role        string     `json:"role"`
	IsActive    bool       `json:"is_active"`
	LastLogin   *time.Time `json:"last_login"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type ToggleStatusResponse struct {
	Success  bool `json:"success"`
	IsActive bool `json:"isActive"`
}

type UpdateRoleResponse struct {
	Success bool   `json:"success"`
	Role    string `json:"role"`
}

// UserService defines the interface for business logic related to User
type UserService interface {
	RegisterUser(ctx context.Context, req RegisterUserRequest) (UserResponse, error)
	UserExists(ctx context.Context, firebaseUID string) (bool, error)
	ListUsers(ctx context.Context, q ListUsersQuery) ([]UserResponse, error)
	ToggleStatus(ctx context.Context, actorUID string, id uint) (ToggleStatusResponse, error)
	UpdateRole(ctx context.Context, actorUID string, id uint, role string) (UpdateRoleResponse, error)
	Stats(ctx context.Context) (model.UserStats, error)
}

type userService struct {
	repo      repository.UserRepository
	auditRepo repository.AuditRepository
	txManager repository.TransactionManager
	publisher events.Publisher
	now       func() time.Time
}

// NewUserService creates a new UserService
func NewUserService(
	repo repository.UserRepository,
	auditRepo repository.AuditRepository,
	txManager repository.TransactionManager,
	publisher events.Publisher,
) UserService {
	return &userService{
		repo:      repo,
		auditRepo: auditRepo,
		txManager: txManager,
		publisher: publisher,
		now:       func() time.Time { return time.Now().UTC() },
	}
}

// sortable columns of the admin listing
var userSortColumns = map[string]bool{
	"user_id":    true,
	"email":      true,
	"full_name":  true,
	"role":       true,
	"is_active":  true,
	"last_login": true,
	"created_at": true,
}

func monthStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
}

func (s *userService) RegisterUser(ctx context.Context, req RegisterUserRequest) (UserResponse, error) {
	req.FirebaseUID = strings.TrimSpace(req.FirebaseUID)
	req.Email = strings.TrimSpace(req.Email)
	if req.FirebaseUID == "" || req.Email == "" {
		return UserResponse{}, invalidf("firebase_uid and email are required")
	}

	firstName := strings.TrimSpace(req.FirstName)
	if firstName == "" {
		firstName = "User"
	}
	phone := strings.TrimSpace(req.Phone)
	if phone == "" {
		phone = defaultPhone
	}
	lastLogin := s.now()

	user := &model.User{
		FirebaseUID: req.FirebaseUID,
		Email:       req.Email,
		FullName:    strings.TrimSpace(firstName + " " + strings.TrimSpace(req.LastName)),
		Phone:       phone,
		CompanyName: optionalString(req.Company),
		GSTNumber:   optionalString(req.GSTNumber),
		Role:        model.RoleClient,
		IsActive:    true,
		LastLogin:   &lastLogin,
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		exists, err := s.repo.ExistsByFirebaseUID(txCtx, user.FirebaseUID)
		if err != nil {
			return fmt.Errorf("failed to check user: %w", err)
		}
		if exists {
			return fmt.Errorf("%w: user %q already registered", ErrConflict, user.FirebaseUID)
		}
		if err := s.repo.Create(txCtx, user); err != nil {
			if isDuplicate(err) {
				return fmt.Errorf("%w: user %q already registered", ErrConflict, user.FirebaseUID)
			}
			return fmt.Errorf("failed to create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return UserResponse{}, err
	}
	return toUserResponse(*user), nil
}

func (s *userService) UserExists(ctx context.Context, firebaseUID string) (bool, error) {
	exists, err := s.repo.ExistsByFirebaseUID(ctx, firebaseUID)
	if err != nil {
		return false, fmt.Errorf("failed to check user: %w", err)
	}
	return exists, nil
}

func (s *userService) ListUsers(ctx context.Context, q ListUsersQuery) ([]UserResponse, error) {
	filter := repository.UserFilter{
		SortBy: "created_at",
		Desc:   true,
		Limit:  q.Limit,
		Offset: q.Offset,
	}

	switch q.Status {
	case "":
	case "active", "inactive":
		active := q.Status == "active"
		filter.IsActive = &active
	default:
		return nil, invalidf("status must be active or inactive")
	}

	if q.Role != "" {
		if !model.IsValidRole(q.Role) {
			return nil, invalidf("role must be one of: client, admin, logistics")
		}
		filter.Role = q.Role
	}

	switch q.Timeframe {
	case "":
	case "this_month":
		since := monthStart(s.now())
		filter.CreatedSince = &since
	default:
		return nil, invalidf("timeframe must be this_month")
	}

	if q.SortBy != "" {
		if !userSortColumns[q.SortBy] {
			return nil, invalidf("sortBy %q is not a sortable column", q.SortBy)
		}
		filter.SortBy = q.SortBy
	}
	switch strings.ToUpper(q.Order) {
	case "", "DESC":
		filter.Desc = true
	case "ASC":
		filter.Desc = false
	default:
		return nil, invalidf("order must be ASC or DESC")
	}

	users, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch users: %w", err)
	}
	res := make([]UserResponse, 0, len(users))
	for _, u := range users {
		res = append(res, toUserResponse(u))
	}
	return res, nil
}

// ToggleStatus flips is_active with the read and the write in one transaction
func (s *userService) ToggleStatus(ctx context.Context, actorUID string, id uint) (ToggleStatusResponse, error) {
	var newStatus bool
	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		user, err := s.repo.GetByID(txCtx, id)
		if err != nil {
			return notFoundOr(err, "user", "fetch user")
		}
		newStatus = !user.IsActive
		if err := s.repo.SetActive(txCtx, id, newStatus); err != nil {
			return notFoundOr(err, "user", "toggle user status")
		}
		return recordAudit(txCtx, s.auditRepo, actorUID, model.ActionToggleUserStatus, model.EntityUser, id,
			map[string]interface{}{"firebase_uid": user.FirebaseUID, "is_active": newStatus})
	})
	if err != nil {
		return ToggleStatusResponse{}, err
	}

	publish(ctx, s.publisher, events.New(model.EventUserStatusChanged, id, actorUID, map[string]bool{"is_active": newStatus}))
	return ToggleStatusResponse{Success: true, IsActive: newStatus}, nil
}

func (s *userService) UpdateRole(ctx context.Context, actorUID string, id uint, role string) (UpdateRoleResponse, error) {
	if !model.IsValidRole(role) {
		return UpdateRoleResponse{}, invalidf("role must be one of: client, admin, logistics")
	}

	err := s.txManager.RunInTx(ctx, func(txCtx context.Context) error {
		if err := s.repo.SetRole(txCtx, id, role); err != nil {
			return notFoundOr(err, "user", "update role")
		}
		return recordAudit(txCtx, s.auditRepo, actorUID, model.ActionUpdateUserRole, model.EntityUser, id,
			map[string]string{"role": role})
	})
	if err != nil {
		return UpdateRoleResponse{}, err
	}

	publish(ctx, s.publisher, events.New(model.EventUserRoleChanged, id, actorUID, map[string]string{"role": role}))
	return UpdateRoleResponse{Success: true, Role: role}, nil
}

func (s *userService) Stats(ctx context.Context) (model.UserStats, error) {
	stats, err := s.repo.Stats(ctx, monthStart(s.now()))
	if err != nil {
		return model.UserStats{}, fmt.Errorf("failed to fetch user statistics: %w", err)
	}
	return *stats, nil
}

func optionalString(v string) *string {
	v = strings.TrimSpace(v)
	if v == "" {
		return nil
	}
	return &v
}

func toUserResponse(u model.User) UserResponse {
	return UserResponse{
		UserID:      u.UserID,
		FirebaseUID: u.FirebaseUID,
		Email:       u.Email,
		FullName:    u.FullName,
		Phone:       u.Phone,
		CompanyName: u.CompanyName,
		GSTNumber:   u.GSTNumber,
		Role:        u.Role,
		IsActive:    u.IsActive,
		LastLogin:   u.LastLogin,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}
