package repository

import (
	"context"
	"time"

	"steelcatalog/internal/model"

	"gorm.io/gorm"
)

// UserFilter narrows the admin user listing. SortBy must already be an allowed column.
type UserFilter struct {
	IsActive     *bool
	Role         string
	CreatedSince *time.Time
	SortBy       string
	Desc         bool
	Limit        int
	Offset       int
}

// UserRepository defines the interface for data access of User entities
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	GetByID(ctx context.Context, id uint) (*model.User, error)
	GetByFirebaseUID(ctx context.Context, uid string) (*model.User, error)
	ExistsByFirebaseUID(ctx context.Context, uid string) (bool, error)
	List(ctx context.Context, filter UserFilter) ([]model.User, error)
	SetActive(ctx context.Context, id uint, active bool) error
	SetRole(ctx context.Context, id uint, role string) error
	Stats(ctx context.Context, monthStart time.Time) (*model.UserStats, error)
}

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns a new instance of UserRepository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *model.User) error {
	return GetDB(ctx, r.db).Create(user).Error
}

func (r *userRepository) GetByID(ctx context.Context, id uint) (*model.User, error) {
	var user model.User
	if err := GetDB(ctx, r.db).First(&user, "user_id = ?", id).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByFirebaseUID(ctx context.Context, uid string) (*model.User, error) {
	var user model.User
	if err := GetDB(ctx, r.db).First(&user, "firebase_uid = ?", uid).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) ExistsByFirebaseUID(ctx context.Context, uid string) (bool, error) {
	var count int64
	if err := GetDB(ctx, r.db).Model(&model.User{}).Where("firebase_uid = ?", uid).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *userRepository) List(ctx context.Context, filter UserFilter) ([]model.User, error) {
	var users []model.User

	query := GetDB(ctx, r.db).Model(&model.User{})
	if filter.IsActive != nil {
		query = query.Where("is_active = ?", *filter.IsActive)
	}
	if filter.Role != "" {
		query = query.Where("role = ?", filter.Role)
	}
	if filter.CreatedSince != nil {
		query = query.Where("created_at >= ?", *filter.CreatedSince)
	}

	sortBy := filter.SortBy
	if sortBy == "" {
		sortBy = "created_at"
	}
	direction := " ASC"
	if filter.Desc {
		direction = " DESC"
	}
	// user_id breaks ties so pages stay stable
	query = query.Order(sortBy + direction)
	if sortBy != "user_id" {
		query = query.Order("user_id" + direction)
	}

	if err := query.Offset(filter.Offset).Limit(filter.Limit).Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

func (r *userRepository) SetActive(ctx context.Context, id uint, active bool) error {
	return r.updateColumn(ctx, id, "is_active", active)
}

func (r *userRepository) SetRole(ctx context.Context, id uint, role string) error {
	return r.updateColumn(ctx, id, "role", role)
}

func (r *userRepository) updateColumn(ctx context.Context, id uint, column string, value interface{}) error {
	result := GetDB(ctx, r.db).Model(&model.User{}).Where("user_id = ?", id).Update(column, value)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// Stats counts users in one pass with conditional sums
func (r *userRepository) Stats(ctx context.Context, monthStart time.Time) (*model.UserStats, error) {
	var stats model.UserStats
	err := GetDB(ctx, r.db).Model(&model.User{}).
		Select(`COALESCE(SUM(CASE WHEN is_active THEN 1 ELSE 0 END), 0) AS active_users,
			COALESCE(SUM(CASE WHEN is_active THEN 0 ELSE 1 END), 0) AS inactive_users,
			COALESCE(SUM(CASE WHEN created_at >= ? THEN 1 ELSE 0 END), 0) AS new_this_month,
			COALESCE(SUM(CASE WHEN role = ? THEN 1 ELSE 0 END), 0) AS total_clients,
			COALESCE(SUM(CASE WHEN role = ? THEN 1 ELSE 0 END), 0) AS total_logistics,
			COALESCE(SUM(CASE WHEN role = ? THEN 1 ELSE 0 END), 0) AS total_admins`,
			monthStart, model.RoleClient, model.RoleLogistics, model.RoleAdmin).
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return &stats, nil
}
