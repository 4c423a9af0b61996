package repository

import (
	"context"
	"time"

	"artistbook/internal/domain"

	"gorm.io/gorm"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Role      string    `gorm:"column:role;index"`
	Name      string    `gorm:"column:name"`
	Bio       *string   `gorm:"column:bio"`
	Location  *string   `gorm:"column:location"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var bio, location string
	if m.Bio != nil {
		bio = *m.Bio
	}
	if m.Location != nil {
		location = *m.Location
	}

	return &domain.User{
		ID:        m.ID,
		Role:      domain.UserRole(m.Role),
		Name:      m.Name,
		Bio:       bio,
		Location:  location,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	var bio, location *string
	if u.Bio != "" {
		v := u.Bio
		bio = &v
	}
	if u.Location != "" {
		v := u.Location
		location = &v
	}

	return userModel{
		ID:        u.ID,
		Role:      string(u.Role),
		Name:      u.Name,
		Bio:       bio,
		Location:  location,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error) {
	var models []userModel
	tx := r.db.WithContext(ctx).
		Where("role = ?", string(role)).
		Order("name").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	users := make([]domain.User, 0, len(models))
	for _, m := range models {
		users = append(users, *toDomainUser(m))
	}
	return users, nil
}
