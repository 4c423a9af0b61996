package artists

import (
	"context"

	"artistbook/internal/domain"
)

type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	ListByRole(ctx context.Context, role domain.UserRole) ([]domain.User, error)
}

type RuleRepository interface {
	ListByArtist(ctx context.Context, artistID int64) ([]domain.AvailabilityRule, error)
}
