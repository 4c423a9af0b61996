package availability

import (
	"context"

	"artistbook/internal/domain"
)

// RuleRepository is the persistence contract for availability rules.
type RuleRepository interface {
	Create(ctx context.Context, rule *domain.AvailabilityRule) error
	GetByID(ctx context.Context, id int64) (*domain.AvailabilityRule, error)
	Update(ctx context.Context, rule *domain.AvailabilityRule) error
	Delete(ctx context.Context, id int64) error
	ListByArtist(ctx context.Context, artistID int64) ([]domain.AvailabilityRule, error)
}
