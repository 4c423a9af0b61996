package availability

import (
	"context"
	"errors"
	"fmt"
	"time"

	"artistbook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	rules RuleRepository
}

func NewService(rules RuleRepository) *Service {
	return &Service{rules: rules}
}

// AddRule validates and publishes a new availability rule for the artist.
// Overlap with the artist's existing rules is rejected regardless of service
// type, so slot generation stays deterministic.
func (s *Service) AddRule(ctx context.Context, artistID int64, req RuleRequest) (*domain.AvailabilityRule, error) {
	rule, err := buildRule(artistID, req)
	if err != nil {
		return nil, err
	}

	if err := s.checkOverlap(ctx, rule, 0); err != nil {
		return nil, err
	}

	if err := s.rules.Create(ctx, rule); err != nil {
		return nil, err
	}
	return rule, nil
}

// UpdateRule replaces a rule's fields under the same validation as AddRule.
func (s *Service) UpdateRule(ctx context.Context, ruleID, actorID int64, req RuleRequest) (*domain.AvailabilityRule, error) {
	existing, err := s.rules.GetByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if existing.ArtistID != actorID {
		return nil, ErrForbidden
	}

	rule, err := buildRule(existing.ArtistID, req)
	if err != nil {
		return nil, err
	}
	rule.ID = existing.ID
	rule.CreatedAt = existing.CreatedAt

	if err := s.checkOverlap(ctx, rule, rule.ID); err != nil {
		return nil, err
	}

	if err := s.rules.Update(ctx, rule); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rule, nil
}

// DeleteRule removes a rule. Bookings already made against slots the rule
// produced stay untouched.
func (s *Service) DeleteRule(ctx context.Context, ruleID, actorID int64) error {
	existing, err := s.rules.GetByID(ctx, ruleID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	if existing.ArtistID != actorID {
		return ErrForbidden
	}

	if err := s.rules.Delete(ctx, ruleID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

func (s *Service) ListRules(ctx context.Context, artistID int64) ([]domain.AvailabilityRule, error) {
	return s.rules.ListByArtist(ctx, artistID)
}

func (s *Service) checkOverlap(ctx context.Context, rule *domain.AvailabilityRule, skipID int64) error {
	existing, err := s.rules.ListByArtist(ctx, rule.ArtistID)
	if err != nil {
		return err
	}
	for i := range existing {
		if existing[i].ID == skipID {
			continue
		}
		if rule.ConflictsWith(&existing[i]) {
			return fmt.Errorf("%w: rule overlaps existing rule %d", ErrValidation, existing[i].ID)
		}
	}
	return nil
}

func buildRule(artistID int64, req RuleRequest) (*domain.AvailabilityRule, error) {
	if req.DurationMinutes <= 0 {
		return nil, fmt.Errorf("%w: duration_minutes must be positive", ErrValidation)
	}
	if req.Price < 0 {
		return nil, fmt.Errorf("%w: price must not be negative", ErrValidation)
	}
	if req.ServiceType == "" || req.Currency == "" {
		return nil, fmt.Errorf("%w: service_type and currency are required", ErrValidation)
	}

	startMin, err := domain.ParseClock(req.StartTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	endMin, err := domain.ParseClock(req.EndTime)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if startMin >= endMin {
		return nil, fmt.Errorf("%w: start_time must precede end_time", ErrValidation)
	}
	if (endMin-startMin)%req.DurationMinutes != 0 {
		return nil, fmt.Errorf("%w: window is not a whole number of %d-minute slots", ErrValidation, req.DurationMinutes)
	}

	hasDate := req.Date != ""
	hasDays := len(req.RecurringDays) > 0
	if hasDate == hasDays {
		return nil, fmt.Errorf("%w: exactly one of date and recurring_days must be set", ErrValidation)
	}

	var date *time.Time
	if hasDate {
		d, err := domain.ParseDate(req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrValidation, err)
		}
		date = &d
	}

	seen := map[int]bool{}
	for _, d := range req.RecurringDays {
		if d < 0 || d > 6 {
			return nil, fmt.Errorf("%w: recurring day %d out of range 0..6", ErrValidation, d)
		}
		if seen[d] {
			return nil, fmt.Errorf("%w: recurring day %d repeated", ErrValidation, d)
		}
		seen[d] = true
	}

	return &domain.AvailabilityRule{
		ArtistID:        artistID,
		ServiceType:     req.ServiceType,
		DurationMinutes: req.DurationMinutes,
		Price:           req.Price,
		Currency:        req.Currency,
		Date:            date,
		RecurringDays:   req.RecurringDays,
		StartTime:       req.StartTime,
		EndTime:         req.EndTime,
	}, nil
}
