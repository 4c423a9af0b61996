package artists

import (
	"context"
	"errors"
	"sort"

	"artistbook/internal/domain"

	"gorm.io/gorm"
)

type Service struct {
	users UserRepository
	rules RuleRepository
}

func NewService(users UserRepository, rules RuleRepository) *Service {
	return &Service{users: users, rules: rules}
}

func (s *Service) ListArtists(ctx context.Context) ([]Profile, error) {
	users, err := s.users.ListByRole(ctx, domain.RoleArtist)
	if err != nil {
		return nil, err
	}

	profiles := make([]Profile, 0, len(users))
	for i := range users {
		p, err := s.profileFor(ctx, &users[i])
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	return profiles, nil
}

func (s *Service) GetArtist(ctx context.Context, id int64) (*Profile, error) {
	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	if !u.IsArtist() {
		return nil, ErrNotFound
	}
	return s.profileFor(ctx, u)
}

func (s *Service) profileFor(ctx context.Context, u *domain.User) (*Profile, error) {
	rules, err := s.rules.ListByArtist(ctx, u.ID)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{}
	services := make([]string, 0, len(rules))
	for i := range rules {
		st := rules[i].ServiceType
		if !seen[st] {
			seen[st] = true
			services = append(services, st)
		}
	}
	sort.Strings(services)

	return &Profile{
		ID:       u.ID,
		Name:     u.Name,
		Bio:      u.Bio,
		Location: u.Location,
		Services: services,
	}, nil
}
