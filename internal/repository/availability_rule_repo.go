package repository

import (
	"context"
	"strconv"
	"strings"
	"time"

	"artistbook/internal/domain"

	"gorm.io/gorm"
)

type AvailabilityRuleRepository struct {
	db *gorm.DB
}

func NewAvailabilityRuleRepository(db *gorm.DB) *AvailabilityRuleRepository {
	return &AvailabilityRuleRepository{db: db}
}

type availabilityRuleModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	ArtistID        int64      `gorm:"column:artist_id;index"`
	ServiceType     string     `gorm:"column:service_type"`
	DurationMinutes int        `gorm:"column:duration_minutes"`
	Price           float64    `gorm:"column:price"`
	Currency        string     `gorm:"column:currency"`
	Date            *time.Time `gorm:"column:date"`
	RecurringDays   string     `gorm:"column:recurring_days"` // "1,3,5"
	StartTime       string     `gorm:"column:start_time"`
	EndTime         string     `gorm:"column:end_time"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
}

func (availabilityRuleModel) TableName() string { return "availability_rules" }

func encodeDays(days []int) string {
	if len(days) == 0 {
		return ""
	}
	parts := make([]string, 0, len(days))
	for _, d := range days {
		parts = append(parts, strconv.Itoa(d))
	}
	return strings.Join(parts, ",")
}

func decodeDays(s string) []int {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	days := make([]int, 0, len(parts))
	for _, p := range parts {
		d, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			continue
		}
		days = append(days, d)
	}
	return days
}

func toDomainRule(m availabilityRuleModel) *domain.AvailabilityRule {
	var date *time.Time
	if m.Date != nil {
		d := domain.DateOnly(*m.Date)
		date = &d
	}

	return &domain.AvailabilityRule{
		ID:              m.ID,
		ArtistID:        m.ArtistID,
		ServiceType:     m.ServiceType,
		DurationMinutes: m.DurationMinutes,
		Price:           m.Price,
		Currency:        m.Currency,
		Date:            date,
		RecurringDays:   decodeDays(m.RecurringDays),
		StartTime:       m.StartTime,
		EndTime:         m.EndTime,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func toRuleModel(r *domain.AvailabilityRule) availabilityRuleModel {
	var date *time.Time
	if r.Date != nil {
		d := domain.DateOnly(*r.Date)
		date = &d
	}

	return availabilityRuleModel{
		ID:              r.ID,
		ArtistID:        r.ArtistID,
		ServiceType:     r.ServiceType,
		DurationMinutes: r.DurationMinutes,
		Price:           r.Price,
		Currency:        r.Currency,
		Date:            date,
		RecurringDays:   encodeDays(r.RecurringDays),
		StartTime:       r.StartTime,
		EndTime:         r.EndTime,
		CreatedAt:       r.CreatedAt,
		UpdatedAt:       r.UpdatedAt,
	}
}

func (r *AvailabilityRuleRepository) Create(ctx context.Context, rule *domain.AvailabilityRule) error {
	m := toRuleModel(rule)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*rule = *toDomainRule(m)
	return nil
}

func (r *AvailabilityRuleRepository) GetByID(ctx context.Context, id int64) (*domain.AvailabilityRule, error) {
	var m availabilityRuleModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainRule(m), nil
}

func (r *AvailabilityRuleRepository) Update(ctx context.Context, rule *domain.AvailabilityRule) error {
	m := toRuleModel(rule)
	tx := r.db.WithContext(ctx).
		Model(&availabilityRuleModel{}).
		Where("id = ?", m.ID).
		Updates(map[string]any{
			"service_type":     m.ServiceType,
			"duration_minutes": m.DurationMinutes,
			"price":            m.Price,
			"currency":         m.Currency,
			"date":             m.Date,
			"recurring_days":   m.RecurringDays,
			"start_time":       m.StartTime,
			"end_time":         m.EndTime,
			"updated_at":       time.Now().UTC(),
		})
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AvailabilityRuleRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&availabilityRuleModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *AvailabilityRuleRepository) ListByArtist(ctx context.Context, artistID int64) ([]domain.AvailabilityRule, error) {
	var models []availabilityRuleModel
	tx := r.db.WithContext(ctx).
		Where("artist_id = ?", artistID).
		Order("id").
		Find(&models)
	if tx.Error != nil {
		return nil, tx.Error
	}

	rules := make([]domain.AvailabilityRule, 0, len(models))
	for _, m := range models {
		rules = append(rules, *toDomainRule(m))
	}
	return rules, nil
}
