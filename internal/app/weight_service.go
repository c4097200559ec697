package app

import (
	"context"

	"nutrisec/internal/domain"
)

// WeightService encapsulates body weight use cases.
type WeightService struct {
	repo domain.DayRepository
}

// NewWeightService creates a WeightService backed by the given repository.
func NewWeightService(repo domain.DayRepository) *WeightService {
	return &WeightService{repo: repo}
}

// RecordWeight validates a measurement, converts it to kilograms and stores it
// on the day.
func (s *WeightService) RecordWeight(ctx context.Context, dayID string, value float64, unit string) (*domain.Day, error) {
	if value <= 0 {
		return nil, invalidf("value must be > 0")
	}
	u, err := domain.ParseWeightUnit(unit)
	if err != nil {
		return nil, invalidf("%v", err)
	}
	kg := u.ToKilograms(value)
	return s.repo.UpdateDay(ctx, dayID, func(d *domain.Day) error {
		d.Weight = kg
		return nil
	})
}

// ClearWeight marks the day's weight as not recorded.
func (s *WeightService) ClearWeight(ctx context.Context, dayID string) (*domain.Day, error) {
	return s.repo.UpdateDay(ctx, dayID, func(d *domain.Day) error {
		d.Weight = 0
		return nil
	})
}
