package app

import (
	"context"

	"nutrisec/internal/domain"
)

// CardioService encapsulates cardio logging use cases. Cardio is additive:
// each event adds (or, to correct a mistake, removes) burned calories.
type CardioService struct {
	repo domain.DayRepository
}

// NewCardioService creates a CardioService backed by the given repository.
func NewCardioService(repo domain.DayRepository) *CardioService {
	return &CardioService{repo: repo}
}

// Record validates and applies a cardio event. The day's total never drops
// below zero.
func (s *CardioService) Record(ctx context.Context, dayID string, deltaKcal int) (*domain.Day, error) {
	if deltaKcal == 0 || deltaKcal <= -maxCardio || deltaKcal >= maxCardio {
		return nil, invalidf("deltaKcal must be non-zero and within (-%d, %d)", maxCardio, maxCardio)
	}
	return s.repo.UpdateDay(ctx, dayID, func(d *domain.Day) error {
		d.AddCardio(deltaKcal)
		if d.CalCardio < 0 {
			d.CalCardio = 0
		}
		return nil
	})
}
