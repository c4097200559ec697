package app

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"nutrisec/internal/domain"
)

// DayService encapsulates the day logging use cases.
type DayService struct {
	repo  domain.DayRepository
	rules Rules
}

// NewDayService creates a DayService backed by the given repository.
func NewDayService(repo domain.DayRepository, rules Rules) *DayService {
	return &DayService{repo: repo, rules: rules}
}

// DayEdit is a partial update of a day. Nil fields are left unchanged.
type DayEdit struct {
	Title       *string       `json:"title"`
	Description *string       `json:"description"`
	Weight      *float64      `json:"weight"`
	CalCardio   *int          `json:"calCardio"`
	Foods       []domain.Food `json:"foods"`
}

func (s *DayService) summarize(d domain.Day) domain.DaySummary {
	return domain.Summarize(d, s.rules.Scoring, s.rules.Budget)
}

// StartDay creates the day being tracked from now on. An empty title is
// replaced by today's date.
func (s *DayService) StartDay(ctx context.Context, title string) (*domain.DaySummary, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return nil, fmt.Errorf("new day id: %w", err)
	}
	d := domain.NewDay(id.String(), time.Now().In(time.Local))
	if title != "" {
		d.Title = title
	}
	if err := s.repo.CreateDay(ctx, d); err != nil {
		return nil, err
	}
	sum := s.summarize(d)
	return &sum, nil
}

// GetDay returns the summary of a day.
func (s *DayService) GetDay(ctx context.Context, id string) (*domain.DaySummary, error) {
	d, err := s.repo.GetDay(ctx, id)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrDayNotFound
	}
	sum := s.summarize(*d)
	return &sum, nil
}

// CurrentDay returns the most recently started day.
func (s *DayService) CurrentDay(ctx context.Context) (*domain.DaySummary, error) {
	days, err := s.repo.ListLastDays(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(days) == 0 {
		return nil, domain.ErrDayNotFound
	}
	sum := s.summarize(days[0])
	return &sum, nil
}

// ListDays returns the summaries of the days matching filter, oldest first.
func (s *DayService) ListDays(ctx context.Context, filter domain.DayFilter) ([]domain.DaySummary, error) {
	days, err := s.repo.ListDays(ctx)
	if err != nil {
		return nil, err
	}
	days = filter.Apply(days)
	out := make([]domain.DaySummary, 0, len(days))
	for _, d := range days {
		out = append(out, s.summarize(d))
	}
	return out, nil
}

// EditDay validates and applies a partial update.
func (s *DayService) EditDay(ctx context.Context, id string, edit DayEdit) (*domain.DaySummary, error) {
	if edit.Weight != nil && *edit.Weight < 0 {
		return nil, invalidf("weight must be >= 0")
	}
	if edit.CalCardio != nil && (*edit.CalCardio < 0 || *edit.CalCardio >= maxCardio) {
		return nil, invalidf("calCardio must be within [0, %d)", maxCardio)
	}
	if err := validateFoods(edit.Foods); err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(d *domain.Day) error {
		if edit.Title != nil {
			d.Title = *edit.Title
		}
		if edit.Description != nil {
			d.Description = *edit.Description
		}
		if edit.Weight != nil {
			d.Weight = *edit.Weight
		}
		if edit.CalCardio != nil {
			d.CalCardio = *edit.CalCardio
		}
		if edit.Foods != nil {
			d.Foods = append([]domain.Food{}, edit.Foods...)
		}
		return nil
	})
}

// Eat appends foods to the day's log.
func (s *DayService) Eat(ctx context.Context, id string, foods []domain.Food) (*domain.DaySummary, error) {
	if len(foods) == 0 {
		return nil, invalidf("foods must not be empty")
	}
	if err := validateFoods(foods); err != nil {
		return nil, err
	}
	return s.update(ctx, id, func(d *domain.Day) error {
		d.Eat(foods...)
		return nil
	})
}

// UndoLastMeal removes the last meal from the day and returns it, so that it
// can be edited and eaten again.
func (s *DayService) UndoLastMeal(ctx context.Context, id string) ([]domain.Food, *domain.DaySummary, error) {
	var meal []domain.Food
	sum, err := s.update(ctx, id, func(d *domain.Day) error {
		meal = d.ExtractLastMeal()
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	if meal == nil {
		meal = []domain.Food{}
	}
	return meal, sum, nil
}

// SetCompleted marks a day completed or active again.
func (s *DayService) SetCompleted(ctx context.Context, id string, completed bool) (*domain.DaySummary, error) {
	return s.update(ctx, id, func(d *domain.Day) error {
		d.Completed = completed
		return nil
	})
}

// DeleteDay removes a day. It reports whether the day existed.
func (s *DayService) DeleteDay(ctx context.Context, id string) (bool, error) {
	return s.repo.DeleteDay(ctx, id)
}

// ClearCompleted removes every completed day and returns how many were removed.
func (s *DayService) ClearCompleted(ctx context.Context) (int, error) {
	return s.repo.DeleteCompletedDays(ctx)
}

func (s *DayService) update(ctx context.Context, id string, mutate func(*domain.Day) error) (*domain.DaySummary, error) {
	d, err := s.repo.UpdateDay(ctx, id, mutate)
	if err != nil {
		return nil, err
	}
	sum := s.summarize(*d)
	return &sum, nil
}
