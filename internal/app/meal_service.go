package app

import (
	"context"

	"nutrisec/internal/domain"
)

// EatThreshold is the minimum nutri-score of a meal worth eating.
const EatThreshold = 6.0

// MealService answers "can I eat this meal?" before it is logged.
type MealService struct {
	repo  domain.DayRepository
	rules Rules
}

// NewMealService creates a MealService backed by the given repository.
func NewMealService(repo domain.DayRepository, rules Rules) *MealService {
	return &MealService{repo: repo, rules: rules}
}

// MealVerdict is the evaluation of a candidate meal.
type MealVerdict struct {
	Meal  domain.Food      `json:"meal"`
	Score domain.FoodScore `json:"score"`
	Label string           `json:"label"`
	Eat   bool             `json:"eat"`
}

// MealPreview is a verdict plus the effect of the meal on a day's budget.
type MealPreview struct {
	MealVerdict
	NetCalories       int  `json:"netCalories"`
	RemainingCalories int  `json:"remainingCalories"`
	OverBudget        bool `json:"overBudget"`
}

// Evaluate scores the meal made of foods, eaten at hour:minute.
func (s *MealService) Evaluate(foods []domain.Food, hour, minute int) (*MealVerdict, error) {
	if len(foods) == 0 {
		return nil, invalidf("foods must not be empty")
	}
	if err := validateFoods(foods); err != nil {
		return nil, err
	}
	if err := validateTime(hour, minute); err != nil {
		return nil, err
	}
	meal := domain.Aggregate(foods).WithName("meal").WithTime(hour, minute)
	score := s.rules.Scoring.Evaluate(meal)
	return &MealVerdict{
		Meal:  meal,
		Score: score,
		Label: domain.FormatScore(score.NutriScore),
		Eat:   score.NutriScore >= EatThreshold,
	}, nil
}

// Preview evaluates the meal and projects the day's calorie balance as if
// the foods had been eaten. The day is not modified.
func (s *MealService) Preview(ctx context.Context, dayID string, foods []domain.Food, hour, minute int) (*MealPreview, error) {
	verdict, err := s.Evaluate(foods, hour, minute)
	if err != nil {
		return nil, err
	}
	d, err := s.repo.GetDay(ctx, dayID)
	if err != nil {
		return nil, err
	}
	if d == nil {
		return nil, domain.ErrDayNotFound
	}
	projected := d.Clone()
	projected.Eat(foods...)
	net := projected.NetCalories()
	return &MealPreview{
		MealVerdict:       *verdict,
		NetCalories:       net,
		RemainingCalories: s.rules.Budget.MaxCalorie - net,
		OverBudget:        s.rules.Budget.IsOver(projected),
	}, nil
}
