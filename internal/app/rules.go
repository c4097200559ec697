// Package app holds the application services and business logic.
package app

import (
	"errors"
	"fmt"

	"nutrisec/internal/domain"
)

// ErrInvalid wraps every input validation failure.
var ErrInvalid = errors.New("invalid input")

func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

// Rules bundles the tunable constants of scoring, budget classification and
// trend analysis.
type Rules struct {
	Scoring    domain.Scoring
	Budget     domain.Budget
	CalPerGram float64
}

// DefaultRules returns the constants the application ships with.
func DefaultRules() Rules {
	return Rules{
		Scoring:    domain.DefaultScoring(),
		Budget:     domain.DefaultBudget(),
		CalPerGram: domain.DefaultCalPerGram,
	}
}

// Input bounds, matching what the food editor accepts.
const (
	maxQuantity = 3000
	maxCalories = 3000
	maxProtein  = 100
	maxMacro    = 3000
	maxCardio   = 3000
)

func validateFood(i int, f domain.Food) error {
	switch {
	case f.Quantity < 0 || f.Quantity >= maxQuantity:
		return invalidf("food %d: quantity must be within [0, %d)", i, maxQuantity)
	case f.Calories < 0 || f.Calories >= maxCalories:
		return invalidf("food %d: calories must be within [0, %d)", i, maxCalories)
	case f.Protein < 0 || f.Protein >= maxProtein:
		return invalidf("food %d: protein must be within [0, %d)", i, maxProtein)
	case f.Fat < 0 || f.Fat >= maxMacro:
		return invalidf("food %d: fat must be within [0, %d)", i, maxMacro)
	case f.Glucide < 0 || f.Glucide >= maxMacro:
		return invalidf("food %d: glucide must be within [0, %d)", i, maxMacro)
	}
	return validateTime(f.Hour, f.Minute)
}

func validateFoods(foods []domain.Food) error {
	for i, f := range foods {
		if err := validateFood(i, f); err != nil {
			return err
		}
	}
	return nil
}

func validateTime(hour, minute int) error {
	if hour < 0 || hour > 23 {
		return invalidf("hour must be within [0, 23]")
	}
	if minute < 0 || minute > 59 {
		return invalidf("minute must be within [0, 59]")
	}
	return nil
}
