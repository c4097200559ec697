// Package domain contains the core nutrition entities, the scoring engine and
// the repository ports.
package domain

import (
	"fmt"
	"math"
)

// Food is a single logged food intake. It is a value type: the With* methods
// return an edited copy and never touch the receiver.
type Food struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
	Calories int    `json:"calories"`
	Protein  int    `json:"protein"`
	Fat      int    `json:"fat"`
	Glucide  int    `json:"glucide"`
	Hour     int    `json:"hour"`
	Minute   int    `json:"minute"`
}

// NewFood builds a Food eaten at 00:00.
func NewFood(name string, quantity, calories, protein, fat, glucide int) Food {
	return Food{
		Name:     name,
		Quantity: quantity,
		Calories: calories,
		Protein:  protein,
		Fat:      fat,
		Glucide:  glucide,
	}
}

func (f Food) WithName(name string) Food {
	f.Name = name
	return f
}

func (f Food) WithQuantity(grams int) Food {
	f.Quantity = grams
	return f
}

func (f Food) WithCalories(kcal int) Food {
	f.Calories = kcal
	return f
}

func (f Food) WithMacros(protein, fat, glucide int) Food {
	f.Protein = protein
	f.Fat = fat
	f.Glucide = glucide
	return f
}

// WithTime stamps the food with the time of day it was eaten.
func (f Food) WithTime(hour, minute int) Food {
	f.Hour = hour
	f.Minute = minute
	return f
}

// MacroCalories is the energy implied by the macros using the 4/4/9 Atwater
// factors.
func (f Food) MacroCalories() int {
	return f.Protein*4 + f.Glucide*4 + f.Fat*9
}

// WaterPercent is the share of the quantity not accounted for by macros.
// A zero quantity reports 10. The value is not capped at 100.
func (f Food) WaterPercent() float64 {
	if f.Quantity == 0 {
		return 10.0
	}
	water := max(0, f.Quantity-f.Protein-f.Glucide-f.Fat)
	return float64(water*100) / math.Max(0.01, float64(f.Quantity))
}

// FormatScore renders a score as an integer when it is within 0.1 of one,
// otherwise with a single decimal.
func FormatScore(score float64) string {
	if math.Abs(math.Round(score)-score) < 0.1 {
		return fmt.Sprintf("%d", int(math.Round(score)))
	}
	return fmt.Sprintf("%.1f", score)
}
