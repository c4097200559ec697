package domain

import (
	"context"
	"errors"
	"time"
)

// DefaultMaxCalorie is the daily calorie budget.
const DefaultMaxCalorie = 2700

// ErrDayNotFound is returned by repositories when no day has the given ID.
var ErrDayNotFound = errors.New("day not found")

// Day is one calendar day of food log, cardio and weight.
type Day struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Weight      float64   `json:"weight"`
	CalCardio   int       `json:"calCardio"`
	Foods       []Food    `json:"foods"`
	Completed   bool      `json:"isCompleted"`
	CreatedAt   time.Time `json:"createdAt"`
}

// NewDay creates a day titled with the date of now, formatted dd/mm/yy.
func NewDay(id string, now time.Time) Day {
	return Day{
		ID:        id,
		Title:     now.Format("02/01/06"),
		Foods:     []Food{},
		CreatedAt: now.UTC(),
	}
}

// DisplayTitle falls back to the description when the title is empty.
func (d Day) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Description
}

func (d Day) IsActive() bool { return !d.Completed }

// HasWeight reports whether a weight was recorded; 0 means not recorded.
func (d Day) HasWeight() bool { return d.Weight > 0 }

// FoodCalories is the sum of the calories of every food of the day.
func (d Day) FoodCalories() int {
	total := 0
	for _, f := range d.Foods {
		total += f.Calories
	}
	return total
}

// NetCalories is food calories minus cardio. It may be negative.
func (d Day) NetCalories() int {
	return d.FoodCalories() - d.CalCardio
}

// Eat appends foods to the log in the given order.
func (d *Day) Eat(foods ...Food) {
	d.Foods = append(d.Foods, foods...)
}

// AddCardio accumulates burned calories.
func (d *Day) AddCardio(kcal int) {
	d.CalCardio += kcal
}

// ExtractLastMeal removes and returns every food whose hour is within 3 hours
// of the hour of the last logged food. The distance is a plain difference on
// the 0-23 scale: 23h and 1h are 22 hours apart.
func (d *Day) ExtractLastMeal() []Food {
	if len(d.Foods) == 0 {
		return nil
	}
	lastHour := d.Foods[len(d.Foods)-1].Hour

	var meal []Food
	remaining := make([]Food, 0, len(d.Foods))
	for _, f := range d.Foods {
		if abs(f.Hour-lastHour) <= 3 {
			meal = append(meal, f)
		} else {
			remaining = append(remaining, f)
		}
	}
	d.Foods = remaining
	return meal
}

// Clone returns a deep copy of the day.
func (d Day) Clone() Day {
	c := d
	c.Foods = make([]Food, len(d.Foods))
	copy(c.Foods, d.Foods)
	return c
}

// Budget classifies days against a calorie threshold.
type Budget struct {
	MaxCalorie int `json:"maxCalorie"`
}

// DefaultBudget returns a Budget of DefaultMaxCalorie.
func DefaultBudget() Budget {
	return Budget{MaxCalorie: DefaultMaxCalorie}
}

// IsOver reports whether the net calories of d exceed the budget.
func (b Budget) IsOver(d Day) bool {
	return d.NetCalories() > b.MaxCalorie
}

// DayFilter selects days by completion state.
type DayFilter string

const (
	FilterAll       DayFilter = "all"
	FilterActive    DayFilter = "active"
	FilterCompleted DayFilter = "completed"
)

// ParseDayFilter maps "" to FilterAll and rejects unknown values.
func ParseDayFilter(s string) (DayFilter, error) {
	switch DayFilter(s) {
	case "", FilterAll:
		return FilterAll, nil
	case FilterActive, FilterCompleted:
		return DayFilter(s), nil
	}
	return "", errors.New("filter must be \"all\", \"active\" or \"completed\"")
}

// Apply keeps the days matching the filter, preserving order.
func (f DayFilter) Apply(days []Day) []Day {
	if f == FilterAll || f == "" {
		return days
	}
	out := make([]Day, 0, len(days))
	for _, d := range days {
		if (f == FilterActive && d.IsActive()) || (f == FilterCompleted && d.Completed) {
			out = append(out, d)
		}
	}
	return out
}

// DayRepository is the port for day persistence. Days are listed oldest
// first. UpdateDay applies mutate atomically with respect to other writers
// of the same day and returns the stored result; if mutate returns an error
// nothing is written.
type DayRepository interface {
	CreateDay(ctx context.Context, day Day) error
	GetDay(ctx context.Context, id string) (*Day, error)
	ListDays(ctx context.Context) ([]Day, error)
	ListLastDays(ctx context.Context, n int) ([]Day, error)
	UpdateDay(ctx context.Context, id string, mutate func(*Day) error) (*Day, error)
	DeleteDay(ctx context.Context, id string) (bool, error)
	DeleteCompletedDays(ctx context.Context) (int, error)
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
