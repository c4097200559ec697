package domain

// TotalName is the name of the synthetic food produced by Aggregate.
const TotalName = "Total"

// Aggregate sums foods into one synthetic food. Hour and minute come from the
// first food. An empty list yields a zero-valued total.
func Aggregate(foods []Food) Food {
	total := Food{Name: TotalName}
	if len(foods) == 0 {
		return total
	}
	for _, f := range foods {
		total.Quantity += f.Quantity
		total.Calories += f.Calories
		total.Protein += f.Protein
		total.Fat += f.Fat
		total.Glucide += f.Glucide
	}
	total.Hour = foods[0].Hour
	total.Minute = foods[0].Minute
	return total
}

// ScoredFood pairs a food with its derived values.
type ScoredFood struct {
	Food  Food      `json:"food"`
	Score FoodScore `json:"score"`
}

// DaySummary is the presentation view of a day.
type DaySummary struct {
	Day         Day          `json:"day"`
	Foods       []ScoredFood `json:"foods"`
	Total       Food         `json:"total"`
	TotalScore  FoodScore    `json:"totalScore"`
	NetCalories int          `json:"netCalories"`
	OverBudget  bool         `json:"overBudget"`
}

// Summarize scores every food of d and the day total. The day's score is the
// score of the aggregated food, not an average of the individual scores.
func Summarize(d Day, s Scoring, b Budget) DaySummary {
	foods := make([]ScoredFood, 0, len(d.Foods))
	for _, f := range d.Foods {
		foods = append(foods, ScoredFood{Food: f, Score: s.Evaluate(f)})
	}
	total := Aggregate(d.Foods)
	return DaySummary{
		Day:         d,
		Foods:       foods,
		Total:       total,
		TotalScore:  s.Evaluate(total),
		NetCalories: d.NetCalories(),
		OverBudget:  b.IsOver(d),
	}
}
