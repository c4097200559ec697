package domain

import "math"

// Scoring holds the coefficients of the nutrition score and of the
// plausibility check.
type Scoring struct {
	CoefE          float64 `json:"coefE"`
	CoefP          float64 `json:"coefP"`
	CoefVMin       float64 `json:"coefVMin"`
	VegetableAt    float64 `json:"vegetableAt"`
	PlausibleFloor float64 `json:"plausibleFloor"`
}

// FoodScore is the derived view of a Food.
type FoodScore struct {
	WaterPercent float64 `json:"waterPercent"`
	NutriScore   float64 `json:"nutriScore"`
	IsPossible   bool    `json:"isPossible"`
}

// DefaultScoring returns the coefficients used by the application.
func DefaultScoring() Scoring {
	return Scoring{
		CoefE:          6.66,
		CoefP:          3.0,
		CoefVMin:       1.5,
		VegetableAt:    40.0,
		PlausibleFloor: 0.85,
	}
}

// Energetism is a logistic curve over caloric density (kcal/g), close to
// 1.075 for light foods and to 0 for dense ones, centered on 2.5 kcal/g.
func (s Scoring) Energetism(f Food) float64 {
	density := float64(f.Calories) / math.Max(0.01, float64(f.Quantity))
	return 1.075 / (1.0 + math.Exp(1.1*(density-2.5)))
}

// Proteinism is the protein mass relative to the dry (non-water) mass.
func (s Scoring) Proteinism(f Food) float64 {
	dry := float64(f.Quantity) * (100 - f.WaterPercent()) / 100.0
	return float64(f.Protein) / math.Max(1.0, dry)
}

// VegetableBonus ramps linearly from CoefVMin at VegetableAt percent water up
// to 10-CoefE at 100 percent. Below the threshold it is 0.
func (s Scoring) VegetableBonus(f Food) float64 {
	wp := f.WaterPercent()
	if wp < s.VegetableAt {
		return 0
	}
	a := (10 - s.CoefE - s.CoefVMin) / (100.0 - s.VegetableAt)
	return a*wp + 10.0 - s.CoefE - 100.0*a
}

// NutriScore combines energetism, proteinism and the vegetable bonus,
// clamped to [0, 10].
func (s Scoring) NutriScore(f Food) float64 {
	raw := s.Energetism(f)*s.CoefE + s.Proteinism(f)*s.CoefP + s.VegetableBonus(f)
	return max(0.0, min(10.0, raw))
}

// IsPossible reports whether the declared quantity, macros and calories are
// consistent with each other.
func (s Scoring) IsPossible(f Food) bool {
	if f.Quantity == 0 {
		return false
	}
	if float64(f.Quantity)*1.05 < float64(f.Protein+f.Glucide+f.Fat) {
		return false
	}
	macro := float64(f.MacroCalories())
	if float64(f.Calories)*1.05 < macro {
		return false
	}
	if float64(f.Calories)*s.PlausibleFloor > macro {
		return false
	}
	return true
}

// Evaluate computes every derived value of f.
func (s Scoring) Evaluate(f Food) FoodScore {
	return FoodScore{
		WaterPercent: f.WaterPercent(),
		NutriScore:   s.NutriScore(f),
		IsPossible:   s.IsPossible(f),
	}
}
