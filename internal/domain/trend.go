package domain

// DefaultCalPerGram is the kcal surplus assumed to add one gram of body mass
// (750 kcal per 100 g). It is an empirical simplification.
const DefaultCalPerGram = 7.5

// Chart defaults used when no weight is recorded in the window.
const (
	defaultMinWeight = 50.0
	defaultMaxWeight = 100.0
)

// CompletionStats is the share of active and completed days.
type CompletionStats struct {
	ActivePercent    float64 `json:"activeDaysPercent"`
	CompletedPercent float64 `json:"completedDaysPercent"`
}

// ComputeCompletionStats returns zero percentages for an empty list.
func ComputeCompletionStats(days []Day) CompletionStats {
	if len(days) == 0 {
		return CompletionStats{}
	}
	active := 0
	for _, d := range days {
		if d.IsActive() {
			active++
		}
	}
	n := float64(len(days))
	return CompletionStats{
		ActivePercent:    100 * float64(active) / n,
		CompletedPercent: 100 * float64(len(days)-active) / n,
	}
}

// TrendWindow returns the n days preceding the newest one, oldest first.
// days must be ordered oldest first. The newest day is still being logged so
// it never enters the trend.
func TrendWindow(days []Day, n int) []Day {
	if len(days) <= 1 || n <= 0 {
		return []Day{}
	}
	end := len(days) - 1
	start := max(0, end-n)
	return days[start:end]
}

// TrendConfig parameterizes AnalyzeTrend.
type TrendConfig struct {
	Budget     Budget
	CalPerGram float64
	Linear     bool
}

// Tick is an x-axis label of the weight chart.
type Tick struct {
	Index int    `json:"index"`
	Title string `json:"title"`
}

// TrendReport is the read-only analysis of a window of days.
type TrendReport struct {
	Days           int     `json:"days"`
	Points         []Point `json:"points"`
	Curve          Curve   `json:"curve"`
	Ticks          []Tick  `json:"ticks"`
	MinWeight      float64 `json:"minWeight"`
	MaxWeight      float64 `json:"maxWeight"`
	MeanWeight     float64 `json:"meanWeight"`
	MinWeightFloor float64 `json:"minWeightFloor"`

	TotalCalorieDiff         int     `json:"totalCalorieDiff"`
	EstimatedMassChangeGrams float64 `json:"estimatedMassChangeGrams"`
	ObservedMassChangeGrams  float64 `json:"observedMassChangeGrams"`
	EstimatedMaintenance     float64 `json:"estimatedMaintenanceCalories"`
}

// AnalyzeTrend computes the weight curve, weight statistics and the
// calorie-to-mass estimates of window. Days without a recorded weight still
// count towards calories and elapsed days but contribute no curve point.
func AnalyzeTrend(window []Day, cfg TrendConfig) TrendReport {
	r := TrendReport{Days: len(window), Points: []Point{}, Ticks: []Tick{}}

	var sum float64
	var first, last float64
	for i, d := range window {
		r.TotalCalorieDiff += d.NetCalories() - cfg.Budget.MaxCalorie
		if !d.HasWeight() {
			continue
		}
		if len(r.Points) == 0 {
			r.MinWeight, r.MaxWeight = d.Weight, d.Weight
			first = d.Weight
		}
		r.MinWeight = min(r.MinWeight, d.Weight)
		r.MaxWeight = max(r.MaxWeight, d.Weight)
		sum += d.Weight
		last = d.Weight
		r.Points = append(r.Points, Point{X: float64(i), Y: d.Weight})
	}

	if len(r.Points) > 0 {
		r.MeanWeight = sum / float64(len(r.Points))
		r.MinWeightFloor = r.MinWeight - (100 - r.MaxWeight)
	} else {
		r.MinWeightFloor = defaultMinWeight - (100 - defaultMaxWeight)
	}
	r.Curve = BuildCurve(r.Points, cfg.Linear)

	stride := max(1, len(window)/7)
	for i := 0; i < len(window); i += stride {
		r.Ticks = append(r.Ticks, Tick{Index: i, Title: window[i].DisplayTitle()})
	}

	if cfg.CalPerGram > 0 {
		r.EstimatedMassChangeGrams = float64(r.TotalCalorieDiff) / cfg.CalPerGram
	}
	r.ObservedMassChangeGrams = (last - first) * 1000
	if len(window) > 0 {
		r.EstimatedMaintenance = float64(cfg.Budget.MaxCalorie) -
			r.ObservedMassChangeGrams*cfg.CalPerGram/float64(len(window))
	}
	return r
}
