package app

import (
	"context"

	"nutrisec/internal/domain"
)

// maxWindow bounds the number of days in a trend.
const maxWindow = 366

// StatsService encapsulates the statistics screen use cases.
type StatsService struct {
	repo  domain.DayRepository
	rules Rules
}

// NewStatsService creates a StatsService backed by the given repository.
func NewStatsService(repo domain.DayRepository, rules Rules) *StatsService {
	return &StatsService{repo: repo, rules: rules}
}

// StatsReport is the statistics of the whole history plus the trend of the
// selected window, with weights in Unit.
type StatsReport struct {
	Empty      bool                   `json:"empty"`
	Unit       domain.WeightUnit      `json:"unit"`
	Completion domain.CompletionStats `json:"completion"`
	Trend      domain.TrendReport     `json:"trend"`
}

// Report analyses the window most recent days before the current one. A
// window <= 0 or above 366 selects the 366 most recent days.
func (s *StatsService) Report(ctx context.Context, window int, linear bool, unit string) (*StatsReport, error) {
	u, err := domain.ParseWeightUnit(unit)
	if err != nil {
		return nil, invalidf("%v", err)
	}
	if window <= 0 || window > maxWindow {
		window = maxWindow
	}

	days, err := s.repo.ListDays(ctx)
	if err != nil {
		return nil, err
	}

	trend := domain.AnalyzeTrend(domain.TrendWindow(days, window), domain.TrendConfig{
		Budget:     s.rules.Budget,
		CalPerGram: s.rules.CalPerGram,
		Linear:     linear,
	})
	if u != domain.Kilograms {
		trend = convertTrend(trend, u)
	}

	return &StatsReport{
		Empty:      len(days) == 0,
		Unit:       u,
		Completion: domain.ComputeCompletionStats(days),
		Trend:      trend,
	}, nil
}

func convertTrend(t domain.TrendReport, u domain.WeightUnit) domain.TrendReport {
	points := make([]domain.Point, len(t.Points))
	for i, p := range t.Points {
		points[i] = p.MapY(u.FromKilograms)
	}
	t.Points = points
	t.Curve = t.Curve.MapY(u.FromKilograms)
	t.MinWeight = u.FromKilograms(t.MinWeight)
	t.MaxWeight = u.FromKilograms(t.MaxWeight)
	t.MeanWeight = u.FromKilograms(t.MeanWeight)
	t.MinWeightFloor = u.FromKilograms(t.MinWeightFloor)
	return t
}
