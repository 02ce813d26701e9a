package app

import (
	"context"

	"github.com/montanaflynn/stats"
	"golang.org/x/sync/errgroup"

	"ratehub/domain/rates"
	"ratehub/internal/errors"
	"ratehub/ports"
)

// PriceSummary describes the distribution of the default-base price
// within one rate collection.
type PriceSummary struct {
	Min    float64 `json:"min"`
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Max    float64 `json:"max"`
}

// ModeStats is the per-collection slice of the stats report.
type ModeStats struct {
	Count int64         `json:"count"`
	Price *PriceSummary `json:"price,omitempty"`
}

// Stats is the full report served by the stats endpoint.
type Stats struct {
	Air    ModeStats `json:"air"`
	SeaFcl ModeStats `json:"seaFcl"`
	SeaLcl ModeStats `json:"seaLcl"`
	Total  int64     `json:"total"`
}

// StatsService aggregates record counts and price distributions across
// the three rate collections.
type StatsService struct {
	repos    ports.RateRepositories
	maxFetch int
}

// NewStatsService creates the stats service.
func NewStatsService(repos ports.RateRepositories, maxFetch int) *StatsService {
	return &StatsService{repos: repos, maxFetch: maxFetch}
}

// Collect gathers the report, fanning the three collections out
// concurrently. Price summaries use each mode's default base: 20GP for
// FCL, W/M for LCL, the 100 kg tier for air.
func (s *StatsService) Collect(ctx context.Context) (*Stats, error) {
	var report Stats
	filters := rates.Filters{Limit: s.maxFetch}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		count, err := s.repos.Air.Count(gctx)
		if err != nil {
			return err
		}
		records, err := s.repos.Air.List(gctx, filters)
		if err != nil {
			return err
		}
		prices := make([]float64, 0, len(records))
		for _, r := range records {
			if r.Rate100 != nil {
				prices = append(prices, *r.Rate100)
			}
		}
		report.Air = ModeStats{Count: count, Price: summarize(prices)}
		return nil
	})

	g.Go(func() error {
		count, err := s.repos.SeaFcl.Count(gctx)
		if err != nil {
			return err
		}
		records, err := s.repos.SeaFcl.List(gctx, filters)
		if err != nil {
			return err
		}
		prices := make([]float64, 0, len(records))
		for _, r := range records {
			if r.Rate20GP != nil {
				prices = append(prices, *r.Rate20GP)
			}
		}
		report.SeaFcl = ModeStats{Count: count, Price: summarize(prices)}
		return nil
	})

	g.Go(func() error {
		count, err := s.repos.SeaLcl.Count(gctx)
		if err != nil {
			return err
		}
		records, err := s.repos.SeaLcl.List(gctx, filters)
		if err != nil {
			return err
		}
		prices := make([]float64, 0, len(records))
		for _, r := range records {
			if r.WM != nil {
				prices = append(prices, *r.WM)
			}
		}
		report.SeaLcl = ModeStats{Count: count, Price: summarize(prices)}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "stats collection failed")
	}

	report.Total = report.Air.Count + report.SeaFcl.Count + report.SeaLcl.Count
	return &report, nil
}

func summarize(prices []float64) *PriceSummary {
	if len(prices) == 0 {
		return nil
	}

	min, err := stats.Min(prices)
	if err != nil {
		return nil
	}
	mean, err := stats.Mean(prices)
	if err != nil {
		return nil
	}
	median, err := stats.Median(prices)
	if err != nil {
		return nil
	}
	max, err := stats.Max(prices)
	if err != nil {
		return nil
	}

	return &PriceSummary{Min: min, Mean: mean, Median: median, Max: max}
}
