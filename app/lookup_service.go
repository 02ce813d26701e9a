package app

import (
	"context"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"ratehub/ports"
)

// LookupService backs the autosuggest inputs: distinct location codes
// and partner names across all three rate collections, fanned out
// concurrently since the collections are independent.
type LookupService struct {
	repos ports.RateRepositories
	limit int
}

// NewLookupService creates the lookup service.
func NewLookupService(repos ports.RateRepositories) *LookupService {
	return &LookupService{repos: repos, limit: 20}
}

type distinctFn func(ctx context.Context, q string, limit int) ([]string, error)

func (s *LookupService) collect(ctx context.Context, q string, sources []distinctFn) ([]string, error) {
	q = strings.TrimSpace(q)

	var mu sync.Mutex
	seen := make(map[string]bool)

	g, gctx := errgroup.WithContext(ctx)
	for _, src := range sources {
		src := src
		g.Go(func() error {
			values, err := src(gctx, q, s.limit)
			if err != nil {
				return err
			}
			mu.Lock()
			for _, v := range values {
				seen[v] = true
			}
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]string, 0, len(seen))
	for v := range seen {
		out = append(out, v)
	}
	sort.Strings(out)
	if len(out) > s.limit {
		out = out[:s.limit]
	}
	return out, nil
}

// Locations returns distinct origin/destination codes matching a prefix.
func (s *LookupService) Locations(ctx context.Context, q string) ([]string, error) {
	return s.collect(ctx, q, []distinctFn{
		s.repos.Air.DistinctLocations,
		s.repos.SeaFcl.DistinctLocations,
		s.repos.SeaLcl.DistinctLocations,
	})
}

// Partners returns distinct carrier/agency names matching a prefix.
func (s *LookupService) Partners(ctx context.Context, q string) ([]string, error) {
	return s.collect(ctx, q, []distinctFn{
		s.repos.Air.DistinctPartners,
		s.repos.SeaFcl.DistinctPartners,
		s.repos.SeaLcl.DistinctPartners,
	})
}
