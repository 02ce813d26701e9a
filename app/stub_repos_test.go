package app

import (
	"context"

	"ratehub/domain/rates"
	"ratehub/ports"
)

// Stub repositories returning canned data, enough to exercise the
// services without a database.

type stubAirRepo struct {
	records   []*rates.AirRate
	count     int64
	locations []string
	partners  []string
	err       error
}

func (s *stubAirRepo) Create(context.Context, *rates.AirRate) error { return s.err }
func (s *stubAirRepo) CreateMany(_ context.Context, rs []*rates.AirRate) (int64, error) {
	return int64(len(rs)), s.err
}
func (s *stubAirRepo) DeleteByID(context.Context, int64) error { return s.err }
func (s *stubAirRepo) DeleteByBatch(context.Context, string) (int64, error) {
	return int64(len(s.records)), s.err
}
func (s *stubAirRepo) List(context.Context, rates.Filters) ([]*rates.AirRate, error) {
	return s.records, s.err
}
func (s *stubAirRepo) Count(context.Context) (int64, error) { return s.count, s.err }
func (s *stubAirRepo) DistinctLocations(context.Context, string, int) ([]string, error) {
	return s.locations, s.err
}
func (s *stubAirRepo) DistinctPartners(context.Context, string, int) ([]string, error) {
	return s.partners, s.err
}

type stubSeaFclRepo struct {
	records   []*rates.SeaFclRate
	count     int64
	locations []string
	partners  []string
	err       error
}

func (s *stubSeaFclRepo) Create(context.Context, *rates.SeaFclRate) error { return s.err }
func (s *stubSeaFclRepo) CreateMany(_ context.Context, rs []*rates.SeaFclRate) (int64, error) {
	return int64(len(rs)), s.err
}
func (s *stubSeaFclRepo) DeleteByID(context.Context, int64) error { return s.err }
func (s *stubSeaFclRepo) DeleteByBatch(context.Context, string) (int64, error) {
	return int64(len(s.records)), s.err
}
func (s *stubSeaFclRepo) List(context.Context, rates.Filters) ([]*rates.SeaFclRate, error) {
	return s.records, s.err
}
func (s *stubSeaFclRepo) Count(context.Context) (int64, error) { return s.count, s.err }
func (s *stubSeaFclRepo) DistinctLocations(context.Context, string, int) ([]string, error) {
	return s.locations, s.err
}
func (s *stubSeaFclRepo) DistinctPartners(context.Context, string, int) ([]string, error) {
	return s.partners, s.err
}

type stubSeaLclRepo struct {
	records   []*rates.SeaLclRate
	count     int64
	locations []string
	partners  []string
	err       error
}

func (s *stubSeaLclRepo) Create(context.Context, *rates.SeaLclRate) error { return s.err }
func (s *stubSeaLclRepo) CreateMany(_ context.Context, rs []*rates.SeaLclRate) (int64, error) {
	return int64(len(rs)), s.err
}
func (s *stubSeaLclRepo) DeleteByID(context.Context, int64) error { return s.err }
func (s *stubSeaLclRepo) DeleteByBatch(context.Context, string) (int64, error) {
	return int64(len(s.records)), s.err
}
func (s *stubSeaLclRepo) List(context.Context, rates.Filters) ([]*rates.SeaLclRate, error) {
	return s.records, s.err
}
func (s *stubSeaLclRepo) Count(context.Context) (int64, error) { return s.count, s.err }
func (s *stubSeaLclRepo) DistinctLocations(context.Context, string, int) ([]string, error) {
	return s.locations, s.err
}
func (s *stubSeaLclRepo) DistinctPartners(context.Context, string, int) ([]string, error) {
	return s.partners, s.err
}

func stubRepos(air *stubAirRepo, fcl *stubSeaFclRepo, lcl *stubSeaLclRepo) ports.RateRepositories {
	if air == nil {
		air = &stubAirRepo{}
	}
	if fcl == nil {
		fcl = &stubSeaFclRepo{}
	}
	if lcl == nil {
		lcl = &stubSeaLclRepo{}
	}
	return ports.RateRepositories{Air: air, SeaFcl: fcl, SeaLcl: lcl}
}

func fptr(f float64) *float64 { return &f }
func sptr(s string) *string   { return &s }
