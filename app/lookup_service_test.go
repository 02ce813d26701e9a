package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupLocations_MergesAndDedupes(t *testing.T) {
	svc := NewLookupService(stubRepos(
		&stubAirRepo{locations: []string{"PVG", "LAX"}},
		&stubSeaFclRepo{locations: []string{"CNSHA", "USLAX", "LAX"}},
		&stubSeaLclRepo{locations: []string{"CNSHA"}},
	))

	got, err := svc.Locations(context.Background(), "  ")
	require.NoError(t, err)
	assert.Equal(t, []string{"CNSHA", "LAX", "PVG", "USLAX"}, got)
}

func TestLookupPartners(t *testing.T) {
	svc := NewLookupService(stubRepos(
		&stubAirRepo{partners: []string{"CX"}},
		&stubSeaFclRepo{partners: []string{"MSC", "COSCO"}},
		&stubSeaLclRepo{partners: []string{"COSCO"}},
	))

	got, err := svc.Partners(context.Background(), "c")
	require.NoError(t, err)
	assert.Equal(t, []string{"COSCO", "CX", "MSC"}, got)
}

func TestLookup_ErrorFromAnyCollection(t *testing.T) {
	svc := NewLookupService(stubRepos(
		&stubAirRepo{},
		&stubSeaFclRepo{err: assert.AnError},
		&stubSeaLclRepo{},
	))

	_, err := svc.Locations(context.Background(), "c")
	require.Error(t, err)
}
