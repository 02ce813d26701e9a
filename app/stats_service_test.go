package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratehub/domain/rates"
)

func TestStatsCollect(t *testing.T) {
	svc := NewStatsService(stubRepos(
		&stubAirRepo{count: 2, records: []*rates.AirRate{
			{Rate100: fptr(5.0)},
			{Rate100: fptr(7.0)},
		}},
		&stubSeaFclRepo{count: 4, records: []*rates.SeaFclRate{
			{Rate20GP: fptr(1000)},
			{Rate20GP: fptr(2000)},
			{Rate20GP: fptr(4000)},
			{}, // unpriced rows are excluded from the summary
		}},
		&stubSeaLclRepo{count: 1, records: []*rates.SeaLclRate{{WM: fptr(50)}}},
	), 2000)

	report, err := svc.Collect(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(7), report.Total)
	assert.Equal(t, int64(2), report.Air.Count)

	require.NotNil(t, report.SeaFcl.Price)
	assert.Equal(t, 1000.0, report.SeaFcl.Price.Min)
	assert.Equal(t, 4000.0, report.SeaFcl.Price.Max)
	assert.InDelta(t, 2333.33, report.SeaFcl.Price.Mean, 0.01)
	assert.Equal(t, 2000.0, report.SeaFcl.Price.Median)

	require.NotNil(t, report.SeaLcl.Price)
	assert.Equal(t, 50.0, report.SeaLcl.Price.Median)
}

func TestStatsCollect_EmptyStore(t *testing.T) {
	svc := NewStatsService(stubRepos(nil, nil, nil), 2000)

	report, err := svc.Collect(context.Background())
	require.NoError(t, err)
	assert.Zero(t, report.Total)
	assert.Nil(t, report.Air.Price)
}

func TestStatsCollect_ErrorPropagates(t *testing.T) {
	svc := NewStatsService(stubRepos(&stubAirRepo{err: assert.AnError}, nil, nil), 2000)

	_, err := svc.Collect(context.Background())
	require.Error(t, err)
}
