package api

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ratehub/domain/rates"
	"ratehub/internal/errors"
)

func TestParseRateQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet,
		"/api/rates?mode=AIR&origin=PVG&destination=LAX&carrier=CX&base=R300&weight=120.5&sort=transit_asc&page=2&pageSize=25", nil)

	q := parseRateQuery(r)

	assert.Equal(t, rates.ModeAir, q.Mode)
	assert.Equal(t, "PVG", q.Origin)
	assert.Equal(t, "LAX", q.Destination)
	assert.Equal(t, "CX", q.Carrier)
	assert.Equal(t, "R300", q.Base)
	assert.Equal(t, 120.5, q.Weight)
	assert.Equal(t, "transit_asc", q.Sort)
	assert.Equal(t, 2, q.Page)
	assert.Equal(t, 25, q.PageSize)
}

func TestParseRateQuery_ValidDateShorthand(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/rates?validDate=2024-05-01", nil)

	q := parseRateQuery(r)

	day := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	require.NotNil(t, q.ValidFrom)
	require.NotNil(t, q.ValidTo)
	assert.True(t, q.ValidFrom.Equal(day))
	assert.True(t, q.ValidTo.Equal(day))
}

func TestParseRateQuery_ExplicitWindowBeatsShorthand(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet,
		"/api/rates?validFrom=2024-01-01&validDate=2024-05-01", nil)

	q := parseRateQuery(r)
	require.NotNil(t, q.ValidFrom)
	assert.Equal(t, 2024, q.ValidFrom.Year())
	assert.Equal(t, time.January, q.ValidFrom.Month())
	assert.Nil(t, q.ValidTo)
}

func TestParseRateQuery_BaseContainerAlias(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/rates?baseContainer=40HC", nil)

	q := parseRateQuery(r)
	assert.Equal(t, "40HC", q.Base)
}

func TestParseRateQuery_MalformedFiltersDegrade(t *testing.T) {
	// Bad filter values never fail a listing; they fall back to their
	// defaults exactly like bad page or pageSize values do.
	r := httptest.NewRequest(http.MethodGet,
		"/api/rates?mode=AIR&weight=heavy&validFrom=05%2F01%2F2024&validTo=soon&page=x", nil)

	q := parseRateQuery(r)
	assert.Equal(t, rates.ModeAir, q.Mode)
	assert.Zero(t, q.Weight)
	assert.Nil(t, q.ValidFrom)
	assert.Nil(t, q.ValidTo)
	assert.Zero(t, q.Page)
}

func TestParseRateQuery_MalformedShorthandDegrades(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/api/rates?validDate=May+1st", nil)

	q := parseRateQuery(r)
	assert.Nil(t, q.ValidFrom)
	assert.Nil(t, q.ValidTo)
}

func TestDeleteEndpoints_RequirePassword(t *testing.T) {
	// The password gate trips before any service is touched, so a server
	// with no services wired is enough here.
	srv := NewServer(nil, nil, nil, nil, nil, "s3cret")
	router := srv.Router()

	for _, target := range []string{"/api/rates/1?mode=AIR", "/api/rates/batch?batchId=b1"} {
		req := httptest.NewRequest(http.MethodDelete, target, nil)
		req.Header.Set("X-Delete-Password", "wrong")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusForbidden, rec.Code, target)
	}
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(errors.InvalidInput("x")))
	assert.Equal(t, http.StatusForbidden, statusFor(errors.Unauthorized("x")))
	assert.Equal(t, http.StatusNotFound, statusFor(errors.NotFound("rate")))
	assert.Equal(t, http.StatusUnprocessableEntity, statusFor(errors.ImportNoMatch("x")))
	assert.Equal(t, http.StatusInternalServerError, statusFor(assert.AnError))
}
