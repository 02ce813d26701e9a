package rates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func strPtr(s string) *string        { return &s }
func numPtr(f float64) *float64      { return &f }
func datePtr(t time.Time) *time.Time { return &t }

func sampleFcl() *SeaFclRate {
	return &SeaFclRate{
		Origin:      "CNSHA",
		Destination: "USLAX",
		Rate20GP:    numPtr(1500),
		Rate40GP:    numPtr(2800),
		Carrier:     strPtr("MSC"),
		Currency:    "USD",
		ValidFrom:   datePtr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)),
		ValidTo:     datePtr(time.Date(2024, 6, 30, 0, 0, 0, 0, time.UTC)),
		TransitTime: strPtr("15-18 days"),
	}
}

func TestSeaFclFingerprint_Deterministic(t *testing.T) {
	a := SeaFclFingerprint(sampleFcl())
	b := SeaFclFingerprint(sampleFcl())
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)
}

func TestSeaFclFingerprint_ContentSensitive(t *testing.T) {
	base := SeaFclFingerprint(sampleFcl())

	changed := sampleFcl()
	changed.Rate20GP = numPtr(1501)
	assert.NotEqual(t, base, SeaFclFingerprint(changed))

	// An absent value and an explicit zero are different contents.
	zeroed := sampleFcl()
	zeroed.Rate40HC = numPtr(0)
	assert.NotEqual(t, base, SeaFclFingerprint(zeroed))
}

func TestSeaFclFingerprint_IgnoresStorageFields(t *testing.T) {
	a := sampleFcl()
	b := sampleFcl()
	b.ID = 99
	b.BatchID = "other-batch"
	b.CreatedAt = time.Now()
	assert.Equal(t, SeaFclFingerprint(a), SeaFclFingerprint(b))
}

func TestAirFingerprint_DateNormalization(t *testing.T) {
	mk := func(loc *time.Location, hour int) *AirRate {
		return &AirRate{
			Origin:      "PVG",
			Destination: "LAX",
			Rate100:     numPtr(4.2),
			Currency:    "USD",
			ValidFrom:   datePtr(time.Date(2024, 5, 1, hour, 30, 0, 0, loc)),
		}
	}

	// Same calendar day in UTC hashes identically regardless of the
	// time-of-day component.
	a := AirFingerprint(mk(time.UTC, 0))
	b := AirFingerprint(mk(time.UTC, 17))
	assert.Equal(t, a, b)
}

func TestSeaLclFingerprint_TrimsText(t *testing.T) {
	a := &SeaLclRate{Origin: "CNSHA", Destination: "USLAX", WM: numPtr(50), Currency: "USD", Carrier: strPtr("COSCO")}
	b := &SeaLclRate{Origin: " CNSHA ", Destination: "USLAX", WM: numPtr(50), Currency: " USD ", Carrier: strPtr(" COSCO ")}
	assert.Equal(t, SeaLclFingerprint(a), SeaLclFingerprint(b))
}

func TestFingerprints_DifferAcrossModes(t *testing.T) {
	// Identical lanes in different collections must never collide, since
	// the mode tag leads every fingerprint tuple.
	lcl := &SeaLclRate{Origin: "CNSHA", Destination: "USLAX", Currency: "USD"}
	fcl := &SeaFclRate{Origin: "CNSHA", Destination: "USLAX", Currency: "USD"}
	assert.NotEqual(t, SeaLclFingerprint(lcl), SeaFclFingerprint(fcl))
}
