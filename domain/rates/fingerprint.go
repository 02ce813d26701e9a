package rates

import (
	"strconv"
	"strings"
	"time"

	"ratehub/domain/core"
)

// Fingerprint field order is part of the stored identity of every record.
// Reordering or inserting fields breaks idempotent re-import of unchanged
// source files, so the tuples below must stay stable across versions.

func fpString(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}

func fpNumber(f *float64) string {
	if f == nil {
		return ""
	}
	return strconv.FormatFloat(*f, 'f', -1, 64)
}

func fpDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return t.UTC().Format("2006-01-02")
}

// AirFingerprint derives the content hash identifying an air rate row.
func AirFingerprint(r *AirRate) string {
	parts := []string{
		ModeAir.String(),
		strings.TrimSpace(r.Origin),
		strings.TrimSpace(r.Destination),
		fpString(r.Carrier),
		strings.TrimSpace(r.Currency),
		fpDate(r.ValidFrom),
		fpDate(r.ValidTo),
		fpNumber(r.Min),
		fpNumber(r.Rate45),
		fpNumber(r.Rate100),
		fpNumber(r.Rate300),
		fpNumber(r.Rate500),
		fpNumber(r.Rate1000),
		fpNumber(r.Surcharge1000),
		fpString(r.ETD),
		fpString(r.Agency),
	}
	return core.HashParts(parts).String()
}

// SeaFclFingerprint derives the content hash identifying an FCL rate row.
func SeaFclFingerprint(r *SeaFclRate) string {
	parts := []string{
		ModeSeaFCL.String(),
		strings.TrimSpace(r.Origin),
		strings.TrimSpace(r.Destination),
		fpString(r.Carrier),
		strings.TrimSpace(r.Currency),
		fpDate(r.ValidFrom),
		fpDate(r.ValidTo),
		fpNumber(r.Rate20GP),
		fpNumber(r.Rate40GP),
		fpNumber(r.Rate40HC),
		fpNumber(r.Rate20RF),
		fpNumber(r.Rate40RF),
		fpString(r.TransitTime),
		fpString(r.ETD),
		fpString(r.Agency),
	}
	return core.HashParts(parts).String()
}

// SeaLclFingerprint derives the content hash identifying an LCL rate row.
func SeaLclFingerprint(r *SeaLclRate) string {
	parts := []string{
		ModeSeaLCL.String(),
		strings.TrimSpace(r.Origin),
		strings.TrimSpace(r.Destination),
		fpString(r.Carrier),
		strings.TrimSpace(r.Currency),
		fpDate(r.ValidFrom),
		fpDate(r.ValidTo),
		fpNumber(r.WM),
		fpNumber(r.MinCharge),
		fpNumber(r.RefundFreight),
		fpString(r.TransitTime),
		fpString(r.Agency),
	}
	return core.HashParts(parts).String()
}
