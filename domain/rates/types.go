package rates

import (
	"time"
)

// Mode identifies one of the three known rate-record shapes.
type Mode string

const (
	ModeAir    Mode = "AIR"
	ModeSeaFCL Mode = "SEA_FCL"
	ModeSeaLCL Mode = "SEA_LCL"
)

// ParseMode parses a mode string, reporting whether it is recognized.
func ParseMode(s string) (Mode, bool) {
	switch Mode(s) {
	case ModeAir, ModeSeaFCL, ModeSeaLCL:
		return Mode(s), true
	}
	return "", false
}

// String returns the mode tag as stored and transmitted.
func (m Mode) String() string {
	return string(m)
}

// AirRate is one air-cargo tariff row with weight-tiered prices.
// Tier prices apply per chargeable kilogram at the named break point;
// Surcharge1000 applies on top of Rate1000 beyond 1000 kg.
type AirRate struct {
	ID          int64  `db:"id" json:"id"`
	Origin      string `db:"origin" json:"origin"`
	Destination string `db:"destination" json:"destination"`

	Min           *float64 `db:"min" json:"min"`
	Rate45        *float64 `db:"rate45" json:"rate45"`
	Rate100       *float64 `db:"rate100" json:"rate100"`
	Rate300       *float64 `db:"rate300" json:"rate300"`
	Rate500       *float64 `db:"rate500" json:"rate500"`
	Rate1000      *float64 `db:"rate1000" json:"rate1000"`
	Surcharge1000 *float64 `db:"surcharge1000" json:"surcharge1000"`

	Carrier   *string    `db:"carrier" json:"carrier"`
	Currency  string     `db:"currency" json:"currency"`
	ValidFrom *time.Time `db:"valid_from" json:"validFrom"`
	ValidTo   *time.Time `db:"valid_to" json:"validTo"`
	ETD       *string    `db:"etd" json:"etd"`
	Agency    *string    `db:"agency" json:"agency"`

	Fingerprint string    `db:"fingerprint" json:"-"`
	BatchID     string    `db:"batch_id" json:"batchId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// SeaFclRate is one full-container-load tariff row with per-container prices.
type SeaFclRate struct {
	ID          int64  `db:"id" json:"id"`
	Origin      string `db:"origin" json:"origin"`
	Destination string `db:"destination" json:"destination"`

	Rate20GP *float64 `db:"rate20gp" json:"rate20gp"`
	Rate40GP *float64 `db:"rate40gp" json:"rate40gp"`
	Rate40HC *float64 `db:"rate40hc" json:"rate40hc"`
	Rate20RF *float64 `db:"rate20rf" json:"rate20rf"`
	Rate40RF *float64 `db:"rate40rf" json:"rate40rf"`

	Carrier     *string    `db:"carrier" json:"carrier"`
	Currency    string     `db:"currency" json:"currency"`
	ValidFrom   *time.Time `db:"valid_from" json:"validFrom"`
	ValidTo     *time.Time `db:"valid_to" json:"validTo"`
	TransitTime *string    `db:"transit_time" json:"transitTime"`
	ETD         *string    `db:"etd" json:"etd"`
	Agency      *string    `db:"agency" json:"agency"`

	Fingerprint string    `db:"fingerprint" json:"-"`
	BatchID     string    `db:"batch_id" json:"batchId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}

// SeaLclRate is one less-than-container-load tariff row.
// RefundFreight is a carrier adjustment and may be negative.
type SeaLclRate struct {
	ID          int64  `db:"id" json:"id"`
	Origin      string `db:"origin" json:"origin"`
	Destination string `db:"destination" json:"destination"`

	WM            *float64 `db:"wm" json:"wm"`
	MinCharge     *float64 `db:"min_charge" json:"minCharge"`
	RefundFreight *float64 `db:"refund_freight" json:"refundFreight"`

	Carrier     *string    `db:"carrier" json:"carrier"`
	Currency    string     `db:"currency" json:"currency"`
	ValidFrom   *time.Time `db:"valid_from" json:"validFrom"`
	ValidTo     *time.Time `db:"valid_to" json:"validTo"`
	TransitTime *string    `db:"transit_time" json:"transitTime"`
	Agency      *string    `db:"agency" json:"agency"`

	Fingerprint string    `db:"fingerprint" json:"-"`
	BatchID     string    `db:"batch_id" json:"batchId"`
	CreatedAt   time.Time `db:"created_at" json:"createdAt"`
}
