package rates

import "time"

// Sort keys supported by the ranking engine.
const (
	SortPriceAsc    = "price_asc"
	SortPriceDesc   = "price_desc"
	SortTransitAsc  = "transit_asc"
	SortTransitDesc = "transit_desc"
	SortNameAsc     = "name_asc"
	SortRefundDesc  = "refund_desc" // SEA_LCL only
)

// Query describes one read-side rate listing request.
// Zero-valued filters are inactive.
type Query struct {
	Mode        Mode
	Origin      string
	Destination string
	Carrier     string
	ValidFrom   *time.Time
	ValidTo     *time.Time
	Base        string
	Weight      float64 // AIR only; <=0 means not supplied
	Sort        string
	Page        int
	PageSize    int
}

// Filters is the store-level subset of Query: text containment filters,
// validity-window overlap, and the fetch cap applied before in-memory
// ranking.
type Filters struct {
	Origin      string
	Destination string
	Carrier     string
	ValidFrom   *time.Time
	ValidTo     *time.Time
	Limit       int
}

// QueryResult is the paginated outcome of a rate listing request.
// Total counts the full filtered set before pagination.
type QueryResult struct {
	Mode     Mode          `json:"mode"`
	Sort     string        `json:"sort"`
	Page     int           `json:"page"`
	PageSize int           `json:"pageSize"`
	Total    int           `json:"total"`
	Items    []interface{} `json:"items"`
}

// RatedAirRate augments an air record with the derived ranking fields.
type RatedAirRate struct {
	AirRate
	SortPrice   *float64 `json:"sortPrice"`
	TransitDays *int     `json:"transitDays"`
}

// RatedSeaFclRate augments an FCL record with the derived ranking fields.
// EffectivePrice is the minimum of the populated container prices.
type RatedSeaFclRate struct {
	SeaFclRate
	EffectivePrice *float64 `json:"effectivePrice"`
	SortPrice      *float64 `json:"sortPrice"`
	TransitDays    *int     `json:"transitDays"`
}

// RatedSeaLclRate augments an LCL record with the derived ranking fields.
type RatedSeaLclRate struct {
	SeaLclRate
	NetCost     *float64 `json:"netCost"`
	SortPrice   *float64 `json:"sortPrice"`
	TransitDays *int     `json:"transitDays"`
}
