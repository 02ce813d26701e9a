package app

import (
	"context"
	"math"
	"regexp"
	"sort"

	"ratehub/domain/rates"
	"ratehub/internal/errors"
	"ratehub/ports"
)

// RateQueryService normalizes heterogeneous stored rate rows into one
// comparable price per record, ranks them, and paginates. Everything
// past the store-level filters happens in memory, bounded by the fetch
// cap.
type RateQueryService struct {
	repos    ports.RateRepositories
	maxFetch int
}

// NewRateQueryService creates the read-side query engine.
func NewRateQueryService(repos ports.RateRepositories, maxFetch int) *RateQueryService {
	return &RateQueryService{repos: repos, maxFetch: maxFetch}
}

// Base selectors per mode. Unrecognized selectors fall back to the
// mode default rather than erroring.
const (
	defaultBaseSeaFcl = "20GP"
	defaultBaseSeaLcl = "WM"
	defaultBaseAir    = "R100"
)

// ranked pairs a response item with the keys the sorter needs.
type ranked struct {
	item    interface{}
	price   *float64
	transit *int
	name    string
	refund  *float64
}

// Query runs one rate listing request. Unknown mode, base, or sort
// values degrade to documented defaults; only an unreachable store is
// fatal.
func (s *RateQueryService) Query(ctx context.Context, q rates.Query) (*rates.QueryResult, error) {
	if _, ok := rates.ParseMode(q.Mode.String()); !ok {
		q.Mode = rates.ModeSeaFCL
	}
	q.Sort = normalizeSort(q.Mode, q.Sort)
	if q.Page < 1 {
		q.Page = 1
	}
	if q.PageSize < 1 {
		q.PageSize = 10
	}
	if q.PageSize > 100 {
		q.PageSize = 100
	}

	filters := rates.Filters{
		Origin:      q.Origin,
		Destination: q.Destination,
		Carrier:     q.Carrier,
		ValidFrom:   q.ValidFrom,
		ValidTo:     q.ValidTo,
		Limit:       s.maxFetch,
	}

	var (
		items []ranked
		err   error
	)
	switch q.Mode {
	case rates.ModeAir:
		items, err = s.rankAir(ctx, filters, q)
	case rates.ModeSeaFCL:
		items, err = s.rankSeaFcl(ctx, filters, q)
	case rates.ModeSeaLCL:
		items, err = s.rankSeaLcl(ctx, filters, q)
	}
	if err != nil {
		return nil, errors.Wrap(err, "rate query failed")
	}

	sortRanked(items, q.Sort)

	total := len(items)
	start := (q.Page - 1) * q.PageSize
	if start > total {
		start = total
	}
	end := start + q.PageSize
	if end > total {
		end = total
	}

	out := make([]interface{}, 0, end-start)
	for _, it := range items[start:end] {
		out = append(out, it.item)
	}

	return &rates.QueryResult{
		Mode:     q.Mode,
		Sort:     q.Sort,
		Page:     q.Page,
		PageSize: q.PageSize,
		Total:    total,
		Items:    out,
	}, nil
}

func normalizeSort(mode rates.Mode, s string) string {
	switch s {
	case rates.SortPriceAsc, rates.SortPriceDesc, rates.SortTransitAsc, rates.SortTransitDesc, rates.SortNameAsc:
		return s
	case rates.SortRefundDesc:
		if mode == rates.ModeSeaLCL {
			return s
		}
	}
	return rates.SortPriceAsc
}

func (s *RateQueryService) rankSeaFcl(ctx context.Context, f rates.Filters, q rates.Query) ([]ranked, error) {
	records, err := s.repos.SeaFcl.List(ctx, f)
	if err != nil {
		return nil, err
	}

	base := normalizeFclBase(q.Base)
	items := make([]ranked, 0, len(records))
	for _, r := range records {
		effective := minPopulated(r.Rate20GP, r.Rate40GP, r.Rate40HC, r.Rate20RF, r.Rate40RF)

		price := fclBaseField(r, base)
		if price == nil {
			price = effective
		}
		if price == nil {
			price = r.Rate20GP
		}

		transit := transitDays(r.TransitTime)
		items = append(items, ranked{
			item: &rates.RatedSeaFclRate{
				SeaFclRate:     *r,
				EffectivePrice: effective,
				SortPrice:      price,
				TransitDays:    transit,
			},
			price:   price,
			transit: transit,
			name:    derefString(r.Carrier),
		})
	}
	return items, nil
}

func normalizeFclBase(base string) string {
	switch base {
	case "20GP", "40GP", "40HC", "20RF", "40RF":
		return base
	}
	return defaultBaseSeaFcl
}

func fclBaseField(r *rates.SeaFclRate, base string) *float64 {
	switch base {
	case "20GP":
		return r.Rate20GP
	case "40GP":
		return r.Rate40GP
	case "40HC":
		return r.Rate40HC
	case "20RF":
		return r.Rate20RF
	case "40RF":
		return r.Rate40RF
	}
	return nil
}

func (s *RateQueryService) rankSeaLcl(ctx context.Context, f rates.Filters, q rates.Query) ([]ranked, error) {
	records, err := s.repos.SeaLcl.List(ctx, f)
	if err != nil {
		return nil, err
	}

	base := normalizeLclBase(q.Base)
	items := make([]ranked, 0, len(records))
	for _, r := range records {
		netCost := lclNetCost(r)

		var price *float64
		switch base {
		case "NET_COST":
			// A non-positive net cost is treated as no valid price and
			// sorts last, not as the cheapest. Kept for compatibility
			// with existing consumers; flagged for product review.
			if netCost != nil && *netCost > 0 {
				price = netCost
			}
		case "WM":
			price = r.WM
		case "MIN_CHARGE":
			price = r.MinCharge
		case "REFUND_FREIGHT":
			price = r.RefundFreight
		}

		transit := transitDays(r.TransitTime)
		items = append(items, ranked{
			item: &rates.RatedSeaLclRate{
				SeaLclRate:  *r,
				NetCost:     netCost,
				SortPrice:   price,
				TransitDays: transit,
			},
			price:   price,
			transit: transit,
			name:    derefString(r.Carrier),
			refund:  r.RefundFreight,
		})
	}
	return items, nil
}

func normalizeLclBase(base string) string {
	switch base {
	case "WM", "MIN_CHARGE", "REFUND_FREIGHT", "NET_COST":
		return base
	case "NET":
		return "NET_COST"
	}
	return defaultBaseSeaLcl
}

// lclNetCost derives (wm ?? minCharge) + (refundFreight ?? 0), defined
// only when a weight/measure rate or minimum charge is present.
func lclNetCost(r *rates.SeaLclRate) *float64 {
	var charge *float64
	if r.WM != nil {
		charge = r.WM
	} else if r.MinCharge != nil {
		charge = r.MinCharge
	}
	if charge == nil {
		return nil
	}
	net := *charge
	if r.RefundFreight != nil {
		net += *r.RefundFreight
	}
	return &net
}

func (s *RateQueryService) rankAir(ctx context.Context, f rates.Filters, q rates.Query) ([]ranked, error) {
	records, err := s.repos.Air.List(ctx, f)
	if err != nil {
		return nil, err
	}

	base := normalizeAirBase(q.Base)
	items := make([]ranked, 0, len(records))
	for _, r := range records {
		price := airPrice(r, base, q.Weight)
		transit := transitDays(r.ETD)
		items = append(items, ranked{
			item: &rates.RatedAirRate{
				AirRate:     *r,
				SortPrice:   price,
				TransitDays: transit,
			},
			price:   price,
			transit: transit,
			name:    derefString(r.Carrier),
		})
	}
	return items, nil
}

func normalizeAirBase(base string) string {
	switch base {
	case "MIN", "R45", "R100", "R300", "R500", "R1000", "S1000":
		return base
	}
	return defaultBaseAir
}

// airPrice selects the applicable tier. A supplied positive shipment
// weight picks the tier by bucketing; beyond 1000 kg the price is
// always the 1000 tier plus the surcharge, never a lower tier. Without
// a weight the base selector names the tier directly, surcharge-free.
func airPrice(r *rates.AirRate, base string, weight float64) *float64 {
	if weight > 0 {
		var tier *float64
		switch {
		case weight <= 45:
			tier = r.Rate45
		case weight <= 100:
			tier = r.Rate100
		case weight <= 300:
			tier = r.Rate300
		case weight <= 500:
			tier = r.Rate500
		default:
			tier = r.Rate1000
		}
		if tier == nil {
			return nil
		}
		price := *tier
		if weight > 1000 && r.Surcharge1000 != nil {
			price += *r.Surcharge1000
		}
		return &price
	}

	switch base {
	case "MIN":
		return r.Min
	case "R45":
		return r.Rate45
	case "R100":
		return r.Rate100
	case "R300":
		return r.Rate300
	case "R500":
		return r.Rate500
	case "R1000":
		return r.Rate1000
	case "S1000":
		return r.Surcharge1000
	}
	return nil
}

var leadingIntPattern = regexp.MustCompile(`\d+`)

// transitDays extracts the first integer from a transit-time descriptor
// such as "15-18 days". Absent or unparseable text yields nil, which
// the sorter treats as worst-case.
func transitDays(s *string) *int {
	if s == nil {
		return nil
	}
	m := leadingIntPattern.FindString(*s)
	if m == "" {
		return nil
	}
	days := 0
	for _, c := range m {
		days = days*10 + int(c-'0')
		if days > math.MaxInt32 {
			return nil
		}
	}
	return &days
}

// sortRanked applies a stable multi-criterion sort. Records with no
// valid value for the active key sort after every record with one,
// regardless of direction; ties keep scan order.
func sortRanked(items []ranked, sortKey string) {
	numeric := func(key func(ranked) (float64, bool), desc bool) {
		sort.SliceStable(items, func(i, j int) bool {
			vi, iok := key(items[i])
			vj, jok := key(items[j])
			if iok != jok {
				return iok
			}
			if !iok {
				return false
			}
			if desc {
				return vi > vj
			}
			return vi < vj
		})
	}

	priceKey := func(r ranked) (float64, bool) {
		if r.price == nil {
			return 0, false
		}
		return *r.price, true
	}
	transitKey := func(r ranked) (float64, bool) {
		if r.transit == nil {
			return 0, false
		}
		return float64(*r.transit), true
	}
	refundKey := func(r ranked) (float64, bool) {
		if r.refund == nil {
			return 0, false
		}
		return *r.refund, true
	}

	switch sortKey {
	case rates.SortPriceAsc:
		numeric(priceKey, false)
	case rates.SortPriceDesc:
		numeric(priceKey, true)
	case rates.SortTransitAsc:
		numeric(transitKey, false)
	case rates.SortTransitDesc:
		numeric(transitKey, true)
	case rates.SortRefundDesc:
		numeric(refundKey, true)
	case rates.SortNameAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].name < items[j].name
		})
	}
}

func minPopulated(vals ...*float64) *float64 {
	var min *float64
	for _, v := range vals {
		if v == nil {
			continue
		}
		if min == nil || *v < *min {
			min = v
		}
	}
	if min == nil {
		return nil
	}
	out := *min
	return &out
}

func derefString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
