// Package engine implements the analytics pass over a Sponsored Products
// bulk sheet: row classification, campaign/ad-group aggregation, and the
// best-of ranking that drives name generation.
package engine

// TargetingType is a campaign's targeting mode.
type TargetingType int

const (
	TargetingManual TargetingType = iota
	TargetingAuto
)

// Code returns the single-letter code used in generated names.
func (t TargetingType) Code() string {
	if t == TargetingAuto {
		return "A"
	}
	return "M"
}

// BiddingStrategy is a campaign's bidding strategy.
type BiddingStrategy int

const (
	BiddingUnknown BiddingStrategy = iota
	BiddingFixed
	BiddingDownOnly
	BiddingUpAndDown
)

// Code returns the compact code used in generated names. Unknown renders
// as the empty string, matching a blank strategy cell in the export.
func (b BiddingStrategy) Code() string {
	switch b {
	case BiddingFixed:
		return "Fix"
	case BiddingDownOnly:
		return "DwnO"
	case BiddingUpAndDown:
		return "UnD"
	}
	return ""
}

// AsinPerformance is one Product Ad occurrence inside an ad group.
type AsinPerformance struct {
	SKU            string
	ASIN           string
	Orders         float64
	ConversionRate float64
	ROAS           float64
	Clicks         float64
	Impressions    float64
}

// Accumulator keeps running performance sums. ConversionRate and ROAS are
// derived once after all rows are consumed, never incrementally.
type Accumulator struct {
	Orders      float64
	Clicks      float64
	Sales       float64
	Spend       float64
	Impressions float64

	ConversionRate float64
	ROAS           float64
}

// Add folds one row's metrics into the accumulator.
func (a *Accumulator) Add(orders, clicks, sales, spend, impressions float64) {
	a.Orders += orders
	a.Clicks += clicks
	a.Sales += sales
	a.Spend += spend
	a.Impressions += impressions
}

// Derive computes conversion rate and ROAS from the sums. Zero
// denominators yield zero.
func (a *Accumulator) Derive() {
	a.ConversionRate = 0
	if a.Clicks > 0 {
		a.ConversionRate = a.Orders / a.Clicks
	}
	a.ROAS = 0
	if a.Spend > 0 {
		a.ROAS = a.Sales / a.Spend
	}
}

// AccumulatorTable is a code-keyed accumulator map that remembers
// insertion order, so ranking ties beyond the listed sort keys resolve to
// first-seen order.
type AccumulatorTable struct {
	entries map[string]*Accumulator
	order   []string
}

// NewAccumulatorTable returns an empty table.
func NewAccumulatorTable() *AccumulatorTable {
	return &AccumulatorTable{entries: make(map[string]*Accumulator)}
}

// Get returns the accumulator for code, creating it on first use.
func (t *AccumulatorTable) Get(code string) *Accumulator {
	if acc, ok := t.entries[code]; ok {
		return acc
	}
	acc := &Accumulator{}
	t.entries[code] = acc
	t.order = append(t.order, code)
	return acc
}

// Lookup returns the accumulator for code without creating it.
func (t *AccumulatorTable) Lookup(code string) (*Accumulator, bool) {
	acc, ok := t.entries[code]
	return acc, ok
}

// Codes returns all codes in insertion order.
func (t *AccumulatorTable) Codes() []string {
	return t.order
}

// Len returns the number of entries.
func (t *AccumulatorTable) Len() int {
	return len(t.order)
}

// AdGroup is one ad group's aggregated state.
type AdGroup struct {
	ID   string
	Name string

	// Asins holds one record per Product Ad row, in row order.
	Asins []AsinPerformance
	// MatchTypes accumulates keyword and product-targeting performance by
	// code; Ex/Ph/Br and PAT/CAT share the table.
	MatchTypes *AccumulatorTable

	// Derived by the ranking pass; empty until then.
	BestASIN      string
	BestMatchType string
}

// Campaign is one campaign's aggregated state plus its derived best-of
// fields.
type Campaign struct {
	ID        string
	Name      string
	Targeting TargetingType
	Bidding   BiddingStrategy

	AdGroups     map[string]*AdGroup
	AdGroupOrder []string

	// Placements accumulates Bidding Adjustment rows by placement code.
	// Campaign level only; ad groups carry no placement table.
	Placements *AccumulatorTable
	// MatchTypeCodes is the set of match-type codes seen anywhere in the
	// campaign.
	MatchTypeCodes map[string]struct{}
	// AllAsins is the flat list of every advertised ASIN, duplicates
	// included; used only for the global-performance ranking fallback.
	AllAsins []string

	// Derived by the ranking pass.
	BestASIN      string
	BestMatchType string
	BestPlacement string
}

func newCampaign(id string) *Campaign {
	return &Campaign{
		ID:             id,
		AdGroups:       make(map[string]*AdGroup),
		Placements:     NewAccumulatorTable(),
		MatchTypeCodes: make(map[string]struct{}),
		BestPlacement:  "N/A",
	}
}

// OrderedAdGroups returns the campaign's ad groups in first-seen order.
func (c *Campaign) OrderedAdGroups() []*AdGroup {
	out := make([]*AdGroup, 0, len(c.AdGroupOrder))
	for _, id := range c.AdGroupOrder {
		out = append(out, c.AdGroups[id])
	}
	return out
}

// asinRecords collects every ASIN performance record across the
// campaign's ad groups, in ad-group then row order.
func (c *Campaign) asinRecords() []AsinPerformance {
	var all []AsinPerformance
	for _, id := range c.AdGroupOrder {
		all = append(all, c.AdGroups[id].Asins...)
	}
	return all
}

// Result is the complete aggregated and ranked hierarchy for one upload.
type Result struct {
	Campaigns map[string]*Campaign
	// Order lists surviving campaign ids in first-seen row order.
	Order []string
	// GlobalAsins accumulates every ASIN's performance across the whole
	// file, independent of campaign boundaries.
	GlobalAsins *AccumulatorTable
	// Diagnostics holds one line per dropped campaign.
	Diagnostics []string
}

// OrderedCampaigns returns the surviving campaigns in first-seen order.
func (r *Result) OrderedCampaigns() []*Campaign {
	out := make([]*Campaign, 0, len(r.Order))
	for _, id := range r.Order {
		out = append(out, r.Campaigns[id])
	}
	return out
}

// AsinSet returns the distinct advertised ASINs across all surviving
// campaigns. Used to validate short-name mapping uploads.
func (r *Result) AsinSet() map[string]struct{} {
	set := make(map[string]struct{})
	for _, c := range r.Campaigns {
		for _, asin := range c.AllAsins {
			set[asin] = struct{}{}
		}
	}
	return set
}
