// Package bulkfile reads and writes Amazon Ads Sponsored Products bulk
// workbooks. The bulk format is positional: column semantics are fixed by
// index, not by header text, so every index lives in the table below and
// nowhere else.
package bulkfile

// Column indices (0-based) of the Sponsored Products bulk sheet.
const (
	ColEntity         = 1
	ColCampaignID     = 3
	ColAdGroupID      = 4
	ColCampaignName   = 9
	ColAdGroupName    = 10
	ColTargetingType  = 16
	ColSKU            = 21
	ColASIN           = 22
	ColMatchType      = 31
	ColBidding        = 32
	ColPlacement      = 33
	ColExpression     = 35
	ColImpressions    = 38
	ColClicks         = 39
	ColSpend          = 40
	ColOrders         = 41
	ColSales          = 42
	ColConversionRate = 44
	ColROAS           = 47
)

// MinColumns is the narrowest header a qualifying sheet may have.
const MinColumns = ColROAS + 1

// Entity type labels as they appear in the bulk export.
const (
	EntityCampaign          = "Campaign"
	EntityAdGroup           = "Ad Group"
	EntityProductAd         = "Product Ad"
	EntityKeyword           = "Keyword"
	EntityProductTargeting  = "Product Targeting"
	EntityBiddingAdjustment = "Bidding Adjustment"

	entityNegativeKeyword         = "Negative keyword"
	entityCampaignNegativeKeyword = "Campaign Negative Keyword"
)

// Row is one raw sheet row. Cells are addressed by the Col* constants;
// reads past the physical row width yield the empty string, matching how
// the export pads short rows.
type Row []string

// Field returns the cell at index i, or "" when the row is shorter.
func (r Row) Field(i int) string {
	if i < 0 || i >= len(r) {
		return ""
	}
	return r[i]
}
