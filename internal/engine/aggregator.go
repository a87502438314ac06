package engine

import (
	"fmt"

	"github.com/ignite/ads-renamer/internal/bulkfile"
)

// Aggregate streams the sheet's rows once and builds the campaign →
// ad-group hierarchy with all performance tables. Row 0 is treated as the
// header and skipped. Per-row anomalies (unknown codes, unknown ad-group
// ids) are skipped silently; campaigns without a single Product Ad are
// dropped afterwards with one diagnostic each.
//
// The returned Result is not yet ranked; see Rank.
func Aggregate(rows []bulkfile.Row) *Result {
	res := &Result{
		Campaigns:   make(map[string]*Campaign),
		GlobalAsins: NewAccumulatorTable(),
	}
	var seen []string

	for i, row := range rows {
		if i == 0 {
			continue
		}
		kind := Classify(row)
		if kind == RowSkip {
			continue
		}

		campaignID := row.Field(bulkfile.ColCampaignID)
		campaign, ok := res.Campaigns[campaignID]
		if !ok {
			campaign = newCampaign(campaignID)
			res.Campaigns[campaignID] = campaign
			seen = append(seen, campaignID)
		}
		adGroupID := row.Field(bulkfile.ColAdGroupID)

		switch kind {
		case RowCampaign:
			// Last write wins if the campaign row reappears.
			campaign.Name = row.Field(bulkfile.ColCampaignName)
			campaign.Targeting = ParseTargetingType(row.Field(bulkfile.ColTargetingType))
			campaign.Bidding = ParseBiddingStrategy(row.Field(bulkfile.ColBidding))

		case RowAdGroup:
			if adGroupID == "" {
				continue
			}
			// First write wins for duplicated ad-group rows.
			if _, ok := campaign.AdGroups[adGroupID]; !ok {
				campaign.AdGroups[adGroupID] = &AdGroup{
					ID:         adGroupID,
					Name:       row.Field(bulkfile.ColAdGroupName),
					MatchTypes: NewAccumulatorTable(),
				}
				campaign.AdGroupOrder = append(campaign.AdGroupOrder, adGroupID)
			}

		case RowProductAd:
			asin := row.Field(bulkfile.ColASIN)
			if asin == "" {
				continue
			}
			adGroup, ok := campaign.AdGroups[adGroupID]
			if !ok {
				continue
			}
			rec := AsinPerformance{
				SKU:            row.Field(bulkfile.ColSKU),
				ASIN:           asin,
				Orders:         coerceFloat(row.Field(bulkfile.ColOrders)),
				ConversionRate: coerceFloat(row.Field(bulkfile.ColConversionRate)),
				ROAS:           coerceFloat(row.Field(bulkfile.ColROAS)),
				Clicks:         coerceFloat(row.Field(bulkfile.ColClicks)),
				Impressions:    coerceFloat(row.Field(bulkfile.ColImpressions)),
			}
			adGroup.Asins = append(adGroup.Asins, rec)
			campaign.AllAsins = append(campaign.AllAsins, asin)
			res.GlobalAsins.Get(asin).Add(
				rec.Orders, rec.Clicks,
				coerceFloat(row.Field(bulkfile.ColSales)),
				coerceFloat(row.Field(bulkfile.ColSpend)),
				rec.Impressions,
			)

		case RowKeyword:
			addMatchMetrics(campaign, adGroupID, MatchCode(row.Field(bulkfile.ColMatchType)), row)

		case RowProductTargeting:
			addMatchMetrics(campaign, adGroupID, ProductCode(row.Field(bulkfile.ColExpression)), row)

		case RowBiddingAdjustment:
			code := PlacementCode(row.Field(bulkfile.ColPlacement))
			if code == "" {
				continue
			}
			campaign.Placements.Get(code).Add(
				coerceFloat(row.Field(bulkfile.ColOrders)),
				coerceFloat(row.Field(bulkfile.ColClicks)),
				coerceFloat(row.Field(bulkfile.ColSales)),
				coerceFloat(row.Field(bulkfile.ColSpend)),
				coerceFloat(row.Field(bulkfile.ColImpressions)),
			)
		}
	}

	for _, asin := range res.GlobalAsins.Codes() {
		acc, _ := res.GlobalAsins.Lookup(asin)
		acc.Derive()
	}

	// A campaign with no Product Ad anywhere is invalid: drop it and
	// record one diagnostic, preserving first-seen order for the rest.
	for _, id := range seen {
		campaign := res.Campaigns[id]
		if len(campaign.asinRecords()) == 0 {
			res.Diagnostics = append(res.Diagnostics, fmt.Sprintf("Campaign %s: No Product Ads found", id))
			delete(res.Campaigns, id)
			continue
		}
		res.Order = append(res.Order, id)
	}

	return res
}

// addMatchMetrics folds a keyword or product-targeting row into the ad
// group's match-type table and the campaign's code set. Rows with an
// unknown ad group or unresolvable code contribute nothing.
func addMatchMetrics(campaign *Campaign, adGroupID, code string, row bulkfile.Row) {
	if code == "" {
		return
	}
	adGroup, ok := campaign.AdGroups[adGroupID]
	if !ok {
		return
	}
	adGroup.MatchTypes.Get(code).Add(
		coerceFloat(row.Field(bulkfile.ColOrders)),
		coerceFloat(row.Field(bulkfile.ColClicks)),
		coerceFloat(row.Field(bulkfile.ColSales)),
		coerceFloat(row.Field(bulkfile.ColSpend)),
		coerceFloat(row.Field(bulkfile.ColImpressions)),
	)
	campaign.MatchTypeCodes[code] = struct{}{}
}
