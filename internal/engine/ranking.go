package engine

import "sort"

// Rank annotates every surviving campaign and ad group with its best
// ASIN, best match type and best placement. All sorts are stable, so ties
// beyond the listed keys keep first-seen order. After Rank returns the
// hierarchy is read-only for naming and export.
func Rank(res *Result) {
	for _, id := range res.Order {
		campaign := res.Campaigns[id]

		campaign.BestASIN = bestAsin(campaign.asinRecords(), campaign.AllAsins, res.GlobalAsins)
		campaign.BestMatchType = bestMatchType(rollUpMatchTypes(campaign))
		campaign.BestPlacement = bestPlacement(campaign.Placements)

		for _, adGroupID := range campaign.AdGroupOrder {
			adGroup := campaign.AdGroups[adGroupID]
			if len(adGroup.Asins) > 0 {
				adGroup.BestASIN = bestAsin(adGroup.Asins, recordAsins(adGroup.Asins), res.GlobalAsins)
			}
			adGroup.BestMatchType = bestMatchType(adGroup.MatchTypes)
		}
	}
}

// bestAsin picks the best record by orders, then conversion rate, then
// ROAS. When the leader has neither orders nor clicks, the set is
// re-ranked by clicks then impressions; when the leader still has no
// clicks, the flat ASIN list is ranked by global orders and only the
// winning name is kept.
func bestAsin(records []AsinPerformance, flatAsins []string, global *AccumulatorTable) string {
	if len(records) == 0 {
		return ""
	}
	ranked := make([]AsinPerformance, len(records))
	copy(ranked, records)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.Orders != b.Orders {
			return a.Orders > b.Orders
		}
		if a.ConversionRate != b.ConversionRate {
			return a.ConversionRate > b.ConversionRate
		}
		return a.ROAS > b.ROAS
	})
	leader := ranked[0]

	if leader.Orders == 0 && leader.Clicks == 0 {
		sort.SliceStable(ranked, func(i, j int) bool {
			a, b := ranked[i], ranked[j]
			if a.Clicks != b.Clicks {
				return a.Clicks > b.Clicks
			}
			return a.Impressions > b.Impressions
		})
		leader = ranked[0]

		if leader.Clicks == 0 {
			if best := bestGlobalAsin(flatAsins, global); best != "" {
				return best
			}
		}
	}

	return leader.ASIN
}

// bestGlobalAsin ranks the flat ASIN list by cross-campaign order totals.
func bestGlobalAsin(asins []string, global *AccumulatorTable) string {
	if len(asins) == 0 {
		return ""
	}
	ranked := make([]string, len(asins))
	copy(ranked, asins)

	orders := func(asin string) float64 {
		if acc, ok := global.Lookup(asin); ok {
			return acc.Orders
		}
		return 0
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return orders(ranked[i]) > orders(ranked[j])
	})
	return ranked[0]
}

// recordAsins extracts the flat ASIN list from performance records,
// duplicates included.
func recordAsins(records []AsinPerformance) []string {
	out := make([]string, len(records))
	for i, rec := range records {
		out[i] = rec.ASIN
	}
	return out
}

// rollUpMatchTypes merges the per-ad-group match-type tables into one
// campaign-level table, in ad-group then code insertion order.
func rollUpMatchTypes(campaign *Campaign) *AccumulatorTable {
	rolled := NewAccumulatorTable()
	for _, adGroupID := range campaign.AdGroupOrder {
		table := campaign.AdGroups[adGroupID].MatchTypes
		for _, code := range table.Codes() {
			acc, _ := table.Lookup(code)
			rolled.Get(code).Add(acc.Orders, acc.Clicks, acc.Sales, acc.Spend, acc.Impressions)
		}
	}
	return rolled
}

// bestMatchType ranks a match-type table by orders, conversion rate,
// ROAS. Returns "" when the table is empty.
func bestMatchType(table *AccumulatorTable) string {
	if table.Len() == 0 {
		return ""
	}
	codes := rankedCodes(table, func(a, b *Accumulator) bool {
		if a.Orders != b.Orders {
			return a.Orders > b.Orders
		}
		if a.ConversionRate != b.ConversionRate {
			return a.ConversionRate > b.ConversionRate
		}
		return a.ROAS > b.ROAS
	})
	return codes[0]
}

// bestPlacement ranks the campaign placement table by orders, ROAS,
// conversion rate; when the leader has no orders the table is re-ranked
// by clicks then impressions. Returns "N/A" when the table is empty.
func bestPlacement(table *AccumulatorTable) string {
	if table.Len() == 0 {
		return "N/A"
	}
	codes := rankedCodes(table, func(a, b *Accumulator) bool {
		if a.Orders != b.Orders {
			return a.Orders > b.Orders
		}
		if a.ROAS != b.ROAS {
			return a.ROAS > b.ROAS
		}
		return a.ConversionRate > b.ConversionRate
	})

	top, _ := table.Lookup(codes[0])
	if top.Orders == 0 {
		codes = rankedCodesFrom(table, codes, func(a, b *Accumulator) bool {
			if a.Clicks != b.Clicks {
				return a.Clicks > b.Clicks
			}
			return a.Impressions > b.Impressions
		})
	}
	return codes[0]
}

// rankedCodes derives conversion rate and ROAS for every entry, then
// stable-sorts the codes (insertion order in) by the comparator.
func rankedCodes(table *AccumulatorTable, less func(a, b *Accumulator) bool) []string {
	codes := make([]string, len(table.Codes()))
	copy(codes, table.Codes())
	for _, code := range codes {
		acc, _ := table.Lookup(code)
		acc.Derive()
	}
	return rankedCodesFrom(table, codes, less)
}

// rankedCodesFrom re-sorts an already ordered code list, keeping the
// previous order for ties.
func rankedCodesFrom(table *AccumulatorTable, codes []string, less func(a, b *Accumulator) bool) []string {
	sort.SliceStable(codes, func(i, j int) bool {
		a, _ := table.Lookup(codes[i])
		b, _ := table.Lookup(codes[j])
		return less(a, b)
	})
	return codes
}
