package engine

import "github.com/ignite/ads-renamer/internal/bulkfile"

// row builds a bulk sheet row with the given entity, campaign and
// ad-group ids plus any extra cells by column index.
func row(entity, campaignID, adGroupID string, cells map[int]string) bulkfile.Row {
	r := make(bulkfile.Row, bulkfile.MinColumns)
	r[bulkfile.ColEntity] = entity
	r[bulkfile.ColCampaignID] = campaignID
	r[bulkfile.ColAdGroupID] = adGroupID
	for i, v := range cells {
		r[i] = v
	}
	return r
}

// header is the throwaway first row every sheet carries.
func header() bulkfile.Row {
	return make(bulkfile.Row, bulkfile.MinColumns)
}

func campaignRow(id, name, targeting, bidding string) bulkfile.Row {
	return row(bulkfile.EntityCampaign, id, "", map[int]string{
		bulkfile.ColCampaignName:  name,
		bulkfile.ColTargetingType: targeting,
		bulkfile.ColBidding:       bidding,
	})
}

func adGroupRow(campaignID, id, name string) bulkfile.Row {
	return row(bulkfile.EntityAdGroup, campaignID, id, map[int]string{
		bulkfile.ColAdGroupName: name,
	})
}

func productAdRow(campaignID, adGroupID, asin string, metrics map[int]string) bulkfile.Row {
	cells := map[int]string{bulkfile.ColASIN: asin}
	for i, v := range metrics {
		cells[i] = v
	}
	return row(bulkfile.EntityProductAd, campaignID, adGroupID, cells)
}

func keywordRow(campaignID, adGroupID, matchType string, metrics map[int]string) bulkfile.Row {
	cells := map[int]string{bulkfile.ColMatchType: matchType}
	for i, v := range metrics {
		cells[i] = v
	}
	return row(bulkfile.EntityKeyword, campaignID, adGroupID, cells)
}
