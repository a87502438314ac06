// Package report turns a ranked engine result into its deliverables: the
// renamed campaign/ad-group set, the bulk update workbook rows, and the
// nomenclature guide.
package report

import (
	"github.com/ignite/ads-renamer/internal/bulkfile"
	"github.com/ignite/ads-renamer/internal/engine"
	"github.com/ignite/ads-renamer/internal/naming"
)

// AdGroupNaming is one ad group's rename.
type AdGroupNaming struct {
	ID      string `json:"id"`
	OldName string `json:"old_name"`
	NewName string `json:"new_name"`
}

// CampaignNaming is one campaign's rename plus its ad-group renames.
type CampaignNaming struct {
	ID       string          `json:"id"`
	OldName  string          `json:"old_name"`
	NewName  string          `json:"new_name"`
	AdGroups []AdGroupNaming `json:"ad_groups"`
}

// GenerateNames renders deduplicated new names for every surviving
// campaign and its ad groups. Campaign names are deduplicated across the
// whole set; ad-group names within each campaign.
func GenerateNames(res *engine.Result, scheme naming.Scheme, shorts naming.ShortNames) []CampaignNaming {
	campaigns := res.OrderedCampaigns()

	campaignNames := make([]string, len(campaigns))
	for i, c := range campaigns {
		campaignNames[i] = naming.CampaignName(c, scheme, shorts)
	}
	campaignNames = naming.Deduplicate(campaignNames)

	out := make([]CampaignNaming, len(campaigns))
	for i, c := range campaigns {
		adGroups := c.OrderedAdGroups()
		adGroupNames := make([]string, len(adGroups))
		for j, g := range adGroups {
			adGroupNames[j] = naming.AdGroupName(g, shorts)
		}
		adGroupNames = naming.Deduplicate(adGroupNames)

		entry := CampaignNaming{
			ID:       c.ID,
			OldName:  c.Name,
			NewName:  campaignNames[i],
			AdGroups: make([]AdGroupNaming, len(adGroups)),
		}
		for j, g := range adGroups {
			entry.AdGroups[j] = AdGroupNaming{ID: g.ID, OldName: g.Name, NewName: adGroupNames[j]}
		}
		out[i] = entry
	}
	return out
}

// BuildUpdateRows converts the rename set into bulk update rows: one
// campaign row followed by that campaign's ad-group rows.
func BuildUpdateRows(renames []CampaignNaming) []bulkfile.UpdateRow {
	var rows []bulkfile.UpdateRow
	for _, c := range renames {
		rows = append(rows, bulkfile.UpdateRow{
			Product:      "Sponsored Products",
			Entity:       bulkfile.EntityCampaign,
			Operation:    "update",
			CampaignID:   c.ID,
			CampaignName: c.NewName,
		})
		for _, g := range c.AdGroups {
			rows = append(rows, bulkfile.UpdateRow{
				Product:     "Sponsored Products",
				Entity:      bulkfile.EntityAdGroup,
				Operation:   "update",
				CampaignID:  c.ID,
				AdGroupID:   g.ID,
				AdGroupName: g.NewName,
			})
		}
	}
	return rows
}
