package report

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/ads-renamer/internal/engine"
	"github.com/ignite/ads-renamer/internal/naming"
)

// twinCampaigns builds two campaigns that render to identical names
// under a prefix-only scheme.
func twinCampaigns() *engine.Result {
	build := func(id string) *engine.Campaign {
		return &engine.Campaign{
			ID:   id,
			Name: "Old " + id,
			AdGroups: map[string]*engine.AdGroup{
				"ag-a": {ID: "ag-a", Name: "AG A", BestASIN: "B07AAA1111", BestMatchType: "Ex"},
				"ag-b": {ID: "ag-b", Name: "AG B", BestASIN: "B07AAA1111", BestMatchType: "Ex"},
			},
			AdGroupOrder:  []string{"ag-a", "ag-b"},
			BestASIN:      "B07AAA1111",
			BestPlacement: "N/A",
		}
	}
	return &engine.Result{
		Campaigns: map[string]*engine.Campaign{"C1": build("C1"), "C2": build("C2")},
		Order:     []string{"C1", "C2"},
	}
}

func TestGenerateNamesDeduplicates(t *testing.T) {
	scheme := naming.Scheme{Elements: []naming.Element{naming.ElementPrefix}, Prefix: "SP"}

	renames := GenerateNames(twinCampaigns(), scheme, nil)
	require.Len(t, renames, 2)

	// Both campaigns render "SP"; dedup assigns ordinals in order.
	assert.Equal(t, "SP-1", renames[0].NewName)
	assert.Equal(t, "SP-2", renames[1].NewName)
	assert.Equal(t, "Old C1", renames[0].OldName)

	// Ad-group names collide within each campaign and are deduplicated
	// per campaign, so the ordinals restart in C2.
	assert.Equal(t, "B07AAA1111-Ex-1", renames[0].AdGroups[0].NewName)
	assert.Equal(t, "B07AAA1111-Ex-2", renames[0].AdGroups[1].NewName)
	assert.Equal(t, "B07AAA1111-Ex-1", renames[1].AdGroups[0].NewName)
}

func TestGenerateNamesShortNames(t *testing.T) {
	res := twinCampaigns()
	res.Campaigns["C2"].BestASIN = "B07BBB2222"
	scheme := naming.Scheme{Elements: []naming.Element{naming.ElementBestAsin}}
	shorts := naming.ShortNames{"B07AAA1111": "press", "B07BBB2222": "peeler"}

	renames := GenerateNames(res, scheme, shorts)
	assert.Equal(t, "B07AAA1111-press", renames[0].NewName)
	assert.Equal(t, "B07BBB2222-peeler", renames[1].NewName)
}

func TestBuildUpdateRows(t *testing.T) {
	scheme := naming.Scheme{Elements: []naming.Element{naming.ElementPrefix}, Prefix: "SP"}
	renames := GenerateNames(twinCampaigns(), scheme, nil)

	rows := BuildUpdateRows(renames)
	require.Len(t, rows, 6)

	assert.Equal(t, "Campaign", rows[0].Entity)
	assert.Equal(t, "update", rows[0].Operation)
	assert.Equal(t, "C1", rows[0].CampaignID)
	assert.Equal(t, "SP-1", rows[0].CampaignName)
	assert.Equal(t, "", rows[0].AdGroupName)

	assert.Equal(t, "Ad Group", rows[1].Entity)
	assert.Equal(t, "C1", rows[1].CampaignID)
	assert.Equal(t, "ag-a", rows[1].AdGroupID)
	assert.Equal(t, "B07AAA1111-Ex-1", rows[1].AdGroupName)
	assert.Equal(t, "", rows[1].CampaignName)

	assert.Equal(t, "Campaign", rows[3].Entity)
	assert.Equal(t, "C2", rows[3].CampaignID)
}

func TestNomenclatureGuide(t *testing.T) {
	res := twinCampaigns()
	scheme := naming.Scheme{
		Elements: []naming.Element{naming.ElementPrefix, naming.ElementTargetingType, naming.ElementMatchTypes},
		Prefix:   "SP",
	}
	renames := GenerateNames(res, scheme, nil)

	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	guide, err := NomenclatureGuide(res, scheme, renames, now)
	require.NoError(t, err)

	assert.Contains(t, guide, "Generated: 2026-08-30 12:00:00")
	assert.Contains(t, guide, "[SP]-[A/M]-[MatchTypes]")
	assert.Contains(t, guide, "1. PREFIX: 'SP'")
	assert.Contains(t, guide, "2. TARGETING TYPE")
	assert.Contains(t, guide, "3. MATCH TYPES")
	assert.Contains(t, guide, "Format: [BestASIN]-[BestMatchType]")
	assert.Contains(t, guide, "PERFORMANCE RANKING LOGIC")
	assert.Contains(t, guide, "OLD NAME: Old C1")
	assert.Contains(t, guide, "Separator: '-'")

	// Both campaign examples appear, and never more than three.
	assert.Equal(t, 2, strings.Count(guide, "OLD NAME:"))
}

func TestNomenclatureGuideCapsExamples(t *testing.T) {
	res := twinCampaigns()
	extra := &engine.Campaign{ID: "C3", Name: "Old C3", AdGroups: map[string]*engine.AdGroup{}}
	res.Campaigns["C3"] = extra
	res.Order = append(res.Order, "C3")
	extra2 := &engine.Campaign{ID: "C4", Name: "Old C4", AdGroups: map[string]*engine.AdGroup{}}
	res.Campaigns["C4"] = extra2
	res.Order = append(res.Order, "C4")

	scheme := naming.Scheme{Elements: []naming.Element{naming.ElementPrefix}, Prefix: "SP"}
	renames := GenerateNames(res, scheme, nil)

	guide, err := NomenclatureGuide(res, scheme, renames, time.Now())
	require.NoError(t, err)
	assert.Equal(t, 3, strings.Count(guide, "OLD NAME:"))
}
