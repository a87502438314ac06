package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ignite/ads-renamer/internal/engine"
)

func manualCampaign() *engine.Campaign {
	return &engine.Campaign{
		ID:        "C1",
		Name:      "Old Name",
		Targeting: engine.TargetingManual,
		Bidding:   engine.BiddingFixed,
		AdGroups: map[string]*engine.AdGroup{
			"ag1": {ID: "ag1"},
			"ag2": {ID: "ag2"},
			"ag3": {ID: "ag3"},
		},
		AdGroupOrder:   []string{"ag1", "ag2", "ag3"},
		MatchTypeCodes: map[string]struct{}{"Ph": {}, "Ex": {}, "Br": {}},
		BestASIN:       "B07XYZ1234",
		BestMatchType:  "Br",
		BestPlacement:  "TOS",
	}
}

func TestCampaignNamePrefixAndTargeting(t *testing.T) {
	scheme := Scheme{
		Elements: []Element{ElementPrefix, ElementTargetingType},
		Prefix:   "SP",
	}
	require.NoError(t, scheme.Validate())
	assert.Equal(t, "SP-M", CampaignName(manualCampaign(), scheme, nil))
}

func TestCampaignNameAllElements(t *testing.T) {
	scheme := Scheme{
		Elements: []Element{
			ElementPrefix, ElementTargetingType, ElementMatchTypes,
			ElementAdGroupCount, ElementBestAsin, ElementBiddingStrategy,
			ElementBestPlacement,
		},
		Prefix: "SP",
	}

	got := CampaignName(manualCampaign(), scheme, nil)
	assert.Equal(t, "SP-M-[*Br*,Ex,Ph]-3AdG-B07XYZ1234-Fix-TOS", got)
}

func TestCampaignNameAutoTargeting(t *testing.T) {
	c := manualCampaign()
	c.Targeting = engine.TargetingAuto
	scheme := Scheme{
		Elements: []Element{ElementTargetingType, ElementMatchTypes},
	}
	assert.Equal(t, "A-Auto", CampaignName(c, scheme, nil))
}

func TestCampaignNameCustomSeparators(t *testing.T) {
	scheme := Scheme{
		Elements:   []Element{ElementPrefix, ElementTargetingType, ElementAdGroupCount},
		Separators: map[int]string{0: "_"},
		Prefix:     "SP",
	}
	// Position 0 uses the override, position 1 the default.
	assert.Equal(t, "SP_M-3AdG", CampaignName(manualCampaign(), scheme, nil))
}

func TestCampaignNameMissingBestValues(t *testing.T) {
	c := manualCampaign()
	c.BestASIN = ""
	c.Bidding = engine.BiddingUnknown
	scheme := Scheme{
		Elements: []Element{ElementBestAsin, ElementBiddingStrategy, ElementBestPlacement},
	}
	assert.Equal(t, "N/A--TOS", CampaignName(c, scheme, nil))
}

func TestCampaignNameShortNameSubstitution(t *testing.T) {
	scheme := Scheme{Elements: []Element{ElementBestAsin}}
	shorts := ShortNames{"B07XYZ1234": "garlic-press"}
	assert.Equal(t, "B07XYZ1234-garlic-press", CampaignName(manualCampaign(), scheme, shorts))

	// No mapping for the winning ASIN: bare ASIN.
	assert.Equal(t, "B07XYZ1234", CampaignName(manualCampaign(), scheme, ShortNames{"B0OTHER": "x"}))
}

func TestAdGroupName(t *testing.T) {
	g := &engine.AdGroup{ID: "ag1", BestASIN: "B07XYZ1234", BestMatchType: "Ex"}
	assert.Equal(t, "B07XYZ1234-Ex", AdGroupName(g, nil))

	g = &engine.AdGroup{ID: "ag2"}
	assert.Equal(t, "N/A-N/A", AdGroupName(g, nil))

	g = &engine.AdGroup{ID: "ag3", BestASIN: "B07XYZ1234"}
	shorts := ShortNames{"B07XYZ1234": "press"}
	assert.Equal(t, "B07XYZ1234-press-N/A", AdGroupName(g, shorts))
}

func TestPreviewName(t *testing.T) {
	scheme := Scheme{
		Elements: []Element{
			ElementPrefix, ElementTargetingType, ElementMatchTypes,
			ElementBiddingStrategy,
		},
		Prefix: "SP",
	}
	got := PreviewName(scheme, DefaultPreviewOptions())
	assert.Equal(t, "SP-M-[Ex,Br]-Fix", got)

	opts := DefaultPreviewOptions()
	opts.TargetingType = "A"
	assert.Equal(t, "SP-A-Auto-Fix", PreviewName(scheme, opts))
}

func TestSchemeValidate(t *testing.T) {
	assert.Error(t, Scheme{}.Validate())
	assert.Error(t, Scheme{Elements: []Element{"banana"}}.Validate())
	assert.Error(t, Scheme{Elements: []Element{ElementPrefix, ElementPrefix}}.Validate())
	assert.NoError(t, Scheme{Elements: []Element{ElementPrefix}}.Validate())
}

func TestParseElements(t *testing.T) {
	elements, err := ParseElements([]string{"prefix", "bestAsin"})
	require.NoError(t, err)
	assert.Equal(t, []Element{ElementPrefix, ElementBestAsin}, elements)

	_, err = ParseElements([]string{"nope"})
	assert.Error(t, err)
}
