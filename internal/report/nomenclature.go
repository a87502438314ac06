package report

import (
	"fmt"
	"strings"
	"time"

	"github.com/osteele/liquid"

	"github.com/ignite/ads-renamer/internal/engine"
	"github.com/ignite/ads-renamer/internal/naming"
)

const divider = "================================================================================"
const thinDivider = "--------------------------------------------------------------------------------"

// nomenclatureTemplate is the plain-text guide layout. Rendering goes
// through Liquid so the layout stays separate from the data assembly.
const nomenclatureTemplate = `# AMAZON ADS CAMPAIGN NOMENCLATURE GUIDE
Generated: {{ generated_at }}

{{ divider }}
CAMPAIGN NAMING SCHEME
{{ divider }}

Your Custom Format:
{{ format_string }}

{{ thin_divider }}
NAMING ELEMENTS EXPLANATION
{{ thin_divider }}

{% for element in elements %}{{ forloop.index }}. {{ element.title }}
{% for line in element.lines %}   {{ line }}
{% endfor %}{% if element.has_separator %}
   Separator: '{{ element.separator }}'
{% endif %}
{% endfor %}
{{ divider }}
AD GROUP NAMING SCHEME
{{ divider }}

Format: [BestASIN]-[BestMatchType]

Components:
1. Best ASIN: The top performing product in the ad group
2. Best Match Type: The best performing match type in the ad group
   - Uses same logic as campaign level (Orders > Conv Rate > ROAS)

Example: B07XYZ1234-Ex
   - B07XYZ1234 is the best performing ASIN
   - Ex means Exact match is performing best

{% if examples.size > 0 %}{{ divider }}
EXAMPLE CAMPAIGNS FROM YOUR DATA
{{ divider }}

{% for ex in examples %}Example {{ forloop.index }}:
  OLD NAME: {{ ex.old }}
  NEW NAME: {{ ex.new }}
  Targeting: {{ ex.targeting }}
  Ad Groups: {{ ex.ad_groups }}

{% endfor %}{% endif %}{{ divider }}
PERFORMANCE RANKING LOGIC
{{ divider }}

How "Best" Elements are Determined:

1. BEST ASIN (Campaign & Ad Group Level):
   - Primary: Highest Orders
   - Secondary: Highest Conversion Rate
   - Tertiary: Highest ROAS
   - Fallback (no orders): Highest Clicks > Impressions
   - Final Fallback: Global ASIN performance across all campaigns

2. BEST MATCH TYPE (Campaign & Ad Group Level):
   - Primary: Highest Orders
   - Secondary: Highest Conversion Rate
   - Tertiary: Highest ROAS

3. BEST PLACEMENT (Campaign Level):
   - Primary: Highest Orders
   - Secondary: Highest ROAS
   - Tertiary: Highest Conversion Rate
   - Fallback (no orders): Highest Clicks > Impressions

{{ divider }}
IMPORTANT NOTES
{{ divider }}

- Each campaign name is unique and data-driven
- Names reflect actual campaign performance and structure
- The naming scheme is a FORMAT - each campaign uses its own data
- Asterisks (*) in match types indicate the best performer
- All metrics are calculated from your uploaded bulk report data
- Campaign names update based on current performance when regenerated

{{ divider }}
GLOSSARY
{{ divider }}

ASIN: Amazon Standard Identification Number (unique product identifier)
ROAS: Return on Ad Spend (Revenue / Spend)
Conversion Rate: Orders / Clicks
Orders: Number of purchases attributed to the ad
Clicks: Number of times the ad was clicked
Impressions: Number of times the ad was displayed
`

// maxExamples caps the before/after samples shown in the guide.
const maxExamples = 3

// NomenclatureGuide renders the plain-text guide for the active scheme,
// with up to three before/after examples drawn from the rename set.
func NomenclatureGuide(res *engine.Result, scheme naming.Scheme, renames []CampaignNaming, now time.Time) (string, error) {
	eng := liquid.NewEngine()

	bindings := map[string]interface{}{
		"generated_at":  now.Format("2006-01-02 15:04:05"),
		"divider":       divider,
		"thin_divider":  thinDivider,
		"format_string": formatString(scheme),
		"elements":      elementBindings(scheme),
		"examples":      exampleBindings(res, renames),
	}

	out, err := eng.ParseAndRenderString(nomenclatureTemplate, bindings)
	if err != nil {
		return "", fmt.Errorf("render nomenclature guide: %w", err)
	}
	return out, nil
}

// formatString renders the scheme as a placeholder pattern, e.g.
// "[SP]-[A/M]-[MatchTypes]".
func formatString(scheme naming.Scheme) string {
	var b strings.Builder
	for i, element := range scheme.Elements {
		switch element {
		case naming.ElementPrefix:
			b.WriteString("[" + scheme.Prefix + "]")
		case naming.ElementTargetingType:
			b.WriteString("[A/M]")
		case naming.ElementMatchTypes:
			b.WriteString("[MatchTypes]")
		case naming.ElementAdGroupCount:
			b.WriteString("[#AdG]")
		case naming.ElementBestAsin:
			b.WriteString("[BestASIN]")
		case naming.ElementBiddingStrategy:
			b.WriteString("[Strategy]")
		case naming.ElementBestPlacement:
			b.WriteString("[Placement]")
		}
		if i < len(scheme.Elements)-1 {
			b.WriteString(scheme.Separator(i))
		}
	}
	return b.String()
}

func elementBindings(scheme naming.Scheme) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(scheme.Elements))
	for i, element := range scheme.Elements {
		title, lines := explainElement(element, scheme.Prefix)
		entry := map[string]interface{}{
			"title":         title,
			"lines":         lines,
			"has_separator": i < len(scheme.Elements)-1,
			"separator":     "",
		}
		if i < len(scheme.Elements)-1 {
			entry["separator"] = scheme.Separator(i)
		}
		out = append(out, entry)
	}
	return out
}

func explainElement(element naming.Element, prefix string) (string, []string) {
	switch element {
	case naming.ElementPrefix:
		return fmt.Sprintf("PREFIX: '%s'", prefix), []string{
			"- A fixed identifier for all Sponsored Product Campaigns",
			"- Helps you quickly identify campaigns in the ads console",
		}
	case naming.ElementTargetingType:
		return "TARGETING TYPE", []string{
			"- A = Auto Targeting (Amazon automatically targets keywords)",
			"- M = Manual Targeting (You select specific keywords or products)",
		}
	case naming.ElementMatchTypes:
		return "MATCH TYPES", []string{
			"- Shows all match types used in the campaign",
			"- Auto: Campaign uses automatic targeting",
			"- Manual campaigns show:",
			"  Ex = Exact Match",
			"  Ph = Phrase Match",
			"  Br = Broad Match",
			"  PAT = Product ASIN Targeting",
			"  CAT = Category Targeting",
			"- Best performing match type is marked with asterisks (*)",
			"- Example: [Ex,*Br*,Ph] means Broad is performing best",
		}
	case naming.ElementAdGroupCount:
		return "AD GROUP COUNT", []string{
			"- Shows the number of ad groups in this campaign",
			"- Format: #AdG (e.g., 3AdG = 3 ad groups)",
			"- Helps you understand campaign structure at a glance",
		}
	case naming.ElementBestAsin:
		return "BEST ASIN", []string{
			"- The best performing product (ASIN) in this campaign",
			"- Determined by: Orders > Conversion Rate > ROAS",
			"- If no orders: Uses Clicks > Impressions",
			"- If no campaign data: Uses global ASIN performance",
		}
	case naming.ElementBiddingStrategy:
		return "BIDDING STRATEGY", []string{
			"- Fix = Fixed Bids",
			"- DwnO = Dynamic Bids - Down Only",
			"- UnD = Dynamic Bids - Up and Down",
		}
	case naming.ElementBestPlacement:
		return "BEST PLACEMENT", []string{
			"- Shows which ad placement is performing best",
			"- TOS = Top of Search (first page)",
			"- PP = Product Pages",
			"- ROS = Rest of Search",
			"- Determined by: Orders > ROAS > Conversion Rate",
		}
	}
	return string(element), nil
}

func exampleBindings(res *engine.Result, renames []CampaignNaming) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, maxExamples)
	for _, rename := range renames {
		if len(out) == maxExamples {
			break
		}
		campaign, ok := res.Campaigns[rename.ID]
		if !ok {
			continue
		}
		targeting := "Manual"
		if campaign.Targeting == engine.TargetingAuto {
			targeting = "Auto"
		}
		out = append(out, map[string]interface{}{
			"old":       rename.OldName,
			"new":       rename.NewName,
			"targeting": targeting,
			"ad_groups": len(campaign.AdGroups),
		})
	}
	return out
}
