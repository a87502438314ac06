package naming

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ignite/ads-renamer/internal/engine"
)

// notAvailable substitutes for any best-of value the ranking pass could
// not populate.
const notAvailable = "N/A"

// ShortNames maps ASINs to human-friendly short names. A nil map
// disables substitution.
type ShortNames map[string]string

// render returns the display form of an ASIN: "{ASIN}-{shortName}" when a
// mapping exists, the bare ASIN otherwise.
func (s ShortNames) render(asin string) string {
	if short, ok := s[asin]; ok {
		return asin + "-" + short
	}
	return asin
}

// CampaignName renders a campaign's new name from the scheme, in element
// order with separators interleaved (none after the last element).
func CampaignName(c *engine.Campaign, scheme Scheme, shorts ShortNames) string {
	var b strings.Builder
	for i, element := range scheme.Elements {
		switch element {
		case ElementPrefix:
			b.WriteString(scheme.Prefix)
		case ElementTargetingType:
			b.WriteString(c.Targeting.Code())
		case ElementMatchTypes:
			b.WriteString(matchTypesPart(c))
		case ElementAdGroupCount:
			fmt.Fprintf(&b, "%dAdG", len(c.AdGroups))
		case ElementBestAsin:
			b.WriteString(bestAsinPart(c.BestASIN, shorts))
		case ElementBiddingStrategy:
			b.WriteString(c.Bidding.Code())
		case ElementBestPlacement:
			b.WriteString(c.BestPlacement)
		}
		if i < len(scheme.Elements)-1 {
			b.WriteString(scheme.Separator(i))
		}
	}
	return b.String()
}

// AdGroupName ignores the scheme: ad groups always render as
// "{bestAsin}-{bestMatchType}", with N/A substituted for absent values
// and the same short-name rule applied to the ASIN.
func AdGroupName(g *engine.AdGroup, shorts ShortNames) string {
	asin := notAvailable
	if g.BestASIN != "" {
		asin = shorts.render(g.BestASIN)
	}
	match := g.BestMatchType
	if match == "" {
		match = notAvailable
	}
	return asin + "-" + match
}

// matchTypesPart renders "Auto" for auto-targeting campaigns, otherwise
// the sorted distinct match-type codes in brackets with the best one
// wrapped in asterisks, e.g. "[Ex,*Br*,Ph]".
func matchTypesPart(c *engine.Campaign) string {
	if c.Targeting == engine.TargetingAuto {
		return "Auto"
	}
	codes := make([]string, 0, len(c.MatchTypeCodes))
	for code := range c.MatchTypeCodes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	for i, code := range codes {
		if code == c.BestMatchType {
			codes[i] = "*" + code + "*"
		}
	}
	return "[" + strings.Join(codes, ",") + "]"
}

func bestAsinPart(asin string, shorts ShortNames) string {
	if asin == "" {
		return notAvailable
	}
	return shorts.render(asin)
}

// PreviewOptions are the sample values used to visualize a scheme before
// real campaign data is applied.
type PreviewOptions struct {
	TargetingType   string   `json:"targetingType"`
	MatchTypes      []string `json:"matchTypes"`
	BiddingStrategy string   `json:"biddingStrategy"`
	BestPlacement   string   `json:"bestPlacement"`
	AdGroupCount    int      `json:"adGroupCount"`
}

// DefaultPreviewOptions mirrors the sample values shown before the user
// customizes anything.
func DefaultPreviewOptions() PreviewOptions {
	return PreviewOptions{
		TargetingType:   "M",
		MatchTypes:      []string{"Ex", "Br"},
		BiddingStrategy: "Fix",
		BestPlacement:   "TOS",
		AdGroupCount:    3,
	}
}

// PreviewName renders the scheme against sample options instead of a
// real campaign.
func PreviewName(scheme Scheme, opts PreviewOptions) string {
	var b strings.Builder
	for i, element := range scheme.Elements {
		switch element {
		case ElementPrefix:
			b.WriteString(scheme.Prefix)
		case ElementTargetingType:
			b.WriteString(opts.TargetingType)
		case ElementMatchTypes:
			if opts.TargetingType == "A" {
				b.WriteString("Auto")
			} else {
				b.WriteString("[" + strings.Join(opts.MatchTypes, ",") + "]")
			}
		case ElementAdGroupCount:
			fmt.Fprintf(&b, "%dAdG", opts.AdGroupCount)
		case ElementBestAsin:
			b.WriteString("B0XXXXXXXX")
		case ElementBiddingStrategy:
			b.WriteString(opts.BiddingStrategy)
		case ElementBestPlacement:
			b.WriteString(opts.BestPlacement)
		}
		if i < len(scheme.Elements)-1 {
			b.WriteString(scheme.Separator(i))
		}
	}
	return b.String()
}
