// Package naming renders campaign and ad-group names from ranked engine
// results: configurable element schemes, ASIN short-name substitution,
// and collision-based deduplication.
package naming

import "fmt"

// Element is one configurable token type in a naming scheme.
type Element string

const (
	ElementPrefix          Element = "prefix"
	ElementTargetingType   Element = "targetingType"
	ElementMatchTypes      Element = "matchTypes"
	ElementAdGroupCount    Element = "adGroupCount"
	ElementBestAsin        Element = "bestAsin"
	ElementBiddingStrategy Element = "biddingStrategy"
	ElementBestPlacement   Element = "bestPlacement"
)

// Elements lists every known element, in display order.
func Elements() []Element {
	return []Element{
		ElementPrefix, ElementTargetingType, ElementMatchTypes,
		ElementAdGroupCount, ElementBestAsin, ElementBiddingStrategy,
		ElementBestPlacement,
	}
}

// DefaultSeparator joins neighbouring elements unless a per-position
// separator overrides it.
const DefaultSeparator = "-"

// Scheme is an ordered sequence of naming elements with per-position
// separators and the literal prefix text.
type Scheme struct {
	Elements   []Element      `json:"elements"`
	Separators map[int]string `json:"separators,omitempty"`
	Prefix     string         `json:"prefix"`
}

// Separator returns the separator rendered after element position i.
func (s Scheme) Separator(i int) string {
	if sep, ok := s.Separators[i]; ok {
		return sep
	}
	return DefaultSeparator
}

// Validate rejects empty schemes, unknown elements and duplicates.
func (s Scheme) Validate() error {
	if len(s.Elements) == 0 {
		return fmt.Errorf("naming scheme has no elements")
	}
	known := make(map[Element]struct{}, len(Elements()))
	for _, e := range Elements() {
		known[e] = struct{}{}
	}
	seen := make(map[Element]struct{}, len(s.Elements))
	for _, e := range s.Elements {
		if _, ok := known[e]; !ok {
			return fmt.Errorf("unknown naming element %q", e)
		}
		if _, ok := seen[e]; ok {
			return fmt.Errorf("duplicate naming element %q", e)
		}
		seen[e] = struct{}{}
	}
	return nil
}

// ParseElements converts raw element names (config or API input) into a
// validated element list.
func ParseElements(raw []string) ([]Element, error) {
	out := make([]Element, 0, len(raw))
	for _, r := range raw {
		out = append(out, Element(r))
	}
	s := Scheme{Elements: out}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return out, nil
}
