package engine

import (
	"strconv"
	"strings"

	"github.com/ignite/ads-renamer/internal/bulkfile"
)

// RowKind is the classified entity type of one bulk sheet row.
type RowKind int

const (
	// RowSkip marks rows the aggregator ignores: missing entity type or
	// campaign id, or an entity outside the supported set.
	RowSkip RowKind = iota
	RowCampaign
	RowAdGroup
	RowProductAd
	RowKeyword
	RowProductTargeting
	RowBiddingAdjustment
)

// Classify maps a row's entity column to a RowKind. Rows without an
// entity type or campaign id are skipped.
func Classify(row bulkfile.Row) RowKind {
	if row.Field(bulkfile.ColEntity) == "" || row.Field(bulkfile.ColCampaignID) == "" {
		return RowSkip
	}
	switch row.Field(bulkfile.ColEntity) {
	case bulkfile.EntityCampaign:
		return RowCampaign
	case bulkfile.EntityAdGroup:
		return RowAdGroup
	case bulkfile.EntityProductAd:
		return RowProductAd
	case bulkfile.EntityKeyword:
		return RowKeyword
	case bulkfile.EntityProductTargeting:
		return RowProductTargeting
	case bulkfile.EntityBiddingAdjustment:
		return RowBiddingAdjustment
	}
	return RowSkip
}

// MatchCode maps raw match-type text to its compact code: Ex, Ph or Br.
// Case-insensitive substring match; "" means unresolvable.
func MatchCode(text string) string {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "exact"):
		return "Ex"
	case strings.Contains(t, "phrase"):
		return "Ph"
	case strings.Contains(t, "broad"):
		return "Br"
	}
	return ""
}

// ProductCode maps a product-targeting expression to PAT (ASIN targeting)
// or CAT (category targeting). Case-insensitive; "" means unresolvable.
func ProductCode(expression string) string {
	e := strings.ToLower(expression)
	switch {
	case strings.Contains(e, "asin="):
		return "PAT"
	case strings.Contains(e, "category="):
		return "CAT"
	}
	return ""
}

// PlacementCode maps a placement label to TOS, PP or ROS. The export's
// labels are stable, so this match is case-sensitive. "" means
// unresolvable.
func PlacementCode(label string) string {
	switch {
	case strings.Contains(label, "Top"):
		return "TOS"
	case strings.Contains(label, "Product Page"):
		return "PP"
	case strings.Contains(label, "Rest Of Search"):
		return "ROS"
	}
	return ""
}

// ParseTargetingType maps targeting text to Auto or Manual. Anything
// without an "auto" substring is Manual.
func ParseTargetingType(text string) TargetingType {
	if strings.Contains(strings.ToLower(text), "auto") {
		return TargetingAuto
	}
	return TargetingManual
}

// ParseBiddingStrategy maps bidding-strategy text to its enum value.
// Checked in order, first match wins.
func ParseBiddingStrategy(text string) BiddingStrategy {
	switch {
	case strings.Contains(text, "Fixed"):
		return BiddingFixed
	case strings.Contains(text, "down only"):
		return BiddingDownOnly
	case strings.Contains(text, "up and down"):
		return BiddingUpAndDown
	}
	return BiddingUnknown
}

// coerceFloat converts a cell to float64. Missing or non-numeric values
// degrade to 0.0; it never fails.
func coerceFloat(cell string) float64 {
	cell = strings.TrimSpace(cell)
	if cell == "" {
		return 0
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(cell, ",", ""), 64)
	if err != nil {
		return 0
	}
	return v
}
