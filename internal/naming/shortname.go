package naming

import (
	"fmt"
	"sort"
	"strings"
)

// maxShortNameLen caps individual short names so generated campaign
// names stay usable in the ads console.
const maxShortNameLen = 50

// BuildShortNames validates the two-column (ASIN, ShortName) mapping rows
// against the ASIN set discovered in the bulk upload. Validation is
// all-or-nothing: every problem is collected and the mapping is accepted
// only when the returned issue list is empty.
//
// Checked: header row, duplicate ASIN keys, short-name length, and exact
// ASIN-set equality (missing and extra ASINs are each listed).
func BuildShortNames(rows [][]string, expected map[string]struct{}) (ShortNames, []string) {
	var issues []string

	if len(rows) == 0 {
		return nil, []string{"mapping file is empty"}
	}

	header := rows[0]
	if len(header) < 2 || !strings.EqualFold(strings.TrimSpace(header[0]), "ASIN") ||
		!strings.EqualFold(strings.TrimSpace(header[1]), "ShortName") {
		issues = append(issues, `header mismatch: expected columns "ASIN", "ShortName"`)
	}

	mapping := make(ShortNames)
	for i, row := range rows[1:] {
		if len(row) == 0 || strings.TrimSpace(cell(row, 0)) == "" {
			continue
		}
		asin := strings.TrimSpace(cell(row, 0))
		short := strings.TrimSpace(cell(row, 1))

		if _, ok := mapping[asin]; ok {
			issues = append(issues, fmt.Sprintf("duplicate ASIN %s (row %d)", asin, i+2))
			continue
		}
		if len(short) > maxShortNameLen {
			issues = append(issues, fmt.Sprintf("short name for %s exceeds %d characters", asin, maxShortNameLen))
		}
		mapping[asin] = short
	}

	missing := diffKeys(expected, mapping)
	for _, asin := range missing {
		issues = append(issues, fmt.Sprintf("missing ASIN %s", asin))
	}
	extra := diffMapping(mapping, expected)
	for _, asin := range extra {
		issues = append(issues, fmt.Sprintf("extra ASIN %s not present in the bulk file", asin))
	}

	if len(issues) > 0 {
		return nil, issues
	}
	return mapping, nil
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return row[i]
}

func diffKeys(expected map[string]struct{}, mapping ShortNames) []string {
	var out []string
	for asin := range expected {
		if _, ok := mapping[asin]; !ok {
			out = append(out, asin)
		}
	}
	sort.Strings(out)
	return out
}

func diffMapping(mapping ShortNames, expected map[string]struct{}) []string {
	var out []string
	for asin := range mapping {
		if _, ok := expected[asin]; !ok {
			out = append(out, asin)
		}
	}
	sort.Strings(out)
	return out
}
