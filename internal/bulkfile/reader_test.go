package bulkfile

import (
	"bytes"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// buildWorkbook renders sheets (name → rows) into xlsx bytes.
func buildWorkbook(t *testing.T, sheets map[string][][]interface{}) *bytes.Reader {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	first := true
	for name, rows := range sheets {
		if first {
			require.NoError(t, f.SetSheetName("Sheet1", name))
			first = false
		} else {
			_, err := f.NewSheet(name)
			require.NoError(t, err)
		}
		for i, cells := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &cells))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

// fullHeader is a 48-column header row so the width check passes.
func fullHeader() []interface{} {
	cells := make([]interface{}, MinColumns)
	for i := range cells {
		cells[i] = fmt.Sprintf("Column %d", i)
	}
	return cells
}

func dataRow(entity, campaignID string) []interface{} {
	cells := make([]interface{}, MinColumns)
	for i := range cells {
		cells[i] = ""
	}
	cells[ColEntity] = entity
	cells[ColCampaignID] = campaignID
	return cells
}

func TestReadWorkbookFindsSheetByName(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]interface{}{
		"Sponsored Products Campaigns": {
			fullHeader(),
			dataRow("Campaign", "101"),
		},
	})

	sheet, err := ReadWorkbook(wb)
	require.NoError(t, err)
	assert.Equal(t, "Sponsored Products Campaigns", sheet.Name)
	require.Len(t, sheet.Rows, 2)
	assert.Equal(t, "Campaign", sheet.Rows[1].Field(ColEntity))
}

func TestReadWorkbookFallsBackToColumnA(t *testing.T) {
	header := fullHeader()
	header[0] = "Sponsored Products"
	wb := buildWorkbook(t, map[string][][]interface{}{
		"Bulk Sheet 1": {
			header,
			dataRow("Campaign", "101"),
		},
	})

	sheet, err := ReadWorkbook(wb)
	require.NoError(t, err)
	assert.Equal(t, "Bulk Sheet 1", sheet.Name)
}

func TestReadWorkbookFiltersNegativeKeywordRows(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]interface{}{
		"Sponsored Products": {
			fullHeader(),
			dataRow("Campaign", "101"),
			dataRow("Negative keyword", "101"),
			dataRow("Campaign Negative Keyword", "101"),
			dataRow("Keyword", "101"),
		},
	})

	sheet, err := ReadWorkbook(wb)
	require.NoError(t, err)
	require.Len(t, sheet.Rows, 3)
	assert.Equal(t, "Campaign", sheet.Rows[1].Field(ColEntity))
	assert.Equal(t, "Keyword", sheet.Rows[2].Field(ColEntity))
}

func TestReadWorkbookNoQualifyingSheet(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]interface{}{
		"Portfolios": {
			{"unrelated"},
		},
	})

	_, err := ReadWorkbook(wb)
	assert.ErrorIs(t, err, ErrNoSponsoredProducts)
}

func TestReadWorkbookRejectsNarrowSheet(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]interface{}{
		"Sponsored Products": {
			{"only", "five", "header", "cells", "here"},
		},
	})

	_, err := ReadWorkbook(wb)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "required columns absent")
}

func TestReadWorkbookGarbageInput(t *testing.T) {
	_, err := ReadWorkbook(bytes.NewReader([]byte("not a zip archive")))
	assert.Error(t, err)
}

func TestRowFieldOutOfRange(t *testing.T) {
	r := Row{"a", "b"}
	assert.Equal(t, "b", r.Field(1))
	assert.Equal(t, "", r.Field(5))
	assert.Equal(t, "", r.Field(-1))
}

func TestReadMappingRows(t *testing.T) {
	wb := buildWorkbook(t, map[string][][]interface{}{
		"Mapping": {
			{"ASIN", "ShortName"},
			{"B07AAA1111", "press"},
		},
	})

	rows, err := ReadMappingRows(wb)
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, []string{"B07AAA1111", "press"}, rows[1])
}
