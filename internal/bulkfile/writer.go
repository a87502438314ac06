package bulkfile

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// UpdateRow is one row of the bulk update file: either a campaign rename
// or an ad-group rename, always with Operation "update".
type UpdateRow struct {
	Product      string
	Entity       string
	Operation    string
	CampaignID   string
	AdGroupID    string
	CampaignName string
	AdGroupName  string
}

var updateHeader = []string{
	"Product", "Entity", "Operation", "Campaign ID", "Ad Group ID",
	"", "", "", "Campaign Name", "Ad Group Name",
}

func (u UpdateRow) cells() []string {
	return []string{
		u.Product, u.Entity, u.Operation, u.CampaignID, u.AdGroupID,
		"", "", "", u.CampaignName, u.AdGroupName,
	}
}

// WriteUpdateFile renders the bulk update rows into a workbook with a
// single "Sponsored Products" sheet, ready for re-upload to the ads
// console.
func WriteUpdateFile(rows []UpdateRow) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = sponsoredProductsMarker
	idx, err := f.NewSheet(sheet)
	if err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("drop default sheet: %w", err)
	}

	if err := writeCells(f, sheet, 1, updateHeader); err != nil {
		return nil, err
	}
	for i, row := range rows {
		if err := writeCells(f, sheet, i+2, row.cells()); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// UpdateFileBytes renders the bulk update rows to xlsx bytes for download.
func UpdateFileBytes(rows []UpdateRow) ([]byte, error) {
	f, err := WriteUpdateFile(rows)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

// SaveUpdateFile renders the bulk update rows to an xlsx file on disk.
func SaveUpdateFile(rows []UpdateRow, path string) error {
	f, err := WriteUpdateFile(rows)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("save workbook: %w", err)
	}
	return nil
}

func writeCells(f *excelize.File, sheet string, rowIdx int, cells []string) error {
	for c, v := range cells {
		cell, err := excelize.CoordinatesToCellName(c+1, rowIdx)
		if err != nil {
			return fmt.Errorf("cell coordinates: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("set cell %s: %w", cell, err)
		}
	}
	return nil
}
