package bulkfile

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"
)

const sponsoredProductsMarker = "Sponsored Products"

// ErrNoSponsoredProducts is returned when no sheet in the workbook
// qualifies as a Sponsored Products bulk sheet.
var ErrNoSponsoredProducts = errors.New("no Sponsored Products sheet found")

// Sheet is the cleaned Sponsored Products sheet: raw rows with negative
// keyword rows already removed. Row 0 is the header row.
type Sheet struct {
	Name string
	Rows []Row
}

// ReadWorkbook locates the Sponsored Products sheet in an .xlsx workbook
// and returns its rows. Discovery first matches by sheet name, then falls
// back to scanning column A for the marker text. Rows whose entity is
// "Negative keyword" or "Campaign Negative Keyword" are filtered out so
// the engine never sees them.
func ReadWorkbook(r io.Reader) (*Sheet, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, ErrNoSponsoredProducts
	}

	name, rows, err := findSheet(f, sheets)
	if err != nil {
		return nil, err
	}

	if len(rows) == 0 || len(rows[0]) < MinColumns {
		return nil, fmt.Errorf("sheet %q: required columns absent (got %d, need %d)",
			name, headerWidth(rows), MinColumns)
	}

	cleaned := make([]Row, 0, len(rows))
	for _, raw := range rows {
		row := Row(raw)
		entity := row.Field(ColEntity)
		if entity == entityNegativeKeyword || entity == entityCampaignNegativeKeyword {
			continue
		}
		cleaned = append(cleaned, row)
	}

	return &Sheet{Name: name, Rows: cleaned}, nil
}

func findSheet(f *excelize.File, sheets []string) (string, [][]string, error) {
	// Preferred: match by sheet name.
	for _, name := range sheets {
		if strings.Contains(name, sponsoredProductsMarker) {
			rows, err := f.GetRows(name)
			if err != nil {
				return "", nil, fmt.Errorf("read sheet %q: %w", name, err)
			}
			return name, rows, nil
		}
	}

	// Fallback: any sheet whose column A mentions the marker.
	for _, name := range sheets {
		rows, err := f.GetRows(name)
		if err != nil {
			continue
		}
		for _, row := range rows {
			if len(row) > 0 && strings.Contains(row[0], sponsoredProductsMarker) {
				return name, rows, nil
			}
		}
	}

	return "", nil, ErrNoSponsoredProducts
}

func headerWidth(rows [][]string) int {
	if len(rows) == 0 {
		return 0
	}
	return len(rows[0])
}

// ReadMappingRows reads all rows of the first sheet of a workbook. Used
// for the two-column ASIN short-name mapping upload; validation of the
// content happens in the naming package.
func ReadMappingRows(r io.Reader) ([][]string, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("open workbook: %w", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("workbook has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("read sheet %q: %w", sheets[0], err)
	}
	return rows, nil
}
