package bulkfile

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestWriteUpdateFile(t *testing.T) {
	rows := []UpdateRow{
		{
			Product:      "Sponsored Products",
			Entity:       EntityCampaign,
			Operation:    "update",
			CampaignID:   "101",
			CampaignName: "SP-M-[*Ex*]",
		},
		{
			Product:     "Sponsored Products",
			Entity:      EntityAdGroup,
			Operation:   "update",
			CampaignID:  "101",
			AdGroupID:   "ag1",
			AdGroupName: "B07AAA1111-Ex",
		},
	}

	data, err := UpdateFileBytes(rows)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{"Sponsored Products"}, f.GetSheetList())

	got, err := f.GetRows("Sponsored Products")
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, []string{
		"Product", "Entity", "Operation", "Campaign ID", "Ad Group ID",
		"", "", "", "Campaign Name", "Ad Group Name",
	}, padRow(got[0], 10))
	assert.Equal(t, []string{
		"Sponsored Products", "Campaign", "update", "101", "",
		"", "", "", "SP-M-[*Ex*]", "",
	}, padRow(got[1], 10))
	assert.Equal(t, []string{
		"Sponsored Products", "Ad Group", "update", "101", "ag1",
		"", "", "", "", "B07AAA1111-Ex",
	}, padRow(got[2], 10))
}

// padRow restores trailing empty cells that GetRows trims.
func padRow(row []string, width int) []string {
	for len(row) < width {
		row = append(row, "")
	}
	return row
}

func TestWriteUpdateFileEmpty(t *testing.T) {
	data, err := UpdateFileBytes(nil)
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()

	got, err := f.GetRows("Sponsored Products")
	require.NoError(t, err)
	require.Len(t, got, 1)
}
