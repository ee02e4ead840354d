package export

import (
	"bytes"
	"encoding/csv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/umalmyha/imaging-leads/internal/model"
)

func strPtr(s string) *string { return &s }

func boolPtr(b bool) *bool { return &b }

func TestWriteCSV(t *testing.T) {
	createdAt := time.Date(2024, 3, 5, 14, 30, 0, 0, time.UTC)
	notes := `said "call back", after 5pm`

	subs := []model.Submission{
		{
			ID:          7,
			ZipCode:     "94107",
			Phone:       "4155550100",
			FullName:    strPtr("Jane Doe"),
			ImagingType: model.ImagingTypeMRI,
			BodyPart:    strPtr("knee"),
			HasOrder:    boolPtr(true),
			UtmSource:   strPtr("google"),
			Status:      model.StatusEngaged,
			Notes:       &notes,
			CreatedAt:   createdAt,
		},
		{
			ID:          8,
			ZipCode:     "10001",
			Phone:       "2125550101",
			ImagingType: model.ImagingTypeCT,
			Status:      model.StatusPending,
			CreatedAt:   createdAt,
		},
		{
			ID:          9,
			ZipCode:     "60601",
			Phone:       "3125550102",
			ImagingType: model.ImagingTypeXRay,
			HasOrder:    boolPtr(false),
			Status:      model.StatusProcessed,
			CreatedAt:   createdAt,
		},
	}

	var buf bytes.Buffer
	err := WriteCSV(&buf, subs, time.UTC)
	require.NoError(t, err, "no error must be raised")

	records, err := csv.NewReader(&buf).ReadAll()
	require.NoError(t, err, "export must be well-formed csv")
	require.Len(t, records, len(subs)+1, "header and one row per submission expected")

	t.Log("header has fixed column order")
	{
		require.Equal(t, Header, records[0])
	}

	t.Log("notes with quotes and delimiters survive round trip")
	{
		require.Equal(t, notes, records[1][10])
	}

	t.Log("first row rendered correctly")
	{
		require.Equal(t, []string{
			"7", "94107", "4155550100", "Jane Doe", "mri", "knee", "Yes", "google", "2024-03-05 14:30:00", "Engaged", notes,
		}, records[1])
	}

	t.Log("has order and status labels")
	{
		require.Equal(t, "", records[2][6], "unknown has order must be empty")
		require.Equal(t, "Pending", records[2][9])
		require.Equal(t, "No", records[3][6])
		require.Equal(t, "Processed", records[3][9])
	}
}

func TestFileName(t *testing.T) {
	now := time.Date(2024, 11, 2, 23, 0, 0, 0, time.UTC)
	require.Equal(t, "lead-submissions-2024-11-02.csv", FileName(now))
}
