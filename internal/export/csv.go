// Package export renders lead submissions as portable tabular text.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/umalmyha/imaging-leads/internal/model"
)

// CreatedAtLayout is layout of Created At column
const CreatedAtLayout = "2006-01-02 15:04:05"

// Header is fixed column order of export
var Header = []string{
	"ID",
	"Zip Code",
	"Phone",
	"Full Name",
	"Imaging Type",
	"Body Part",
	"Has Order",
	"UTM Source",
	"Created At",
	"Status",
	"Notes",
}

// FileName returns name of export file stamped with date of export
func FileName(now time.Time) string {
	return fmt.Sprintf("lead-submissions-%s.csv", now.Format("2006-01-02"))
}

// WriteCSV writes header and one row per submission, timestamps are rendered in loc
func WriteCSV(w io.Writer, subs []model.Submission, loc *time.Location) error {
	if loc == nil {
		loc = time.Local
	}

	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return err
	}

	for i := range subs {
		if err := cw.Write(record(&subs[i], loc)); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

func record(s *model.Submission, loc *time.Location) []string {
	return []string{
		strconv.FormatInt(s.ID, 10),
		s.ZipCode,
		s.Phone,
		text(s.FullName),
		string(s.ImagingType),
		text(s.BodyPart),
		yesNo(s.HasOrder),
		text(s.UtmSource),
		s.CreatedAt.In(loc).Format(CreatedAtLayout),
		s.Status.Label(),
		text(s.Notes),
	}
}

func text(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

func yesNo(b *bool) string {
	switch {
	case b == nil:
		return ""
	case *b:
		return "Yes"
	default:
		return "No"
	}
}
