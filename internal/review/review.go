// Package review implements filtering, sorting and aggregation of lead submissions
// shown to staff. All functions are pure and work on already loaded submissions.
package review

import (
	"sort"
	"strings"
	"time"

	"github.com/umalmyha/imaging-leads/internal/model"
)

// DateLayout is layout of range bounds
const DateLayout = "2006-01-02"

// RecentWindow is age under which submission is treated as recent
const RecentWindow = time.Hour

// FilterAll disables status/type filter
const FilterAll = "all"

// SortDirection is direction of created_at ordering
type SortDirection string

const (
	// SortNewestFirst orders submissions by created_at descending
	SortNewestFirst SortDirection = "desc"
	// SortOldestFirst orders submissions by created_at ascending
	SortOldestFirst SortDirection = "asc"
)

// Filter is combination of staff filters, zero value matches everything newest first
type Filter struct {
	Search      string
	Status      string
	ImagingType string
	From        string
	To          string
	Sort        SortDirection
}

// Stats is aggregate counts over all submissions
type Stats struct {
	Total     int                       `json:"total"`
	Pending   int                       `json:"pending"`
	Processed int                       `json:"processed"`
	Engaged   int                       `json:"engaged"`
	ByType    map[model.ImagingType]int `json:"by_type"`
}

// Row is submission in filtered view
type Row struct {
	Submission model.Submission
	Recent     bool
}

type predicate func(*model.Submission) bool

// Apply returns submissions matching all filters ordered by created_at.
// Date bounds are interpreted in loc.
func Apply(subs []model.Submission, f Filter, loc *time.Location) ([]model.Submission, error) {
	predicates, err := f.predicates(loc)
	if err != nil {
		return nil, err
	}

	matched := make([]model.Submission, 0, len(subs))
	for i := range subs {
		if matchesAll(&subs[i], predicates) {
			matched = append(matched, subs[i])
		}
	}

	Sort(matched, f.Sort)
	return matched, nil
}

// Sort orders submissions by created_at in place, ties are broken by id
func Sort(subs []model.Submission, dir SortDirection) {
	asc := dir == SortOldestFirst
	sort.SliceStable(subs, func(i, j int) bool {
		a, b := subs[i], subs[j]
		if !a.CreatedAt.Equal(b.CreatedAt) {
			if asc {
				return a.CreatedAt.Before(b.CreatedAt)
			}
			return a.CreatedAt.After(b.CreatedAt)
		}
		if asc {
			return a.ID < b.ID
		}
		return a.ID > b.ID
	})
}

// Rows marks submissions created less than RecentWindow before now
func Rows(subs []model.Submission, now time.Time) []Row {
	rows := make([]Row, 0, len(subs))
	for _, s := range subs {
		rows = append(rows, Row{Submission: s, Recent: IsRecent(s, now)})
	}
	return rows
}

// IsRecent reports whether submission was created within RecentWindow
func IsRecent(s model.Submission, now time.Time) bool {
	return now.Sub(s.CreatedAt) < RecentWindow
}

// Summarize computes global counts, must be called with unfiltered submissions
func Summarize(subs []model.Submission) Stats {
	stats := Stats{ByType: make(map[model.ImagingType]int)}
	for _, s := range subs {
		stats.Total++
		switch s.Status {
		case model.StatusEngaged:
			stats.Engaged++
		case model.StatusProcessed:
			stats.Processed++
		default:
			stats.Pending++
		}
		stats.ByType[s.ImagingType]++
	}
	return stats
}

// ImagingTypes returns distinct imaging types in order of first appearance
func ImagingTypes(subs []model.Submission) []model.ImagingType {
	seen := make(map[model.ImagingType]struct{})
	types := make([]model.ImagingType, 0)
	for _, s := range subs {
		if _, ok := seen[s.ImagingType]; ok {
			continue
		}
		seen[s.ImagingType] = struct{}{}
		types = append(types, s.ImagingType)
	}
	return types
}

func (f Filter) predicates(loc *time.Location) ([]predicate, error) {
	if loc == nil {
		loc = time.Local
	}

	predicates := make([]predicate, 0, 5)

	if term := strings.ToLower(f.Search); term != "" {
		predicates = append(predicates, matchesSearch(term))
	}

	if f.Status != "" && f.Status != FilterAll {
		st := model.Status(f.Status)
		predicates = append(predicates, func(s *model.Submission) bool {
			return s.Status == st
		})
	}

	if f.ImagingType != "" && f.ImagingType != FilterAll {
		it := model.ImagingType(f.ImagingType)
		predicates = append(predicates, func(s *model.Submission) bool {
			return s.ImagingType == it
		})
	}

	if f.From != "" {
		from, err := time.ParseInLocation(DateLayout, f.From, loc)
		if err != nil {
			return nil, err
		}
		predicates = append(predicates, func(s *model.Submission) bool {
			return !s.CreatedAt.Before(from)
		})
	}

	if f.To != "" {
		to, err := time.ParseInLocation(DateLayout, f.To, loc)
		if err != nil {
			return nil, err
		}
		nextDay := to.AddDate(0, 0, 1)
		predicates = append(predicates, func(s *model.Submission) bool {
			return s.CreatedAt.Before(nextDay)
		})
	}

	return predicates, nil
}

func matchesAll(s *model.Submission, predicates []predicate) bool {
	for _, p := range predicates {
		if !p(s) {
			return false
		}
	}
	return true
}

func matchesSearch(term string) predicate {
	return func(s *model.Submission) bool {
		fields := []*string{&s.ZipCode, &s.Phone, (*string)(&s.ImagingType), s.BodyPart, s.Notes}
		for _, f := range fields {
			if f != nil && strings.Contains(strings.ToLower(*f), term) {
				return true
			}
		}
		return false
	}
}
