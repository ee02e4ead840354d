package review

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/imaging-leads/internal/model"
)

type reviewTestSuite struct {
	suite.Suite
	loc  *time.Location
	subs []model.Submission
}

func strPtr(s string) *string { return &s }

func (s *reviewTestSuite) SetupSuite() {
	s.loc = time.FixedZone("PST", -8*60*60)

	at := func(day, hour int) time.Time {
		return time.Date(2024, 5, day, hour, 0, 0, 0, s.loc)
	}

	s.subs = []model.Submission{
		{ID: 1, ZipCode: "94107", Phone: "4155550100", ImagingType: model.ImagingTypeMRI, BodyPart: strPtr("Knee"), Status: model.StatusPending, CreatedAt: at(1, 9)},
		{ID: 2, ZipCode: "94110", Phone: "4155550101", ImagingType: model.ImagingTypeCT, Status: model.StatusProcessed, Notes: strPtr("Left voicemail"), CreatedAt: at(2, 10)},
		{ID: 3, ZipCode: "10001", Phone: "2125550102", ImagingType: model.ImagingTypeMRI, Status: model.StatusEngaged, CreatedAt: at(3, 23)},
		{ID: 4, ZipCode: "60601", Phone: "3125559410", ImagingType: model.ImagingTypeXRay, Status: model.StatusPending, CreatedAt: at(4, 0)},
		{ID: 5, ZipCode: "33139", Phone: "3055550104", ImagingType: model.ImagingTypeUltrasound, Status: model.StatusEngaged, Notes: strPtr("booked MRI follow-up"), CreatedAt: at(5, 12)},
	}
}

func (s *reviewTestSuite) ids(subs []model.Submission) []int64 {
	ids := make([]int64, 0, len(subs))
	for _, sub := range subs {
		ids = append(ids, sub.ID)
	}
	return ids
}

func (s *reviewTestSuite) TestDefaultIsNewestFirst() {
	res, err := Apply(s.subs, Filter{}, s.loc)
	s.Require().NoError(err, "no error must be raised")
	s.Require().Equal([]int64{5, 4, 3, 2, 1}, s.ids(res), "default order must be newest first")
}

func (s *reviewTestSuite) TestSortDirectionsAreReversed() {
	desc, err := Apply(s.subs, Filter{Sort: SortNewestFirst}, s.loc)
	s.Require().NoError(err)
	asc, err := Apply(s.subs, Filter{Sort: SortOldestFirst}, s.loc)
	s.Require().NoError(err)

	s.Require().Len(asc, len(desc))
	for i := range desc {
		s.Require().Equal(desc[i].ID, asc[len(asc)-1-i].ID, "ascending order must be exact reverse of descending")
	}
}

func (s *reviewTestSuite) TestSearch() {
	s.T().Log("zip substring matches zip and phone")
	{
		res, err := Apply(s.subs, Filter{Search: "941"}, s.loc)
		s.Require().NoError(err)
		s.Require().ElementsMatch([]int64{1, 2, 4}, s.ids(res), "id 4 phone contains 941")
	}

	s.T().Log("search is case-insensitive over imaging type, body part and notes")
	{
		res, err := Apply(s.subs, Filter{Search: "MRI"}, s.loc)
		s.Require().NoError(err)
		s.Require().ElementsMatch([]int64{1, 3, 5}, s.ids(res))

		res, err = Apply(s.subs, Filter{Search: "knee"}, s.loc)
		s.Require().NoError(err)
		s.Require().Equal([]int64{1}, s.ids(res))

		res, err = Apply(s.subs, Filter{Search: "VOICEMAIL"}, s.loc)
		s.Require().NoError(err)
		s.Require().Equal([]int64{2}, s.ids(res))
	}

	s.T().Log("term is matched as typed including spaces")
	{
		res, err := Apply(s.subs, Filter{Search: " voicemail"}, s.loc)
		s.Require().NoError(err)
		s.Require().Equal([]int64{2}, s.ids(res))

		res, err = Apply(s.subs, Filter{Search: "voicemail "}, s.loc)
		s.Require().NoError(err)
		s.Require().Empty(res, "trailing space must not be trimmed")

		res, err = Apply(s.subs, Filter{Search: " "}, s.loc)
		s.Require().NoError(err)
		s.Require().ElementsMatch([]int64{2, 5}, s.ids(res), "only notes contain spaces")
	}

	s.T().Log("nothing matches unknown term")
	{
		res, err := Apply(s.subs, Filter{Search: "zzz"}, s.loc)
		s.Require().NoError(err)
		s.Require().Empty(res)
	}
}

func (s *reviewTestSuite) TestStatusFilter() {
	res, err := Apply(s.subs, Filter{Status: "engaged"}, s.loc)
	s.Require().NoError(err)
	s.Require().ElementsMatch([]int64{3, 5}, s.ids(res))
	for _, sub := range res {
		processed, _ := sub.Status.Flags()
		s.Require().True(processed, "engaged submission must be processed")
	}

	res, err = Apply(s.subs, Filter{Status: "processed"}, s.loc)
	s.Require().NoError(err)
	s.Require().Equal([]int64{2}, s.ids(res), "engaged submissions must not be counted as processed")

	res, err = Apply(s.subs, Filter{Status: "pending"}, s.loc)
	s.Require().NoError(err)
	s.Require().ElementsMatch([]int64{1, 4}, s.ids(res))

	res, err = Apply(s.subs, Filter{Status: FilterAll}, s.loc)
	s.Require().NoError(err)
	s.Require().Len(res, len(s.subs))
}

func (s *reviewTestSuite) TestTypeFilter() {
	res, err := Apply(s.subs, Filter{ImagingType: "mri"}, s.loc)
	s.Require().NoError(err)
	s.Require().ElementsMatch([]int64{1, 3}, s.ids(res))
}

func (s *reviewTestSuite) TestDateRange() {
	s.T().Log("bounds are inclusive whole days")
	{
		res, err := Apply(s.subs, Filter{From: "2024-05-02", To: "2024-05-03"}, s.loc)
		s.Require().NoError(err)
		s.Require().ElementsMatch([]int64{2, 3}, s.ids(res), "submission at 23:00 of end day must be included")
	}

	s.T().Log("bounds may be omitted")
	{
		res, err := Apply(s.subs, Filter{From: "2024-05-04"}, s.loc)
		s.Require().NoError(err)
		s.Require().ElementsMatch([]int64{4, 5}, s.ids(res), "submission at midnight of start day must be included")

		res, err = Apply(s.subs, Filter{To: "2024-05-01"}, s.loc)
		s.Require().NoError(err)
		s.Require().Equal([]int64{1}, s.ids(res))
	}

	s.T().Log("malformed bound is rejected")
	{
		_, err := Apply(s.subs, Filter{From: "05/01/2024"}, s.loc)
		s.Require().Error(err)
	}
}

func (s *reviewTestSuite) TestFiltersCompose() {
	res, err := Apply(s.subs, Filter{Search: "mri", Status: "engaged", ImagingType: "ultrasound", From: "2024-05-05", To: "2024-05-05"}, s.loc)
	s.Require().NoError(err)
	s.Require().Equal([]int64{5}, s.ids(res))
}

func (s *reviewTestSuite) TestSummarizeUsesFullSet() {
	stats := Summarize(s.subs)
	s.Require().Equal(5, stats.Total)
	s.Require().Equal(2, stats.Pending)
	s.Require().Equal(1, stats.Processed)
	s.Require().Equal(2, stats.Engaged)
	s.Require().Equal(2, stats.ByType[model.ImagingTypeMRI])
}

func (s *reviewTestSuite) TestImagingTypes() {
	s.Require().Equal([]model.ImagingType{
		model.ImagingTypeMRI,
		model.ImagingTypeCT,
		model.ImagingTypeXRay,
		model.ImagingTypeUltrasound,
	}, ImagingTypes(s.subs))
}

func (s *reviewTestSuite) TestRows() {
	now := s.subs[4].CreatedAt.Add(30 * time.Minute)
	rows := Rows(s.subs, now)
	s.Require().Len(rows, len(s.subs))
	s.Require().True(rows[4].Recent, "submission created 30 minutes ago is recent")
	s.Require().False(rows[3].Recent, "submission created a day ago is not recent")
}

func TestSortTiesBrokenByID(t *testing.T) {
	at := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	subs := []model.Submission{{ID: 2, CreatedAt: at}, {ID: 1, CreatedAt: at}, {ID: 3, CreatedAt: at}}

	Sort(subs, SortOldestFirst)
	require.Equal(t, int64(1), subs[0].ID)
	Sort(subs, SortNewestFirst)
	require.Equal(t, int64(3), subs[0].ID)
}

// start review test suite
func TestReviewTestSuite(t *testing.T) {
	suite.Run(t, new(reviewTestSuite))
}
