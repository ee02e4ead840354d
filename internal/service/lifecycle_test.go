package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/umalmyha/imaging-leads/internal/cache"
	cacheMocks "github.com/umalmyha/imaging-leads/internal/cache/mocks"
	"github.com/umalmyha/imaging-leads/internal/model"
	rpsMocks "github.com/umalmyha/imaging-leads/internal/repository/mocks"
	"github.com/umalmyha/imaging-leads/internal/validation"

	apperrors "github.com/umalmyha/imaging-leads/internal/errors"
)

const testSubmissionID int64 = 17

type lifecycleServiceTestSuite struct {
	suite.Suite
	ctx          context.Context
	lifecycleSvc LifecycleService
	submRpsMock  *rpsMocks.SubmissionRepository
	cacheMock    *cacheMocks.SubmissionCache
	ticketsMock  *cacheMocks.DeletionTicketStore
}

func (s *lifecycleServiceTestSuite) SetupSuite() {
	s.ctx = context.Background()
}

func (s *lifecycleServiceTestSuite) SetupTest() {
	t := s.T()
	s.submRpsMock = rpsMocks.NewSubmissionRepository(t)
	s.cacheMock = cacheMocks.NewSubmissionCache(t)
	s.ticketsMock = cacheMocks.NewDeletionTicketStore(t)
	s.lifecycleSvc = NewLifecycleService(s.submRpsMock, s.cacheMock, s.ticketsMock)
}

func (s *lifecycleServiceTestSuite) submission(st model.Status, version int) *model.Submission {
	return &model.Submission{
		ID:          testSubmissionID,
		ZipCode:     "94107",
		Phone:       "4155550100",
		ImagingType: model.ImagingTypeMRI,
		Status:      st,
		Notes:       strRef("called once"),
		Version:     version,
		CreatedAt:   time.Date(2024, 5, 1, 9, 0, 0, 0, time.UTC),
	}
}

func (s *lifecycleServiceTestSuite) expectUpdate(version int) {
	s.cacheMock.On("EvictByID", s.ctx, testSubmissionID).Return(nil).Once()
	s.submRpsMock.On("Update", s.ctx, mock.AnythingOfType("*model.Submission"), version).
		Run(func(args mock.Arguments) { args.Get(1).(*model.Submission).Version = version + 1 }).
		Return(nil).Once()
}

func (s *lifecycleServiceTestSuite) TestCycleSequence() {
	expected := []model.Status{model.StatusProcessed, model.StatusEngaged, model.StatusPending}
	st := model.StatusPending

	for i, next := range expected {
		s.submRpsMock.On("FindByID", s.ctx, testSubmissionID).Return(s.submission(st, i+1), nil).Once()
		s.expectUpdate(i + 1)

		subm, err := s.lifecycleSvc.Cycle(s.ctx, testSubmissionID, nil)
		s.Require().NoError(err, "no error must be raised")
		s.Require().Equal(next, subm.Status, "status must follow cycle order")
		s.Require().Equal(i+2, subm.Version, "version must be incremented")

		processed, engaged := subm.Status.Flags()
		s.Require().False(engaged && !processed, "engaged submission must be processed")
		st = subm.Status
	}
}

func (s *lifecycleServiceTestSuite) TestCycleNotFound() {
	s.submRpsMock.On("FindByID", s.ctx, testSubmissionID).Return(nil, nil).Once()

	_, err := s.lifecycleSvc.Cycle(s.ctx, testSubmissionID, nil)
	s.Require().Error(err, "missing submission must raise error")
	s.Require().IsType(&apperrors.EntryNotFoundErr{}, err, "error must be not found error")
	s.submRpsMock.AssertNotCalled(s.T(), "Update", mock.Anything, mock.Anything, mock.Anything)
}

func (s *lifecycleServiceTestSuite) TestCycleStaleVersion() {
	stale := 1
	s.submRpsMock.On("FindByID", s.ctx, testSubmissionID).Return(s.submission(model.StatusPending, 2), nil).Once()

	s.T().Log("expected version differs from stored one")
	{
		_, err := s.lifecycleSvc.Cycle(s.ctx, testSubmissionID, &stale)
		s.Require().ErrorIs(err, apperrors.ErrVersionConflict, "conflict must be reported")
		s.cacheMock.AssertNotCalled(s.T(), "EvictByID", mock.Anything, mock.Anything)
	}
}

func (s *lifecycleServiceTestSuite) TestCycleConcurrentWriteDetectedByStore() {
	s.submRpsMock.On("FindByID", s.ctx, testSubmissionID).Return(s.submission(model.StatusPending, 3), nil).Once()
	s.cacheMock.On("EvictByID", s.ctx, testSubmissionID).Return(nil).Once()
	s.submRpsMock.On("Update", s.ctx, mock.AnythingOfType("*model.Submission"), 3).Return(apperrors.ErrVersionConflict).Once()

	_, err := s.lifecycleSvc.Cycle(s.ctx, testSubmissionID, nil)
	s.Require().ErrorIs(err, apperrors.ErrVersionConflict, "conflict detected by store must be raised up")
}

func (s *lifecycleServiceTestSuite) TestCycleStoreFailure() {
	s.submRpsMock.On("FindByID", s.ctx, testSubmissionID).Return(s.submission(model.StatusPending, 1), nil).Once()
	s.cacheMock.On("EvictByID", s.ctx, testSubmissionID).Return(nil).Once()
	s.submRpsMock.On("Update", s.ctx, mock.AnythingOfType("*model.Submission"), 1).Return(errors.New("timeout")).Once()

	_, err := s.lifecycleSvc.Cycle(s.ctx, testSubmissionID, nil)
	s.Require().Error(err, "store failure must be raised up")
	s.Require().IsType(&apperrors.StoreErr{}, err, "error must be store error")
}

func (s *lifecycleServiceTestSuite) TestEdit() {
	s.T().Log("notes are cleared with empty string")
	{
		s.submRpsMock.On("FindByID", s.ctx, testSubmissionID).Return(s.submission(model.StatusPending, 1), nil).Once()
		s.expectUpdate(1)

		subm, err := s.lifecycleSvc.Edit(s.ctx, testSubmissionID, EditRequest{Status: model.StatusEngaged, Notes: strRef("")})
		s.Require().NoError(err, "no error must be raised")
		s.Require().Equal(model.StatusEngaged, subm.Status, "status must be set directly")
		s.Require().Nil(subm.Notes, "notes must be cleared")
	}

	s.T().Log("notes are untouched when omitted")
	{
		s.submRpsMock.On("FindByID", s.ctx, testSubmissionID).Return(s.submission(model.StatusEngaged, 2), nil).Once()
		s.expectUpdate(2)

		subm, err := s.lifecycleSvc.Edit(s.ctx, testSubmissionID, EditRequest{Status: model.StatusProcessed})
		s.Require().NoError(err, "no error must be raised")
		s.Require().Equal("called once", *subm.Notes, "notes must be kept")
	}

	s.T().Log("unknown status is rejected")
	{
		_, err := s.lifecycleSvc.Edit(s.ctx, testSubmissionID, EditRequest{Status: "archived"})
		s.Require().IsType(&apperrors.BusinessErr{}, err, "error must be business error")
	}
}

func (s *lifecycleServiceTestSuite) TestPatch() {
	s.T().Log("engaged without processed is rejected")
	{
		s.submRpsMock.On("FindByID", s.ctx, testSubmissionID).Return(s.submission(model.StatusPending, 1), nil).Once()

		_, err := s.lifecycleSvc.Patch(s.ctx, testSubmissionID, PatchRequest{Engaged: boolRef(true), Processed: boolRef(false)})
		s.Require().IsType(&apperrors.BusinessErr{}, err, "error must be business error")
	}

	s.T().Log("clearing processed flag of engaged submission is rejected")
	{
		s.submRpsMock.On("FindByID", s.ctx, testSubmissionID).Return(s.submission(model.StatusEngaged, 1), nil).Once()
		_, err := s.lifecycleSvc.Patch(s.ctx, testSubmissionID, PatchRequest{Processed: boolRef(false)})
		s.Require().Error(err, "engaged flag is kept, so invalid pair must be rejected")
	}

	s.T().Log("single flag is merged with stored state")
	{
		s.submRpsMock.On("FindByID", s.ctx, testSubmissionID).Return(s.submission(model.StatusProcessed, 4), nil).Once()
		s.expectUpdate(4)

		subm, err := s.lifecycleSvc.Patch(s.ctx, testSubmissionID, PatchRequest{Engaged: boolRef(true)})
		s.Require().NoError(err, "no error must be raised")
		s.Require().Equal(model.StatusEngaged, subm.Status, "processed submission becomes engaged")
	}
}

func (s *lifecycleServiceTestSuite) TestCreate() {
	s.T().Log("invalid direct create is rejected")
	{
		_, err := s.lifecycleSvc.Create(s.ctx, DirectCreate{ZipCode: "941", Phone: "", ImagingType: "sonar", Status: "archived"})
		s.Require().IsType(&validation.PayloadError{}, err, "error must be payload error")
		s.Require().Len(err.(*validation.PayloadError).Violations(), 4, "all violations must be reported")
	}

	s.T().Log("phone longer than 20 digits is rejected before store")
	{
		_, err := s.lifecycleSvc.Create(s.ctx, DirectCreate{ZipCode: "94107", Phone: "1234567890123456789012345", ImagingType: "mri"})
		s.Require().IsType(&validation.PayloadError{}, err, "error must be payload error")
		s.Require().Equal("phone", err.(*validation.PayloadError).Violations()[0].Field)
		s.submRpsMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	}

	s.T().Log("submission is created with explicit status")
	{
		s.submRpsMock.On("Create", s.ctx, mock.AnythingOfType("*model.Submission")).Return(nil).Once()

		subm, err := s.lifecycleSvc.Create(s.ctx, DirectCreate{ZipCode: "94107", Phone: "415.555.0100", ImagingType: "CT", Status: model.StatusProcessed})
		s.Require().NoError(err, "no error must be raised")
		s.Require().Equal(model.StatusProcessed, subm.Status)
		s.Require().Equal("4155550100", subm.Phone)
		s.Require().Equal(model.ImagingTypeCT, subm.ImagingType)
	}
}

func (s *lifecycleServiceTestSuite) TestFindByID() {
	s.T().Log("submission is taken from cache")
	{
		s.cacheMock.On("FindByID", s.ctx, testSubmissionID).Return(s.submission(model.StatusPending, 1), nil).Once()

		_, err := s.lifecycleSvc.FindByID(s.ctx, testSubmissionID)
		s.Require().NoError(err, "no error must be raised")
		s.submRpsMock.AssertNotCalled(s.T(), "FindByID", mock.Anything, mock.Anything)
	}

	s.T().Log("cache miss reads store and caches submission")
	{
		subm := s.submission(model.StatusPending, 1)
		s.cacheMock.On("FindByID", s.ctx, testSubmissionID).Return(nil, nil).Once()
		s.submRpsMock.On("FindByID", s.ctx, testSubmissionID).Return(subm, nil).Once()
		s.cacheMock.On("Cache", s.ctx, subm).Return(nil).Once()

		found, err := s.lifecycleSvc.FindByID(s.ctx, testSubmissionID)
		s.Require().NoError(err, "no error must be raised")
		s.Require().Equal(subm, found)
	}
}

func (s *lifecycleServiceTestSuite) TestDeletion() {
	ticket := "3f1e5a8d-7d0b-4f5c-9c51-6b7de0c1a2f4"

	s.T().Log("delete without ticket is not confirmed")
	{
		err := s.lifecycleSvc.ConfirmDelete(s.ctx, testSubmissionID, "")
		s.Require().ErrorIs(err, apperrors.ErrDeleteNotConfirmed)
		s.submRpsMock.AssertNotCalled(s.T(), "DeleteByID", mock.Anything, mock.Anything)
	}

	s.T().Log("request issues ticket for existing submission")
	{
		s.submRpsMock.On("FindByID", s.ctx, testSubmissionID).Return(s.submission(model.StatusPending, 1), nil).Once()
		s.ticketsMock.On("Issue", s.ctx, testSubmissionID).Return(&cache.DeletionTicket{ID: ticket, SubmissionID: testSubmissionID}, nil).Once()

		t, err := s.lifecycleSvc.RequestDelete(s.ctx, testSubmissionID)
		s.Require().NoError(err, "no error must be raised")
		s.Require().Equal(ticket, t.ID)
	}

	s.T().Log("expired or foreign ticket doesn't delete anything")
	{
		s.ticketsMock.On("Consume", s.ctx, testSubmissionID, "expired").Return(false, nil).Once()

		err := s.lifecycleSvc.ConfirmDelete(s.ctx, testSubmissionID, "expired")
		s.Require().ErrorIs(err, apperrors.ErrDeleteNotConfirmed)
		s.submRpsMock.AssertNotCalled(s.T(), "DeleteByID", mock.Anything, mock.Anything)
	}

	s.T().Log("confirmed ticket deletes submission")
	{
		s.ticketsMock.On("Consume", s.ctx, testSubmissionID, ticket).Return(true, nil).Once()
		s.cacheMock.On("EvictByID", s.ctx, testSubmissionID).Return(nil).Once()
		s.submRpsMock.On("DeleteByID", s.ctx, testSubmissionID).Return(nil).Once()

		err := s.lifecycleSvc.ConfirmDelete(s.ctx, testSubmissionID, ticket)
		s.Require().NoError(err, "no error must be raised")
	}

	s.T().Log("cancel drops ticket")
	{
		s.ticketsMock.On("Cancel", s.ctx, testSubmissionID, ticket).Return(nil).Once()

		err := s.lifecycleSvc.CancelDelete(s.ctx, testSubmissionID, ticket)
		s.Require().NoError(err, "no error must be raised")
	}
}

// start lifecycle service test suite
func TestLifecycleServiceTestSuite(t *testing.T) {
	suite.Run(t, new(lifecycleServiceTestSuite))
}
