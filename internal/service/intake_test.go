package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	evtMocks "github.com/umalmyha/imaging-leads/internal/events/mocks"
	"github.com/umalmyha/imaging-leads/internal/intake"
	"github.com/umalmyha/imaging-leads/internal/model"
	rpsMocks "github.com/umalmyha/imaging-leads/internal/repository/mocks"
	"github.com/umalmyha/imaging-leads/internal/validation"
)

func strRef(s string) *string { return &s }

func boolRef(b bool) *bool { return &b }

type intakeServiceTestSuite struct {
	suite.Suite
	ctx            context.Context
	validator      *validation.Validator
	intakeSvc      IntakeService
	submRpsMock    *rpsMocks.SubmissionRepository
	bookingRpsMock *rpsMocks.BookingRepository
	publisherMock  *evtMocks.Publisher
}

func (s *intakeServiceTestSuite) SetupSuite() {
	v, err := validation.New()
	s.Require().NoError(err, "failed to build validator")
	s.validator = v
	s.ctx = context.Background()
}

func (s *intakeServiceTestSuite) SetupTest() {
	t := s.T()
	s.submRpsMock = rpsMocks.NewSubmissionRepository(t)
	s.bookingRpsMock = rpsMocks.NewBookingRepository(t)
	s.publisherMock = evtMocks.NewPublisher(t)
	s.intakeSvc = NewIntakeService(s.validator, s.submRpsMock, s.bookingRpsMock, s.publisherMock)
}

func (s *intakeServiceTestSuite) TestSubmitLeadInvalidZip() {
	s.T().Log("zip code with 4 digits is rejected and nothing is stored")
	{
		res := s.intakeSvc.SubmitLead(s.ctx, intake.LeadPayload{ZipCode: "9410", Phone: "415-555-0100", ImagingType: "MRI"})
		s.Require().False(res.Success, "submission must fail")
		s.Require().Equal(intake.FailureValidation, res.Kind, "failure must be validation failure")
		s.Require().Equal("zip_code", res.Violations[0].Field, "zip code violation expected")
		s.submRpsMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
	}
}

func (s *intakeServiceTestSuite) TestSubmitLeadPhoneWithoutDigits() {
	res := s.intakeSvc.SubmitLead(s.ctx, intake.LeadPayload{ZipCode: "94107", Phone: "(---)", ImagingType: "ct"})
	s.Require().False(res.Success, "phone without digits must be rejected")
	s.Require().Equal(intake.FailureValidation, res.Kind)
	s.Require().Equal("phone", res.Violations[0].Field)
}

func (s *intakeServiceTestSuite) TestSubmitLeadPhoneTooLong() {
	res := s.intakeSvc.SubmitLead(s.ctx, intake.LeadPayload{ZipCode: "94107", Phone: "1234567890123456789012345", ImagingType: "mri"})
	s.Require().False(res.Success, "phone longer than 20 digits must be rejected")
	s.Require().Equal(intake.FailureValidation, res.Kind)
	s.Require().Equal("phone", res.Violations[0].Field)
	s.submRpsMock.AssertNotCalled(s.T(), "Create", mock.Anything, mock.Anything)
}

func (s *intakeServiceTestSuite) TestSubmitLeadFormattedPhoneWithinLimit() {
	s.submRpsMock.On("Create", s.ctx, mock.AnythingOfType("*model.Submission")).Return(nil).Once()
	s.publisherMock.On("Publish", mock.Anything, mock.AnythingOfType("events.Event")).Return(nil).Once()

	res := s.intakeSvc.SubmitLead(s.ctx, intake.LeadPayload{ZipCode: "94107", Phone: "+1 (415) 555-0100 ext. 12", ImagingType: "mri"})
	s.Require().True(res.Success, "limit applies to digits only")
}

func (s *intakeServiceTestSuite) TestSubmitLeadUnknownImagingType() {
	res := s.intakeSvc.SubmitLead(s.ctx, intake.LeadPayload{ZipCode: "94107", Phone: "4155550100", ImagingType: "sonar"})
	s.Require().False(res.Success, "unknown imaging type must be rejected")
	s.Require().Equal("imaging_type", res.Violations[0].Field)
}

func (s *intakeServiceTestSuite) TestSubmitLeadSuccessfully() {
	var stored *model.Submission

	s.submRpsMock.On("Create", s.ctx, mock.AnythingOfType("*model.Submission")).
		Run(func(args mock.Arguments) {
			stored = args.Get(1).(*model.Submission)
			stored.ID = 42
			stored.Version = 1
		}).
		Return(nil).Once()
	s.publisherMock.On("Publish", mock.Anything, mock.AnythingOfType("events.Event")).Return(nil).Once()

	payload := intake.LeadPayload{
		ZipCode:     "94107",
		Phone:       "(415) 555-0100",
		ImagingType: " X-Ray ",
		BodyPart:    strRef("  "),
		HasOrder:    boolRef(true),
		FullName:    strRef(" Jane Doe "),
		ReferrerURL: strRef("https://example.com/?utm_source=google&utm_medium=cpc"),
	}

	s.T().Log("lead is normalized and stored as pending")
	{
		res := s.intakeSvc.SubmitLead(s.ctx, payload)
		s.Require().True(res.Success, "submission must succeed")
		s.Require().NotNil(stored, "submission must be stored")
		s.Require().Equal("4155550100", stored.Phone, "phone must contain digits only")
		s.Require().Equal(model.ImagingTypeXRay, stored.ImagingType, "imaging type alias must be resolved")
		s.Require().Nil(stored.BodyPart, "blank body part must be stored as null")
		s.Require().Equal("Jane Doe", *stored.FullName, "full name must be trimmed")
		s.Require().Equal("google", *stored.UtmSource, "utm source must be taken from referrer")
		s.Require().Equal(model.StatusPending, stored.Status, "new lead must be pending")
		s.Require().Nil(stored.Notes, "new lead has no notes")
		s.Require().Equal(stored, res.Data, "stored submission must be returned")
	}
}

func (s *intakeServiceTestSuite) TestSubmitLeadMalformedReferrer() {
	var stored *model.Submission

	s.submRpsMock.On("Create", s.ctx, mock.AnythingOfType("*model.Submission")).
		Run(func(args mock.Arguments) { stored = args.Get(1).(*model.Submission) }).
		Return(nil).Once()
	s.publisherMock.On("Publish", mock.Anything, mock.AnythingOfType("events.Event")).Return(nil).Once()

	res := s.intakeSvc.SubmitLead(s.ctx, intake.LeadPayload{
		ZipCode:     "94107",
		Phone:       "4155550100",
		ImagingType: "mri",
		ReferrerURL: strRef("::not a url::"),
	})
	s.Require().True(res.Success, "malformed referrer must never fail submission")
	s.Require().Nil(stored.UtmSource, "utm source must be null")
}

func (s *intakeServiceTestSuite) TestSubmitLeadStoreFailure() {
	s.submRpsMock.On("Create", s.ctx, mock.AnythingOfType("*model.Submission")).Return(errors.New("connection refused")).Once()

	s.T().Log("store failure is reported as failed result without panic")
	{
		res := s.intakeSvc.SubmitLead(s.ctx, intake.LeadPayload{ZipCode: "94107", Phone: "4155550100", ImagingType: "mri"})
		s.Require().False(res.Success, "submission must fail")
		s.Require().Equal(intake.FailureStore, res.Kind, "failure must be store failure")
		s.Require().Equal("Database error: connection refused", res.Error, "store message must be passed through")
		s.publisherMock.AssertNotCalled(s.T(), "Publish", mock.Anything, mock.Anything)
	}
}

func (s *intakeServiceTestSuite) TestSubmitLeadPublishFailureIgnored() {
	s.submRpsMock.On("Create", s.ctx, mock.AnythingOfType("*model.Submission")).Return(nil).Once()
	s.publisherMock.On("Publish", mock.Anything, mock.AnythingOfType("events.Event")).Return(errors.New("broker is down")).Once()

	res := s.intakeSvc.SubmitLead(s.ctx, intake.LeadPayload{ZipCode: "94107", Phone: "4155550100", ImagingType: "mri"})
	s.Require().True(res.Success, "publish failure must not fail stored submission")
}

func (s *intakeServiceTestSuite) TestSubmitBooking() {
	s.T().Log("billing zip is validated")
	{
		res := s.intakeSvc.SubmitBooking(s.ctx, intake.BookingPayload{ImagingCenterName: "Premier Radiology", BillingZipCode: strRef("123")})
		s.Require().False(res.Success, "invalid billing zip must be rejected")
		s.Require().Equal(intake.FailureValidation, res.Kind)
	}

	s.T().Log("imaging center name is required")
	{
		res := s.intakeSvc.SubmitBooking(s.ctx, intake.BookingPayload{ImagingCenterName: "  "})
		s.Require().False(res.Success, "missing imaging center must be rejected")
	}

	s.T().Log("only last four card digits are stored")
	{
		var stored *model.BookingConfirmation
		s.bookingRpsMock.On("Create", s.ctx, mock.AnythingOfType("*model.BookingConfirmation")).
			Run(func(args mock.Arguments) { stored = args.Get(1).(*model.BookingConfirmation) }).
			Return(nil).Once()
		s.publisherMock.On("Publish", mock.Anything, mock.AnythingOfType("events.Event")).Return(nil).Once()

		res := s.intakeSvc.SubmitBooking(s.ctx, intake.BookingPayload{
			ImagingCenterName: "Premier Radiology",
			BillingZipCode:    strRef("94107"),
			CardNumber:        strRef("4242 4242 4242 1234"),
			HasOrder:          true,
		})
		s.Require().True(res.Success, "booking must be stored")
		s.Require().Equal("1234", *stored.LastFourDigits, "last four digits must be stored")
		s.Require().Equal(model.BookingStatusSubmitted, stored.Status, "status must be submitted")
		s.Require().False(stored.Processed, "booking must not be processed")
	}
}

// start intake service test suite
func TestIntakeServiceTestSuite(t *testing.T) {
	suite.Run(t, new(intakeServiceTestSuite))
}
