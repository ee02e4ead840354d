package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/imaging-leads/internal/events"
	"github.com/umalmyha/imaging-leads/internal/intake"
	"github.com/umalmyha/imaging-leads/internal/model"
	"github.com/umalmyha/imaging-leads/internal/repository"
	"github.com/umalmyha/imaging-leads/internal/validation"
)

const validationFailureMessage = "failed to validate your request, please try again later"

const publishTimeout = 5 * time.Second

// StructValidator validates struct against its constraints
type StructValidator interface {
	Struct(any) error
}

// IntakeService accepts public form submissions
type IntakeService interface {
	SubmitLead(context.Context, intake.LeadPayload) intake.Result
	SubmitBooking(context.Context, intake.BookingPayload) intake.Result
}

type intakeService struct {
	validator   StructValidator
	submRepo    repository.SubmissionRepository
	bookingRepo repository.BookingRepository
	publisher   events.Publisher
}

// NewIntakeService builds IntakeService
func NewIntakeService(
	v StructValidator,
	submRepo repository.SubmissionRepository,
	bookingRepo repository.BookingRepository,
	publisher events.Publisher,
) IntakeService {
	return &intakeService{validator: v, submRepo: submRepo, bookingRepo: bookingRepo, publisher: publisher}
}

func (s *intakeService) SubmitLead(ctx context.Context, p intake.LeadPayload) intake.Result {
	p.Phone = intake.NormalizePhone(p.Phone)
	p.ZipCode = strings.TrimSpace(p.ZipCode)

	imgType, known := intake.NormalizeImagingType(p.ImagingType)

	pldErr, err := s.validate(&p)
	if err != nil {
		logrus.Errorf("failed to validate lead submission - %v", err)
		return intake.StoreFailed(validationFailureMessage)
	}

	if !known && p.ImagingType != "" {
		pldErr = appendViolation(pldErr, "imaging_type", fmt.Sprintf("imaging_type must be one of %s", imagingTypesList()))
	}

	if pldErr != nil {
		return intake.Rejected(pldErr)
	}

	var utm *string
	if p.ReferrerURL != nil {
		utm = intake.UtmSource(*p.ReferrerURL)
	}

	subm := &model.Submission{
		ZipCode:     p.ZipCode,
		Phone:       p.Phone,
		FullName:    intake.OptionalText(p.FullName),
		ImagingType: imgType,
		BodyPart:    intake.OptionalText(p.BodyPart),
		HasOrder:    p.HasOrder,
		UtmSource:   utm,
		Status:      model.StatusPending,
	}

	if err := s.submRepo.Create(ctx, subm); err != nil {
		logrus.Errorf("failed to store lead submission - %v", err)
		return storeFailed(err)
	}

	s.publish(ctx, events.LeadSubmitted, subm.ID, subm)
	return intake.Succeeded(subm)
}

func (s *intakeService) SubmitBooking(ctx context.Context, p intake.BookingPayload) intake.Result {
	p.ImagingCenterName = strings.TrimSpace(p.ImagingCenterName)
	p.BillingZipCode = intake.OptionalText(p.BillingZipCode)

	pldErr, err := s.validate(&p)
	if err != nil {
		logrus.Errorf("failed to validate booking confirmation - %v", err)
		return intake.StoreFailed(validationFailureMessage)
	}

	if pldErr != nil {
		return intake.Rejected(pldErr)
	}

	var lastFour *string
	if p.CardNumber != nil {
		lastFour = intake.LastFour(*p.CardNumber)
	}

	b := &model.BookingConfirmation{
		ImagingCenterName:     p.ImagingCenterName,
		ImagingCenterAddress:  intake.OptionalText(p.ImagingCenterAddress),
		ImagingCenterPhone:    intake.OptionalText(p.ImagingCenterPhone),
		EstimatedCostRange:    intake.OptionalText(p.EstimatedCostRange),
		AvailabilityText:      intake.OptionalText(p.AvailabilityText),
		ProcessedAvailability: intake.OptionalText(p.ProcessedAvailability),
		CardholderName:        intake.OptionalText(p.CardholderName),
		BillingZipCode:        p.BillingZipCode,
		LastFourDigits:        lastFour,
		HasOrder:              p.HasOrder,
		OrderProviderName:     intake.OptionalText(p.OrderProviderName),
		OrderPracticeName:     intake.OptionalText(p.OrderPracticeName),
		OrderLocation:         intake.OptionalText(p.OrderLocation),
		WillObtainOrder:       p.WillObtainOrder,
		OrderDocument:         intake.OptionalText(p.OrderDocument),
		Status:                model.BookingStatusSubmitted,
		Processed:             false,
	}

	if err := s.bookingRepo.Create(ctx, b); err != nil {
		logrus.Errorf("failed to store booking confirmation - %v", err)
		return storeFailed(err)
	}

	s.publish(ctx, events.BookingSubmitted, b.ID, b)
	return intake.Succeeded(b)
}

func (s *intakeService) validate(payload any) (*validation.PayloadError, error) {
	err := s.validator.Struct(payload)
	if err == nil {
		return nil, nil
	}

	var pldErr *validation.PayloadError
	if errors.As(err, &pldErr) {
		return pldErr, nil
	}
	return nil, err
}

func (s *intakeService) publish(ctx context.Context, name string, id int64, payload any) {
	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	e := events.Event{Name: name, EntityID: id, OccurredAt: time.Now().UTC(), Payload: payload}
	if err := s.publisher.Publish(ctx, e); err != nil {
		logrus.WithField("event", name).Warnf("failed to publish event - %v", err)
	}
}

func storeFailed(err error) intake.Result {
	return intake.StoreFailed(fmt.Sprintf("Database error: %v", err))
}

func appendViolation(pldErr *validation.PayloadError, field, msg string) *validation.PayloadError {
	if pldErr == nil {
		return validation.NewPayloadError(field, msg)
	}
	pldErr.Violation(field, msg)
	return pldErr
}

func imagingTypesList() string {
	types := make([]string, 0, len(model.ImagingTypes))
	for _, t := range model.ImagingTypes {
		types = append(types, string(t))
	}
	return strings.Join(types, ", ")
}
