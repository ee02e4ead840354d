package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/umalmyha/imaging-leads/internal/cache"
	"github.com/umalmyha/imaging-leads/internal/intake"
	"github.com/umalmyha/imaging-leads/internal/model"
	"github.com/umalmyha/imaging-leads/internal/repository"
	"github.com/umalmyha/imaging-leads/internal/validation"

	apperrors "github.com/umalmyha/imaging-leads/internal/errors"
)

// EditRequest sets status directly and optionally rewrites notes
type EditRequest struct {
	Status          model.Status
	Notes           *string
	ExpectedVersion *int
}

// PatchRequest updates only provided fields
type PatchRequest struct {
	Processed       *bool
	Engaged         *bool
	Notes           *string
	ExpectedVersion *int
}

// DirectCreate is submission created by staff
type DirectCreate struct {
	ZipCode     string
	Phone       string
	ImagingType string
	FullName    *string
	BodyPart    *string
	HasOrder    *bool
	UtmSource   *string
	Status      model.Status
	Notes       *string
}

// LifecycleService drives submission through review statuses
type LifecycleService interface {
	FindByID(context.Context, int64) (*model.Submission, error)
	Create(context.Context, DirectCreate) (*model.Submission, error)
	Cycle(context.Context, int64, *int) (*model.Submission, error)
	Edit(context.Context, int64, EditRequest) (*model.Submission, error)
	Patch(context.Context, int64, PatchRequest) (*model.Submission, error)
	RequestDelete(context.Context, int64) (*cache.DeletionTicket, error)
	ConfirmDelete(context.Context, int64, string) error
	CancelDelete(context.Context, int64, string) error
}

type lifecycleService struct {
	submRepo  repository.SubmissionRepository
	submCache cache.SubmissionCache
	tickets   cache.DeletionTicketStore
}

// NewLifecycleService builds LifecycleService
func NewLifecycleService(
	submRepo repository.SubmissionRepository,
	submCache cache.SubmissionCache,
	tickets cache.DeletionTicketStore,
) LifecycleService {
	return &lifecycleService{submRepo: submRepo, submCache: submCache, tickets: tickets}
}

func (s *lifecycleService) FindByID(ctx context.Context, id int64) (*model.Submission, error) {
	cached, err := s.submCache.FindByID(ctx, id)
	if err != nil {
		logrus.Warnf("failed to read submission %d from cache - %v", id, err)
	} else if cached != nil {
		return cached, nil
	}

	subm, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.submCache.Cache(ctx, subm); err != nil {
		logrus.Warnf("failed to cache submission %d - %v", id, err)
	}
	return subm, nil
}

func (s *lifecycleService) Create(ctx context.Context, dc DirectCreate) (*model.Submission, error) {
	phone := intake.NormalizePhone(dc.Phone)
	imgType, known := intake.NormalizeImagingType(dc.ImagingType)

	st := dc.Status
	if st == "" {
		st = model.StatusPending
	}

	pldErr := &validation.PayloadError{}
	if !validation.IsZipCode(dc.ZipCode) {
		pldErr.Violation("zip_code", "zip_code must be a 5-digit ZIP code")
	}
	if phone == "" {
		pldErr.Violation("phone", "phone must contain digits")
	}
	if len(phone) > intake.MaxPhoneDigits {
		pldErr.Violation("phone", fmt.Sprintf("phone must be a maximum of %d digits in length", intake.MaxPhoneDigits))
	}
	if !known {
		pldErr.Violation("imaging_type", fmt.Sprintf("imaging_type must be one of %s", imagingTypesList()))
	}
	if !st.Valid() {
		pldErr.Violation("status", "status must be one of pending, processed, engaged")
	}
	if len(pldErr.Violations()) > 0 {
		return nil, pldErr
	}

	subm := &model.Submission{
		ZipCode:     dc.ZipCode,
		Phone:       phone,
		FullName:    intake.OptionalText(dc.FullName),
		ImagingType: imgType,
		BodyPart:    intake.OptionalText(dc.BodyPart),
		HasOrder:    dc.HasOrder,
		UtmSource:   intake.OptionalText(dc.UtmSource),
		Status:      st,
		Notes:       intake.OptionalText(dc.Notes),
	}

	if err := s.submRepo.Create(ctx, subm); err != nil {
		return nil, apperrors.NewStoreErr("failed to create submission", err)
	}
	return subm, nil
}

func (s *lifecycleService) Cycle(ctx context.Context, id int64, expectedVersion *int) (*model.Submission, error) {
	return s.mutate(ctx, id, expectedVersion, func(subm *model.Submission) error {
		subm.Status = subm.Status.Next()
		return nil
	})
}

func (s *lifecycleService) Edit(ctx context.Context, id int64, r EditRequest) (*model.Submission, error) {
	if !r.Status.Valid() {
		return nil, apperrors.NewBusinessErr("status", "status must be one of pending, processed, engaged")
	}

	return s.mutate(ctx, id, r.ExpectedVersion, func(subm *model.Submission) error {
		subm.Status = r.Status
		if r.Notes != nil {
			subm.Notes = intake.OptionalText(r.Notes)
		}
		return nil
	})
}

func (s *lifecycleService) Patch(ctx context.Context, id int64, r PatchRequest) (*model.Submission, error) {
	return s.mutate(ctx, id, r.ExpectedVersion, func(subm *model.Submission) error {
		processed, engaged := subm.Status.Flags()
		if r.Processed != nil {
			processed = *r.Processed
		}
		if r.Engaged != nil {
			engaged = *r.Engaged
		}

		st, err := model.StatusFromFlags(processed, engaged)
		if err != nil {
			return apperrors.NewBusinessErr("engaged", err.Error())
		}

		subm.Status = st
		if r.Notes != nil {
			subm.Notes = intake.OptionalText(r.Notes)
		}
		return nil
	})
}

func (s *lifecycleService) RequestDelete(ctx context.Context, id int64) (*cache.DeletionTicket, error) {
	if _, err := s.find(ctx, id); err != nil {
		return nil, err
	}

	t, err := s.tickets.Issue(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to issue deletion ticket - %w", err)
	}
	return t, nil
}

func (s *lifecycleService) ConfirmDelete(ctx context.Context, id int64, ticket string) error {
	if ticket == "" {
		return apperrors.ErrDeleteNotConfirmed
	}

	ok, err := s.tickets.Consume(ctx, id, ticket)
	if err != nil {
		return fmt.Errorf("failed to verify deletion ticket - %w", err)
	}

	if !ok {
		return apperrors.ErrDeleteNotConfirmed
	}

	if err := s.submCache.EvictByID(ctx, id); err != nil {
		return fmt.Errorf("failed to evict submission from cache - %w", err)
	}

	if err := s.submRepo.DeleteByID(ctx, id); err != nil {
		return s.storeErr("failed to delete submission", err)
	}
	return nil
}

func (s *lifecycleService) CancelDelete(ctx context.Context, id int64, ticket string) error {
	if err := s.tickets.Cancel(ctx, id, ticket); err != nil {
		return fmt.Errorf("failed to cancel deletion - %w", err)
	}
	return nil
}

func (s *lifecycleService) mutate(ctx context.Context, id int64, expectedVersion *int, change func(*model.Submission) error) (*model.Submission, error) {
	subm, err := s.find(ctx, id)
	if err != nil {
		return nil, err
	}

	version := subm.Version
	if expectedVersion != nil {
		if *expectedVersion != version {
			return nil, apperrors.ErrVersionConflict
		}
	}

	if err := change(subm); err != nil {
		return nil, err
	}

	if err := s.submCache.EvictByID(ctx, id); err != nil {
		return nil, fmt.Errorf("failed to evict submission from cache - %w", err)
	}

	if err := s.submRepo.Update(ctx, subm, version); err != nil {
		return nil, s.storeErr("failed to update submission", err)
	}
	return subm, nil
}

func (s *lifecycleService) find(ctx context.Context, id int64) (*model.Submission, error) {
	subm, err := s.submRepo.FindByID(ctx, id)
	if err != nil {
		return nil, apperrors.NewStoreErr("failed to load submission", err)
	}

	if subm == nil {
		return nil, apperrors.NewEntryNotFoundErr(fmt.Sprintf("submission %d doesn't exist", id))
	}
	return subm, nil
}

func (s *lifecycleService) storeErr(op string, err error) error {
	var notFoundErr *apperrors.EntryNotFoundErr
	if errors.As(err, &notFoundErr) || errors.Is(err, apperrors.ErrVersionConflict) {
		return err
	}
	return apperrors.NewStoreErr(op, err)
}
