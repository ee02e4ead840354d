package service

import (
	"context"
	"time"

	"github.com/umalmyha/imaging-leads/internal/model"
	"github.com/umalmyha/imaging-leads/internal/repository"
	"github.com/umalmyha/imaging-leads/internal/review"

	apperrors "github.com/umalmyha/imaging-leads/internal/errors"
)

// ReviewPage is staff dashboard content
type ReviewPage struct {
	Rows  []review.Row
	Stats review.Stats
	Types []model.ImagingType
}

// ReviewService builds filtered views of submissions for staff
type ReviewService interface {
	Review(context.Context, review.Filter, time.Time) (*ReviewPage, error)
	Filtered(context.Context, review.Filter) ([]model.Submission, error)
	Location() *time.Location
}

type reviewService struct {
	submRepo repository.SubmissionRepository
	loc      *time.Location
}

// NewReviewService builds ReviewService, date filters are interpreted in loc
func NewReviewService(submRepo repository.SubmissionRepository, loc *time.Location) ReviewService {
	if loc == nil {
		loc = time.Local
	}
	return &reviewService{submRepo: submRepo, loc: loc}
}

func (s *reviewService) Review(ctx context.Context, f review.Filter, now time.Time) (*ReviewPage, error) {
	all, err := s.findAll(ctx)
	if err != nil {
		return nil, err
	}

	filtered, err := s.apply(all, f)
	if err != nil {
		return nil, err
	}

	return &ReviewPage{
		Rows:  review.Rows(filtered, now),
		Stats: review.Summarize(all),
		Types: review.ImagingTypes(all),
	}, nil
}

func (s *reviewService) Filtered(ctx context.Context, f review.Filter) ([]model.Submission, error) {
	all, err := s.findAll(ctx)
	if err != nil {
		return nil, err
	}
	return s.apply(all, f)
}

func (s *reviewService) Location() *time.Location {
	return s.loc
}

func (s *reviewService) findAll(ctx context.Context) ([]model.Submission, error) {
	all, err := s.submRepo.FindAll(ctx)
	if err != nil {
		return nil, apperrors.NewStoreErr("failed to load submissions", err)
	}
	return all, nil
}

func (s *reviewService) apply(all []model.Submission, f review.Filter) ([]model.Submission, error) {
	filtered, err := review.Apply(all, f, s.loc)
	if err != nil {
		return nil, apperrors.NewBusinessErr("date", "date filter must be in YYYY-MM-DD format")
	}
	return filtered, nil
}
