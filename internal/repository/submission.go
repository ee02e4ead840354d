package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/imaging-leads/internal/model"
	"github.com/umalmyha/imaging-leads/pkg/db/transactor"

	apperrors "github.com/umalmyha/imaging-leads/internal/errors"
)

const submissionColumns = "id, zip_code, phone, full_name, imaging_type, body_part, has_order, utm_source, status, notes, version, created_at"

// SubmissionRepository represents behavior for lead submissions store
type SubmissionRepository interface {
	FindByID(context.Context, int64) (*model.Submission, error)
	FindAll(context.Context) ([]model.Submission, error)
	Create(context.Context, *model.Submission) error
	Update(context.Context, *model.Submission, int) error
	DeleteByID(context.Context, int64) error
}

type postgresSubmissionRepository struct {
	executor transactor.PgxWithinTransactionExecutor
}

// NewPostgresSubmissionRepository builds postgres SubmissionRepository
func NewPostgresSubmissionRepository(e transactor.PgxWithinTransactionExecutor) SubmissionRepository {
	return &postgresSubmissionRepository{executor: e}
}

func (r *postgresSubmissionRepository) FindByID(ctx context.Context, id int64) (*model.Submission, error) {
	q := "SELECT " + submissionColumns + " FROM lead_submissions WHERE id = $1"

	s, err := r.scan(r.executor.Executor(ctx).QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return s, nil
}

func (r *postgresSubmissionRepository) FindAll(ctx context.Context) ([]model.Submission, error) {
	q := "SELECT " + submissionColumns + " FROM lead_submissions ORDER BY created_at DESC, id DESC"

	rows, err := r.executor.Executor(ctx).Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subs := make([]model.Submission, 0)
	for rows.Next() {
		s, err := r.scan(rows)
		if err != nil {
			return nil, err
		}
		subs = append(subs, *s)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return subs, nil
}

func (r *postgresSubmissionRepository) Create(ctx context.Context, s *model.Submission) error {
	q := `INSERT INTO lead_submissions(zip_code, phone, full_name, imaging_type, body_part, has_order, utm_source, status, notes)
		  VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9)
		  RETURNING id, version, created_at`

	row := r.executor.Executor(ctx).QueryRow(ctx, q,
		s.ZipCode, s.Phone, s.FullName, s.ImagingType, s.BodyPart, s.HasOrder, s.UtmSource, s.Status, s.Notes,
	)
	return row.Scan(&s.ID, &s.Version, &s.CreatedAt)
}

func (r *postgresSubmissionRepository) Update(ctx context.Context, s *model.Submission, expectedVersion int) error {
	q := `UPDATE lead_submissions SET status = $1, notes = $2, version = version + 1
		  WHERE id = $3 AND version = $4
		  RETURNING version`

	exec := r.executor.Executor(ctx)

	var version int
	err := exec.QueryRow(ctx, q, s.Status, s.Notes, s.ID, expectedVersion).Scan(&version)
	if err == nil {
		s.Version = version
		return nil
	}

	if !errors.Is(err, pgx.ErrNoRows) {
		return err
	}

	var exists bool
	if err := exec.QueryRow(ctx, "SELECT EXISTS(SELECT 1 FROM lead_submissions WHERE id = $1)", s.ID).Scan(&exists); err != nil {
		return err
	}

	if !exists {
		return apperrors.NewEntryNotFoundErr(fmt.Sprintf("submission %d doesn't exist", s.ID))
	}
	return apperrors.ErrVersionConflict
}

func (r *postgresSubmissionRepository) DeleteByID(ctx context.Context, id int64) error {
	q := "DELETE FROM lead_submissions WHERE id = $1"

	comm, err := r.executor.Executor(ctx).Exec(ctx, q, id)
	if err != nil {
		return err
	}

	if comm.RowsAffected() == 0 {
		return apperrors.NewEntryNotFoundErr(fmt.Sprintf("submission %d doesn't exist", id))
	}
	return nil
}

func (r *postgresSubmissionRepository) scan(row pgx.Row) (*model.Submission, error) {
	var s model.Submission
	err := row.Scan(
		&s.ID, &s.ZipCode, &s.Phone, &s.FullName, &s.ImagingType, &s.BodyPart,
		&s.HasOrder, &s.UtmSource, &s.Status, &s.Notes, &s.Version, &s.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &s, nil
}
