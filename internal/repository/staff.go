package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v4"
	"github.com/umalmyha/imaging-leads/internal/model"
	"github.com/umalmyha/imaging-leads/pkg/db/transactor"
)

// StaffRepository represents behavior for staff accounts store
type StaffRepository interface {
	Create(context.Context, *model.Staff) error
	FindByEmail(context.Context, string) (*model.Staff, error)
	UpdatePasswordHash(context.Context, string, string) error
}

type postgresStaffRepository struct {
	executor transactor.PgxWithinTransactionExecutor
}

// NewPostgresStaffRepository builds postgres StaffRepository
func NewPostgresStaffRepository(e transactor.PgxWithinTransactionExecutor) StaffRepository {
	return &postgresStaffRepository{executor: e}
}

func (r *postgresStaffRepository) FindByEmail(ctx context.Context, email string) (*model.Staff, error) {
	q := "SELECT id, email, password_hash FROM staff WHERE email = $1"

	var s model.Staff
	if err := r.executor.Executor(ctx).QueryRow(ctx, q, email).Scan(&s.ID, &s.Email, &s.PasswordHash); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &s, nil
}

func (r *postgresStaffRepository) Create(ctx context.Context, s *model.Staff) error {
	q := "INSERT INTO staff(id, email, password_hash) VALUES($1, $2, $3)"
	if _, err := r.executor.Executor(ctx).Exec(ctx, q, s.ID, s.Email, s.PasswordHash); err != nil {
		return err
	}
	return nil
}

func (r *postgresStaffRepository) UpdatePasswordHash(ctx context.Context, id, hash string) error {
	q := "UPDATE staff SET password_hash = $1 WHERE id = $2"
	if _, err := r.executor.Executor(ctx).Exec(ctx, q, hash, id); err != nil {
		return err
	}
	return nil
}
