package repository

import (
	"context"

	"github.com/umalmyha/imaging-leads/internal/model"
	"github.com/umalmyha/imaging-leads/pkg/db/transactor"
)

// BookingRepository represents behavior for booking confirmations store
type BookingRepository interface {
	Create(context.Context, *model.BookingConfirmation) error
}

type postgresBookingRepository struct {
	executor transactor.PgxWithinTransactionExecutor
}

// NewPostgresBookingRepository builds postgres BookingRepository
func NewPostgresBookingRepository(e transactor.PgxWithinTransactionExecutor) BookingRepository {
	return &postgresBookingRepository{executor: e}
}

func (r *postgresBookingRepository) Create(ctx context.Context, b *model.BookingConfirmation) error {
	q := `INSERT INTO booking_confirmations(
			imaging_center_name, imaging_center_address, imaging_center_phone, estimated_cost_range,
			availability_text, processed_availability,
			cardholder_name, billing_zip_code, last_four_digits,
			has_order, order_provider_name, order_practice_name, order_location, will_obtain_order, order_document,
			status, processed)
		  VALUES($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17)
		  RETURNING id, created_at`

	row := r.executor.Executor(ctx).QueryRow(ctx, q,
		b.ImagingCenterName, b.ImagingCenterAddress, b.ImagingCenterPhone, b.EstimatedCostRange,
		b.AvailabilityText, b.ProcessedAvailability,
		b.CardholderName, b.BillingZipCode, b.LastFourDigits,
		b.HasOrder, b.OrderProviderName, b.OrderPracticeName, b.OrderLocation, b.WillObtainOrder, b.OrderDocument,
		b.Status, b.Processed,
	)
	return row.Scan(&b.ID, &b.CreatedAt)
}
