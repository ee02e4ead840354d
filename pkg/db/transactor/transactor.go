// Package transactor runs repository calls within single database transaction,
// transaction travels with context, so repositories stay unaware of it.
package transactor

import (
	"context"
)

// Transactor represents behavior for transactors
type Transactor interface {
	WithinTransaction(context.Context, func(context.Context) error) error
}
