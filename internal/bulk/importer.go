// Package bulk implements bulk order import: each row is validated and
// inserted independently, so one bad row never blocks the rest.
package bulk

import (
	"context"
	"log"

	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/models"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/validation"
)

// OrderCreator is the store-side validate-then-insert operation shared
// with the single-order path.
type OrderCreator interface {
	Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error)
}

// EventPublisher publishes order.created events. May be absent.
type EventPublisher interface {
	PublishOrderCreated(order *models.Order) error
}

type Importer struct {
	orders OrderCreator
	events EventPublisher
}

// NewImporter builds an importer. events may be nil when no broker is
// configured.
func NewImporter(orders OrderCreator, events EventPublisher) *Importer {
	return &Importer{orders: orders, events: events}
}

// Result reports the outcome of a bulk import. Failures preserve the
// input order of the rejected rows.
type Result struct {
	CreatedCount int
	Failures     []models.BulkOrderFailure
}

// Run processes the rows in order. A row that fails validation is
// recorded and skipped; a storage error aborts the remaining rows and
// is returned alongside the partial result.
func (i *Importer) Run(ctx context.Context, rows []models.CreateOrderRequest) (Result, error) {
	result := Result{Failures: []models.BulkOrderFailure{}}

	for idx, row := range rows {
		order, err := i.orders.Create(ctx, row)
		if err != nil {
			if verr, ok := validation.AsError(err); ok {
				result.Failures = append(result.Failures, models.BulkOrderFailure{
					Index:  idx,
					Reason: verr.Reason,
				})
				continue
			}
			return result, err
		}

		result.CreatedCount++

		if i.events != nil {
			if err := i.events.PublishOrderCreated(order); err != nil {
				log.Printf("⚠️ Failed to publish event for order %d: %v", order.ID, err)
			}
		}
	}

	return result, nil
}
