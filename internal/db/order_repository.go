package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/models"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/validation"
)

type OrderRepository struct {
	db *sql.DB
}

func NewOrderRepository(database *SQLiteDB) *OrderRepository {
	return &OrderRepository{db: database.Conn}
}

// Create validates the payload and inserts the order inside a single
// transaction, so a concurrent customer or item delete cannot slip in
// between the existence check and the insert. Validation failures come
// back as *validation.Error; anything else is a storage failure.
func (r *OrderRepository) Create(ctx context.Context, req models.CreateOrderRequest) (*models.Order, error) {
	if err := validation.CheckQuantity(req.Quantity); err != nil {
		return nil, err
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	var exists int
	err = tx.QueryRowContext(ctx, "SELECT 1 FROM customers WHERE id = ?", req.CustomerID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, validation.ErrCustomerNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check customer: %w", err)
	}

	err = tx.QueryRowContext(ctx, "SELECT 1 FROM items WHERE id = ?", req.ItemID).Scan(&exists)
	if err == sql.ErrNoRows {
		return nil, validation.ErrItemNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to check item: %w", err)
	}

	result, err := tx.ExecContext(ctx,
		"INSERT INTO orders (customer_id, item_id, quantity) VALUES (?, ?, ?)",
		req.CustomerID, req.ItemID, req.Quantity,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert order: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read order id: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return &models.Order{
		ID:         int(id),
		CustomerID: req.CustomerID,
		ItemID:     req.ItemID,
		Quantity:   req.Quantity,
	}, nil
}

// GetAll returns all orders in their stored form.
func (r *OrderRepository) GetAll(ctx context.Context) ([]models.Order, error) {
	query := "SELECT id, customer_id, item_id, quantity FROM orders ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query orders: %w", err)
	}
	defer rows.Close()

	var orders []models.Order
	for rows.Next() {
		var o models.Order
		if err := rows.Scan(&o.ID, &o.CustomerID, &o.ItemID, &o.Quantity); err != nil {
			return nil, fmt.Errorf("failed to scan order: %w", err)
		}
		orders = append(orders, o)
	}

	return orders, rows.Err()
}

// GetByID resolves the order's customer and item names at read time.
// The join means an order whose customer or item has since been deleted
// reads as not-found rather than with blank names.
func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.OrderDetail, error) {
	query := `
		SELECT o.id, c.name, i.name, o.quantity
		FROM orders o
		JOIN customers c ON o.customer_id = c.id
		JOIN items i ON o.item_id = i.id
		WHERE o.id = ?
	`

	var d models.OrderDetail
	err := r.db.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.CustomerName, &d.ItemName, &d.Quantity)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	return &d, nil
}

// Delete removes an order
func (r *OrderRepository) Delete(ctx context.Context, id int) error {
	query := "DELETE FROM orders WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
