package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/models"
)

type CustomerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(database *SQLiteDB) *CustomerRepository {
	return &CustomerRepository{db: database.Conn}
}

// GetAll returns all customers
func (r *CustomerRepository) GetAll(ctx context.Context) ([]models.Customer, error) {
	query := "SELECT id, name, phone FROM customers ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query customers: %w", err)
	}
	defer rows.Close()

	var customers []models.Customer
	for rows.Next() {
		var c models.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.Phone); err != nil {
			return nil, fmt.Errorf("failed to scan customer: %w", err)
		}
		customers = append(customers, c)
	}

	return customers, rows.Err()
}

// GetByID returns a single customer, or nil when the id is unknown.
func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*models.Customer, error) {
	query := "SELECT id, name, phone FROM customers WHERE id = ?"

	var c models.Customer
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Phone)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &c, nil
}

// Create inserts a new customer
func (r *CustomerRepository) Create(ctx context.Context, req models.CreateCustomerRequest) (*models.Customer, error) {
	query := "INSERT INTO customers (name, phone) VALUES (?, ?)"

	result, err := r.db.ExecContext(ctx, query, req.Name, req.Phone)
	if err != nil {
		return nil, fmt.Errorf("failed to create customer: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read customer id: %w", err)
	}

	return &models.Customer{ID: int(id), Name: req.Name, Phone: req.Phone}, nil
}

// Update replaces the provided fields; omitted fields keep their stored
// values. Returns ErrNotFound when the id is unknown.
func (r *CustomerRepository) Update(ctx context.Context, id int, req models.UpdateCustomerRequest) (*models.Customer, error) {
	current, err := r.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, ErrNotFound
	}

	if req.Name != nil {
		current.Name = *req.Name
	}
	if req.Phone != nil {
		current.Phone = *req.Phone
	}

	query := "UPDATE customers SET name = ?, phone = ? WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, query, current.Name, current.Phone, id); err != nil {
		return nil, fmt.Errorf("failed to update customer: %w", err)
	}

	return current, nil
}

// Delete removes a customer. Orders referencing it are left in place;
// their reads fail with not-found from then on.
func (r *CustomerRepository) Delete(ctx context.Context, id int) error {
	query := "DELETE FROM customers WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete customer: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
