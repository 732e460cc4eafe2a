package db

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/models"
)

type ItemRepository struct {
	db *sql.DB
}

func NewItemRepository(database *SQLiteDB) *ItemRepository {
	return &ItemRepository{db: database.Conn}
}

// GetAll returns all items
func (r *ItemRepository) GetAll(ctx context.Context) ([]models.Item, error) {
	query := "SELECT id, name, price FROM items ORDER BY id"

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query items: %w", err)
	}
	defer rows.Close()

	var items []models.Item
	for rows.Next() {
		var i models.Item
		if err := rows.Scan(&i.ID, &i.Name, &i.Price); err != nil {
			return nil, fmt.Errorf("failed to scan item: %w", err)
		}
		items = append(items, i)
	}

	return items, rows.Err()
}

// GetByID returns a single item, or nil when the id is unknown.
func (r *ItemRepository) GetByID(ctx context.Context, id int) (*models.Item, error) {
	query := "SELECT id, name, price FROM items WHERE id = ?"

	var i models.Item
	err := r.db.QueryRowContext(ctx, query, id).Scan(&i.ID, &i.Name, &i.Price)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get item: %w", err)
	}

	return &i, nil
}

// Create inserts a new item
func (r *ItemRepository) Create(ctx context.Context, req models.CreateItemRequest) (*models.Item, error) {
	query := "INSERT INTO items (name, price) VALUES (?, ?)"

	result, err := r.db.ExecContext(ctx, query, req.Name, *req.Price)
	if err != nil {
		return nil, fmt.Errorf("failed to create item: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to read item id: %w", err)
	}

	return &models.Item{ID: int(id), Name: req.Name, Price: *req.Price}, nil
}

// Update replaces the provided fields. Returns ErrNotFound when the id
// is unknown.
func (r *ItemRepository) Update(ctx context.Context, id int, req models.UpdateItemRequest) (*models.Item, error) {
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
	if req.Price != nil {
		current.Price = *req.Price
	}

	query := "UPDATE items SET name = ?, price = ? WHERE id = ?"
	if _, err := r.db.ExecContext(ctx, query, current.Name, current.Price, id); err != nil {
		return nil, fmt.Errorf("failed to update item: %w", err)
	}

	return current, nil
}

// Delete removes an item without touching orders that reference it.
func (r *ItemRepository) Delete(ctx context.Context, id int) error {
	query := "DELETE FROM items WHERE id = ?"

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}

	rowsAffected, _ := result.RowsAffected()
	if rowsAffected == 0 {
		return ErrNotFound
	}

	return nil
}
