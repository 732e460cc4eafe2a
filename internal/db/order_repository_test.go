package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/db"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/models"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/validation"
)

func setupStore(t *testing.T) *db.SQLiteDB {
	t.Helper()

	database, err := db.NewSQLiteDB(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })
	return database
}

func seed(t *testing.T, database *db.SQLiteDB) {
	t.Helper()
	ctx := context.Background()

	_, err := db.NewCustomerRepository(database).Create(ctx, models.CreateCustomerRequest{Name: "John Doe", Phone: "123-456-7890"})
	require.NoError(t, err)

	price := 1500.0
	_, err = db.NewItemRepository(database).Create(ctx, models.CreateItemRequest{Name: "Laptop", Price: &price})
	require.NoError(t, err)
}

func TestOrderCreateValidatesReferences(t *testing.T) {
	database := setupStore(t)
	seed(t, database)
	repo := db.NewOrderRepository(database)
	ctx := context.Background()

	cases := []struct {
		name   string
		req    models.CreateOrderRequest
		reason string
	}{
		{"unknown customer", models.CreateOrderRequest{CustomerID: 9, ItemID: 1, Quantity: 1}, validation.ReasonCustomerNotFound},
		{"unknown item", models.CreateOrderRequest{CustomerID: 1, ItemID: 9, Quantity: 1}, validation.ReasonItemNotFound},
		{"zero quantity", models.CreateOrderRequest{CustomerID: 1, ItemID: 1, Quantity: 0}, validation.ReasonInvalidQuantity},
		{"negative quantity", models.CreateOrderRequest{CustomerID: 1, ItemID: 1, Quantity: -2}, validation.ReasonInvalidQuantity},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			order, err := repo.Create(ctx, tc.req)
			require.Error(t, err)
			assert.Nil(t, order)

			verr, ok := validation.AsError(err)
			require.True(t, ok)
			assert.Equal(t, tc.reason, verr.Reason)
		})
	}

	// None of the rejected payloads left a row behind
	orders, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestOrderCreateAssignsIncreasingIDs(t *testing.T) {
	database := setupStore(t)
	seed(t, database)
	repo := db.NewOrderRepository(database)
	ctx := context.Background()

	first, err := repo.Create(ctx, models.CreateOrderRequest{CustomerID: 1, ItemID: 1, Quantity: 2})
	require.NoError(t, err)
	second, err := repo.Create(ctx, models.CreateOrderRequest{CustomerID: 1, ItemID: 1, Quantity: 1})
	require.NoError(t, err)

	assert.Equal(t, 1, first.ID)
	assert.Equal(t, 2, second.ID)
}

func TestOrderGetByIDJoinsNames(t *testing.T) {
	database := setupStore(t)
	seed(t, database)
	repo := db.NewOrderRepository(database)
	ctx := context.Background()

	created, err := repo.Create(ctx, models.CreateOrderRequest{CustomerID: 1, ItemID: 1, Quantity: 2})
	require.NoError(t, err)

	detail, err := repo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, detail)
	assert.Equal(t, models.OrderDetail{ID: 1, CustomerName: "John Doe", ItemName: "Laptop", Quantity: 2}, *detail)
}

func TestOrderGetByIDDanglingReference(t *testing.T) {
	database := setupStore(t)
	seed(t, database)
	orderRepo := db.NewOrderRepository(database)
	ctx := context.Background()

	created, err := orderRepo.Create(ctx, models.CreateOrderRequest{CustomerID: 1, ItemID: 1, Quantity: 1})
	require.NoError(t, err)

	// The delete is not blocked; the order goes dangling
	require.NoError(t, db.NewItemRepository(database).Delete(ctx, 1))

	detail, err := orderRepo.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Nil(t, detail)

	// The row itself still exists in stored form
	orders, err := orderRepo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
}
