package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/bulk"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/db"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/handlers"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/models"
)

// setupRouter wires the full API against a fresh SQLite file in a
// per-test temp dir. events may be nil.
func setupRouter(t *testing.T, events bulk.EventPublisher) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	database, err := db.NewSQLiteDB(filepath.Join(t.TempDir(), "test.sqlite"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	r := gin.New()
	r.Use(gin.Recovery())

	handlers.RegisterRoutes(r,
		handlers.NewCustomerHandler(db.NewCustomerRepository(database)),
		handlers.NewItemHandler(db.NewItemRepository(database)),
		handlers.NewOrderHandler(db.NewOrderRepository(database), events),
	)

	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reqBody []byte
	if body != nil {
		var err error
		reqBody, err = json.Marshal(body)
		require.NoError(t, err)
	}

	req, err := http.NewRequest(method, path, bytes.NewBuffer(reqBody))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, dest interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), dest))
}

func createCustomer(t *testing.T, r *gin.Engine, name, phone string) models.Customer {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/customers", gin.H{"name": name, "phone": phone})
	require.Equal(t, http.StatusCreated, w.Code)

	var c models.Customer
	decodeBody(t, w, &c)
	return c
}

func createItem(t *testing.T, r *gin.Engine, name string, price float64) models.Item {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/items", gin.H{"name": name, "price": price})
	require.Equal(t, http.StatusCreated, w.Code)

	var i models.Item
	decodeBody(t, w, &i)
	return i
}
