package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/models"
)

func TestCreateAndGetCustomer(t *testing.T) {
	r := setupRouter(t, nil)

	created := createCustomer(t, r, "John Doe", "123-456-7890")
	assert.Equal(t, 1, created.ID)
	assert.Equal(t, "John Doe", created.Name)
	assert.Equal(t, "123-456-7890", created.Phone)

	w := doRequest(t, r, http.MethodGet, "/customers/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var got models.Customer
	decodeBody(t, w, &got)
	assert.Equal(t, created, got)
}

func TestCreateCustomerMissingFields(t *testing.T) {
	r := setupRouter(t, nil)

	w := doRequest(t, r, http.MethodPost, "/customers", gin.H{"name": "No Phone"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestGetCustomerNotFound(t *testing.T) {
	r := setupRouter(t, nil)

	w := doRequest(t, r, http.MethodGet, "/customers/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUpdateCustomerPartial(t *testing.T) {
	r := setupRouter(t, nil)
	created := createCustomer(t, r, "John Doe", "123-456-7890")

	w := doRequest(t, r, http.MethodPut, "/customers/1", gin.H{"phone": "555-000-1111"})
	assert.Equal(t, http.StatusOK, w.Code)

	var updated models.Customer
	decodeBody(t, w, &updated)
	assert.Equal(t, created.Name, updated.Name)
	assert.Equal(t, "555-000-1111", updated.Phone)

	// The stored row changed too, not just the response
	w = doRequest(t, r, http.MethodGet, "/customers/1", nil)
	var got models.Customer
	decodeBody(t, w, &got)
	assert.Equal(t, updated, got)
}

func TestUpdateCustomerNotFound(t *testing.T) {
	r := setupRouter(t, nil)

	w := doRequest(t, r, http.MethodPut, "/customers/42", gin.H{"name": "Nobody"})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDeleteCustomer(t *testing.T) {
	r := setupRouter(t, nil)
	createCustomer(t, r, "John Doe", "123-456-7890")

	w := doRequest(t, r, http.MethodDelete, "/customers/1", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = doRequest(t, r, http.MethodGet, "/customers/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doRequest(t, r, http.MethodDelete, "/customers/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListCustomers(t *testing.T) {
	r := setupRouter(t, nil)
	createCustomer(t, r, "John Doe", "123-456-7890")
	createCustomer(t, r, "Jane Roe", "987-654-3210")

	w := doRequest(t, r, http.MethodGet, "/customers", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var customers []models.Customer
	decodeBody(t, w, &customers)
	assert.Len(t, customers, 2)
	assert.Equal(t, "Jane Roe", customers[1].Name)
}
