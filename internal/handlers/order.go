package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/bulk"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/db"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/models"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/validation"
)

type OrderHandler struct {
	repo     *db.OrderRepository
	importer *bulk.Importer
	events   bulk.EventPublisher
}

// NewOrderHandler builds the order handler. events may be nil when no
// broker is configured; the bulk importer shares it.
func NewOrderHandler(repo *db.OrderRepository, events bulk.EventPublisher) *OrderHandler {
	return &OrderHandler{
		repo:     repo,
		importer: bulk.NewImporter(repo, events),
		events:   events,
	}
}

// HealthCheck returns server status
func (h *OrderHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "healthy", "service": "store-api"})
}

// ListOrders returns all orders in their stored form
func (h *OrderHandler) ListOrders(c *gin.Context) {
	orders, err := h.repo.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, orders)
}

// GetOrder returns an order with its customer and item names resolved.
// An order whose customer or item has been deleted is reported as not
// found.
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return
	}

	order, err := h.repo.GetByID(c.Request.Context(), id)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if order == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
		return
	}

	c.JSON(http.StatusOK, order)
}

// CreateOrder validates and creates a single order
func (h *OrderHandler) CreateOrder(c *gin.Context) {
	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	order, err := h.repo.Create(c.Request.Context(), req)
	if err != nil {
		if verr, ok := validation.AsError(err); ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": verr.Message, "reason": verr.Reason})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	if h.events != nil {
		if err := h.events.PublishOrderCreated(order); err != nil {
			log.Printf("⚠️ Failed to publish event: %v", err)
			// Order is already created, don't fail the request
		}
	}

	log.Printf("✅ Order #%d created", order.ID)
	c.JSON(http.StatusCreated, order)
}

// CreateBulkOrder imports a batch of orders. Rows failing validation
// are reported by index and do not block the rest of the batch.
func (h *OrderHandler) CreateBulkOrder(c *gin.Context) {
	var req models.BulkOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.importer.Run(c.Request.Context(), req.Items)
	if err != nil {
		log.Printf("❌ Bulk import aborted after %d orders: %v", result.CreatedCount, err)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":         err.Error(),
			"created_count": result.CreatedCount,
			"failures":      result.Failures,
		})
		return
	}

	log.Printf("✅ Bulk import created %d of %d orders", result.CreatedCount, len(req.Items))
	c.JSON(http.StatusOK, gin.H{
		"message":       fmt.Sprintf("Bulk order created with %d items", result.CreatedCount),
		"created_count": result.CreatedCount,
		"failures":      result.Failures,
	})
}

// DeleteOrder deletes an order
func (h *OrderHandler) DeleteOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order ID"})
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "order not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order deleted successfully"})
}
