package handlers

import "github.com/gin-gonic/gin"

// RegisterRoutes mounts the full API surface on the router.
func RegisterRoutes(r *gin.Engine, customers *CustomerHandler, items *ItemHandler, orders *OrderHandler) {
	r.GET("/health", orders.HealthCheck)

	r.POST("/customers", customers.CreateCustomer)
	r.GET("/customers", customers.ListCustomers)
	r.GET("/customers/:id", customers.GetCustomer)
	r.PUT("/customers/:id", customers.UpdateCustomer)
	r.DELETE("/customers/:id", customers.DeleteCustomer)

	r.POST("/items", items.CreateItem)
	r.GET("/items", items.ListItems)
	r.GET("/items/:id", items.GetItem)
	r.PUT("/items/:id", items.UpdateItem)
	r.DELETE("/items/:id", items.DeleteItem)

	r.POST("/orders", orders.CreateOrder)
	r.POST("/orders/bulk", orders.CreateBulkOrder)
	r.GET("/orders", orders.ListOrders)
	r.GET("/orders/:id", orders.GetOrder)
	r.DELETE("/orders/:id", orders.DeleteOrder)
}
