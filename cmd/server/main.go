package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/bulk"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/cache"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/config"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/db"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/discovery"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/handlers"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/messaging"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/publisher"
)

func main() {
	cfg := config.Load()

	// Open (creating on first run) the SQLite store
	database, err := db.NewSQLiteDB(cfg.SQLitePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer database.Close()

	customerRepo := db.NewCustomerRepository(database)
	itemRepo := db.NewItemRepository(database)
	orderRepo := db.NewOrderRepository(database)

	// Redis is optional; without it item reads go straight to SQLite
	var itemStore handlers.ItemStore = itemRepo
	if cfg.RedisAddr != "" {
		redisCache, err := cache.NewRedisCache(cfg.RedisAddr, cfg.CacheTTL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		itemStore = db.NewCachedItemRepository(itemRepo, redisCache)
	}

	// RabbitMQ is optional; without it no order.created events are sent
	var orderPublisher bulk.EventPublisher
	if cfg.RabbitMQURL != "" {
		rabbitMQ, err := messaging.NewRabbitMQ(cfg.RabbitMQURL)
		if err != nil {
			log.Fatalf("Failed to connect to RabbitMQ: %v", err)
		}
		defer rabbitMQ.Close()

		orderPublisher, err = publisher.NewOrderPublisher(rabbitMQ)
		if err != nil {
			log.Fatalf("Failed to create publisher: %v", err)
		}
	}

	// Consul registration is optional
	if cfg.ConsulAddr != "" {
		consul, err := discovery.NewConsulClient(cfg.ConsulAddr)
		if err != nil {
			log.Fatalf("Failed to connect to Consul: %v", err)
		}

		err = consul.Register(discovery.ServiceConfig{
			Name: cfg.ServiceName,
			ID:   cfg.ServiceID,
			Port: cfg.Port,
			Tags: []string{"api", "orders"},
		})
		if err != nil {
			log.Fatalf("Failed to register service: %v", err)
		}

		go func() {
			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
			<-sigChan
			log.Println("Shutting down...")
			consul.Deregister(cfg.ServiceID)
			os.Exit(0)
		}()
	}

	customerHandler := handlers.NewCustomerHandler(customerRepo)
	itemHandler := handlers.NewItemHandler(itemStore)
	orderHandler := handlers.NewOrderHandler(orderRepo, orderPublisher)

	router := gin.Default()
	handlers.RegisterRoutes(router, customerHandler, itemHandler, orderHandler)

	log.Printf("🚀 %s starting on http://localhost:%d", cfg.ServiceName, cfg.Port)
	router.Run(fmt.Sprintf(":%d", cfg.Port))
}
