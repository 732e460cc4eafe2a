package main

import (
	"log"

	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/config"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/consumer"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/messaging"
	"github.com/ahmedshifathedataengineer/IS601-Final-Project/internal/publisher"
)

func main() {
	cfg := config.Load()

	if cfg.RabbitMQURL == "" {
		log.Fatal("RABBITMQ_URL is required for the notifier")
	}

	rabbitMQ, err := messaging.NewRabbitMQ(cfg.RabbitMQURL)
	if err != nil {
		log.Fatalf("Failed to connect to RabbitMQ: %v", err)
	}
	defer rabbitMQ.Close()

	if err := rabbitMQ.DeclareQueue(publisher.OrderCreatedQueue); err != nil {
		log.Fatalf("Failed to declare queue: %v", err)
	}

	messages, err := rabbitMQ.Consume(publisher.OrderCreatedQueue)
	if err != nil {
		log.Fatalf("Failed to consume messages: %v", err)
	}

	log.Println("🚀 Notifier waiting for order.created events")
	consumer.NewNotificationConsumer().ProcessOrderCreated(messages)
}
