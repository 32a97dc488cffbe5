package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"booking-service/config"
	"booking-service/internal/api"
	"booking-service/internal/broker"
	"booking-service/internal/db"
	"booking-service/internal/db/repos"
)

func main() {
	config.LoadEnv()

	database := db.NewDB()
	if err := db.EnsureSchema(database); err != nil {
		log.Fatalf("Failed to ensure schema: %v", err)
	}

	b, err := broker.NewBroker(config.RabbitMQURL, "booking", "topic")
	if err != nil {
		log.Printf("Warning: Failed to create broker: %v", err)
	}

	var pub api.Publisher
	if b != nil {
		pub = b
	}

	handler := api.NewHandler(
		repos.NewUserRepository(database),
		repos.NewReservationRepository(database),
		repos.NewEventRepository(database),
		pub,
	)

	router := gin.Default()
	api.SetupRoutes(router, handler)

	// Handle graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		<-quit
		log.Println("Shutting down server...")
		if b != nil {
			if err := b.Close(); err != nil {
				log.Printf("Error closing broker: %v", err)
			}
		}
		if err := database.Close(); err != nil {
			log.Printf("Error closing database connection: %v", err)
		}
		os.Exit(0)
	}()

	if err := router.Run(":" + config.Port); err != nil {
		log.Fatal(err)
	}
}
