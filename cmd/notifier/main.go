package main

import (
	"encoding/json"
	"log"
	"os"
	"os/signal"
	"syscall"

	"booking-service/internal/broker"
	"booking-service/internal/mailer"
)

func main() {
	apiKey := os.Getenv("MAILERSEND_API_KEY")
	templateID := os.Getenv("MAILERSEND_TEMPLATE_ID")
	fromEmail := os.Getenv("MAILERSEND_EMAIL")
	rabbitmqURL := os.Getenv("RABBITMQ_URL")

	if apiKey == "" || templateID == "" || fromEmail == "" {
		log.Fatal("Required environment variables are not set: MAILERSEND_API_KEY, MAILERSEND_TEMPLATE_ID, MAILERSEND_EMAIL")
	}

	mail := mailer.New(apiKey, "Booking Service", fromEmail, templateID)

	b, err := broker.NewBroker(rabbitmqURL, "booking", "topic")
	if err != nil {
		log.Fatalf("Failed to create broker: %v", err)
	}
	defer b.Close()

	if err := b.SetQoS(10); err != nil {
		log.Fatalf("Failed to set QoS: %v", err)
	}

	startAccountConsumer(b, mail)
	startReservationConsumer(b, mail)

	log.Println("Notifier started. Waiting for messages...")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Notifier shutting down...")
}

func startAccountConsumer(b *broker.Broker, mail *mailer.Service) {
	queueName := "account_emails"
	if err := b.DeclareAndBindQueue(queueName, broker.TopicAccountDeleted); err != nil {
		log.Fatalf("Failed to declare and bind queue %s: %v", queueName, err)
	}

	messages, err := b.Consume(queueName)
	if err != nil {
		log.Fatalf("Failed to start consuming from %s: %v", queueName, err)
	}

	go func() {
		for msg := range messages {
			var deleted broker.AccountDeletedMessage
			if err := json.Unmarshal(msg.Body, &deleted); err != nil {
				log.Printf("Error unmarshaling account message: %v", err)
				continue
			}
			if deleted.Email == "" {
				continue
			}

			err := mail.SendTemplate(deleted.Email, "Your account has been deleted", map[string]interface{}{
				"name": deleted.Name,
			})
			if err != nil {
				log.Printf("Error sending account email: %v", err)
				continue
			}

			log.Printf("Sent account deletion email to %s", deleted.Email)
		}
	}()
}

func startReservationConsumer(b *broker.Broker, mail *mailer.Service) {
	queueName := "reservation_emails"
	if err := b.DeclareAndBindQueue(queueName, broker.TopicReservationCreated); err != nil {
		log.Fatalf("Failed to declare and bind queue %s: %v", queueName, err)
	}

	messages, err := b.Consume(queueName)
	if err != nil {
		log.Fatalf("Failed to start consuming from %s: %v", queueName, err)
	}

	go func() {
		for msg := range messages {
			var created broker.ReservationCreatedMessage
			if err := json.Unmarshal(msg.Body, &created); err != nil {
				log.Printf("Error unmarshaling reservation message: %v", err)
				continue
			}
			if created.Email == "" {
				continue
			}

			err := mail.SendTemplate(created.Email, "Your reservation is confirmed", map[string]interface{}{
				"code":          created.Code,
				"ticket_amount": created.TicketAmount,
			})
			if err != nil {
				log.Printf("Error sending reservation email: %v", err)
				continue
			}

			log.Printf("Sent reservation email to %s", created.Email)
		}
	}()
}
