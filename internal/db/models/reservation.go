package models

import "time"

// Reservation records tickets a user has taken from an event's inventory.
type Reservation struct {
	ID           int       `db:"id" json:"id"`
	Code         string    `db:"code" json:"code"`
	UserID       int       `db:"user_id" json:"user_id"`
	EventID      int       `db:"event_id" json:"event_id"`
	TicketAmount int       `db:"ticket_amount" json:"ticket_amount"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
}
