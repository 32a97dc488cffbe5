package broker

// Topic name constants for consistent broker usage between the API and the
// notifier.
const (
	TopicAccountDeleted     = "account.deleted"
	TopicReservationCreated = "reservation.created"
)

// AccountDeletedMessage is published after an account and its reservations
// have been removed.
type AccountDeletedMessage struct {
	UserID int    `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
}

// ReservationCreatedMessage is published when a new reservation is booked.
type ReservationCreatedMessage struct {
	ReservationID int    `json:"reservation_id"`
	Code          string `json:"code"`
	EventID       int    `json:"event_id"`
	UserID        int    `json:"user_id"`
	TicketAmount  int    `json:"ticket_amount"`
	Email         string `json:"email"`
}
