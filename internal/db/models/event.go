package models

// Event is a bookable event with a ticket inventory counter.
type Event struct {
	ID               int     `db:"id" json:"id"`
	Name             string  `db:"name" json:"name"`
	Date             string  `db:"date" json:"date"`
	Venue            string  `db:"venue" json:"venue"`
	TotalTickets     int     `db:"total_tickets" json:"total_tickets"`
	AvailableTickets int     `db:"available_tickets" json:"available_tickets"`
	Price            float64 `db:"price" json:"price"`
}
