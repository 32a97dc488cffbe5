package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"

	"booking-service/internal/db/models"
)

// EventRepository handles database operations for events.
type EventRepository struct {
	db *sqlx.DB
}

// NewEventRepository creates a new EventRepository.
func NewEventRepository(db *sqlx.DB) *EventRepository {
	return &EventRepository{db: db}
}

// GetAllEvents lists every event.
func (r *EventRepository) GetAllEvents() ([]models.Event, error) {
	var events []models.Event
	err := r.db.Select(&events, `SELECT * FROM events ORDER BY id`)
	if err != nil {
		return nil, err
	}
	return events, nil
}

// GetEventByID retrieves an event by id. Returns nil when it does not exist.
func (r *EventRepository) GetEventByID(id int) (*models.Event, error) {
	var event models.Event
	err := r.db.Get(&event, `SELECT * FROM events WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &event, nil
}

// CreateEvent inserts a new event with a full ticket inventory.
func (r *EventRepository) CreateEvent(event *models.Event) (*models.Event, error) {
	var created models.Event
	err := r.db.QueryRowx(
		`INSERT INTO events (name, date, venue, total_tickets, available_tickets, price)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING *`,
		event.Name, event.Date, event.Venue, event.TotalTickets, event.AvailableTickets, event.Price,
	).StructScan(&created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// SaveAvailableTickets persists the event's mutated inventory counter.
func (r *EventRepository) SaveAvailableTickets(event *models.Event) error {
	_, err := r.db.Exec(
		`UPDATE events SET available_tickets = $2 WHERE id = $1`,
		event.ID, event.AvailableTickets,
	)
	return err
}

// ReserveTickets debits the inventory counter, refusing to oversell. The
// conditional update keeps concurrent bookings from racing each other.
func (r *EventRepository) ReserveTickets(eventID, amount int) (bool, error) {
	res, err := r.db.Exec(
		`UPDATE events SET available_tickets = available_tickets - $2
		 WHERE id = $1 AND available_tickets >= $2`,
		eventID, amount,
	)
	if err != nil {
		return false, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected == 1, nil
}
