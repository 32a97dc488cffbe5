package repos

import (
	"database/sql"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"booking-service/internal/db/models"
)

// ReservationRepository handles database operations for ticket reservations.
type ReservationRepository struct {
	db *sqlx.DB
}

// NewReservationRepository creates a new ReservationRepository.
func NewReservationRepository(db *sqlx.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

// GetReservationsByUser lists all reservations owned by a user.
func (r *ReservationRepository) GetReservationsByUser(userID int) ([]models.Reservation, error) {
	var reservations []models.Reservation
	err := r.db.Select(
		&reservations,
		`SELECT * FROM reservations WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// GetReservationByID retrieves a reservation by id. Returns nil when it does
// not exist.
func (r *ReservationRepository) GetReservationByID(id int) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.Get(&reservation, `SELECT * FROM reservations WHERE id = $1`, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &reservation, nil
}

// CreateReservation inserts a reservation with a fresh confirmation code.
func (r *ReservationRepository) CreateReservation(userID, eventID, ticketAmount int) (*models.Reservation, error) {
	var reservation models.Reservation
	err := r.db.QueryRowx(
		`INSERT INTO reservations (code, user_id, event_id, ticket_amount)
		 VALUES ($1, $2, $3, $4)
		 RETURNING *`,
		uuid.NewString(), userID, eventID, ticketAmount,
	).StructScan(&reservation)
	if err != nil {
		return nil, err
	}
	return &reservation, nil
}

// DeleteReservation removes a single reservation.
func (r *ReservationRepository) DeleteReservation(id int) error {
	_, err := r.db.Exec(`DELETE FROM reservations WHERE id = $1`, id)
	return err
}

// DeleteReservationsByUser removes every reservation owned by a user.
func (r *ReservationRepository) DeleteReservationsByUser(userID int) error {
	_, err := r.db.Exec(`DELETE FROM reservations WHERE user_id = $1`, userID)
	return err
}
