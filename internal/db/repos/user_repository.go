package repos

import (
	"database/sql"

	"github.com/jmoiron/sqlx"
	"golang.org/x/crypto/bcrypt"

	"booking-service/internal/db/models"
)

// UserRepository handles database operations for user accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser hashes the plaintext password and inserts the user. The returned
// record carries no password hash.
func (r *UserRepository) CreateUser(user *models.User) (*models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	var created models.User
	err = r.db.QueryRowx(
		`INSERT INTO users (name, email, tel, password, role)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING id, name, email, tel, role, created_at`,
		user.Name, user.Email, user.Tel, string(hashed), user.Role,
	).StructScan(&created)
	if err != nil {
		return nil, err
	}
	return &created, nil
}

// GetUserByEmailWithPassword retrieves a user by email, including the password
// hash for credential checks. Returns nil when no such user exists.
func (r *UserRepository) GetUserByEmailWithPassword(email string) (*models.User, error) {
	var user models.User
	err := r.db.Get(&user, `SELECT * FROM users WHERE email = $1`, email)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID retrieves a user by id, excluding the password hash.
func (r *UserRepository) GetUserByID(id int) (*models.User, error) {
	var user models.User
	err := r.db.Get(
		&user,
		`SELECT id, name, email, tel, role, created_at FROM users WHERE id = $1`,
		id,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// UpdateUserFields updates only the name and tel columns; a nil field keeps
// the stored value. Returns nil when the user no longer exists.
func (r *UserRepository) UpdateUserFields(id int, name, tel *string) (*models.User, error) {
	var user models.User
	err := r.db.QueryRowx(
		`UPDATE users SET name = COALESCE($2, name), tel = COALESCE($3, tel)
		 WHERE id = $1
		 RETURNING id, name, email, tel, role, created_at`,
		id, name, tel,
	).StructScan(&user)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes a user record.
func (r *UserRepository) DeleteUser(id int) error {
	_, err := r.db.Exec(`DELETE FROM users WHERE id = $1`, id)
	return err
}
