package api

import (
	"log"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"booking-service/config"
	"booking-service/internal/broker"
	"booking-service/internal/db/models"
	"booking-service/utils"
)

var logger *log.Logger

func init() {
	if _, err := os.Stat("logs"); os.IsNotExist(err) {
		os.MkdirAll("logs", os.ModePerm)
	}
	logFile, err := os.OpenFile("logs/service.log", os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		logger = log.New(os.Stderr, "BOOKING-SERVICE: ", log.LstdFlags|log.Lshortfile)
		return
	}
	logger = log.New(logFile, "BOOKING-SERVICE: ", log.LstdFlags|log.Lshortfile)
}

// UserStore is the user persistence surface the handlers need.
type UserStore interface {
	CreateUser(user *models.User) (*models.User, error)
	GetUserByEmailWithPassword(email string) (*models.User, error)
	GetUserByID(id int) (*models.User, error)
	UpdateUserFields(id int, name, tel *string) (*models.User, error)
	DeleteUser(id int) error
}

// ReservationStore is the reservation persistence surface the handlers need.
type ReservationStore interface {
	GetReservationsByUser(userID int) ([]models.Reservation, error)
	GetReservationByID(id int) (*models.Reservation, error)
	CreateReservation(userID, eventID, ticketAmount int) (*models.Reservation, error)
	DeleteReservation(id int) error
	DeleteReservationsByUser(userID int) error
}

// EventStore is the event persistence surface the handlers need.
type EventStore interface {
	GetAllEvents() ([]models.Event, error)
	GetEventByID(id int) (*models.Event, error)
	CreateEvent(event *models.Event) (*models.Event, error)
	SaveAvailableTickets(event *models.Event) error
	ReserveTickets(eventID, amount int) (bool, error)
}

// Publisher emits notification messages to the broker.
type Publisher interface {
	Publish(message interface{}, key string) error
}

// Handler holds dependencies for API handlers.
type Handler struct {
	users        UserStore
	reservations ReservationStore
	events       EventStore
	publisher    Publisher
}

// NewHandler creates a new Handler with dependencies. publisher may be nil
// when no broker is available.
func NewHandler(users UserStore, reservations ReservationStore, events EventStore, publisher Publisher) *Handler {
	return &Handler{
		users:        users,
		reservations: reservations,
		events:       events,
		publisher:    publisher,
	}
}

// publish is best effort; a broker outage never fails a request.
func (h *Handler) publish(message interface{}, key string) {
	if h.publisher == nil {
		return
	}
	if err := h.publisher.Publish(message, key); err != nil {
		logger.Printf("publish %s: %v", key, err)
	}
}

// serverError hides internal detail outside development mode.
func serverError(err error) gin.H {
	resp := gin.H{"success": false, "message": "Server Error"}
	if config.IsDevelopment() && err != nil {
		resp["error"] = err.Error()
	}
	return resp
}

// sendTokenResponse issues a session token, sets it as an HTTP-only cookie and
// writes the identity payload.
func sendTokenResponse(c *gin.Context, user *models.User, status int) {
	token, err := utils.GenerateJWT(user.ID, user.Role)
	if err != nil {
		logger.Printf("sign token: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"success": false})
		return
	}

	opts := utils.TokenCookieOptions()
	c.SetCookie("token", token, opts.MaxAge, "/", "", opts.Secure, opts.HTTPOnly)

	c.JSON(status, gin.H{
		"success": true,
		"_id":     user.ID,
		"name":    user.Name,
		"email":   user.Email,
		"token":   token,
	})
}

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Tel      string `json:"tel"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// Register creates a new user account and logs it in. Why registration failed
// is logged but never detailed to the caller.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Printf("register: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	if req.Role == "" {
		req.Role = models.RoleMember
	}
	if req.Name == "" || req.Email == "" || req.Tel == "" || req.Password == "" || !models.ValidRole(req.Role) {
		logger.Printf("register: invalid fields for %q", req.Email)
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	user, err := h.users.CreateUser(&models.User{
		Name:     req.Name,
		Email:    req.Email,
		Tel:      req.Tel,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		logger.Printf("register: %v", err)
		c.JSON(http.StatusBadRequest, gin.H{"success": false})
		return
	}

	sendTokenResponse(c, user, http.StatusOK)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login checks credentials and issues a session token. Unknown email and
// wrong password share one message so accounts cannot be enumerated, and
// unexpected failures fall back to a generic 401, never a 500.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Printf("login: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "msg": "Cannot convert email or password to string"})
		return
	}

	if req.Email == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "Please provide an email and password"})
		return
	}

	user, err := h.users.GetUserByEmailWithPassword(req.Email)
	if err != nil {
		logger.Printf("login: %v", err)
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "msg": "Cannot convert email or password to string"})
		return
	}
	if user == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "msg": "Invalid credentials"})
		return
	}

	if !user.MatchPassword(req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "msg": "Invalid credentials"})
		return
	}

	sendTokenResponse(c, user, http.StatusOK)
}

// Logout overwrites the session cookie with a sentinel value and a
// near-immediate expiry so browsers drop it promptly.
func (h *Handler) Logout(c *gin.Context) {
	c.SetCookie("token", "none", 10, "/", "", config.IsProduction(), true)
	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}

// GetMe returns the authenticated user's record.
func (h *Handler) GetMe(c *gin.Context) {
	user, err := h.users.GetUserByID(c.GetInt(ctxUserIDKey))
	if err != nil {
		logger.Printf("getMe: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

type updateUserRequest struct {
	Name *string `json:"name"`
	Tel  *string `json:"tel"`
}

// UpdateMe mutates only name and tel. The request struct is the allow-list:
// any other field in the body is ignored even if present, so roles or emails
// cannot be injected.
func (h *Handler) UpdateMe(c *gin.Context) {
	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide name or tel to update"})
		return
	}

	if req.Name == nil && req.Tel == nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide name or tel to update"})
		return
	}
	if (req.Name != nil && *req.Name == "") || (req.Tel != nil && *req.Tel == "") {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Please provide name or tel to update"})
		return
	}

	user, err := h.users.UpdateUserFields(c.GetInt(ctxUserIDKey), req.Name, req.Tel)
	if err != nil {
		logger.Printf("updateUser: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

// DeleteMe removes the authenticated user's account, restoring reserved
// tickets to their events first. Reservations may share an event, so they are
// processed one at a time; a reservation whose event has since been deleted
// is skipped without restoring anything. The user row goes last so that a
// crash mid-sequence leaves reservations behind (recoverable) rather than an
// account pointing at deleted reservations. There is no rollback across these
// steps.
func (h *Handler) DeleteMe(c *gin.Context) {
	userID := c.GetInt(ctxUserIDKey)

	user, err := h.users.GetUserByID(userID)
	if err != nil {
		logger.Printf("deleteUser: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}
	if user == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "User not found"})
		return
	}

	reservations, err := h.reservations.GetReservationsByUser(userID)
	if err != nil {
		logger.Printf("deleteUser: list reservations: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}

	for _, reservation := range reservations {
		event, err := h.events.GetEventByID(reservation.EventID)
		if err != nil {
			logger.Printf("deleteUser: lookup event %d: %v", reservation.EventID, err)
			c.JSON(http.StatusInternalServerError, serverError(err))
			return
		}
		if event == nil {
			continue
		}

		event.AvailableTickets += reservation.TicketAmount
		if err := h.events.SaveAvailableTickets(event); err != nil {
			logger.Printf("deleteUser: restore tickets to event %d: %v", event.ID, err)
			c.JSON(http.StatusInternalServerError, serverError(err))
			return
		}
	}

	if err := h.reservations.DeleteReservationsByUser(userID); err != nil {
		logger.Printf("deleteUser: delete reservations: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}

	if err := h.users.DeleteUser(userID); err != nil {
		logger.Printf("deleteUser: delete user: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}

	h.publish(broker.AccountDeletedMessage{
		UserID: userID,
		Name:   user.Name,
		Email:  user.Email,
	}, broker.TopicAccountDeleted)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User account and all associated reservations deleted successfully",
	})
}
