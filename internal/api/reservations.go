package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"booking-service/internal/broker"
)

type createReservationRequest struct {
	EventID      int `json:"event_id"`
	TicketAmount int `json:"ticket_amount"`
}

// CreateReservation books tickets against an event's inventory for the
// authenticated user.
func (h *Handler) CreateReservation(c *gin.Context) {
	userID := c.GetInt(ctxUserIDKey)

	var req createReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if req.EventID <= 0 || req.TicketAmount <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Provide a valid event_id and ticket_amount"})
		return
	}

	event, err := h.events.GetEventByID(req.EventID)
	if err != nil {
		logger.Printf("createReservation: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Event not found"})
		return
	}

	ok, err := h.events.ReserveTickets(req.EventID, req.TicketAmount)
	if err != nil {
		logger.Printf("createReservation: reserve tickets: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Not enough tickets available"})
		return
	}

	reservation, err := h.reservations.CreateReservation(userID, req.EventID, req.TicketAmount)
	if err != nil {
		logger.Printf("createReservation: %v", err)
		// The reservation row never existed, so give the tickets back.
		if ev, evErr := h.events.GetEventByID(req.EventID); evErr == nil && ev != nil {
			ev.AvailableTickets += req.TicketAmount
			if saveErr := h.events.SaveAvailableTickets(ev); saveErr != nil {
				logger.Printf("createReservation: restore tickets: %v", saveErr)
			}
		}
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}

	email := ""
	if user, userErr := h.users.GetUserByID(userID); userErr == nil && user != nil {
		email = user.Email
	}
	h.publish(broker.ReservationCreatedMessage{
		ReservationID: reservation.ID,
		Code:          reservation.Code,
		EventID:       reservation.EventID,
		UserID:        reservation.UserID,
		TicketAmount:  reservation.TicketAmount,
		Email:         email,
	}, broker.TopicReservationCreated)

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": reservation})
}

// GetMyReservations lists the authenticated user's reservations.
func (h *Handler) GetMyReservations(c *gin.Context) {
	reservations, err := h.reservations.GetReservationsByUser(c.GetInt(ctxUserIDKey))
	if err != nil {
		logger.Printf("getMyReservations: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(reservations), "data": reservations})
}

// CancelReservation deletes one of the caller's reservations and credits the
// tickets back to the event. A reservation owned by someone else is reported
// as not found rather than forbidden.
func (h *Handler) CancelReservation(c *gin.Context) {
	userID := c.GetInt(ctxUserIDKey)

	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid reservation ID"})
		return
	}

	reservation, err := h.reservations.GetReservationByID(id)
	if err != nil {
		logger.Printf("cancelReservation: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}
	if reservation == nil || reservation.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Reservation not found"})
		return
	}

	event, err := h.events.GetEventByID(reservation.EventID)
	if err != nil {
		logger.Printf("cancelReservation: lookup event: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}
	if event != nil {
		event.AvailableTickets += reservation.TicketAmount
		if err := h.events.SaveAvailableTickets(event); err != nil {
			logger.Printf("cancelReservation: restore tickets: %v", err)
			c.JSON(http.StatusInternalServerError, serverError(err))
			return
		}
	}

	if err := h.reservations.DeleteReservation(reservation.ID); err != nil {
		logger.Printf("cancelReservation: delete: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": gin.H{}})
}
