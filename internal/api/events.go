package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"booking-service/internal/db/models"
)

// GetEvents lists every event.
func (h *Handler) GetEvents(c *gin.Context) {
	events, err := h.events.GetAllEvents()
	if err != nil {
		logger.Printf("getEvents: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "count": len(events), "data": events})
}

// GetEvent retrieves a single event by id.
func (h *Handler) GetEvent(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid event ID"})
		return
	}

	event, err := h.events.GetEventByID(id)
	if err != nil {
		logger.Printf("getEvent: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}
	if event == nil {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Event not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "data": event})
}

type createEventRequest struct {
	Name         string  `json:"name"`
	Date         string  `json:"date"`
	Venue        string  `json:"venue"`
	TotalTickets int     `json:"total_tickets"`
	Price        float64 `json:"price"`
}

// CreateEvent adds a new event with its full inventory available. Admin only.
func (h *Handler) CreateEvent(c *gin.Context) {
	var req createEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Invalid request body"})
		return
	}
	if req.Name == "" || req.TotalTickets <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": "Event name and a positive total_tickets are required"})
		return
	}

	event, err := h.events.CreateEvent(&models.Event{
		Name:             req.Name,
		Date:             req.Date,
		Venue:            req.Venue,
		TotalTickets:     req.TotalTickets,
		AvailableTickets: req.TotalTickets,
		Price:            req.Price,
	})
	if err != nil {
		logger.Printf("createEvent: %v", err)
		c.JSON(http.StatusInternalServerError, serverError(err))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"success": true, "data": event})
}
