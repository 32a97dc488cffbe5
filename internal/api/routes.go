package api

import "github.com/gin-gonic/gin"

// SetupRoutes registers all API routes on the router.
func SetupRoutes(r *gin.Engine, h *Handler) {
	v1 := r.Group("/api/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.GET("/logout", Protect(), h.Logout)
		auth.GET("/me", Protect(), h.GetMe)
		auth.PUT("/me", Protect(), h.UpdateMe)
		auth.DELETE("/me", Protect(), h.DeleteMe)
	}

	events := v1.Group("/events")
	{
		events.GET("", h.GetEvents)
		events.GET("/:id", h.GetEvent)
		events.POST("", Protect(), RequireAdmin(), h.CreateEvent)
	}

	reservations := v1.Group("/reservations", Protect())
	{
		reservations.POST("", h.CreateReservation)
		reservations.GET("", h.GetMyReservations)
		reservations.DELETE("/:id", h.CancelReservation)
	}
}
