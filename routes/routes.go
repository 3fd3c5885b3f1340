package routes

import (
	"net/http"
	"time"

	"casavida/handlers"
	"casavida/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint of the scheduling service.
func RegisterRoutes(r *gin.Engine, schedule *handlers.ScheduleHandler, request *handlers.ScheduleRequestHandler) {
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{"GET", "POST", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept"},
		MaxAge:       12 * time.Hour,
	}))

	api := r.Group("/api/schedule")
	{
		api.GET("/availability", schedule.GetAvailability)
		api.GET("/next-slot", schedule.GetNextSlot)
		api.POST("/bookings", schedule.CreateBooking)
		api.POST("/requests", request.HandleRequest)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, utils.GetHealthStatus())
	})
}
