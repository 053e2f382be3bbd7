package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sim_inventory/internal/auth"
	"github.com/sim_inventory/internal/handlers"
)

// SetupPreBookingRoutes 设置预订相关路由
func SetupPreBookingRoutes(router *gin.RouterGroup, h *handlers.PreBookingHandler) {
	prebookings := router.Group("/v1/prebookings")
	prebookings.Use(auth.JWTMiddleware())
	{
		prebookings.GET("", h.ListPreBookings)
		prebookings.POST("", h.MarkAsPreBooked)
		prebookings.POST("/sell", h.BulkSellPreBooked)
		prebookings.POST("/:id/cancel", h.CancelPreBooking)
		prebookings.POST("/:id/sell", h.SellPreBooked)
	}
}
