package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sim_inventory/internal/auth"
	"github.com/sim_inventory/internal/handlers"
)

// SetupPortOutRoutes 设置携出历史相关路由
func SetupPortOutRoutes(router *gin.RouterGroup, h *handlers.PortOutHandler) {
	portouts := router.Group("/v1/portouts")
	portouts.Use(auth.JWTMiddleware())
	{
		portouts.GET("", h.ListPortOuts)
		portouts.DELETE("", h.DeletePortOuts)
		portouts.PATCH("/payment-status", h.BulkUpdatePaymentStatus)
		portouts.PATCH("/:id/payment-status", h.UpdatePortOutStatus)
	}
}
