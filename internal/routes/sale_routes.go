package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sim_inventory/internal/auth"
	"github.com/sim_inventory/internal/handlers"
)

// SetupSaleRoutes 设置销售记录相关路由
func SetupSaleRoutes(router *gin.RouterGroup, h *handlers.SaleHandler) {
	sales := router.Group("/v1/sales")
	sales.Use(auth.JWTMiddleware())
	{
		sales.GET("", h.ListSales)
		sales.POST("/sell/:id", h.SellNumber)
		sales.POST("/sell", h.BulkSellNumbers)
		sales.POST("/:id/cancel", h.CancelSale)
		sales.PATCH("/:id/statuses", h.UpdateSaleStatuses)
		sales.PATCH("/upc-status", h.BulkUpdateUpcStatus)
		sales.POST("/:id/port-out", h.MarkAsPortedOut)
		sales.POST("/port-out", h.BulkMarkAsPortedOut)
	}
}
