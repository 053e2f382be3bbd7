package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sim_inventory/internal/auth"
	"github.com/sim_inventory/internal/handlers"
)

// SetupNumberRoutes 设置主库存号码相关路由
func SetupNumberRoutes(router *gin.RouterGroup, h *handlers.NumberHandler) {
	numbers := router.Group("/v1/numbers")
	numbers.Use(auth.JWTMiddleware())
	{
		numbers.GET("", h.ListNumbers)
		numbers.POST("", h.CreateNumber)
		numbers.DELETE("", h.DeleteNumbers)
		numbers.POST("/parse-input", h.ParseMultiNumberInput)
		numbers.POST("/multi", h.AddMultipleNumbers)
		numbers.POST("/assign", h.AssignNumbers)
		numbers.PATCH("/location", h.UpdateNumberLocation)
		numbers.PATCH("/upload-status", h.BulkUpdateUploadStatus)
		numbers.PATCH("/safe-custody-date", h.BulkUpdateSafeCustodyDate)
		numbers.GET("/duplicate-check", h.CheckDuplicate)
		numbers.PATCH("/:id/status", h.UpdateNumberStatus)
		numbers.PATCH("/:id/upload-status", h.UpdateUploadStatus)
		numbers.PATCH("/:id/safe-custody-date", h.UpdateSafeCustodyDate)
		numbers.POST("/:id/check-in", h.CheckInNumber)
	}
}
