package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sim_inventory/internal/auth"
	"github.com/sim_inventory/internal/handlers"
)

// SetupImportRoutes 设置 xlsx 导入导出相关路由
func SetupImportRoutes(router *gin.RouterGroup, h *handlers.ImportHandler) {
	apiV1 := router.Group("/v1")
	apiV1.Use(auth.JWTMiddleware())
	{
		apiV1.POST("/import/numbers", h.ImportNumbers)
		apiV1.GET("/export/numbers", h.ExportNumbers)
		apiV1.POST("/export/failed-rows", h.ExportFailedRows)
	}
}
