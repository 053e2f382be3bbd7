package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sim_inventory/internal/auth"
	"github.com/sim_inventory/internal/handlers"
)

// SetupUserRoutes 设置用户管理相关路由
func SetupUserRoutes(router *gin.RouterGroup, h *handlers.UserHandler) {
	users := router.Group("/v1/users")
	users.Use(auth.JWTMiddleware())
	{
		users.GET("", h.ListUsers)
		users.GET("/employees", h.ListEmployeeNames)
		users.PATCH("/:id/role", h.UpdateUserRole)
		users.DELETE("/:id", h.DeleteUser)
	}
}
