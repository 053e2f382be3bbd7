package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sim_inventory/internal/auth"
	"github.com/sim_inventory/internal/handlers"
)

// SetupAuthRoutes 设置认证相关路由
func SetupAuthRoutes(router *gin.RouterGroup, h *handlers.AuthHandler) {
	apiV1 := router.Group("/v1")
	{
		// 公共认证路由组（登录与注册）
		publicAuthGroup := apiV1.Group("/auth")
		{
			// POST /api/v1/auth/login
			publicAuthGroup.POST("/login", h.Login)
			// POST /api/v1/auth/signup
			publicAuthGroup.POST("/signup", h.Signup)
		}

		// 受保护的认证路由组（登出）
		protectedAuthGroup := apiV1.Group("/auth")
		protectedAuthGroup.Use(auth.JWTMiddleware())
		{
			// POST /api/v1/auth/logout
			protectedAuthGroup.POST("/logout", h.Logout)
		}
	}
}
