package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sim_inventory/internal/auth"
	"github.com/sim_inventory/internal/handlers"
)

// SetupDealerPurchaseRoutes 设置经销商购买相关路由
func SetupDealerPurchaseRoutes(router *gin.RouterGroup, h *handlers.DealerPurchaseHandler) {
	purchases := router.Group("/v1/dealer-purchases")
	purchases.Use(auth.JWTMiddleware())
	{
		purchases.GET("", h.ListDealerPurchases)
		purchases.POST("", h.CreateDealerPurchase)
		purchases.DELETE("", h.DeleteDealerPurchases)
		purchases.PATCH("/:id", h.UpdateDealerPurchase)
	}
}
