package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/sim_inventory/internal/handlers"
)

// Handlers 汇集所有模块的处理器，供路由注册使用
type Handlers struct {
	Auth           *handlers.AuthHandler
	Number         *handlers.NumberHandler
	Sale           *handlers.SaleHandler
	PortOut        *handlers.PortOutHandler
	PreBooking     *handlers.PreBookingHandler
	DealerPurchase *handlers.DealerPurchaseHandler
	Reminder       *handlers.ReminderHandler
	Activity       *handlers.ActivityHandler
	Payment        *handlers.PaymentHandler
	User           *handlers.UserHandler
	Import         *handlers.ImportHandler
}

// SetupRoutes 初始化所有路由
func SetupRoutes(router *gin.Engine, h Handlers) {
	// Swagger 文档
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	SetupAuthRoutes(api, h.Auth)
	SetupNumberRoutes(api, h.Number)
	SetupSaleRoutes(api, h.Sale)
	SetupPortOutRoutes(api, h.PortOut)
	SetupPreBookingRoutes(api, h.PreBooking)
	SetupDealerPurchaseRoutes(api, h.DealerPurchase)
	SetupTaskRoutes(api, h.Reminder, h.Activity, h.Payment)
	SetupUserRoutes(api, h.User)
	SetupImportRoutes(api, h.Import)
}
