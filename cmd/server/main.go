package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"

	"github.com/sim_inventory/configs"
	_ "github.com/sim_inventory/docs" // swagger 生成的文档
	"github.com/sim_inventory/internal/handlers"
	"github.com/sim_inventory/internal/repositories"
	"github.com/sim_inventory/internal/routes"
	"github.com/sim_inventory/internal/services"
	"github.com/sim_inventory/internal/store"
	"github.com/sim_inventory/pkg/db"
)

// @title SIM 号码库存管理 API
// @version 1.0
// @description 号码采购、分配、预订、销售、携出与对账的后端服务
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 加载配置
	configs.LoadConfig()

	// 初始化数据库连接
	db.InitDB(configs.AppConfig.SQLitePath)
	defer db.CloseDB()

	gormDB := db.GetDB()
	userRepo := repositories.NewGormUserRepository(gormDB)
	collectionRepo := repositories.NewGormCollectionRepository(gormDB)
	executor := repositories.NewGormBatchExecutor(gormDB)

	// 内存镜像：启动时整体加载，每次事务提交后刷新
	st := store.NewStore(collectionRepo)
	if err := st.Refresh(); err != nil {
		log.Fatalf("加载数据失败: %v", err)
	}

	lifecycleSvc := services.NewLifecycleService(st, executor)
	taskSvc := services.NewTaskService(st, executor)
	importSvc := services.NewImportService(st, executor)

	// 后台巡检：RTS 到期、托管到期提醒、已完成提醒清理
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	services.NewSweepService(st, executor).Start(ctx)

	router := gin.Default()
	routes.SetupRoutes(router, routes.Handlers{
		Auth:           handlers.NewAuthHandler(userRepo),
		Number:         handlers.NewNumberHandler(lifecycleSvc, importSvc, st),
		Sale:           handlers.NewSaleHandler(lifecycleSvc, st),
		PortOut:        handlers.NewPortOutHandler(lifecycleSvc, st),
		PreBooking:     handlers.NewPreBookingHandler(lifecycleSvc, st),
		DealerPurchase: handlers.NewDealerPurchaseHandler(lifecycleSvc, st),
		Reminder:       handlers.NewReminderHandler(taskSvc),
		Activity:       handlers.NewActivityHandler(taskSvc),
		Payment:        handlers.NewPaymentHandler(taskSvc),
		User:           handlers.NewUserHandler(userRepo),
		Import:         handlers.NewImportHandler(importSvc, st),
	})

	port := configs.AppConfig.ServerPort
	log.Printf("Server starting on port %s...", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
