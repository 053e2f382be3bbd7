package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/sim_inventory/internal/auth"
	"github.com/sim_inventory/internal/handlers"
)

// SetupTaskRoutes 设置提醒、操作日志与付款相关路由
func SetupTaskRoutes(router *gin.RouterGroup, reminder *handlers.ReminderHandler,
	activity *handlers.ActivityHandler, payment *handlers.PaymentHandler) {
	apiV1 := router.Group("/v1")
	apiV1.Use(auth.JWTMiddleware())
	{
		reminders := apiV1.Group("/reminders")
		{
			reminders.GET("", reminder.ListReminders)
			reminders.POST("", reminder.CreateReminder)
			reminders.POST("/:id/done", reminder.MarkReminderDone)
			reminders.DELETE("/:id", reminder.DeleteReminder)
		}

		activities := apiV1.Group("/activities")
		{
			activities.GET("", activity.ListActivities)
			activities.DELETE("", activity.DeleteActivities)
		}

		payments := apiV1.Group("/payments")
		{
			payments.GET("", payment.ListPayments)
			payments.POST("", payment.CreatePayment)
			payments.GET("/vendors", payment.ListVendors)
		}
	}
}
