package models

// 文档集合名称。所有跨集合迁移操作通过这些名称寻址。
// 注意：这些名称是对外契约的一部分，不可随意更改。
const (
	CollectionNumbers         = "numbers"
	CollectionSales           = "sales"
	CollectionPortOuts        = "portouts"
	CollectionPreBookings     = "prebookings"
	CollectionDealerPurchases = "dealerPurchases"
	CollectionReminders       = "reminders"
	CollectionActivities      = "activities"
	CollectionPayments        = "payments"
	CollectionUsers           = "users"
)
