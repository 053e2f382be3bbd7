package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sim_inventory/internal/services"
	"github.com/sim_inventory/pkg/utils"
)

// PaymentHandler 封装了厂商付款相关的 HTTP 处理逻辑
type PaymentHandler struct {
	tasks services.TaskService
}

// NewPaymentHandler 创建一个新的 PaymentHandler 实例
func NewPaymentHandler(tasks services.TaskService) *PaymentHandler {
	return &PaymentHandler{tasks: tasks}
}

// ListPayments godoc
// @Summary 获取付款记录列表
// @Tags payments
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.PaymentRecord}
// @Router /payments [get]
// @Security BearerAuth
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, h.tasks.Payments(), "")
}

// PaymentPayload 记录付款的请求体
type PaymentPayload struct {
	VendorName  string  `json:"vendorName" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	PaymentDate string  `json:"paymentDate" binding:"required"`
	Notes       string  `json:"notes"`
}

// CreatePayment godoc
// @Summary 记录一笔厂商付款
// @Tags payments
// @Accept json
// @Produce json
// @Param payload body PaymentPayload true "付款信息"
// @Success 201 {object} utils.SuccessResponse
// @Router /payments [post]
// @Security BearerAuth
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var payload PaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	paymentDate, err := utils.ParseDate(payload.PaymentDate)
	if err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	err = h.tasks.AddPayment(actorFromContext(c), services.NewPaymentData{
		VendorName:  payload.VendorName,
		Amount:      payload.Amount,
		PaymentDate: paymentDate,
		Notes:       payload.Notes,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, nil, "付款记录添加成功")
}

// ListVendors godoc
// @Summary 获取厂商名称列表
// @Description 固定厂商与历史销售 soldTo 的去重并集，按字典序排序
// @Tags payments
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]string}
// @Router /payments/vendors [get]
// @Security BearerAuth
func (h *PaymentHandler) ListVendors(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, h.tasks.Vendors(), "")
}
