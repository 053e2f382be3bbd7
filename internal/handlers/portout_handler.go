package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sim_inventory/internal/services"
	"github.com/sim_inventory/internal/store"
	"github.com/sim_inventory/pkg/utils"
)

// PortOutHandler 封装了携出历史相关的 HTTP 处理逻辑
type PortOutHandler struct {
	lifecycle services.LifecycleService
	store     *store.Store
}

// NewPortOutHandler 创建一个新的 PortOutHandler 实例
func NewPortOutHandler(lifecycle services.LifecycleService, st *store.Store) *PortOutHandler {
	return &PortOutHandler{lifecycle: lifecycle, store: st}
}

// ListPortOuts godoc
// @Summary 获取携出历史列表
// @Tags portouts
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.PortOutRecord}
// @Router /portouts [get]
// @Security BearerAuth
func (h *PortOutHandler) ListPortOuts(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, h.store.PortOuts(), "")
}

// DeletePortOuts godoc
// @Summary 删除携出历史记录
// @Description 任意一条付款状态为 Pending 即阻断整批删除，并返回被阻断的数量
// @Tags portouts
// @Accept json
// @Produce json
// @Param payload body IDsPayload true "要删除的 id 列表"
// @Success 200 {object} utils.SuccessResponse
// @Failure 409 {object} utils.APIErrorResponse "存在付款未完成的记录"
// @Router /portouts [delete]
// @Security BearerAuth
func (h *PortOutHandler) DeletePortOuts(c *gin.Context) {
	var payload IDsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.lifecycle.DeletePortOuts(actorFromContext(c), payload.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "携出记录删除成功")
}

// PortOutStatusPayload 携出付款状态更新请求
type PortOutStatusPayload struct {
	PaymentStatus string `json:"paymentStatus" binding:"required,oneof=Pending Done"`
}

// UpdatePortOutStatus godoc
// @Summary 更新单条携出记录的付款状态
// @Tags portouts
// @Accept json
// @Produce json
// @Param id path string true "携出记录 id"
// @Param payload body PortOutStatusPayload true "付款状态"
// @Success 200 {object} utils.SuccessResponse
// @Router /portouts/{id}/payment-status [patch]
// @Security BearerAuth
func (h *PortOutHandler) UpdatePortOutStatus(c *gin.Context) {
	var payload PortOutStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.lifecycle.UpdatePortOutStatus(actorFromContext(c), c.Param("id"), payload.PaymentStatus); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "付款状态更新成功")
}

// BulkPortOutPaymentPayload 批量携出付款状态更新请求
type BulkPortOutPaymentPayload struct {
	IDs           []string `json:"ids" binding:"required,min=1"`
	PaymentStatus string   `json:"paymentStatus" binding:"required,oneof=Pending Done"`
}

// BulkUpdatePaymentStatus godoc
// @Summary 批量更新携出记录的付款状态
// @Tags portouts
// @Accept json
// @Produce json
// @Param payload body BulkPortOutPaymentPayload true "id 列表与付款状态"
// @Success 200 {object} utils.SuccessResponse
// @Router /portouts/payment-status [patch]
// @Security BearerAuth
func (h *PortOutHandler) BulkUpdatePaymentStatus(c *gin.Context) {
	var payload BulkPortOutPaymentPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.lifecycle.BulkUpdatePortOutPaymentStatus(actorFromContext(c), payload.IDs, payload.PaymentStatus); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "付款状态批量更新成功")
}
