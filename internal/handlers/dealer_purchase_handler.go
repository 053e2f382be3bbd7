package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sim_inventory/internal/services"
	"github.com/sim_inventory/internal/store"
	"github.com/sim_inventory/pkg/utils"
)

// DealerPurchaseHandler 封装了经销商购买相关的 HTTP 处理逻辑
type DealerPurchaseHandler struct {
	lifecycle services.LifecycleService
	store     *store.Store
}

// NewDealerPurchaseHandler 创建一个新的 DealerPurchaseHandler 实例
func NewDealerPurchaseHandler(lifecycle services.LifecycleService, st *store.Store) *DealerPurchaseHandler {
	return &DealerPurchaseHandler{lifecycle: lifecycle, store: st}
}

// ListDealerPurchases godoc
// @Summary 获取经销商购买列表
// @Tags dealerPurchases
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.DealerPurchaseRecord}
// @Router /dealer-purchases [get]
// @Security BearerAuth
func (h *DealerPurchaseHandler) ListDealerPurchases(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, h.store.DealerPurchases(), "")
}

// DealerPurchasePayload 添加经销商购买的请求体
type DealerPurchasePayload struct {
	Mobile     string  `json:"mobile" binding:"required"`
	DealerName string  `json:"dealerName" binding:"required,max=255"`
	Price      float64 `json:"price" binding:"gte=0"`
}

// CreateDealerPurchase godoc
// @Summary 添加经销商购买记录
// @Description 参与全局唯一性检查；三个状态初始为 Pending/Pending/Pending
// @Tags dealerPurchases
// @Accept json
// @Produce json
// @Param payload body DealerPurchasePayload true "购买信息"
// @Success 201 {object} utils.SuccessResponse
// @Failure 409 {object} utils.APIErrorResponse "手机号码已存在"
// @Router /dealer-purchases [post]
// @Security BearerAuth
func (h *DealerPurchaseHandler) CreateDealerPurchase(c *gin.Context) {
	var payload DealerPurchasePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	err := h.lifecycle.AddDealerPurchase(actorFromContext(c), services.NewDealerPurchaseData{
		Mobile:     payload.Mobile,
		DealerName: payload.DealerName,
		Price:      payload.Price,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, nil, "经销商购买添加成功")
}

// DealerPurchaseStatusesPayload 经销商购买三状态更新请求
type DealerPurchaseStatusesPayload struct {
	PaymentStatus string `json:"paymentStatus" binding:"required,oneof=Pending Done"`
	PortOutStatus string `json:"portOutStatus" binding:"required,oneof=Pending Done"`
	UpcStatus     string `json:"upcStatus" binding:"required,oneof=Pending Generated"`
}

// UpdateDealerPurchase godoc
// @Summary 更新经销商购买记录的状态
// @Tags dealerPurchases
// @Accept json
// @Produce json
// @Param id path string true "购买记录 id"
// @Param payload body DealerPurchaseStatusesPayload true "三个状态"
// @Success 200 {object} utils.SuccessResponse
// @Router /dealer-purchases/{id} [patch]
// @Security BearerAuth
func (h *DealerPurchaseHandler) UpdateDealerPurchase(c *gin.Context) {
	var payload DealerPurchaseStatusesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	err := h.lifecycle.UpdateDealerPurchase(actorFromContext(c), c.Param("id"), services.DealerPurchaseStatuses{
		PaymentStatus: payload.PaymentStatus,
		PortOutStatus: payload.PortOutStatus,
		UpcStatus:     payload.UpcStatus,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "经销商购买状态更新成功")
}

// DeleteDealerPurchases godoc
// @Summary 删除经销商购买记录
// @Description 只删除三个状态全部完成的记录，其余跳过并返回跳过数量
// @Tags dealerPurchases
// @Accept json
// @Produce json
// @Param payload body IDsPayload true "要删除的 id 列表"
// @Success 200 {object} utils.SuccessResponse{data=services.DealerPurchaseDeleteResult}
// @Router /dealer-purchases [delete]
// @Security BearerAuth
func (h *DealerPurchaseHandler) DeleteDealerPurchases(c *gin.Context) {
	var payload IDsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	result, err := h.lifecycle.DeleteDealerPurchases(actorFromContext(c), payload.IDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, result, "经销商购买删除完成")
}
