package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sim_inventory/internal/services"
	"github.com/sim_inventory/internal/store"
	"github.com/sim_inventory/pkg/utils"
)

// SaleHandler 封装了销售记录相关的 HTTP 处理逻辑
type SaleHandler struct {
	lifecycle services.LifecycleService
	store     *store.Store
}

// NewSaleHandler 创建一个新的 SaleHandler 实例
func NewSaleHandler(lifecycle services.LifecycleService, st *store.Store) *SaleHandler {
	return &SaleHandler{lifecycle: lifecycle, store: st}
}

// SaleDetailsPayload 成交信息请求体
type SaleDetailsPayload struct {
	SalePrice float64 `json:"salePrice" binding:"gte=0"`
	SoldTo    string  `json:"soldTo" binding:"required"`
	SaleDate  string  `json:"saleDate" binding:"required"`
}

func (p SaleDetailsPayload) toSaleDetails() (services.SaleDetails, error) {
	saleDate, err := utils.ParseDate(p.SaleDate)
	if err != nil {
		return services.SaleDetails{}, err
	}
	return services.SaleDetails{SalePrice: p.SalePrice, SoldTo: p.SoldTo, SaleDate: saleDate}, nil
}

// ListSales godoc
// @Summary 获取销售记录列表
// @Tags sales
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.SaleRecord}
// @Router /sales [get]
// @Security BearerAuth
func (h *SaleHandler) ListSales(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, h.store.Sales(), "")
}

// SellNumber godoc
// @Summary 售出一个库存号码
// @Description 冻结号码快照后在单个事务内创建销售记录并从主库存删除
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "号码 id"
// @Param details body SaleDetailsPayload true "成交信息"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.APIErrorResponse "号码记录未找到"
// @Router /sales/sell/{id} [post]
// @Security BearerAuth
func (h *SaleHandler) SellNumber(c *gin.Context) {
	var payload SaleDetailsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	details, err := payload.toSaleDetails()
	if err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.lifecycle.SellNumber(actorFromContext(c), c.Param("id"), details); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "号码售出成功")
}

// BulkSellPayload 批量售出请求：多个号码共享同一份成交信息
type BulkSellPayload struct {
	IDs     []string           `json:"ids" binding:"required,min=1"`
	Details SaleDetailsPayload `json:"details" binding:"required"`
}

// BulkSellNumbers godoc
// @Summary 批量售出库存号码
// @Tags sales
// @Accept json
// @Produce json
// @Param payload body BulkSellPayload true "号码 id 列表与成交信息"
// @Success 200 {object} utils.SuccessResponse
// @Router /sales/sell [post]
// @Security BearerAuth
func (h *SaleHandler) BulkSellNumbers(c *gin.Context) {
	var payload BulkSellPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	details, err := payload.Details.toSaleDetails()
	if err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.lifecycle.BulkSellNumbers(actorFromContext(c), payload.IDs, details); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "批量售出成功")
}

// CancelSale godoc
// @Summary 取消销售
// @Description 按冻结快照还原到主库存，assignedTo 与 name 重置为 Unassigned
// @Tags sales
// @Produce json
// @Param id path string true "销售记录 id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.APIErrorResponse "销售记录未找到"
// @Router /sales/{id}/cancel [post]
// @Security BearerAuth
func (h *SaleHandler) CancelSale(c *gin.Context) {
	if err := h.lifecycle.CancelSale(actorFromContext(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "销售已取消，号码已退回库存")
}

// SaleStatusesPayload 销售状态对更新请求
type SaleStatusesPayload struct {
	PaymentStatus string `json:"paymentStatus" binding:"required,oneof=Pending Done"`
	UpcStatus     string `json:"upcStatus" binding:"required,oneof=Pending Generated"`
}

// UpdateSaleStatuses godoc
// @Summary 更新销售记录的付款与 UPC 状态
// @Tags sales
// @Accept json
// @Produce json
// @Param id path string true "销售记录 id"
// @Param payload body SaleStatusesPayload true "状态对"
// @Success 200 {object} utils.SuccessResponse
// @Router /sales/{id}/statuses [patch]
// @Security BearerAuth
func (h *SaleHandler) UpdateSaleStatuses(c *gin.Context) {
	var payload SaleStatusesPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	err := h.lifecycle.UpdateSaleStatuses(actorFromContext(c), c.Param("id"),
		services.SaleStatuses{PaymentStatus: payload.PaymentStatus, UpcStatus: payload.UpcStatus})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "销售状态更新成功")
}

// BulkUpcPayload 批量 UPC 状态更新请求
type BulkUpcPayload struct {
	IDs       []string `json:"ids" binding:"required,min=1"`
	UpcStatus string   `json:"upcStatus" binding:"required,oneof=Pending Generated"`
}

// BulkUpdateUpcStatus godoc
// @Summary 批量更新销售记录的 UPC 状态
// @Tags sales
// @Accept json
// @Produce json
// @Param payload body BulkUpcPayload true "id 列表与 UPC 状态"
// @Success 200 {object} utils.SuccessResponse
// @Router /sales/upc-status [patch]
// @Security BearerAuth
func (h *SaleHandler) BulkUpdateUpcStatus(c *gin.Context) {
	var payload BulkUpcPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.lifecycle.BulkUpdateUpcStatus(actorFromContext(c), payload.IDs, payload.UpcStatus); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "UPC 状态批量更新成功")
}

// MarkAsPortedOut godoc
// @Summary 将销售记录标记为已携出
// @Description 要求 UPC 已生成；在单个事务内创建携出记录并删除销售记录
// @Tags sales
// @Produce json
// @Param id path string true "销售记录 id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.APIErrorResponse "UPC 尚未生成"
// @Router /sales/{id}/port-out [post]
// @Security BearerAuth
func (h *SaleHandler) MarkAsPortedOut(c *gin.Context) {
	if err := h.lifecycle.MarkSaleAsPortedOut(actorFromContext(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "已移入携出历史")
}

// BulkMarkAsPortedOut godoc
// @Summary 批量携出销售记录
// @Description UPC 未生成的记录被跳过并计数，全部不合格时返回错误
// @Tags sales
// @Accept json
// @Produce json
// @Param payload body IDsPayload true "销售记录 id 列表"
// @Success 200 {object} utils.SuccessResponse{data=services.BulkPortOutResult}
// @Router /sales/port-out [post]
// @Security BearerAuth
func (h *SaleHandler) BulkMarkAsPortedOut(c *gin.Context) {
	var payload IDsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	result, err := h.lifecycle.BulkMarkAsPortedOut(actorFromContext(c), payload.IDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, result, "批量携出完成")
}
