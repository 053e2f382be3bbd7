package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sim_inventory/internal/models"
	"github.com/sim_inventory/internal/services"
	"github.com/sim_inventory/internal/store"
	"github.com/sim_inventory/pkg/utils"
)

// PreBookingHandler 封装了预订相关的 HTTP 处理逻辑
type PreBookingHandler struct {
	lifecycle services.LifecycleService
	store     *store.Store
}

// NewPreBookingHandler 创建一个新的 PreBookingHandler 实例
func NewPreBookingHandler(lifecycle services.LifecycleService, st *store.Store) *PreBookingHandler {
	return &PreBookingHandler{lifecycle: lifecycle, store: st}
}

// ListPreBookings godoc
// @Summary 获取预订列表
// @Description 员工只看到原号码分配给自己的预订（按冻结快照的 assignedTo 判断）
// @Tags prebookings
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.PreBookingRecord}
// @Router /prebookings [get]
// @Security BearerAuth
func (h *PreBookingHandler) ListPreBookings(c *gin.Context) {
	actor := actorFromContext(c)
	preBookings := h.store.PreBookings()
	if !actor.IsAdmin() {
		filtered := make([]models.PreBookingRecord, 0, len(preBookings))
		for _, pb := range preBookings {
			if pb.OriginalNumberData.AssignedTo == actor.DisplayName {
				filtered = append(filtered, pb)
			}
		}
		preBookings = filtered
	}
	utils.RespondSuccess(c, http.StatusOK, preBookings, "")
}

// MarkAsPreBooked godoc
// @Summary 将库存号码移入预订
// @Description 冻结快照后在单个事务内创建预订记录并从主库存删除
// @Tags prebookings
// @Accept json
// @Produce json
// @Param payload body IDsPayload true "号码 id 列表"
// @Success 200 {object} utils.SuccessResponse
// @Router /prebookings [post]
// @Security BearerAuth
func (h *PreBookingHandler) MarkAsPreBooked(c *gin.Context) {
	var payload IDsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.lifecycle.MarkAsPreBooked(actorFromContext(c), payload.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "号码已移入预订")
}

// CancelPreBooking godoc
// @Summary 取消预订
// @Description 按冻结快照逐字还原到主库存
// @Tags prebookings
// @Produce json
// @Param id path string true "预订记录 id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.APIErrorResponse "预订记录未找到"
// @Router /prebookings/{id}/cancel [post]
// @Security BearerAuth
func (h *PreBookingHandler) CancelPreBooking(c *gin.Context) {
	if err := h.lifecycle.CancelPreBooking(actorFromContext(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "预订已取消，号码已退回库存")
}

// SellPreBooked godoc
// @Summary 售出预订号码
// @Description 快照原样携带进销售记录，sum 与 uploadStatus 取自预订
// @Tags prebookings
// @Accept json
// @Produce json
// @Param id path string true "预订记录 id"
// @Param details body SaleDetailsPayload true "成交信息"
// @Success 200 {object} utils.SuccessResponse
// @Router /prebookings/{id}/sell [post]
// @Security BearerAuth
func (h *PreBookingHandler) SellPreBooked(c *gin.Context) {
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
	if err := h.lifecycle.SellPreBookedNumber(actorFromContext(c), c.Param("id"), details); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "预订号码售出成功")
}

// BulkSellPreBooked godoc
// @Summary 批量售出预订号码
// @Tags prebookings
// @Accept json
// @Produce json
// @Param payload body BulkSellPayload true "预订记录 id 列表与成交信息"
// @Success 200 {object} utils.SuccessResponse
// @Router /prebookings/sell [post]
// @Security BearerAuth
func (h *PreBookingHandler) BulkSellPreBooked(c *gin.Context) {
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
	if err := h.lifecycle.BulkSellPreBookedNumbers(actorFromContext(c), payload.IDs, details); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "预订号码批量售出成功")
}
