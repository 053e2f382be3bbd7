package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sim_inventory/internal/repositories"
	"github.com/sim_inventory/internal/services"
	"github.com/sim_inventory/pkg/utils"
)

// actorFromContext 从JWT中间件写入的上下文信息构建操作者身份
func actorFromContext(c *gin.Context) services.Actor {
	return services.Actor{
		UID:         c.GetString("userID"),
		DisplayName: c.GetString("displayName"),
		Role:        c.GetString("role"),
	}
}

// respondServiceError 将服务层错误映射为对应的 HTTP 状态码
func respondServiceError(c *gin.Context, err error) {
	var portOutBlocked *services.PortOutPaymentPendingError
	var batchErr *repositories.BatchError

	switch {
	case errors.Is(err, services.ErrNumberNotFound),
		errors.Is(err, services.ErrSaleNotFound),
		errors.Is(err, services.ErrPortOutNotFound),
		errors.Is(err, services.ErrPreBookingNotFound),
		errors.Is(err, services.ErrDealerPurchaseNotFound),
		errors.Is(err, services.ErrReminderNotFound),
		errors.Is(err, repositories.ErrUserNotFound):
		utils.RespondAPIError(c, http.StatusNotFound, err.Error(), nil)
	case errors.Is(err, services.ErrDuplicateMobile):
		utils.RespondConflictError(c, err.Error())
	case errors.Is(err, services.ErrPermissionDenied):
		utils.RespondForbiddenError(c, err.Error())
	case errors.As(err, &portOutBlocked):
		utils.RespondConflictError(c, err.Error())
	case errors.Is(err, services.ErrInvalidStatusValue),
		errors.Is(err, services.ErrInvalidMarkValue),
		errors.Is(err, services.ErrInvalidUpcValue),
		errors.Is(err, services.ErrInvalidLocationType),
		errors.Is(err, services.ErrRtsDateRequired),
		errors.Is(err, services.ErrSafeCustodyRequired),
		errors.Is(err, services.ErrAccountNameRequired),
		errors.Is(err, services.ErrPartnerNameRequired),
		errors.Is(err, services.ErrUpcNotGenerated),
		errors.Is(err, services.ErrNoEligibleRecords),
		errors.Is(err, services.ErrEmptySelection),
		errors.Is(err, utils.ErrInvalidMobileNumberFormat),
		errors.Is(err, utils.ErrInvalidDateFormat):
		utils.RespondValidationError(c, err.Error())
	case errors.As(err, &batchErr):
		utils.RespondInternalServerError(c, "批量写入失败", batchErr.Error())
	default:
		utils.RespondInternalServerError(c, "服务器内部错误", err.Error())
	}
}

// IDsPayload 批量操作通用的 id 列表请求体
type IDsPayload struct {
	IDs []string `json:"ids" binding:"required,min=1"`
}
