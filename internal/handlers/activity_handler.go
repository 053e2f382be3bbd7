package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sim_inventory/internal/services"
	"github.com/sim_inventory/pkg/utils"
)

// ActivityHandler 封装了操作日志相关的 HTTP 处理逻辑
type ActivityHandler struct {
	tasks services.TaskService
}

// NewActivityHandler 创建一个新的 ActivityHandler 实例
func NewActivityHandler(tasks services.TaskService) *ActivityHandler {
	return &ActivityHandler{tasks: tasks}
}

// ListActivities godoc
// @Summary 获取操作日志列表
// @Description 员工只看到自己产生的日志，按时间倒序
// @Tags activities
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.ActivityRecord}
// @Router /activities [get]
// @Security BearerAuth
func (h *ActivityHandler) ListActivities(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, h.tasks.ActivitiesFor(actorFromContext(c)), "")
}

// DeleteActivities godoc
// @Summary 删除操作日志
// @Description 仅管理员可删除
// @Tags activities
// @Accept json
// @Produce json
// @Param payload body IDsPayload true "要删除的日志 id 列表"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.APIErrorResponse "权限不足"
// @Router /activities [delete]
// @Security BearerAuth
func (h *ActivityHandler) DeleteActivities(c *gin.Context) {
	var payload IDsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.tasks.DeleteActivities(actorFromContext(c), payload.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "日志删除成功")
}
