package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sim_inventory/internal/services"
	"github.com/sim_inventory/pkg/utils"
)

// ReminderHandler 封装了任务提醒相关的 HTTP 处理逻辑
type ReminderHandler struct {
	tasks services.TaskService
}

// NewReminderHandler 创建一个新的 ReminderHandler 实例
func NewReminderHandler(tasks services.TaskService) *ReminderHandler {
	return &ReminderHandler{tasks: tasks}
}

// ListReminders godoc
// @Summary 获取任务提醒列表
// @Description 员工只看到分配给自己的提醒
// @Tags reminders
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]models.ReminderRecord}
// @Router /reminders [get]
// @Security BearerAuth
func (h *ReminderHandler) ListReminders(c *gin.Context) {
	utils.RespondSuccess(c, http.StatusOK, h.tasks.RemindersFor(actorFromContext(c)), "")
}

// ReminderPayload 添加任务提醒的请求体
type ReminderPayload struct {
	TaskName   string `json:"taskName" binding:"required,max=255"`
	AssignedTo string `json:"assignedTo" binding:"required"`
	DueDate    string `json:"dueDate" binding:"required"`
}

// CreateReminder godoc
// @Summary 添加任务提醒
// @Tags reminders
// @Accept json
// @Produce json
// @Param payload body ReminderPayload true "任务信息"
// @Success 201 {object} utils.SuccessResponse
// @Router /reminders [post]
// @Security BearerAuth
func (h *ReminderHandler) CreateReminder(c *gin.Context) {
	var payload ReminderPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	dueDate, err := utils.ParseDate(payload.DueDate)
	if err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	err = h.tasks.AddReminder(actorFromContext(c), services.NewReminderData{
		TaskName:   payload.TaskName,
		AssignedTo: payload.AssignedTo,
		DueDate:    dueDate,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, nil, "任务提醒添加成功")
}

// ReminderDonePayload 完成任务时的可选备注
type ReminderDonePayload struct {
	Note string `json:"note"`
}

// MarkReminderDone godoc
// @Summary 标记任务完成
// @Description 记录完成时间，可附带备注
// @Tags reminders
// @Accept json
// @Produce json
// @Param id path string true "提醒 id"
// @Param payload body ReminderDonePayload false "备注"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.APIErrorResponse "提醒记录未找到"
// @Router /reminders/{id}/done [post]
// @Security BearerAuth
func (h *ReminderHandler) MarkReminderDone(c *gin.Context) {
	var payload ReminderDonePayload
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			utils.RespondValidationError(c, err.Error())
			return
		}
	}
	if err := h.tasks.MarkReminderDone(actorFromContext(c), c.Param("id"), payload.Note); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "任务已标记完成")
}

// DeleteReminder godoc
// @Summary 删除任务提醒
// @Description 仅管理员可删除
// @Tags reminders
// @Produce json
// @Param id path string true "提醒 id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.APIErrorResponse "权限不足"
// @Router /reminders/{id} [delete]
// @Security BearerAuth
func (h *ReminderHandler) DeleteReminder(c *gin.Context) {
	if err := h.tasks.DeleteReminder(actorFromContext(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "任务提醒删除成功")
}
