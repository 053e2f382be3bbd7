package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sim_inventory/internal/models"
	"github.com/sim_inventory/internal/repositories"
	"github.com/sim_inventory/pkg/utils"
)

// UserHandler 封装了用户管理相关的 HTTP 处理逻辑
type UserHandler struct {
	userRepo repositories.UserRepository
}

// NewUserHandler 创建一个新的 UserHandler 实例
func NewUserHandler(userRepo repositories.UserRepository) *UserHandler {
	return &UserHandler{userRepo: userRepo}
}

// ListUsers godoc
// @Summary 获取用户列表
// @Description 仅管理员可查看全部用户
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]UserInfo}
// @Failure 403 {object} utils.APIErrorResponse "权限不足"
// @Router /users [get]
// @Security BearerAuth
func (h *UserHandler) ListUsers(c *gin.Context) {
	if !actorFromContext(c).IsAdmin() {
		utils.RespondForbiddenError(c, "权限不足")
		return
	}
	users, err := h.userRepo.ListUsers()
	if err != nil {
		utils.RespondInternalServerError(c, "获取用户列表失败", err.Error())
		return
	}
	infos := make([]UserInfo, 0, len(users))
	for _, u := range users {
		infos = append(infos, UserInfo{UID: u.ID, Email: u.Email, DisplayName: u.DisplayName, Role: u.Role})
	}
	utils.RespondSuccess(c, http.StatusOK, infos, "")
}

// ListEmployeeNames godoc
// @Summary 获取员工显示名列表
// @Description 供号码分配与任务指派的下拉选择使用，所有登录用户可见
// @Tags users
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]string}
// @Router /users/employees [get]
// @Security BearerAuth
func (h *UserHandler) ListEmployeeNames(c *gin.Context) {
	users, err := h.userRepo.ListUsers()
	if err != nil {
		utils.RespondInternalServerError(c, "获取用户列表失败", err.Error())
		return
	}
	names := make([]string, 0, len(users))
	for _, u := range users {
		if u.Role == models.RoleEmployee {
			names = append(names, u.DisplayName)
		}
	}
	utils.RespondSuccess(c, http.StatusOK, names, "")
}

// UpdateRolePayload 角色更新请求体
type UpdateRolePayload struct {
	Role string `json:"role" binding:"required,oneof=admin employee"`
}

// UpdateUserRole godoc
// @Summary 更新用户角色
// @Description 仅管理员可操作，不能修改自己的角色
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "用户 id"
// @Param payload body UpdateRolePayload true "目标角色"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.APIErrorResponse "权限不足"
// @Failure 404 {object} utils.APIErrorResponse "用户未找到"
// @Router /users/{id}/role [patch]
// @Security BearerAuth
func (h *UserHandler) UpdateUserRole(c *gin.Context) {
	actor := actorFromContext(c)
	if !actor.IsAdmin() {
		utils.RespondForbiddenError(c, "权限不足")
		return
	}
	targetID := c.Param("id")
	if targetID == actor.UID {
		utils.RespondForbiddenError(c, "不能修改自己的角色")
		return
	}
	var payload UpdateRolePayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.userRepo.UpdateUserRole(targetID, payload.Role); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "用户角色更新成功")
}

// DeleteUser godoc
// @Summary 删除用户
// @Description 仅管理员可操作，不能删除自己
// @Tags users
// @Produce json
// @Param id path string true "用户 id"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.APIErrorResponse "权限不足"
// @Failure 404 {object} utils.APIErrorResponse "用户未找到"
// @Router /users/{id} [delete]
// @Security BearerAuth
func (h *UserHandler) DeleteUser(c *gin.Context) {
	actor := actorFromContext(c)
	if !actor.IsAdmin() {
		utils.RespondForbiddenError(c, "权限不足")
		return
	}
	targetID := c.Param("id")
	if targetID == actor.UID {
		utils.RespondForbiddenError(c, "不能删除自己的账号")
		return
	}
	if err := h.userRepo.DeleteUser(targetID); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "用户删除成功")
}
