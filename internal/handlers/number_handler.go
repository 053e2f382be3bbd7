package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sim_inventory/internal/models"
	"github.com/sim_inventory/internal/services"
	"github.com/sim_inventory/internal/store"
	"github.com/sim_inventory/pkg/utils"
)

// NumberHandler 封装了主库存号码相关的 HTTP 处理逻辑
type NumberHandler struct {
	lifecycle services.LifecycleService
	importSvc services.ImportService
	store     *store.Store
}

// NewNumberHandler 创建一个新的 NumberHandler 实例
func NewNumberHandler(lifecycle services.LifecycleService, importSvc services.ImportService, st *store.Store) *NumberHandler {
	return &NumberHandler{lifecycle: lifecycle, importSvc: importSvc, store: st}
}

// NumberPayload 是用于绑定和验证新增号码请求的临时结构体。
// 日期字段为字符串，支持 DD-MM-YYYY 等多种格式。
type NumberPayload struct {
	Mobile          string  `json:"mobile" binding:"required"`
	Status          string  `json:"status" binding:"required,oneof=RTS Non-RTS"`
	RTSDate         string  `json:"rtsDate"`
	NumberType      string  `json:"numberType" binding:"omitempty,oneof=Prepaid Postpaid COCP"`
	SafeCustodyDate string  `json:"safeCustodyDate"`
	AccountName     string  `json:"accountName"`
	OwnershipType   string  `json:"ownershipType" binding:"omitempty,oneof=Individual Partnership"`
	PartnerName     string  `json:"partnerName"`
	UploadStatus    string  `json:"uploadStatus" binding:"omitempty,oneof=Pending Done"`
	PurchaseFrom    string  `json:"purchaseFrom"`
	PurchasePrice   float64 `json:"purchasePrice" binding:"gte=0"`
	SalePrice       float64 `json:"salePrice" binding:"gte=0"`
	PurchaseDate    string  `json:"purchaseDate" binding:"required"`
	CurrentLocation string  `json:"currentLocation"`
	LocationType    string  `json:"locationType" binding:"omitempty,oneof=Store Employee Dealer"`
	Notes           string  `json:"notes"`
}

func (p NumberPayload) toNewNumberData() (services.NewNumberData, error) {
	data := services.NewNumberData{
		Mobile:          p.Mobile,
		Status:          p.Status,
		NumberType:      p.NumberType,
		AccountName:     p.AccountName,
		OwnershipType:   p.OwnershipType,
		PartnerName:     p.PartnerName,
		UploadStatus:    p.UploadStatus,
		PurchaseFrom:    p.PurchaseFrom,
		PurchasePrice:   p.PurchasePrice,
		SalePrice:       p.SalePrice,
		CurrentLocation: p.CurrentLocation,
		LocationType:    p.LocationType,
		Notes:           p.Notes,
	}
	purchaseDate, err := utils.ParseDate(p.PurchaseDate)
	if err != nil {
		return data, err
	}
	data.PurchaseDate = purchaseDate
	if p.RTSDate != "" {
		rtsDate, err := utils.ParseDate(p.RTSDate)
		if err != nil {
			return data, err
		}
		data.RTSDate = &rtsDate
	}
	if p.SafeCustodyDate != "" {
		custody, err := utils.ParseDate(p.SafeCustodyDate)
		if err != nil {
			return data, err
		}
		data.SafeCustodyDate = &custody
	}
	return data, nil
}

// NumberListResponse 主库存列表响应，附带最近被自动转 RTS 的 id 供界面高亮
type NumberListResponse struct {
	Numbers            []models.NumberRecord `json:"numbers"`
	RecentlyAutoRtsIDs []string              `json:"recentlyAutoRtsIds"`
}

// ListNumbers godoc
// @Summary 获取主库存号码列表
// @Description 管理员看到全部号码，员工只看到分配给自己的号码
// @Tags numbers
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=NumberListResponse}
// @Router /numbers [get]
// @Security BearerAuth
func (h *NumberHandler) ListNumbers(c *gin.Context) {
	actor := actorFromContext(c)
	numbers := h.store.Numbers()
	if !actor.IsAdmin() {
		filtered := make([]models.NumberRecord, 0, len(numbers))
		for _, n := range numbers {
			if n.AssignedTo == actor.DisplayName {
				filtered = append(filtered, n)
			}
		}
		numbers = filtered
	}

	var autoRts []string
	for _, n := range numbers {
		if h.store.RecentlyAutoRts(n.ID) {
			autoRts = append(autoRts, n.ID)
		}
	}
	utils.RespondSuccess(c, http.StatusOK, NumberListResponse{Numbers: numbers, RecentlyAutoRtsIDs: autoRts}, "")
}

// CreateNumber godoc
// @Summary 手工添加一个号码
// @Description 校验格式、条件必填与全局唯一性后入库
// @Tags numbers
// @Accept json
// @Produce json
// @Param number body NumberPayload true "号码信息"
// @Success 201 {object} utils.SuccessResponse{data=models.NumberRecord}
// @Failure 400 {object} utils.APIErrorResponse "请求参数错误或数据校验失败"
// @Failure 409 {object} utils.APIErrorResponse "手机号码已存在"
// @Router /numbers [post]
// @Security BearerAuth
func (h *NumberHandler) CreateNumber(c *gin.Context) {
	var payload NumberPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	data, err := payload.toNewNumberData()
	if err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	record, err := h.lifecycle.AddNumber(actorFromContext(c), data)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, record, "号码添加成功")
}

// ParseMultiPayload 自由文本多号码输入
type ParseMultiPayload struct {
	Input string `json:"input" binding:"required"`
}

// ParseMultiNumberInput godoc
// @Summary 分拣自由文本多号码输入
// @Description 按逗号/换行切分并分拣为 valid/invalidFormat/existingDuplicates/inputDuplicates 四桶，不落库
// @Tags numbers
// @Accept json
// @Produce json
// @Param input body ParseMultiPayload true "原始文本"
// @Success 200 {object} utils.SuccessResponse{data=services.MultiNumberBuckets}
// @Router /numbers/parse-input [post]
// @Security BearerAuth
func (h *NumberHandler) ParseMultiNumberInput(c *gin.Context) {
	var payload ParseMultiPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	buckets := h.importSvc.ParseMultiNumberInput(payload.Input)
	utils.RespondSuccess(c, http.StatusOK, buckets, "")
}

// MultiNumberPayload 批量添加多号码请求：一份共享属性加上已分拣通过的号码列表
type MultiNumberPayload struct {
	Data         NumberPayload `json:"data" binding:"required"`
	ValidMobiles []string      `json:"validMobiles" binding:"required,min=1"`
}

// AddMultipleNumbers godoc
// @Summary 批量添加多个号码
// @Description 将已通过分拣的号码以同一份属性在单个事务内入库，序号连续分配
// @Tags numbers
// @Accept json
// @Produce json
// @Param payload body MultiNumberPayload true "共享属性与号码列表"
// @Success 201 {object} utils.SuccessResponse
// @Failure 400 {object} utils.APIErrorResponse
// @Router /numbers/multi [post]
// @Security BearerAuth
func (h *NumberHandler) AddMultipleNumbers(c *gin.Context) {
	var payload MultiNumberPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	data, err := payload.Data.toNewNumberData()
	if err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	added, err := h.lifecycle.AddMultipleNumbers(actorFromContext(c), data, payload.ValidMobiles)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusCreated, gin.H{"added": added}, "批量添加成功")
}

// DeleteNumbers godoc
// @Summary 删除主库存号码
// @Description 仅管理员可用，硬删除并记录受影响的号码清单
// @Tags numbers
// @Accept json
// @Produce json
// @Param payload body IDsPayload true "要删除的 id 列表"
// @Success 200 {object} utils.SuccessResponse
// @Failure 403 {object} utils.APIErrorResponse "权限不足"
// @Router /numbers [delete]
// @Security BearerAuth
func (h *NumberHandler) DeleteNumbers(c *gin.Context) {
	var payload IDsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.lifecycle.DeleteNumbers(actorFromContext(c), payload.IDs); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "号码删除成功")
}

// StatusPayload RTS 状态更新请求
type StatusPayload struct {
	Status  string `json:"status" binding:"required,oneof=RTS Non-RTS"`
	RTSDate string `json:"rtsDate"`
	Note    string `json:"note"`
}

// UpdateNumberStatus godoc
// @Summary 更新号码的 RTS 状态
// @Description 转为 RTS 时清空 rtsDate，转为 Non-RTS 时必须提供 rtsDate
// @Tags numbers
// @Accept json
// @Produce json
// @Param id path string true "号码 id"
// @Param payload body StatusPayload true "状态与日期"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.APIErrorResponse "号码记录未找到"
// @Router /numbers/{id}/status [patch]
// @Security BearerAuth
func (h *NumberHandler) UpdateNumberStatus(c *gin.Context) {
	var payload StatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	var rtsDate *time.Time
	if payload.RTSDate != "" {
		parsed, err := utils.ParseDate(payload.RTSDate)
		if err != nil {
			utils.RespondValidationError(c, err.Error())
			return
		}
		rtsDate = &parsed
	}
	err := h.lifecycle.UpdateNumberStatus(actorFromContext(c), c.Param("id"), payload.Status, rtsDate, payload.Note)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "状态更新成功")
}

// UploadStatusPayload 上传状态更新请求
type UploadStatusPayload struct {
	UploadStatus string `json:"uploadStatus" binding:"required,oneof=Pending Done"`
}

// UpdateUploadStatus godoc
// @Summary 更新单个号码的上传状态
// @Tags numbers
// @Accept json
// @Produce json
// @Param id path string true "号码 id"
// @Param payload body UploadStatusPayload true "上传状态"
// @Success 200 {object} utils.SuccessResponse
// @Router /numbers/{id}/upload-status [patch]
// @Security BearerAuth
func (h *NumberHandler) UpdateUploadStatus(c *gin.Context) {
	var payload UploadStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	err := h.lifecycle.UpdateUploadStatus(actorFromContext(c), c.Param("id"), payload.UploadStatus)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "上传状态更新成功")
}

// BulkUploadStatusPayload 批量上传状态更新请求
type BulkUploadStatusPayload struct {
	IDs          []string `json:"ids" binding:"required,min=1"`
	UploadStatus string   `json:"uploadStatus" binding:"required,oneof=Pending Done"`
}

// BulkUpdateUploadStatus godoc
// @Summary 批量更新上传状态
// @Tags numbers
// @Accept json
// @Produce json
// @Param payload body BulkUploadStatusPayload true "id 列表与上传状态"
// @Success 200 {object} utils.SuccessResponse
// @Router /numbers/upload-status [patch]
// @Security BearerAuth
func (h *NumberHandler) BulkUpdateUploadStatus(c *gin.Context) {
	var payload BulkUploadStatusPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	err := h.lifecycle.BulkUpdateUploadStatus(actorFromContext(c), payload.IDs, payload.UploadStatus)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "上传状态批量更新成功")
}

// AssignPayload 分配号码给员工的请求
type AssignPayload struct {
	IDs             []string `json:"ids" binding:"required,min=1"`
	EmployeeName    string   `json:"employeeName" binding:"required"`
	LocationType    string   `json:"locationType" binding:"required,oneof=Store Employee Dealer"`
	CurrentLocation string   `json:"currentLocation" binding:"required"`
}

// AssignNumbers godoc
// @Summary 将号码分配给员工
// @Description 同时更新 assignedTo/name 与存放位置
// @Tags numbers
// @Accept json
// @Produce json
// @Param payload body AssignPayload true "分配信息"
// @Success 200 {object} utils.SuccessResponse
// @Router /numbers/assign [post]
// @Security BearerAuth
func (h *NumberHandler) AssignNumbers(c *gin.Context) {
	var payload AssignPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	err := h.lifecycle.AssignNumbersToEmployee(actorFromContext(c), payload.IDs, payload.EmployeeName,
		services.Location{LocationType: payload.LocationType, CurrentLocation: payload.CurrentLocation})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "号码分配成功")
}

// LocationPayload 批量更新存放位置的请求
type LocationPayload struct {
	IDs             []string `json:"ids" binding:"required,min=1"`
	LocationType    string   `json:"locationType" binding:"required,oneof=Store Employee Dealer"`
	CurrentLocation string   `json:"currentLocation" binding:"required"`
}

// UpdateNumberLocation godoc
// @Summary 批量更新号码的存放位置
// @Tags numbers
// @Accept json
// @Produce json
// @Param payload body LocationPayload true "位置信息"
// @Success 200 {object} utils.SuccessResponse
// @Router /numbers/location [patch]
// @Security BearerAuth
func (h *NumberHandler) UpdateNumberLocation(c *gin.Context) {
	var payload LocationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	err := h.lifecycle.UpdateNumberLocation(actorFromContext(c), payload.IDs,
		services.Location{LocationType: payload.LocationType, CurrentLocation: payload.CurrentLocation})
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "位置更新成功")
}

// CheckInNumber godoc
// @Summary 号码入库签到
// @Description 将 checkInDate 置为当前时间
// @Tags numbers
// @Produce json
// @Param id path string true "号码 id"
// @Success 200 {object} utils.SuccessResponse
// @Router /numbers/{id}/check-in [post]
// @Security BearerAuth
func (h *NumberHandler) CheckInNumber(c *gin.Context) {
	if err := h.lifecycle.CheckInNumber(actorFromContext(c), c.Param("id")); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "签到成功")
}

// SafeCustodyPayload 托管日期更新请求
type SafeCustodyPayload struct {
	SafeCustodyDate string `json:"safeCustodyDate" binding:"required"`
}

// UpdateSafeCustodyDate godoc
// @Summary 更新单个号码的托管日期
// @Tags numbers
// @Accept json
// @Produce json
// @Param id path string true "号码 id"
// @Param payload body SafeCustodyPayload true "托管日期"
// @Success 200 {object} utils.SuccessResponse
// @Router /numbers/{id}/safe-custody-date [patch]
// @Security BearerAuth
func (h *NumberHandler) UpdateSafeCustodyDate(c *gin.Context) {
	var payload SafeCustodyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	newDate, err := utils.ParseDate(payload.SafeCustodyDate)
	if err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.lifecycle.UpdateSafeCustodyDate(actorFromContext(c), c.Param("id"), newDate); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "托管日期更新成功")
}

// BulkSafeCustodyPayload 批量托管日期更新请求
type BulkSafeCustodyPayload struct {
	IDs             []string `json:"ids" binding:"required,min=1"`
	SafeCustodyDate string   `json:"safeCustodyDate" binding:"required"`
}

// BulkUpdateSafeCustodyDate godoc
// @Summary 批量更新托管日期
// @Tags numbers
// @Accept json
// @Produce json
// @Param payload body BulkSafeCustodyPayload true "id 列表与托管日期"
// @Success 200 {object} utils.SuccessResponse
// @Router /numbers/safe-custody-date [patch]
// @Security BearerAuth
func (h *NumberHandler) BulkUpdateSafeCustodyDate(c *gin.Context) {
	var payload BulkSafeCustodyPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	newDate, err := utils.ParseDate(payload.SafeCustodyDate)
	if err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}
	if err := h.lifecycle.BulkUpdateSafeCustodyDate(actorFromContext(c), payload.IDs, newDate); err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, nil, "托管日期批量更新成功")
}

// CheckDuplicate godoc
// @Summary 查询手机号码是否已存在
// @Description 对五个号码集合的并集做全局唯一性检查
// @Tags numbers
// @Produce json
// @Param mobile query string true "手机号码"
// @Param excludeId query string false "排除的记录 id"
// @Success 200 {object} utils.SuccessResponse
// @Router /numbers/duplicate-check [get]
// @Security BearerAuth
func (h *NumberHandler) CheckDuplicate(c *gin.Context) {
	mobile := c.Query("mobile")
	if mobile == "" {
		utils.RespondValidationError(c, "mobile 参数不能为空")
		return
	}
	duplicate := h.lifecycle.IsMobileNumberDuplicate(mobile, c.Query("excludeId"))
	utils.RespondSuccess(c, http.StatusOK, gin.H{"duplicate": duplicate}, "")
}
