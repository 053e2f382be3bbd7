package handlers

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sim_inventory/internal/services"
	"github.com/sim_inventory/internal/store"
	"github.com/sim_inventory/pkg/utils"
	"github.com/xuri/excelize/v2"
)

// importHeaders 是 xlsx 导入/导出的列头契约，顺序固定
var importHeaders = []string{
	"Mobile", "NumberType", "PurchaseFrom", "PurchasePrice", "PurchaseDate",
	"CurrentLocation", "LocationType", "Status", "OwnershipType",
	"SalePrice", "Notes", "UploadStatus", "PartnerName", "RTSDate",
	"SafeCustodyDate", "AccountName",
}

// ImportHandler 封装了 xlsx 批量导入与导出的 HTTP 处理逻辑
type ImportHandler struct {
	importSvc services.ImportService
	store     *store.Store
}

// NewImportHandler 创建一个新的 ImportHandler 实例
func NewImportHandler(importSvc services.ImportService, st *store.Store) *ImportHandler {
	return &ImportHandler{importSvc: importSvc, store: st}
}

// ImportNumbers godoc
// @Summary 从 xlsx 文件批量导入号码
// @Description 读取第一个工作表，第一行为列头；逐行校验并返回入库与失败的明细
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "xlsx 文件"
// @Success 200 {object} utils.SuccessResponse{data=services.BulkAddResult}
// @Failure 400 {object} utils.APIErrorResponse "文件缺失或无法解析"
// @Router /import/numbers [post]
// @Security BearerAuth
func (h *ImportHandler) ImportNumbers(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.RespondValidationError(c, "缺少上传文件")
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		utils.RespondValidationError(c, "无法读取上传文件")
		return
	}
	defer file.Close()

	workbook, err := excelize.OpenReader(file)
	if err != nil {
		utils.RespondValidationError(c, "无法解析 xlsx 文件")
		return
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		utils.RespondValidationError(c, "xlsx 文件中没有工作表")
		return
	}
	cells, err := workbook.GetRows(sheets[0])
	if err != nil {
		utils.RespondValidationError(c, "无法读取工作表内容")
		return
	}
	if len(cells) < 2 {
		utils.RespondValidationError(c, "工作表中没有数据行")
		return
	}

	headers := cells[0]
	rows := make([]services.ImportRow, 0, len(cells)-1)
	for _, rawRow := range cells[1:] {
		row := services.ImportRow{}
		empty := true
		for i, header := range headers {
			if i < len(rawRow) {
				row[header] = rawRow[i]
				if rawRow[i] != "" {
					empty = false
				}
			}
		}
		if !empty {
			rows = append(rows, row)
		}
	}

	result, err := h.importSvc.BulkAddNumbers(actorFromContext(c), rows)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	utils.RespondSuccess(c, http.StatusOK, result,
		fmt.Sprintf("导入完成：%d 条入库，%d 条失败", len(result.ValidRecords), len(result.FailedRecords)))
}

// ExportNumbers godoc
// @Summary 导出主库存号码为 xlsx 文件
// @Description 列头与导入契约一致，可直接修改后回传导入
// @Tags import
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success 200 {file} file "xlsx 文件"
// @Router /export/numbers [get]
// @Security BearerAuth
func (h *ImportHandler) ExportNumbers(c *gin.Context) {
	workbook := excelize.NewFile()
	defer workbook.Close()

	const sheet = "Numbers"
	workbook.SetSheetName(workbook.GetSheetName(0), sheet)

	for i, header := range importHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		workbook.SetCellValue(sheet, cell, header)
	}

	formatDate := func(t *time.Time) string {
		if t == nil {
			return ""
		}
		return t.Format("02-01-2006")
	}

	for rowIdx, n := range h.store.Numbers() {
		purchaseDate := n.PurchaseDate
		values := []interface{}{
			n.Mobile, n.NumberType, n.PurchaseFrom, n.PurchasePrice,
			formatDate(&purchaseDate), n.CurrentLocation, n.LocationType,
			n.Status, n.OwnershipType, n.SalePrice, n.Notes, n.UploadStatus,
			n.PartnerName, formatDate(n.RTSDate), formatDate(n.SafeCustodyDate),
			n.AccountName,
		}
		for colIdx, value := range values {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			workbook.SetCellValue(sheet, cell, value)
		}
	}

	filename := fmt.Sprintf("numbers_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		utils.RespondInternalServerError(c, "导出文件写入失败", err.Error())
	}
}

// ExportFailedRows godoc
// @Summary 将导入失败的行导出为 xlsx 文件
// @Description 前端把上次导入返回的 failedRecords 原样回传，生成带失败原因列的报表
// @Tags import
// @Accept json
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param payload body FailedRowsPayload true "失败行列表"
// @Success 200 {file} file "xlsx 文件"
// @Router /export/failed-rows [post]
// @Security BearerAuth
func (h *ImportHandler) ExportFailedRows(c *gin.Context) {
	var payload FailedRowsPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.RespondValidationError(c, err.Error())
		return
	}

	workbook := excelize.NewFile()
	defer workbook.Close()

	const sheet = "FailedRows"
	workbook.SetSheetName(workbook.GetSheetName(0), sheet)

	headers := append(append([]string{}, importHeaders...), "Reason")
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		workbook.SetCellValue(sheet, cell, header)
	}
	for rowIdx, failed := range payload.FailedRecords {
		for colIdx, header := range importHeaders {
			cell, _ := excelize.CoordinatesToCellName(colIdx+1, rowIdx+2)
			workbook.SetCellValue(sheet, cell, failed.Row[header])
		}
		cell, _ := excelize.CoordinatesToCellName(len(importHeaders)+1, rowIdx+2)
		workbook.SetCellValue(sheet, cell, failed.Reason)
	}

	filename := fmt.Sprintf("failed_rows_%s.xlsx", time.Now().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	c.Header("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	if err := workbook.Write(c.Writer); err != nil {
		utils.RespondInternalServerError(c, "导出文件写入失败", err.Error())
	}
}

// FailedRowsPayload 失败行导出的请求体
type FailedRowsPayload struct {
	FailedRecords []services.FailedRow `json:"failedRecords" binding:"required"`
}
