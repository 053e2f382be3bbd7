package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sim_inventory/internal/models"
	"github.com/sim_inventory/internal/repositories"
	"github.com/sim_inventory/internal/store"
	"github.com/sim_inventory/pkg/utils"
)

// 生命周期操作的业务错误
var (
	ErrNumberNotFound         = errors.New("号码记录未找到")
	ErrSaleNotFound           = errors.New("销售记录未找到")
	ErrPortOutNotFound        = errors.New("携出记录未找到")
	ErrPreBookingNotFound     = errors.New("预订记录未找到")
	ErrDealerPurchaseNotFound = errors.New("经销商购买记录未找到")
	ErrDuplicateMobile        = errors.New("该手机号码已存在于系统中")
	ErrPermissionDenied       = errors.New("权限不足，无法执行该操作")
	ErrInvalidStatusValue     = errors.New("号码状态必须为 RTS 或 Non-RTS")
	ErrInvalidMarkValue       = errors.New("状态标记必须为 Pending 或 Done")
	ErrInvalidUpcValue        = errors.New("UPC 状态必须为 Pending 或 Generated")
	ErrInvalidLocationType    = errors.New("位置类型必须为 Store、Employee 或 Dealer")
	ErrRtsDateRequired        = errors.New("Non-RTS 状态必须提供 RTS 日期")
	ErrSafeCustodyRequired    = errors.New("COCP 类型必须提供托管日期")
	ErrAccountNameRequired    = errors.New("COCP 类型必须提供账户名")
	ErrPartnerNameRequired    = errors.New("合伙类型必须提供合伙人姓名")
	ErrUpcNotGenerated        = errors.New("UPC 尚未生成，无法携出")
	ErrNoEligibleRecords      = errors.New("所选记录中没有 UPC 已生成的记录")
	ErrEmptySelection         = errors.New("未选择任何记录")
)

// PortOutPaymentPendingError 表示携出删除被付款未完成的记录整体阻断
type PortOutPaymentPendingError struct {
	Blocked int
}

func (e *PortOutPaymentPendingError) Error() string {
	return fmt.Sprintf("有 %d 条记录付款状态为 Pending，整批删除被阻止", e.Blocked)
}

// BulkPortOutResult 批量携出的结果：迁移数与因 UPC 未生成被跳过的数量
type BulkPortOutResult struct {
	Moved   int `json:"moved"`
	Skipped int `json:"skipped"`
}

// DealerPurchaseDeleteResult 经销商购买删除的结果：删除数与不合格被跳过的数量
type DealerPurchaseDeleteResult struct {
	Deleted int `json:"deleted"`
	Skipped int `json:"skipped"`
}

// NewNumberData 手工添加号码的输入
type NewNumberData struct {
	Mobile          string     `json:"mobile"`
	Status          string     `json:"status"`
	RTSDate         *time.Time `json:"rtsDate"`
	NumberType      string     `json:"numberType"`
	SafeCustodyDate *time.Time `json:"safeCustodyDate"`
	AccountName     string     `json:"accountName"`
	OwnershipType   string     `json:"ownershipType"`
	PartnerName     string     `json:"partnerName"`
	UploadStatus    string     `json:"uploadStatus"`
	PurchaseFrom    string     `json:"purchaseFrom"`
	PurchasePrice   float64    `json:"purchasePrice"`
	SalePrice       float64    `json:"salePrice"`
	PurchaseDate    time.Time  `json:"purchaseDate"`
	CurrentLocation string     `json:"currentLocation"`
	LocationType    string     `json:"locationType"`
	Notes           string     `json:"notes"`
}

// SaleDetails 售出时由调用方提供的成交信息
type SaleDetails struct {
	SalePrice float64   `json:"salePrice"`
	SoldTo    string    `json:"soldTo"`
	SaleDate  time.Time `json:"saleDate"`
}

// SaleStatuses 销售记录的可更新状态对
type SaleStatuses struct {
	PaymentStatus string `json:"paymentStatus"`
	UpcStatus     string `json:"upcStatus"`
}

// Location 号码的存放位置
type Location struct {
	LocationType    string `json:"locationType"`
	CurrentLocation string `json:"currentLocation"`
}

// NewDealerPurchaseData 添加经销商购买的输入
type NewDealerPurchaseData struct {
	Mobile     string  `json:"mobile"`
	DealerName string  `json:"dealerName"`
	Price      float64 `json:"price"`
}

// DealerPurchaseStatuses 经销商购买记录的三个可更新状态
type DealerPurchaseStatuses struct {
	PaymentStatus string `json:"paymentStatus"`
	PortOutStatus string `json:"portOutStatus"`
	UpcStatus     string `json:"upcStatus"`
}

// LifecycleService 定义号码生命周期状态机的全部操作。
// 每个跨集合迁移都在单个事务内提交，提交成功后追加操作日志并刷新镜像。
type LifecycleService interface {
	// 主库存
	AddNumber(actor Actor, data NewNumberData) (*models.NumberRecord, error)
	AddMultipleNumbers(actor Actor, data NewNumberData, validMobiles []string) (int, error)
	DeleteNumbers(actor Actor, ids []string) error
	UpdateNumberStatus(actor Actor, id string, status string, rtsDate *time.Time, note string) error
	UpdateUploadStatus(actor Actor, id string, uploadStatus string) error
	BulkUpdateUploadStatus(actor Actor, ids []string, uploadStatus string) error
	AssignNumbersToEmployee(actor Actor, ids []string, employeeName string, location Location) error
	UpdateNumberLocation(actor Actor, ids []string, location Location) error
	CheckInNumber(actor Actor, id string) error
	UpdateSafeCustodyDate(actor Actor, id string, newDate time.Time) error
	BulkUpdateSafeCustodyDate(actor Actor, ids []string, newDate time.Time) error

	// 销售
	SellNumber(actor Actor, id string, details SaleDetails) error
	BulkSellNumbers(actor Actor, ids []string, details SaleDetails) error
	CancelSale(actor Actor, saleID string) error
	UpdateSaleStatuses(actor Actor, id string, statuses SaleStatuses) error
	BulkUpdateUpcStatus(actor Actor, saleIDs []string, upcStatus string) error

	// 携出
	MarkSaleAsPortedOut(actor Actor, saleID string) error
	BulkMarkAsPortedOut(actor Actor, saleIDs []string) (*BulkPortOutResult, error)
	DeletePortOuts(actor Actor, ids []string) error
	UpdatePortOutStatus(actor Actor, id string, paymentStatus string) error
	BulkUpdatePortOutPaymentStatus(actor Actor, ids []string, paymentStatus string) error

	// 预订
	MarkAsPreBooked(actor Actor, numberIDs []string) error
	CancelPreBooking(actor Actor, preBookingID string) error
	SellPreBookedNumber(actor Actor, preBookingID string, details SaleDetails) error
	BulkSellPreBookedNumbers(actor Actor, preBookingIDs []string, details SaleDetails) error

	// 经销商购买
	AddDealerPurchase(actor Actor, data NewDealerPurchaseData) error
	UpdateDealerPurchase(actor Actor, id string, statuses DealerPurchaseStatuses) error
	DeleteDealerPurchases(actor Actor, ids []string) (*DealerPurchaseDeleteResult, error)

	// 查重
	IsMobileNumberDuplicate(mobile string, excludeID string) bool
}

type lifecycleService struct {
	store    *store.Store
	executor repositories.BatchExecutor
}

// NewLifecycleService 创建生命周期服务实例
func NewLifecycleService(st *store.Store, executor repositories.BatchExecutor) LifecycleService {
	return &lifecycleService{store: st, executor: executor}
}

// commitAndLog 提交批次，成功后写操作日志并刷新镜像
func (s *lifecycleService) commitAndLog(actor Actor, batch *repositories.Batch, action, description string) error {
	if err := s.executor.Commit(batch); err != nil {
		return err
	}
	logActivity(s.store, s.executor, actor.Name(), action, description, actor.UID)
	return s.store.Refresh()
}

// validateNewNumber 校验手工添加号码的条件必填规则
func validateNewNumber(data NewNumberData) error {
	if err := utils.ValidateMobileNumber(data.Mobile); err != nil {
		return err
	}
	if !models.IsValidStatus(data.Status) {
		return ErrInvalidStatusValue
	}
	if data.Status == models.StatusNonRTS && data.RTSDate == nil {
		return ErrRtsDateRequired
	}
	if data.NumberType == models.NumberTypeCOCP {
		if data.SafeCustodyDate == nil {
			return ErrSafeCustodyRequired
		}
		if strings.TrimSpace(data.AccountName) == "" {
			return ErrAccountNameRequired
		}
	}
	if data.OwnershipType == models.OwnershipPartnership && strings.TrimSpace(data.PartnerName) == "" {
		return ErrPartnerNameRequired
	}
	return nil
}

// buildNumberRecord 由输入构建一条新的库存号码文档
func (s *lifecycleService) buildNumberRecord(actor Actor, data NewNumberData, mobile string, srNo int) models.NumberRecord {
	record := models.NumberRecord{
		ID:              uuid.NewString(),
		SrNo:            srNo,
		Mobile:          mobile,
		Sum:             utils.CalculateDigitalRoot(mobile),
		Status:          data.Status,
		UploadStatus:    data.UploadStatus,
		NumberType:      data.NumberType,
		PurchaseFrom:    data.PurchaseFrom,
		PurchasePrice:   data.PurchasePrice,
		SalePrice:       data.SalePrice,
		Name:            actor.Name(),
		UpcStatus:       models.UpcPending,
		CurrentLocation: data.CurrentLocation,
		LocationType:    data.LocationType,
		AssignedTo:      actor.Name(),
		PurchaseDate:    data.PurchaseDate,
		Notes:           data.Notes,
		CreatedBy:       actor.UID,
		OwnershipType:   data.OwnershipType,
	}
	if record.UploadStatus == "" {
		record.UploadStatus = models.MarkPending
	}
	if record.NumberType == "" {
		record.NumberType = models.NumberTypePrepaid
	}
	if record.LocationType == "" {
		record.LocationType = models.LocationStore
	}
	if record.OwnershipType == "" {
		record.OwnershipType = models.OwnershipIndividual
	}
	if data.Status == models.StatusNonRTS {
		record.RTSDate = data.RTSDate
	}
	if record.NumberType == models.NumberTypeCOCP {
		record.SafeCustodyDate = data.SafeCustodyDate
		record.AccountName = data.AccountName
	}
	if record.OwnershipType == models.OwnershipPartnership {
		record.PartnerName = data.PartnerName
	}
	return record
}

func (s *lifecycleService) AddNumber(actor Actor, data NewNumberData) (*models.NumberRecord, error) {
	if err := validateNewNumber(data); err != nil {
		return nil, err
	}
	mobile := strings.TrimSpace(data.Mobile)
	if s.store.IsMobileNumberDuplicate(mobile, "") {
		return nil, ErrDuplicateMobile
	}

	record := s.buildNumberRecord(actor, data, mobile, s.store.NextSrNo(models.CollectionNumbers))
	batch := repositories.NewBatch().Set(models.CollectionNumbers, record.ID, &record)
	if err := s.commitAndLog(actor, batch, "Added Number",
		fmt.Sprintf("Manually added new number %s", mobile)); err != nil {
		return nil, err
	}
	return &record, nil
}

// AddMultipleNumbers 将一组已通过查重的号码以同一份属性批量入库。
// validMobiles 来自 ParseMultiNumberInput 的 valid 桶。
func (s *lifecycleService) AddMultipleNumbers(actor Actor, data NewNumberData, validMobiles []string) (int, error) {
	if len(validMobiles) == 0 {
		return 0, ErrEmptySelection
	}
	if data.Status == models.StatusNonRTS && data.RTSDate == nil {
		return 0, ErrRtsDateRequired
	}

	srNo := s.store.NextSrNo(models.CollectionNumbers)
	batch := repositories.NewBatch()
	for _, mobile := range validMobiles {
		record := s.buildNumberRecord(actor, data, mobile, srNo)
		srNo++
		batch.Set(models.CollectionNumbers, record.ID, &record)
	}
	if err := s.commitAndLog(actor, batch, "Bulk Added Numbers",
		detailedDescription("Added", validMobiles)); err != nil {
		return 0, err
	}
	return len(validMobiles), nil
}

// DeleteNumbers 从主库存硬删除，仅管理员可用
func (s *lifecycleService) DeleteNumbers(actor Actor, ids []string) error {
	if !actor.IsAdmin() {
		return ErrPermissionDenied
	}
	if len(ids) == 0 {
		return ErrEmptySelection
	}
	var affected []string
	batch := repositories.NewBatch()
	for _, id := range ids {
		num := s.store.NumberByID(id)
		if num == nil {
			return ErrNumberNotFound
		}
		affected = append(affected, num.Mobile)
		batch.Delete(models.CollectionNumbers, id)
	}
	return s.commitAndLog(actor, batch, "Deleted Numbers",
		detailedDescription("Permanently deleted from master inventory:", affected))
}

func (s *lifecycleService) UpdateNumberStatus(actor Actor, id string, status string, rtsDate *time.Time, note string) error {
	if !models.IsValidStatus(status) {
		return ErrInvalidStatusValue
	}
	num := s.store.NumberByID(id)
	if num == nil {
		return ErrNumberNotFound
	}

	fields := map[string]interface{}{"status": status}
	if status == models.StatusRTS {
		fields["rts_date"] = nil
	} else {
		if rtsDate == nil {
			return ErrRtsDateRequired
		}
		fields["rts_date"] = rtsDate
	}
	if note != "" {
		fields["notes"] = strings.TrimSpace(num.Notes + "\n" + note)
	}

	batch := repositories.NewBatch().Update(models.CollectionNumbers, id, fields)
	return s.commitAndLog(actor, batch, "Updated RTS Status",
		fmt.Sprintf("Marked %s as %s", num.Mobile, status))
}

func (s *lifecycleService) UpdateUploadStatus(actor Actor, id string, uploadStatus string) error {
	if !models.IsValidMark(uploadStatus) {
		return ErrInvalidMarkValue
	}
	num := s.store.NumberByID(id)
	if num == nil {
		return ErrNumberNotFound
	}
	batch := repositories.NewBatch().Update(models.CollectionNumbers, id,
		map[string]interface{}{"upload_status": uploadStatus})
	return s.commitAndLog(actor, batch, "Updated Upload Status",
		fmt.Sprintf("Set upload status for %s to %s", num.Mobile, uploadStatus))
}

func (s *lifecycleService) BulkUpdateUploadStatus(actor Actor, ids []string, uploadStatus string) error {
	if !models.IsValidMark(uploadStatus) {
		return ErrInvalidMarkValue
	}
	if len(ids) == 0 {
		return ErrEmptySelection
	}
	var affected []string
	batch := repositories.NewBatch()
	for _, id := range ids {
		num := s.store.NumberByID(id)
		if num == nil {
			return ErrNumberNotFound
		}
		affected = append(affected, num.Mobile)
		batch.Update(models.CollectionNumbers, id, map[string]interface{}{"upload_status": uploadStatus})
	}
	return s.commitAndLog(actor, batch, "Bulk Updated Upload Status",
		detailedDescription(fmt.Sprintf("Updated upload status to %s for", uploadStatus), affected))
}

func (s *lifecycleService) AssignNumbersToEmployee(actor Actor, ids []string, employeeName string, location Location) error {
	if len(ids) == 0 {
		return ErrEmptySelection
	}
	if !models.IsValidLocationType(location.LocationType) {
		return ErrInvalidLocationType
	}
	fields := map[string]interface{}{
		"assigned_to":      employeeName,
		"name":             employeeName,
		"location_type":    location.LocationType,
		"current_location": location.CurrentLocation,
	}
	var affected []string
	batch := repositories.NewBatch()
	for _, id := range ids {
		num := s.store.NumberByID(id)
		if num == nil {
			return ErrNumberNotFound
		}
		affected = append(affected, num.Mobile)
		batch.Update(models.CollectionNumbers, id, fields)
	}
	return s.commitAndLog(actor, batch, "Assigned Numbers",
		detailedDescription(fmt.Sprintf("Assigned to %s:", employeeName), affected))
}

func (s *lifecycleService) UpdateNumberLocation(actor Actor, ids []string, location Location) error {
	if len(ids) == 0 {
		return ErrEmptySelection
	}
	if !models.IsValidLocationType(location.LocationType) {
		return ErrInvalidLocationType
	}
	fields := map[string]interface{}{
		"location_type":    location.LocationType,
		"current_location": location.CurrentLocation,
	}
	var affected []string
	batch := repositories.NewBatch()
	for _, id := range ids {
		num := s.store.NumberByID(id)
		if num == nil {
			return ErrNumberNotFound
		}
		affected = append(affected, num.Mobile)
		batch.Update(models.CollectionNumbers, id, fields)
	}
	return s.commitAndLog(actor, batch, "Updated Number Location",
		detailedDescription(fmt.Sprintf("Updated location to %s for", location.CurrentLocation), affected))
}

func (s *lifecycleService) CheckInNumber(actor Actor, id string) error {
	num := s.store.NumberByID(id)
	if num == nil {
		return ErrNumberNotFound
	}
	now := time.Now()
	batch := repositories.NewBatch().Update(models.CollectionNumbers, id,
		map[string]interface{}{"check_in_date": &now})
	return s.commitAndLog(actor, batch, "Checked In Number",
		fmt.Sprintf("Checked in SIM number %s.", num.Mobile))
}

func (s *lifecycleService) UpdateSafeCustodyDate(actor Actor, id string, newDate time.Time) error {
	num := s.store.NumberByID(id)
	if num == nil {
		return ErrNumberNotFound
	}
	batch := repositories.NewBatch().Update(models.CollectionNumbers, id,
		map[string]interface{}{"safe_custody_date": &newDate})
	return s.commitAndLog(actor, batch, "Updated Safe Custody Date",
		fmt.Sprintf("Updated Safe Custody Date for %s to %s", num.Mobile, newDate.Format("02-01-2006")))
}

func (s *lifecycleService) BulkUpdateSafeCustodyDate(actor Actor, ids []string, newDate time.Time) error {
	if len(ids) == 0 {
		return ErrEmptySelection
	}
	var affected []string
	batch := repositories.NewBatch()
	for _, id := range ids {
		num := s.store.NumberByID(id)
		if num == nil {
			return ErrNumberNotFound
		}
		affected = append(affected, num.Mobile)
		batch.Update(models.CollectionNumbers, id, map[string]interface{}{"safe_custody_date": &newDate})
	}
	return s.commitAndLog(actor, batch, "Bulk Updated Safe Custody Date",
		detailedDescription(fmt.Sprintf("Updated Safe Custody Date to %s for", newDate.Format("02-01-2006")), affected))
}

// buildSaleFromNumber 由库存号码构建销售文档：冻结快照、重算数字根、三个状态置 Pending
func buildSaleFromNumber(actor Actor, num models.NumberRecord, details SaleDetails, srNo int) models.SaleRecord {
	uploadStatus := num.UploadStatus
	if uploadStatus == "" {
		uploadStatus = models.MarkPending
	}
	return models.SaleRecord{
		ID:                 uuid.NewString(),
		SrNo:               srNo,
		Mobile:             num.Mobile,
		Sum:                utils.CalculateDigitalRoot(num.Mobile),
		SoldTo:             details.SoldTo,
		SalePrice:          details.SalePrice,
		PaymentStatus:      models.MarkPending,
		SaleDate:           details.SaleDate,
		UpcStatus:          models.UpcPending,
		PortOutStatus:      models.MarkPending,
		UploadStatus:       uploadStatus,
		CreatedBy:          actor.UID,
		OriginalNumberData: num.Snapshot(),
	}
}

func (s *lifecycleService) SellNumber(actor Actor, id string, details SaleDetails) error {
	num := s.store.NumberByID(id)
	if num == nil {
		return ErrNumberNotFound
	}
	sale := buildSaleFromNumber(actor, *num, details, s.store.NextSrNo(models.CollectionSales))
	batch := repositories.NewBatch().
		Set(models.CollectionSales, sale.ID, &sale).
		Delete(models.CollectionNumbers, id)
	return s.commitAndLog(actor, batch, "Sold Number",
		fmt.Sprintf("Sold number %s to %s for ₹%.0f", num.Mobile, details.SoldTo, details.SalePrice))
}

func (s *lifecycleService) BulkSellNumbers(actor Actor, ids []string, details SaleDetails) error {
	if len(ids) == 0 {
		return ErrEmptySelection
	}
	srNo := s.store.NextSrNo(models.CollectionSales)
	var affected []string
	batch := repositories.NewBatch()
	for _, id := range ids {
		num := s.store.NumberByID(id)
		if num == nil {
			return ErrNumberNotFound
		}
		sale := buildSaleFromNumber(actor, *num, details, srNo)
		srNo++
		affected = append(affected, num.Mobile)
		batch.Set(models.CollectionSales, sale.ID, &sale)
		batch.Delete(models.CollectionNumbers, id)
	}
	return s.commitAndLog(actor, batch, "Bulk Sold Numbers",
		detailedDescription(fmt.Sprintf("Sold to %s:", details.SoldTo), affected))
}

// CancelSale 按冻结快照还原到主库存，assignedTo 与 name 重置为 Unassigned
func (s *lifecycleService) CancelSale(actor Actor, saleID string) error {
	sale := s.store.SaleByID(saleID)
	if sale == nil {
		return ErrSaleNotFound
	}
	restored := sale.OriginalNumberData.Restore(uuid.NewString())
	restored.AssignedTo = models.Unassigned
	restored.Name = models.Unassigned

	batch := repositories.NewBatch().
		Set(models.CollectionNumbers, restored.ID, &restored).
		Delete(models.CollectionSales, saleID)
	return s.commitAndLog(actor, batch, "Cancelled Sale",
		fmt.Sprintf("Sale of number %s was cancelled and it was returned to inventory.", sale.Mobile))
}

func (s *lifecycleService) UpdateSaleStatuses(actor Actor, id string, statuses SaleStatuses) error {
	if !models.IsValidMark(statuses.PaymentStatus) {
		return ErrInvalidMarkValue
	}
	if !models.IsValidUpcStatus(statuses.UpcStatus) {
		return ErrInvalidUpcValue
	}
	sale := s.store.SaleByID(id)
	if sale == nil {
		return ErrSaleNotFound
	}
	batch := repositories.NewBatch().Update(models.CollectionSales, id, map[string]interface{}{
		"payment_status": statuses.PaymentStatus,
		"upc_status":     statuses.UpcStatus,
	})
	return s.commitAndLog(actor, batch, "Updated Sale Status",
		fmt.Sprintf("Updated sale for %s. Payment: %s, UPC: %s.", sale.Mobile, statuses.PaymentStatus, statuses.UpcStatus))
}

func (s *lifecycleService) BulkUpdateUpcStatus(actor Actor, saleIDs []string, upcStatus string) error {
	if !models.IsValidUpcStatus(upcStatus) {
		return ErrInvalidUpcValue
	}
	if len(saleIDs) == 0 {
		return ErrEmptySelection
	}
	var affected []string
	batch := repositories.NewBatch()
	for _, id := range saleIDs {
		sale := s.store.SaleByID(id)
		if sale == nil {
			return ErrSaleNotFound
		}
		affected = append(affected, sale.Mobile)
		batch.Update(models.CollectionSales, id, map[string]interface{}{"upc_status": upcStatus})
	}
	return s.commitAndLog(actor, batch, "Bulk Updated UPC Status",
		detailedDescription(fmt.Sprintf("Updated UPC status to %s for", upcStatus), affected))
}

// buildPortOutFromSale 由销售记录构建携出文档，字段原样携带，portOutDate 取当前时间
func buildPortOutFromSale(sale models.SaleRecord, srNo int) models.PortOutRecord {
	return models.PortOutRecord{
		ID:                 uuid.NewString(),
		SrNo:               srNo,
		Mobile:             sale.Mobile,
		Sum:                sale.Sum,
		SoldTo:             sale.SoldTo,
		SalePrice:          sale.SalePrice,
		PaymentStatus:      sale.PaymentStatus,
		UploadStatus:       sale.UploadStatus,
		SaleDate:           sale.SaleDate,
		UpcStatus:          sale.UpcStatus,
		PortOutDate:        time.Now(),
		CreatedBy:          sale.CreatedBy,
		OriginalNumberData: sale.OriginalNumberData,
	}
}

func (s *lifecycleService) MarkSaleAsPortedOut(actor Actor, saleID string) error {
	sale := s.store.SaleByID(saleID)
	if sale == nil {
		return ErrSaleNotFound
	}
	if sale.UpcStatus != models.UpcGenerated {
		return ErrUpcNotGenerated
	}
	portOut := buildPortOutFromSale(*sale, s.store.NextSrNo(models.CollectionPortOuts))
	batch := repositories.NewBatch().
		Set(models.CollectionPortOuts, portOut.ID, &portOut).
		Delete(models.CollectionSales, saleID)
	return s.commitAndLog(actor, batch, "Marked as Ported Out",
		fmt.Sprintf("Number %s has been ported out and moved to history.", sale.Mobile))
}

// BulkMarkAsPortedOut 跳过 UPC 未生成的记录并统计，全部不合格时返回错误
func (s *lifecycleService) BulkMarkAsPortedOut(actor Actor, saleIDs []string) (*BulkPortOutResult, error) {
	if len(saleIDs) == 0 {
		return nil, ErrEmptySelection
	}
	var eligible []models.SaleRecord
	skipped := 0
	for _, id := range saleIDs {
		sale := s.store.SaleByID(id)
		if sale == nil {
			return nil, ErrSaleNotFound
		}
		if sale.UpcStatus != models.UpcGenerated {
			skipped++
			continue
		}
		eligible = append(eligible, *sale)
	}
	if len(eligible) == 0 {
		return nil, ErrNoEligibleRecords
	}

	srNo := s.store.NextSrNo(models.CollectionPortOuts)
	var affected []string
	batch := repositories.NewBatch()
	for _, sale := range eligible {
		portOut := buildPortOutFromSale(sale, srNo)
		srNo++
		affected = append(affected, sale.Mobile)
		batch.Set(models.CollectionPortOuts, portOut.ID, &portOut)
		batch.Delete(models.CollectionSales, sale.ID)
	}
	if err := s.commitAndLog(actor, batch, "Bulk Port Out",
		detailedDescription("Moved to Port Out History:", affected)); err != nil {
		return nil, err
	}
	return &BulkPortOutResult{Moved: len(eligible), Skipped: skipped}, nil
}

// DeletePortOuts 任意一条付款未完成即阻断整批删除
func (s *lifecycleService) DeletePortOuts(actor Actor, ids []string) error {
	if len(ids) == 0 {
		return ErrEmptySelection
	}
	pending := 0
	var affected []string
	for _, id := range ids {
		record := s.store.PortOutByID(id)
		if record == nil {
			return ErrPortOutNotFound
		}
		if record.PaymentStatus == models.MarkPending {
			pending++
		}
		affected = append(affected, record.Mobile)
	}
	if pending > 0 {
		return &PortOutPaymentPendingError{Blocked: pending}
	}

	batch := repositories.NewBatch()
	for _, id := range ids {
		batch.Delete(models.CollectionPortOuts, id)
	}
	return s.commitAndLog(actor, batch, "Deleted Port Out Records",
		detailedDescription("Deleted from Port Out history:", affected))
}

func (s *lifecycleService) UpdatePortOutStatus(actor Actor, id string, paymentStatus string) error {
	if !models.IsValidMark(paymentStatus) {
		return ErrInvalidMarkValue
	}
	record := s.store.PortOutByID(id)
	if record == nil {
		return ErrPortOutNotFound
	}
	batch := repositories.NewBatch().Update(models.CollectionPortOuts, id,
		map[string]interface{}{"payment_status": paymentStatus})
	return s.commitAndLog(actor, batch, "Updated Port Out Status",
		fmt.Sprintf("Updated payment status for %s to %s.", record.Mobile, paymentStatus))
}

func (s *lifecycleService) BulkUpdatePortOutPaymentStatus(actor Actor, ids []string, paymentStatus string) error {
	if !models.IsValidMark(paymentStatus) {
		return ErrInvalidMarkValue
	}
	if len(ids) == 0 {
		return ErrEmptySelection
	}
	var affected []string
	batch := repositories.NewBatch()
	for _, id := range ids {
		record := s.store.PortOutByID(id)
		if record == nil {
			return ErrPortOutNotFound
		}
		affected = append(affected, record.Mobile)
		batch.Update(models.CollectionPortOuts, id, map[string]interface{}{"payment_status": paymentStatus})
	}
	return s.commitAndLog(actor, batch, "Bulk Updated Port Out Payment Status",
		detailedDescription(fmt.Sprintf("Updated payment status to %s for", paymentStatus), affected))
}

// MarkAsPreBooked 将库存号码冻结快照后移入预订集合
func (s *lifecycleService) MarkAsPreBooked(actor Actor, numberIDs []string) error {
	if len(numberIDs) == 0 {
		return ErrEmptySelection
	}
	srNo := s.store.NextSrNo(models.CollectionPreBookings)
	var affected []string
	batch := repositories.NewBatch()
	for _, id := range numberIDs {
		num := s.store.NumberByID(id)
		if num == nil {
			return ErrNumberNotFound
		}
		uploadStatus := num.UploadStatus
		if uploadStatus == "" {
			uploadStatus = models.MarkPending
		}
		preBooking := models.PreBookingRecord{
			ID:                 uuid.NewString(),
			SrNo:               srNo,
			Mobile:             num.Mobile,
			Sum:                num.Sum,
			UploadStatus:       uploadStatus,
			PreBookingDate:     time.Now(),
			CreatedBy:          actor.UID,
			OriginalNumberData: num.Snapshot(),
		}
		srNo++
		affected = append(affected, num.Mobile)
		batch.Set(models.CollectionPreBookings, preBooking.ID, &preBooking)
		batch.Delete(models.CollectionNumbers, id)
	}
	return s.commitAndLog(actor, batch, "Pre-Booked Numbers",
		detailedDescription("Moved to Pre-Booking:", affected))
}

// CancelPreBooking 按冻结快照逐字还原，不重置任何字段
func (s *lifecycleService) CancelPreBooking(actor Actor, preBookingID string) error {
	preBooking := s.store.PreBookingByID(preBookingID)
	if preBooking == nil {
		return ErrPreBookingNotFound
	}
	restored := preBooking.OriginalNumberData.Restore(uuid.NewString())

	batch := repositories.NewBatch().
		Set(models.CollectionNumbers, restored.ID, &restored).
		Delete(models.CollectionPreBookings, preBookingID)
	return s.commitAndLog(actor, batch, "Cancelled Pre-Booking",
		fmt.Sprintf("Cancelled pre-booking for %s and returned it to inventory.", preBooking.Mobile))
}

// buildSaleFromPreBooking 由预订构建销售文档：sum 与 uploadStatus 取自预订，快照原样携带
func buildSaleFromPreBooking(actor Actor, preBooking models.PreBookingRecord, details SaleDetails, srNo int) models.SaleRecord {
	uploadStatus := preBooking.UploadStatus
	if uploadStatus == "" {
		uploadStatus = models.MarkPending
	}
	return models.SaleRecord{
		ID:                 uuid.NewString(),
		SrNo:               srNo,
		Mobile:             preBooking.Mobile,
		Sum:                preBooking.Sum,
		SoldTo:             details.SoldTo,
		SalePrice:          details.SalePrice,
		PaymentStatus:      models.MarkPending,
		SaleDate:           details.SaleDate,
		UpcStatus:          models.UpcPending,
		PortOutStatus:      models.MarkPending,
		UploadStatus:       uploadStatus,
		CreatedBy:          actor.UID,
		OriginalNumberData: preBooking.OriginalNumberData,
	}
}

func (s *lifecycleService) SellPreBookedNumber(actor Actor, preBookingID string, details SaleDetails) error {
	preBooking := s.store.PreBookingByID(preBookingID)
	if preBooking == nil {
		return ErrPreBookingNotFound
	}
	sale := buildSaleFromPreBooking(actor, *preBooking, details, s.store.NextSrNo(models.CollectionSales))
	batch := repositories.NewBatch().
		Set(models.CollectionSales, sale.ID, &sale).
		Delete(models.CollectionPreBookings, preBookingID)
	return s.commitAndLog(actor, batch, "Sold Pre-Booked Number",
		fmt.Sprintf("Sold pre-booked number %s to %s.", preBooking.Mobile, details.SoldTo))
}

func (s *lifecycleService) BulkSellPreBookedNumbers(actor Actor, preBookingIDs []string, details SaleDetails) error {
	if len(preBookingIDs) == 0 {
		return ErrEmptySelection
	}
	srNo := s.store.NextSrNo(models.CollectionSales)
	var affected []string
	batch := repositories.NewBatch()
	for _, id := range preBookingIDs {
		preBooking := s.store.PreBookingByID(id)
		if preBooking == nil {
			return ErrPreBookingNotFound
		}
		sale := buildSaleFromPreBooking(actor, *preBooking, details, srNo)
		srNo++
		affected = append(affected, preBooking.Mobile)
		batch.Set(models.CollectionSales, sale.ID, &sale)
		batch.Delete(models.CollectionPreBookings, id)
	}
	return s.commitAndLog(actor, batch, "Bulk Sold Pre-Booked",
		detailedDescription(fmt.Sprintf("Sold to %s:", details.SoldTo), affected))
}

func (s *lifecycleService) AddDealerPurchase(actor Actor, data NewDealerPurchaseData) error {
	if err := utils.ValidateMobileNumber(data.Mobile); err != nil {
		return err
	}
	mobile := strings.TrimSpace(data.Mobile)
	if s.store.IsMobileNumberDuplicate(mobile, "") {
		return ErrDuplicateMobile
	}
	record := models.DealerPurchaseRecord{
		ID:            uuid.NewString(),
		SrNo:          s.store.NextSrNo(models.CollectionDealerPurchases),
		Mobile:        mobile,
		Sum:           utils.CalculateDigitalRoot(mobile),
		DealerName:    data.DealerName,
		Price:         data.Price,
		PaymentStatus: models.MarkPending,
		PortOutStatus: models.MarkPending,
		UpcStatus:     models.UpcPending,
		CreatedBy:     actor.UID,
	}
	batch := repositories.NewBatch().Set(models.CollectionDealerPurchases, record.ID, &record)
	return s.commitAndLog(actor, batch, "Added Dealer Purchase",
		fmt.Sprintf("Added new dealer purchase for %s", mobile))
}

func (s *lifecycleService) UpdateDealerPurchase(actor Actor, id string, statuses DealerPurchaseStatuses) error {
	if !models.IsValidMark(statuses.PaymentStatus) || !models.IsValidMark(statuses.PortOutStatus) {
		return ErrInvalidMarkValue
	}
	if !models.IsValidUpcStatus(statuses.UpcStatus) {
		return ErrInvalidUpcValue
	}
	record := s.store.DealerPurchaseByID(id)
	if record == nil {
		return ErrDealerPurchaseNotFound
	}
	batch := repositories.NewBatch().Update(models.CollectionDealerPurchases, id, map[string]interface{}{
		"payment_status":  statuses.PaymentStatus,
		"port_out_status": statuses.PortOutStatus,
		"upc_status":      statuses.UpcStatus,
	})
	return s.commitAndLog(actor, batch, "Updated Dealer Purchase",
		fmt.Sprintf("Updated status for %s.", record.Mobile))
}

// DeleteDealerPurchases 只删除三个状态全部完成的记录，其余跳过并计数
func (s *lifecycleService) DeleteDealerPurchases(actor Actor, ids []string) (*DealerPurchaseDeleteResult, error) {
	if len(ids) == 0 {
		return nil, ErrEmptySelection
	}
	var qualifying []models.DealerPurchaseRecord
	skipped := 0
	for _, id := range ids {
		record := s.store.DealerPurchaseByID(id)
		if record == nil {
			return nil, ErrDealerPurchaseNotFound
		}
		if record.PaymentStatus == models.MarkDone &&
			record.PortOutStatus == models.MarkDone &&
			record.UpcStatus == models.UpcGenerated {
			qualifying = append(qualifying, *record)
		} else {
			skipped++
		}
	}
	if len(qualifying) == 0 {
		return &DealerPurchaseDeleteResult{Deleted: 0, Skipped: skipped}, nil
	}

	var affected []string
	batch := repositories.NewBatch()
	for _, record := range qualifying {
		affected = append(affected, record.Mobile)
		batch.Delete(models.CollectionDealerPurchases, record.ID)
	}
	if err := s.commitAndLog(actor, batch, "Deleted Dealer Purchases",
		detailedDescription("Deleted from dealer purchases:", affected)); err != nil {
		return nil, err
	}
	return &DealerPurchaseDeleteResult{Deleted: len(qualifying), Skipped: skipped}, nil
}

func (s *lifecycleService) IsMobileNumberDuplicate(mobile string, excludeID string) bool {
	return s.store.IsMobileNumberDuplicate(strings.TrimSpace(mobile), excludeID)
}
