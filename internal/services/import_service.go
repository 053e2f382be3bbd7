package services

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sim_inventory/internal/models"
	"github.com/sim_inventory/internal/repositories"
	"github.com/sim_inventory/internal/store"
	"github.com/sim_inventory/pkg/utils"
)

var tenDigits = regexp.MustCompile(`^\d{10}$`)

// MultiNumberBuckets 是自由文本多号码输入的四桶分拣结果。
// 每个唯一号码恰好落入 valid/invalidFormat/existingDuplicates 之一；
// inputDuplicates 单独记录输入内部重复出现的号码。
type MultiNumberBuckets struct {
	Valid              []string `json:"valid"`
	InvalidFormat      []string `json:"invalidFormat"`
	ExistingDuplicates []string `json:"existingDuplicates"`
	InputDuplicates    []string `json:"inputDuplicates"`
}

// ImportRow 是结构化导入的一行原始数据，键为列头名
type ImportRow map[string]string

// FailedRow 是被拒绝的行及其首个失败原因
type FailedRow struct {
	Row    ImportRow `json:"row"`
	Reason string    `json:"reason"`
}

// BulkAddResult 是结构化导入的结果：入库的记录与被拒绝的行
type BulkAddResult struct {
	ValidRecords  []models.NumberRecord `json:"validRecords"`
	FailedRecords []FailedRow           `json:"failedRecords"`
}

// ImportService 定义批量导入对账的两条独立流程
type ImportService interface {
	// ParseMultiNumberInput 分拣自由文本输入，不落库
	ParseMultiNumberInput(raw string) MultiNumberBuckets
	// BulkAddNumbers 逐行校验结构化数据，通过的行在单个事务内入库
	BulkAddNumbers(actor Actor, rows []ImportRow) (*BulkAddResult, error)
}

type importService struct {
	store    *store.Store
	executor repositories.BatchExecutor
}

// NewImportService 创建导入对账服务实例
func NewImportService(st *store.Store, executor repositories.BatchExecutor) ImportService {
	return &importService{store: st, executor: executor}
}

// ParseMultiNumberInput 按逗号/换行切分，去重后逐个校验格式与全局唯一性
func (s *importService) ParseMultiNumberInput(raw string) MultiNumberBuckets {
	buckets := MultiNumberBuckets{
		Valid:              []string{},
		InvalidFormat:      []string{},
		ExistingDuplicates: []string{},
		InputDuplicates:    []string{},
	}

	tokens := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == '\n' || r == '\r'
	})

	seen := make(map[string]struct{})
	for _, token := range tokens {
		mobile := strings.TrimSpace(token)
		if mobile == "" {
			continue
		}
		if _, dup := seen[mobile]; dup {
			buckets.InputDuplicates = append(buckets.InputDuplicates, mobile)
			continue
		}
		seen[mobile] = struct{}{}

		if !tenDigits.MatchString(mobile) {
			buckets.InvalidFormat = append(buckets.InvalidFormat, mobile)
			continue
		}
		if s.store.IsMobileNumberDuplicate(mobile, "") {
			buckets.ExistingDuplicates = append(buckets.ExistingDuplicates, mobile)
			continue
		}
		buckets.Valid = append(buckets.Valid, mobile)
	}
	return buckets
}

func (r ImportRow) get(key string) string {
	return strings.TrimSpace(r[key])
}

func parseRowDate(raw string) *time.Time {
	if raw == "" {
		return nil
	}
	parsed, err := utils.ParseDate(raw)
	if err != nil {
		return nil
	}
	return &parsed
}

// BulkAddNumbers 对每行按固定顺序校验，记录首个失败原因；
// 行内查重集合随已接受的行增长，阻止同一批次内的重复。
// 提交失败时所有已接受的行被整体移入失败输出，原因为权限拒绝。
func (s *importService) BulkAddNumbers(actor Actor, rows []ImportRow) (*BulkAddResult, error) {
	result := &BulkAddResult{
		ValidRecords:  []models.NumberRecord{},
		FailedRecords: []FailedRow{},
	}

	srNo := s.store.NextSrNo(models.CollectionNumbers)

	// 与 ValidRecords 同步保留原始行，提交失败时整行回落到失败报告
	var acceptedRows []ImportRow

	// 现存号码集合，随本次导入已接受的行增长
	existing := make(map[string]struct{})
	for _, n := range s.store.Numbers() {
		existing[n.Mobile] = struct{}{}
	}
	for _, rec := range s.store.Sales() {
		existing[rec.Mobile] = struct{}{}
	}
	for _, rec := range s.store.PortOuts() {
		existing[rec.Mobile] = struct{}{}
	}
	for _, rec := range s.store.DealerPurchases() {
		existing[rec.Mobile] = struct{}{}
	}
	for _, rec := range s.store.PreBookings() {
		existing[rec.Mobile] = struct{}{}
	}

	for _, row := range rows {
		mobile := row.get("Mobile")
		if !tenDigits.MatchString(mobile) {
			result.FailedRecords = append(result.FailedRecords, FailedRow{row, "Invalid or missing mobile number (must be 10 digits)."})
			continue
		}
		if _, dup := existing[mobile]; dup {
			result.FailedRecords = append(result.FailedRecords, FailedRow{row, "Duplicate mobile number."})
			continue
		}

		status := row.get("Status")
		if !models.IsValidStatus(status) {
			result.FailedRecords = append(result.FailedRecords, FailedRow{row, `Status is a required field. Must be "RTS" or "Non-RTS".`})
			continue
		}

		uploadStatus := row.get("UploadStatus")
		if !models.IsValidMark(uploadStatus) {
			uploadStatus = models.MarkPending
		}
		numberType := row.get("NumberType")
		if !models.IsValidNumberType(numberType) {
			numberType = models.NumberTypePrepaid
		}
		ownershipType := row.get("OwnershipType")
		if !models.IsValidOwnershipType(ownershipType) {
			ownershipType = models.OwnershipIndividual
		}

		partnerName := row.get("PartnerName")
		if ownershipType == models.OwnershipPartnership && partnerName == "" {
			result.FailedRecords = append(result.FailedRecords, FailedRow{row, "PartnerName is required for Partnership ownership."})
			continue
		}

		safeCustodyDate := parseRowDate(row.get("SafeCustodyDate"))
		if numberType == models.NumberTypeCOCP && safeCustodyDate == nil {
			result.FailedRecords = append(result.FailedRecords, FailedRow{row, "Invalid or missing SafeCustodyDate (required for COCP)."})
			continue
		}
		accountName := row.get("AccountName")
		if numberType == models.NumberTypeCOCP && accountName == "" {
			result.FailedRecords = append(result.FailedRecords, FailedRow{row, "Missing AccountName (required for COCP)."})
			continue
		}

		var rtsDate *time.Time
		if status == models.StatusNonRTS {
			rtsDate = parseRowDate(row.get("RTSDate"))
			if rtsDate == nil {
				result.FailedRecords = append(result.FailedRecords, FailedRow{row, "Invalid or missing RTSDate (required for Non-RTS status)."})
				continue
			}
		}

		purchaseDate := parseRowDate(row.get("PurchaseDate"))
		if purchaseDate == nil {
			result.FailedRecords = append(result.FailedRecords, FailedRow{row, "Invalid or missing PurchaseDate."})
			continue
		}

		// ParseFloat 会接受 NaN/Inf，这类值无法入库，须按非数处理
		purchasePrice, err := strconv.ParseFloat(row.get("PurchasePrice"), 64)
		if err != nil || math.IsNaN(purchasePrice) || math.IsInf(purchasePrice, 0) {
			result.FailedRecords = append(result.FailedRecords, FailedRow{row, "Invalid or missing PurchasePrice. Must be a number."})
			continue
		}

		salePrice := 0.0
		if raw := row.get("SalePrice"); raw != "" {
			if parsed, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsNaN(parsed) && !math.IsInf(parsed, 0) {
				salePrice = parsed
			}
		}

		purchaseFrom := row.get("PurchaseFrom")
		if purchaseFrom == "" {
			purchaseFrom = "N/A"
		}
		currentLocation := row.get("CurrentLocation")
		if currentLocation == "" {
			currentLocation = "N/A"
		}
		locationType := row.get("LocationType")
		if !models.IsValidLocationType(locationType) {
			locationType = models.LocationStore
		}

		record := models.NumberRecord{
			ID:              uuid.NewString(),
			SrNo:            srNo,
			Mobile:          mobile,
			Sum:             utils.CalculateDigitalRoot(mobile),
			Status:          status,
			UploadStatus:    uploadStatus,
			NumberType:      numberType,
			PurchaseFrom:    purchaseFrom,
			PurchasePrice:   purchasePrice,
			SalePrice:       salePrice,
			Name:            actor.Name(),
			UpcStatus:       models.UpcPending,
			CurrentLocation: currentLocation,
			LocationType:    locationType,
			AssignedTo:      actor.Name(),
			PurchaseDate:    *purchaseDate,
			Notes:           row.get("Notes"),
			CreatedBy:       actor.UID,
			OwnershipType:   ownershipType,
		}
		srNo++
		if status == models.StatusNonRTS {
			record.RTSDate = rtsDate
		}
		if numberType == models.NumberTypeCOCP {
			record.SafeCustodyDate = safeCustodyDate
			record.AccountName = accountName
		}
		if ownershipType == models.OwnershipPartnership {
			record.PartnerName = partnerName
		}

		result.ValidRecords = append(result.ValidRecords, record)
		acceptedRows = append(acceptedRows, row)
		existing[mobile] = struct{}{}
	}

	if len(result.ValidRecords) > 0 {
		batch := repositories.NewBatch()
		for i := range result.ValidRecords {
			batch.Set(models.CollectionNumbers, result.ValidRecords[i].ID, &result.ValidRecords[i])
		}
		if err := s.executor.Commit(batch); err != nil {
			// 提交失败：已校验不等于已入库，全部回落为失败行
			for _, row := range acceptedRows {
				result.FailedRecords = append(result.FailedRecords, FailedRow{
					Row:    row,
					Reason: "Permission denied.",
				})
			}
			result.ValidRecords = []models.NumberRecord{}
			return result, nil
		}

		var affected []string
		for _, rec := range result.ValidRecords {
			affected = append(affected, rec.Mobile)
		}
		logActivity(s.store, s.executor, actor.Name(), "Bulk Added Numbers",
			detailedDescription("Imported", affected), actor.UID)
		if err := s.store.Refresh(); err != nil {
			return result, err
		}
	}

	return result, nil
}
