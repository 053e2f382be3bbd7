package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sim_inventory/internal/models"
	"github.com/sim_inventory/internal/repositories"
)

// failingExecutor 模拟提交阶段的写入失败
type failingExecutor struct{}

func (failingExecutor) Commit(batch *repositories.Batch) error {
	if batch == nil || batch.Len() == 0 {
		return nil
	}
	return errors.New("write denied")
}

func TestParseMultiNumberInputBuckets(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewImportService(st, executor)

	existing := newNumberRecord("9876543210")
	seed(t, st, executor, models.CollectionNumbers, existing.ID, &existing)

	buckets := svc.ParseMultiNumberInput("9876543210, 9876543210, 1234567890\nabc123, 98765")

	assert.Equal(t, []string{"1234567890"}, buckets.Valid)
	assert.Equal(t, []string{"9876543210"}, buckets.ExistingDuplicates)
	assert.Equal(t, []string{"9876543210"}, buckets.InputDuplicates)
	assert.ElementsMatch(t, []string{"abc123", "98765"}, buckets.InvalidFormat)
}

func TestParseMultiNumberInputEmpty(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewImportService(st, executor)

	buckets := svc.ParseMultiNumberInput("  , \n ")
	assert.Empty(t, buckets.Valid)
	assert.Empty(t, buckets.InvalidFormat)
	assert.Empty(t, buckets.ExistingDuplicates)
	assert.Empty(t, buckets.InputDuplicates)
}

func TestBulkAddNumbersPartitionsRows(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewImportService(st, executor)

	existing := newNumberRecord("9111111111")
	seed(t, st, executor, models.CollectionNumbers, existing.ID, &existing)

	rows := []ImportRow{
		{"Mobile": "9222222222", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "500"},
		{"Mobile": "9111111111", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "500"},
		{"Mobile": "12345", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "500"},
		{"Mobile": "9333333333", "Status": "Maybe", "PurchaseDate": "01-06-2025", "PurchasePrice": "500"},
		{"Mobile": "9444444444", "Status": "Non-RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "500"},
		{"Mobile": "9555555555", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "abc"},
	}

	result, err := svc.BulkAddNumbers(employeeActor, rows)
	require.NoError(t, err)

	require.Len(t, result.ValidRecords, 1)
	assert.Equal(t, "9222222222", result.ValidRecords[0].Mobile)
	require.Len(t, result.FailedRecords, 5)
	reasons := map[string]string{}
	for _, failed := range result.FailedRecords {
		reasons[failed.Row.get("Mobile")] = failed.Reason
	}
	assert.Equal(t, "Duplicate mobile number.", reasons["9111111111"])
	assert.Equal(t, "Invalid or missing mobile number (must be 10 digits).", reasons["12345"])
	assert.Equal(t, `Status is a required field. Must be "RTS" or "Non-RTS".`, reasons["9333333333"])
	assert.Equal(t, "Invalid or missing RTSDate (required for Non-RTS status).", reasons["9444444444"])
	assert.Equal(t, "Invalid or missing PurchasePrice. Must be a number.", reasons["9555555555"])

	// 通过的行已入库
	assert.Len(t, st.Numbers(), 2)
}

func TestBulkAddNumbersRejectsNonFinitePrices(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewImportService(st, executor)

	rows := []ImportRow{
		{"Mobile": "9211111111", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "NaN"},
		{"Mobile": "9222222200", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "Inf"},
		{"Mobile": "9233333333", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "-Inf"},
		{"Mobile": "9244444444", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "500",
			"SalePrice": "NaN"},
	}
	result, err := svc.BulkAddNumbers(adminActor, rows)
	require.NoError(t, err)

	// 非有限数不是合法价格，也绝不能拖垮整个批次
	require.Len(t, result.ValidRecords, 1)
	assert.Equal(t, "9244444444", result.ValidRecords[0].Mobile)
	assert.Equal(t, 0.0, result.ValidRecords[0].SalePrice)
	require.Len(t, result.FailedRecords, 3)
	for _, failed := range result.FailedRecords {
		assert.Equal(t, "Invalid or missing PurchasePrice. Must be a number.", failed.Reason)
	}
	assert.Len(t, st.Numbers(), 1)
}

func TestBulkAddNumbersCommitFailureFailsAcceptedRows(t *testing.T) {
	st, _ := newTestEnv(t)
	svc := NewImportService(st, failingExecutor{})

	rows := []ImportRow{
		{"Mobile": "9255555555", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "500",
			"Notes": "lot A"},
		{"Mobile": "9266666666", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "700"},
		{"Mobile": "12345", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "500"},
	}
	result, err := svc.BulkAddNumbers(adminActor, rows)
	require.NoError(t, err)

	// 已校验不等于已入库：提交失败后所有已接受的行整体回落为失败
	assert.Empty(t, result.ValidRecords)
	require.Len(t, result.FailedRecords, 3)
	reasons := map[string]string{}
	byMobile := map[string]ImportRow{}
	for _, failed := range result.FailedRecords {
		reasons[failed.Row.get("Mobile")] = failed.Reason
		byMobile[failed.Row.get("Mobile")] = failed.Row
	}
	assert.Equal(t, "Permission denied.", reasons["9255555555"])
	assert.Equal(t, "Permission denied.", reasons["9266666666"])
	assert.Equal(t, "Invalid or missing mobile number (must be 10 digits).", reasons["12345"])

	// 失败报告须保留完整的原始行，而不只是号码
	assert.Equal(t, "500", byMobile["9255555555"].get("PurchasePrice"))
	assert.Equal(t, "lot A", byMobile["9255555555"].get("Notes"))
	assert.Equal(t, "700", byMobile["9266666666"].get("PurchasePrice"))

	assert.Empty(t, st.Numbers())
}

func TestBulkAddNumbersRejectsIntraImportDuplicates(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewImportService(st, executor)

	rows := []ImportRow{
		{"Mobile": "9666666666", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "100"},
		{"Mobile": "9666666666", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "100"},
	}
	result, err := svc.BulkAddNumbers(adminActor, rows)
	require.NoError(t, err)

	require.Len(t, result.ValidRecords, 1)
	require.Len(t, result.FailedRecords, 1)
	assert.Equal(t, "Duplicate mobile number.", result.FailedRecords[0].Reason)
}

func TestBulkAddNumbersAppliesDefaults(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewImportService(st, executor)

	rows := []ImportRow{
		{"Mobile": "9777777777", "Status": "RTS", "PurchaseDate": "15-06-2025", "PurchasePrice": "450"},
	}
	result, err := svc.BulkAddNumbers(employeeActor, rows)
	require.NoError(t, err)
	require.Len(t, result.ValidRecords, 1)

	record := result.ValidRecords[0]
	assert.Equal(t, models.MarkPending, record.UploadStatus)
	assert.Equal(t, models.NumberTypePrepaid, record.NumberType)
	assert.Equal(t, models.OwnershipIndividual, record.OwnershipType)
	assert.Equal(t, models.LocationStore, record.LocationType)
	assert.Equal(t, "N/A", record.PurchaseFrom)
	assert.Equal(t, "N/A", record.CurrentLocation)
	assert.Equal(t, 0.0, record.SalePrice)
	assert.Equal(t, "Ravi", record.AssignedTo)
	assert.Equal(t, employeeActor.UID, record.CreatedBy)
}

func TestBulkAddNumbersCocpAndPartnershipRules(t *testing.T) {
	st, executor := newTestEnv(t)
	svc := NewImportService(st, executor)

	rows := []ImportRow{
		{"Mobile": "9888888888", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "700",
			"NumberType": "COCP"},
		{"Mobile": "9999999990", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "700",
			"NumberType": "COCP", "SafeCustodyDate": "01-12-2025", "AccountName": "Acme Corp"},
		{"Mobile": "9000000090", "Status": "RTS", "PurchaseDate": "01-06-2025", "PurchasePrice": "700",
			"OwnershipType": "Partnership"},
	}
	result, err := svc.BulkAddNumbers(adminActor, rows)
	require.NoError(t, err)

	require.Len(t, result.ValidRecords, 1)
	assert.Equal(t, "9999999990", result.ValidRecords[0].Mobile)
	assert.Equal(t, "Acme Corp", result.ValidRecords[0].AccountName)
	require.NotNil(t, result.ValidRecords[0].SafeCustodyDate)

	require.Len(t, result.FailedRecords, 2)
	reasons := map[string]string{}
	for _, failed := range result.FailedRecords {
		reasons[failed.Row.get("Mobile")] = failed.Reason
	}
	assert.Equal(t, "Invalid or missing SafeCustodyDate (required for COCP).", reasons["9888888888"])
	assert.Equal(t, "PartnerName is required for Partnership ownership.", reasons["9000000090"])
}
