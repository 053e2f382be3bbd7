package repositories

import (
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sim_inventory/internal/models"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.NumberRecord{},
		&models.SaleRecord{},
	))
	return db
}

func testNumber(mobile string) *models.NumberRecord {
	return &models.NumberRecord{
		ID: uuid.NewString(), SrNo: 1, Mobile: mobile, Status: models.StatusRTS,
		UploadStatus: models.MarkPending, NumberType: models.NumberTypePrepaid,
		UpcStatus: models.UpcPending, LocationType: models.LocationStore,
		OwnershipType: models.OwnershipIndividual, PurchaseDate: time.Now(),
	}
}

func TestBatchCommitAppliesAllOps(t *testing.T) {
	db := newTestDB(t)
	executor := NewGormBatchExecutor(db)

	num := testNumber("9000000031")
	require.NoError(t, executor.Commit(NewBatch().Set(models.CollectionNumbers, num.ID, num)))

	batch := NewBatch().
		Update(models.CollectionNumbers, num.ID, map[string]interface{}{"notes": "updated"}).
		Delete(models.CollectionNumbers, num.ID)
	assert.Equal(t, 2, batch.Len())
	require.NoError(t, executor.Commit(batch))

	var count int64
	db.Model(&models.NumberRecord{}).Count(&count)
	assert.Equal(t, int64(0), count)
}

func TestBatchCommitRollsBackOnFailure(t *testing.T) {
	db := newTestDB(t)
	executor := NewGormBatchExecutor(db)

	num := testNumber("9000000032")
	// 第二条操作按不存在的 id 更新，整个事务必须回滚
	batch := NewBatch().
		Set(models.CollectionNumbers, num.ID, num).
		Update(models.CollectionNumbers, "missing-id", map[string]interface{}{"notes": "x"})
	err := executor.Commit(batch)

	var batchErr *BatchError
	require.ErrorAs(t, err, &batchErr)
	assert.Equal(t, models.CollectionNumbers+"/missing-id", batchErr.Path)
	assert.True(t, errors.Is(err, ErrDocumentNotFound))

	var count int64
	db.Model(&models.NumberRecord{}).Count(&count)
	assert.Equal(t, int64(0), count, "回滚后不应有任何写入残留")
}

func TestBatchCommitUnknownCollection(t *testing.T) {
	db := newTestDB(t)
	executor := NewGormBatchExecutor(db)

	err := executor.Commit(NewBatch().Delete("nonexistent", "id-1"))
	assert.True(t, errors.Is(err, ErrUnknownCollection))
}

func TestBatchCommitEmptyIsNoop(t *testing.T) {
	db := newTestDB(t)
	executor := NewGormBatchExecutor(db)

	require.NoError(t, executor.Commit(NewBatch()))
	require.NoError(t, executor.Commit(nil))
}
