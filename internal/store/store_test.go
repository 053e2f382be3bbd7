package store

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sim_inventory/internal/models"
	"github.com/sim_inventory/internal/repositories"
)

func newTestStore(t *testing.T) (*Store, repositories.BatchExecutor) {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.NumberRecord{},
		&models.SaleRecord{},
		&models.PortOutRecord{},
		&models.PreBookingRecord{},
		&models.DealerPurchaseRecord{},
		&models.ReminderRecord{},
		&models.ActivityRecord{},
		&models.PaymentRecord{},
	))
	st := NewStore(repositories.NewGormCollectionRepository(db))
	require.NoError(t, st.Refresh())
	return st, repositories.NewGormBatchExecutor(db)
}

func commit(t *testing.T, st *Store, executor repositories.BatchExecutor, batch *repositories.Batch) {
	t.Helper()
	require.NoError(t, executor.Commit(batch))
	require.NoError(t, st.Refresh())
}

func TestIsMobileNumberDuplicateAcrossCollections(t *testing.T) {
	st, executor := newTestStore(t)

	numberID := uuid.NewString()
	saleID := uuid.NewString()
	purchaseID := uuid.NewString()
	batch := repositories.NewBatch().
		Set(models.CollectionNumbers, numberID, &models.NumberRecord{
			ID: numberID, SrNo: 1, Mobile: "9000000001", Status: models.StatusRTS,
			UploadStatus: models.MarkPending, NumberType: models.NumberTypePrepaid,
			UpcStatus: models.UpcPending, LocationType: models.LocationStore,
			OwnershipType: models.OwnershipIndividual, PurchaseDate: time.Now(),
		}).
		Set(models.CollectionSales, saleID, &models.SaleRecord{
			ID: saleID, SrNo: 1, Mobile: "9000000002",
			PaymentStatus: models.MarkPending, UpcStatus: models.UpcPending,
			PortOutStatus: models.MarkPending, UploadStatus: models.MarkPending,
			SaleDate: time.Now(),
		}).
		Set(models.CollectionDealerPurchases, purchaseID, &models.DealerPurchaseRecord{
			ID: purchaseID, SrNo: 1, Mobile: "9000000003",
			PaymentStatus: models.MarkPending, PortOutStatus: models.MarkPending,
			UpcStatus: models.UpcPending,
		})
	commit(t, st, executor, batch)

	assert.True(t, st.IsMobileNumberDuplicate("9000000001", ""))
	assert.True(t, st.IsMobileNumberDuplicate("9000000002", ""))
	assert.True(t, st.IsMobileNumberDuplicate("9000000003", ""))
	assert.False(t, st.IsMobileNumberDuplicate("9000000009", ""))

	// 编辑自身时排除对应 id
	assert.False(t, st.IsMobileNumberDuplicate("9000000001", numberID))
}

func TestNextSrNoPerCollection(t *testing.T) {
	st, executor := newTestStore(t)

	assert.Equal(t, 1, st.NextSrNo(models.CollectionNumbers))

	firstID := uuid.NewString()
	secondID := uuid.NewString()
	batch := repositories.NewBatch().
		Set(models.CollectionNumbers, firstID, &models.NumberRecord{
			ID: firstID, SrNo: 3, Mobile: "9000000011", Status: models.StatusRTS,
			UploadStatus: models.MarkPending, NumberType: models.NumberTypePrepaid,
			UpcStatus: models.UpcPending, LocationType: models.LocationStore,
			OwnershipType: models.OwnershipIndividual, PurchaseDate: time.Now(),
		}).
		Set(models.CollectionNumbers, secondID, &models.NumberRecord{
			ID: secondID, SrNo: 7, Mobile: "9000000012", Status: models.StatusRTS,
			UploadStatus: models.MarkPending, NumberType: models.NumberTypePrepaid,
			UpcStatus: models.UpcPending, LocationType: models.LocationStore,
			OwnershipType: models.OwnershipIndividual, PurchaseDate: time.Now(),
		})
	commit(t, st, executor, batch)

	assert.Equal(t, 8, st.NextSrNo(models.CollectionNumbers))
	// 序号按集合独立计算
	assert.Equal(t, 1, st.NextSrNo(models.CollectionSales))
}

func TestRefreshNotifiesSubscribers(t *testing.T) {
	st, _ := newTestStore(t)

	calls := 0
	st.Subscribe(func() { calls++ })
	require.NoError(t, st.Refresh())
	require.NoError(t, st.Refresh())
	assert.Equal(t, 2, calls)
}

func TestAutoRtsWindow(t *testing.T) {
	st, _ := newTestStore(t)

	st.MarkAutoRts([]string{"id-1", "id-2"})
	assert.True(t, st.RecentlyAutoRts("id-1"))
	assert.True(t, st.RecentlyAutoRts("id-2"))
	assert.False(t, st.RecentlyAutoRts("id-3"))
}

func TestGettersReturnCopies(t *testing.T) {
	st, executor := newTestStore(t)

	id := uuid.NewString()
	commit(t, st, executor, repositories.NewBatch().Set(models.CollectionNumbers, id, &models.NumberRecord{
		ID: id, SrNo: 1, Mobile: "9000000021", Status: models.StatusRTS,
		UploadStatus: models.MarkPending, NumberType: models.NumberTypePrepaid,
		UpcStatus: models.UpcPending, LocationType: models.LocationStore,
		OwnershipType: models.OwnershipIndividual, PurchaseDate: time.Now(),
	}))

	numbers := st.Numbers()
	require.Len(t, numbers, 1)
	numbers[0].Mobile = "tampered"
	assert.Equal(t, "9000000021", st.Numbers()[0].Mobile)
}
