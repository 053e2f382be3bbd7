package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/sim_inventory/internal/models"
	"github.com/sim_inventory/internal/repositories"
	"github.com/sim_inventory/internal/store"
	"github.com/sim_inventory/pkg/utils"
)

var (
	adminActor    = Actor{UID: "admin-uid", DisplayName: "Admin", Role: models.RoleAdmin}
	employeeActor = Actor{UID: "emp-uid", DisplayName: "Ravi", Role: models.RoleEmployee}
)

// newTestEnv 在内存 sqlite 上搭建完整的镜像与批量执行器
func newTestEnv(t *testing.T) (*store.Store, repositories.BatchExecutor) {
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

	st := store.NewStore(repositories.NewGormCollectionRepository(db))
	require.NoError(t, st.Refresh())
	return st, repositories.NewGormBatchExecutor(db)
}

// seed 直接经批量执行器写入一条记录并刷新镜像
func seed(t *testing.T, st *store.Store, executor repositories.BatchExecutor, collection, id string, record interface{}) {
	t.Helper()
	require.NoError(t, executor.Commit(repositories.NewBatch().Set(collection, id, record)))
	require.NoError(t, st.Refresh())
}

func newNumberRecord(mobile string) models.NumberRecord {
	return models.NumberRecord{
		ID:              uuid.NewString(),
		SrNo:            1,
		Mobile:          mobile,
		Sum:             utils.CalculateDigitalRoot(mobile),
		Status:          models.StatusRTS,
		UploadStatus:    models.MarkPending,
		NumberType:      models.NumberTypePrepaid,
		PurchaseFrom:    "lifetimenumber",
		PurchasePrice:   500,
		UpcStatus:       models.UpcPending,
		CurrentLocation: "Main Store",
		LocationType:    models.LocationStore,
		AssignedTo:      "Ravi",
		Name:            "Ravi",
		PurchaseDate:    time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
		OwnershipType:   models.OwnershipIndividual,
		CreatedBy:       "admin-uid",
	}
}

func newSaleRecord(mobile, upcStatus string) models.SaleRecord {
	num := newNumberRecord(mobile)
	return models.SaleRecord{
		ID:                 uuid.NewString(),
		SrNo:               1,
		Mobile:             mobile,
		Sum:                num.Sum,
		SoldTo:             "numberwale",
		SalePrice:          1500,
		PaymentStatus:      models.MarkPending,
		SaleDate:           time.Date(2025, 7, 1, 0, 0, 0, 0, time.UTC),
		UpcStatus:          upcStatus,
		PortOutStatus:      models.MarkPending,
		UploadStatus:       models.MarkPending,
		CreatedBy:          "admin-uid",
		OriginalNumberData: num.Snapshot(),
	}
}

func newPortOutRecord(mobile, paymentStatus string) models.PortOutRecord {
	sale := newSaleRecord(mobile, models.UpcGenerated)
	return models.PortOutRecord{
		ID:                 uuid.NewString(),
		SrNo:               1,
		Mobile:             mobile,
		Sum:                sale.Sum,
		SoldTo:             sale.SoldTo,
		SalePrice:          sale.SalePrice,
		PaymentStatus:      paymentStatus,
		UploadStatus:       sale.UploadStatus,
		SaleDate:           sale.SaleDate,
		UpcStatus:          sale.UpcStatus,
		PortOutDate:        time.Date(2025, 7, 10, 0, 0, 0, 0, time.UTC),
		CreatedBy:          sale.CreatedBy,
		OriginalNumberData: sale.OriginalNumberData,
	}
}

func newDealerPurchaseRecord(mobile string, payment, portOut, upc string) models.DealerPurchaseRecord {
	return models.DealerPurchaseRecord{
		ID:            uuid.NewString(),
		SrNo:          1,
		Mobile:        mobile,
		Sum:           utils.CalculateDigitalRoot(mobile),
		DealerName:    "Sharma Telecom",
		Price:         900,
		PaymentStatus: payment,
		PortOutStatus: portOut,
		UpcStatus:     upc,
		CreatedBy:     "admin-uid",
	}
}
