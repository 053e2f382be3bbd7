package repositories

import (
	"github.com/sim_inventory/internal/models"
	"gorm.io/gorm"
)

// CollectionRepository 定义文档集合的读取接口。
// 写入一律走 BatchExecutor，保证跨集合迁移的原子性；
// 这里只提供内存镜像加载与刷新所需的全量列表查询。
type CollectionRepository interface {
	ListNumbers() ([]models.NumberRecord, error)
	ListSales() ([]models.SaleRecord, error)
	ListPortOuts() ([]models.PortOutRecord, error)
	ListPreBookings() ([]models.PreBookingRecord, error)
	ListDealerPurchases() ([]models.DealerPurchaseRecord, error)
	ListReminders() ([]models.ReminderRecord, error)
	ListActivities() ([]models.ActivityRecord, error)
	ListPayments() ([]models.PaymentRecord, error)
}

// gormCollectionRepository 是 CollectionRepository 的 GORM 实现
type gormCollectionRepository struct {
	db *gorm.DB
}

// NewGormCollectionRepository 创建一个新的 gormCollectionRepository 实例
func NewGormCollectionRepository(db *gorm.DB) CollectionRepository {
	return &gormCollectionRepository{db: db}
}

func (r *gormCollectionRepository) ListNumbers() ([]models.NumberRecord, error) {
	var records []models.NumberRecord
	if err := r.db.Order("sr_no asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *gormCollectionRepository) ListSales() ([]models.SaleRecord, error) {
	var records []models.SaleRecord
	if err := r.db.Order("sr_no asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *gormCollectionRepository) ListPortOuts() ([]models.PortOutRecord, error) {
	var records []models.PortOutRecord
	if err := r.db.Order("sr_no asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *gormCollectionRepository) ListPreBookings() ([]models.PreBookingRecord, error) {
	var records []models.PreBookingRecord
	if err := r.db.Order("sr_no asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *gormCollectionRepository) ListDealerPurchases() ([]models.DealerPurchaseRecord, error) {
	var records []models.DealerPurchaseRecord
	if err := r.db.Order("sr_no asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *gormCollectionRepository) ListReminders() ([]models.ReminderRecord, error) {
	var records []models.ReminderRecord
	if err := r.db.Order("due_date asc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *gormCollectionRepository) ListActivities() ([]models.ActivityRecord, error) {
	var records []models.ActivityRecord
	if err := r.db.Order("timestamp desc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}

func (r *gormCollectionRepository) ListPayments() ([]models.PaymentRecord, error) {
	var records []models.PaymentRecord
	if err := r.db.Order("payment_date desc").Find(&records).Error; err != nil {
		return nil, err
	}
	return records, nil
}
