package models

import (
	"time"
)

// PaymentRecord 对应于厂商付款集合 payments 中的一条文档。
// 付款对账视图按 vendorName 将付款与采购支出汇总比对。
type PaymentRecord struct {
	ID          string    `json:"id" gorm:"primaryKey;size:36"`
	SrNo        int       `json:"srNo" gorm:"column:sr_no;not null"`
	VendorName  string    `json:"vendorName" gorm:"column:vendor_name;not null;size:255;index"`
	Amount      float64   `json:"amount" gorm:"column:amount;not null"`
	PaymentDate time.Time `json:"paymentDate" gorm:"column:payment_date;not null"`
	Notes       string    `json:"notes" gorm:"column:notes;type:text"`
	CreatedBy   string    `json:"createdBy" gorm:"column:created_by;size:36"`
}

// TableName 指定 PaymentRecord 对应的集合名
func (PaymentRecord) TableName() string {
	return CollectionPayments
}
