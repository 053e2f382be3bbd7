package models

import (
	"time"
)

// PreBookingRecord 对应于预订集合 prebookings 中的一条文档。
// 号码进入预订后离开主库存；取消预订按快照逐字还原，售出则晋升为 SaleRecord。
type PreBookingRecord struct {
	ID                 string         `json:"id" gorm:"primaryKey;size:36"`
	SrNo               int            `json:"srNo" gorm:"column:sr_no;not null"`
	Mobile             string         `json:"mobile" gorm:"column:mobile;not null;size:10;index"`
	Sum                int            `json:"sum" gorm:"column:sum;not null"`
	UploadStatus       string         `json:"uploadStatus" gorm:"column:upload_status;not null;default:'Pending';size:20"`
	PreBookingDate     time.Time      `json:"preBookingDate" gorm:"column:pre_booking_date;not null"`
	CreatedBy          string         `json:"createdBy" gorm:"column:created_by;size:36"`
	OriginalNumberData NumberSnapshot `json:"originalNumberData" gorm:"column:original_number_data;type:text"`
}

// TableName 指定 PreBookingRecord 对应的集合名
func (PreBookingRecord) TableName() string {
	return CollectionPreBookings
}
