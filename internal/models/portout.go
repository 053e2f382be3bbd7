package models

import (
	"time"
)

// PortOutRecord 对应于携出历史集合 portouts 中的一条文档。
// 形状为 SaleRecord 去掉 portOutStatus 加上 portOutDate。
// 终态记录：仅当 paymentStatus 为 Done 时才允许删除。
type PortOutRecord struct {
	ID                 string         `json:"id" gorm:"primaryKey;size:36"`
	SrNo               int            `json:"srNo" gorm:"column:sr_no;not null"`
	Mobile             string         `json:"mobile" gorm:"column:mobile;not null;size:10;index"`
	Sum                int            `json:"sum" gorm:"column:sum;not null"`
	SoldTo             string         `json:"soldTo" gorm:"column:sold_to;not null;size:255"`
	SalePrice          float64        `json:"salePrice" gorm:"column:sale_price;not null"`
	PaymentStatus      string         `json:"paymentStatus" gorm:"column:payment_status;not null;default:'Pending';size:20"`
	UploadStatus       string         `json:"uploadStatus" gorm:"column:upload_status;not null;default:'Pending';size:20"`
	SaleDate           time.Time      `json:"saleDate" gorm:"column:sale_date;not null"`
	UpcStatus          string         `json:"upcStatus" gorm:"column:upc_status;not null;size:20"`
	PortOutDate        time.Time      `json:"portOutDate" gorm:"column:port_out_date;not null"`
	CreatedBy          string         `json:"createdBy" gorm:"column:created_by;size:36"`
	OriginalNumberData NumberSnapshot `json:"originalNumberData" gorm:"column:original_number_data;type:text"`
}

// TableName 指定 PortOutRecord 对应的集合名
func (PortOutRecord) TableName() string {
	return CollectionPortOuts
}
