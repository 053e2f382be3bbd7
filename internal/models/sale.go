package models

import (
	"time"
)

// SaleRecord 对应于销售集合 sales 中的一条文档。
// 由库存号码或预订号码售出时创建；取消销售时回到库存，
// 携出时晋升为 PortOutRecord，两种路径都会删除本记录。
type SaleRecord struct {
	ID                 string         `json:"id" gorm:"primaryKey;size:36"`
	SrNo               int            `json:"srNo" gorm:"column:sr_no;not null"`
	Mobile             string         `json:"mobile" gorm:"column:mobile;not null;size:10;index"`
	Sum                int            `json:"sum" gorm:"column:sum;not null"`
	SoldTo             string         `json:"soldTo" gorm:"column:sold_to;not null;size:255"`
	SalePrice          float64        `json:"salePrice" gorm:"column:sale_price;not null"`
	PaymentStatus      string         `json:"paymentStatus" gorm:"column:payment_status;not null;default:'Pending';size:20"`
	SaleDate           time.Time      `json:"saleDate" gorm:"column:sale_date;not null"`
	UpcStatus          string         `json:"upcStatus" gorm:"column:upc_status;not null;default:'Pending';size:20"`
	PortOutStatus      string         `json:"portOutStatus" gorm:"column:port_out_status;not null;default:'Pending';size:20"`
	UploadStatus       string         `json:"uploadStatus" gorm:"column:upload_status;not null;default:'Pending';size:20"`
	CreatedBy          string         `json:"createdBy" gorm:"column:created_by;size:36"`
	OriginalNumberData NumberSnapshot `json:"originalNumberData" gorm:"column:original_number_data;type:text"`
}

// TableName 指定 SaleRecord 对应的集合名
func (SaleRecord) TableName() string {
	return CollectionSales
}
