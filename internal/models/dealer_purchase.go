package models

// DealerPurchaseRecord 对应于经销商购买集合 dealerPurchases 中的一条文档。
// 与销售/携出不同，该集合不持有号码快照；删除时仅当三个状态全部完成
// （paymentStatus=Done 且 portOutStatus=Done 且 upcStatus=Generated）才合格，
// 不合格的记录会被跳过而不是整批拒绝。
type DealerPurchaseRecord struct {
	ID            string  `json:"id" gorm:"primaryKey;size:36"`
	SrNo          int     `json:"srNo" gorm:"column:sr_no;not null"`
	Mobile        string  `json:"mobile" gorm:"column:mobile;not null;size:10;index"`
	Sum           int     `json:"sum" gorm:"column:sum;not null"`
	DealerName    string  `json:"dealerName" gorm:"column:dealer_name;not null;size:255"`
	Price         float64 `json:"price" gorm:"column:price;not null"`
	PaymentStatus string  `json:"paymentStatus" gorm:"column:payment_status;not null;default:'Pending';size:20"`
	PortOutStatus string  `json:"portOutStatus" gorm:"column:port_out_status;not null;default:'Pending';size:20"`
	UpcStatus     string  `json:"upcStatus" gorm:"column:upc_status;not null;default:'Pending';size:20"`
	CreatedBy     string  `json:"createdBy" gorm:"column:created_by;size:36"`
}

// TableName 指定 DealerPurchaseRecord 对应的集合名
func (DealerPurchaseRecord) TableName() string {
	return CollectionDealerPurchases
}
