package models

import (
	"time"
)

// 号码状态
const (
	StatusRTS    = "RTS"
	StatusNonRTS = "Non-RTS"
)

// 上传状态 / 付款状态 / 携出状态共用的完成标记
const (
	MarkPending = "Pending"
	MarkDone    = "Done"
)

// UPC 状态
const (
	UpcPending   = "Pending"
	UpcGenerated = "Generated"
)

// 号码类型
const (
	NumberTypePrepaid  = "Prepaid"
	NumberTypePostpaid = "Postpaid"
	NumberTypeCOCP     = "COCP"
)

// 归属类型
const (
	OwnershipIndividual  = "Individual"
	OwnershipPartnership = "Partnership"
)

// 位置类型
const (
	LocationStore    = "Store"
	LocationEmployee = "Employee"
	LocationDealer   = "Dealer"
)

// Unassigned 表示号码未分配给任何员工
const Unassigned = "Unassigned"

// IsValidStatus 校验号码状态取值
func IsValidStatus(s string) bool {
	return s == StatusRTS || s == StatusNonRTS
}

// IsValidNumberType 校验号码类型取值
func IsValidNumberType(t string) bool {
	return t == NumberTypePrepaid || t == NumberTypePostpaid || t == NumberTypeCOCP
}

// IsValidOwnershipType 校验归属类型取值
func IsValidOwnershipType(t string) bool {
	return t == OwnershipIndividual || t == OwnershipPartnership
}

// IsValidLocationType 校验位置类型取值
func IsValidLocationType(t string) bool {
	return t == LocationStore || t == LocationEmployee || t == LocationDealer
}

// IsValidMark 校验 Pending/Done 标记取值
func IsValidMark(m string) bool {
	return m == MarkPending || m == MarkDone
}

// IsValidUpcStatus 校验 UPC 状态取值
func IsValidUpcStatus(s string) bool {
	return s == UpcPending || s == UpcGenerated
}

// NumberRecord 对应于主库存集合 numbers 中的一条号码文档。
// 不变量：mobile 在 numbers/sales/portouts/dealerPurchases/prebookings
// 五个集合的并集中全局唯一；srNo 仅用于展示，按集合 max+1 分配。
type NumberRecord struct {
	ID                          string     `json:"id" gorm:"primaryKey;size:36"`
	SrNo                        int        `json:"srNo" gorm:"column:sr_no;not null"`
	Mobile                      string     `json:"mobile" gorm:"column:mobile;not null;size:10;index"`
	Sum                         int        `json:"sum" gorm:"column:sum;not null"` // mobile 的数字根，1-9
	Status                      string     `json:"status" gorm:"column:status;not null;size:20"`
	UploadStatus                string     `json:"uploadStatus" gorm:"column:upload_status;not null;default:'Pending';size:20"`
	NumberType                  string     `json:"numberType" gorm:"column:number_type;not null;size:20"`
	PurchaseFrom                string     `json:"purchaseFrom" gorm:"column:purchase_from;size:255"`
	PurchasePrice               float64    `json:"purchasePrice" gorm:"column:purchase_price;not null"`
	SalePrice                   float64    `json:"salePrice" gorm:"column:sale_price"`
	RTSDate                     *time.Time `json:"rtsDate" gorm:"column:rts_date"` // Status 为 Non-RTS 时必填，否则为 null
	Name                        string     `json:"name" gorm:"column:name;size:255"`
	UpcStatus                   string     `json:"upcStatus" gorm:"column:upc_status;not null;default:'Pending';size:20"`
	CurrentLocation             string     `json:"currentLocation" gorm:"column:current_location;size:255"`
	LocationType                string     `json:"locationType" gorm:"column:location_type;not null;default:'Store';size:20"`
	AssignedTo                  string     `json:"assignedTo" gorm:"column:assigned_to;size:255"` // 员工姓名或 Unassigned
	PurchaseDate                time.Time  `json:"purchaseDate" gorm:"column:purchase_date;not null"`
	Notes                       string     `json:"notes" gorm:"column:notes;type:text"`
	CheckInDate                 *time.Time `json:"checkInDate" gorm:"column:check_in_date"`
	SafeCustodyDate             *time.Time `json:"safeCustodyDate" gorm:"column:safe_custody_date"` // NumberType 为 COCP 时必填
	SafeCustodyNotificationSent bool       `json:"safeCustodyNotificationSent" gorm:"column:safe_custody_notification_sent;not null;default:false"`
	CreatedBy                   string     `json:"createdBy" gorm:"column:created_by;size:36"`
	AccountName                 string     `json:"accountName" gorm:"column:account_name;size:255"` // NumberType 为 COCP 时必填
	OwnershipType               string     `json:"ownershipType" gorm:"column:ownership_type;not null;default:'Individual';size:20"`
	PartnerName                 string     `json:"partnerName" gorm:"column:partner_name;size:255"` // OwnershipType 为 Partnership 时必填
}

// TableName 指定 NumberRecord 对应的集合名
func (NumberRecord) TableName() string {
	return CollectionNumbers
}
