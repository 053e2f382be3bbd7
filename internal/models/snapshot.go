package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/sim_inventory/pkg/utils"
)

// NumberSnapshot 是号码记录在跨集合迁移时冻结的快照（originalNumberData）。
// 它在创建销售/预订/携出文档时一次性嵌入，之后不再重算或回查，
// 用于取消路径还原和时点审计。字段与 NumberRecord 一致（不含 id）。
type NumberSnapshot struct {
	SrNo                        int        `json:"srNo"`
	Mobile                      string     `json:"mobile"`
	Sum                         int        `json:"sum"`
	Status                      string     `json:"status"`
	UploadStatus                string     `json:"uploadStatus"`
	NumberType                  string     `json:"numberType"`
	PurchaseFrom                string     `json:"purchaseFrom"`
	PurchasePrice               float64    `json:"purchasePrice"`
	SalePrice                   float64    `json:"salePrice"`
	RTSDate                     *time.Time `json:"rtsDate"`
	Name                        string     `json:"name"`
	UpcStatus                   string     `json:"upcStatus"`
	CurrentLocation             string     `json:"currentLocation"`
	LocationType                string     `json:"locationType"`
	AssignedTo                  string     `json:"assignedTo"`
	PurchaseDate                time.Time  `json:"purchaseDate"`
	Notes                       string     `json:"notes"`
	CheckInDate                 *time.Time `json:"checkInDate"`
	SafeCustodyDate             *time.Time `json:"safeCustodyDate"`
	SafeCustodyNotificationSent bool       `json:"safeCustodyNotificationSent"`
	CreatedBy                   string     `json:"createdBy"`
	AccountName                 string     `json:"accountName"`
	OwnershipType               string     `json:"ownershipType"`
	PartnerName                 string     `json:"partnerName"`
}

// Snapshot 从号码记录构建冻结快照（去掉 id）
func (n NumberRecord) Snapshot() NumberSnapshot {
	return NumberSnapshot{
		SrNo:                        n.SrNo,
		Mobile:                      n.Mobile,
		Sum:                         n.Sum,
		Status:                      n.Status,
		UploadStatus:                n.UploadStatus,
		NumberType:                  n.NumberType,
		PurchaseFrom:                n.PurchaseFrom,
		PurchasePrice:               n.PurchasePrice,
		SalePrice:                   n.SalePrice,
		RTSDate:                     n.RTSDate,
		Name:                        n.Name,
		UpcStatus:                   n.UpcStatus,
		CurrentLocation:             n.CurrentLocation,
		LocationType:                n.LocationType,
		AssignedTo:                  n.AssignedTo,
		PurchaseDate:                n.PurchaseDate,
		Notes:                       n.Notes,
		CheckInDate:                 n.CheckInDate,
		SafeCustodyDate:             n.SafeCustodyDate,
		SafeCustodyNotificationSent: n.SafeCustodyNotificationSent,
		CreatedBy:                   n.CreatedBy,
		AccountName:                 n.AccountName,
		OwnershipType:               n.OwnershipType,
		PartnerName:                 n.PartnerName,
	}
}

// Restore 将冻结快照还原为一条新的号码记录。
// 调用方负责分配新的文档 id；其余字段（含 srNo）原样恢复。
func (s NumberSnapshot) Restore(id string) NumberRecord {
	return NumberRecord{
		ID:                          id,
		SrNo:                        s.SrNo,
		Mobile:                      s.Mobile,
		Sum:                         s.Sum,
		Status:                      s.Status,
		UploadStatus:                s.UploadStatus,
		NumberType:                  s.NumberType,
		PurchaseFrom:                s.PurchaseFrom,
		PurchasePrice:               s.PurchasePrice,
		SalePrice:                   s.SalePrice,
		RTSDate:                     s.RTSDate,
		Name:                        s.Name,
		UpcStatus:                   s.UpcStatus,
		CurrentLocation:             s.CurrentLocation,
		LocationType:                s.LocationType,
		AssignedTo:                  s.AssignedTo,
		PurchaseDate:                s.PurchaseDate,
		Notes:                       s.Notes,
		CheckInDate:                 s.CheckInDate,
		SafeCustodyDate:             s.SafeCustodyDate,
		SafeCustodyNotificationSent: s.SafeCustodyNotificationSent,
		CreatedBy:                   s.CreatedBy,
		AccountName:                 s.AccountName,
		OwnershipType:               s.OwnershipType,
		PartnerName:                 s.PartnerName,
	}
}

// Value 实现 driver.Valuer，快照以 JSON 形式存入 TEXT 列。
// 序列化前经过 SanitizeForStorage，保证可选字段以显式 null 落库。
func (s NumberSnapshot) Value() (driver.Value, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	var decoded map[string]interface{}
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, err
	}
	sanitized, err := json.Marshal(utils.SanitizeForStorage(decoded))
	if err != nil {
		return nil, err
	}
	return string(sanitized), nil
}

// Scan 实现 sql.Scanner
func (s *NumberSnapshot) Scan(value interface{}) error {
	if value == nil {
		*s = NumberSnapshot{}
		return nil
	}
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, s)
	case string:
		return json.Unmarshal([]byte(v), s)
	default:
		return errors.New("无法将数据库值解析为号码快照")
	}
}
