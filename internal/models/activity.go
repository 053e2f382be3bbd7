package models

import (
	"time"
)

// ActivityRecord 对应于操作日志集合 activities 中的一条文档。
// 日志写入是尽力而为的：记录失败不影响主业务操作。
type ActivityRecord struct {
	ID           string    `json:"id" gorm:"primaryKey;size:36"`
	SrNo         int       `json:"srNo" gorm:"column:sr_no;not null"`
	EmployeeName string    `json:"employeeName" gorm:"column:employee_name;not null;size:255"`
	Action       string    `json:"action" gorm:"column:action;not null;size:255"`
	Description  string    `json:"description" gorm:"column:description;type:text"`
	Timestamp    time.Time `json:"timestamp" gorm:"column:timestamp;not null;index"`
	CreatedBy    string    `json:"createdBy" gorm:"column:created_by;size:36"`
}

// TableName 指定 ActivityRecord 对应的集合名
func (ActivityRecord) TableName() string {
	return CollectionActivities
}
