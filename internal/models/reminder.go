package models

import (
	"time"
)

// 提醒状态
const (
	ReminderPending = "Pending"
	ReminderDone    = "Done"
)

// ReminderRecord 对应于任务提醒集合 reminders 中的一条文档。
// 完成满 7 天的提醒由后台清扫任务自动删除。
type ReminderRecord struct {
	ID             string     `json:"id" gorm:"primaryKey;size:36"`
	SrNo           int        `json:"srNo" gorm:"column:sr_no;not null"`
	TaskName       string     `json:"taskName" gorm:"column:task_name;not null;size:255"`
	AssignedTo     string     `json:"assignedTo" gorm:"column:assigned_to;not null;size:255"`
	Status         string     `json:"status" gorm:"column:status;not null;default:'Pending';size:20"`
	DueDate        time.Time  `json:"dueDate" gorm:"column:due_date;not null"`
	CompletionDate *time.Time `json:"completionDate" gorm:"column:completion_date"` // 状态置为 Done 时写入
	Notes          string     `json:"notes" gorm:"column:notes;type:text"`
	CreatedBy      string     `json:"createdBy" gorm:"column:created_by;size:36"`
}

// TableName 指定 ReminderRecord 对应的集合名
func (ReminderRecord) TableName() string {
	return CollectionReminders
}
