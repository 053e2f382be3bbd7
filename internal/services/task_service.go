package services

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/sim_inventory/internal/models"
	"github.com/sim_inventory/internal/repositories"
	"github.com/sim_inventory/internal/store"
)

// ErrReminderNotFound 表示提醒记录未找到
var ErrReminderNotFound = errors.New("提醒记录未找到")

// defaultVendors 是下拉列表的固定厂商集合，与历史销售的 soldTo 取并集
var defaultVendors = []string{
	"lifetimenumber",
	"vipnumberstore",
	"vipnumbershop",
	"numberwale",
	"numberspoint",
	"vipfancynumber",
	"numberatm",
	"numbersolution",
}

// NewReminderData 添加任务提醒的输入
type NewReminderData struct {
	TaskName   string    `json:"taskName"`
	AssignedTo string    `json:"assignedTo"`
	DueDate    time.Time `json:"dueDate"`
}

// NewPaymentData 记录厂商付款的输入
type NewPaymentData struct {
	VendorName  string    `json:"vendorName"`
	Amount      float64   `json:"amount"`
	PaymentDate time.Time `json:"paymentDate"`
	Notes       string    `json:"notes"`
}

// TaskService 定义提醒、操作日志与付款的操作
type TaskService interface {
	AddReminder(actor Actor, data NewReminderData) error
	MarkReminderDone(actor Actor, id string, note string) error
	DeleteReminder(actor Actor, id string) error
	RemindersFor(actor Actor) []models.ReminderRecord

	ActivitiesFor(actor Actor) []models.ActivityRecord
	DeleteActivities(actor Actor, ids []string) error

	AddPayment(actor Actor, data NewPaymentData) error
	Payments() []models.PaymentRecord

	Vendors() []string
}

type taskService struct {
	store    *store.Store
	executor repositories.BatchExecutor
}

// NewTaskService 创建任务/日志/付款服务实例
func NewTaskService(st *store.Store, executor repositories.BatchExecutor) TaskService {
	return &taskService{store: st, executor: executor}
}

func (s *taskService) commitAndLog(actor Actor, batch *repositories.Batch, action, description string) error {
	if err := s.executor.Commit(batch); err != nil {
		return err
	}
	logActivity(s.store, s.executor, actor.Name(), action, description, actor.UID)
	return s.store.Refresh()
}

func (s *taskService) AddReminder(actor Actor, data NewReminderData) error {
	record := models.ReminderRecord{
		ID:         uuid.NewString(),
		SrNo:       s.store.NextSrNo(models.CollectionReminders),
		TaskName:   data.TaskName,
		AssignedTo: data.AssignedTo,
		Status:     models.ReminderPending,
		DueDate:    data.DueDate,
		CreatedBy:  actor.UID,
	}
	batch := repositories.NewBatch().Set(models.CollectionReminders, record.ID, &record)
	return s.commitAndLog(actor, batch, "Added Reminder",
		fmt.Sprintf("Assigned task %q to %s", data.TaskName, data.AssignedTo))
}

func (s *taskService) MarkReminderDone(actor Actor, id string, note string) error {
	reminder := s.store.ReminderByID(id)
	if reminder == nil {
		return ErrReminderNotFound
	}
	now := time.Now()
	fields := map[string]interface{}{
		"status":          models.ReminderDone,
		"completion_date": &now,
	}
	if note != "" {
		fields["notes"] = note
	}
	batch := repositories.NewBatch().Update(models.CollectionReminders, id, fields)
	return s.commitAndLog(actor, batch, "Marked Task Done",
		fmt.Sprintf("Completed task: %s", reminder.TaskName))
}

// DeleteReminder 仅管理员可删除提醒
func (s *taskService) DeleteReminder(actor Actor, id string) error {
	if !actor.IsAdmin() {
		return ErrPermissionDenied
	}
	reminder := s.store.ReminderByID(id)
	if reminder == nil {
		return ErrReminderNotFound
	}
	batch := repositories.NewBatch().Delete(models.CollectionReminders, id)
	return s.commitAndLog(actor, batch, "Deleted Reminder",
		fmt.Sprintf("Deleted task: %s", reminder.TaskName))
}

// RemindersFor 按角色过滤：非管理员只看到分配给自己的提醒
func (s *taskService) RemindersFor(actor Actor) []models.ReminderRecord {
	reminders := s.store.Reminders()
	if actor.IsAdmin() {
		return reminders
	}
	filtered := make([]models.ReminderRecord, 0, len(reminders))
	for _, r := range reminders {
		if r.AssignedTo == actor.DisplayName {
			filtered = append(filtered, r)
		}
	}
	return filtered
}

// ActivitiesFor 按角色过滤：非管理员只看到自己产生的日志
func (s *taskService) ActivitiesFor(actor Actor) []models.ActivityRecord {
	activities := s.store.Activities()
	if actor.IsAdmin() {
		return activities
	}
	filtered := make([]models.ActivityRecord, 0, len(activities))
	for _, a := range activities {
		if a.EmployeeName == actor.DisplayName {
			filtered = append(filtered, a)
		}
	}
	return filtered
}

// DeleteActivities 仅管理员可删除日志记录
func (s *taskService) DeleteActivities(actor Actor, ids []string) error {
	if !actor.IsAdmin() {
		return ErrPermissionDenied
	}
	if len(ids) == 0 {
		return ErrEmptySelection
	}
	batch := repositories.NewBatch()
	for _, id := range ids {
		batch.Delete(models.CollectionActivities, id)
	}
	return s.commitAndLog(actor, batch, "Deleted Activities",
		fmt.Sprintf("Deleted %d activity record(s).", len(ids)))
}

func (s *taskService) AddPayment(actor Actor, data NewPaymentData) error {
	record := models.PaymentRecord{
		ID:          uuid.NewString(),
		SrNo:        s.store.NextSrNo(models.CollectionPayments),
		VendorName:  data.VendorName,
		Amount:      data.Amount,
		PaymentDate: data.PaymentDate,
		Notes:       data.Notes,
		CreatedBy:   actor.UID,
	}
	batch := repositories.NewBatch().Set(models.CollectionPayments, record.ID, &record)
	return s.commitAndLog(actor, batch, "Received Payment",
		fmt.Sprintf("Received payment of ₹%.0f from %s.", data.Amount, data.VendorName))
}

func (s *taskService) Payments() []models.PaymentRecord {
	return s.store.Payments()
}

// Vendors 返回固定厂商与历史销售 soldTo 的去重并集，按字典序排序
func (s *taskService) Vendors() []string {
	seen := make(map[string]struct{})
	var vendors []string
	for _, v := range defaultVendors {
		if _, ok := seen[v]; !ok {
			seen[v] = struct{}{}
			vendors = append(vendors, v)
		}
	}
	for _, sale := range s.store.Sales() {
		if sale.SoldTo == "" {
			continue
		}
		if _, ok := seen[sale.SoldTo]; !ok {
			seen[sale.SoldTo] = struct{}{}
			vendors = append(vendors, sale.SoldTo)
		}
	}
	sort.Strings(vendors)
	return vendors
}
