package store

import (
	"sync"
	"time"

	"github.com/sim_inventory/internal/models"
	"github.com/sim_inventory/internal/repositories"
	"github.com/sim_inventory/pkg/utils"
)

// autoRtsWindow 自动转 RTS 标记的有效窗口。
// 窗口内的号码在清扫任务中跳过重复处理。
const autoRtsWindow = 5 * time.Minute

// Store 是全部文档集合的进程内镜像。
// 所有读取（列表、查重、序号分配）走镜像；写入经 BatchExecutor 落库后
// 调用 Refresh 使镜像与数据库重新一致，并通知订阅者。
type Store struct {
	repo repositories.CollectionRepository

	mu              sync.RWMutex
	numbers         []models.NumberRecord
	sales           []models.SaleRecord
	portOuts        []models.PortOutRecord
	preBookings     []models.PreBookingRecord
	dealerPurchases []models.DealerPurchaseRecord
	reminders       []models.ReminderRecord
	activities      []models.ActivityRecord
	payments        []models.PaymentRecord

	// 最近被清扫任务自动转为 RTS 的号码 id 及标记时间
	autoRts map[string]time.Time

	subMu       sync.Mutex
	subscribers []func()
}

// NewStore 创建一个空镜像，调用 Refresh 后才可用
func NewStore(repo repositories.CollectionRepository) *Store {
	return &Store{
		repo:    repo,
		autoRts: make(map[string]time.Time),
	}
}

// Refresh 从数据库全量重载全部集合并通知订阅者。
// 任何一个集合加载失败则镜像保持原状。
func (s *Store) Refresh() error {
	numbers, err := s.repo.ListNumbers()
	if err != nil {
		return err
	}
	sales, err := s.repo.ListSales()
	if err != nil {
		return err
	}
	portOuts, err := s.repo.ListPortOuts()
	if err != nil {
		return err
	}
	preBookings, err := s.repo.ListPreBookings()
	if err != nil {
		return err
	}
	dealerPurchases, err := s.repo.ListDealerPurchases()
	if err != nil {
		return err
	}
	reminders, err := s.repo.ListReminders()
	if err != nil {
		return err
	}
	activities, err := s.repo.ListActivities()
	if err != nil {
		return err
	}
	payments, err := s.repo.ListPayments()
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.numbers = numbers
	s.sales = sales
	s.portOuts = portOuts
	s.preBookings = preBookings
	s.dealerPurchases = dealerPurchases
	s.reminders = reminders
	s.activities = activities
	s.payments = payments
	s.mu.Unlock()

	s.notify()
	return nil
}

// Subscribe 注册镜像刷新后的回调。回调在 Refresh 的调用协程中同步执行。
func (s *Store) Subscribe(fn func()) {
	s.subMu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.subMu.Unlock()
}

func (s *Store) notify() {
	s.subMu.Lock()
	subs := make([]func(), len(s.subscribers))
	copy(subs, s.subscribers)
	s.subMu.Unlock()
	for _, fn := range subs {
		fn()
	}
}

// Numbers 返回主库存集合的副本
func (s *Store) Numbers() []models.NumberRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.NumberRecord, len(s.numbers))
	copy(out, s.numbers)
	return out
}

// Sales 返回销售集合的副本
func (s *Store) Sales() []models.SaleRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.SaleRecord, len(s.sales))
	copy(out, s.sales)
	return out
}

// PortOuts 返回携出集合的副本
func (s *Store) PortOuts() []models.PortOutRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PortOutRecord, len(s.portOuts))
	copy(out, s.portOuts)
	return out
}

// PreBookings 返回预订集合的副本
func (s *Store) PreBookings() []models.PreBookingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PreBookingRecord, len(s.preBookings))
	copy(out, s.preBookings)
	return out
}

// DealerPurchases 返回经销商购买集合的副本
func (s *Store) DealerPurchases() []models.DealerPurchaseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.DealerPurchaseRecord, len(s.dealerPurchases))
	copy(out, s.dealerPurchases)
	return out
}

// Reminders 返回提醒集合的副本
func (s *Store) Reminders() []models.ReminderRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ReminderRecord, len(s.reminders))
	copy(out, s.reminders)
	return out
}

// Activities 返回操作日志集合的副本
func (s *Store) Activities() []models.ActivityRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.ActivityRecord, len(s.activities))
	copy(out, s.activities)
	return out
}

// Payments 返回付款集合的副本
func (s *Store) Payments() []models.PaymentRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.PaymentRecord, len(s.payments))
	copy(out, s.payments)
	return out
}

// NumberByID 按 id 查找库存号码，未找到返回 nil
func (s *Store) NumberByID(id string) *models.NumberRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.numbers {
		if s.numbers[i].ID == id {
			record := s.numbers[i]
			return &record
		}
	}
	return nil
}

// SaleByID 按 id 查找销售记录，未找到返回 nil
func (s *Store) SaleByID(id string) *models.SaleRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.sales {
		if s.sales[i].ID == id {
			record := s.sales[i]
			return &record
		}
	}
	return nil
}

// PortOutByID 按 id 查找携出记录，未找到返回 nil
func (s *Store) PortOutByID(id string) *models.PortOutRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.portOuts {
		if s.portOuts[i].ID == id {
			record := s.portOuts[i]
			return &record
		}
	}
	return nil
}

// PreBookingByID 按 id 查找预订记录，未找到返回 nil
func (s *Store) PreBookingByID(id string) *models.PreBookingRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.preBookings {
		if s.preBookings[i].ID == id {
			record := s.preBookings[i]
			return &record
		}
	}
	return nil
}

// DealerPurchaseByID 按 id 查找经销商购买记录，未找到返回 nil
func (s *Store) DealerPurchaseByID(id string) *models.DealerPurchaseRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.dealerPurchases {
		if s.dealerPurchases[i].ID == id {
			record := s.dealerPurchases[i]
			return &record
		}
	}
	return nil
}

// ReminderByID 按 id 查找提醒记录，未找到返回 nil
func (s *Store) ReminderByID(id string) *models.ReminderRecord {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.reminders {
		if s.reminders[i].ID == id {
			record := s.reminders[i]
			return &record
		}
	}
	return nil
}

// NextSrNo 为指定集合分配下一个展示序号（当前最大值加一）。
// 序号基于镜像计算，并发导入下可能重复；序号仅用于展示，不作为键。
func (s *Store) NextSrNo(collection string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var existing []int
	switch collection {
	case models.CollectionNumbers:
		for i := range s.numbers {
			existing = append(existing, s.numbers[i].SrNo)
		}
	case models.CollectionSales:
		for i := range s.sales {
			existing = append(existing, s.sales[i].SrNo)
		}
	case models.CollectionPortOuts:
		for i := range s.portOuts {
			existing = append(existing, s.portOuts[i].SrNo)
		}
	case models.CollectionPreBookings:
		for i := range s.preBookings {
			existing = append(existing, s.preBookings[i].SrNo)
		}
	case models.CollectionDealerPurchases:
		for i := range s.dealerPurchases {
			existing = append(existing, s.dealerPurchases[i].SrNo)
		}
	case models.CollectionReminders:
		for i := range s.reminders {
			existing = append(existing, s.reminders[i].SrNo)
		}
	case models.CollectionPayments:
		for i := range s.payments {
			existing = append(existing, s.payments[i].SrNo)
		}
	case models.CollectionActivities:
		for i := range s.activities {
			existing = append(existing, s.activities[i].SrNo)
		}
	}
	return utils.NextSrNo(existing)
}

// IsMobileNumberDuplicate 检查手机号码是否已存在于
// numbers/sales/portouts/prebookings/dealerPurchases 五个集合的并集中。
// excludeID 非空时跳过对应 id 的记录（用于编辑自身）。
func (s *Store) IsMobileNumberDuplicate(mobile string, excludeID string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.numbers {
		if s.numbers[i].Mobile == mobile && s.numbers[i].ID != excludeID {
			return true
		}
	}
	for i := range s.sales {
		if s.sales[i].Mobile == mobile && s.sales[i].ID != excludeID {
			return true
		}
	}
	for i := range s.portOuts {
		if s.portOuts[i].Mobile == mobile && s.portOuts[i].ID != excludeID {
			return true
		}
	}
	for i := range s.preBookings {
		if s.preBookings[i].Mobile == mobile && s.preBookings[i].ID != excludeID {
			return true
		}
	}
	for i := range s.dealerPurchases {
		if s.dealerPurchases[i].Mobile == mobile && s.dealerPurchases[i].ID != excludeID {
			return true
		}
	}
	return false
}

// MarkAutoRts 记录一批刚被自动转为 RTS 的号码 id
func (s *Store) MarkAutoRts(ids []string) {
	now := time.Now()
	s.mu.Lock()
	for _, id := range ids {
		s.autoRts[id] = now
	}
	s.mu.Unlock()
}

// RecentlyAutoRts 判断号码是否在有效窗口内被自动转为 RTS，
// 并顺带清理已过期的标记。
func (s *Store) RecentlyAutoRts(id string) bool {
	now := time.Now()
	s.mu.Lock()
	defer s.mu.Unlock()
	for key, at := range s.autoRts {
		if now.Sub(at) > autoRtsWindow {
			delete(s.autoRts, key)
		}
	}
	_, ok := s.autoRts[id]
	return ok
}
