package services

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/sim_inventory/internal/models"
	"github.com/sim_inventory/internal/repositories"
	"github.com/sim_inventory/internal/store"
)

// 清扫周期
const (
	rtsSweepInterval         = time.Minute
	safeCustodySweepInterval = time.Hour
	reminderPruneInterval    = 24 * time.Hour
	reminderRetention        = 7 * 24 * time.Hour
)

// SweepService 是后台一致性清扫：到期 Non-RTS 自动转 RTS、
// 到期 COCP 托管日期打一次性通知标记、过期已完成提醒清理。
// 每轮都基于记录自身状态做幂等判断，重叠执行是安全的。
type SweepService struct {
	store    *store.Store
	executor repositories.BatchExecutor
	now      func() time.Time
}

// NewSweepService 创建清扫服务实例
func NewSweepService(st *store.Store, executor repositories.BatchExecutor) *SweepService {
	return &SweepService{store: st, executor: executor, now: time.Now}
}

// Start 各清扫先立即执行一轮，然后按各自周期循环，ctx 取消后全部停止
func (s *SweepService) Start(ctx context.Context) {
	go s.loop(ctx, rtsSweepInterval, s.SweepRtsDates)
	go s.loop(ctx, safeCustodySweepInterval, s.SweepSafeCustodyDates)
	go s.loop(ctx, reminderPruneInterval, s.PruneCompletedReminders)
}

func (s *SweepService) loop(ctx context.Context, interval time.Duration, sweep func() error) {
	if err := sweep(); err != nil {
		log.Printf("后台清扫执行失败: %v", err)
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := sweep(); err != nil {
				log.Printf("后台清扫执行失败: %v", err)
			}
		}
	}
}

// dateArrived 判断日期是否为今天或更早（按本地日历日比较）
func dateArrived(date time.Time, now time.Time) bool {
	y1, m1, d1 := date.Date()
	y2, m2, d2 := now.Date()
	if y1 != y2 {
		return y1 < y2
	}
	if m1 != m2 {
		return m1 < m2
	}
	return d1 <= d2
}

// SweepRtsDates 将 rtsDate 已到期的 Non-RTS 号码整批转为 RTS，
// 并把受影响的 id 放入最近自动转换集合供界面高亮。
func (s *SweepService) SweepRtsDates() error {
	now := s.now()
	var due []models.NumberRecord
	for _, num := range s.store.Numbers() {
		if num.Status == models.StatusNonRTS && num.RTSDate != nil && dateArrived(*num.RTSDate, now) {
			due = append(due, num)
		}
	}
	if len(due) == 0 {
		return nil
	}

	batch := repositories.NewBatch()
	var ids []string
	for _, num := range due {
		ids = append(ids, num.ID)
		batch.Update(models.CollectionNumbers, num.ID, map[string]interface{}{
			"status":   models.StatusRTS,
			"rts_date": nil,
		})
	}
	if err := s.executor.Commit(batch); err != nil {
		return err
	}
	// 只在确实落库之后才标记高亮
	s.store.MarkAutoRts(ids)
	for _, num := range due {
		logActivity(s.store, s.executor, SystemActor.Name(), "Auto-updated to RTS",
			fmt.Sprintf("Number %s automatically became RTS.", num.Mobile), "")
	}
	return s.store.Refresh()
}

// SweepSafeCustodyDates 为托管日期已到的 COCP 号码打一次性通知标记
func (s *SweepService) SweepSafeCustodyDates() error {
	now := s.now()
	var due []models.NumberRecord
	for _, num := range s.store.Numbers() {
		if num.NumberType == models.NumberTypeCOCP &&
			num.SafeCustodyDate != nil &&
			!num.SafeCustodyNotificationSent &&
			dateArrived(*num.SafeCustodyDate, now) {
			due = append(due, num)
		}
	}
	if len(due) == 0 {
		return nil
	}

	batch := repositories.NewBatch()
	for _, num := range due {
		batch.Update(models.CollectionNumbers, num.ID, map[string]interface{}{
			"safe_custody_notification_sent": true,
		})
	}
	if err := s.executor.Commit(batch); err != nil {
		return err
	}
	for _, num := range due {
		logActivity(s.store, s.executor, SystemActor.Name(), "Safe Custody Date Arrived",
			fmt.Sprintf("Safe Custody Date for COCP number %s has arrived.", num.Mobile), "")
	}
	return s.store.Refresh()
}

// PruneCompletedReminders 删除完成满 7 天的提醒并记一条汇总日志
func (s *SweepService) PruneCompletedReminders() error {
	cutoff := s.now().Add(-reminderRetention)
	var expired []models.ReminderRecord
	for _, reminder := range s.store.Reminders() {
		if reminder.Status == models.ReminderDone &&
			reminder.CompletionDate != nil &&
			reminder.CompletionDate.Before(cutoff) {
			expired = append(expired, reminder)
		}
	}
	if len(expired) == 0 {
		return nil
	}

	batch := repositories.NewBatch()
	for _, reminder := range expired {
		batch.Delete(models.CollectionReminders, reminder.ID)
	}
	if err := s.executor.Commit(batch); err != nil {
		return err
	}
	logActivity(s.store, s.executor, SystemActor.Name(), "Auto-deleted reminders",
		fmt.Sprintf("Automatically deleted %d completed reminder(s) older than 7 days.", len(expired)), "")
	return s.store.Refresh()
}
