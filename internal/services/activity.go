package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sim_inventory/internal/models"
	"github.com/sim_inventory/internal/repositories"
	"github.com/sim_inventory/internal/store"
)

// Actor 是发起操作的已认证用户身份，由 JWT 中间件解出后传入服务层
type Actor struct {
	UID         string
	DisplayName string
	Role        string
}

// Name 返回用于操作日志的展示名
func (a Actor) Name() string {
	if a.DisplayName != "" {
		return a.DisplayName
	}
	return "User"
}

// IsAdmin 判断是否为管理员角色
func (a Actor) IsAdmin() bool {
	return a.Role == models.RoleAdmin
}

// SystemActor 是后台清扫任务使用的身份
var SystemActor = Actor{DisplayName: "System", Role: models.RoleAdmin}

// logActivity 在主操作提交成功后追加一条操作日志。
// 日志写入是尽力而为的：失败只记录到进程日志，不影响主操作的结果。
func logActivity(st *store.Store, executor repositories.BatchExecutor, employeeName, action, description, createdBy string) {
	record := models.ActivityRecord{
		ID:           uuid.NewString(),
		SrNo:         st.NextSrNo(models.CollectionActivities),
		EmployeeName: employeeName,
		Action:       action,
		Description:  description,
		Timestamp:    time.Now(),
		CreatedBy:    createdBy,
	}
	batch := repositories.NewBatch().Set(models.CollectionActivities, record.ID, &record)
	if err := executor.Commit(batch); err != nil {
		log.Printf("写入操作日志失败 [%s]: %v", action, err)
	}
}

// detailedDescription 为批量操作生成带号码清单的描述
func detailedDescription(baseText string, affectedMobiles []string) string {
	if len(affectedMobiles) == 0 {
		return fmt.Sprintf("%s 0 numbers.", baseText)
	}
	return fmt.Sprintf("%s %d numbers: %s.", baseText, len(affectedMobiles), strings.Join(affectedMobiles, ", "))
}
