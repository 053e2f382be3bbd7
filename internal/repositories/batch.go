package repositories

import (
	"errors"
	"fmt"

	"github.com/sim_inventory/internal/models"
	"gorm.io/gorm"
)

// ErrUnknownCollection 表示批处理操作引用了未注册的集合名
var ErrUnknownCollection = errors.New("未知的集合名")

// ErrDocumentNotFound 表示按 id 寻址的文档不存在
var ErrDocumentNotFound = errors.New("文档未找到")

// batchOpKind 批处理操作类型
type batchOpKind string

const (
	opSet    batchOpKind = "set"
	opUpdate batchOpKind = "update"
	opDelete batchOpKind = "delete"
)

// batchOp 是批处理中的一条待执行操作
type batchOp struct {
	kind       batchOpKind
	collection string
	id         string
	record     interface{}            // set 时为完整文档
	fields     map[string]interface{} // update 时为列名到新值的映射
}

// BatchError 携带失败操作的定位信息，便于调用方报告是哪条写入失败
type BatchError struct {
	Path string // collection/id
	Op   string
	Err  error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("批量写入失败 [%s %s]: %v", e.Op, e.Path, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}

// collectionModels 将集合名映射到对应模型的空实例构造器。
// update/delete 按此确定目标表。
var collectionModels = map[string]func() interface{}{
	models.CollectionNumbers:         func() interface{} { return &models.NumberRecord{} },
	models.CollectionSales:           func() interface{} { return &models.SaleRecord{} },
	models.CollectionPortOuts:        func() interface{} { return &models.PortOutRecord{} },
	models.CollectionPreBookings:     func() interface{} { return &models.PreBookingRecord{} },
	models.CollectionDealerPurchases: func() interface{} { return &models.DealerPurchaseRecord{} },
	models.CollectionReminders:       func() interface{} { return &models.ReminderRecord{} },
	models.CollectionActivities:      func() interface{} { return &models.ActivityRecord{} },
	models.CollectionPayments:        func() interface{} { return &models.PaymentRecord{} },
	models.CollectionUsers:           func() interface{} { return &models.User{} },
}

// Batch 累积一组跨集合写入，Commit 时在单个事务内按序执行。
// 任何一条操作失败则整个事务回滚，保证跨集合迁移的原子性。
type Batch struct {
	ops []batchOp
}

// NewBatch 创建一个空的写入批次
func NewBatch() *Batch {
	return &Batch{}
}

// Set 追加一条完整文档写入（插入）
func (b *Batch) Set(collection, id string, record interface{}) *Batch {
	b.ops = append(b.ops, batchOp{kind: opSet, collection: collection, id: id, record: record})
	return b
}

// Update 追加一条按 id 的部分字段更新，fields 的键为数据库列名
func (b *Batch) Update(collection, id string, fields map[string]interface{}) *Batch {
	b.ops = append(b.ops, batchOp{kind: opUpdate, collection: collection, id: id, fields: fields})
	return b
}

// Delete 追加一条按 id 的删除
func (b *Batch) Delete(collection, id string) *Batch {
	b.ops = append(b.ops, batchOp{kind: opDelete, collection: collection, id: id})
	return b
}

// Len 返回批次中累积的操作数
func (b *Batch) Len() int {
	return len(b.ops)
}

// BatchExecutor 定义批量写入执行器的接口
type BatchExecutor interface {
	Commit(batch *Batch) error
}

// gormBatchExecutor 是 BatchExecutor 的 GORM 实现
type gormBatchExecutor struct {
	db *gorm.DB
}

// NewGormBatchExecutor 创建一个新的 gormBatchExecutor 实例
func NewGormBatchExecutor(db *gorm.DB) BatchExecutor {
	return &gormBatchExecutor{db: db}
}

// Commit 在单个事务内按追加顺序执行批次中的全部操作
func (e *gormBatchExecutor) Commit(batch *Batch) error {
	if batch == nil || len(batch.ops) == 0 {
		return nil
	}
	return e.db.Transaction(func(tx *gorm.DB) error {
		for _, op := range batch.ops {
			if err := applyOp(tx, op); err != nil {
				return &BatchError{
					Path: op.collection + "/" + op.id,
					Op:   string(op.kind),
					Err:  err,
				}
			}
		}
		return nil
	})
}

func applyOp(tx *gorm.DB, op batchOp) error {
	newModel, ok := collectionModels[op.collection]
	if !ok {
		return ErrUnknownCollection
	}
	switch op.kind {
	case opSet:
		return tx.Create(op.record).Error
	case opUpdate:
		result := tx.Model(newModel()).Where("id = ?", op.id).Updates(op.fields)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrDocumentNotFound
		}
		return nil
	case opDelete:
		result := tx.Where("id = ?", op.id).Delete(newModel())
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return ErrDocumentNotFound
		}
		return nil
	default:
		return fmt.Errorf("不支持的批处理操作类型: %s", op.kind)
	}
}
