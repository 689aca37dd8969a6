package services

import (
	"fmt"
	"log"
	"reflect"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	// DefaultParentField 子表指向品牌的外键列名
	DefaultParentField = "brand_id"
	// DefaultOrderField 用户自定义排序列名
	DefaultOrderField = "order_index"
	// persistedIDLength 标准UUID字符串长度，短于此长度的id视为未持久化
	persistedIDLength = 36
)

// ReconcileOptions 列表对账选项
type ReconcileOptions struct {
	ParentField string // 为空时使用 brand_id
	OrderField  string // 为空时使用 order_index
	NoOrdering  bool   // true时不写排序列
}

// ReconcileResult 一次对账的执行结果
type ReconcileResult struct {
	Created int      `json:"created"`
	Updated int      `json:"updated"`
	Deleted int      `json:"deleted"`
	Skipped int      `json:"skipped"` // 带持久化id但库中不存在的条目数
	Errors  []string `json:"errors,omitempty"`
}

// itemIdentity 条目的持久化身份
// 在入口处一次性判定，后续流程不再检查id形态。
type itemIdentity struct {
	persisted bool
	id        string
}

// ReconcileService 安全列表对账服务
// 用目标列表替换品牌的某个子表集合：未持久化条目批量插入、
// 字段有变化的条目逐行更新、目标列表缺失的行批量删除，
// 三个阶段在同一数据库事务内执行，任一错误整体回滚。
type ReconcileService struct {
	db *gorm.DB
}

// NewReconcileService 创建对账服务实例
func NewReconcileService(db *gorm.DB) *ReconcileService {
	return &ReconcileService{db: db}
}

// Reconcile 将品牌的某个子表集合对齐为目标列表
func (s *ReconcileService) Reconcile(table, brandID string, items []map[string]interface{}, opts *ReconcileOptions) (*ReconcileResult, error) {
	opts = normalizeOptions(opts)
	result := &ReconcileResult{}

	// 1. 读取现有数据，作为权威的"对账前"集合；读取失败立即中止，不写任何数据
	existing, err := s.fetchExisting(table, opts.ParentField, brandID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch existing rows from %s: %v", table, err)
	}

	existingByID := make(map[string]map[string]interface{}, len(existing))
	for _, row := range existing {
		existingByID[stringValue(row["id"])] = row
	}

	now := time.Now()
	var toCreate []map[string]interface{}
	type pendingUpdate struct {
		id     string
		fields map[string]interface{}
	}
	var toUpdate []pendingUpdate
	targetIDs := make(map[string]bool)

	// 2. 分类目标条目
	for position, item := range items {
		identity := identityOf(item)

		if !identity.persisted {
			// 新条目：去掉临时id，补上外键、排序和时间戳，由服务端签发正式UUID
			row := copyWithout(item, "id")
			row["id"] = uuid.NewString()
			row[opts.ParentField] = brandID
			if !opts.NoOrdering {
				row[opts.OrderField] = position
			}
			row["created_at"] = now
			row["updated_at"] = now
			toCreate = append(toCreate, row)
			continue
		}

		targetIDs[identity.id] = true

		existingRow, found := existingByID[identity.id]
		if !found {
			// 条目带持久化形态的id但库中没有对应行，按现行约定不做任何写入
			log.Printf("⚠️ 对账跳过未知id: table=%s id=%s", table, identity.id)
			result.Skipped++
			continue
		}

		fields := copyWithout(item, "id")
		if !opts.NoOrdering {
			fields[opts.OrderField] = position
		}
		if fieldsChanged(fields, existingRow) {
			fields["updated_at"] = now
			delete(fields, "created_at")
			toUpdate = append(toUpdate, pendingUpdate{id: identity.id, fields: fields})
		}
	}

	// 3. 目标列表中不存在的现有行进入删除集合
	var toDelete []string
	for id := range existingByID {
		if !targetIDs[id] {
			toDelete = append(toDelete, id)
		}
	}

	if len(toCreate) == 0 && len(toUpdate) == 0 && len(toDelete) == 0 {
		return result, nil
	}

	// 4. 三个阶段包在同一事务里：走完全部阶段、汇总逐行错误后再决定提交或回滚
	err = s.db.Transaction(func(tx *gorm.DB) error {
		if len(toCreate) > 0 {
			if err := tx.Table(table).Create(&toCreate).Error; err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("insert into %s failed: %v", table, err))
			} else {
				result.Created = len(toCreate)
			}
		}

		// 更新逐行顺序执行，列表规模在几十行以内，延迟可接受
		for _, upd := range toUpdate {
			if err := tx.Table(table).Where("id = ?", upd.id).Updates(upd.fields).Error; err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("update %s id=%s failed: %v", table, upd.id, err))
			} else {
				result.Updated++
			}
		}

		if len(toDelete) > 0 {
			if err := tx.Exec(fmt.Sprintf("DELETE FROM %s WHERE id IN ?", table), toDelete).Error; err != nil {
				result.Errors = append(result.Errors, fmt.Sprintf("delete from %s failed: %v", table, err))
			} else {
				result.Deleted = len(toDelete)
			}
		}

		if len(result.Errors) > 0 {
			return fmt.Errorf("reconcile %s completed with %d error(s): %s",
				table, len(result.Errors), strings.Join(result.Errors, "; "))
		}
		return nil
	})

	if err != nil {
		// 事务已回滚，计数清零
		result.Created, result.Updated, result.Deleted = 0, 0, 0
		return result, err
	}

	log.Printf("✅ 对账完成: table=%s brand=%s created=%d updated=%d deleted=%d skipped=%d",
		table, brandID, result.Created, result.Updated, result.Deleted, result.Skipped)
	return result, nil
}

// AddItem 在列表末尾新增单个子表行
func (s *ReconcileService) AddItem(table, brandID string, item map[string]interface{}, opts *ReconcileOptions) (map[string]interface{}, error) {
	opts = normalizeOptions(opts)
	now := time.Now()

	row := copyWithout(item, "id")
	row["id"] = uuid.NewString()
	row[opts.ParentField] = brandID
	row["created_at"] = now
	row["updated_at"] = now

	if !opts.NoOrdering {
		var count int64
		if err := s.db.Table(table).Where(opts.ParentField+" = ?", brandID).Count(&count).Error; err != nil {
			return nil, fmt.Errorf("failed to count existing rows in %s: %v", table, err)
		}
		row[opts.OrderField] = int(count)
	}

	if err := s.db.Table(table).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("insert into %s failed: %v", table, err)
	}
	return row, nil
}

// UpdateItem 更新单个子表行
func (s *ReconcileService) UpdateItem(table, id string, fields map[string]interface{}) error {
	var count int64
	if err := s.db.Table(table).Where("id = ?", id).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check row in %s: %v", table, err)
	}
	if count == 0 {
		return gorm.ErrRecordNotFound
	}

	payload := copyWithout(fields, "id")
	delete(payload, "created_at")
	payload["updated_at"] = time.Now()

	if err := s.db.Table(table).Where("id = ?", id).Updates(payload).Error; err != nil {
		return fmt.Errorf("update %s id=%s failed: %v", table, id, err)
	}
	return nil
}

// DeleteItem 删除单个子表行
func (s *ReconcileService) DeleteItem(table, id string) error {
	res := s.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", table), id)
	if res.Error != nil {
		return fmt.Errorf("delete from %s failed: %v", table, res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReorderItems 按传入id顺序持久化排序列，每行一次更新
func (s *ReconcileService) ReorderItems(table string, ids []string, opts *ReconcileOptions) error {
	opts = normalizeOptions(opts)
	now := time.Now()

	return s.db.Transaction(func(tx *gorm.DB) error {
		for position, id := range ids {
			err := tx.Table(table).Where("id = ?", id).Updates(map[string]interface{}{
				opts.OrderField: position,
				"updated_at":    now,
			}).Error
			if err != nil {
				return fmt.Errorf("reorder %s id=%s failed: %v", table, id, err)
			}
		}
		return nil
	})
}

// fetchExisting 读取品牌在指定子表的全部现有行
func (s *ReconcileService) fetchExisting(table, parentField, brandID string) ([]map[string]interface{}, error) {
	var rows []map[string]interface{}
	err := s.db.Table(table).Where(parentField+" = ?", brandID).Find(&rows).Error
	return rows, err
}

// identityOf 判定条目的持久化身份
// 无id或id短于标准UUID长度的条目视为尚未持久化。
func identityOf(item map[string]interface{}) itemIdentity {
	id := stringValue(item["id"])
	if len(id) < persistedIDLength {
		return itemIdentity{persisted: false}
	}
	return itemIdentity{persisted: true, id: id}
}

// fieldsChanged 深度比较目标字段与现有行，时间戳字段不参与比较
func fieldsChanged(fields map[string]interface{}, existingRow map[string]interface{}) bool {
	for key, value := range fields {
		if key == "created_at" || key == "updated_at" {
			continue
		}
		if !valuesEqual(value, existingRow[key]) {
			return true
		}
	}
	return false
}

// valuesEqual 归一化后的深度值比较
// 数据库驱动返回的数值类型([]byte/int64/float64)与JSON反序列化出的
// 类型(string/float64)不一致，先归一化再比较。
func valuesEqual(a, b interface{}) bool {
	na, nb := normalizeValue(a), normalizeValue(b)
	return reflect.DeepEqual(na, nb)
}

// normalizeValue 将标量值归一化为可比较的形态
func normalizeValue(v interface{}) interface{} {
	switch val := v.(type) {
	case []byte:
		return string(val)
	case bool:
		if val {
			return float64(1)
		}
		return float64(0)
	case int:
		return float64(val)
	case int8:
		return float64(val)
	case int16:
		return float64(val)
	case int32:
		return float64(val)
	case int64:
		return float64(val)
	case uint:
		return float64(val)
	case uint8:
		return float64(val)
	case uint16:
		return float64(val)
	case uint32:
		return float64(val)
	case uint64:
		return float64(val)
	case float32:
		return float64(val)
	case time.Time:
		return val.UTC().Format(time.RFC3339Nano)
	default:
		return v
	}
}

// stringValue 从任意驱动返回类型提取字符串
func stringValue(v interface{}) string {
	switch val := v.(type) {
	case string:
		return val
	case []byte:
		return string(val)
	default:
		return ""
	}
}

// copyWithout 浅拷贝map并去掉指定键
func copyWithout(src map[string]interface{}, exclude string) map[string]interface{} {
	dst := make(map[string]interface{}, len(src))
	for k, v := range src {
		if k == exclude {
			continue
		}
		dst[k] = v
	}
	return dst
}

// normalizeOptions 填充对账选项默认值
func normalizeOptions(opts *ReconcileOptions) *ReconcileOptions {
	normalized := &ReconcileOptions{
		ParentField: DefaultParentField,
		OrderField:  DefaultOrderField,
	}
	if opts != nil {
		if opts.ParentField != "" {
			normalized.ParentField = opts.ParentField
		}
		if opts.OrderField != "" {
			normalized.OrderField = opts.OrderField
		}
		normalized.NoOrdering = opts.NoOrdering
	}
	return normalized
}
