package services

import (
	"testing"
	"time"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// setupTestDB 创建内存SQLite测试数据库
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.Brand{},
		&models.Campaign{},
		&models.BrandMessage{},
		&models.Objective{},
		&models.Persona{},
		&models.Competitor{},
		&models.ContentItem{},
		&models.SwotEntry{},
		&models.MarketAnalysis{},
		&models.ResearchFile{},
	)
	require.NoError(t, err)

	return db
}

// seedTestBrand 插入测试品牌并返回其ID
func seedTestBrand(t *testing.T, db *gorm.DB) string {
	t.Helper()

	brand := models.Brand{Slug: "test-brand", Name: "Test Brand"}
	require.NoError(t, db.Create(&brand).Error)
	return brand.ID
}

// seedCompetitor 直接插入一条竞争对手记录
func seedCompetitor(t *testing.T, db *gorm.DB, brandID, name string, order int) string {
	t.Helper()

	comp := models.Competitor{
		ID:         uuid.NewString(),
		BrandID:    brandID,
		Name:       name,
		OrderIndex: order,
	}
	require.NoError(t, db.Create(&comp).Error)
	return comp.ID
}

// loadCompetitors 按排序读出品牌的全部竞争对手
func loadCompetitors(t *testing.T, db *gorm.DB, brandID string) []models.Competitor {
	t.Helper()

	var comps []models.Competitor
	require.NoError(t, db.Where("brand_id = ?", brandID).Order("order_index ASC").Find(&comps).Error)
	return comps
}

func TestReconcile_PureAddition(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	existingID := seedCompetitor(t, db, brandID, "Acme", 0)
	svc := NewReconcileService(db)

	result, err := svc.Reconcile("competitors", brandID, []map[string]interface{}{
		{"id": existingID, "name": "Acme"},
		{"name": "Globex"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Deleted)

	comps := loadCompetitors(t, db, brandID)
	require.Len(t, comps, 2)
	assert.Equal(t, existingID, comps[0].ID)
	assert.Equal(t, "Globex", comps[1].Name)
	// 新行拿到服务端签发的标准UUID
	assert.Len(t, comps[1].ID, 36)
}

func TestReconcile_PureRemoval(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	idA := seedCompetitor(t, db, brandID, "Acme", 0)
	idB := seedCompetitor(t, db, brandID, "Globex", 1)
	svc := NewReconcileService(db)

	result, err := svc.Reconcile("competitors", brandID, []map[string]interface{}{
		{"id": idA, "name": "Acme"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 1, result.Deleted)

	comps := loadCompetitors(t, db, brandID)
	require.Len(t, comps, 1)
	assert.Equal(t, idA, comps[0].ID)

	var count int64
	db.Model(&models.Competitor{}).Where("id = ?", idB).Count(&count)
	assert.Zero(t, count)
}

func TestReconcile_PureModification(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	idA := seedCompetitor(t, db, brandID, "Acme", 0)
	svc := NewReconcileService(db)

	result, err := svc.Reconcile("competitors", brandID, []map[string]interface{}{
		{"id": idA, "name": "Acme Corp"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 0, result.Deleted)

	comps := loadCompetitors(t, db, brandID)
	require.Len(t, comps, 1)
	assert.Equal(t, idA, comps[0].ID)
	assert.Equal(t, "Acme Corp", comps[0].Name)
}

func TestReconcile_MixedBatch(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	idA := seedCompetitor(t, db, brandID, "Acme", 0)
	idB := seedCompetitor(t, db, brandID, "Globex", 1)
	svc := NewReconcileService(db)

	result, err := svc.Reconcile("competitors", brandID, []map[string]interface{}{
		{"id": idA, "name": "Acme Corp"},
		{"name": "Initech"},
	}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, result.Created)
	assert.Equal(t, 1, result.Updated)
	assert.Equal(t, 1, result.Deleted)

	comps := loadCompetitors(t, db, brandID)
	require.Len(t, comps, 2)
	assert.Equal(t, "Acme Corp", comps[0].Name)
	assert.Equal(t, "Initech", comps[1].Name)

	var count int64
	db.Model(&models.Competitor{}).Where("id = ?", idB).Count(&count)
	assert.Zero(t, count)
}

func TestReconcile_Idempotent(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	svc := NewReconcileService(db)

	_, err := svc.Reconcile("competitors", brandID, []map[string]interface{}{
		{"name": "Acme"},
		{"name": "Globex"},
	}, nil)
	require.NoError(t, err)

	// 用落库后的状态重放同一列表，第二次不应产生任何写操作
	comps := loadCompetitors(t, db, brandID)
	require.Len(t, comps, 2)
	items := make([]map[string]interface{}, 0, len(comps))
	for _, comp := range comps {
		items = append(items, map[string]interface{}{
			"id":   comp.ID,
			"name": comp.Name,
		})
	}

	result, err := svc.Reconcile("competitors", brandID, items, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Deleted)
}

func TestReconcile_CreateClassification(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	svc := NewReconcileService(db)

	// 无id和短id的条目都走创建路径，临时id不落库
	result, err := svc.Reconcile("competitors", brandID, []map[string]interface{}{
		{"name": "NoID"},
		{"id": "tmp-123", "name": "ShortID"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)

	comps := loadCompetitors(t, db, brandID)
	require.Len(t, comps, 2)
	for _, comp := range comps {
		assert.Len(t, comp.ID, 36)
		assert.NotEqual(t, "tmp-123", comp.ID)
		assert.Equal(t, brandID, comp.BrandID)
	}
}

func TestReconcile_TimestampFieldsIgnored(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	idA := seedCompetitor(t, db, brandID, "Acme", 0)
	svc := NewReconcileService(db)

	// 只有时间戳不同的条目不应触发更新
	result, err := svc.Reconcile("competitors", brandID, []map[string]interface{}{
		{"id": idA, "name": "Acme", "updated_at": time.Now().Add(time.Hour)},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, result.Updated)
}

func TestReconcile_OrderIndexAssignment(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	idA := seedCompetitor(t, db, brandID, "Acme", 0)
	idB := seedCompetitor(t, db, brandID, "Globex", 1)
	svc := NewReconcileService(db)

	// 目标列表交换顺序，排序列按目标位置重写
	result, err := svc.Reconcile("competitors", brandID, []map[string]interface{}{
		{"id": idB, "name": "Globex"},
		{"id": idA, "name": "Acme"},
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Updated)

	comps := loadCompetitors(t, db, brandID)
	require.Len(t, comps, 2)
	assert.Equal(t, idB, comps[0].ID)
	assert.Equal(t, 0, comps[0].OrderIndex)
	assert.Equal(t, idA, comps[1].ID)
	assert.Equal(t, 1, comps[1].OrderIndex)
}

func TestReconcile_UnknownPersistedIDSkipped(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	idA := seedCompetitor(t, db, brandID, "Acme", 0)
	svc := NewReconcileService(db)

	phantomID := uuid.NewString()
	result, err := svc.Reconcile("competitors", brandID, []map[string]interface{}{
		{"id": idA, "name": "Acme"},
		{"id": phantomID, "name": "Phantom"},
	}, nil)
	require.NoError(t, err)

	// 带持久化形态id但库中不存在的条目按约定不产生任何写入
	assert.Equal(t, 0, result.Created)
	assert.Equal(t, 0, result.Updated)
	assert.Equal(t, 0, result.Deleted)
	assert.Equal(t, 1, result.Skipped)

	comps := loadCompetitors(t, db, brandID)
	require.Len(t, comps, 1)
	assert.Equal(t, idA, comps[0].ID)
}

func TestReconcile_FetchErrorAborts(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	svc := NewReconcileService(db)

	_, err := svc.Reconcile("no_such_table", brandID, []map[string]interface{}{
		{"name": "Acme"},
	}, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to fetch existing rows")
}

func TestAddItem_AppendsAtEnd(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	seedCompetitor(t, db, brandID, "Acme", 0)
	svc := NewReconcileService(db)

	row, err := svc.AddItem("competitors", brandID, map[string]interface{}{
		"id":   "tmp-999",
		"name": "Globex",
	}, nil)
	require.NoError(t, err)

	assert.Len(t, row["id"], 36)
	assert.NotEqual(t, "tmp-999", row["id"])

	comps := loadCompetitors(t, db, brandID)
	require.Len(t, comps, 2)
	assert.Equal(t, "Globex", comps[1].Name)
	assert.Equal(t, 1, comps[1].OrderIndex)
}

func TestUpdateItem_NotFound(t *testing.T) {
	db := setupTestDB(t)
	seedTestBrand(t, db)
	svc := NewReconcileService(db)

	err := svc.UpdateItem("competitors", uuid.NewString(), map[string]interface{}{
		"name": "Nobody",
	})
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestUpdateItem_ChangesRow(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	idA := seedCompetitor(t, db, brandID, "Acme", 0)
	svc := NewReconcileService(db)

	err := svc.UpdateItem("competitors", idA, map[string]interface{}{
		"name":  "Acme Corp",
		"notes": "market leader",
	})
	require.NoError(t, err)

	comps := loadCompetitors(t, db, brandID)
	require.Len(t, comps, 1)
	assert.Equal(t, "Acme Corp", comps[0].Name)
	assert.Equal(t, "market leader", comps[0].Notes)
}

func TestDeleteItem(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	idA := seedCompetitor(t, db, brandID, "Acme", 0)
	svc := NewReconcileService(db)

	require.NoError(t, svc.DeleteItem("competitors", idA))
	assert.Empty(t, loadCompetitors(t, db, brandID))

	assert.ErrorIs(t, svc.DeleteItem("competitors", idA), gorm.ErrRecordNotFound)
}

func TestReorderItems(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	idA := seedCompetitor(t, db, brandID, "Acme", 0)
	idB := seedCompetitor(t, db, brandID, "Globex", 1)
	idC := seedCompetitor(t, db, brandID, "Initech", 2)
	svc := NewReconcileService(db)

	require.NoError(t, svc.ReorderItems("competitors", []string{idC, idA, idB}, nil))

	comps := loadCompetitors(t, db, brandID)
	require.Len(t, comps, 3)
	assert.Equal(t, []string{idC, idA, idB}, []string{comps[0].ID, comps[1].ID, comps[2].ID})
}

func TestItemIdentity(t *testing.T) {
	persisted := uuid.NewString()

	tests := []struct {
		name      string
		item      map[string]interface{}
		persisted bool
	}{
		{"missing id", map[string]interface{}{"name": "x"}, false},
		{"empty id", map[string]interface{}{"id": ""}, false},
		{"short id", map[string]interface{}{"id": "tmp-1"}, false},
		{"uuid id", map[string]interface{}{"id": persisted}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity := identityOf(tt.item)
			assert.Equal(t, tt.persisted, identity.persisted)
		})
	}
}

func TestValuesEqual_Normalization(t *testing.T) {
	assert.True(t, valuesEqual(int64(3), 3))
	assert.True(t, valuesEqual(float64(3), int64(3)))
	assert.True(t, valuesEqual([]byte("abc"), "abc"))
	assert.True(t, valuesEqual(true, int64(1)))
	assert.False(t, valuesEqual("3", int64(3)))
	assert.False(t, valuesEqual("a", "b"))
}
