package services

import (
	"testing"
	"time"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/config"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newAnalysisService(t *testing.T, db *gorm.DB, stepDelayMs int, maxJobs int32) *AnalysisService {
	t.Helper()

	cfg := &config.Config{}
	cfg.Analysis.StepDelayMs = stepDelayMs
	cfg.Analysis.MaxConcurrentJobs = maxJobs
	return NewAnalysisService(db, cfg, utils.NewAnalysisManager(maxJobs), utils.NewWebSocketManager(), utils.NewQueryCache(time.Minute))
}

func seedContentItem(t *testing.T, db *gorm.DB, brandID, title string) models.ContentItem {
	t.Helper()

	item := models.ContentItem{
		BrandID:     brandID,
		Title:       title,
		ContentType: "image",
		Channel:     "social",
		Status:      models.ContentStatusPending,
	}
	require.NoError(t, db.Create(&item).Error)
	return item
}

// waitForStatus 轮询状态接口直到内容进入期望状态
func waitForStatus(t *testing.T, svc *AnalysisService, contentID, want string) *AnalysisStatusInfo {
	t.Helper()

	var info *AnalysisStatusInfo
	require.Eventually(t, func() bool {
		var err error
		info, err = svc.GetAnalysisStatus(contentID)
		require.NoError(t, err)
		return info.Status == want
	}, 5*time.Second, 10*time.Millisecond)
	return info
}

func TestStartAnalysis_CompletesWithScore(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	item := seedContentItem(t, db, brandID, "Hero Banner")
	svc := newAnalysisService(t, db, 1, 5)

	job, err := svc.StartAnalysis(item.ID)
	require.NoError(t, err)
	assert.Equal(t, item.ID, job.ContentID)

	// 启动后立即可见processing状态
	info, err := svc.GetAnalysisStatus(item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContentStatusProcessing, info.Status)

	final := waitForStatus(t, svc, item.ID, models.ContentStatusAnalyzed)
	assert.Equal(t, 100, final.Progress)
	assert.GreaterOrEqual(t, final.Score, 55.0)
	assert.LessOrEqual(t, final.Score, 95.0)
	assert.NotNil(t, final.AnalyzedAt)
}

func TestStartAnalysis_AlreadyRunning(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	item := seedContentItem(t, db, brandID, "Hero Banner")
	svc := newAnalysisService(t, db, 200, 5)

	_, err := svc.StartAnalysis(item.ID)
	require.NoError(t, err)

	_, err = svc.StartAnalysis(item.ID)
	assert.ErrorIs(t, err, utils.ErrAnalysisAlreadyRunning)
}

func TestStartAnalysis_ContentNotFound(t *testing.T) {
	db := setupTestDB(t)
	svc := newAnalysisService(t, db, 1, 5)

	_, err := svc.StartAnalysis("00000000-0000-0000-0000-000000000000")
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestCancelAnalysis(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	item := seedContentItem(t, db, brandID, "Hero Banner")
	svc := newAnalysisService(t, db, 200, 5)

	_, err := svc.StartAnalysis(item.ID)
	require.NoError(t, err)

	require.NoError(t, svc.CancelAnalysis(item.ID))

	info, err := svc.GetAnalysisStatus(item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContentStatusCancelled, info.Status)

	// 后台goroutine在阶段间发现取消后退出，不会把状态改回analyzed
	time.Sleep(1500 * time.Millisecond)
	info, err = svc.GetAnalysisStatus(item.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ContentStatusCancelled, info.Status)
}

func TestCancelAnalysis_NotRunning(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	item := seedContentItem(t, db, brandID, "Hero Banner")
	svc := newAnalysisService(t, db, 1, 5)

	err := svc.CancelAnalysis(item.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no analysis in progress")
}

func TestStartAnalysis_ConcurrencyLimit(t *testing.T) {
	db := setupTestDB(t)
	brandID := seedTestBrand(t, db)
	first := seedContentItem(t, db, brandID, "Hero Banner")
	second := seedContentItem(t, db, brandID, "Promo Video")
	svc := newAnalysisService(t, db, 200, 1)

	_, err := svc.StartAnalysis(first.ID)
	require.NoError(t, err)

	_, err = svc.StartAnalysis(second.ID)
	assert.ErrorIs(t, err, utils.ErrTooManyAnalyses)
}

func TestScoreContent_Deterministic(t *testing.T) {
	item := &models.ContentItem{Title: "Hero Banner", Channel: "social", ContentType: "image"}

	first := scoreContent(item)
	second := scoreContent(item)
	assert.Equal(t, first, second)
	assert.GreaterOrEqual(t, first, 55.0)
	assert.LessOrEqual(t, first, 95.0)

	// 不同素材通常得到不同得分
	other := &models.ContentItem{Title: "Promo Video", Channel: "email", ContentType: "video"}
	assert.NotEqual(t, first, scoreContent(other))
}
