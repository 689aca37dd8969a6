package services

import (
	"errors"
	"fmt"
	"hash/fnv"
	"log"
	"time"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/config"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/models"
	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"gorm.io/gorm"
)

// 分析阶段，进度按阶段数均分
var analysisSteps = []string{
	"提取内容特征...",
	"匹配品牌信息传递...",
	"计算受众契合度...",
	"评估渠道表现...",
	"生成效果得分...",
}

// AnalysisStatusInfo 内容分析状态查询结果
type AnalysisStatusInfo struct {
	ContentID  string     `json:"content_id"`
	Status     string     `json:"status"`
	Progress   int        `json:"progress"`
	Score      float64    `json:"score"`
	AnalyzedAt *time.Time `json:"analyzed_at,omitempty"`
	Error      string     `json:"error,omitempty"`
}

// AnalysisService 内容分析服务
// 分析在后台goroutine中执行，进度通过WebSocket推送，
// 前端同时可轮询状态接口；取消只是状态更新，不中断在途请求。
type AnalysisService struct {
	db        *gorm.DB
	cfg       *config.Config
	manager   *utils.AnalysisManager
	wsManager *utils.WebSocketManager
	cache     *utils.QueryCache
}

// NewAnalysisService 创建内容分析服务实例
func NewAnalysisService(db *gorm.DB, cfg *config.Config, manager *utils.AnalysisManager, wsManager *utils.WebSocketManager, cache *utils.QueryCache) *AnalysisService {
	return &AnalysisService{
		db:        db,
		cfg:       cfg,
		manager:   manager,
		wsManager: wsManager,
		cache:     cache,
	}
}

// StartAnalysis 启动内容分析任务
func (s *AnalysisService) StartAnalysis(contentID string) (*utils.AnalysisJob, error) {
	var item models.ContentItem
	if err := s.db.First(&item, "id = ?", contentID).Error; err != nil {
		return nil, err
	}

	if item.Status == models.ContentStatusProcessing {
		return nil, utils.ErrAnalysisAlreadyRunning
	}

	job, err := s.manager.CreateJob(contentID)
	if err != nil {
		return nil, err
	}

	// 状态先落库再返回，轮询方立即能看到processing
	err = s.db.Model(&item).Updates(map[string]interface{}{
		"status": models.ContentStatusProcessing,
		"score":  0,
	}).Error
	if err != nil {
		s.manager.FailJob(job.ID, err.Error())
		return nil, fmt.Errorf("failed to mark content as processing: %v", err)
	}
	s.cache.InvalidateBrand(item.BrandID)

	go s.runAnalysis(job, item)

	return job, nil
}

// runAnalysis 后台执行分析，阶段之间检查取消标记
func (s *AnalysisService) runAnalysis(job *utils.AnalysisJob, item models.ContentItem) {
	s.manager.StartJob(job.ID)
	stepDelay := time.Duration(s.cfg.Analysis.StepDelayMs) * time.Millisecond

	for i, step := range analysisSteps {
		if s.manager.IsCancelled(job.ID) {
			log.Printf("分析任务在阶段 %d 检测到取消: %s", i+1, job.ID)
			s.pushJobStatus(job.ID)
			return
		}

		time.Sleep(stepDelay)
		progress := (i + 1) * 100 / len(analysisSteps)
		s.manager.UpdateProgress(job.ID, progress, step)
		s.pushJobStatus(job.ID)
	}

	if s.manager.IsCancelled(job.ID) {
		s.pushJobStatus(job.ID)
		return
	}

	score := scoreContent(&item)
	now := time.Now()
	err := s.db.Model(&models.ContentItem{}).Where("id = ?", item.ID).Updates(map[string]interface{}{
		"status":      models.ContentStatusAnalyzed,
		"score":       score,
		"analyzed_at": now,
	}).Error
	if err != nil {
		s.manager.FailJob(job.ID, err.Error())
		s.db.Model(&models.ContentItem{}).Where("id = ?", item.ID).
			Update("status", models.ContentStatusError)
		s.pushJobStatus(job.ID)
		return
	}

	s.manager.CompleteJob(job.ID, score)
	s.cache.InvalidateBrand(item.BrandID)
	s.pushJobStatus(job.ID)
	log.Printf("✅ 内容分析完成: content=%s score=%.1f", item.ID, score)
}

// GetAnalysisStatus 查询内容的分析状态（供前端轮询）
func (s *AnalysisService) GetAnalysisStatus(contentID string) (*AnalysisStatusInfo, error) {
	var item models.ContentItem
	if err := s.db.First(&item, "id = ?", contentID).Error; err != nil {
		return nil, err
	}

	info := &AnalysisStatusInfo{
		ContentID:  item.ID,
		Status:     item.Status,
		Score:      item.Score,
		AnalyzedAt: item.AnalyzedAt,
	}
	if models.IsTerminalStatus(item.Status) {
		info.Progress = 100
	}

	// 运行中的任务用内存里的实时进度
	if job, ok := s.manager.GetJobByContent(contentID); ok {
		if item.Status == models.ContentStatusProcessing {
			info.Progress = job.Progress
		}
		info.Error = job.Error
	}

	return info, nil
}

// CancelAnalysis 取消内容分析
// 取消是状态字段更新：后台goroutine在阶段间自行检查后退出。
func (s *AnalysisService) CancelAnalysis(contentID string) error {
	var item models.ContentItem
	if err := s.db.First(&item, "id = ?", contentID).Error; err != nil {
		return err
	}

	if item.Status != models.ContentStatusProcessing {
		return errors.New("no analysis in progress for this content")
	}

	if job, ok := s.manager.GetJobByContent(contentID); ok {
		if err := s.manager.CancelJob(job.ID); err != nil {
			return err
		}
	}

	err := s.db.Model(&item).Update("status", models.ContentStatusCancelled).Error
	if err != nil {
		return fmt.Errorf("failed to mark content as cancelled: %v", err)
	}

	s.cache.InvalidateBrand(item.BrandID)
	log.Printf("分析已取消: content=%s", contentID)
	return nil
}

// pushJobStatus 将任务当前状态推送到WebSocket
func (s *AnalysisService) pushJobStatus(jobID string) {
	if job, ok := s.manager.GetJob(jobID); ok {
		s.wsManager.SendMessage(jobID, map[string]interface{}{
			"type": "analysis_status",
			"data": job,
		})
	}
}

// scoreContent 计算内容效果得分
// 对标题和渠道做哈希得到55-95的稳定得分，同一素材重复分析结果一致。
func scoreContent(item *models.ContentItem) float64 {
	h := fnv.New32a()
	h.Write([]byte(item.Title))
	h.Write([]byte(item.Channel))
	h.Write([]byte(item.ContentType))
	return float64(55 + h.Sum32()%41)
}
