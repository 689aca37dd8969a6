package utils

import (
	"log"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// AnalysisStatus 分析任务状态
type AnalysisStatus string

const (
	AnalysisStatusPending   AnalysisStatus = "pending"
	AnalysisStatusRunning   AnalysisStatus = "running"
	AnalysisStatusCompleted AnalysisStatus = "completed"
	AnalysisStatusFailed    AnalysisStatus = "failed"
	AnalysisStatusCancelled AnalysisStatus = "cancelled"
)

// AnalysisJob 分析任务信息
type AnalysisJob struct {
	ID        string         `json:"id"`
	ContentID string         `json:"content_id"`
	Status    AnalysisStatus `json:"status"`
	Progress  int            `json:"progress"`
	Message   string         `json:"message"`
	Score     float64        `json:"score"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	Error     string         `json:"error,omitempty"`
}

// AnalysisManager 内容分析任务管理器
type AnalysisManager struct {
	jobs      map[string]*AnalysisJob
	byContent map[string]string // content_id -> 活跃任务ID
	mutex     sync.RWMutex
	// 限制同时运行的分析任务数量
	maxConcurrentJobs int32
	currentJobs       int32
}

// NewAnalysisManager 创建新的分析任务管理器
func NewAnalysisManager(maxConcurrent int32) *AnalysisManager {
	return &AnalysisManager{
		jobs:              make(map[string]*AnalysisJob),
		byContent:         make(map[string]string),
		maxConcurrentJobs: maxConcurrent,
	}
}

// CreateJob 为指定内容创建分析任务
func (am *AnalysisManager) CreateJob(contentID string) (*AnalysisJob, error) {
	// 检查是否超过最大并发数
	if atomic.LoadInt32(&am.currentJobs) >= am.maxConcurrentJobs {
		return nil, ErrTooManyAnalyses
	}

	am.mutex.Lock()
	defer am.mutex.Unlock()

	// 同一内容只允许一个活跃任务
	if jobID, exists := am.byContent[contentID]; exists {
		if job, ok := am.jobs[jobID]; ok && !job.isTerminal() {
			return nil, ErrAnalysisAlreadyRunning
		}
	}

	job := &AnalysisJob{
		ID:        uuid.NewString(),
		ContentID: contentID,
		Status:    AnalysisStatusPending,
		Progress:  0,
		Message:   "分析任务已创建，等待执行...",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	am.jobs[job.ID] = job
	am.byContent[contentID] = job.ID

	atomic.AddInt32(&am.currentJobs, 1)
	log.Printf("分析任务已创建: %s (content=%s)", job.ID, contentID)

	return job, nil
}

// GetJob 获取任务信息
func (am *AnalysisManager) GetJob(jobID string) (*AnalysisJob, bool) {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	job, exists := am.jobs[jobID]
	return job, exists
}

// GetJobByContent 获取内容对应的最近一次分析任务
func (am *AnalysisManager) GetJobByContent(contentID string) (*AnalysisJob, bool) {
	am.mutex.RLock()
	defer am.mutex.RUnlock()
	jobID, exists := am.byContent[contentID]
	if !exists {
		return nil, false
	}
	job, ok := am.jobs[jobID]
	return job, ok
}

// StartJob 开始任务
func (am *AnalysisManager) StartJob(jobID string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	if job, exists := am.jobs[jobID]; exists {
		job.Status = AnalysisStatusRunning
		job.Message = "内容分析进行中..."
		job.UpdatedAt = time.Now()
		log.Printf("分析任务已开始: %s", jobID)
	}
}

// UpdateProgress 更新任务进度
func (am *AnalysisManager) UpdateProgress(jobID string, progress int, message string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	if job, exists := am.jobs[jobID]; exists {
		job.Progress = progress
		job.Message = message
		job.UpdatedAt = time.Now()
		log.Printf("分析进度更新 [%s]: %d%% - %s", jobID, progress, message)
	}
}

// CompleteJob 完成任务并记录得分
func (am *AnalysisManager) CompleteJob(jobID string, score float64) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	if job, exists := am.jobs[jobID]; exists && !job.isTerminal() {
		job.Status = AnalysisStatusCompleted
		job.Progress = 100
		job.Score = score
		job.Message = "内容分析完成"
		job.UpdatedAt = time.Now()
		atomic.AddInt32(&am.currentJobs, -1)
		log.Printf("分析任务已完成: %s (score=%.1f)", jobID, score)
	}
}

// FailJob 任务失败
func (am *AnalysisManager) FailJob(jobID string, errMsg string) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	if job, exists := am.jobs[jobID]; exists && !job.isTerminal() {
		job.Status = AnalysisStatusFailed
		job.Message = "内容分析失败"
		job.Error = errMsg
		job.UpdatedAt = time.Now()
		atomic.AddInt32(&am.currentJobs, -1)
		log.Printf("分析任务失败: %s - %s", jobID, errMsg)
	}
}

// CancelJob 取消任务
// 只是标记状态，运行中的goroutine在阶段间自行检查并退出。
func (am *AnalysisManager) CancelJob(jobID string) error {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	job, exists := am.jobs[jobID]
	if !exists {
		return ErrAnalysisNotFound
	}
	if job.isTerminal() {
		return nil
	}

	job.Status = AnalysisStatusCancelled
	job.Message = "分析任务已取消"
	job.UpdatedAt = time.Now()
	atomic.AddInt32(&am.currentJobs, -1)
	log.Printf("分析任务已取消: %s", jobID)
	return nil
}

// IsCancelled 检查任务是否已被取消
func (am *AnalysisManager) IsCancelled(jobID string) bool {
	am.mutex.RLock()
	defer am.mutex.RUnlock()

	if job, exists := am.jobs[jobID]; exists {
		return job.Status == AnalysisStatusCancelled
	}
	return false
}

// CleanupOldJobs 清理过期任务（用于内存管理）
func (am *AnalysisManager) CleanupOldJobs(maxAge time.Duration) {
	am.mutex.Lock()
	defer am.mutex.Unlock()

	now := time.Now()
	for jobID, job := range am.jobs {
		if job.isTerminal() && now.Sub(job.UpdatedAt) > maxAge {
			delete(am.jobs, jobID)
			if am.byContent[job.ContentID] == jobID {
				delete(am.byContent, job.ContentID)
			}
			log.Printf("清理过期分析任务: %s", jobID)
		}
	}
}

// GetCurrentJobCount 获取当前运行中的任务数量
func (am *AnalysisManager) GetCurrentJobCount() int32 {
	return atomic.LoadInt32(&am.currentJobs)
}

// isTerminal 判断任务是否处于终止状态，调用方需持有锁
func (j *AnalysisJob) isTerminal() bool {
	return j.Status == AnalysisStatusCompleted ||
		j.Status == AnalysisStatusFailed ||
		j.Status == AnalysisStatusCancelled
}
