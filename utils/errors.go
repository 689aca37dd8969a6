package utils

import "errors"

var (
	// ErrTooManyAnalyses 并发分析任务数超限错误
	ErrTooManyAnalyses = errors.New("too many concurrent analysis jobs")
	// ErrAnalysisNotFound 分析任务未找到错误
	ErrAnalysisNotFound = errors.New("analysis job not found")
	// ErrAnalysisAlreadyRunning 内容已存在进行中的分析任务错误
	ErrAnalysisAlreadyRunning = errors.New("analysis is already running for this content")
)
