package handlers

import (
	"log"
	"net/http"

	"github.com/dpinnington123/cimvp-dashboard-production-sub002/utils"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // 允许所有来源，生产环境应该更严格
	},
}

// WebSocketHandler 分析进度WebSocket处理器
type WebSocketHandler struct {
	wsManager       *utils.WebSocketManager
	analysisManager *utils.AnalysisManager
}

// NewWebSocketHandler 创建WebSocket处理器
func NewWebSocketHandler(wsManager *utils.WebSocketManager, analysisManager *utils.AnalysisManager) *WebSocketHandler {
	return &WebSocketHandler{
		wsManager:       wsManager,
		analysisManager: analysisManager,
	}
}

// HandleWebSocket 处理分析进度WebSocket连接
func (h *WebSocketHandler) HandleWebSocket(c *gin.Context) {
	jobID := c.Query("jobId")
	if jobID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "jobId is required"})
		return
	}

	// 检查分析任务是否存在
	job, exists := h.analysisManager.GetJob(jobID)
	if !exists {
		c.JSON(http.StatusNotFound, gin.H{"error": "analysis job not found"})
		return
	}

	// 升级HTTP连接为WebSocket
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket升级失败: %v", err)
		return
	}

	h.wsManager.AddConnection(jobID, conn)

	// 发送初始任务状态
	h.wsManager.SendMessage(jobID, gin.H{
		"type": "analysis_status",
		"data": job,
	})

	log.Printf("WebSocket连接已建立: %s", jobID)

	defer func() {
		h.wsManager.RemoveConnection(jobID)
		log.Printf("WebSocket连接已关闭: %s", jobID)
	}()

	// 保持连接活跃，读取仅用于检测断开
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			log.Printf("WebSocket读取错误: %v", err)
			break
		}
	}
}
