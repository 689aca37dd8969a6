package utils

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

// WebSocketManager 分析进度WebSocket连接管理器
// 按分析任务ID维护连接；连接建立前到达的消息先入队，
// 连接建立后按序补发。
type WebSocketManager struct {
	connections  map[string]*websocket.Conn
	messageQueue map[string][]interface{} // 未发送消息队列
	mutex        sync.RWMutex
	writeMutex   map[string]*sync.Mutex // 每个连接的写锁，防止并发写入
}

// NewWebSocketManager 创建新的WebSocket管理器
func NewWebSocketManager() *WebSocketManager {
	return &WebSocketManager{
		connections:  make(map[string]*websocket.Conn),
		messageQueue: make(map[string][]interface{}),
		writeMutex:   make(map[string]*sync.Mutex),
	}
}

// AddConnection 添加连接
func (wm *WebSocketManager) AddConnection(jobID string, conn *websocket.Conn) {
	wm.mutex.Lock()
	defer wm.mutex.Unlock()

	wm.connections[jobID] = conn
	wm.writeMutex[jobID] = &sync.Mutex{}
	log.Printf("WebSocket连接已添加: %s", jobID)

	// 补发队列中的消息
	if messages, exists := wm.messageQueue[jobID]; exists {
		log.Printf("补发队列中的 %d 条消息给任务 %s", len(messages), jobID)
		go func() {
			for _, msg := range messages {
				wm.sendToConnection(jobID, conn, msg)
			}
		}()
		delete(wm.messageQueue, jobID)
	}
}

// RemoveConnection 移除连接
func (wm *WebSocketManager) RemoveConnection(jobID string) {
	wm.mutex.Lock()
	defer wm.mutex.Unlock()

	if conn, exists := wm.connections[jobID]; exists {
		conn.Close()
		delete(wm.connections, jobID)
		delete(wm.writeMutex, jobID)
		log.Printf("WebSocket连接已移除: %s", jobID)
	}
}

// SendMessage 发送消息到指定任务的连接
func (wm *WebSocketManager) SendMessage(jobID string, message interface{}) {
	wm.mutex.RLock()
	conn, exists := wm.connections[jobID]
	wm.mutex.RUnlock()

	if !exists {
		// 连接尚未建立，消息入队等待
		wm.mutex.Lock()
		wm.messageQueue[jobID] = append(wm.messageQueue[jobID], message)
		wm.mutex.Unlock()
		return
	}

	// 独立goroutine发送，避免阻塞调用方
	go wm.sendToConnection(jobID, conn, message)
}

// sendToConnection 序列化并写入指定连接
func (wm *WebSocketManager) sendToConnection(jobID string, conn *websocket.Conn, message interface{}) {
	wm.mutex.RLock()
	writeMutex, exists := wm.writeMutex[jobID]
	wm.mutex.RUnlock()

	if !exists {
		return
	}

	writeMutex.Lock()
	defer writeMutex.Unlock()

	// 加锁期间连接可能已被移除
	wm.mutex.RLock()
	_, stillExists := wm.connections[jobID]
	wm.mutex.RUnlock()
	if !stillExists {
		return
	}

	data, err := json.Marshal(message)
	if err != nil {
		log.Printf("消息序列化失败: %v", err)
		return
	}

	conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		log.Printf("发送WebSocket消息失败 [%s]: %v", jobID, err)
		wm.RemoveConnection(jobID)
	}
}

// BroadcastMessage 广播消息到所有连接
func (wm *WebSocketManager) BroadcastMessage(message interface{}) {
	wm.mutex.RLock()
	jobIDs := make([]string, 0, len(wm.connections))
	for jobID := range wm.connections {
		jobIDs = append(jobIDs, jobID)
	}
	wm.mutex.RUnlock()

	for _, jobID := range jobIDs {
		wm.SendMessage(jobID, message)
	}
}

// GetConnectionCount 获取连接数量
func (wm *WebSocketManager) GetConnectionCount() int {
	wm.mutex.RLock()
	defer wm.mutex.RUnlock()
	return len(wm.connections)
}
