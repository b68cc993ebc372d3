package websocket

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/mautops/filing-gin/internal/event"
	"github.com/sirupsen/logrus"
)

// Hub 管理所有 WebSocket 连接,向订阅方推送申请状态事件
type Hub struct {
	// 已注册的客户端
	clients map[*Client]bool

	// 待广播事件
	events chan event.Event

	// 注册新客户端
	Register chan *Client

	// 注销客户端
	Unregister chan *Client

	// 互斥锁，保护 clients map
	mu sync.RWMutex

	// Run 退出后关闭
	done chan struct{}

	logger logrus.FieldLogger
}

// NewHub 创建新的 Hub
func NewHub(logger logrus.FieldLogger) *Hub {
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	return &Hub{
		clients:    make(map[*Client]bool),
		events:     make(chan event.Event, 256),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
		logger:     logger,
	}
}

// Run 运行 Hub,直到 ctx 结束
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return

		case client := <-h.Register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.Unregister:
			h.remove(client)

		case evt := <-h.events:
			h.broadcast(evt)
		}
	}
}

// Publish 实现 event.Publisher,队列已满时丢弃事件
func (h *Hub) Publish(evt event.Event) {
	select {
	case h.events <- evt:
	default:
		h.logger.WithFields(logrus.Fields{
			"event":          evt.Type,
			"application_id": evt.ApplicationID,
		}).Warn("websocket event queue full, dropping event")
	}
}

// broadcast 向关注该事件的客户端发送消息
func (h *Hub) broadcast(evt event.Event) {
	message, err := json.Marshal(evt)
	if err != nil {
		h.logger.WithError(err).Error("failed to marshal event")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		if !client.Wants(evt) {
			continue
		}
		select {
		case client.Send <- message:
		default:
			// 客户端消费过慢,断开连接
			close(client.Send)
			delete(h.clients, client)
		}
	}
}

// unregister 注销客户端,Hub 已停止时直接返回
func (h *Hub) unregister(client *Client) {
	select {
	case h.Unregister <- client:
	case <-h.done:
	}
}

func (h *Hub) remove(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[client]; ok {
		delete(h.clients, client)
		close(client.Send)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for client := range h.clients {
		delete(h.clients, client)
		close(client.Send)
	}
}

// GetClientCount 获取客户端数量
func (h *Hub) GetClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()

	return len(h.clients)
}
