package websocket

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	gorillaWS "github.com/gorilla/websocket"
)

var upgrader = gorillaWS.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// 来源由 CORS 中间件统一控制
		return true
	},
}

// WebSocketHandler WebSocket 处理器
// 可选 query 参数 application_id 用于只订阅单个申请的进度
func WebSocketHandler(hub *Hub) gin.HandlerFunc {
	return func(c *gin.Context) {
		conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
		if err != nil {
			// Upgrade 失败时已写回 HTTP 错误
			hub.logger.WithError(err).Debug("failed to upgrade websocket connection")
			return
		}

		client := NewClient(uuid.New().String(), c.Query("application_id"), hub, conn)

		select {
		case hub.Register <- client:
		case <-hub.done:
			conn.Close()
			return
		}

		go client.ReadPump()
		go client.WritePump()
	}
}
