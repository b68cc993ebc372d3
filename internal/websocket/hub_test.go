package websocket_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/mautops/filing-gin/internal/event"
	"github.com/mautops/filing-gin/internal/model"
	"github.com/mautops/filing-gin/internal/websocket"
	"github.com/sirupsen/logrus"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startHub(t *testing.T) (*websocket.Hub, context.CancelFunc) {
	logger, _ := test.NewNullLogger()
	hub := websocket.NewHub(logger)
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)
	return hub, cancel
}

func receive(t *testing.T, ch <-chan []byte) event.Event {
	select {
	case msg := <-ch:
		var evt event.Event
		require.NoError(t, json.Unmarshal(msg, &evt))
		return evt
	case <-time.After(time.Second):
		t.Fatal("timed out waiting for event")
	}
	return event.Event{}
}

// TestHub_RegisterAndBroadcast 测试注册客户端并广播事件
func TestHub_RegisterAndBroadcast(t *testing.T) {
	hub, _ := startHub(t)

	all := websocket.NewClient("client-all", "", hub, nil)
	one := websocket.NewClient("client-one", "app-001", hub, nil)
	hub.Register <- all
	hub.Register <- one

	assert.Eventually(t, func() bool { return hub.GetClientCount() == 2 }, time.Second, 10*time.Millisecond)

	hub.Publish(event.Event{Type: event.TypeSubmitted, ApplicationID: "app-002", Status: model.StatusPending})
	hub.Publish(event.Event{Type: event.TypeApproved, ApplicationID: "app-001", Status: model.StatusApproved})

	evt := receive(t, all.Send)
	assert.Equal(t, "app-002", evt.ApplicationID)
	evt = receive(t, all.Send)
	assert.Equal(t, event.TypeApproved, evt.Type)

	// 只订阅 app-001 的客户端收不到 app-002
	evt = receive(t, one.Send)
	assert.Equal(t, "app-001", evt.ApplicationID)
	assert.Equal(t, model.StatusApproved, evt.Status)
	select {
	case msg := <-one.Send:
		t.Fatalf("unexpected message: %s", msg)
	case <-time.After(50 * time.Millisecond):
	}
}

// TestHub_Unregister 测试注销客户端
func TestHub_Unregister(t *testing.T) {
	hub, _ := startHub(t)

	client := websocket.NewClient("client-001", "", hub, nil)
	hub.Register <- client
	hub.Unregister <- client

	assert.Eventually(t, func() bool { return hub.GetClientCount() == 0 }, time.Second, 10*time.Millisecond)
	_, ok := <-client.Send
	assert.False(t, ok, "send channel should be closed")
}

// TestHub_Shutdown 测试 Hub 停止时关闭所有客户端
func TestHub_Shutdown(t *testing.T) {
	hub, cancel := startHub(t)

	client := websocket.NewClient("client-001", "", hub, nil)
	hub.Register <- client
	cancel()

	select {
	case _, ok := <-client.Send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("client was not closed on shutdown")
	}
	assert.Equal(t, 0, hub.GetClientCount())
}

// TestHub_PublishDoesNotBlock 测试队列满时丢弃事件而不阻塞
func TestHub_PublishDoesNotBlock(t *testing.T) {
	logger, hook := test.NewNullLogger()
	hub := websocket.NewHub(logger) // 未启动 Run

	done := make(chan struct{})
	go func() {
		for i := 0; i < 300; i++ {
			hub.Publish(event.Event{Type: event.TypeSubmitted})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Publish blocked")
	}
	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, logrus.WarnLevel, hook.LastEntry().Level)
}

// TestClient_Wants 测试订阅过滤
func TestClient_Wants(t *testing.T) {
	all := websocket.NewClient("a", "", nil, nil)
	one := websocket.NewClient("b", "app-001", nil, nil)

	evt := event.Event{ApplicationID: "app-001"}
	assert.True(t, all.Wants(evt))
	assert.True(t, one.Wants(evt))
	assert.False(t, one.Wants(event.Event{ApplicationID: "app-002"}))
}
