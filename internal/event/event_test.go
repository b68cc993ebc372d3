package event_test

import (
	"testing"
	"time"

	"github.com/mautops/filing-gin/internal/event"
	"github.com/mautops/filing-gin/internal/model"
	"github.com/stretchr/testify/assert"
)

// TestForApplication 测试根据申请构造事件
func TestForApplication(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	app := &model.ApplicationModel{
		ID:           "app-001",
		BusinessNo:   "20240102-ABCD",
		Status:       model.StatusRejected,
		AuditComment: "材料不全",
	}

	evt := event.ForApplication(event.TypeRejected, app, at)
	assert.Equal(t, event.TypeRejected, evt.Type)
	assert.Equal(t, "app-001", evt.ApplicationID)
	assert.Equal(t, "20240102-ABCD", evt.BusinessNo)
	assert.Equal(t, model.StatusRejected, evt.Status)
	assert.Equal(t, "材料不全", evt.Comment)
	assert.Equal(t, at, evt.Time)

	// NopPublisher 不应 panic
	event.NopPublisher{}.Publish(evt)
}
