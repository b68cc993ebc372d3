package event

import (
	"time"

	"github.com/mautops/filing-gin/internal/model"
)

// Type 事件类型
type Type string

const (
	TypeSubmitted Type = "application.submitted"
	TypeApproved  Type = "application.approved"
	TypeRejected  Type = "application.rejected"
)

// Event 备案申请状态事件
type Event struct {
	Type          Type         `json:"type"`
	ApplicationID string       `json:"application_id"`
	BusinessNo    string       `json:"business_no"`
	Status        model.Status `json:"status"`
	Comment       string       `json:"comment,omitempty"`
	Time          time.Time    `json:"time"`
}

// Publisher 事件发布者
// 发布失败不影响业务操作结果,实现方不得阻塞调用方
type Publisher interface {
	Publish(evt Event)
}

// NopPublisher 丢弃所有事件
type NopPublisher struct{}

// Publish 实现 Publisher
func (NopPublisher) Publish(Event) {}

// ForApplication 根据申请记录构造事件
func ForApplication(t Type, app *model.ApplicationModel, at time.Time) Event {
	return Event{
		Type:          t,
		ApplicationID: app.ID,
		BusinessNo:    app.BusinessNo,
		Status:        app.Status,
		Comment:       app.AuditComment,
		Time:          at,
	}
}
