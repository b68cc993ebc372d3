package api

import (
	"strings"
	"sync"

	"github.com/gin-gonic/gin"
	"github.com/mautops/filing-gin/internal/model"
)

// DefaultLanguage 默认语言
const DefaultLanguage = "zh"

// I18nManager 国际化管理器
type I18nManager struct {
	mu       sync.RWMutex
	messages map[string]map[string]string // lang -> key -> message
}

var defaultI18nManager *I18nManager

func init() {
	defaultI18nManager = NewI18nManager()
	defaultI18nManager.LoadMessages("zh", map[string]string{
		"error.not_found":      "申请不存在",
		"error.conflict":       "申请已审核,不能重复审核",
		"error.validation":     "表单校验失败",
		"error.bad_request":    "请求错误",
		"error.invalid_status": "无效的状态",
		"error.internal_error": "服务器内部错误",
		"status.pending":       model.StatusPending.Label(),
		"status.approved":      model.StatusApproved.Label(),
		"status.rejected":      model.StatusRejected.Label(),
	})
	defaultI18nManager.LoadMessages("en", map[string]string{
		"error.not_found":      "Application not found",
		"error.conflict":       "Application has already been reviewed",
		"error.validation":     "Validation failed",
		"error.bad_request":    "Bad request",
		"error.invalid_status": "Invalid status",
		"error.internal_error": "Internal server error",
		"status.pending":       "Pending review",
		"status.approved":      "Approved",
		"status.rejected":      "Rejected",
	})
}

// NewI18nManager 创建国际化管理器
func NewI18nManager() *I18nManager {
	return &I18nManager{
		messages: make(map[string]map[string]string),
	}
}

// LoadMessages 加载语言消息
func (m *I18nManager) LoadMessages(lang string, messages map[string]string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.messages[lang] = messages
}

// Translate 翻译消息,找不到时回退到默认语言,仍找不到返回 key
func (m *I18nManager) Translate(lang, key string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if messages, ok := m.messages[lang]; ok {
		if message, ok := messages[key]; ok {
			return message
		}
	}
	if lang != DefaultLanguage {
		if message, ok := m.messages[DefaultLanguage][key]; ok {
			return message
		}
	}
	return key
}

// I18nMiddleware 国际化中间件
// 优先使用 lang 查询参数,其次 Accept-Language 头
func I18nMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		lang := DefaultLanguage

		if queryLang := c.Query("lang"); queryLang != "" {
			lang = normalizeLanguage(queryLang)
		} else if headerLang := c.GetHeader("Accept-Language"); headerLang != "" {
			lang = parseAcceptLanguage(headerLang)
		}

		c.Set("language", lang)
		c.Next()
	}
}

// GetLanguage 从上下文获取语言
func GetLanguage(c *gin.Context) string {
	if lang, exists := c.Get("language"); exists {
		if l, ok := lang.(string); ok {
			return l
		}
	}
	return DefaultLanguage
}

// T 翻译消息(使用默认管理器)
func T(c *gin.Context, key string) string {
	return defaultI18nManager.Translate(GetLanguage(c), key)
}

// StatusLabel 状态的本地化显示文本
func StatusLabel(lang string, status model.Status) string {
	return defaultI18nManager.Translate(lang, "status."+string(status))
}

// normalizeLanguage 规范化语言代码,只支持 zh 和 en
func normalizeLanguage(lang string) string {
	lang = strings.ToLower(strings.TrimSpace(lang))
	switch {
	case strings.HasPrefix(lang, "zh"):
		return "zh"
	case strings.HasPrefix(lang, "en"):
		return "en"
	}
	return DefaultLanguage
}

// parseAcceptLanguage 解析 Accept-Language 头,如 zh-CN,zh;q=0.9,en;q=0.8
func parseAcceptLanguage(header string) string {
	lang := strings.TrimSpace(strings.Split(header, ",")[0])
	if idx := strings.Index(lang, ";"); idx != -1 {
		lang = lang[:idx]
	}
	return normalizeLanguage(lang)
}
