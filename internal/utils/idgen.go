package utils

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// BusinessNoDateLayout 业务编号日期前缀格式
const BusinessNoDateLayout = "20060102"

// NewID 生成记录主键
func NewID() string {
	return uuid.New().String()
}

// NewBusinessNo 生成业务编号: 20231027-A1B2
// 后缀取自随机 UUID 前 4 位,只保证实用意义上的唯一,入库前由调用方查重
func NewBusinessNo(now time.Time) string {
	suffix := strings.ToUpper(uuid.New().String()[:4])
	return now.Format(BusinessNoDateLayout) + "-" + suffix
}
