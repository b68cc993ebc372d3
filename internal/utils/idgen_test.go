package utils_test

import (
	"strings"
	"testing"
	"time"

	"github.com/mautops/filing-gin/internal/utils"
	"github.com/stretchr/testify/assert"
)

// TestNewBusinessNo 测试业务编号格式
func TestNewBusinessNo(t *testing.T) {
	now := time.Date(2023, 10, 27, 9, 30, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		no := utils.NewBusinessNo(now)
		assert.True(t, strings.HasPrefix(no, "20231027-"), no)
		assert.Len(t, no, 13)
		assert.True(t, utils.IsBusinessNo(no), no)
		assert.Equal(t, strings.ToUpper(no), no)
	}
}

// TestNewID 测试主键唯一
func TestNewID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := utils.NewID()
		assert.NoError(t, utils.ValidateApplicationID(id))
		assert.False(t, seen[id])
		seen[id] = true
	}
}
