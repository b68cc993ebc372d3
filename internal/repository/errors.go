package repository

import (
	"errors"
	"fmt"
)

// ErrNotFound 记录不存在
// 各存储实现统一返回该错误(可包装),服务层据此判断
var ErrNotFound = errors.New("record not found")

// StorageError 存储介质不可用或写入失败
// 返回该错误时操作视为未生效
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s failed: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}
