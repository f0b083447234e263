package util

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidRange 不支持的时间范围标签
	ErrInvalidRange = errors.New("invalid time range")
	// ErrStoreUnavailable 存储查询失败，原样上抛不重试
	ErrStoreUnavailable = errors.New("store unavailable")
	// ErrReferenceNotFound 期望存在的引用记录缺失
	ErrReferenceNotFound = errors.New("reference not found")

	ErrUserNotFound    = fmt.Errorf("user: %w", ErrReferenceNotFound)
	ErrRoutineNotFound = fmt.Errorf("routine: %w", ErrReferenceNotFound)
	ErrGoalNotFound    = fmt.Errorf("goal: %w", ErrReferenceNotFound)
	ErrWishNotFound    = fmt.Errorf("wish: %w", ErrReferenceNotFound)
)

// StoreError wraps a failed store call so callers can match
// ErrStoreUnavailable while the driver error stays reachable.
func StoreError(op string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStoreUnavailable, err)
}

// InvalidRange reports an unrecognised range tag.
func InvalidRange(tag string) error {
	return fmt.Errorf("%w: %q", ErrInvalidRange, tag)
}
