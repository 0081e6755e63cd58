package filenamify

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInputType 输入不是合法的 UTF-8 字符串
	ErrInvalidInputType = errors.New("input is not a valid UTF-8 string")

	// ErrInvalidReplacementToken 替换符包含保留字符或控制字符
	ErrInvalidReplacementToken = errors.New("replacement string cannot contain reserved filename characters")

	// ErrInvalidMaxLength MaxLength 为负数
	ErrInvalidMaxLength = errors.New("max length must not be negative")
)

// Error 表示一次调用失败的原因
type Error struct {
	// Op 是出错的操作
	Op string
	// Input 是调用时的输入
	Input string
	// Err 是底层错误
	Err error
}

// Error 实现 error 接口。
func (e *Error) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Input, e.Err)
}

// Unwrap 返回底层错误，支持 errors.Is 和 errors.As。
func (e *Error) Unwrap() error {
	return e.Err
}

// wrapInvalidReplacement 包装替换符中出现的非法字符
func wrapInvalidReplacement(r rune) error {
	return fmt.Errorf("%w: %U", ErrInvalidReplacementToken, r)
}

// wrapInvalidMaxLength 包装非法的长度
func wrapInvalidMaxLength(n int) error {
	return fmt.Errorf("%w: %d", ErrInvalidMaxLength, n)
}
