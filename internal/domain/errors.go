package domain

import "errors"

// 跨层共享的错误类型，handler 根据它们决定响应码
var (
	ErrNotFound   = errors.New("not found")
	ErrConstraint = errors.New("constraint violation")
	ErrValidation = errors.New("validation error")
)
