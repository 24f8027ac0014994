// Package apperr 定义面向调用方的业务错误类型。
// NotFoundError 对应 HTTP 404，BadRequestError 对应 HTTP 400，
// 其余错误统一按服务器内部错误处理。
package apperr

import "errors"

// NotFoundError 资源不存在错误
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return e.Message
}

// NotFound 创建资源不存在错误
func NotFound(message string) error {
	return &NotFoundError{Message: message}
}

// BadRequestError 请求参数错误
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string {
	return e.Message
}

// BadRequest 创建请求参数错误
func BadRequest(message string) error {
	return &BadRequestError{Message: message}
}

// IsNotFound 判断是否为资源不存在错误
func IsNotFound(err error) bool {
	var target *NotFoundError
	return errors.As(err, &target)
}

// IsBadRequest 判断是否为请求参数错误
func IsBadRequest(err error) bool {
	var target *BadRequestError
	return errors.As(err, &target)
}
