package utils

import (
	"github.com/gin-gonic/gin"
)

// ErrorResponse 统一的错误响应结构
type ErrorResponse struct {
	Message string `json:"message"` // 展示给调用方的消息
	Details string `json:"details,omitempty"` // 仅开发环境填充，用于调试
}

// Message 返回仅含提示消息的成功响应
func Message(c *gin.Context, message string) {
	c.JSON(200, gin.H{"message": message})
}

// Error 返回错误响应
func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorResponse{Message: message})
}

// BadRequest 返回400错误
func BadRequest(c *gin.Context, message string) {
	Error(c, 400, message)
}

// Unauthorized 返回401错误
func Unauthorized(c *gin.Context, message string) {
	if message == "" {
		message = "未登录"
	}
	Error(c, 401, message)
}

// Forbidden 返回403错误
func Forbidden(c *gin.Context, message string) {
	if message == "" {
		message = "没有访问权限"
	}
	Error(c, 403, message)
}

// NotFound 返回404错误
func NotFound(c *gin.Context, message string) {
	if message == "" {
		message = "资源不存在"
	}
	Error(c, 404, message)
}
