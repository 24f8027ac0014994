package middleware

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jay99268/VideoPlatform.Api/internal/apperr"
	"github.com/jay99268/VideoPlatform.Api/internal/utils"
)

// ErrorHandler 全局错误翻译中间件
// 处理器通过 c.Error(err) 上报错误：
// NotFoundError -> 404，BadRequestError -> 400，消息原样返回；
// 其余错误记录日志并返回固定的 500 消息，仅开发环境附带详情。
func ErrorHandler(isDevelopment bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err

		if apperr.IsNotFound(err) {
			c.JSON(http.StatusNotFound, utils.ErrorResponse{Message: err.Error()})
			return
		}
		if apperr.IsBadRequest(err) {
			c.JSON(http.StatusBadRequest, utils.ErrorResponse{Message: err.Error()})
			return
		}

		log.Printf("未处理的异常: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)

		resp := utils.ErrorResponse{Message: "服务器发生内部错误，请稍后重试。"}
		if isDevelopment {
			resp.Details = err.Error()
		}
		c.JSON(http.StatusInternalServerError, resp)
	}
}
