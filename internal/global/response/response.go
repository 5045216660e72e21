package response

import (
	"net/http"
	"runtime/debug"

	"pomelox-server/config"
	"pomelox-server/internal/global/logger"

	"github.com/gin-gonic/gin"
)

// ResponseBody 统一响应体，code=200 表示成功
type ResponseBody struct {
	Code int32  `json:"code"`
	Msg  string `json:"msg"`
	Data any    `json:"data,omitempty"`
}

const successMsg = "操作成功"

// Success 返回成功响应，data 最多一个
func Success(c *gin.Context, data ...any) {
	body := ResponseBody{Code: 200, Msg: successMsg}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

// SuccessWithMsg 返回成功响应并携带自定义消息，
// 用于签退超时等"成功但需要提示"的场景
func SuccessWithMsg(c *gin.Context, msg string, data ...any) {
	body := ResponseBody{Code: 200, Msg: msg}
	if len(data) > 0 {
		body.Data = data[0]
	}
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

// Fail 返回失败响应，release 模式下隐藏 Origin 调试信息
func Fail(c *gin.Context, err *Error) {
	body := ResponseBody{Code: err.Code, Msg: err.Message}
	if config.Get().Mode == config.ModeDebug && err.Origin != "" {
		body.Data = gin.H{"origin": err.Origin}
	}
	c.Set(ErrorContextKey, err)
	c.Set(ResponseContextKey, body)
	c.JSON(http.StatusOK, body)
}

// Recovery 捕获 handler panic，记录堆栈并返回统一错误
func Recovery(c *gin.Context) {
	if r := recover(); r != nil {
		logger.New("Recovery").Error("handler panic",
			"panic", r,
			"path", c.Request.URL.Path,
			"stack", string(debug.Stack()),
		)
		Fail(c, ErrDatabase.WithTips("服务异常，请稍后重试"))
		c.Abort()
	}
}
