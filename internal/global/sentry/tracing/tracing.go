// Package tracing 提供 Sentry 性能追踪的集成，
// 覆盖 GORM、Redis 和 resty HTTP 客户端
package tracing

import (
	"context"

	"pomelox-server/config"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
)

// IsEnabled 检查 Sentry 追踪是否已启用
func IsEnabled() bool {
	return config.Get().Sentry.Dsn != ""
}

// ContextWithSpan 返回包含当前请求 Sentry span 的 context。
// sentrygin 中间件已将 span 写入 request context，
// handler 中通过它把追踪透传给 GORM/Redis：
//
//	ctx := tracing.ContextWithSpan(c)
//	database.DB.WithContext(ctx).Find(&records)
func ContextWithSpan(c *gin.Context) context.Context {
	if c == nil || c.Request == nil || c.Request.Context() == nil {
		return context.Background()
	}
	return c.Request.Context()
}

// StartSpan 在当前请求的 transaction 下创建业务子 span，
// 调用方负责 Finish()
func StartSpan(c *gin.Context, operation, description string) *sentry.Span {
	ctx := ContextWithSpan(c)
	return StartSpanFromContext(ctx, operation, description)
}

// StartSpanFromContext 从 context 创建子 span，适用于非 handler 场景
// （如自动签退扫描）。没有父 span 时返回 no-op span
func StartSpanFromContext(ctx context.Context, operation, description string) *sentry.Span {
	parentSpan := sentry.SpanFromContext(ctx)
	if parentSpan == nil {
		return &sentry.Span{}
	}
	span := parentSpan.StartChild(operation)
	span.Description = description
	return span
}
