package tracing

import (
	"context"
	"net"
	"strings"
	"time"

	"pomelox-server/config"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
)

// RedisSentryHook 实现 redis.Hook 接口，用于追踪 Redis 操作
type RedisSentryHook struct {
	// slowThreshold 慢操作阈值，仅上报超过该耗时的操作；0 表示上报所有操作
	slowThreshold time.Duration
}

func NewRedisSentryHook() *RedisSentryHook {
	threshold := time.Duration(config.Get().Sentry.Tracing.RedisSlowThresholdMs) * time.Millisecond
	return &RedisSentryHook{slowThreshold: threshold}
}

func (h *RedisSentryHook) DialHook(next redis.DialHook) redis.DialHook {
	return func(ctx context.Context, network, addr string) (net.Conn, error) {
		return next(ctx, network, addr)
	}
}

// ProcessHook 追踪单个 Redis 命令
func (h *RedisSentryHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		parentSpan := sentry.SpanFromContext(ctx)

		var span *sentry.Span
		if parentSpan != nil {
			span = parentSpan.StartChild("db.redis")
			// 只记录命令名，避免参数带来的高基数问题
			span.Description = strings.ToUpper(cmd.Name())
			span.SetData("db.system", "redis")
			span.SetData("db.operation", cmd.Name())
			ctx = span.Context()
		}

		startTime := time.Now()
		err := next(ctx, cmd)
		elapsed := time.Since(startTime)

		if span != nil {
			if h.slowThreshold > 0 && elapsed < h.slowThreshold {
				span.Sampled = sentry.SampledFalse
			}
			if err != nil && err != redis.Nil {
				span.Status = sentry.SpanStatusInternalError
				span.SetData("redis.error", err.Error())
			} else {
				span.Status = sentry.SpanStatusOK
			}
			span.Finish()
		}

		return err
	}
}

// ProcessPipelineHook 追踪 Pipeline 操作
func (h *RedisSentryHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return func(ctx context.Context, cmds []redis.Cmder) error {
		parentSpan := sentry.SpanFromContext(ctx)

		var span *sentry.Span
		if parentSpan != nil {
			span = parentSpan.StartChild("db.redis.pipeline")
			span.Description = pipelineDescription(cmds)
			span.SetData("db.system", "redis")
			span.SetData("db.operation", "pipeline")
			span.SetData("redis.pipeline_length", len(cmds))
			ctx = span.Context()
		}

		startTime := time.Now()
		err := next(ctx, cmds)
		elapsed := time.Since(startTime)

		if span != nil {
			if h.slowThreshold > 0 && elapsed < h.slowThreshold {
				span.Sampled = sentry.SampledFalse
			}
			if err != nil {
				span.Status = sentry.SpanStatusInternalError
				span.SetData("redis.error", err.Error())
			} else {
				span.Status = sentry.SpanStatusOK
			}
			span.Finish()
		}

		return err
	}
}

func pipelineDescription(cmds []redis.Cmder) string {
	if len(cmds) == 0 {
		return "PIPELINE (empty)"
	}
	var names []string
	const maxShow = 3
	for i, cmd := range cmds {
		if i >= maxShow {
			break
		}
		names = append(names, strings.ToUpper(cmd.Name()))
	}
	desc := "PIPELINE: " + strings.Join(names, ", ")
	if len(cmds) > maxShow {
		desc += "..."
	}
	return desc
}
