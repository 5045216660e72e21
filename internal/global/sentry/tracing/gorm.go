package tracing

import (
	"time"

	"pomelox-server/config"

	"github.com/getsentry/sentry-go"
	"gorm.io/gorm"
)

const (
	gormSpanKey    = "sentry:span"
	gormStartKey   = "sentry:start"
	callbackPrefix = "sentry_tracing"
)

// GormTracingPlugin 实现 GORM Plugin 接口，用于追踪数据库操作
type GormTracingPlugin struct {
	// slowThreshold 慢查询阈值，仅上报超过该耗时的查询；0 表示上报所有查询
	slowThreshold time.Duration
}

func NewGormTracingPlugin() *GormTracingPlugin {
	threshold := time.Duration(config.Get().Sentry.Tracing.SQLSlowThresholdMs) * time.Millisecond
	return &GormTracingPlugin{slowThreshold: threshold}
}

func (p *GormTracingPlugin) Name() string {
	return "SentryTracingPlugin"
}

// Initialize 注册 GORM 回调，操作前创建 span、操作后结束 span
func (p *GormTracingPlugin) Initialize(db *gorm.DB) error {
	_ = db.Callback().Create().Before("gorm:create").Register(callbackPrefix+":before_create", p.before("db.sql.create"))
	_ = db.Callback().Query().Before("gorm:query").Register(callbackPrefix+":before_query", p.before("db.sql.query"))
	_ = db.Callback().Update().Before("gorm:update").Register(callbackPrefix+":before_update", p.before("db.sql.update"))
	_ = db.Callback().Delete().Before("gorm:delete").Register(callbackPrefix+":before_delete", p.before("db.sql.delete"))
	_ = db.Callback().Row().Before("gorm:row").Register(callbackPrefix+":before_row", p.before("db.sql.row"))
	_ = db.Callback().Raw().Before("gorm:raw").Register(callbackPrefix+":before_raw", p.before("db.sql.raw"))

	_ = db.Callback().Create().After("gorm:create").Register(callbackPrefix+":after_create", p.after)
	_ = db.Callback().Query().After("gorm:query").Register(callbackPrefix+":after_query", p.after)
	_ = db.Callback().Update().After("gorm:update").Register(callbackPrefix+":after_update", p.after)
	_ = db.Callback().Delete().After("gorm:delete").Register(callbackPrefix+":after_delete", p.after)
	_ = db.Callback().Row().After("gorm:row").Register(callbackPrefix+":after_row", p.after)
	_ = db.Callback().Raw().After("gorm:raw").Register(callbackPrefix+":after_raw", p.after)

	return nil
}

func (p *GormTracingPlugin) before(operation string) func(*gorm.DB) {
	return func(db *gorm.DB) {
		if db.Statement == nil || db.Statement.Context == nil {
			return
		}

		db.InstanceSet(gormStartKey, time.Now())

		parentSpan := sentry.SpanFromContext(db.Statement.Context)
		if parentSpan == nil {
			return
		}

		span := parentSpan.StartChild(operation)
		// 只用表名作描述，不记录完整 SQL（可能含敏感数据）
		span.Description = db.Statement.Table
		span.SetData("db.system", "mysql")

		db.InstanceSet(gormSpanKey, span)
		db.Statement.Context = span.Context()
	}
}

func (p *GormTracingPlugin) after(db *gorm.DB) {
	if db.Statement == nil {
		return
	}

	startVal, ok := db.InstanceGet(gormStartKey)
	if !ok {
		return
	}
	startTime, ok := startVal.(time.Time)
	if !ok {
		return
	}
	elapsed := time.Since(startTime)

	spanVal, ok := db.InstanceGet(gormSpanKey)
	if !ok {
		return
	}
	span, ok := spanVal.(*sentry.Span)
	if !ok || span == nil {
		return
	}

	if p.slowThreshold > 0 && elapsed < p.slowThreshold {
		span.Sampled = sentry.SampledFalse
	}

	span.SetData("db.rows_affected", db.RowsAffected)
	if db.Error != nil {
		span.Status = sentry.SpanStatusInternalError
		span.SetData("db.error", db.Error.Error())
	} else {
		span.Status = sentry.SpanStatusOK
	}

	span.Finish()
}
