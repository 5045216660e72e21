package hour

import (
	"context"
	"time"

	"pomelox-server/internal/global/database"
	"pomelox-server/internal/global/notify"
	"pomelox-server/internal/global/response"
	"pomelox-server/internal/model"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const autoCheckoutRemark = "【自动签退】超时签到，系统自动处理"

// sweepLoop 周期扫描超时未签退的记录
func sweepLoop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	log.Info("超时自动签退扫描启动", "interval", interval.String())
	for range ticker.C {
		closed, err := sweepOnce(time.Now())
		if err != nil {
			log.Error("超时自动签退扫描失败", "error", err)
			continue
		}
		if closed > 0 {
			log.Info("超时自动签退完成", "closed", closed)
		}
	}
}

// sweepOnce 关闭所有签到超过上限仍未签退的记录。
// 与交互式签退不同，这里的签退时间统一封顶为 签到时间+上限，
// 而不是扫描时刻，避免扫描间隔放大志愿者的工时
func sweepOnce(now time.Time) (int, error) {
	maxWork := maxWorkDuration()
	deadline := now.Add(-maxWork)

	var closed []model.VolunteerRecord
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		var open []model.VolunteerRecord
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("end_time IS NULL AND start_time <= ?", deadline).
			Find(&open).Error
		if err != nil {
			return err
		}

		for i := range open {
			record := &open[i]
			endTime := AutoCheckoutAt(record.StartTime, maxWork)
			err := tx.Model(record).Updates(map[string]any{
				"end_time":           endTime,
				"operate_legal_name": "系统",
				"remark":             autoCheckoutRemark,
			}).Error
			if err != nil {
				return err
			}
			record.EndTime = &endTime
			closed = append(closed, *record)
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	for i := range closed {
		record := &closed[i]
		notify.Publish(context.Background(), notify.Event{
			Kind:      "auto_signout",
			UserID:    record.UserID,
			LegalName: record.LegalName,
			DeptID:    record.DeptID,
			RecordID:  record.ID,
			Time:      model.FormatTimePtr(record.EndTime),
		})
	}
	return len(closed), nil
}

// AutoCheckout 手动触发一轮超时扫描，仅限总管理员
func AutoCheckout(c *gin.Context) {
	closed, err := sweepOnce(time.Now())
	if err != nil {
		log.Error("手动触发自动签退失败", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	log.Info("手动触发自动签退完成", "closed", closed)
	response.Success(c, gin.H{"closed": closed})
}
