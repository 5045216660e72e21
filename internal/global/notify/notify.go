package notify

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"pomelox-server/config"
	"pomelox-server/internal/global/httpclient"
	"pomelox-server/internal/global/logger"
	"pomelox-server/internal/global/redis"
	"pomelox-server/internal/model"
)

var log *slog.Logger

func Init() {
	log = logger.New("Notify")
}

// Event 签到/签退事件，发布给其他系统消费（如小组绩效统计）
type Event struct {
	Kind      string `json:"kind"` // signin / signout / auto_signout
	UserID    uint   `json:"userId"`
	LegalName string `json:"legalName"`
	DeptID    uint   `json:"deptId"`
	RecordID  uint   `json:"recordId"`
	Time      string `json:"time"`
}

// Publish 尽力通知：redis 频道广播加可选 webhook。
// 任何失败只记日志，绝不影响签到签退主流程
func Publish(ctx context.Context, event Event) {
	if event.Time == "" {
		event.Time = time.Now().Format(model.TimeLayout)
	}

	payload, err := json.Marshal(event)
	if err != nil {
		log.Warn("通知序列化失败", "err", err)
		return
	}

	if channel := config.Get().Notify.Channel; channel != "" && redis.RDB != nil {
		if err := redis.RDB.Publish(ctx, channel, payload).Err(); err != nil {
			log.Warn("redis 通知发布失败", "channel", channel, "err", err)
		}
	}

	if url := config.Get().Notify.WebhookURL; url != "" && httpclient.Client != nil {
		_, err := httpclient.Client.R().
			SetContext(ctx).
			SetHeader("Content-Type", "application/json").
			SetBody(payload).
			Post(url)
		if err != nil {
			log.Warn("webhook 通知失败", "url", url, "err", err)
		}
	}
}
