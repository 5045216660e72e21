package hour

import (
	"log/slog"
	"time"

	"pomelox-server/config"
	"pomelox-server/internal/global/logger"
)

var log *slog.Logger

type ModuleHour struct{}

func (h *ModuleHour) GetName() string {
	return "Hour"
}

func (h *ModuleHour) Init() {
	log = logger.New("Hour")

	if config.Get().Hour.SweepEnable {
		interval := time.Duration(config.Get().Hour.SweepIntervalMinutes) * time.Minute
		go sweepLoop(interval)
	}
}

// maxWorkDuration 单次签到的建议工时上限
func maxWorkDuration() time.Duration {
	return time.Duration(config.Get().Hour.MaxWorkHours) * time.Hour
}
