package activity

import (
	"testing"
	"time"

	"pomelox-server/internal/model"

	"github.com/stretchr/testify/require"
)

func TestStatusOf(t *testing.T) {
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name       string
		endTime    string
		signStatus int
		want       Status
	}{
		{"已结束覆盖已签到", "2025-07-09 18:00:00", model.SignStatusCheckedIn, StatusEnded},
		{"已结束覆盖已报名", "2025-07-09 18:00:00", model.SignStatusRegistered, StatusEnded},
		{"未结束已报名", "2025-07-11 18:00:00", model.SignStatusRegistered, StatusRegistered},
		{"未结束已签到", "2025-07-11 18:00:00", model.SignStatusCheckedIn, StatusCheckedIn},
		{"未结束未报名", "2025-07-11 18:00:00", model.SignStatusNone, StatusAvailable},
		{"进行中未报名仍可报名", "2025-07-10 18:00:00", model.SignStatusNone, StatusAvailable},
		{"结束时间无法解析视为未结束", "garbage", model.SignStatusNone, StatusAvailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, statusOf(tt.endTime, tt.signStatus, now))
		})
	}
}

func TestAdaptDateDisplay(t *testing.T) {
	now := time.Date(2025, 7, 1, 0, 0, 0, 0, time.Local)

	t.Run("单日活动带时区与时间", func(t *testing.T) {
		a := &model.Activity{
			Name:      "Independence Day BBQ",
			StartTime: "2025-07-04 19:30:00",
			EndTime:   "2025-07-04 22:00:00",
			TimeZone:  "Central Time, CT",
			Enabled:   1,
		}
		view := Adapt(a, model.SignStatusNone, 5, "en", now)
		require.Equal(t, "CDT 07/04 7:30PM", view.DateDisplay)
		require.Equal(t, "2025-07-04", view.Date)
		require.Equal(t, "19:30", view.Time)
		require.Equal(t, 5, view.RegisteredCount)
		require.Equal(t, StatusAvailable, view.Status)
	})

	t.Run("多日活动显示日期区间", func(t *testing.T) {
		a := &model.Activity{
			Name:      "Orientation Week",
			StartTime: "2025-09-11 00:00:00",
			EndTime:   "2025-09-17 23:00:00",
			Enabled:   1,
		}
		view := Adapt(a, model.SignStatusNone, 0, "zh", now)
		require.Equal(t, "09/11-09/17", view.DateDisplay)
	})

	t.Run("零点不显示时间", func(t *testing.T) {
		a := &model.Activity{
			StartTime: "2025-08-01 00:00:00",
			EndTime:   "2025-08-01 23:00:00",
			Enabled:   1,
		}
		view := Adapt(a, model.SignStatusNone, 0, "zh", now)
		require.Equal(t, "08/01", view.DateDisplay)
	})

	t.Run("畸形时间串退化为字符串切分", func(t *testing.T) {
		a := &model.Activity{
			StartTime: "2025/07/04 19:30",
			EndTime:   "whenever",
			Enabled:   1,
		}
		require.NotPanics(t, func() {
			view := Adapt(a, model.SignStatusNone, 0, "zh", now)
			require.Equal(t, "2025/07/04", view.Date)
			require.Equal(t, "19:30", view.Time)
		})
	})
}

func TestParseDateTimeCache(t *testing.T) {
	first := parseDateTime("2025-07-04 19:30:00")
	second := parseDateTime("2025-07-04 19:30:00")
	require.Equal(t, first, second)
	require.True(t, first.OK)
	require.Equal(t, "2025-07-04", first.Date)
}

func TestCanRegister(t *testing.T) {
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.Local)

	tests := []struct {
		name      string
		signStart string
		signEnd   string
		want      bool
	}{
		{"窗口内", "2025-07-01 00:00:00", "2025-07-20 00:00:00", true},
		{"窗口已过", "2025-06-01 00:00:00", "2025-07-01 00:00:00", false},
		{"窗口未开始", "2025-07-15 00:00:00", "2025-07-20 00:00:00", false},
		{"未配置窗口默认放行", "", "", true},
		{"窗口不可解析默认放行", "bad", "worse", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := &model.Activity{SignStartTime: tt.signStart, SignEndTime: tt.signEnd}
			require.Equal(t, tt.want, canRegister(a, now))
		})
	}
}
