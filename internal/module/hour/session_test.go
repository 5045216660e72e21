package hour

import (
	"testing"
	"time"

	"pomelox-server/internal/model"

	"github.com/stretchr/testify/require"
)

func TestStateOf(t *testing.T) {
	now := time.Now()
	end := now.Add(2 * time.Hour)

	tests := []struct {
		name   string
		record *model.VolunteerRecord
		want   SessionState
	}{
		{"无记录", nil, StateNotSignedIn},
		{"未签退", &model.VolunteerRecord{StartTime: now}, StateSignedIn},
		{"已签退", &model.VolunteerRecord{StartTime: now, EndTime: &end}, StateNotSignedIn},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, StateOf(tt.record))
		})
	}
}

func TestClassifyCheckout(t *testing.T) {
	maxWork := 12 * time.Hour
	start := time.Date(2025, 7, 10, 8, 0, 0, 0, time.Local)

	tests := []struct {
		name string
		end  time.Time
		want CheckoutKind
	}{
		{"正常签退", start.Add(3 * time.Hour), CheckoutNormal},
		{"恰好十二小时仍为正常", start.Add(12 * time.Hour), CheckoutNormal},
		{"超过十二小时", start.Add(12*time.Hour + time.Minute), CheckoutOvertime},
		{"大幅超时", start.Add(20 * time.Hour), CheckoutOvertime},
		{"签退等于签到时间", start, CheckoutInvalid},
		{"签退早于签到时间", start.Add(-time.Hour), CheckoutInvalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ClassifyCheckout(start, tt.end, maxWork))
		})
	}
}

func TestAutoCheckoutAt(t *testing.T) {
	start := time.Date(2025, 7, 10, 8, 0, 0, 0, time.Local)
	maxWork := 12 * time.Hour

	// 自动签退封顶到 签到时间+上限，与扫描发生的时刻无关
	want := time.Date(2025, 7, 10, 20, 0, 0, 0, time.Local)
	require.Equal(t, want, AutoCheckoutAt(start, maxWork))
}

func TestDurationMinutes(t *testing.T) {
	start := time.Date(2025, 7, 10, 8, 0, 0, 0, time.Local)
	end := start.Add(150 * time.Minute)

	require.Equal(t, 150, DurationMinutes(&model.VolunteerRecord{StartTime: start, EndTime: &end}))
	require.Equal(t, 0, DurationMinutes(&model.VolunteerRecord{StartTime: start}))
}
