package activity

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTimezoneAbbreviation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		date     string
		language string
		want     string
	}{
		{"中部夏令时英文", "Central Time, CT", "2025-07-01", "en", "CDT"},
		{"中部冬令时英文", "Central Time, CT", "2025-01-15", "en", "CST"},
		{"中部夏令时中文", "Central Time, CT", "2025-07-01", "zh", "美中"},
		{"中文旧格式", "美中部时区(Central Time, CT)", "2025-07-01", "en", "CDT"},
		{"西部夏令时", "Pacific Time, PT", "2025-08-10", "en", "PDT"},
		{"东部冬令时", "Eastern Time, ET", "2025-12-25", "en", "EST"},
		{"山区夏令时中文", "Mountain Time, MT", "2025-06-01", "zh", "山区"},
		{"北京时间不随夏令时变化", "Beijing Time, CST", "2025-07-01", "en", "CST"},
		{"北京时间冬季", "北京时间(Beijing Time, CST)", "2025-01-01", "en", "CST"},
		{"日期缺失退回通用缩写", "Central Time, CT", "", "en", "CT"},
		{"日期不可解析退回通用缩写", "Pacific Time, PT", "not-a-date", "en", "PT"},
		{"无法识别返回空", "Atlantic Time", "2025-07-01", "en", ""},
		{"空时区返回空", "", "2025-07-01", "en", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, TimezoneAbbreviation(tt.timezone, tt.date, tt.language))
		})
	}
}

func TestDaylightSavingBoundaries(t *testing.T) {
	// 2025 年夏令时：3 月 9 日 02:00 起，11 月 2 日 02:00 止
	tests := []struct {
		date string
		want string
	}{
		{"2025-03-08", "CST"}, // 切换前一天
		{"2025-03-09", "CST"}, // 切换日零点仍在 02:00 之前
		{"2025-03-10", "CDT"},
		{"2025-11-01", "CDT"},
		{"2025-11-02", "CDT"}, // 结束日零点仍在 02:00 之前
		{"2025-11-03", "CST"},
	}
	for _, tt := range tests {
		t.Run(tt.date, func(t *testing.T) {
			require.Equal(t, tt.want, TimezoneAbbreviation("Central Time, CT", tt.date, "en"))
		})
	}
}
