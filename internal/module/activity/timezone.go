package activity

import (
	"strings"
	"time"
)

// 活动的 timeZone 字段是自由文本（如 "Central Time, CT" 或 "美中部时区(Central Time, CT)"），
// 展示时压缩为缩写前缀。美国时区按活动日期区分夏令时/冬令时缩写，北京时间不变

type tzLabel struct {
	Zh string
	En string
}

type tzConfig struct {
	Standard tzLabel
	Daylight tzLabel
	Generic  tzLabel // 日期无法解析时使用的通用缩写
}

var tzConfigs = map[string]tzConfig{
	"central":  {Standard: tzLabel{"美中", "CST"}, Daylight: tzLabel{"美中", "CDT"}, Generic: tzLabel{"美中", "CT"}},
	"pacific":  {Standard: tzLabel{"美西", "PST"}, Daylight: tzLabel{"美西", "PDT"}, Generic: tzLabel{"美西", "PT"}},
	"eastern":  {Standard: tzLabel{"美东", "EST"}, Daylight: tzLabel{"美东", "EDT"}, Generic: tzLabel{"美东", "ET"}},
	"mountain": {Standard: tzLabel{"山区", "MST"}, Daylight: tzLabel{"山区", "MDT"}, Generic: tzLabel{"山区", "MT"}},
	// 北京时间不使用夏令时
	"beijing": {Standard: tzLabel{"北京", "CST"}, Daylight: tzLabel{"北京", "CST"}, Generic: tzLabel{"北京", "CST"}},
}

// 兼容旧数据的完整匹配表
var tzLegacy = map[string]tzLabel{
	"美中部时区(Central Time, CT)":  {"美中", "CT"},
	"美西部时区(Pacific Time, PT)":  {"美西", "PT"},
	"美东部时区(Eastern Time, ET)":  {"美东", "ET"},
	"美山区时区(Mountain Time, MT)": {"山区", "MT"},
	"北京时间(Beijing Time, CST)":  {"北京", "CST"},
	"Central Time, CT":         {"美中", "CT"},
	"Pacific Time, PT":         {"美西", "PT"},
	"Eastern Time, ET":         {"美东", "ET"},
	"Mountain Time, MT":        {"山区", "MT"},
	"Beijing Time, CST":        {"北京", "CST"},
}

func (l tzLabel) forLanguage(language string) string {
	if language == "en" {
		return l.En
	}
	return l.Zh
}

// detectTimezoneKey 从自由文本中识别时区关键字
func detectTimezoneKey(timezone string) string {
	tz := strings.ToLower(timezone)
	switch {
	case strings.Contains(tz, "central") || strings.Contains(timezone, "中部"):
		return "central"
	case strings.Contains(tz, "pacific") || strings.Contains(timezone, "西部"):
		return "pacific"
	case strings.Contains(tz, "eastern") || strings.Contains(timezone, "东部"):
		return "eastern"
	case strings.Contains(tz, "mountain") || strings.Contains(timezone, "山区"):
		return "mountain"
	case strings.Contains(tz, "beijing") || strings.Contains(timezone, "北京"):
		return "beijing"
	}
	return ""
}

// isDaylightSaving 判断日期是否落在美国夏令时区间：
// 3 月第二个周日 02:00 起，11 月第一个周日 02:00 止
func isDaylightSaving(t time.Time) bool {
	year := t.Year()

	march1 := time.Date(year, time.March, 1, 0, 0, 0, 0, t.Location())
	firstSundayMarch := 1 + (7-int(march1.Weekday()))%7
	dstStart := time.Date(year, time.March, firstSundayMarch+7, 2, 0, 0, 0, t.Location())

	nov1 := time.Date(year, time.November, 1, 0, 0, 0, 0, t.Location())
	firstSundayNov := 1 + (7-int(nov1.Weekday()))%7
	dstEnd := time.Date(year, time.November, firstSundayNov, 2, 0, 0, 0, t.Location())

	return !t.Before(dstStart) && t.Before(dstEnd)
}

// TimezoneAbbreviation 求时区缩写。识别出美国时区且活动日期可解析时，
// 按夏令时返回 CDT/CST 一类的精确缩写；日期不可解析时退回 CT 一类的
// 通用缩写；无法识别时返回空串，展示层不加前缀
func TimezoneAbbreviation(timezone, activityDate, language string) string {
	if timezone == "" {
		return ""
	}

	if key := detectTimezoneKey(timezone); key != "" {
		cfg := tzConfigs[key]
		if activityDate != "" {
			if date, ok := parseActivityDate(activityDate); ok {
				if isDaylightSaving(date) {
					return cfg.Daylight.forLanguage(language)
				}
				return cfg.Standard.forLanguage(language)
			}
		}
		return cfg.Generic.forLanguage(language)
	}

	if label, ok := tzLegacy[timezone]; ok {
		return label.forLanguage(language)
	}

	return ""
}

func parseActivityDate(s string) (time.Time, bool) {
	for _, layout := range []string{"2006-01-02", "2006-01-02 15:04:05"} {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
