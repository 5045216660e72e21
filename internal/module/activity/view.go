package activity

import (
	"fmt"
	"strings"
	"time"

	"pomelox-server/internal/model"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Status 展示给客户端的活动状态。活动已结束时覆盖报名状态
type Status string

const (
	StatusAvailable  Status = "available"
	StatusEnded      Status = "ended"
	StatusRegistered Status = "registered"
	StatusCheckedIn  Status = "checked_in"
)

// View 列表/详情接口返回的活动视图
type View struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Location        string `json:"location"`
	Date            string `json:"date"`    // YYYY-MM-DD
	EndDate         string `json:"endDate"` // 同 Date 格式，单日活动与 Date 相同
	Time            string `json:"time"`    // HH:MM
	DateDisplay     string `json:"dateDisplay"`
	Image           string `json:"image"`
	MaxAttendees    int    `json:"maxAttendees"` // 0 表示不限制
	RegisteredCount int    `json:"registeredCount"`
	Status          Status `json:"status"`
	SignStatus      int    `json:"signStatus"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	RegStartTime    string `json:"registrationStartTime"`
	RegEndTime      string `json:"registrationEndTime"`
	Detail          string `json:"detail"`
	Enabled         bool   `json:"enabled"`
	TimeZone        string `json:"timeZone"`
	CategoryID      uint   `json:"categoryId"`
}

type parsedDateTime struct {
	Date string // YYYY-MM-DD
	Time string // HH:MM
	At   time.Time
	OK   bool // At 是否可信
}

// 时间字符串解析结果缓存。活动时间字符串重复率高（同一活动在多个
// 用户的列表里反复出现），缓存上限固定防止无界增长
var dateTimeCache, _ = lru.New[string, parsedDateTime](256)

// parseDateTime 解析 "2006-01-02 15:04:05" 格式的时间串。
// 格式不符时退化为按空格切分取前两段，绝不 panic
func parseDateTime(s string) parsedDateTime {
	if cached, ok := dateTimeCache.Get(s); ok {
		return cached
	}

	var result parsedDateTime
	if t, err := time.ParseInLocation(model.TimeLayout, s, time.Local); err == nil {
		result = parsedDateTime{
			Date: t.Format("2006-01-02"),
			Time: t.Format("15:04"),
			At:   t,
			OK:   true,
		}
	} else {
		parts := strings.SplitN(s, " ", 2)
		result.Date = parts[0]
		if len(parts) > 1 && len(parts[1]) >= 5 {
			result.Time = parts[1][:5]
		} else if len(parts) > 1 {
			result.Time = parts[1]
		}
	}

	dateTimeCache.Add(s, result)
	return result
}

// statusOf 计算活动状态。结束时间早于当前时间时一律 ended，
// 不再考虑报名状态；未结束活动按 signStatus 映射
func statusOf(endTime string, signStatus int, now time.Time) Status {
	end := parseDateTime(endTime)
	if end.OK && end.At.Before(now) {
		return StatusEnded
	}
	switch signStatus {
	case model.SignStatusRegistered:
		return StatusRegistered
	case model.SignStatusCheckedIn:
		return StatusCheckedIn
	default:
		return StatusAvailable
	}
}

// Adapt 把活动记录转换为指定观察者视角的视图
func Adapt(a *model.Activity, signStatus, registerCount int, language string, now time.Time) View {
	start := parseDateTime(a.StartTime)
	end := parseDateTime(a.EndTime)

	view := View{
		ID:              a.ID,
		Title:           a.Name,
		Location:        a.Address,
		Date:            start.Date,
		EndDate:         end.Date,
		Time:            start.Time,
		Image:           a.Icon,
		MaxAttendees:    a.Enrollment,
		RegisteredCount: registerCount,
		Status:          statusOf(a.EndTime, signStatus, now),
		SignStatus:      signStatus,
		StartTime:       a.StartTime,
		EndTime:         a.EndTime,
		RegStartTime:    a.SignStartTime,
		RegEndTime:      a.SignEndTime,
		Detail:          a.Detail,
		Enabled:         a.Enabled == 1,
		TimeZone:        a.TimeZone,
		CategoryID:      a.CategoryID,
	}
	view.DateDisplay = formatDateDisplay(view, language)
	return view
}

// formatDateDisplay 组合时区前缀、日期与时间：
// 单日 "CDT 09/11 7:30PM"，多日 "CDT 09/11-09/17 7:30PM"，00:00 不显示时间
func formatDateDisplay(view View, language string) string {
	label := TimezoneAbbreviation(view.TimeZone, view.Date, language)

	dateDisplay := formatMonthDay(view.Date)
	if view.EndDate != "" && view.EndDate != view.Date {
		dateDisplay += "-" + formatMonthDay(view.EndDate)
	}
	dateDisplay += formatClock(view.Time)

	if label != "" {
		return label + " " + dateDisplay
	}
	return dateDisplay
}

func formatMonthDay(date string) string {
	parts := strings.Split(date, "-")
	if len(parts) != 3 {
		return date
	}
	return parts[1] + "/" + parts[2]
}

// formatClock 把 "19:30" 转为 " 7:30PM"，零点或无时间返回空串
func formatClock(clock string) string {
	if clock == "" || clock == "00:00" {
		return ""
	}
	var hour, minute int
	if _, err := fmt.Sscanf(clock, "%d:%d", &hour, &minute); err != nil {
		return ""
	}
	ampm := "AM"
	if hour >= 12 {
		ampm = "PM"
	}
	hour12 := hour
	switch {
	case hour == 0:
		hour12 = 12
	case hour > 12:
		hour12 = hour - 12
	}
	return fmt.Sprintf(" %d:%02d%s", hour12, minute, ampm)
}

// canRegister 是否在报名时间窗口内，没配置窗口时默认放行
func canRegister(a *model.Activity, now time.Time) bool {
	if a.SignStartTime == "" || a.SignEndTime == "" {
		return true
	}
	start := parseDateTime(a.SignStartTime)
	end := parseDateTime(a.SignEndTime)
	if !start.OK || !end.OK {
		return true
	}
	return !now.Before(start.At) && !now.After(end.At)
}
