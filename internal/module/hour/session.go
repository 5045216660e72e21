package hour

import (
	"time"

	"pomelox-server/internal/model"
)

// SessionState 志愿者签到会话状态。不再根据最近记录的时间猜测，
// 而是由"是否存在未签退记录"唯一决定
type SessionState string

const (
	StateNotSignedIn SessionState = "not_signed_in"
	StateSignedIn    SessionState = "signed_in"
)

// StateOf 根据用户最近一条记录推导会话状态
func StateOf(last *model.VolunteerRecord) SessionState {
	if last == nil {
		return StateNotSignedIn
	}
	if last.Open() {
		return StateSignedIn
	}
	return StateNotSignedIn
}

// CheckoutKind 签退分类结果
type CheckoutKind int

const (
	// CheckoutInvalid 签退时间不晚于签到时间，记录失败，提示联系管理员补时
	CheckoutInvalid CheckoutKind = iota
	// CheckoutNormal 正常签退
	CheckoutNormal
	// CheckoutOvertime 工时超过建议上限，仍按实际时间落库但返回提醒
	CheckoutOvertime
)

// ClassifyCheckout 校验一次交互式签退。时间先后校验在任何落库之前执行
func ClassifyCheckout(start, end time.Time, maxWork time.Duration) CheckoutKind {
	if !end.After(start) {
		return CheckoutInvalid
	}
	if end.Sub(start) > maxWork {
		return CheckoutOvertime
	}
	return CheckoutNormal
}

// AutoCheckoutAt 自动签退的封顶时间：签到时间加工时上限。
// 与交互式签退不同，超时扫描不使用扫描时刻
func AutoCheckoutAt(start time.Time, maxWork time.Duration) time.Time {
	return start.Add(maxWork)
}

// DurationMinutes 一条已签退记录的时长（分钟），向下取整
func DurationMinutes(r *model.VolunteerRecord) int {
	if r.EndTime == nil {
		return 0
	}
	return int(r.EndTime.Sub(r.StartTime).Minutes())
}
