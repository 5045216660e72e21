package model

// 活动报名状态，随接口透出给客户端
const (
	SignStatusNone       = 0  // 未报名
	SignStatusRegistered = -1 // 已报名未签到
	SignStatusCheckedIn  = 1  // 已签到
)

// Enrollment 一个用户对一个活动的报名/签到状态
type Enrollment struct {
	Model
	ActivityID uint `gorm:"uniqueIndex:idx_activity_user;not null" json:"activityId"`
	UserID     uint `gorm:"uniqueIndex:idx_activity_user;not null" json:"userId"`
	SignStatus int  `gorm:"default:-1;not null" json:"signStatus"`
}
