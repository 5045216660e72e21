package model

// Activity 活动。时间字段保留后端历史格式的字符串（"2006-01-02 15:04:05"），
// 时区为自由文本（如 "Central Time, CT"），展示层负责解析与标注
type Activity struct {
	Model
	Name          string `gorm:"type:varchar(100);not null" json:"name"`
	Icon          string `gorm:"type:varchar(255)" json:"icon"` // 封面图 URL
	StartTime     string `gorm:"type:varchar(32);not null" json:"startTime"`
	EndTime       string `gorm:"type:varchar(32);not null" json:"endTime"`
	TimeZone      string `gorm:"type:varchar(64)" json:"timeZone"`
	Address       string `gorm:"type:varchar(255)" json:"address"`
	Enrollment    int    `gorm:"default:0" json:"enrollment"` // 报名人数上限，0 表示不限制
	Detail        string `gorm:"type:text" json:"detail"`     // 活动详情（HTML）
	SignStartTime string `gorm:"type:varchar(32)" json:"signStartTime"`
	SignEndTime   string `gorm:"type:varchar(32)" json:"signEndTime"`
	Enabled       int    `gorm:"default:1" json:"enabled"` // 1 启用 0 停用
	CategoryID    uint   `gorm:"index" json:"categoryId"`
	CreateUserID  uint   `gorm:"not null" json:"createUserId"`
}
