package model

import "time"

const RecordTypeNormal = 1

// VolunteerRecord 一次志愿者签到记录。EndTime 为空表示仍在签到中；
// 同一用户最多只能有一条未签退记录，由 hour 模块在事务内保证
type VolunteerRecord struct {
	Model
	UserID    uint       `gorm:"index;not null" json:"userId"`
	DeptID    uint       `gorm:"index;not null" json:"deptId"` // 冗余自用户，便于按学校过滤
	StartTime time.Time  `gorm:"not null" json:"-"`
	EndTime   *time.Time `gorm:"index" json:"-"`
	Type      int        `gorm:"default:1;not null" json:"type"`
	LegalName string     `gorm:"type:varchar(50)" json:"legalName"`
	// 操作人信息：管理员代为签到/签退时记录是谁操作的
	OperateUserID    uint   `json:"operateUserId"`
	OperateLegalName string `gorm:"type:varchar(50)" json:"operateLegalName"`
	Remark           string `gorm:"type:varchar(255)" json:"remark"`
}

// Open 该记录是否仍未签退
func (r *VolunteerRecord) Open() bool {
	return r.EndTime == nil
}
