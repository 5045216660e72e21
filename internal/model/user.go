package model

type User struct {
	Model
	UserName  string `gorm:"type:varchar(30);not null" json:"userName"`
	LegalName string `gorm:"type:varchar(50);not null" json:"legalName"`
	NickName  string `gorm:"type:varchar(30)" json:"nickName"`
	Phone     string `gorm:"type:varchar(20);uniqueIndex;not null" json:"phonenumber"`
	Password  string `gorm:"type:varchar(255);not null" json:"-"`
	DeptID    uint   `gorm:"index;not null" json:"deptId"` // 学校/部门 ID，权限范围依据
	Role      string `gorm:"type:varchar(20);default:common;not null" json:"role"`
	Avatar    string `gorm:"type:varchar(255)" json:"avatar"`
}
