// Package permission 实现基于角色的能力检查。
// 三级权限：manage 不受限制；part_manage 仅限同校（deptId 相同）且不能操作
// manage 角色的目标；staff 仅限本人。所有写操作在 handler 内调用 CanOperate
// 做服务端校验，列表读取通过 Scope 收敛查询范围。
package permission

type Role string

const (
	RoleManage     Role = "manage"      // 总管理员，可见所有学校
	RolePartManage Role = "part_manage" // 分管理员，仅可见本校
	RoleStaff      Role = "staff"       // 内部员工，仅可见本人
	RoleCommon     Role = "common"      // 普通用户，无志愿者管理能力
)

// Level 角色层级，用于路由上的最低权限判断
func (r Role) Level() int {
	switch r {
	case RoleManage:
		return 4
	case RolePartManage:
		return 3
	case RoleStaff:
		return 2
	case RoleCommon:
		return 1
	default:
		return 0
	}
}

func (r Role) Valid() bool {
	return r.Level() > 0
}

// Actor 参与权限判定的最小用户信息
type Actor struct {
	UserID uint
	DeptID uint
	Role   Role
}

// CanOperate 判断 actor 能否对 target 执行签到/签退等写操作。
// part_manage 即使与 manage 目标同校也不允许操作
func CanOperate(actor, target Actor) bool {
	switch actor.Role {
	case RoleManage:
		return true
	case RolePartManage:
		if target.Role == RoleManage {
			return false
		}
		return actor.DeptID == target.DeptID
	case RoleStaff:
		return actor.UserID == target.UserID
	default:
		return false
	}
}

// Scope 列表查询的可见范围。DeptID/UserID 为 nil 表示该维度不限制
type Scope struct {
	DeptID *uint
	UserID *uint
}

// ScopeOf 按角色收敛查询范围：manage 不限制，part_manage 限定本校，
// 其余限定本人
func ScopeOf(actor Actor) Scope {
	switch actor.Role {
	case RoleManage:
		return Scope{}
	case RolePartManage:
		deptID := actor.DeptID
		return Scope{DeptID: &deptID}
	default:
		userID := actor.UserID
		return Scope{UserID: &userID}
	}
}

// Narrow 将请求方传入的过滤条件与角色范围取交集，
// 请求越出范围时返回 false
func (s Scope) Narrow(deptID, userID *uint) (Scope, bool) {
	out := s
	if deptID != nil {
		if s.DeptID != nil && *s.DeptID != *deptID {
			return Scope{}, false
		}
		if s.UserID == nil {
			out.DeptID = deptID
		}
	}
	if userID != nil {
		if s.UserID != nil && *s.UserID != *userID {
			return Scope{}, false
		}
		out.UserID = userID
	}
	return out, true
}
