package permission

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanOperate(t *testing.T) {
	manage := Actor{UserID: 1, DeptID: 10, Role: RoleManage}
	partManageA := Actor{UserID: 2, DeptID: 10, Role: RolePartManage}
	staffA := Actor{UserID: 3, DeptID: 10, Role: RoleStaff}
	staffB := Actor{UserID: 4, DeptID: 20, Role: RoleStaff}
	commonA := Actor{UserID: 5, DeptID: 10, Role: RoleCommon}

	tests := []struct {
		name   string
		actor  Actor
		target Actor
		want   bool
	}{
		{"manage 可操作任何人", manage, staffB, true},
		{"manage 可操作其他学校", manage, Actor{UserID: 9, DeptID: 99, Role: RoleCommon}, true},
		{"part_manage 可操作同校员工", partManageA, staffA, true},
		{"part_manage 可操作同校普通用户", partManageA, commonA, true},
		{"part_manage 不可跨校", partManageA, staffB, false},
		{"part_manage 不可操作同校总管理员", partManageA, manage, false},
		{"staff 可操作本人", staffA, staffA, true},
		{"staff 不可操作他人", staffA, commonA, false},
		{"common 无任何操作能力", commonA, commonA, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, CanOperate(tt.actor, tt.target))
		})
	}
}

func TestRoleLevel(t *testing.T) {
	require.Greater(t, RoleManage.Level(), RolePartManage.Level())
	require.Greater(t, RolePartManage.Level(), RoleStaff.Level())
	require.Greater(t, RoleStaff.Level(), RoleCommon.Level())
	require.Equal(t, 0, Role("unknown").Level())
	require.False(t, Role("unknown").Valid())
}

func TestScopeNarrow(t *testing.T) {
	deptA, deptB := uint(10), uint(20)
	userA := uint(3)

	t.Run("manage 不受限制", func(t *testing.T) {
		scope := ScopeOf(Actor{UserID: 1, Role: RoleManage})
		narrowed, ok := scope.Narrow(&deptA, nil)
		require.True(t, ok)
		require.Equal(t, &deptA, narrowed.DeptID)
		require.Nil(t, narrowed.UserID)
	})

	t.Run("part_manage 限定本校", func(t *testing.T) {
		scope := ScopeOf(Actor{UserID: 2, DeptID: deptA, Role: RolePartManage})

		narrowed, ok := scope.Narrow(&deptA, &userA)
		require.True(t, ok)
		require.Equal(t, &userA, narrowed.UserID)

		_, ok = scope.Narrow(&deptB, nil)
		require.False(t, ok, "跨校过滤应被拒绝")
	})

	t.Run("staff 仅限本人", func(t *testing.T) {
		scope := ScopeOf(Actor{UserID: userA, DeptID: deptA, Role: RoleStaff})

		_, ok := scope.Narrow(nil, &userA)
		require.True(t, ok)

		other := uint(99)
		_, ok = scope.Narrow(nil, &other)
		require.False(t, ok, "查询他人应被拒绝")
	})
}
