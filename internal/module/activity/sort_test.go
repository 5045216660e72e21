package activity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSort(t *testing.T) {
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.Local)

	view := func(id uint, start, endDate string) View {
		return View{ID: id, StartTime: start, EndDate: endDate}
	}

	views := []View{
		view(1, "2025-07-01 10:00:00", "2025-07-01"), // 已结束
		view(2, "2025-08-01 10:00:00", "2025-08-01"), // 一个月后
		view(3, "2025-07-10 20:00:00", "2025-07-10"), // 8 小时后，紧急
		view(4, "2025-07-12 10:00:00", "2025-07-12"), // 7 天内
		view(5, "2025-07-02 10:00:00", "2025-07-02"), // 已结束，更新
		view(6, "2025-07-11 10:00:00", "2025-07-11"), // 22 小时后，紧急但晚于 3
		view(7, "2025-09-01 10:00:00", "2025-09-01"), // 远期，id 最大
	}

	Sort(views, now)

	ids := make([]uint, len(views))
	for i, v := range views {
		ids[i] = v.ID
	}

	// 紧急升序(3,6) → 7 天内升序(4) → 其余 id 倒序(7,2) → 已结束 id 倒序(5,1)
	require.Equal(t, []uint{3, 6, 4, 7, 2, 5, 1}, ids)
}

func TestSortOngoingActivityNotEnded(t *testing.T) {
	now := time.Date(2025, 7, 10, 12, 0, 0, 0, time.Local)

	views := []View{
		// 进行中：已开始但结束日期是今天，按 23:59:59 计算尚未结束
		{ID: 1, StartTime: "2025-07-10 08:00:00", EndDate: "2025-07-10"},
		// 已结束
		{ID: 2, StartTime: "2025-07-09 08:00:00", EndDate: "2025-07-09"},
	}

	Sort(views, now)
	require.Equal(t, uint(1), views[0].ID)
	require.Equal(t, uint(2), views[1].ID)
}

func TestSortEmptyAndSingle(t *testing.T) {
	now := time.Now()
	require.NotPanics(t, func() {
		Sort(nil, now)
		Sort([]View{{ID: 1, StartTime: "2025-07-10 08:00:00"}}, now)
	})
}
