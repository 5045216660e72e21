package activity

import (
	"sort"
	"time"
)

// 列表排序规则：未结束的活动在前，其中 24 小时内开始的按开始时间升序
// 优先，7 天内开始的其次升序，剩余按 id 倒序（近似发布时间）；
// 已结束的活动垫底，内部同样按 id 倒序

type sortKey struct {
	ended        bool
	hoursToStart float64
	id           uint
}

func sortKeyOf(v View, now time.Time) sortKey {
	start := parseDateTime(v.StartTime)

	// 结束判断按结束日期当天 23:59:59，跨天活动整天有效
	end := start.At
	if v.EndDate != "" {
		if t, err := time.ParseInLocation("2006-01-02 15:04:05", v.EndDate+" 23:59:59", time.Local); err == nil {
			end = t
		}
	}

	return sortKey{
		ended:        end.Before(now),
		hoursToStart: start.At.Sub(now).Hours(),
		id:           v.ID,
	}
}

func (k sortKey) urgent() bool {
	return k.hoursToStart >= 0 && k.hoursToStart <= 24
}

func (k sortKey) upcoming() bool {
	return k.hoursToStart >= 0 && k.hoursToStart <= 168
}

func (k sortKey) less(other sortKey) bool {
	a, b := k, other

	if a.ended != b.ended {
		return !a.ended
	}
	if a.ended {
		return a.id > b.id
	}

	if a.urgent() != b.urgent() {
		return a.urgent()
	}
	if a.urgent() {
		return a.hoursToStart < b.hoursToStart
	}

	if a.upcoming() != b.upcoming() {
		return a.upcoming()
	}
	if a.upcoming() {
		return a.hoursToStart < b.hoursToStart
	}

	return a.id > b.id
}

// Sort 就地排序活动视图
func Sort(views []View, now time.Time) {
	type entry struct {
		view View
		key  sortKey
	}
	entries := make([]entry, len(views))
	for i, v := range views {
		entries[i] = entry{view: v, key: sortKeyOf(v, now)}
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].key.less(entries[j].key)
	})

	for i, e := range entries {
		views[i] = e.view
	}
}
