package schedule

// ── 查询引擎的课程值对象 ──────────────────────────────────
//
// 设计说明：
//   - 本包只处理已通过校验的值：时刻为解析后的 TimeOfDay，星期为枚举。
//     字符串的解析与格式化发生在 Service 层边界，本包不接触原始输入。
//   - 所有查询函数都是对不可变快照的纯投影：不读写共享状态，不修改入参，
//     返回新的切片。快照由调用方持有并作为参数传入。
// ─────────────────────────────────────────────────────────────

// Course 一条每周循环的课程记录（查询视图）
type Course struct {
	ID         string
	Name       string
	Instructor string
	Location   string
	Start      TimeOfDay
	End        TimeOfDay
	Days       []Weekday
	Color      string
}

// OnDay 课程是否排在指定星期。
// Days 为空的记录不命中任何一天。
func (c Course) OnDay(day Weekday) bool {
	for _, d := range c.Days {
		if d == day {
			return true
		}
	}
	return false
}
