package schedule

// Status 课程相对当前时刻的进行状态
type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCurrent   Status = "current"
	StatusCompleted Status = "completed"
)

// Classify 按当前时刻（距零点分钟数）对课程分类。
//
// 区间两端均为闭：now == start 和 now == end 都算 current。
// 这意味着紧挨着排的两门课在交接的那一分钟会同时处于 current——
// 这是既定的边界行为，不是需要修正的缺陷。
//
// nowMinutes 由调用方在每次渲染时从宿主时钟计算一次后显式传入，
// 本函数不读时钟，可脱离真实时间测试。
func Classify(c Course, nowMinutes int) Status {
	start := c.Start.Minutes()
	end := c.End.Minutes()

	switch {
	case nowMinutes < start:
		return StatusUpcoming
	case nowMinutes <= end:
		return StatusCurrent
	default:
		return StatusCompleted
	}
}
