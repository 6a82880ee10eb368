package dto

// ── 时间表视图 DTO ──

// TodayCourseItem 今日视图的课程条目（带进行状态标注）
type TodayCourseItem struct {
	CourseResponse
	Status string `json:"status"` // upcoming | current | completed
}

// TodayViewResponse 今日视图响应
type TodayViewResponse struct {
	Date    string            `json:"date"` // YYYY-MM-DD
	Day     string            `json:"day"`  // Mon..Sun
	Courses []TodayCourseItem `json:"courses"`
}

// WeekColumn 周视图的单日列
type WeekColumn struct {
	Day     string           `json:"day"`
	Courses []CourseResponse `json:"courses"` // 没课时为空数组，占位展示由前端负责
}

// WeekViewResponse 周视图响应，恒为周一到周日七列
type WeekViewResponse struct {
	Days []WeekColumn `json:"days"`
}
