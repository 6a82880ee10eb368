package schedule

import "sort"

// CoursesOnDay 返回指定星期的课程，按开始时刻升序。
//
// 排序必须稳定：开始时刻相同的两门课保持它们在快照中的相对顺序。
// 入参快照不被修改，结果是新切片。
func CoursesOnDay(all []Course, day Weekday) []Course {
	result := make([]Course, 0, len(all))
	for _, c := range all {
		if c.OnDay(day) {
			result = append(result, c)
		}
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Start.Minutes() < result[j].Start.Minutes()
	})
	return result
}

// ProjectWeek 将快照投影为周一到周日的七列网格。
//
// 无论输入如何，返回的映射恒有 Mon..Sun 七个键；没课的那天是空列表
// （"今天没课"的占位展示由调用方负责）。排在多天的课程在每一列中
// 独立出现、独立排序——它们是同一门课在多个单元格里的呈现。
func ProjectWeek(all []Course) map[Weekday][]Course {
	week := make(map[Weekday][]Course, len(Weekdays))
	for _, day := range Weekdays {
		week[day] = CoursesOnDay(all, day)
	}
	return week
}
