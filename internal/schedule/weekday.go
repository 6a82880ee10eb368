package schedule

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownWeekday 不是合法的星期缩写
var ErrUnknownWeekday = errors.New("未知的星期缩写")

// Weekday 星期枚举，取值固定为 Mon..Sun 七个缩写
type Weekday string

const (
	Mon Weekday = "Mon"
	Tue Weekday = "Tue"
	Wed Weekday = "Wed"
	Thu Weekday = "Thu"
	Fri Weekday = "Fri"
	Sat Weekday = "Sat"
	Sun Weekday = "Sun"
)

// Weekdays 周视图的固定展示顺序（周一在前）
var Weekdays = [7]Weekday{Mon, Tue, Wed, Thu, Fri, Sat, Sun}

// ParseWeekday 解析星期缩写
func ParseWeekday(s string) (Weekday, error) {
	switch Weekday(s) {
	case Mon, Tue, Wed, Thu, Fri, Sat, Sun:
		return Weekday(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
}

// WeekdayOf 将宿主时钟的日期映射到枚举（"今天"视图的入口）
func WeekdayOf(t time.Time) Weekday {
	switch t.Weekday() {
	case time.Monday:
		return Mon
	case time.Tuesday:
		return Tue
	case time.Wednesday:
		return Wed
	case time.Thursday:
		return Thu
	case time.Friday:
		return Fri
	case time.Saturday:
		return Sat
	default:
		return Sun
	}
}

// index Mon=0 … Sun=6，用于日集合的规范排序
func (d Weekday) index() int {
	for i, w := range Weekdays {
		if w == d {
			return i
		}
	}
	return len(Weekdays)
}

// SortDays 将日集合去重并按 Mon→Sun 规范顺序重排，返回新切片
func SortDays(days []Weekday) []Weekday {
	seen := make(map[Weekday]bool, len(days))
	result := make([]Weekday, 0, len(days))
	for _, w := range Weekdays {
		for _, d := range days {
			if d == w && !seen[d] {
				seen[d] = true
				result = append(result, d)
			}
		}
	}
	return result
}
