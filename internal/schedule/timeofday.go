package schedule

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ErrMalformedTime 时间字符串不是合法的 24 小时制 "HH:MM"
var ErrMalformedTime = errors.New("时间格式无效，应为 24 小时制 HH:MM")

// TimeOfDay 一天内的墙上时刻（不含日期、不含时区）
type TimeOfDay struct {
	Hour   int // 0-23
	Minute int // 0-59
}

// ParseTimeOfDay 解析 "HH:MM" 形式的时刻字符串。
// 小时或分钟越界、字段缺失、非数字均返回包裹 ErrMalformedTime 的错误。
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	parts := strings.Split(s, ":")
	if len(parts) != 2 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	hour, err := strconv.Atoi(parts[0])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	minute, err := strconv.Atoi(parts[1])
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrMalformedTime, s)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// Minutes 距当日零点的分钟数，取值 [0, 1439]。
// 时刻的全序关系即该值的数值序。
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Display 渲染为 12 小时制 "h:MM AM/PM"。
// 0 点显示为 12 AM，12 点显示为 12 PM，分钟恒补零到两位。
func (t TimeOfDay) Display() string {
	period := "AM"
	if t.Hour >= 12 {
		period = "PM"
	}
	hour := t.Hour % 12
	if hour == 0 {
		hour = 12
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute, period)
}

// String 还原为 24 小时制 "HH:MM"（存储格式）
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// ClockMinutes 将宿主时钟的时刻折算为距零点的分钟数。
// 每次渲染请求只计算一次，之后作为纯参数传入分类器。
func ClockMinutes(now time.Time) int {
	return now.Hour()*60 + now.Minute()
}
