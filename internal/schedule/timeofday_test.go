package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeOfDay_Valid(t *testing.T) {
	cases := []struct {
		input  string
		hour   int
		minute int
	}{
		{"00:00", 0, 0},
		{"09:05", 9, 5},
		{"12:00", 12, 0},
		{"23:59", 23, 59},
	}
	for _, c := range cases {
		tod, err := ParseTimeOfDay(c.input)
		if err != nil {
			t.Errorf("ParseTimeOfDay(%q) 不应失败: %v", c.input, err)
			continue
		}
		if tod.Hour != c.hour || tod.Minute != c.minute {
			t.Errorf("ParseTimeOfDay(%q) 期望 %d:%d, 实际 %d:%d", c.input, c.hour, c.minute, tod.Hour, tod.Minute)
		}
	}
}

func TestParseTimeOfDay_Malformed(t *testing.T) {
	// 越界输入也必须显式失败，不允许静默进入格式化
	inputs := []string{"", "9", "09", "9:5:0", "ab:cd", "24:00", "12:60", "-1:30", "12:-5"}
	for _, input := range inputs {
		if _, err := ParseTimeOfDay(input); !errors.Is(err, ErrMalformedTime) {
			t.Errorf("ParseTimeOfDay(%q) 期望 ErrMalformedTime, 实际 %v", input, err)
		}
	}
}

func TestTimeOfDay_Minutes(t *testing.T) {
	if got := (TimeOfDay{Hour: 0, Minute: 0}).Minutes(); got != 0 {
		t.Errorf("00:00 期望 0 分钟, 实际 %d", got)
	}
	if got := (TimeOfDay{Hour: 9, Minute: 0}).Minutes(); got != 540 {
		t.Errorf("09:00 期望 540 分钟, 实际 %d", got)
	}
	if got := (TimeOfDay{Hour: 23, Minute: 59}).Minutes(); got != 1439 {
		t.Errorf("23:59 期望 1439 分钟, 实际 %d", got)
	}
}

func TestTimeOfDay_Display(t *testing.T) {
	cases := []struct {
		input string
		want  string
	}{
		{"00:00", "12:00 AM"},
		{"00:30", "12:30 AM"},
		{"09:05", "9:05 AM"},
		{"11:59", "11:59 AM"},
		{"12:00", "12:00 PM"},
		{"12:30", "12:30 PM"},
		{"13:00", "1:00 PM"},
		{"23:59", "11:59 PM"},
	}
	for _, c := range cases {
		tod, err := ParseTimeOfDay(c.input)
		if err != nil {
			t.Fatalf("ParseTimeOfDay(%q) 失败: %v", c.input, err)
		}
		if got := tod.Display(); got != c.want {
			t.Errorf("%s 的 12 小时制期望 %q, 实际 %q", c.input, c.want, got)
		}
	}
}

func TestTimeOfDay_String(t *testing.T) {
	tod := TimeOfDay{Hour: 8, Minute: 5}
	if got := tod.String(); got != "08:05" {
		t.Errorf("String 期望 08:05, 实际 %s", got)
	}
}

func TestClockMinutes(t *testing.T) {
	now := time.Date(2025, 3, 3, 9, 30, 45, 0, time.UTC)
	if got := ClockMinutes(now); got != 570 {
		t.Errorf("09:30 期望 570, 实际 %d（秒数不应参与计算）", got)
	}
}
