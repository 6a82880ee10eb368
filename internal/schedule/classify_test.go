package schedule

import "testing"

func TestClassify_BoundaryLaw(t *testing.T) {
	course := makeCourse(t, "c1", "CS101", "09:00", "10:30", Mon)
	start := course.Start.Minutes() // 540
	end := course.End.Minutes()     // 630

	cases := []struct {
		name string
		now  int
		want Status
	}{
		{"开始前一分钟", start - 1, StatusUpcoming},
		{"恰在开始时刻", start, StatusCurrent},
		{"恰在结束时刻", end, StatusCurrent},
		{"结束后一分钟", end + 1, StatusCompleted},
	}
	for _, c := range cases {
		if got := Classify(course, c.now); got != c.want {
			t.Errorf("%s(now=%d): 期望 %s, 实际 %s", c.name, c.now, c.want, got)
		}
	}
}

func TestClassify_ScenarioMinutes(t *testing.T) {
	// 09:00–10:30 的课：539 → upcoming, 540 → current, 631 → completed
	course := makeCourse(t, "c1", "CS101", "09:00", "10:30", Mon)

	if got := Classify(course, 539); got != StatusUpcoming {
		t.Errorf("now=539 期望 upcoming, 实际 %s", got)
	}
	if got := Classify(course, 540); got != StatusCurrent {
		t.Errorf("now=540 期望 current, 实际 %s", got)
	}
	if got := Classify(course, 631); got != StatusCompleted {
		t.Errorf("now=631 期望 completed, 实际 %s", got)
	}
}

func TestClassify_BackToBackCourses(t *testing.T) {
	// 无缝衔接的两门课在交接分钟同时为 current（两端闭区间的既定行为）
	first := makeCourse(t, "c1", "第一节", "08:00", "09:00", Mon)
	second := makeCourse(t, "c2", "第二节", "09:00", "10:00", Mon)

	handover := 540 // 09:00
	if got := Classify(first, handover); got != StatusCurrent {
		t.Errorf("交接分钟第一节期望 current, 实际 %s", got)
	}
	if got := Classify(second, handover); got != StatusCurrent {
		t.Errorf("交接分钟第二节期望 current, 实际 %s", got)
	}
}
