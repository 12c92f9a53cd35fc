package models

// ReportData is the in-process report computed for one student and period.
// Field names and nesting are consumed by the chart and print views as-is.
type ReportData struct {
	Student             ReportStudent          `json:"student"`
	Period              ReportPeriod           `json:"period"`
	Attendance          AttendanceSummary      `json:"attendance"`
	Homework            HomeworkSummary        `json:"homework"`
	Scores              []CategoryScore        `json:"scores"`
	InstructorComment   string                 `json:"instructorComment"`
	GradesChartData     []GradesChartPoint     `json:"gradesChartData"`
	AttendanceChartData []AttendanceChartPoint `json:"attendanceChartData"`
}

type ReportStudent struct {
	ID          string `json:"id" validate:"required"`
	Name        string `json:"name"`
	Grade       string `json:"grade"`
	StudentCode string `json:"student_code"`
}

type ReportPeriod struct {
	Start string `json:"start" validate:"required,datetime=2006-01-02"`
	End   string `json:"end" validate:"required,datetime=2006-01-02"`
}

type AttendanceSummary struct {
	Total   int     `json:"total"`
	Present int     `json:"present"`
	Late    int     `json:"late"`
	Absent  int     `json:"absent"`
	Rate    float64 `json:"rate"` // 0-100, present only
}

type HomeworkSummary struct {
	Total     int     `json:"total"`
	Completed int     `json:"completed"`
	Rate      float64 `json:"rate"` // 0-100
}

// CategoryScore compares one exam category against the previous period.
// Previous and Change are nil when the category had no scored tests then.
type CategoryScore struct {
	Category string      `json:"category"`
	Current  float64     `json:"current"`
	Previous *float64    `json:"previous"`
	Change   *float64    `json:"change"`
	Tests    []TestEntry `json:"tests"`
}

type TestEntry struct {
	Name       string  `json:"name"`
	Date       string  `json:"date"`
	Percentage float64 `json:"percentage"`
	Feedback   *string `json:"feedback"`
}

type GradesChartPoint struct {
	ExamName     string   `json:"examName"`
	Score        float64  `json:"score"`
	ClassAverage *float64 `json:"classAverage,omitempty"`
	Date         string   `json:"date,omitempty"`
}

type AttendanceChartPoint struct {
	Date   string  `json:"date"`
	Status string  `json:"status"`
	Note   *string `json:"note,omitempty"`
}
