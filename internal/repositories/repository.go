package repositories

// Repository groups the per-table repositories behind one handle.
type Repository interface {
	Student() StudentRepository
	Attendance() AttendanceRepository
	Todo() TodoRepository
	ExamScore() ExamScoreRepository
	Report() ReportRepository
}
