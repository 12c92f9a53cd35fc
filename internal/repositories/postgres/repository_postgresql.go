package postgres

import (
	"github.com/SAP-F-2025/report-service/internal/repositories"
	"gorm.io/gorm"
)

type repositoryPostgreSQL struct {
	student    repositories.StudentRepository
	attendance repositories.AttendanceRepository
	todo       repositories.TodoRepository
	examScore  repositories.ExamScoreRepository
	report     repositories.ReportRepository
}

func NewRepository(db *gorm.DB) repositories.Repository {
	return &repositoryPostgreSQL{
		student:    NewStudentPostgreSQL(db),
		attendance: NewAttendancePostgreSQL(db),
		todo:       NewTodoPostgreSQL(db),
		examScore:  NewExamScorePostgreSQL(db),
		report:     NewReportPostgreSQL(db),
	}
}

func (r *repositoryPostgreSQL) Student() repositories.StudentRepository       { return r.student }
func (r *repositoryPostgreSQL) Attendance() repositories.AttendanceRepository { return r.attendance }
func (r *repositoryPostgreSQL) Todo() repositories.TodoRepository             { return r.todo }
func (r *repositoryPostgreSQL) ExamScore() repositories.ExamScoreRepository   { return r.examScore }
func (r *repositoryPostgreSQL) Report() repositories.ReportRepository         { return r.report }
