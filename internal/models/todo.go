package models

import "time"

// Todo is a homework item assigned to a student. A non-nil CompletedAt marks it done.
type Todo struct {
	ID          uint       `json:"id" gorm:"primaryKey"`
	TenantID    string     `json:"tenant_id" gorm:"not null;size:255;index"`
	StudentID   string     `json:"student_id" gorm:"not null;size:255;index:idx_todo_student_due"`
	Title       string     `json:"title" gorm:"not null;size:200"`
	DueDate     time.Time  `json:"due_date" gorm:"type:date;not null;index:idx_todo_student_due"`
	CompletedAt *time.Time `json:"completed_at"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

func (Todo) TableName() string {
	return "todos"
}
