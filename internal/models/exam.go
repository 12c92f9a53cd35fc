package models

import "time"

type ExamCategory struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	TenantID string `json:"tenant_id" gorm:"not null;size:255;index"`
	Code     string `json:"code" gorm:"not null;size:50"`
	Label    string `json:"label" gorm:"not null;size:100"`
}

func (ExamCategory) TableName() string {
	return "exam_categories"
}

type Exam struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	TenantID   string    `json:"tenant_id" gorm:"not null;size:255;index"`
	Name       string    `json:"name" gorm:"not null;size:200"`
	ExamDate   time.Time `json:"exam_date" gorm:"type:date;not null;index"`
	CategoryID uint      `json:"category_id" gorm:"not null;index"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Category ExamCategory `json:"category" gorm:"foreignKey:CategoryID"`
}

func (Exam) TableName() string {
	return "exams"
}

// ExamScore is a student's result on one exam. Percentage stays nil until the exam is scored.
type ExamScore struct {
	ID         uint      `json:"id" gorm:"primaryKey"`
	ExamID     uint      `json:"exam_id" gorm:"not null;index"`
	StudentID  string    `json:"student_id" gorm:"not null;size:255;index"`
	Percentage *float64  `json:"percentage"`
	Feedback   *string   `json:"feedback" gorm:"type:text"`
	CreatedAt  time.Time `json:"created_at"`

	// Relations
	Exam Exam `json:"exam" gorm:"foreignKey:ExamID"`
}

func (ExamScore) TableName() string {
	return "exam_scores"
}
