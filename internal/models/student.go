package models

import (
	"time"

	"gorm.io/gorm"
)

type Student struct {
	ID          string `json:"id" gorm:"primaryKey;size:255"`
	TenantID    string `json:"tenant_id" gorm:"not null;size:255;index"`
	StudentCode string `json:"student_code" gorm:"not null;size:50;index"`
	Name        string `json:"name" gorm:"not null;size:100"`
	Grade       string `json:"grade" gorm:"size:20"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"-" gorm:"index"`
}

func (Student) TableName() string {
	return "students"
}
