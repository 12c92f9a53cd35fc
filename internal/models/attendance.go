package models

import "time"

type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceLate    AttendanceStatus = "late"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceExcused AttendanceStatus = "excused"
)

// AttendanceRecord is one student's check-in result for one session day.
type AttendanceRecord struct {
	ID        uint             `json:"id" gorm:"primaryKey"`
	TenantID  string           `json:"tenant_id" gorm:"not null;size:255;index"`
	StudentID string           `json:"student_id" gorm:"not null;size:255;index:idx_attendance_student_date"`
	Date      time.Time        `json:"date" gorm:"type:date;not null;index:idx_attendance_student_date"`
	Status    AttendanceStatus `json:"status" gorm:"not null;size:20"`
	Note      *string          `json:"note" gorm:"type:text"`
	CreatedAt time.Time        `json:"created_at"`
}

func (AttendanceRecord) TableName() string {
	return "attendance_records"
}
