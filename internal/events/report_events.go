package events

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the kinds of report events this service emits
type EventType string

const (
	EventReportSaved EventType = "report.saved"
)

const (
	eventSource  = "report-service"
	eventVersion = "1.0"
)

// ReportEvent is the envelope for every event published by the report service
type ReportEvent struct {
	ID        string                 `json:"id"`
	Type      EventType              `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Source    string                 `json:"source"`
	Version   string                 `json:"version"`
	Data      interface{}            `json:"data"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
}

// ReportSavedEvent tells the guardian notification flow that a report is ready to send.
type ReportSavedEvent struct {
	ReportID    string `json:"report_id"`
	TenantID    string `json:"tenant_id"`
	StudentID   string `json:"student_id"`
	ReportType  string `json:"report_type"`
	PeriodStart string `json:"period_start"`
	PeriodEnd   string `json:"period_end"`
}

func NewReportSavedEvent(payload ReportSavedEvent) *ReportEvent {
	return &ReportEvent{
		ID:        GenerateEventID(),
		Type:      EventReportSaved,
		Timestamp: time.Now(),
		Source:    eventSource,
		Version:   eventVersion,
		Data:      payload,
		Metadata: map[string]interface{}{
			"tenant_id": payload.TenantID,
		},
	}
}

func GenerateEventID() string {
	return uuid.NewString()
}
