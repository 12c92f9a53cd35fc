package events

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockEventPublisher_PublishReportEvent(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	publisher := NewMockEventPublisher(logger)

	event := NewReportSavedEvent(ReportSavedEvent{
		ReportID:    "rep-1",
		TenantID:    "tenant-a",
		StudentID:   "stu-1",
		ReportType:  "monthly",
		PeriodStart: "2025-10-01",
		PeriodEnd:   "2025-10-31",
	})

	require.NoError(t, publisher.PublishReportEvent(context.Background(), event))

	published := publisher.GetPublishedEvents()
	require.Len(t, published, 1)
	assert.Equal(t, EventReportSaved, published[0].Type)
	assert.Equal(t, "report-service", published[0].Source)
	assert.Equal(t, "1.0", published[0].Version)
	assert.NotEmpty(t, published[0].ID)
	assert.False(t, published[0].Timestamp.IsZero())

	payload, ok := published[0].Data.(ReportSavedEvent)
	require.True(t, ok)
	assert.Equal(t, "rep-1", payload.ReportID)

	publisher.ClearEvents()
	assert.Empty(t, publisher.GetPublishedEvents())
}

func TestNewMessage_Metadata(t *testing.T) {
	event := NewReportSavedEvent(ReportSavedEvent{ReportID: "rep-2", TenantID: "tenant-b"})

	msg, err := newMessage(context.Background(), event)
	require.NoError(t, err)
	assert.Equal(t, event.ID, msg.UUID)
	assert.Equal(t, "report.saved", msg.Metadata.Get("event_type"))
	assert.Equal(t, "report-service", msg.Metadata.Get("source"))

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(msg.Payload, &decoded))
	data := decoded["data"].(map[string]interface{})
	assert.Equal(t, "rep-2", data["report_id"])
}

func TestGenerateEventID_Unique(t *testing.T) {
	assert.NotEqual(t, GenerateEventID(), GenerateEventID())
}
