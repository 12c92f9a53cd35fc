package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
)

func TestReportDocument_EncodeDecode(t *testing.T) {
	prev := 80.0
	change := 8.0
	data := &ReportData{
		Student:    ReportStudent{ID: "stu-1", Name: "김민준", Grade: "중2", StudentCode: "S001"},
		Period:     ReportPeriod{Start: "2025-10-01", End: "2025-10-31"},
		Attendance: AttendanceSummary{Total: 20, Present: 17, Late: 1, Absent: 2, Rate: 85},
		Scores: []CategoryScore{
			{Category: "Vocabulary", Current: 88, Previous: &prev, Change: &change},
		},
		InstructorComment: "comment",
	}

	content, err := EncodeReportDocument(ReportMonthly, data)
	require.NoError(t, err)

	doc, decoded, err := DecodeReportDocument(content)
	require.NoError(t, err)
	assert.Equal(t, ReportDocumentVersion, doc.Version)
	assert.Equal(t, ReportMonthly, doc.ReportType)
	assert.Equal(t, data.Student, decoded.Student)
	assert.Equal(t, data.Attendance, decoded.Attendance)
	require.Len(t, decoded.Scores, 1)
	assert.Equal(t, 80.0, *decoded.Scores[0].Previous)
}

func TestDecodeReportDocument_UnknownVersion(t *testing.T) {
	_, _, err := DecodeReportDocument(datatypes.JSON(`{"version":99,"report_type":"monthly","data":{}}`))
	assert.ErrorIs(t, err, ErrUnsupportedDocumentVersion)
}

func TestReportData_NullDeltasSerialize(t *testing.T) {
	content, err := EncodeReportDocument(ReportWeekly, &ReportData{
		Scores: []CategoryScore{{Category: "Reading", Current: 70}},
	})
	require.NoError(t, err)
	assert.Contains(t, string(content), `"previous":null`)
	assert.Contains(t, string(content), `"change":null`)
}

func TestReportType_IsValid(t *testing.T) {
	assert.True(t, ReportMonthly.IsValid())
	assert.True(t, ReportWeekly.IsValid())
	assert.False(t, ReportType("daily").IsValid())
}
