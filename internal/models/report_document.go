package models

import (
	"encoding/json"
	"errors"
	"fmt"

	"gorm.io/datatypes"
)

// ReportDocumentVersion is bumped whenever the ReportData shape changes, so
// historical rows keep decoding through their own version branch.
const ReportDocumentVersion = 1

var ErrUnsupportedDocumentVersion = errors.New("unsupported report document version")

// ReportDocument is the stored form of a report, distinct from ReportData.
type ReportDocument struct {
	Version    int             `json:"version"`
	ReportType ReportType      `json:"report_type"`
	Data       json.RawMessage `json:"data"`
}

func EncodeReportDocument(reportType ReportType, data *ReportData) (datatypes.JSON, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report data: %w", err)
	}

	doc, err := json.Marshal(ReportDocument{
		Version:    ReportDocumentVersion,
		ReportType: reportType,
		Data:       payload,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal report document: %w", err)
	}
	return datatypes.JSON(doc), nil
}

func DecodeReportDocument(content datatypes.JSON) (*ReportDocument, *ReportData, error) {
	var doc ReportDocument
	if err := json.Unmarshal(content, &doc); err != nil {
		return nil, nil, fmt.Errorf("failed to unmarshal report document: %w", err)
	}

	switch doc.Version {
	case 1:
		var data ReportData
		if err := json.Unmarshal(doc.Data, &data); err != nil {
			return nil, nil, fmt.Errorf("failed to unmarshal report data: %w", err)
		}
		return &doc, &data, nil
	default:
		return nil, nil, fmt.Errorf("%w: %d", ErrUnsupportedDocumentVersion, doc.Version)
	}
}
