package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SAP-F-2025/report-service/internal/models"
	"github.com/SAP-F-2025/report-service/internal/repositories"
	"github.com/SAP-F-2025/report-service/internal/services"
	"github.com/SAP-F-2025/report-service/internal/utils"
	"github.com/SAP-F-2025/report-service/internal/validator"
	"github.com/gin-gonic/gin"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Messages for unexpected failures, one per route family.
const (
	msgGenerateFailed = "report generation failed, try again"
	msgSaveFailed     = "report could not be saved, try again"
	msgLoadFailed     = "report could not be loaded, try again"
	msgListFailed     = "reports could not be listed, try again"
	msgExportFailed   = "report export failed, try again"
	msgStatsFailed    = "attendance statistics could not be loaded, try again"
)

type ReportHandler struct {
	BaseHandler
	reportService services.ReportService
	validator     *validator.Validator
}

func NewReportHandler(
	reportService services.ReportService,
	validator *validator.Validator,
	logger utils.Logger,
) *ReportHandler {
	return &ReportHandler{
		BaseHandler:   NewBaseHandler(logger),
		reportService: reportService,
		validator:     validator,
	}
}

// GenerateMonthlyReport computes a report for one calendar month
// @Summary Generate monthly report
// @Tags reports
// @Produce json
// @Param student_id path string true "Student ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} models.ReportData
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /students/{student_id}/reports/monthly [get]
func (h *ReportHandler) GenerateMonthlyReport(c *gin.Context) {
	studentID := ParseStringIDParam(c, "student_id")
	if studentID == "" {
		return
	}

	var req services.MonthlyPeriodRequest
	if !h.bindQuery(c, &req, msgGenerateFailed) {
		return
	}

	h.LogRequest(c, "Generating monthly report", "student_id", studentID, "year", req.Year, "month", req.Month)

	report, err := h.reportService.GenerateMonthlyReport(c.Request.Context(), studentID, req.Year, req.Month)
	if err != nil {
		h.handleServiceError(c, err, msgGenerateFailed)
		return
	}

	c.JSON(http.StatusOK, report)
}

// GenerateRangeReport computes a weekly or custom-range report
// @Summary Generate range report
// @Tags reports
// @Produce json
// @Param student_id path string true "Student ID"
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Success 200 {object} models.ReportData
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /students/{student_id}/reports/range [get]
func (h *ReportHandler) GenerateRangeReport(c *gin.Context) {
	studentID := ParseStringIDParam(c, "student_id")
	if studentID == "" {
		return
	}

	var req services.GenerateRangeReportRequest
	if !h.bindQuery(c, &req, msgGenerateFailed) {
		return
	}

	// Formats were checked by the validator
	start, _ := time.Parse(models.DateLayout, req.Start)
	end, _ := time.Parse(models.DateLayout, req.End)

	h.LogRequest(c, "Generating range report", "student_id", studentID, "start", req.Start, "end", req.End)

	report, err := h.reportService.GenerateReportForRange(c.Request.Context(), studentID, start, end)
	if err != nil {
		h.handleServiceError(c, err, msgGenerateFailed)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ListStudentReports lists the persisted reports of a student
// @Summary List saved reports
// @Tags reports
// @Produce json
// @Param student_id path string true "Student ID"
// @Param report_type query string false "monthly or weekly"
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} services.ReportListResponse
// @Router /students/{student_id}/reports [get]
func (h *ReportHandler) ListStudentReports(c *gin.Context) {
	studentID := ParseStringIDParam(c, "student_id")
	if studentID == "" {
		return
	}

	var req services.ListReportsRequest
	if !h.bindQuery(c, &req, msgListFailed) {
		return
	}

	filters := repositories.ReportFilters{
		Limit:     req.Limit,
		Offset:    req.Offset,
		SortOrder: req.SortOrder,
	}
	if req.ReportType != "" {
		reportType := models.ReportType(req.ReportType)
		filters.ReportType = &reportType
	}
	if req.DateFrom != "" {
		from, _ := time.Parse(models.DateLayout, req.DateFrom)
		filters.DateFrom = &from
	}
	if req.DateTo != "" {
		to, _ := time.Parse(models.DateLayout, req.DateTo)
		filters.DateTo = &to
	}

	reports, err := h.reportService.ListStudentReports(c.Request.Context(), studentID, filters)
	if err != nil {
		h.handleServiceError(c, err, msgListFailed)
		return
	}

	c.JSON(http.StatusOK, reports)
}

// GetAttendanceStats returns monthly attendance counting late arrivals as attended
// @Summary Attendance statistics
// @Tags reports
// @Produce json
// @Param student_id path string true "Student ID"
// @Param year query int true "Year"
// @Param month query int true "Month (1-12)"
// @Success 200 {object} repositories.AttendanceStats
// @Router /students/{student_id}/attendance-stats [get]
func (h *ReportHandler) GetAttendanceStats(c *gin.Context) {
	studentID := ParseStringIDParam(c, "student_id")
	if studentID == "" {
		return
	}

	var req services.MonthlyPeriodRequest
	if !h.bindQuery(c, &req, msgStatsFailed) {
		return
	}

	stats, err := h.reportService.GetAttendanceStats(c.Request.Context(), studentID, req.Year, req.Month)
	if err != nil {
		h.handleServiceError(c, err, msgStatsFailed)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// SaveReport persists a generated report
// @Summary Save report
// @Tags reports
// @Accept json
// @Produce json
// @Param report body services.SaveReportRequest true "Report to save"
// @Success 201 {object} services.SaveReportResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 422 {object} ErrorResponse
// @Router /reports [post]
func (h *ReportHandler) SaveReport(c *gin.Context) {
	var req services.SaveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid request payload",
			Details: err.Error(),
		})
		return
	}

	if err := h.validator.Validate(&req); err != nil {
		h.handleServiceError(c, err, msgSaveFailed)
		return
	}

	h.LogRequest(c, "Saving report", "student_id", req.Data.Student.ID, "report_type", req.ReportType)

	id, err := h.reportService.SaveReport(c.Request.Context(), req.Data, req.ReportType)
	if err != nil {
		h.handleServiceError(c, err, msgSaveFailed)
		return
	}

	c.JSON(http.StatusCreated, services.SaveReportResponse{ID: id})
}

// GetReport returns a persisted report
// @Summary Get saved report
// @Tags reports
// @Produce json
// @Param id path string true "Report ID"
// @Success 200 {object} services.SavedReport
// @Failure 404 {object} ErrorResponse
// @Router /reports/{id} [get]
func (h *ReportHandler) GetReport(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	report, err := h.reportService.GetReport(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err, msgLoadFailed)
		return
	}

	c.JSON(http.StatusOK, report)
}

// ExportReport downloads a persisted report as an Excel workbook
// @Summary Export saved report
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param id path string true "Report ID"
// @Success 200 {file} binary
// @Failure 404 {object} ErrorResponse
// @Router /reports/{id}/export [get]
func (h *ReportHandler) ExportReport(c *gin.Context) {
	id := ParseStringIDParam(c, "id")
	if id == "" {
		return
	}

	content, err := h.reportService.ExportReportExcel(c.Request.Context(), id)
	if err != nil {
		h.handleServiceError(c, err, msgExportFailed)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf(`attachment; filename="report-%s.xlsx"`, id))
	c.Data(http.StatusOK, xlsxContentType, content)
}

// bindQuery binds and validates query parameters, writing a 400 on failure.
// failureMessage is used if validation itself breaks.
func (h *ReportHandler) bindQuery(c *gin.Context, req interface{}, failureMessage string) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid query parameters",
			Details: err.Error(),
		})
		return false
	}
	if err := h.validator.Validate(req); err != nil {
		h.handleServiceError(c, err, failureMessage)
		return false
	}
	return true
}

// handleServiceError maps service errors to responses. Anything unrecognised
// becomes a 500 carrying failureMessage.
func (h *ReportHandler) handleServiceError(c *gin.Context, err error, failureMessage string) {
	var validationErrors services.ValidationErrors
	if errors.As(err, &validationErrors) {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: validationErrors,
		})
		return
	}

	var businessRuleError *services.BusinessRuleError
	if errors.As(err, &businessRuleError) {
		c.JSON(http.StatusUnprocessableEntity, ErrorResponse{
			Message: businessRuleError.Message,
			Details: map[string]interface{}{
				"rule":    businessRuleError.Rule,
				"context": businessRuleError.Context,
			},
		})
		return
	}

	switch {
	case errors.Is(err, services.ErrStudentNotFound), errors.Is(err, services.ErrTenantNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "student not found",
			Code:    "STUDENT_NOT_FOUND",
		})
	case errors.Is(err, services.ErrReportNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{
			Message: "report not found",
			Code:    "REPORT_NOT_FOUND",
		})
	case errors.Is(err, services.ErrInvalidPeriod):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Invalid report period",
			Details: err.Error(),
			Code:    "INVALID_PERIOD",
		})
	case services.IsValidation(err):
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Message: "Validation failed",
			Details: err.Error(),
		})
	default:
		h.RespondWithError(c, http.StatusInternalServerError, failureMessage, err)
	}
}
