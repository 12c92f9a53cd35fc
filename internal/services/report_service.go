package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"

	"github.com/SAP-F-2025/report-service/internal/cache"
	"github.com/SAP-F-2025/report-service/internal/events"
	"github.com/SAP-F-2025/report-service/internal/models"
	"github.com/SAP-F-2025/report-service/internal/repositories"
	"github.com/SAP-F-2025/report-service/internal/validator"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
	defaultCacheTTL  = 10 * time.Minute
)

type ReportService interface {
	// GenerateMonthlyReport computes the report for one calendar month against
	// the previous calendar month. Nothing is persisted.
	GenerateMonthlyReport(ctx context.Context, studentID string, year, month int) (*models.ReportData, error)
	// GenerateReportForRange computes a weekly or custom report against the
	// equal-length range just before start.
	GenerateReportForRange(ctx context.Context, studentID string, start, end time.Time) (*models.ReportData, error)
	SaveReport(ctx context.Context, data *models.ReportData, reportType models.ReportType) (string, error)
	GetReport(ctx context.Context, reportID string) (*SavedReport, error)
	ListStudentReports(ctx context.Context, studentID string, filters repositories.ReportFilters) (*ReportListResponse, error)
	ExportReportExcel(ctx context.Context, reportID string) ([]byte, error)
	GetAttendanceStats(ctx context.Context, studentID string, year, month int) (*repositories.AttendanceStats, error)
}

type reportService struct {
	repo      repositories.Repository
	cache     cache.CacheService
	publisher events.EventPublisher
	logger    *slog.Logger
	opLogger  *ServiceLogger
	validator *validator.Validator
	cacheTTL  time.Duration
}

// NewReportService wires the report service. cacheSvc and publisher may be nil,
// which disables caching and event publishing respectively.
func NewReportService(repo repositories.Repository, cacheSvc cache.CacheService, publisher events.EventPublisher,
	logger *slog.Logger, validator *validator.Validator, cacheTTL time.Duration) ReportService {
	if cacheTTL <= 0 {
		cacheTTL = defaultCacheTTL
	}
	return &reportService{
		repo:      repo,
		cache:     cacheSvc,
		publisher: publisher,
		logger:    logger,
		opLogger:  NewServiceLogger(logger, LogConfig{Service: "report-service", Component: "report"}),
		validator: validator,
		cacheTTL:  cacheTTL,
	}
}

// ===== GENERATION =====

func (s *reportService) GenerateMonthlyReport(ctx context.Context, studentID string, year, month int) (data *models.ReportData, err error) {
	op := s.opLogger.WithOperation(ctx, "generate_monthly_report", studentID)
	defer func() { op.LogResult("", err) }()

	current, err := models.MonthPeriod(year, month)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, studentID, current, current.PreviousMonth())
}

func (s *reportService) GenerateReportForRange(ctx context.Context, studentID string, start, end time.Time) (data *models.ReportData, err error) {
	op := s.opLogger.WithOperation(ctx, "generate_range_report", studentID)
	defer func() { op.LogResult("", err) }()

	current, err := models.RangePeriod(start, end)
	if err != nil {
		return nil, err
	}
	return s.generate(ctx, studentID, current, current.PreviousRange())
}

func (s *reportService) generate(ctx context.Context, studentID string, current, previous models.Period) (*models.ReportData, error) {
	student, err := s.repo.Student().GetByID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, studentID)
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	var (
		attendance     []models.AttendanceRecord
		todos          []models.Todo
		currentScores  []repositories.ScoreRow
		previousScores []repositories.PreviousScoreRow
	)

	// The four reads are independent; the aggregation below needs all of them.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rows, err := s.repo.Attendance().GetByStudentInRange(gctx, studentID, current.Start, current.End)
		if err != nil {
			return fmt.Errorf("failed to get attendance: %w", err)
		}
		attendance = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.Todo().GetByStudentDueInRange(gctx, studentID, current.Start, current.End)
		if err != nil {
			return fmt.Errorf("failed to get todos: %w", err)
		}
		todos = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.ExamScore().GetCurrentScores(gctx, studentID, current.Start, current.End)
		if err != nil {
			return fmt.Errorf("failed to get current scores: %w", err)
		}
		currentScores = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.repo.ExamScore().GetPreviousScores(gctx, studentID, previous.Start, previous.End)
		if err != nil {
			return fmt.Errorf("failed to get previous scores: %w", err)
		}
		previousScores = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	attendanceSummary := SummarizeAttendance(attendance)
	scores := AggregateCategoryScores(currentScores, previousScores)

	s.opLogger.LogDebug(ctx, "report aggregated",
		"student_id", studentID,
		"period_start", current.StartDate(),
		"attendance_rows", len(attendance),
		"score_rows", len(currentScores),
		"categories", len(scores))

	return &models.ReportData{
		Student: models.ReportStudent{
			ID:          student.ID,
			Name:        student.Name,
			Grade:       student.Grade,
			StudentCode: student.StudentCode,
		},
		Period: models.ReportPeriod{
			Start: current.StartDate(),
			End:   current.EndDate(),
		},
		Attendance:          attendanceSummary,
		Homework:            SummarizeHomework(todos),
		Scores:              scores,
		InstructorComment:   SynthesizeComment(attendanceSummary.Rate, scores),
		GradesChartData:     ProjectGradesChart(currentScores),
		AttendanceChartData: ProjectAttendanceChart(attendance),
	}, nil
}

// ===== PERSISTENCE =====

// SaveReport stores the report as a new row. Saving the same student and
// period twice creates two rows.
func (s *reportService) SaveReport(ctx context.Context, data *models.ReportData, reportType models.ReportType) (id string, err error) {
	var studentID string
	if data != nil {
		studentID = data.Student.ID
	}
	op := s.opLogger.WithOperation(ctx, "save_report", studentID)
	defer func() { op.LogResult(id, err) }()

	if data == nil {
		return "", fmt.Errorf("%w: report data is required", ErrValidationFailed)
	}
	if !reportType.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrInvalidReportType, reportType)
	}
	if err := s.validator.Validate(data); err != nil {
		return "", err
	}

	periodStart, err := time.Parse(models.DateLayout, data.Period.Start)
	if err != nil {
		return "", fmt.Errorf("%w: period start: %v", ErrValidationFailed, err)
	}
	periodEnd, err := time.Parse(models.DateLayout, data.Period.End)
	if err != nil {
		return "", fmt.Errorf("%w: period end: %v", ErrValidationFailed, err)
	}
	if err := checkReportPeriod(reportType, models.Period{Start: periodStart, End: periodEnd}); err != nil {
		return "", err
	}

	// The payload is caller supplied, so the tenant is resolved again here.
	tenantID, err := s.repo.Student().GetTenantID(ctx, studentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", fmt.Errorf("%w: %s", ErrStudentNotFound, studentID)
		}
		return "", fmt.Errorf("failed to resolve tenant: %w", err)
	}
	if tenantID == "" {
		return "", fmt.Errorf("%w: %s", ErrTenantNotFound, studentID)
	}

	content, err := models.EncodeReportDocument(reportType, data)
	if err != nil {
		return "", err
	}

	report := &models.StudentReport{
		TenantID:    tenantID,
		StudentID:   studentID,
		ReportType:  reportType,
		PeriodStart: periodStart,
		PeriodEnd:   periodEnd,
		Content:     content,
	}
	if err := s.repo.Report().Create(ctx, report); err != nil {
		return "", fmt.Errorf("failed to create report: %w", err)
	}

	s.invalidateStudentLists(ctx, studentID)
	s.publishReportSaved(ctx, report)

	return report.ID, nil
}

// GetReport serves the stored document from cache. sent_at is written by the
// notification flow, so it is always read from the database.
func (s *reportService) GetReport(ctx context.Context, reportID string) (*SavedReport, error) {
	key := reportCacheKey(reportID)
	var cached SavedReport
	if s.readCache(ctx, key, &cached) {
		sentAt, err := s.repo.Report().GetSentAt(ctx, []string{reportID})
		if err != nil {
			return nil, fmt.Errorf("failed to get report sent_at: %w", err)
		}
		current, ok := sentAt[reportID]
		if !ok {
			s.evictCache(ctx, key)
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, reportID)
		}
		cached.SentAt = current
		return &cached, nil
	}

	report, err := s.repo.Report().GetByID(ctx, reportID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrReportNotFound, reportID)
		}
		return nil, fmt.Errorf("failed to get report: %w", err)
	}

	saved, err := toSavedReport(report)
	if err != nil {
		return nil, err
	}

	s.writeCache(ctx, key, saved)
	return saved, nil
}

func (s *reportService) ListStudentReports(ctx context.Context, studentID string, filters repositories.ReportFilters) (*ReportListResponse, error) {
	if filters.Limit <= 0 {
		filters.Limit = defaultListLimit
	}
	if filters.Limit > maxListLimit {
		filters.Limit = maxListLimit
	}
	if filters.Offset < 0 {
		filters.Offset = 0
	}
	if filters.ReportType != nil && !filters.ReportType.IsValid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidReportType, *filters.ReportType)
	}

	key := reportListCacheKey(studentID, filters)
	var cached ReportListResponse
	if s.readCache(ctx, key, &cached) {
		if err := s.refreshSentAt(ctx, cached.Reports); err != nil {
			return nil, err
		}
		return &cached, nil
	}

	reports, total, err := s.repo.Report().ListByStudent(ctx, studentID, filters)
	if err != nil {
		return nil, fmt.Errorf("failed to list reports: %w", err)
	}

	response := &ReportListResponse{
		Reports: make([]ReportSummary, 0, len(reports)),
		Total:   total,
		Limit:   filters.Limit,
		Offset:  filters.Offset,
	}
	for _, r := range reports {
		response.Reports = append(response.Reports, ReportSummary{
			ID:          r.ID,
			ReportType:  r.ReportType,
			PeriodStart: r.PeriodStart.Format(models.DateLayout),
			PeriodEnd:   r.PeriodEnd.Format(models.DateLayout),
			GeneratedAt: r.GeneratedAt,
			SentAt:      r.SentAt,
		})
	}

	s.writeCache(ctx, key, response)
	return response, nil
}

func (s *reportService) ExportReportExcel(ctx context.Context, reportID string) ([]byte, error) {
	saved, err := s.GetReport(ctx, reportID)
	if err != nil {
		return nil, err
	}
	return renderReportWorkbook(saved)
}

// ===== STATISTICS =====

// GetAttendanceStats counts late arrivals as attended, unlike the report rate.
func (s *reportService) GetAttendanceStats(ctx context.Context, studentID string, year, month int) (*repositories.AttendanceStats, error) {
	period, err := models.MonthPeriod(year, month)
	if err != nil {
		return nil, err
	}

	if _, err := s.repo.Student().GetByID(ctx, studentID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: %s", ErrStudentNotFound, studentID)
		}
		return nil, fmt.Errorf("failed to get student: %w", err)
	}

	stats, err := s.repo.Attendance().GetStats(ctx, studentID, period.Start, period.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get attendance stats: %w", err)
	}
	return stats, nil
}

// ===== HELPERS =====

// checkReportPeriod rejects a saved period its report type cannot describe.
// A monthly report covers one whole calendar month; a weekly report is bounded
// like a generated range.
func checkReportPeriod(reportType models.ReportType, period models.Period) error {
	switch reportType {
	case models.ReportMonthly:
		month, _ := models.MonthPeriod(period.Start.Year(), int(period.Start.Month()))
		if !period.Start.Equal(month.Start) || !period.End.Equal(month.End) {
			return NewBusinessRuleError("monthly_report_period",
				"a monthly report must cover exactly one calendar month",
				map[string]interface{}{
					"period_start":   period.StartDate(),
					"period_end":     period.EndDate(),
					"expected_start": month.StartDate(),
					"expected_end":   month.EndDate(),
				})
		}
	case models.ReportWeekly:
		if days := period.Days(); days > models.MaxRangeDays {
			return NewBusinessRuleError("weekly_report_period",
				fmt.Sprintf("a weekly report may span at most %d days", models.MaxRangeDays),
				map[string]interface{}{
					"period_start": period.StartDate(),
					"period_end":   period.EndDate(),
					"days":         days,
				})
		}
	}
	return nil
}

func toSavedReport(report *models.StudentReport) (*SavedReport, error) {
	doc, data, err := models.DecodeReportDocument(report.Content)
	if err != nil {
		return nil, fmt.Errorf("failed to decode report %s: %w", report.ID, err)
	}

	return &SavedReport{
		ID:              report.ID,
		TenantID:        report.TenantID,
		StudentID:       report.StudentID,
		ReportType:      report.ReportType,
		PeriodStart:     report.PeriodStart.Format(models.DateLayout),
		PeriodEnd:       report.PeriodEnd.Format(models.DateLayout),
		GeneratedAt:     report.GeneratedAt,
		SentAt:          report.SentAt,
		DocumentVersion: doc.Version,
		Data:            data,
	}, nil
}

func (s *reportService) publishReportSaved(ctx context.Context, report *models.StudentReport) {
	if s.publisher == nil {
		return
	}

	event := events.NewReportSavedEvent(events.ReportSavedEvent{
		ReportID:    report.ID,
		TenantID:    report.TenantID,
		StudentID:   report.StudentID,
		ReportType:  string(report.ReportType),
		PeriodStart: report.PeriodStart.Format(models.DateLayout),
		PeriodEnd:   report.PeriodEnd.Format(models.DateLayout),
	})
	if err := s.publisher.PublishReportEvent(ctx, event); err != nil {
		// The row is committed; the notification flow can still find it by sent_at.
		s.logger.Error("Failed to publish report saved event",
			"report_id", report.ID,
			"error", err)
	}
}

func reportCacheKey(reportID string) string {
	return "report:" + reportID
}

func studentListCachePattern(studentID string) string {
	return fmt.Sprintf("reports:student:%s:*", studentID)
}

func reportListCacheKey(studentID string, f repositories.ReportFilters) string {
	reportType := "all"
	if f.ReportType != nil {
		reportType = string(*f.ReportType)
	}
	return fmt.Sprintf("reports:student:%s:%s:%s:%s:%d:%d:%s",
		studentID, reportType, formatOptionalDate(f.DateFrom), formatOptionalDate(f.DateTo),
		f.Limit, f.Offset, f.SortOrder)
}

func formatOptionalDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format(models.DateLayout)
}

// readCache reports whether dest was filled from the cache. Unreadable entries are evicted.
func (s *reportService) readCache(ctx context.Context, key string, dest interface{}) bool {
	if s.cache == nil {
		return false
	}
	err := s.cache.Get(ctx, key, dest)
	if err == nil {
		return true
	}
	if !errors.Is(err, cache.ErrCacheMiss) {
		s.logger.Warn("Failed to read report cache", "key", key, "error", err)
		s.evictCache(ctx, key)
	}
	return false
}

func (s *reportService) evictCache(ctx context.Context, key string) {
	if err := s.cache.Delete(ctx, key); err != nil {
		s.logger.Warn("Failed to evict report cache entry", "key", key, "error", err)
	}
}

// refreshSentAt overwrites cached sent_at values with the stored ones.
func (s *reportService) refreshSentAt(ctx context.Context, summaries []ReportSummary) error {
	if len(summaries) == 0 {
		return nil
	}
	ids := make([]string, 0, len(summaries))
	for _, r := range summaries {
		ids = append(ids, r.ID)
	}
	sentAt, err := s.repo.Report().GetSentAt(ctx, ids)
	if err != nil {
		return fmt.Errorf("failed to get report sent_at: %w", err)
	}
	for i := range summaries {
		if current, ok := sentAt[summaries[i].ID]; ok {
			summaries[i].SentAt = current
		}
	}
	return nil
}

func (s *reportService) writeCache(ctx context.Context, key string, value interface{}) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Set(ctx, key, value, s.cacheTTL); err != nil {
		s.logger.Warn("Failed to write report cache", "key", key, "error", err)
	}
}

func (s *reportService) invalidateStudentLists(ctx context.Context, studentID string) {
	if s.cache == nil {
		return
	}
	if err := s.cache.DeletePattern(ctx, studentListCachePattern(studentID)); err != nil {
		s.logger.Warn("Failed to invalidate report list cache", "student_id", studentID, "error", err)
	}
}
