package services

import (
	"context"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/SAP-F-2025/report-service/internal/cache"
	"github.com/SAP-F-2025/report-service/internal/models"
	"github.com/SAP-F-2025/report-service/internal/repositories"
)

// MockRepository hands out the per-table mocks
type MockRepository struct {
	student    *MockStudentRepository
	attendance *MockAttendanceRepository
	todo       *MockTodoRepository
	examScore  *MockExamScoreRepository
	report     *MockReportRepository
}

func NewMockRepository() *MockRepository {
	return &MockRepository{
		student:    &MockStudentRepository{},
		attendance: &MockAttendanceRepository{},
		todo:       &MockTodoRepository{},
		examScore:  &MockExamScoreRepository{},
		report:     &MockReportRepository{},
	}
}

func (m *MockRepository) Student() repositories.StudentRepository       { return m.student }
func (m *MockRepository) Attendance() repositories.AttendanceRepository { return m.attendance }
func (m *MockRepository) Todo() repositories.TodoRepository             { return m.todo }
func (m *MockRepository) ExamScore() repositories.ExamScoreRepository   { return m.examScore }
func (m *MockRepository) Report() repositories.ReportRepository         { return m.report }

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) GetByID(ctx context.Context, id string) (*models.Student, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Student), args.Error(1)
}

func (m *MockStudentRepository) GetTenantID(ctx context.Context, id string) (string, error) {
	args := m.Called(ctx, id)
	return args.String(0), args.Error(1)
}

type MockAttendanceRepository struct {
	mock.Mock
}

func (m *MockAttendanceRepository) GetByStudentInRange(ctx context.Context, studentID string, start, end time.Time) ([]models.AttendanceRecord, error) {
	args := m.Called(ctx, studentID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.AttendanceRecord), args.Error(1)
}

func (m *MockAttendanceRepository) GetStats(ctx context.Context, studentID string, start, end time.Time) (*repositories.AttendanceStats, error) {
	args := m.Called(ctx, studentID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repositories.AttendanceStats), args.Error(1)
}

type MockTodoRepository struct {
	mock.Mock
}

func (m *MockTodoRepository) GetByStudentDueInRange(ctx context.Context, studentID string, start, end time.Time) ([]models.Todo, error) {
	args := m.Called(ctx, studentID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Todo), args.Error(1)
}

type MockExamScoreRepository struct {
	mock.Mock
}

func (m *MockExamScoreRepository) GetCurrentScores(ctx context.Context, studentID string, start, end time.Time) ([]repositories.ScoreRow, error) {
	args := m.Called(ctx, studentID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.ScoreRow), args.Error(1)
}

func (m *MockExamScoreRepository) GetPreviousScores(ctx context.Context, studentID string, start, end time.Time) ([]repositories.PreviousScoreRow, error) {
	args := m.Called(ctx, studentID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]repositories.PreviousScoreRow), args.Error(1)
}

type MockReportRepository struct {
	mock.Mock
}

func (m *MockReportRepository) Create(ctx context.Context, report *models.StudentReport) error {
	args := m.Called(ctx, report)
	return args.Error(0)
}

func (m *MockReportRepository) GetByID(ctx context.Context, id string) (*models.StudentReport, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.StudentReport), args.Error(1)
}

func (m *MockReportRepository) ListByStudent(ctx context.Context, studentID string, filters repositories.ReportFilters) ([]*models.StudentReport, int64, error) {
	args := m.Called(ctx, studentID, filters)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]*models.StudentReport), args.Get(1).(int64), args.Error(2)
}

func (m *MockReportRepository) GetSentAt(ctx context.Context, ids []string) (map[string]*time.Time, error) {
	args := m.Called(ctx, ids)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]*time.Time), args.Error(1)
}

// memoryCache is an in-process CacheService keeping JSON payloads like Redis does
type memoryCache struct {
	mu      sync.Mutex
	entries map[string][]byte
	deleted []string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string][]byte)}
}

func (c *memoryCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	payload, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = payload
	return nil
}

func (c *memoryCache) Get(ctx context.Context, key string, dest interface{}) error {
	c.mu.Lock()
	payload, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return cache.ErrCacheMiss
	}
	return json.Unmarshal(payload, dest)
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	c.deleted = append(c.deleted, key)
	return nil
}

// DeletePattern supports the trailing-star patterns the service uses
func (c *memoryCache) DeletePattern(ctx context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	c.mu.Lock()
	defer c.mu.Unlock()
	for key := range c.entries {
		if strings.HasPrefix(key, prefix) {
			delete(c.entries, key)
			c.deleted = append(c.deleted, key)
		}
	}
	return nil
}

func (c *memoryCache) has(key string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.entries[key]
	return ok
}
