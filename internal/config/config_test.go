package config

import (
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/SAP-F-2025/report-service/internal/events"
)

// chdirTemp runs the test from an empty directory so no stray .env is loaded
func chdirTemp(t *testing.T) {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
}

func TestLoadConfig_Defaults(t *testing.T) {
	chdirTemp(t)
	for _, key := range []string{"PORT", "ENVIRONMENT", "AUTO_MIGRATE", "REPORT_CACHE_TTL", "EVENTS_ENABLED", "KAFKA_BROKERS"} {
		t.Setenv(key, "")
	}

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "development", cfg.Environment)
	assert.False(t, cfg.AutoMigrate)
	assert.False(t, cfg.IsProduction())
	assert.Equal(t, 10*time.Minute, cfg.ReportCacheTTL)
	assert.True(t, cfg.Events.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Events.GetKafkaBrokers())
}

func TestLoadConfig_FromEnvironment(t *testing.T) {
	chdirTemp(t)
	t.Setenv("PORT", "9090")
	t.Setenv("ENVIRONMENT", "production")
	t.Setenv("AUTO_MIGRATE", "true")
	t.Setenv("REPORT_CACHE_TTL", "90s")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("REPORT_TOPIC", "reports")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.True(t, cfg.AutoMigrate)
	assert.Equal(t, 90*time.Second, cfg.ReportCacheTTL)
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Events.GetKafkaBrokers())
	assert.Equal(t, "reports", cfg.Events.ReportTopic)
}

func TestLoadConfig_ReadsDotEnv(t *testing.T) {
	chdirTemp(t)
	t.Setenv("LOG_LEVEL", "")
	// godotenv never overrides a variable that is set, even to ""
	require.NoError(t, os.Unsetenv("LOG_LEVEL"))
	require.NoError(t, os.WriteFile(".env", []byte("LOG_LEVEL=debug\n"), 0o600))

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoadConfig_InvalidCacheTTL(t *testing.T) {
	chdirTemp(t)
	t.Setenv("REPORT_CACHE_TTL", "soon")

	_, err := LoadConfig()

	assert.Error(t, err)
}

func TestCreateEventPublisher_FallsBackToMock(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	for _, cfg := range []EventConfig{
		{Enabled: false, Publisher: "kafka"},
		{Enabled: true, Publisher: "mock"},
		{Enabled: true, Publisher: "rabbitmq"},
	} {
		publisher, err := cfg.CreateEventPublisher(logger)
		require.NoError(t, err)
		assert.IsType(t, &events.MockEventPublisher{}, publisher)
	}
}
