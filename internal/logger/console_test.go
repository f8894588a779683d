package logger

import (
	"bytes"
	"fmt"
	"os"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewConsoleLogger verifies level normalization and that buffers never get color.
func TestNewConsoleLogger(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{input: "debug", want: "debug"},
		{input: "  INFO ", want: "info"},
		{input: "", want: "warn"},
		{input: "verbose", want: "warn"},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("level %q", tt.input), func(t *testing.T) {
			logger := NewConsoleLogger(&bytes.Buffer{}, tt.input)
			assert.Equal(t, tt.want, logger.logLevel)
			assert.False(t, logger.colorOutput)
		})
	}
}

func TestLogLevelFiltering(t *testing.T) {
	emit := map[string]func(l *ConsoleLogger, m string){
		"trace": (*ConsoleLogger).LogTrace,
		"debug": (*ConsoleLogger).LogDebug,
		"info":  (*ConsoleLogger).LogInfo,
		"warn":  (*ConsoleLogger).LogWarn,
		"error": (*ConsoleLogger).LogError,
	}

	for ci, configured := range Levels {
		for mi, message := range Levels {
			name := fmt.Sprintf("%s logger, %s message", configured, message)
			t.Run(name, func(t *testing.T) {
				buf := &bytes.Buffer{}
				logger := NewConsoleLogger(buf, configured)
				emit[message](logger, message+" msg")

				if mi >= ci {
					assert.Contains(t, buf.String(), message+" msg")
					assert.Contains(t, buf.String(), "["+strings.ToUpper(message)+"]")
				} else {
					assert.Empty(t, buf.String())
				}
			})
		}
	}
}

func TestLogFormat(t *testing.T) {
	buf := &bytes.Buffer{}
	NewConsoleLogger(buf, "warn").LogWarn(`Failed to parse datetime "2024/13/01" at a.go:3`)

	pattern := regexp.MustCompile(`^\[\d{2}:\d{2}:\d{2}\] \[WARN\] Failed to parse datetime "2024/13/01" at a\.go:3\n$`)
	assert.Regexp(t, pattern, buf.String())
}

func TestNilWriter(t *testing.T) {
	logger := NewConsoleLogger(nil, "trace")
	assert.NotPanics(t, func() {
		logger.LogError("dropped")
		logger.LogSummary(ScanSummary{Directory: "."})
	})
}

func TestLogSummary(t *testing.T) {
	buf := &bytes.Buffer{}
	NewConsoleLogger(buf, "info").LogSummary(ScanSummary{
		Directory: "src",
		Reminders: 4,
		Expired:   1,
		Duration:  1500 * time.Millisecond,
	})
	assert.Contains(t, buf.String(), "[INFO] Scanned src: 4 reminders, 1 expired (1s)")

	buf.Reset()
	NewConsoleLogger(buf, "warn").LogSummary(ScanSummary{Directory: "src"})
	assert.Empty(t, buf.String())
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "0ms", formatDuration(0))
	assert.Equal(t, "250ms", formatDuration(250*time.Millisecond))
	assert.Equal(t, "5s", formatDuration(5*time.Second))
	assert.Equal(t, "2m", formatDuration(2*time.Minute))
	assert.Equal(t, "1m30s", formatDuration(90*time.Second))
}

func TestIsTerminal(t *testing.T) {
	assert.False(t, IsTerminal(nil))
	assert.False(t, IsTerminal(&bytes.Buffer{}))

	f, err := os.CreateTemp(t.TempDir(), "log")
	require.NoError(t, err)
	defer f.Close()
	assert.False(t, IsTerminal(f))
}

func TestConcurrentLogging(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := NewConsoleLogger(buf, "debug")

	const goroutines = 20
	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			logger.LogDebug(fmt.Sprintf("worker %d", i))
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, goroutines)
	for _, line := range lines {
		assert.Contains(t, line, "[DEBUG] worker ")
	}
}

func TestNoOpLogger(t *testing.T) {
	n := NewNoOpLogger()
	assert.NotPanics(t, func() {
		n.LogTrace("x")
		n.LogDebug("x")
		n.LogInfo("x")
		n.LogWarn("x")
		n.LogError("x")
		n.LogSummary(ScanSummary{})
	})
}
