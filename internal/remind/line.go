package remind

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/harrison/reminder-lint/internal/logger"
	"github.com/harrison/reminder-lint/internal/models"
	"github.com/harrison/reminder-lint/internal/pattern"
)

// Logger is the diagnostic side channel used while scanning.
// Implementations must be safe for concurrent use.
type Logger interface {
	LogTrace(message string)
	LogDebug(message string)
	LogWarn(message string)
	LogError(message string)
}

// LineScanner turns single lines into reminders.
// Its compiled regexes are read-only and may be shared across goroutines.
type LineScanner struct {
	matcher      *regexp.Regexp
	dateRegex    *regexp.Regexp
	placeholders *pattern.Placeholders
	dateFormat   string
	log          Logger
}

// NewLineScanner compiles the comment pattern and date format.
// Compile failures are configuration errors and abort before any file is read.
func NewLineScanner(commentPattern, dateFormat string, log Logger) (*LineScanner, error) {
	matcher, err := pattern.CompileMatcher(commentPattern)
	if err != nil {
		return nil, fmt.Errorf("comment_regex: %w", err)
	}
	placeholders, err := pattern.NewPlaceholders(commentPattern)
	if err != nil {
		return nil, fmt.Errorf("comment_regex: %w", err)
	}
	dateRegex, err := pattern.CompileDateRegex(dateFormat)
	if err != nil {
		return nil, fmt.Errorf("date format: %w", err)
	}
	if log == nil {
		log = logger.NewNoOpLogger()
	}

	return &LineScanner{
		matcher:      matcher,
		dateRegex:    dateRegex,
		placeholders: placeholders,
		dateFormat:   dateFormat,
		log:          log,
	}, nil
}

// ScanLine returns the reminder on line, if the line is a reminder line.
// A date that fails to parse is logged and replaced by models.NoDate.
func (s *LineScanner) ScanLine(file string, lineNumber int, line string) (models.Remind, bool) {
	if !s.matcher.MatchString(line) {
		return models.Remind{}, false
	}

	raw := s.dateRegex.FindString(line)
	datetime, err := ParseDatetime(raw, s.dateFormat)
	if err != nil {
		var parseErr *DateParseError
		if errors.As(err, &parseErr) {
			s.log.LogWarn(fmt.Sprintf("Failed to parse datetime %q at %s:%d: %v", parseErr.Raw, file, lineNumber, parseErr.Err))
		}
		datetime = models.NoDate
	}

	meta, ok := s.placeholders.Extract(line)
	if !ok {
		meta = map[string]string{}
	}

	return models.Remind{
		Datetime: datetime,
		Message:  strings.TrimLeftFunc(line, unicode.IsSpace),
		Position: models.Position{File: file, Line: lineNumber},
		Meta:     meta,
	}, true
}
