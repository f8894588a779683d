package remind

import (
	"fmt"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"

	"github.com/harrison/reminder-lint/internal/models"
)

// timeOfDayDirectives decide whether a format carries a time of day.
var timeOfDayDirectives = []string{"%H", "%M", "%S"}

// formatReferenceTime is rendered with a candidate format and parsed back by CheckDateFormat.
var formatReferenceTime = time.Date(2024, time.March, 15, 8, 30, 45, 0, time.UTC)

// DateParseError reports a non-empty date substring that does not conform to the format
type DateParseError struct {
	Raw    string // Substring found in the line
	Format string // strftime format it was parsed against
	Err    error  // Underlying parse error
}

// Error implements the error interface for DateParseError.
func (e *DateParseError) Error() string {
	return fmt.Sprintf("failed to parse datetime %q with format %q: %v", e.Raw, e.Format, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *DateParseError) Unwrap() error {
	return e.Err
}

// HasTimeOfDay reports whether format contains an hour, minute or second directive.
func HasTimeOfDay(format string) bool {
	for _, directive := range timeOfDayDirectives {
		if strings.Contains(format, directive) {
			return true
		}
	}
	return false
}

// CheckDateFormat reports whether dates written in format can be parsed back.
// Literal text that reads as a Go layout element (Jan, Mon, MST, PM, pm or any digit)
// and directives without a parsing counterpart are rejected.
func CheckDateFormat(format string) error {
	if _, err := strftime.Parse(format, strftime.Format(format, formatReferenceTime)); err != nil {
		return err
	}
	return nil
}

// ParseDatetime converts raw into epoch seconds (UTC) according to format.
//
// An empty raw is not an error: it yields models.NoDate. Formats without a time of day
// parse as a date at 00:00:00 UTC. A non-empty raw that does not conform returns a
// *DateParseError and models.NoDate.
func ParseDatetime(raw, format string) (int64, error) {
	if raw == "" {
		return models.NoDate, nil
	}

	parsed, err := strftime.Parse(format, raw)
	if err != nil {
		return models.NoDate, &DateParseError{Raw: raw, Format: format, Err: err}
	}

	parsed = parsed.UTC()
	if !HasTimeOfDay(format) {
		parsed = time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	}
	return parsed.Unix(), nil
}
