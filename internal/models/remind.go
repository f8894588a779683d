package models

import (
	"fmt"
	"time"
)

// NoDate is the sentinel Datetime of a reminder whose date was absent or unparseable
const NoDate int64 = 0

// Position locates a reminder within the scanned tree
type Position struct {
	File string `json:"file"` // Path as reported by the walker, prefixed with the search directory
	Line int    `json:"line"` // 1-based line number
}

// String renders the position as "<file>:<line>"
func (p Position) String() string {
	return fmt.Sprintf("%s:%d", p.File, p.Line)
}

// Remind represents one matched reminder line
type Remind struct {
	Datetime int64             `json:"datetime"` // Epoch seconds (UTC), NoDate when absent
	Message  string            `json:"message"`  // Matched line with leading whitespace trimmed
	Position Position          `json:"position"` // Where the reminder was found
	Meta     map[string]string `json:"meta"`     // Placeholder name -> captured text
}

// HasDate reports whether the reminder carries a parsed date
func (r Remind) HasDate() bool {
	return r.Datetime != NoDate
}

// IsExpired reports whether the reminder's date lies strictly before now
func (r Remind) IsExpired(now time.Time) bool {
	return r.Datetime < now.Unix()
}

// ValidateItem is a named required format that every reminder message must satisfy
type ValidateItem struct {
	Format string `json:"format" yaml:"format" koanf:"format" validate:"required"`
}

// InvalidRemind pairs a reminder with the named formats its message failed to match
type InvalidRemind struct {
	Remind    Remind                  `json:"remind"`
	Unmatched map[string]ValidateItem `json:"unmatched"`
}

// Reminders is the unified, already filtered and ordered result of a scan
type Reminders struct {
	Reminds []Remind
}

// Classified splits reminders into expired and upcoming buckets
type Classified struct {
	Expired  []Remind `json:"expired"`
	Upcoming []Remind `json:"upcoming"`
}

// Partition classifies every reminder against a single cut line.
// Order inside each bucket follows the unified list.
func (r Reminders) Partition(now time.Time) Classified {
	classified := Classified{
		Expired:  make([]Remind, 0),
		Upcoming: make([]Remind, 0),
	}
	for _, remind := range r.Reminds {
		if remind.IsExpired(now) {
			classified.Expired = append(classified.Expired, remind)
		} else {
			classified.Upcoming = append(classified.Upcoming, remind)
		}
	}
	return classified
}

// Expired returns only the reminders whose date lies before now
func (r Reminders) Expired(now time.Time) []Remind {
	return r.Partition(now).Expired
}

// Len returns the number of reminders
func (r Reminders) Len() int {
	return len(r.Reminds)
}
