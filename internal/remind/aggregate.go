package remind

import (
	"sort"

	"github.com/harrison/reminder-lint/internal/models"
)

// AggregateOptions controls post-processing of a scan
type AggregateOptions struct {
	RemindIfNoDate bool // Keep reminders whose date is models.NoDate
	SortByDeadline bool // Sort ascending by Datetime, ties keep discovery order
}

// Aggregate filters and orders the flat scan result. The input slice is not modified.
func Aggregate(reminds []models.Remind, opts AggregateOptions) models.Reminders {
	kept := make([]models.Remind, 0, len(reminds))
	for _, r := range reminds {
		if !opts.RemindIfNoDate && !r.HasDate() {
			continue
		}
		kept = append(kept, r)
	}

	if opts.SortByDeadline {
		sort.SliceStable(kept, func(i, j int) bool {
			return kept[i].Datetime < kept[j].Datetime
		})
	}

	return models.Reminders{Reminds: kept}
}
