package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func remindAt(file string, line int, t time.Time) Remind {
	return Remind{
		Datetime: t.Unix(),
		Message:  "remind: " + file,
		Position: Position{File: file, Line: line},
		Meta:     map[string]string{},
	}
}

func TestPosition_String(t *testing.T) {
	assert.Equal(t, "src/main.go:42", Position{File: "src/main.go", Line: 42}.String())
}

func TestRemind_IsExpired(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		datetime int64
		want     bool
	}{
		{name: "one second before", datetime: now.Unix() - 1, want: true},
		{name: "exactly now", datetime: now.Unix(), want: false},
		{name: "after", datetime: now.Unix() + 1, want: false},
		{name: "no date", datetime: NoDate, want: true},
		{name: "before epoch", datetime: -86400, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := Remind{Datetime: tt.datetime}
			assert.Equal(t, tt.want, r.IsExpired(now))
		})
	}
}

func TestRemind_HasDate(t *testing.T) {
	assert.False(t, Remind{}.HasDate())
	assert.True(t, Remind{Datetime: 1}.HasDate())
}

func TestReminders_Partition(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	a := remindAt("a.go", 1, now.AddDate(1, 0, 0))
	b := remindAt("b.go", 2, now.AddDate(-1, 0, 0))
	c := remindAt("c.go", 3, now)
	d := Remind{Datetime: NoDate, Position: Position{File: "d.go", Line: 4}}

	reminders := Reminders{Reminds: []Remind{a, b, c, d}}
	got := reminders.Partition(now)

	assert.Equal(t, []Remind{b, d}, got.Expired)
	assert.Equal(t, []Remind{a, c}, got.Upcoming)
	assert.Equal(t, len(reminders.Reminds), len(got.Expired)+len(got.Upcoming))
	assert.Equal(t, got.Expired, reminders.Expired(now))
	assert.Equal(t, 4, reminders.Len())
}

func TestReminders_PartitionEmpty(t *testing.T) {
	got := Reminders{}.Partition(time.Now())
	require.NotNil(t, got.Expired)
	require.NotNil(t, got.Upcoming)

	data, err := json.Marshal(got)
	require.NoError(t, err)
	assert.JSONEq(t, `{"expired": [], "upcoming": []}`, string(data))
}

func TestRemind_JSONFieldNames(t *testing.T) {
	r := Remind{
		Datetime: 1700000000,
		Message:  "@bob remind: 2023/11/14",
		Position: Position{File: "x.go", Line: 9},
		Meta:     map[string]string{"who": "bob"},
	}
	data, err := json.Marshal(InvalidRemind{
		Remind:    r,
		Unmatched: map[string]ValidateItem{"ticket": {Format: `#\d+`}},
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"remind": {
			"datetime": 1700000000,
			"message": "@bob remind: 2023/11/14",
			"position": {"file": "x.go", "line": 9},
			"meta": {"who": "bob"}
		},
		"unmatched": {"ticket": {"format": "#\\d+"}}
	}`, string(data))
}
