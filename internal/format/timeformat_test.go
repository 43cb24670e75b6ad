package format

import (
	"testing"
	"time"
)

func TestRelativeTime(t *testing.T) {
	fixedNow := time.Date(2026, time.August, 20, 12, 0, 0, 0, time.UTC)
	orig := timeNow
	timeNow = func() time.Time { return fixedNow }
	defer func() { timeNow = orig }()

	tests := []struct {
		name string
		ts   time.Time
		want string
	}{
		{name: "zero time", ts: time.Time{}, want: ""},
		{name: "future timestamp", ts: fixedNow.Add(2 * time.Hour), want: "Aug 20"},
		{name: "seconds ago", ts: fixedNow.Add(-30 * time.Second), want: "now"},
		{name: "just over minute", ts: fixedNow.Add(-61 * time.Second), want: "1m ago"},
		{name: "fifty nine minutes", ts: fixedNow.Add(-59 * time.Minute), want: "59m ago"},
		{name: "hours", ts: fixedNow.Add(-23 * time.Hour), want: "23h ago"},
		{name: "days", ts: fixedNow.Add(-48 * time.Hour), want: "2d ago"},
		{name: "ninety nine days", ts: fixedNow.Add(-99 * 24 * time.Hour), want: "99d ago"},
		{name: "hundred days absolute", ts: fixedNow.Add(-100 * 24 * time.Hour), want: "May 12"},
		{
			name: "previous year absolute",
			ts:   time.Date(2025, time.March, 3, 9, 0, 0, 0, time.UTC),
			want: "Mar '25",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeTime(tt.ts); got != tt.want {
				t.Fatalf("RelativeTime(%v) = %q, want %q", tt.ts, got, tt.want)
			}
		})
	}
}

func TestShortDate(t *testing.T) {
	ts := time.Date(2026, time.January, 2, 15, 4, 5, 0, time.UTC)
	if got := ShortDate(ts); got != "2 Jan 2026" {
		t.Fatalf("ShortDate = %q, want %q", got, "2 Jan 2026")
	}
	if got := ShortDate(time.Time{}); got != "" {
		t.Fatalf("ShortDate(zero) = %q, want empty", got)
	}
}
