package models

import (
	"testing"
	"time"
)

func TestDate(t *testing.T) {
	loc := time.FixedZone("CST", 8*3600)
	in := time.Date(2025, 5, 1, 23, 30, 0, 0, loc)

	got := Date(in)
	want := time.Date(2025, 5, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Date(%v) = %v, want %v", in, got, want)
	}
}

func TestDaysBetween(t *testing.T) {
	tests := []struct {
		name string
		a, b time.Time
		want int
	}{
		{
			name: "same day",
			a:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 1, 1, 23, 59, 0, 0, time.UTC),
			want: 0,
		},
		{
			name: "calendar days not elapsed hours",
			a:    time.Date(2025, 1, 1, 23, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 1, 2, 1, 0, 0, 0, time.UTC),
			want: 1,
		},
		{
			name: "across a year boundary",
			a:    time.Date(2025, 12, 30, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC),
			want: 3,
		},
		{
			name: "negative when reversed",
			a:    time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC),
			b:    time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
			want: -4,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DaysBetween(tt.a, tt.b); got != tt.want {
				t.Errorf("DaysBetween() = %d, want %d", got, tt.want)
			}
		})
	}
}
