package feed

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse_SingleDayEvent(t *testing.T) {
	text := "BEGIN:VEVENT\nSUMMARY:元旦\nDTSTART;VALUE=DATE:20250101\nDTEND;VALUE=DATE:20250102\nEND:VEVENT\n"

	events := Parse(text)
	if len(events) != 1 {
		t.Fatalf("Parse() returned %d events, want 1", len(events))
	}

	ev := events[0]
	if ev.Name != "元旦" {
		t.Errorf("Name = %q, want %q", ev.Name, "元旦")
	}
	if !ev.Start.Equal(date(2025, 1, 1)) {
		t.Errorf("Start = %v, want 2025-01-01", ev.Start)
	}
	// Exclusive DTEND one day after start collapses to a single-day event.
	if !ev.End.Equal(date(2025, 1, 1)) {
		t.Errorf("End = %v, want 2025-01-01", ev.End)
	}
}

func TestParse_EndDateHandling(t *testing.T) {
	tests := []struct {
		name    string
		lines   string
		wantEnd time.Time
	}{
		{
			name:    "multi-day span uses exclusive end minus one",
			lines:   "SUMMARY:春节\nDTSTART;VALUE=DATE:20250128\nDTEND;VALUE=DATE:20250204",
			wantEnd: date(2025, 2, 3),
		},
		{
			name:    "missing DTEND means single day",
			lines:   "SUMMARY:春节\nDTSTART;VALUE=DATE:20250128",
			wantEnd: date(2025, 1, 28),
		},
		{
			name:    "DTEND equal to DTSTART means single day",
			lines:   "SUMMARY:春节\nDTSTART;VALUE=DATE:20250128\nDTEND;VALUE=DATE:20250128",
			wantEnd: date(2025, 1, 28),
		},
		{
			name:    "DTEND before DTSTART clamps to start",
			lines:   "SUMMARY:春节\nDTSTART;VALUE=DATE:20250128\nDTEND;VALUE=DATE:20250110",
			wantEnd: date(2025, 1, 28),
		},
		{
			name:    "trailing time suffix is ignored",
			lines:   "SUMMARY:春节\nDTSTART:20250128T000000Z\nDTEND:20250130T000000Z",
			wantEnd: date(2025, 1, 29),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			events := Parse("BEGIN:VEVENT\n" + tt.lines + "\nEND:VEVENT\n")
			if len(events) != 1 {
				t.Fatalf("Parse() returned %d events, want 1", len(events))
			}
			if !events[0].End.Equal(tt.wantEnd) {
				t.Errorf("End = %v, want %v", events[0].End, tt.wantEnd)
			}
		})
	}
}

func TestParse_DropsMalformedEvents(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{
			name: "missing summary",
			text: "BEGIN:VEVENT\nDTSTART;VALUE=DATE:20250101\nEND:VEVENT\n",
			want: 0,
		},
		{
			name: "missing start",
			text: "BEGIN:VEVENT\nSUMMARY:元旦\nEND:VEVENT\n",
			want: 0,
		},
		{
			name: "unparseable start date",
			text: "BEGIN:VEVENT\nSUMMARY:元旦\nDTSTART;VALUE=DATE:20251301\nEND:VEVENT\n",
			want: 0,
		},
		{
			name: "too-short date value",
			text: "BEGIN:VEVENT\nSUMMARY:元旦\nDTSTART;VALUE=DATE:2025\nEND:VEVENT\n",
			want: 0,
		},
		{
			name: "bad event does not poison the next one",
			text: "BEGIN:VEVENT\nSUMMARY:坏\nDTSTART:bad\nEND:VEVENT\n" +
				"BEGIN:VEVENT\nSUMMARY:元旦\nDTSTART;VALUE=DATE:20250101\nEND:VEVENT\n",
			want: 1,
		},
		{
			name: "empty document",
			text: "",
			want: 0,
		},
		{
			name: "not a calendar at all",
			text: "hello\nworld\n",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.text); len(got) != tt.want {
				t.Errorf("Parse() returned %d events, want %d", len(got), tt.want)
			}
		})
	}
}

func TestParse_DocumentOrderPreserved(t *testing.T) {
	text := "BEGIN:VEVENT\nSUMMARY:b\nDTSTART;VALUE=DATE:20250601\nEND:VEVENT\n" +
		"BEGIN:VEVENT\nSUMMARY:a\nDTSTART;VALUE=DATE:20250101\nEND:VEVENT\n"

	events := Parse(text)
	if len(events) != 2 {
		t.Fatalf("Parse() returned %d events, want 2", len(events))
	}
	if events[0].Name != "b" || events[1].Name != "a" {
		t.Errorf("events out of document order: %q, %q", events[0].Name, events[1].Name)
	}
}

func TestParse_SummaryKeepsInternalWhitespace(t *testing.T) {
	text := "BEGIN:VEVENT\nSUMMARY:国庆节  第1天/共7天\nDTSTART;VALUE=DATE:20251001\nEND:VEVENT\n"

	events := Parse(text)
	if len(events) != 1 {
		t.Fatalf("Parse() returned %d events, want 1", len(events))
	}
	if events[0].Name != "国庆节  第1天/共7天" {
		t.Errorf("Name = %q, internal whitespace should be untouched", events[0].Name)
	}
}
