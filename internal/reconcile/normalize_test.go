package reconcile

import "testing"

func TestNormalizeName(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"day suffix truncated", "劳动节 第1天/共3天", "劳动节"},
		{"descriptor word stripped", "元旦 假期 第1天", "元旦"},
		{"makeup keyword kept", "劳动节 补班 第1天/共1天", "劳动节 补班"},
		{"whitespace collapsed", "  国庆节   中秋节  ", "国庆节 中秋节"},
		{"descriptor only becomes empty", "放假", ""},
		{"empty input", "", ""},
		{"plain name untouched", "清明节", "清明节"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := normalizeName(tt.raw); got != tt.want {
				t.Errorf("normalizeName(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIsMakeupEvent(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{"国庆节 补班", true},
		{"春节 调休", true},
		{"元旦 上班", true},
		{"National Day Workday", true},
		{"MAKEUP day", true},
		{"国庆节 第1天/共7天", false},
		{"元旦", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			if got := isMakeupEvent(tt.raw); got != tt.want {
				t.Errorf("isMakeupEvent(%q) = %v, want %v", tt.raw, got, tt.want)
			}
		})
	}
}

func TestCleanName(t *testing.T) {
	tests := []struct {
		base string
		want string
	}{
		{"国庆节 补班", "国庆节"},
		{"春节 调休", "春节"},
		{"劳动节 上班", "劳动节"},
		{"元旦调休", "元旦"},
	}

	for _, tt := range tests {
		t.Run(tt.base, func(t *testing.T) {
			if got := cleanName(tt.base); got != tt.want {
				t.Errorf("cleanName(%q) = %q, want %q", tt.base, got, tt.want)
			}
		})
	}
}
