package reconcile

import (
	"regexp"
	"strings"
)

// The keyword lists below are configuration, not control flow: extending
// them must never require touching Reconcile itself.

// makeupKeywords mark an event as a compensatory workday. Matching is
// case-insensitive against the original event name.
var makeupKeywords = []string{"补班", "调休", "上班", "补上班", "调班", "workday", "makeup"}

// descriptorWords are generic "holiday / day off" fillers stripped during
// normalization.
var descriptorWords = []string{"假期", "假日", "放假"}

// dayMarker introduces "day N of M" suffixes, e.g. "国庆节 第1天/共7天".
const dayMarker = " 第"

var whitespaceRun = regexp.MustCompile(`\s+`)

// normalizeName reduces a raw event name to the base holiday name: the
// "day N" suffix is cut off, whitespace runs collapse to single spaces and
// descriptor words disappear. Make-up keywords are kept.
func normalizeName(raw string) string {
	s := strings.TrimSpace(raw)

	if i := strings.Index(s, dayMarker); i >= 0 {
		s = strings.TrimSpace(s[:i])
	}

	s = whitespaceRun.ReplaceAllString(s, " ")

	for _, w := range descriptorWords {
		s = strings.ReplaceAll(s, w, "")
	}

	return strings.TrimSpace(s)
}

// isMakeupEvent reports whether the original (non-normalized) event name
// denotes a make-up workday.
func isMakeupEvent(rawName string) bool {
	lower := strings.ToLower(rawName)
	for _, kw := range makeupKeywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// cleanName strips every make-up keyword from an already-normalized base
// name and re-normalizes, yielding the holiday name a make-up event belongs
// to ("国庆节 调休" -> "国庆节").
func cleanName(baseName string) string {
	s := baseName
	for _, kw := range makeupKeywords {
		s = strings.ReplaceAll(s, kw, "")
	}
	return normalizeName(s)
}
