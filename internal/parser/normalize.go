package parser

import (
	"regexp"
	"strings"
)

var (
	// dateLineRe matches date lines like "19-February-2026", optionally
	// prefixed with "*" as some whiteboard apps export them.
	dateLineRe = regexp.MustCompile(`^\*?\s*\d{1,2}-[A-Za-z]+-\d{4}$`)

	// weekdayLineRe matches lines that are just a day name.
	weekdayLineRe = regexp.MustCompile(`(?i)^(monday|tuesday|wednesday|thursday|friday|saturday|sunday)$`)

	multiBlankRe = regexp.MustCompile(`\n{3,}`)
)

// dateExtractWindow limits how deep ExtractDate scans. Dates sit before
// workout content in pasted programming; scanning further risks treating
// rep schemes as dates.
const dateExtractWindow = 5

// Normalize cleans raw pasted text: unifies line endings, converts tabs to
// spaces, strips trailing whitespace per line, collapses runs of blank
// lines, and trims the whole block.
func Normalize(raw string) string {
	s := strings.ReplaceAll(raw, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\t", " ")

	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	s = strings.Join(lines, "\n")

	s = multiBlankRe.ReplaceAllString(s, "\n\n")
	return strings.TrimSpace(s)
}

// ExtractDate scans the first few lines for an embedded date token and
// returns the first hit, or "" if none is found within the window.
func ExtractDate(text string) string {
	lines := strings.Split(text, "\n")
	if len(lines) > dateExtractWindow {
		lines = lines[:dateExtractWindow]
	}
	for _, line := range lines {
		t := strings.TrimSpace(line)
		if dateLineRe.MatchString(t) {
			return strings.TrimSpace(strings.TrimPrefix(t, "*"))
		}
	}
	return ""
}

func isDateLine(line string) bool {
	return dateLineRe.MatchString(strings.TrimSpace(line))
}

func isDayLine(line string) bool {
	return weekdayLineRe.MatchString(strings.TrimSpace(line))
}
