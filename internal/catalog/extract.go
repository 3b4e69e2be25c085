package catalog

import (
	"regexp"
	"strconv"
	"strings"
	"time"
)

// yearPattern matches a plausible release year anywhere in free text.
var yearPattern = regexp.MustCompile(`\b(19|20)\d{2}\b`)

// languageKeywords maps keywords seen in upload captions to language codes.
// Matching is case-insensitive on whole words.
var languageKeywords = map[string]string{
	"bengali": "bn",
	"bangla":  "bn",
	"hindi":   "hi",
	"english": "en",
	"tamil":   "ta",
	"telugu":  "te",
	"korean":  "ko",
	"japanese": "ja",
}

// firstLine returns the first non-empty line of raw text, trimmed.
func firstLine(raw string) string {
	for _, line := range strings.Split(raw, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}

// extractYear finds the first plausible release year in the text.
// Returns nil when no year between 1900 and next year is present.
func extractYear(text string) *int {
	maxYear := time.Now().Year() + 1

	for _, match := range yearPattern.FindAllString(text, -1) {
		year, err := strconv.Atoi(match)
		if err == nil && year >= 1900 && year <= maxYear {
			return &year
		}
	}
	return nil
}

// extractLanguage scans the text for a known language keyword.
// Returns nil when no keyword is found.
func extractLanguage(text string) *string {
	for _, word := range strings.Fields(strings.ToLower(text)) {
		word = strings.Trim(word, ".,;:()[]#")
		if code, ok := languageKeywords[word]; ok {
			return &code
		}
	}
	return nil
}
