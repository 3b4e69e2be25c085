package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFirstLine(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		expected string
	}{
		{"single_line", "Interstellar (2014)", "Interstellar (2014)"},
		{"multi_line", "Man of Steel\n1080p WEB-DL\nHindi Dubbed", "Man of Steel"},
		{"leading_blank_lines", "\n\n  Avatar  \nextras", "Avatar"},
		{"empty", "", ""},
		{"whitespace_only", "   \n\t\n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, firstLine(tt.raw))
		})
	}
}

func TestExtractYear(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected *int
	}{
		{"year_in_parens", "Interstellar (2014) 1080p", intPtr(2014)},
		{"bare_year", "Man of Steel 2013 BluRay", intPtr(2013)},
		{"no_year", "Avatar Extended Cut", nil},
		{"resolution_not_year", "Avatar 2160p", nil},
		{"first_plausible_wins", "Dune 2021 remaster 2024", intPtr(2021)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractYear(tt.text)
			if tt.expected == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.expected, *got)
			}
		})
	}
}

func TestExtractLanguage(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		expected *string
	}{
		{"bengali_keyword", "Mission Extreme (2021) Bengali WEB-DL", strPtr("bn")},
		{"bangla_alias", "Bangla dubbed print", strPtr("bn")},
		{"hindi_keyword", "Jawan 2023 HINDI 720p", strPtr("hi")},
		{"keyword_with_punctuation", "Oppenheimer (English)", strPtr("en")},
		{"no_language", "Parasite 2019 remux", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := extractLanguage(tt.text)
			if tt.expected == nil {
				assert.Nil(t, got)
			} else {
				require.NotNil(t, got)
				assert.Equal(t, *tt.expected, *got)
			}
		})
	}
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }
