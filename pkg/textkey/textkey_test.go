// Copyright (c) 2026 Moviq. All rights reserved.
// Author: dev.kabir01@gmail.com

package textkey_test

import (
	"testing"
	"unicode"

	"github.com/stretchr/testify/assert"

	"github.com/devkabir/moviq/pkg/textkey"
)

/*
TestFrom_Canonicalization covers the separator-collapsing key semantics.
*/
func TestFrom_Canonicalization(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"plain_title", "Interstellar", "interstellar"},
		{"spaces_removed", "Man of Steel", "manofsteel"},
		{"already_joined", "ManofSteel", "manofsteel"},
		{"punctuation_removed", "Spider-Man: No Way Home!", "spidermannowayhome"},
		{"digits_kept", "Blade Runner 2049", "bladerunner2049"},
		{"emoji_removed", "Dune 🏜️ Part Two", "duneparttwo"},
		{"accents_folded", "Amélie", "amelie"},
		{"empty_input", "", ""},
		{"only_punctuation", "?!... --", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, textkey.From(tt.input))
		})
	}
}

/*
TestFrom_CollapsesDistinctTitles documents the known lossy behavior: titles
differing only by separators share one key.
*/
func TestFrom_CollapsesDistinctTitles(t *testing.T) {
	assert.Equal(t, textkey.From("Red One"), textkey.From("Redone"))
}

/*
TestFrom_Idempotent verifies From(From(s)) == From(s) for varied inputs.
*/
func TestFrom_Idempotent(t *testing.T) {
	inputs := []string{
		"Man of Steel",
		"INTERSTELLAR",
		"Amélie",
		"মুভি খুঁজুন",
		"  spaced   out  ",
		"",
	}

	for _, s := range inputs {
		once := textkey.From(s)
		assert.Equal(t, once, textkey.From(once), "input %q", s)
	}
}

/*
TestFrom_OutputCharset verifies the output contains only lowercase letters
and digits, never separators or marks.
*/
func TestFrom_OutputCharset(t *testing.T) {
	inputs := []string{
		"Man of Steel",
		"Spider-Man: No Way Home!",
		"Amélie 2001",
		"Ёлки 3",
	}

	for _, s := range inputs {
		for _, r := range textkey.From(s) {
			isAllowed := unicode.IsDigit(r) || (unicode.IsLetter(r) && !unicode.IsUpper(r))
			assert.True(t, isAllowed, "rune %q in key for %q", r, s)
		}
	}
}
