// Copyright (c) 2026 Moviq. All rights reserved.
// Author: dev.kabir01@gmail.com

// Package textkey canonicalizes titles and queries into comparison keys.
//
// # Usage
//
// Keys are the matching substrate for catalog search: "Man of Steel" and
// "ManofSteel" both become "manofsteel", making lookups resilient to the
// spacing and punctuation noise typical of uploaded titles. The flip side is
// that titles differing only by punctuation collapse into one key
// ("Red One" / "Redone"); with no other canonicalization signal in the data
// this is the accepted trade-off.
package textkey

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// From converts an arbitrary Unicode string into a comparison key.
//
// # Transformation Pipeline
//
// 1. Normalizes to NFD (decomposes accented chars: é → e + combining acute).
// 2. Removes combining marks (accents).
// 3. Drops everything that is not a letter or digit (punctuation, whitespace,
// symbols, emoji) — removed, not replaced by a separator.
// 4. Case-folds to lowercase.
//
// The result contains only lowercase letters and digits. From is idempotent
// and maps the empty string to the empty string.
func From(s string) string {
	// 1. Normalize and remove accents
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	result, _, _ := transform.String(t, s)

	// 2. Keep letters and digits only
	result = strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, result)

	// 3. Case-fold
	return strings.ToLower(result)
}

// isMn reports whether r is a Unicode non-spacing mark (e.g., accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}
