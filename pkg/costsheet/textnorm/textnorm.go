// Package textnorm canonicalizes free-text worksheet labels so lookups survive
// authoring variance (accents, case, spacing, punctuation).
package textnorm

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var (
	whitespaceRun = regexp.MustCompile(`\s+`)
	nonAlnumRun   = regexp.MustCompile(`[^A-Z0-9]+`)
)

// fold decomposes s, drops combining marks and upper-cases the result.
func fold(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)))
	out, _, err := transform.String(t, s)
	if err != nil {
		out = s
	}
	return strings.ToUpper(out)
}

// Key returns the whitespace-collapsed form of s: accents stripped, upper-cased,
// trimmed, with every whitespace run replaced by a single space.
// It is used to match sheet titles, energy names and section headers.
func Key(s string) string {
	return whitespaceRun.ReplaceAllString(strings.TrimSpace(fold(s)), " ")
}

// Label returns the punctuation-collapsed form of s: accents stripped,
// upper-cased, with every run of characters outside [A-Z0-9] replaced by a
// single space and the result trimmed.
//
//	Label("Kms Vehículo /Día") == "KMS VEHICULO DIA"
func Label(s string) string {
	return strings.TrimSpace(nonAlnumRun.ReplaceAllString(fold(s), " "))
}

// Code returns a machine-safe identifier for a display name: runs of characters
// outside [A-Z0-9] become one underscore and outer underscores are trimmed.
//
//	Code("Duo Gasoil") == "DUO_GASOIL"
func Code(s string) string {
	return strings.Trim(nonAlnumRun.ReplaceAllString(fold(s), "_"), "_")
}

// Title returns the display name of a canonical energy key ("GAS NATURAL" -> "Gas Natural").
func Title(key string) string {
	return cases.Title(language.Spanish).String(key)
}
