package parser

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

var multiSpaceRE = regexp.MustCompile(`\s+`)

// Lower lower-cases s with Icelandic casing rules after NFC composition.
func Lower(s string) string {
	// A Caser is stateful, so each call gets its own.
	return cases.Lower(language.Icelandic).String(norm.NFC.String(s))
}

// Normalise lower-cases raw and strips punctuation, keeping letters, digits,
// percent signs, decimal commas ("17,2") and ordinal dots ("17.").
func Normalise(raw string) string {
	raw = strings.TrimSpace(Lower(raw))
	if raw == "" {
		return ""
	}
	runes := []rune(raw)
	var b strings.Builder
	lastSpace := false
	space := func() {
		if !lastSpace {
			b.WriteByte(' ')
		}
		lastSpace = true
	}
	for i, r := range runes {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r) || r == '%':
			b.WriteRune(r)
			lastSpace = false
		case r == ',' && digitAt(runes, i-1) && digitAt(runes, i+1):
			b.WriteRune(r)
			lastSpace = false
		case r == '.' && digitAt(runes, i-1) && !digitAt(runes, i+1):
			b.WriteRune(r)
			lastSpace = false
		default:
			space()
		}
	}
	return strings.TrimSpace(multiSpaceRE.ReplaceAllString(b.String(), " "))
}

func digitAt(runes []rune, i int) bool {
	return i >= 0 && i < len(runes) && unicode.IsDigit(runes[i])
}

// Tokenise splits a normalised utterance into words.
func Tokenise(normalised string) []string {
	if strings.TrimSpace(normalised) == "" {
		return nil
	}
	return strings.Fields(normalised)
}
