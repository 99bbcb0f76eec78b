// Package grammar holds the country-agnostic plumbing shared by every
// token library: text normalization and pattern composition. Token
// vocabularies themselves live in pkg/countries/<tag>.
package grammar

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// dashRunes collects every Unicode dash-like character the normalizer folds
// down to a plain ASCII hyphen: hyphen, non-breaking hyphen, figure dash,
// en dash, em dash, horizontal bar.
var dashRunes = []rune{'‐', '‑', '‒', '–', '—', '―'}

var dashReplacer = func() *strings.Replacer {
	pairs := make([]string, 0, len(dashRunes)*2)
	for _, r := range dashRunes {
		pairs = append(pairs, string(r), "-")
	}
	return strings.NewReplacer(pairs...)
}()

// Normalize canonicalizes raw input text before matching. It:
//
//  1. Applies Unicode NFC normalization so combining-character variants of
//     apostrophes and accented letters compare equal to their precomposed
//     forms.
//  2. Replaces every dash-like rune with a plain ASCII '-'.
//  3. Collapses runs of horizontal whitespace (spaces and tabs) within a
//     line to a single space. Newlines are never touched: multi-line
//     mailing blocks must keep their line breaks, since city/region/postal
//     lines are routinely split onto a second line.
//  4. Collapses runs of commas (optionally separated by whitespace) to a
//     single comma.
//  5. Pads the text with a leading and trailing ", " sentinel, so every
//     token boundary rule that looks for a preceding/following comma can
//     assume one always exists.
//
// Normalize is idempotent: Normalize(Normalize(s)) == Normalize(s).
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = dashReplacer.Replace(s)
	s = collapseHorizontalWhitespace(s)
	s = collapseCommaRuns(s)
	s = strings.TrimLeft(s, " ,")
	s = strings.TrimRight(s, " ,")
	return ", " + s + ", "
}

func collapseHorizontalWhitespace(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	inRun := false
	for _, r := range s {
		if r == ' ' || r == '\t' {
			if !inRun {
				b.WriteByte(' ')
				inRun = true
			}
			continue
		}
		inRun = false
		b.WriteRune(r)
	}
	return b.String()
}

// collapseCommaRuns folds any run of commas and spaces that contains at
// least one comma down to ", " (comma, single space), and any pure
// whitespace run down to a single space. It runs after
// collapseHorizontalWhitespace, so tabs are already gone.
func collapseCommaRuns(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	runes := []rune(s)
	i, n := 0, len(runes)
	for i < n {
		if runes[i] == ',' || runes[i] == ' ' {
			j := i
			hasComma := false
			for j < n && (runes[j] == ',' || runes[j] == ' ') {
				if runes[j] == ',' {
					hasComma = true
				}
				j++
			}
			if hasComma {
				b.WriteString(", ")
			} else {
				b.WriteByte(' ')
			}
			i = j
			continue
		}
		b.WriteRune(runes[i])
		i++
	}
	return b.String()
}
