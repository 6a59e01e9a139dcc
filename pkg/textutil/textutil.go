// Copyright (c) 2026 Inkwell. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package textutil normalizes user text for search and measures chapter length.
//
// # Usage
//
// Search keywords arrive in every width and composition form a keyboard can
// produce ("ＡＢＣ", "Ａbc", decomposed accents). [NormalizeKeyword] folds them
// to one canonical form before they reach SQL; [CountWords] derives the word
// count stored on chapters and books.
package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// NormalizeKeyword returns the canonical form of a search keyword.
//
// # Pipeline
//
// 1. Folds full-width and half-width variants (width.Fold).
// 2. Composes to NFKC.
// 3. Collapses runs of whitespace into one space and trims the ends.
func NormalizeKeyword(s string) string {
	t := transform.Chain(width.Fold, norm.NFKC)
	result, _, err := transform.String(t, s)
	if err != nil {
		result = s
	}

	return strings.Join(strings.Fields(result), " ")
}

// EscapeLike escapes the LIKE metacharacters '\', '%' and '_' so s matches literally.
func EscapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// CountWords measures a chapter body.
//
// Each CJK ideograph, kana or hangul syllable counts as one word; every other
// run of letters or digits counts as one word. Punctuation and spaces are free.
func CountWords(s string) int {
	count := 0
	inWord := false

	for _, r := range norm.NFC.String(s) {
		switch {
		case isLogographic(r):
			count++
			inWord = false
		case unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.Is(unicode.Mn, r):
			if !inWord {
				count++
				inWord = true
			}
		default:
			inWord = false
		}
	}

	return count
}

// isLogographic reports whether r is written without spaces between words.
func isLogographic(r rune) bool {
	return unicode.In(r, unicode.Han, unicode.Hiragana, unicode.Katakana, unicode.Hangul)
}
