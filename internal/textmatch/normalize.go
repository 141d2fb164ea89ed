package textmatch

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// quoteFolds maps typographic quote and dash variants to a single
// representative each.
var quoteFolds = map[rune]rune{
	'’': '\'', // right single quotation mark
	'‘': '\'', // left single quotation mark
	'´': '\'', // acute accent
	'‚': '\'', // single low-9 quotation mark
	'‛': '\'', // single high-reversed-9 quotation mark
	'′': '\'', // prime
	'`': '\'', // grave accent
	'“': '"', // left double quotation mark
	'”': '"', // right double quotation mark
	'„': '"', // double low-9 quotation mark
	'‟': '"', // double high-reversed-9 quotation mark
	'″': '"', // double prime
	'«': '"', // left guillemet
	'»': '"', // right guillemet
	'‐': '-', // hyphen
	'‑': '-', // non-breaking hyphen
	'‒': '-', // figure dash
	'–': '-', // en dash
	'—': '-', // em dash
	'―': '-', // horizontal bar
	'−': '-', // minus sign
}

// Normalize prepares text for comparison: NFC composition, lowercase,
// trimmed, whitespace runs collapsed to one space, quote and dash
// variants folded. Diacritics are preserved.
func Normalize(s string) string {
	s = norm.NFC.String(s)
	s = cases.Lower(language.Und).String(s)
	s = strings.Map(func(r rune) rune {
		if folded, ok := quoteFolds[r]; ok {
			return folded
		}
		return r
	}, s)
	return strings.Join(strings.Fields(s), " ")
}

// NormalizeTokens is Normalize with every punctuation rune removed.
// Used for whole-sentence scoring where punctuation carries no credit.
func NormalizeTokens(s string) string {
	s = strings.Map(func(r rune) rune {
		if unicode.IsPunct(r) {
			return -1
		}
		return r
	}, Normalize(s))
	return strings.Join(strings.Fields(s), " ")
}

// Tokens splits s into punctuation-free, normalized words.
func Tokens(s string) []string {
	return strings.Fields(NormalizeTokens(s))
}
