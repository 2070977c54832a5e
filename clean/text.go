// Package clean repairs common authoring defects in concept data: mis-decoded
// characters and punctuation spacing in literal text, and malformed or
// relative identifiers. Every effective change is counted and narratively
// logged on the run state; nothing here ever fails a run.
package clean

import (
	"strings"
	"unicode"

	"github.com/janschachtschabel/skohub-ttl-cleaner/model"
)

// charFixes maps UTF-8 text mis-decoded as Latin-1 back to the intended
// characters. Order is fixed so replacement is deterministic.
var charFixes = []struct{ wrong, right string }{
	{"Ã¤", "ä"}, {"Ã¶", "ö"}, {"Ã¼", "ü"},
	{"Ã„", "Ä"}, {"Ã–", "Ö"}, {"Ãœ", "Ü"},
	{"ÃŸ", "ß"}, {"Ã©", "é"}, {"Ã¨", "è"},
	{"Ã¡", "á"}, {"Ã ", "à"}, {"Ã³", "ó"},
	{"Ã²", "ò"}, {"Ãº", "ú"}, {"Ã¹", "ù"},
}

// entityFixes are HTML entities that show up in exported vocabulary text.
// They only apply to full text fields, not to labels.
var entityFixes = []struct{ wrong, right string }{
	{"&nbsp;", " "}, {"&amp;", "&"}, {"&lt;", "<"}, {"&gt;", ">"},
	{"&quot;", `"`}, {"&#39;", "'"}, {"&apos;", "'"},
}

// logTruncate caps before/after text in change-log entries.
const logTruncate = 120

// Normalizer cleans literal text values, recording repairs on the run state.
type Normalizer struct {
	state *model.RunState
}

// NewNormalizer returns a Normalizer recording onto state.
func NewNormalizer(state *model.RunState) *Normalizer {
	return &Normalizer{state: state}
}

// CleanLabel repairs a label literal. Labels are short controlled terms, so
// only the encoding fixes and whitespace collapse apply. Returns the empty
// string when the result is blank, signalling the value should be dropped.
func (n *Normalizer) CleanLabel(label string) string {
	if label == "" {
		return ""
	}

	original := label
	for _, f := range charFixes {
		label = strings.ReplaceAll(label, f.wrong, f.right)
	}
	if label != original {
		n.state.Stats.EncodingIssuesFixed++
		n.state.Record("Label cleaned: '%s' -> '%s'",
			truncate(strings.TrimSpace(original)), truncate(strings.TrimSpace(label)))
	}

	beforeWS := label
	label = collapseWhitespace(label)
	if label != beforeWS && beforeWS == original {
		n.state.Record("Label normalized (whitespace): '%s' -> '%s'",
			truncate(strings.TrimSpace(beforeWS)), truncate(strings.TrimSpace(label)))
	}

	if strings.TrimSpace(label) == "" {
		n.state.Stats.EmptyLabelsRemoved++
		return ""
	}
	return label
}

// CleanText repairs a definition/note/example literal: encoding and entity
// fixes, single-space-after punctuation, whitespace collapse, trim. Returns
// the empty string when the result is blank.
func (n *Normalizer) CleanText(text string) string {
	if text == "" {
		return ""
	}

	original := text
	for _, f := range charFixes {
		text = strings.ReplaceAll(text, f.wrong, f.right)
	}
	for _, f := range entityFixes {
		text = strings.ReplaceAll(text, f.wrong, f.right)
	}

	text = spacePunctuation(text)
	text = strings.TrimSpace(collapseWhitespace(text))

	if text != original {
		n.state.Stats.TextFieldsCleaned++
		n.state.Record("Text field cleaned: '%s' -> '%s'",
			truncate(strings.TrimSpace(original)), truncate(text))
	}

	if text == "" {
		n.state.Stats.EmptyLabelsRemoved++
		return ""
	}
	return text
}

// FixCommaSpacing applies the punctuation-spacing repair to a literal at
// serialization time, counting it as a comma fix when it changes anything.
func (n *Normalizer) FixCommaSpacing(text string) string {
	if text == "" {
		return text
	}

	original := text
	text = spacePunctuation(text)
	text = strings.TrimSpace(collapseWhitespace(text))

	if text != original {
		n.state.Stats.CommaFixes++
		n.state.Stats.TextFieldsCleaned++
		n.state.Record("Comma spacing fixed: '%s' -> '%s'",
			truncate(strings.TrimSpace(original)), truncate(text))
	}
	return text
}

// spacePunctuation inserts a single space after comma, period, semicolon,
// colon, exclamation and question marks where none follows. A period before
// a digit is left alone so decimals and enumerations survive.
func spacePunctuation(s string) string {
	runes := []rune(s)
	var b strings.Builder
	b.Grow(len(s) + 8)

	for i, r := range runes {
		b.WriteRune(r)
		if i+1 >= len(runes) {
			break
		}
		next := runes[i+1]
		if unicode.IsSpace(next) {
			continue
		}
		switch r {
		case ',', ';', ':', '!', '?':
			b.WriteRune(' ')
		case '.':
			if !unicode.IsDigit(next) {
				b.WriteRune(' ')
			}
		}
	}
	return b.String()
}

// collapseWhitespace reduces every whitespace run to a single space.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncate caps a change-log value at logTruncate characters. Counting runes
// keeps multi-byte text from being split mid-sequence.
func truncate(s string) string {
	runes := []rune(s)
	if len(runes) > logTruncate {
		return string(runes[:logTruncate-3]) + "..."
	}
	return s
}
