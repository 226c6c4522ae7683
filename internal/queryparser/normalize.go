// =============================================================================
// glue_sql to JSON Converter - Text Normalization
// =============================================================================
//
// This file contains the text cleanup helpers used by the query parser:
//   - Normalize: whitespace collapsing for descriptive fields
//   - ModuleCode: module key derivation from a file name
//   - WrapCDATA: synthetic CDATA wrapper for the output SQL text
//
// The SQL body itself is deliberately NOT run through Normalize: interior
// line breaks and indentation must survive into the JSON output, so only
// leading/trailing whitespace is trimmed there.
//
// =============================================================================

package queryparser

import (
	"regexp"
	"strings"
)

// unknownModule is the fallback module key for file names shorter than
// three characters.
const unknownModule = "unknown"

var (
	// whitespaceRun matches any run of whitespace, including newlines and tabs.
	whitespaceRun = regexp.MustCompile(`\s+`)

	// cdataOpen / cdataClose match literal CDATA markers together with any
	// whitespace hugging them.
	cdataOpen  = regexp.MustCompile(`<!\[CDATA\[\s*`)
	cdataClose = regexp.MustCompile(`\s*\]\]>`)
)

// Normalize cleans a descriptive text field for JSON output:
// leading/trailing whitespace is trimmed, interior whitespace runs collapse
// to a single space, and literal CDATA markers are stripped.
func Normalize(text string) string {
	text = strings.TrimSpace(text)
	text = whitespaceRun.ReplaceAllString(text, " ")
	text = cdataOpen.ReplaceAllString(text, "")
	text = cdataClose.ReplaceAllString(text, "")
	return strings.TrimSpace(text)
}

// ModuleCode derives the module key from a source file's base name: the
// first three characters, lower-cased. Names shorter than three characters
// fall back to "unknown".
//
// The count is in runes, not bytes, so multibyte file names cannot split a
// character.
func ModuleCode(fileName string) string {
	runes := []rune(fileName)
	if len(runes) < 3 {
		return unknownModule
	}
	return strings.ToLower(string(runes[:3]))
}

// WrapCDATA re-wraps an edge-trimmed SQL body in the synthetic CDATA marker
// used by the JSON output. The nine-space indent before the closing marker
// is part of the expected artifact format and must be reproduced exactly.
func WrapCDATA(body string) string {
	return "<![CDATA[\n" + body + "\n         ]]>"
}
