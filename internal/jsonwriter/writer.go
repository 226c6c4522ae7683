// =============================================================================
// glue_sql to JSON Converter - JSON Writer
// =============================================================================
//
// This module serializes conversion results to the output JSON format.
//
// OUTPUT CONTRACT:
//   - UTF-8 text, 4-space indentation
//   - Non-ASCII characters left unescaped (Korean descriptions must survive
//     byte-for-byte)
//   - Angle brackets left unescaped (the query field embeds literal
//     <![CDATA[ ... ]]> markers)
//   - Map keys in sorted order, so repeated runs produce identical bytes
//
// encoding/json gives all four directly: an Encoder with SetEscapeHTML(false)
// and SetIndent("", four spaces) over Go maps, which marshal with sorted keys.
//
// =============================================================================

package jsonwriter

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// indent is the fixed 4-space indentation of the output files.
const indent = "    "

// Write serializes payload to w using the output contract above.
func Write(w io.Writer, payload any) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", indent)

	if err := enc.Encode(payload); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}

	return nil
}

// Marshal serializes payload to a byte slice using the output contract
// above. The result ends with a trailing newline.
func Marshal(payload any) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, payload); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile serializes payload and writes it to path in one shot. The file
// is created or truncated with 0644 permissions.
func WriteFile(path string, payload any) error {
	data, err := Marshal(payload)
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write file: %w", err)
	}

	return nil
}
