// =============================================================================
// glue_sql to JSON Converter - Shared Types
// =============================================================================
//
// This package contains shared types used across multiple modules to avoid
// import cycles. Types defined here are used by:
//   - queryparser
//   - converter
//   - report
//
// =============================================================================

package types

// =============================================================================
// OUTPUT TYPES
// =============================================================================

// QueryRecord is one converted query as it appears in the JSON output.
//
// The source XML also carries fetchSize and isNamed attributes; those are
// deliberately excluded from the output for compatibility with the expected
// artifact format. The parser still decodes them, so they can be surfaced
// later if a consumer contract ever requires it.
type QueryRecord struct {
	// ID is the query identifier, e.g. "B47SA508_1.select".
	ID string `json:"id"`

	// Desc is the normalized query description.
	Desc string `json:"desc"`

	// FileName is the base name of the source file.
	FileName string `json:"file_name"`

	// QueryMapDesc is the normalized description of the whole query map,
	// taken from the root element's desc attribute.
	QueryMapDesc string `json:"query_map_desc"`

	// Query is the SQL fragment, edge-trimmed and re-wrapped in a synthetic
	// CDATA marker. Interior line breaks and indentation are preserved.
	Query string `json:"query"`
}

// QueryMap maps query ids to their records. Later queries with a duplicate
// id overwrite earlier ones (last wins, document order).
type QueryMap map[string]QueryRecord

// ModuleMap is the successful conversion output:
// module code -> query id -> record.
type ModuleMap map[string]QueryMap

// =============================================================================
// CONVERSION RESULT
// =============================================================================

// ConversionResult is the outcome of parsing one query-map document. It is
// a success/error union: exactly one of Modules and Err is meaningful.
// Failures never propagate as panics; they are captured here and serialized
// as an {"error": ...} payload.
type ConversionResult struct {
	// Modules holds the converted queries. Nil when Err is set.
	Modules ModuleMap

	// Err is the captured failure message. Empty on success.
	Err string
}

// IsError reports whether the result carries a captured failure instead of
// converted queries.
func (r *ConversionResult) IsError() bool {
	return r.Err != ""
}

// Payload returns the JSON-serializable form of the result: the module
// mapping on success, or {"error": message} on failure.
func (r *ConversionResult) Payload() any {
	if r.IsError() {
		return map[string]string{"error": r.Err}
	}
	return r.Modules
}

// QueryCount returns the total number of converted queries across all
// modules. Zero for error-shaped results.
func (r *ConversionResult) QueryCount() int {
	count := 0
	for _, queries := range r.Modules {
		count += len(queries)
	}
	return count
}
