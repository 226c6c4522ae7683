// =============================================================================
// glue_sql to JSON Converter - Query Map Parser
// =============================================================================
//
// This module parses one XML query-map document into the nested mapping
// {module_code: {query_id: record}}.
//
// INPUT FORMAT:
//   <queryMap desc="...">
//     <query id="B47SA508_1.select" desc="..." fetchSize="100" isNamed="N">
//       <![CDATA[ SELECT ... ]]>
//     </query>
//   </queryMap>
//
// The SQL body may appear as a real CDATA section, as escaped CDATA markers
// inside a child element, or as plain element text. Resolution order is:
//   1. First child element whose tag or text contains "CDATA"; if its text
//      carries a literal <![CDATA[ ... ]]> wrapper, the inner content is
//      extracted (non-greedy, spanning newlines), else the text verbatim.
//   2. The query element's own character data.
//   3. Empty body (still wrapped with CDATA markers in the output).
//
// ERROR POLICY:
//   Parse never panics and never returns a Go error. Every failure is
//   captured and returned as an error-shaped ConversionResult so that batch
//   runs always produce an output artifact per input. A diagnostic is also
//   printed for the operator.
//
// =============================================================================

package queryparser

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/ginjaninja78/XML-to-JSON-conversion/internal/types"
)

// =============================================================================
// XML DOCUMENT STRUCTURES
// =============================================================================

// queryMapXML is the decoded root element. The root's tag name does not
// matter; only its desc attribute and direct query children are read.
type queryMapXML struct {
	XMLName xml.Name
	Desc    string     `xml:"desc,attr"`
	Queries []queryXML `xml:"query"`
}

// queryXML is one decoded <query> element. FetchSize and IsNamed are
// decoded but excluded from the output (see types.QueryRecord).
type queryXML struct {
	ID        string     `xml:"id,attr"`
	Desc      string     `xml:"desc,attr"`
	FetchSize string     `xml:"fetchSize,attr"`
	IsNamed   string     `xml:"isNamed,attr"`
	Text      string     `xml:",chardata"`
	Children  []childXML `xml:",any"`
}

// childXML is any direct child element of a query, carried along with its
// character data so the body resolver can inspect it.
type childXML struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// =============================================================================
// BODY RESOLUTION
// =============================================================================

// bodyKind tags the source of a query body.
type bodyKind int

const (
	// bodyAbsent means the query carried no body at all.
	bodyAbsent bodyKind = iota

	// bodyCDATA means the body came from a CDATA-bearing child element.
	bodyCDATA

	// bodyPlain means the body is the query element's own character data.
	// Note that encoding/xml folds real <![CDATA[...]]> sections into
	// character data, so the common well-formed case lands here.
	bodyPlain
)

// queryBody is the resolved body source for one query element.
type queryBody struct {
	kind bodyKind
	text string
}

// cdataWrapper extracts the inner content of a literal CDATA wrapper,
// non-greedy and spanning newlines.
var cdataWrapper = regexp.MustCompile(`(?s)<!\[CDATA\[(.*?)\]\]>`)

// resolveBody locates the SQL body of a query element in a single pass over
// its child elements. The first child whose tag name or text contains
// "CDATA" wins; scanning stops there.
func resolveBody(q queryXML) queryBody {
	for _, child := range q.Children {
		if !strings.Contains(child.XMLName.Local, "CDATA") &&
			!strings.Contains(child.Text, "CDATA") {
			continue
		}
		if m := cdataWrapper.FindStringSubmatch(child.Text); m != nil {
			return queryBody{kind: bodyCDATA, text: m[1]}
		}
		return queryBody{kind: bodyCDATA, text: child.Text}
	}

	if q.Text != "" {
		return queryBody{kind: bodyPlain, text: q.Text}
	}

	return queryBody{kind: bodyAbsent}
}

// =============================================================================
// PARSING
// =============================================================================

// Parse reads the query-map document at path and converts it into a
// ConversionResult. It never panics; malformed XML, unreadable files and
// any other failure come back as an error-shaped result, with a diagnostic
// printed to stderr.
func Parse(path string) *types.ConversionResult {
	fileName := filepath.Base(path)

	data, err := os.ReadFile(path)
	if err != nil {
		return failure("read error: %v", err)
	}

	var doc queryMapXML
	if err := xml.Unmarshal(data, &doc); err != nil {
		return failure("XML parse error: %v", err)
	}

	moduleCode := ModuleCode(fileName)
	queryMapDesc := Normalize(doc.Desc)

	result := &types.ConversionResult{
		Modules: types.ModuleMap{
			moduleCode: types.QueryMap{},
		},
	}

	for _, q := range doc.Queries {
		body := resolveBody(q)

		record := types.QueryRecord{
			ID:           q.ID,
			Desc:         Normalize(q.Desc),
			FileName:     fileName,
			QueryMapDesc: queryMapDesc,
			Query:        WrapCDATA(strings.TrimSpace(body.text)),
		}

		// Mapping semantics: a later query with the same id overwrites an
		// earlier one.
		result.Modules[moduleCode][q.ID] = record
	}

	return result
}

// failure prints a diagnostic and builds the error-shaped result that is
// still serialized to the output file.
func failure(format string, args ...any) *types.ConversionResult {
	message := fmt.Sprintf(format, args...)
	fmt.Fprintln(os.Stderr, message)
	return &types.ConversionResult{Err: message}
}
