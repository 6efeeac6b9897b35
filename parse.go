package conf

import (
	"fmt"
	"strings"
)

// Default syntax constants for the native line-oriented format.
const (
	DefaultDelimiter      = "="
	DefaultScopeSeparator = "."
	DefaultQuote          = '"'
)

// DefaultCommentMarkers are the prefixes that mark a whole-line comment.
//
//nolint:gochecknoglobals // fixed syntax table, only replaced via options.
var DefaultCommentMarkers = []string{"#", "//"}

// LineParser parses the native INI-like format: blank lines and
// comment lines are skipped, "[a.b]" lines open a section, and the
// first delimiter on a line splits it into key and value. It
// implements the Parser interface.
//
// The zero value is not usable; construct with NewLineParser.
type LineParser struct {
	commentMarkers []string
	delimiter      string
	scopeSeparator string
}

// ParserOption defines a function type for configuring a LineParser.
type ParserOption func(*LineParser)

// WithCommentMarkers replaces the prefixes treated as whole-line
// comments. Unusual values here may break parsing of otherwise valid
// files.
func WithCommentMarkers(markers ...string) ParserOption {
	return func(p *LineParser) {
		p.commentMarkers = markers
	}
}

// WithDelimiter replaces the key/value delimiter (default "=").
func WithDelimiter(delimiter string) ParserOption {
	return func(p *LineParser) {
		p.delimiter = delimiter
	}
}

// WithScopeSeparator replaces the separator used inside section
// headers and scoped keys (default ".").
func WithScopeSeparator(separator string) ParserOption {
	return func(p *LineParser) {
		p.scopeSeparator = separator
	}
}

// NewLineParser creates a parser for the native format with the given
// syntax overrides applied.
func NewLineParser(opts ...ParserOption) *LineParser {
	parser := &LineParser{
		commentMarkers: DefaultCommentMarkers,
		delimiter:      DefaultDelimiter,
		scopeSeparator: DefaultScopeSeparator,
	}

	for _, apply := range opts {
		apply(parser)
	}

	return parser
}

// Parse splits data into lines and turns each non-blank, non-comment
// line into a Record. Problems become Diagnostics carrying the
// 1-indexed line number; parsing always continues to the end of the
// input. Parse has no side effects and is safe for concurrent use.
func (p *LineParser) Parse(data []byte) ([]Record, []Diagnostic) {
	var (
		records     []Record
		diagnostics []Diagnostic
	)

	// Current section path, threaded through the loop. Starts as the
	// empty path: keys before the first header land in the top-level
	// section.
	var currentSection []string

	lines := strings.Split(string(data), "\n")

	for i, raw := range lines {
		lineNum := i + 1

		line := strings.TrimSpace(raw)
		if line == "" || p.isComment(line) {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			path, ok := p.splitScope(line[1 : len(line)-1])
			if !ok {
				diagnostics = append(diagnostics, Diagnostic{Line: lineNum, Message: "empty section segment"})

				continue
			}

			currentSection = path
			records = append(records, Record{Kind: SectionRecord, Section: path, Line: lineNum})

			continue
		}

		if delim := strings.Index(line, p.delimiter); delim >= 0 {
			key := strings.TrimSpace(line[:delim])
			if key == "" {
				diagnostics = append(diagnostics, Diagnostic{Line: lineNum, Message: "empty key"})

				continue
			}

			keyPath, ok := p.splitScope(key)
			if !ok {
				diagnostics = append(diagnostics, Diagnostic{Line: lineNum, Message: fmt.Sprintf("empty scope segment in key %q", key)})

				continue
			}

			section := currentSection
			if len(keyPath) > 1 {
				// Scoped key: leading segments extend the section path.
				section = append(append([]string{}, currentSection...), keyPath[:len(keyPath)-1]...)
			}

			value := unquote(strings.TrimSpace(line[delim+len(p.delimiter):]))

			records = append(records, Record{
				Kind:    KeyValueRecord,
				Section: section,
				Key:     keyPath[len(keyPath)-1],
				Value:   value,
				Line:    lineNum,
			})

			continue
		}

		diagnostics = append(diagnostics, Diagnostic{Line: lineNum, Message: fmt.Sprintf("unrecognized line %q", line)})
	}

	return records, diagnostics
}

func (p *LineParser) isComment(line string) bool {
	for _, marker := range p.commentMarkers {
		if strings.HasPrefix(line, marker) {
			return true
		}
	}

	return false
}

// splitScope splits a header interior or a key on the scope separator
// and trims each segment. It reports false if any segment is empty.
func (p *LineParser) splitScope(s string) ([]string, bool) {
	segments := strings.Split(s, p.scopeSeparator)

	for i, segment := range segments {
		segment = strings.TrimSpace(segment)
		if segment == "" {
			return nil, false
		}

		segments[i] = segment
	}

	return segments, true
}

// unquote strips one matching pair of double quotes wrapping the whole
// value. The inner text is taken verbatim; there is no escape
// processing.
func unquote(value string) string {
	if len(value) >= 2 && value[0] == DefaultQuote && value[len(value)-1] == DefaultQuote {
		return value[1 : len(value)-1]
	}

	return value
}
