package toml

import (
	"errors"
	"fmt"
	"strings"

	conf "github.com/0xalexb/hjarta-conf"

	"github.com/BurntSushi/toml"
)

// Parser implements the conf.Parser interface for TOML documents.
type Parser struct{}

// NewParser creates a new TOML frontend instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a TOML document and lowers it into a record stream in
// the order keys appear in the file. Decode and structure problems
// become diagnostics; Parse itself never fails.
func (p *Parser) Parse(data []byte) ([]conf.Record, []conf.Diagnostic) {
	if len(data) == 0 {
		return nil, nil
	}

	var document map[string]any

	meta, err := toml.Decode(string(data), &document)
	if err != nil {
		return nil, []conf.Diagnostic{decodeDiagnostic(err)}
	}

	var (
		records     []conf.Record
		diagnostics []conf.Diagnostic
	)

	for _, key := range meta.Keys() {
		path := []string(key)

		value, found := resolve(document, path)
		if !found {
			continue
		}

		switch value := value.(type) {
		case map[string]any:
			records = append(records, conf.Record{Kind: conf.SectionRecord, Section: path})
		case []map[string]any:
			diagnostics = append(diagnostics, conf.Diagnostic{
				Line:    1,
				Message: fmt.Sprintf("toml: array of tables %q is not supported", key),
			})
		case []any:
			section, name := path[:len(path)-1], path[len(path)-1]

			for _, element := range value {
				if _, nested := element.(map[string]any); nested {
					diagnostics = append(diagnostics, conf.Diagnostic{
						Line:    1,
						Message: fmt.Sprintf("toml: table inside array %q is not supported", key),
					})

					continue
				}

				records = append(records, conf.Record{
					Kind:    conf.KeyValueRecord,
					Section: section,
					Key:     name,
					Value:   scalar(element),
				})
			}
		default:
			records = append(records, conf.Record{
				Kind:    conf.KeyValueRecord,
				Section: path[:len(path)-1],
				Key:     path[len(path)-1],
				Value:   scalar(value),
			})
		}
	}

	return records, diagnostics
}

// resolve descends the decoded document along path. Only mapping
// intermediates can be descended; anything else means the key belongs
// to an unsupported shape (e.g. an array of tables) and is skipped.
func resolve(document map[string]any, path []string) (any, bool) {
	var value any = document

	for _, segment := range path {
		mapping, ok := value.(map[string]any)
		if !ok {
			return nil, false
		}

		value, ok = mapping[segment]
		if !ok {
			return nil, false
		}
	}

	return value, true
}

// scalar renders a decoded TOML value verbatim as a string. Values are
// strings or lists of strings in the tree model; consumers interpret
// them.
func scalar(value any) string {
	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}

func decodeDiagnostic(err error) conf.Diagnostic {
	var parseErr toml.ParseError
	if errors.As(err, &parseErr) {
		return conf.Diagnostic{
			Line:    parseErr.Position.Line,
			Message: fmt.Sprintf("toml: %s", strings.TrimSpace(parseErr.Message)),
		}
	}

	return conf.Diagnostic{Line: 1, Message: fmt.Sprintf("toml: %v", err)}
}
