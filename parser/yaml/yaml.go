package yaml

import (
	"fmt"
	"strings"

	conf "github.com/0xalexb/hjarta-conf"

	"github.com/goccy/go-yaml"
)

// Parser implements the conf.Parser interface for YAML documents.
type Parser struct{}

// NewParser creates a new YAML frontend instance.
func NewParser() *Parser {
	return &Parser{}
}

// Parse decodes a YAML mapping and lowers it into a record stream.
// Decode and structure problems become diagnostics; Parse itself never
// fails.
func (p *Parser) Parse(data []byte) ([]conf.Record, []conf.Diagnostic) {
	if len(data) == 0 {
		return nil, nil
	}

	var doc any

	err := yaml.UnmarshalWithOptions(data, &doc, yaml.UseOrderedMap())
	if err != nil {
		return nil, []conf.Diagnostic{{Line: 1, Message: fmt.Sprintf("yaml: %v", err)}}
	}

	mapping, ok := doc.(yaml.MapSlice)
	if !ok {
		if doc == nil {
			return nil, nil
		}

		return nil, []conf.Diagnostic{{Line: 1, Message: "yaml: top-level node is not a mapping"}}
	}

	var lowerer lowerer
	lowerer.mapping(mapping, nil)

	return lowerer.records, lowerer.diagnostics
}

type lowerer struct {
	records     []conf.Record
	diagnostics []conf.Diagnostic
}

func (l *lowerer) mapping(mapping yaml.MapSlice, path []string) {
	if len(path) > 0 {
		l.records = append(l.records, conf.Record{Kind: conf.SectionRecord, Section: path})
	}

	for _, item := range mapping {
		key := scalar(item.Key)

		switch value := item.Value.(type) {
		case yaml.MapSlice:
			l.mapping(value, appendPath(path, key))
		case []any:
			l.sequence(value, path, key)
		default:
			l.keyValue(path, key, scalar(value))
		}
	}
}

func (l *lowerer) sequence(values []any, path []string, key string) {
	for _, value := range values {
		if _, nested := value.(yaml.MapSlice); nested {
			l.diagnostics = append(l.diagnostics, conf.Diagnostic{
				Line:    1,
				Message: fmt.Sprintf("yaml: mapping inside sequence %q is not supported", strings.Join(appendPath(path, key), ".")),
			})

			continue
		}

		l.keyValue(path, key, scalar(value))
	}
}

func (l *lowerer) keyValue(path []string, key, value string) {
	l.records = append(l.records, conf.Record{
		Kind:    conf.KeyValueRecord,
		Section: path,
		Key:     key,
		Value:   value,
	})
}

func appendPath(path []string, name string) []string {
	return append(append([]string{}, path...), name)
}

// scalar renders a decoded YAML scalar verbatim as a string. Values
// are strings or lists of strings in the tree model; consumers
// interpret them.
func scalar(value any) string {
	if value == nil {
		return ""
	}

	if s, ok := value.(string); ok {
		return s
	}

	return fmt.Sprint(value)
}
