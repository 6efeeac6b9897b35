// Package yaml provides a YAML frontend for the conf package.
//
// This package uses github.com/goccy/go-yaml with ordered-map decoding
// so records are emitted in document order. A YAML mapping lowers into
// the same record stream the native line parser produces: nested
// mappings become sections, scalars become key-value pairs, and a
// sequence of scalars becomes a repeated key, matching the native
// format's value-list accumulation.
//
// Usage:
//
//	cf := conf.New("app.yaml", conf.WithParser(yaml.NewParser()))
package yaml
