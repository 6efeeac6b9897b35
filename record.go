package conf

import (
	"fmt"
	"strings"
)

// RecordKind discriminates the two record shapes a Parser emits.
type RecordKind int

const (
	// SectionRecord marks a section header line such as "[auth.ldap]".
	SectionRecord RecordKind = iota
	// KeyValueRecord marks a "key = value" line.
	KeyValueRecord
)

// Record is one structured line of configuration input. For a
// SectionRecord, Section holds the header's path and Key/Value are
// empty. For a KeyValueRecord, Section holds the path of the owning
// section (empty for the top-level section) and Key/Value hold the
// pair. Line is the 1-indexed source line the record came from; it is
// zero for records synthesized by non-line-oriented frontends.
type Record struct {
	Kind    RecordKind
	Section []string
	Key     string
	Value   string
	Line    int
}

func (r Record) String() string {
	if r.Kind == SectionRecord {
		return fmt.Sprintf("[%s]", strings.Join(r.Section, "."))
	}

	path := strings.Join(r.Section, ".")
	if path != "" {
		path += "."
	}

	return fmt.Sprintf("%s%s=%s", path, r.Key, r.Value)
}

// Diagnostic is a non-fatal parse problem. Line is 1-indexed; fetch
// failures reported through File use line 0 since they have no source
// position. Diagnostics are collected in arrival order and never carry
// control flow.
type Diagnostic struct {
	Line    int
	Message string
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %s", d.Line, d.Message)
}
