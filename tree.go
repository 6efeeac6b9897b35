package conf

import "strings"

// Kind discriminates the outcome of a Lookup.
type Kind int

const (
	// Absent means no node exists at the path.
	Absent Kind = iota
	// Value means the path resolves to a key with exactly one value.
	Value
	// List means the path resolves to a key with multiple values.
	List
	// SubTree means the path resolves to a section.
	SubTree
)

// Result is the tagged outcome of Tree.Lookup. Callers branch on
// Kind and use the accessor matching it; mismatched accessors report
// their zero value rather than failing.
type Result struct {
	kind   Kind
	values []string
	tree   *Tree
}

// Kind reports which variant the result holds.
func (r Result) Kind() Kind { return r.kind }

// Value returns the first value and true when the result is a Value or
// List, "" and false otherwise.
func (r Result) Value() (string, bool) {
	if r.kind == Value || r.kind == List {
		return r.values[0], true
	}

	return "", false
}

// Values returns a copy of all values in insertion order; nil unless
// the result is a Value or List.
func (r Result) Values() []string {
	if len(r.values) == 0 {
		return nil
	}

	values := make([]string, len(r.values))
	copy(values, r.values)

	return values
}

// Tree returns the resolved section, or nil unless the result is a
// SubTree.
func (r Result) Tree() *Tree { return r.tree }

// node is one namespace entry: exactly one of values and tree is set.
type node struct {
	values []string
	tree   *Tree
}

// Tree is a section of the configuration namespace: an ordered mapping
// from child name to either a nested Tree or a value list. A Tree is
// built once from a record stream and is read-only afterwards, so it
// is safe to share across goroutines without synchronization.
type Tree struct {
	names    []string
	children map[string]*node
}

func newSection() *Tree {
	return &Tree{children: make(map[string]*node)}
}

// NewTree builds a Tree from the records a Parser produced. It never
// fails: malformed input was already reported as Diagnostics, and any
// structural oddity left in the stream resolves by the later
// occurrence winning the name.
func NewTree(records []Record) *Tree {
	root := newSection()

	for _, record := range records {
		section := root.ensureSection(record.Section)

		if record.Kind == KeyValueRecord {
			section.addValue(record.Key, record.Value)
		}
	}

	return root
}

// ensureSection descends the path from t, creating missing sections.
// A value node in the way is overwritten by a section: later
// occurrence wins the node kind.
func (t *Tree) ensureSection(path []string) *Tree {
	current := t

	for _, name := range path {
		child, exists := current.children[name]
		if !exists {
			child = &node{tree: newSection()}
			current.children[name] = child
			current.names = append(current.names, name)
		} else if child.tree == nil {
			child.tree = newSection()
			child.values = nil
		}

		current = child.tree
	}

	return current
}

func (t *Tree) addValue(key, value string) {
	child, exists := t.children[key]
	if !exists {
		t.children[key] = &node{values: []string{value}}
		t.names = append(t.names, key)

		return
	}

	if child.tree != nil {
		// Key-value reuses a section name: the key wins.
		child.tree = nil
		child.values = nil
	}

	child.values = append(child.values, value)
}

// Lookup resolves a dotted path against the tree. The empty path
// resolves to the tree itself. Lookup never fails and does not mutate
// the tree.
func (t *Tree) Lookup(path string) Result {
	if t == nil {
		return Result{}
	}

	if path == "" {
		return Result{kind: SubTree, tree: t}
	}

	current := t

	segments := strings.Split(path, DefaultScopeSeparator)
	for i, segment := range segments {
		child, exists := current.children[segment]
		if !exists {
			return Result{}
		}

		last := i == len(segments)-1

		if child.tree != nil {
			if last {
				return Result{kind: SubTree, tree: child.tree}
			}

			current = child.tree

			continue
		}

		if !last {
			// A value cannot be descended into.
			return Result{}
		}

		kind := Value
		if len(child.values) > 1 {
			kind = List
		}

		return Result{kind: kind, values: child.values}
	}

	return Result{}
}

// Get returns the first value at path and true, or "" and false when
// the path is absent or names a section.
func (t *Tree) Get(path string) (string, bool) {
	return t.Lookup(path).Value()
}

// GetDefault returns the first value at path, or def unchanged when
// the path is absent or names a section.
func (t *Tree) GetDefault(path, def string) string {
	if value, ok := t.Get(path); ok {
		return value
	}

	return def
}

// GetList returns all values at path in file order. It returns an
// empty list when the path is absent or names a section.
func (t *Tree) GetList(path string) []string {
	return t.Lookup(path).Values()
}

// Sub returns the section at path so further lookups can be made
// relative to it, or nil when the path is absent or names a key.
func (t *Tree) Sub(path string) *Tree {
	return t.Lookup(path).Tree()
}

// Keys enumerates the direct child names of the section in insertion
// order, both keys and nested sections.
func (t *Tree) Keys() []string {
	if t == nil || len(t.names) == 0 {
		return nil
	}

	names := make([]string, len(t.names))
	copy(names, t.names)

	return names
}
