package arkparser

import (
	"strconv"
	"strings"
)

// NoneName is the distinguished sentinel that terminates property lists
// and object-header name arrays. It must never be emitted as a visible
// property name.
const NoneName = "None"

// Name is a (text, instance) pair, the interning primitive of the
// property system.
type Name struct {
	Text     string
	Instance int32
}

// String renders the canonical textual form: Text alone if Instance==0,
// else Text + "_" + (Instance-1).
func (n Name) String() string {
	if n.Instance == 0 {
		return n.Text
	}
	return n.Text + "_" + strconv.FormatInt(int64(n.Instance-1), 10)
}

// IsNone reports whether n is the sentinel name.
func (n Name) IsNone() bool { return n.Instance == 0 && n.Text == NoneName }

// NameTable resolves a (key, instance) pair read from the file into a Name.
// Two backends exist: DenseNameTable (Legacy, 1-based list) and
// SparseNameTable (Modern, hash-keyed map). Out-of-bounds/missing keys
// resolve to a diagnostic placeholder rather than failing, per spec.
type NameTable interface {
	Resolve(key, instance int32) Name
}

// DenseNameTable is a 1-based indexable list of interned strings, used by
// Legacy world saves (version >= 6).
type DenseNameTable struct {
	entries []string
}

// NewDenseNameTable wraps entries for 1-based lookup.
func NewDenseNameTable(entries []string) *DenseNameTable {
	return &DenseNameTable{entries: entries}
}

// Resolve implements NameTable.
func (t *DenseNameTable) Resolve(key, instance int32) Name {
	idx := int(key) - 1
	if idx < 0 || idx >= len(t.entries) {
		return Name{Text: placeholderName(key), Instance: instance}
	}
	return Name{Text: t.entries[idx], Instance: instance}
}

// SparseNameTable is a hash-keyed map of interned strings, used by Modern
// world saves. Keys are typically the trailing dotted-path segment's hash.
type SparseNameTable struct {
	entries map[int32]string
}

// NewSparseNameTable wraps entries for hash-key lookup.
func NewSparseNameTable(entries map[int32]string) *SparseNameTable {
	return &SparseNameTable{entries: entries}
}

// Resolve implements NameTable.
func (t *SparseNameTable) Resolve(key, instance int32) Name {
	if text, ok := t.entries[key]; ok {
		return Name{Text: text, Instance: instance}
	}
	return Name{Text: placeholderName(key), Instance: instance}
}

func placeholderName(key int32) string {
	return "UnknownName_" + strconv.FormatInt(int64(key), 10)
}

// ParseInlineName splits an inline string (no name table: Legacy
// profile/tribe/cloud, Modern v6 profile/tribe) on the trailing "_N"
// instance-suffix convention. A string ending in "_D" where D is a
// non-negative integer splits to (prefix, D+1); otherwise the whole
// string is the base with instance 0.
func ParseInlineName(s string) Name {
	idx := strings.LastIndexByte(s, '_')
	if idx < 0 || idx == len(s)-1 {
		return Name{Text: s, Instance: 0}
	}
	suffix := s[idx+1:]
	n, err := strconv.ParseInt(suffix, 10, 32)
	if err != nil || n < 0 {
		return Name{Text: s, Instance: 0}
	}
	return Name{Text: s[:idx], Instance: int32(n) + 1}
}
