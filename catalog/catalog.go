// Package catalog lists the examples together with their out-of-range input
// policy, notes about where C and Go semantics part, and a self check that
// exercises the example's documented properties.
package catalog

import (
	"io"
	"sort"

	jsoniter "github.com/json-iterator/go"
)

// -----------------------------------------------------------------------------

// Policy says how an example treats inputs outside its stated range.
type Policy int

const (
	PolicyTotal     Policy = iota // every input has a defined result
	PolicySentinel                // out of range inputs return a reserved value
	PolicyWrap                    // arithmetic reduces modulo 2^width
	PolicyUnchecked               // caller precondition, not verified
)

var policyNames = [...]string{
	PolicyTotal:     "total",
	PolicySentinel:  "sentinel",
	PolicyWrap:      "wrap",
	PolicyUnchecked: "unchecked",
}

func (p Policy) String() string {
	if p >= 0 && int(p) < len(policyNames) {
		return policyNames[p]
	}
	return "unknown"
}

func (p Policy) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// -----------------------------------------------------------------------------

// Categories of examples.
const (
	CatArith     = "arithmetic"
	CatMemory    = "memory"
	CatControl   = "control"
	CatAggregate = "aggregate"
	CatGeneric   = "polymorphism"
	CatIndirect  = "indirection"
)

// Entry describes one example.
type Entry struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Symbols  []string `json:"symbols"`
	Policy   Policy   `json:"policy"`
	Notes    string   `json:"notes,omitempty"`

	// Check exercises the example and returns an error on the first property
	// that does not hold.
	Check func() error `json:"-"`
}

var byName = make(map[string]*Entry)

func init() {
	for _, e := range entries {
		if _, ok := byName[e.Name]; ok {
			panic("catalog: duplicate entry " + e.Name)
		}
		byName[e.Name] = e
	}
}

// All returns every entry ordered by name. The slice is a copy; the entries
// are shared.
func All() []*Entry {
	return append([]*Entry(nil), entries...)
}

// Lookup returns the entry called name.
func Lookup(name string) (e *Entry, ok bool) {
	e, ok = byName[name]
	return
}

// Categories returns the distinct categories in use, sorted.
func Categories() []string {
	seen := make(map[string]bool)
	var cats []string
	for _, e := range entries {
		if !seen[e.Category] {
			seen[e.Category] = true
			cats = append(cats, e.Category)
		}
	}
	sort.Strings(cats)
	return cats
}

// -----------------------------------------------------------------------------

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Dump writes entries to w as indented JSON.
func Dump(w io.Writer, entries []*Entry) error {
	b, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}

// -----------------------------------------------------------------------------
