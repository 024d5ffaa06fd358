// Package domain contains the core test data generation logic.
package domain

import (
	"fmt"
	"iter"
	"sort"

	m "github.com/casegen-dev/casegen/internal/model"
)

// Counter numbers the variants of one family, starting at 1. Every registry
// entry owns its own counter, so numbering is independent across families and
// stable within one process run.
type Counter int

// Next increments the counter and returns the new value.
func (c *Counter) Next() int {
	*c++

	return int(*c)
}

// Variant is one rule for building a single test case. Concrete variants are
// created transiently, once per case, and discarded after the record is built.
type Variant interface {
	// Args returns the ordered argument list for the generated case.
	Args() []string
	// Description returns the numbered human readable case description.
	Description() string
	// Function returns the name of the function under test.
	Function() string
}

// Base carries the identity shared by every variant of one family. Concrete
// variants embed it and implement Args.
type Base struct {
	Title string // family title, constant per family
	Func  string // function under test
	Desc  string // short per-instance description suffix
	Count int    // case number assigned at construction
}

// Args returns no arguments. Concrete variants override this with their
// domain specific parameters.
func (b Base) Args() []string { return nil }

// Function returns the name of the function under test.
func (b Base) Function() string { return b.Func }

// Description returns "{Title} #{Count} {Desc}".
func (b Base) Description() string {
	return fmt.Sprintf("%s #%d %s", b.Title, b.Count, b.Desc)
}

// MakeCase builds the test case record for a variant.
func MakeCase(v Variant) m.TestCase {
	return m.TestCase{
		Description: v.Description(),
		Function:    v.Function(),
		Arguments:   v.Args(),
	}
}

// EnumerateFunc emits every case one family produces. The counter is the
// family's own; implementations thread it into their variant constructors. An
// enumerator may itself compose other enumerators, so families can nest.
type EnumerateFunc func(c *Counter) iter.Seq[m.TestCase]

// family is one registry entry: a named enumerator bound to an output file
// basename, owning the counter its variants are numbered with.
type family struct {
	name      string
	basename  string
	enumerate EnumerateFunc
	counter   Counter
}

// Registry holds an ordered set of variant families. Families are enumerated
// in lexicographic order of family name; each family controls its own
// internal case order.
type Registry struct {
	families []*family
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Register adds a variant family. Registering the same name twice is a
// programming error and panics.
func (r *Registry) Register(name, basename string, enumerate EnumerateFunc) {
	for _, f := range r.families {
		if f.name == name {
			panic(fmt.Sprintf("variant family %q already registered", name))
		}
	}

	r.families = append(r.families, &family{name: name, basename: basename, enumerate: enumerate})
	sort.Slice(r.families, func(i, j int) bool { return r.families[i].name < r.families[j].name })
}

// GenerateTests returns a lazy single-pass sequence over every registered
// family, in lexicographic family name order, forwarding every case each
// enumerator yields.
func (r *Registry) GenerateTests() iter.Seq[m.TestCase] {
	return chain(r.families)
}

func chain(families []*family) iter.Seq[m.TestCase] {
	return func(yield func(m.TestCase) bool) {
		for _, f := range families {
			for tc := range f.enumerate(&f.counter) {
				if !yield(tc) {
					return
				}
			}
		}
	}
}

// Producer yields the test cases for one target file. Producers needing extra
// context close over it at registration time.
type Producer func() iter.Seq[m.TestCase]

// Targets derives the target table from the registry: one producer per
// distinct file basename, chaining every family registered under it in
// family name order. Callers treat the table as read-only.
func (r *Registry) Targets() map[string]Producer {
	grouped := make(map[string][]*family)
	for _, f := range r.families {
		grouped[f.basename] = append(grouped[f.basename], f)
	}

	targets := make(map[string]Producer, len(grouped))
	for basename, families := range grouped {
		targets[basename] = func() iter.Seq[m.TestCase] { return chain(families) }
	}

	return targets
}

// defaultRegistry collects every family registered at package init time.
var defaultRegistry = NewRegistry()

// RegisterFamily adds a variant family to the process-wide registry, usually
// from an init function in the package defining the family. That is all a new
// family needs to be picked up by every future enumeration.
func RegisterFamily(name, basename string, enumerate EnumerateFunc) {
	defaultRegistry.Register(name, basename, enumerate)
}

// GenerateTests enumerates every family in the process-wide registry.
func GenerateTests() iter.Seq[m.TestCase] {
	return defaultRegistry.GenerateTests()
}

// Targets derives the target table of the process-wide registry.
func Targets() map[string]Producer {
	return defaultRegistry.Targets()
}
