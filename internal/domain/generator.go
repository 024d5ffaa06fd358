package domain

import (
	"fmt"
	"iter"
	"path"
	"sort"

	"github.com/casegen-dev/casegen/internal/adapter"
	m "github.com/casegen-dev/casegen/internal/model"
)

// DefaultDirectory is where generated data files land unless Options says
// otherwise.
const DefaultDirectory = "tests/suites"

// Options configures a Generator. The zero value selects the defaults.
type Options struct {
	// Directory is the output directory for generated .data files. Empty
	// falls back to DefaultDirectory.
	Directory string
}

// Generator owns a target table and writes generated suites through a data
// file store. It is built once per invocation and read-only afterwards.
type Generator struct {
	directory string
	targets   map[string]Producer
	store     adapter.DataFileStore
}

// NewGenerator creates a Generator over the given target table.
func NewGenerator(opts Options, targets map[string]Producer, store adapter.DataFileStore) *Generator {
	directory := opts.Directory
	if directory == "" {
		directory = DefaultDirectory
	}

	return &Generator{directory: directory, targets: targets, store: store}
}

// TargetNames returns every target name in sorted order.
func (g *Generator) TargetNames() []string {
	names := make([]string, 0, len(g.targets))
	for name := range g.targets {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// FilenameFor returns the location of the data file with the given base name.
// Data file locations are portable identifiers, so the result always uses
// forward slashes regardless of host platform.
func (g *Generator) FilenameFor(basename string) m.Path {
	return m.Path(path.Join(g.directory, basename+".data"))
}

// WriteTestDataFile writes the cases to the target's data file, consuming the
// sequence exactly once, in order. It returns the number of cases written.
func (g *Generator) WriteTestDataFile(basename string, cases iter.Seq[m.TestCase]) (int, error) {
	return g.store.WriteDataFile(g.FilenameFor(basename), cases)
}

// GenerateTarget generates all cases for one target and writes its data
// file. An unknown name is a configuration error that aborts the run.
func (g *Generator) GenerateTarget(name string) (int, error) {
	produce, ok := g.targets[name]
	if !ok {
		return 0, fmt.Errorf("unknown target %q", name)
	}

	return g.WriteTestDataFile(name, produce())
}
