package types

import "hooksync/internal/shared"

type DependencyClass string

const (
	DependencyClassMain DependencyClass = "main"
	DependencyClassDev  DependencyClass = "dev"
)

// LockEntry is one resolved dependency read from a lock file.
type LockEntry struct {
	Name    string
	Version string
	Class   DependencyClass
}

// LockFile holds the entries of a parsed lock file keyed by normalized
// dependency name.
type LockFile struct {
	Path    string
	Entries map[string]LockEntry
}

// Lookup returns the entry for name, normalizing it the same way the
// lock reader normalizes keys.
func (f LockFile) Lookup(name string) (LockEntry, bool) {
	entry, ok := f.Entries[shared.NormalizePipName(name)]
	return entry, ok
}
