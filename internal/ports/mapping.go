//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=mapping.go -destination=mock_mapping.gen.go -package=ports

package ports

import "hooksync/internal/types"

// MappingPort looks up the hook repository a dependency is run from.
//
// Implementations are read-only for the duration of a sync. Names returns
// every dependency the table knows about; Lookup misses are not errors.
type MappingPort interface {
	Names() []string
	Lookup(name string) (types.RepoMapping, bool)
}

// MappingSourcePort builds a MappingPort from custom mapping files, or
// returns the built-in table when no files are given.
type MappingSourcePort interface {
	LoadMapping(paths []string) (MappingPort, error)
}
