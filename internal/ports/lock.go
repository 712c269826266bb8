//go:generate go run go.uber.org/mock/mockgen@v0.5.2 -source=lock.go -destination=mock_lock.gen.go -package=ports

package ports

import "hooksync/internal/types"

// LockReaderPort reads a dependency lock file into resolved entries.
type LockReaderPort interface {
	LoadLock(path string) (types.LockFile, error)
}
