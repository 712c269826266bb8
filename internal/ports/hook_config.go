package ports

import "hooksync/internal/types"

// HookConfigPort reads and writes a pre-commit configuration file.
type HookConfigPort interface {
	LoadConfig(path string) (types.HookConfig, error)
	WriteConfig(path string, content []byte) error
}
