package app

import "hooksync/internal/types"

type SyncRequest struct {
	LockPaths    []string
	ConfigPath   string
	MappingPaths []string
	All          bool
	Skip         []string
	DryRun       bool
}

type SyncResult struct {
	Changed bool
	Written bool
	Updates []types.RevUpdate
}

// ExitCode is 1 when at least one revision changed and 0 otherwise.
func (r SyncResult) ExitCode() int {
	if r.Changed {
		return 1
	}
	return 0
}
