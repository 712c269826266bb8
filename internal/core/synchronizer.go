package core

import (
	"context"

	"github.com/rs/zerolog/log"

	"hooksync/internal/ports"
	"hooksync/internal/shared"
	"hooksync/internal/types"
)

// SyncOptions selects which lock entries may move a pinned revision.
type SyncOptions struct {
	// All admits main-class dependencies. Dev-class dependencies are
	// always eligible.
	All  bool
	Skip []string
}

type Synchronizer struct {
	Mapping ports.MappingPort
}

func NewSynchronizer(mapping ports.MappingPort) Synchronizer {
	return Synchronizer{Mapping: mapping}
}

// Plan returns the revision updates that bring config in line with lock.
// Mapped names missing from the lock or from the config are skipped
// without error. Updates come out in mapping name order; when two names
// map to the same repo the first name owns its rev.
func (s Synchronizer) Plan(ctx context.Context, lock types.LockFile, config types.HookConfig, opts SyncOptions) []types.RevUpdate {
	skip := make(map[string]struct{}, len(opts.Skip))
	for _, name := range opts.Skip {
		skip[shared.NormalizePipName(name)] = struct{}{}
	}

	var updates []types.RevUpdate
	owned := map[int]struct{}{}
	for _, name := range s.Mapping.Names() {
		if _, ok := skip[shared.NormalizePipName(name)]; ok {
			log.Ctx(ctx).Debug().Str("dependency", name).Msg("skipped by request")
			continue
		}
		entry, ok := lock.Lookup(name)
		if !ok {
			continue
		}
		if entry.Class == types.DependencyClassMain && !opts.All {
			log.Ctx(ctx).Debug().Str("dependency", name).Msg("main dependency ignored without --all")
			continue
		}
		mapping, ok := s.Mapping.Lookup(name)
		if !ok {
			continue
		}
		rev := mapping.RenderRev(entry.Version)
		for _, repo := range config.Repos {
			if repo.Repo != mapping.Repo || !repo.HasRev {
				continue
			}
			if _, ok := owned[repo.Index]; ok {
				if repo.Rev != rev {
					log.Ctx(ctx).Warn().Str("dependency", name).Str("repo", repo.Repo).Msg("repo already pinned by another dependency")
				}
				continue
			}
			// The first name matching a repo owns it, even when no update is needed.
			owned[repo.Index] = struct{}{}
			if repo.Rev == rev {
				continue
			}
			updates = append(updates, types.RevUpdate{
				Dependency: name,
				Class:      entry.Class,
				RepoIndex:  repo.Index,
				Repo:       repo.Repo,
				From:       repo.Rev,
				To:         rev,
				Line:       repo.Line,
			})
		}
	}
	log.Ctx(ctx).Debug().Int("updates", len(updates)).Msg("sync plan computed")
	return updates
}
