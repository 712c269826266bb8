package app

import (
	"context"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"

	"hooksync/internal/core"
	"hooksync/internal/ports"
)

// Sync updates the pinned revisions in the pre-commit config from each lock
// file in turn. The config is read fresh for every lock file and written
// only when that lock file produced at least one update.
func (s Service) Sync(ctx context.Context, req SyncRequest) (SyncResult, error) {
	configPath := strings.TrimSpace(req.ConfigPath)
	if configPath == "" {
		return SyncResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("pre-commit config path is required")
	}
	if len(req.LockPaths) == 0 {
		return SyncResult{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("at least one lock file is required")
	}
	mapping, err := s.MappingSource.LoadMapping(req.MappingPaths)
	if err != nil {
		return SyncResult{}, err
	}

	result := SyncResult{}
	for _, lockPath := range req.LockPaths {
		written, err := s.syncLock(ctx, lockPath, configPath, mapping, req, &result)
		if err != nil {
			return result, err
		}
		result.Written = result.Written || written
	}
	return result, nil
}

func (s Service) syncLock(ctx context.Context, lockPath string, configPath string, mapping ports.MappingPort, req SyncRequest, result *SyncResult) (bool, error) {
	lock, err := s.LockReader.LoadLock(lockPath)
	if err != nil {
		return false, err
	}
	config, err := s.HookConfig.LoadConfig(configPath)
	if err != nil {
		return false, err
	}

	synchronizer := core.NewSynchronizer(mapping)
	updates := synchronizer.Plan(ctx, lock, config, core.SyncOptions{All: req.All, Skip: req.Skip})
	if len(updates) == 0 {
		log.Ctx(ctx).Debug().Str("lock", lockPath).Msg("pre-commit config already in sync")
		return false, nil
	}

	content, err := core.Rewrite(ctx, config, updates)
	if err != nil {
		return false, err
	}
	msg := "rev updated"
	if req.DryRun {
		msg = "rev update planned"
	}
	for _, update := range updates {
		log.Ctx(ctx).Info().
			Str("dependency", update.Dependency).
			Str("repo", update.Repo).
			Str("from", update.From).
			Str("to", update.To).
			Int("line", update.Line).
			Msg(msg)
	}
	result.Changed = true
	result.Updates = append(result.Updates, updates...)

	if req.DryRun {
		return false, nil
	}
	if err := s.HookConfig.WriteConfig(configPath, content); err != nil {
		return false, err
	}
	return true, nil
}
