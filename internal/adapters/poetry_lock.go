package adapters

import (
	"fmt"
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/pelletier/go-toml/v2"
	"github.com/rs/zerolog/log"

	"hooksync/internal/ports"
	"hooksync/internal/shared"
	"hooksync/internal/types"
)

// PoetryLockAdapter reads poetry.lock files.
type PoetryLockAdapter struct{}

func NewPoetryLockAdapter() PoetryLockAdapter {
	return PoetryLockAdapter{}
}

type poetryLock struct {
	Package  *[]poetryPackage `toml:"package"`
	Metadata poetryMetadata   `toml:"metadata"`
}

type poetryPackage struct {
	Name     string   `toml:"name"`
	Version  string   `toml:"version"`
	Category string   `toml:"category"`
	Groups   []string `toml:"groups"`
}

type poetryMetadata struct {
	LockVersion string `toml:"lock-version"`
}

func (a PoetryLockAdapter) LoadLock(path string) (types.LockFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.LockFile{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("lock file not found: " + path).
			WithCause(err)
	}
	return parsePoetryLock(path, data)
}

func parsePoetryLock(path string, data []byte) (types.LockFile, error) {
	var lock poetryLock
	if err := toml.Unmarshal(data, &lock); err != nil {
		return types.LockFile{}, lockParseError(path, "invalid toml", err)
	}
	if lock.Package == nil {
		return types.LockFile{}, lockParseError(path, "missing package list", nil)
	}
	entries := make(map[string]types.LockEntry, len(*lock.Package))
	for i, pkg := range *lock.Package {
		name := strings.TrimSpace(pkg.Name)
		version := strings.TrimSpace(pkg.Version)
		if name == "" {
			return types.LockFile{}, lockParseError(path, fmt.Sprintf("package #%d has no name", i+1), nil)
		}
		if version == "" {
			return types.LockFile{}, lockParseError(path, "package "+name+" has no version", nil)
		}
		class, err := parseDependencyClass(pkg.Category, pkg.Groups)
		if err != nil {
			return types.LockFile{}, lockParseError(path, "package "+name, err)
		}
		entries[shared.NormalizePipName(name)] = types.LockEntry{
			Name:    name,
			Version: version,
			Class:   class,
		}
	}
	log.Debug().
		Str("path", path).
		Str("lock_version", lock.Metadata.LockVersion).
		Int("packages", len(entries)).
		Msg("lock file loaded")
	return types.LockFile{Path: path, Entries: entries}, nil
}

// parseDependencyClass maps a Poetry category to a class. Lock files
// written by Poetry 2 list dependency groups instead; a package only in
// groups other than main is dev, matching the category older Poetry
// releases wrote. Without either field a package is main.
func parseDependencyClass(category string, groups []string) (types.DependencyClass, error) {
	category = strings.ToLower(strings.TrimSpace(category))
	if category == "" {
		if len(groups) == 0 {
			return types.DependencyClassMain, nil
		}
		for _, group := range groups {
			if strings.ToLower(strings.TrimSpace(group)) == string(types.DependencyClassMain) {
				return types.DependencyClassMain, nil
			}
		}
		return types.DependencyClassDev, nil
	}
	switch category {
	case string(types.DependencyClassMain):
		return types.DependencyClassMain, nil
	case string(types.DependencyClassDev):
		return types.DependencyClassDev, nil
	default:
		return "", fmt.Errorf("unknown category %q", category)
	}
}

func lockParseError(path string, detail string, cause error) error {
	builder := errbuilder.New().
		WithCode(errbuilder.CodeInvalidArgument).
		WithMsg("lock file is malformed: " + path + ": " + detail)
	if cause != nil {
		builder = builder.WithCause(cause)
	}
	return builder
}

var _ ports.LockReaderPort = PoetryLockAdapter{}
