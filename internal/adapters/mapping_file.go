package adapters

import (
	"os"
	"strings"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"hooksync/internal/ports"
	"hooksync/internal/shared"
	"hooksync/internal/types"
)

// MappingFileAdapter implements MappingSourcePort using layered mapping
// files. JSON mapping files are read as YAML.
type MappingFileAdapter struct{}

func NewMappingFileAdapter() MappingFileAdapter {
	return MappingFileAdapter{}
}

// LoadMapping returns the built-in table when paths is empty. Otherwise the
// files replace it, and keys in later files override earlier ones.
func (a MappingFileAdapter) LoadMapping(paths []string) (ports.MappingPort, error) {
	if len(paths) == 0 {
		return DefaultMappingTable(), nil
	}
	merged := make(map[string]types.RepoMapping)
	for _, path := range paths {
		if err := a.loadLayer(path, merged); err != nil {
			return nil, err
		}
	}
	return NewMappingTable(merged), nil
}

func (a MappingFileAdapter) loadLayer(path string, merged map[string]types.RepoMapping) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("mapping file not found: " + path).
			WithCause(err)
	}

	var file types.MappingFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("mapping file is malformed: " + path).
			WithCause(err)
	}

	for name, mapping := range file {
		key := shared.NormalizePipName(name)
		if key == "" {
			continue
		}
		mapping.Repo = strings.TrimSpace(mapping.Repo)
		if mapping.Repo == "" {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("mapping file is malformed: " + path + ": '" + name + "' has no repo")
		}
		if mapping.Rev != "" && !strings.Contains(mapping.Rev, types.RevPlaceholder) {
			return errbuilder.New().
				WithCode(errbuilder.CodeInvalidArgument).
				WithMsg("mapping file is malformed: " + path + ": rev of '" + name + "' does not contain " + types.RevPlaceholder)
		}
		if _, exists := merged[key]; exists {
			log.Debug().
				Str("dependency", key).
				Str("layer", path).
				Msg("mapping overridden by later file")
		}
		merged[key] = mapping
	}

	log.Debug().
		Str("path", path).
		Int("entries", len(file)).
		Int("total", len(merged)).
		Msg("mapping file loaded")
	return nil
}

var _ ports.MappingSourcePort = MappingFileAdapter{}
