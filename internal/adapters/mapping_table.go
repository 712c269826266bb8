package adapters

import (
	"sort"

	"hooksync/internal/ports"
	"hooksync/internal/shared"
	"hooksync/internal/types"
)

// MappingTable is an in-memory MappingPort keyed by normalized dependency
// name.
type MappingTable struct {
	entries map[string]types.RepoMapping
}

func NewMappingTable(entries map[string]types.RepoMapping) MappingTable {
	table := MappingTable{entries: make(map[string]types.RepoMapping, len(entries))}
	for name, mapping := range entries {
		table.entries[shared.NormalizePipName(name)] = mapping
	}
	return table
}

// Names returns the mapped dependency names in sorted order.
func (t MappingTable) Names() []string {
	names := make([]string, 0, len(t.entries))
	for name := range t.entries {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (t MappingTable) Lookup(name string) (types.RepoMapping, bool) {
	mapping, ok := t.entries[shared.NormalizePipName(name)]
	return mapping, ok
}

// defaultMapping lists the hook repositories of Python tools commonly
// installed through Poetry and run from pre-commit.
var defaultMapping = map[string]types.RepoMapping{
	"autopep8":   {Repo: "https://github.com/pre-commit/mirrors-autopep8", Rev: "v${rev}"},
	"bandit":     {Repo: "https://github.com/PyCQA/bandit", Rev: "${rev}"},
	"black":      {Repo: "https://github.com/psf/black", Rev: "${rev}"},
	"commitizen": {Repo: "https://github.com/commitizen-tools/commitizen", Rev: "v${rev}"},
	"flake8":     {Repo: "https://github.com/pycqa/flake8", Rev: "${rev}"},
	"isort":      {Repo: "https://github.com/pycqa/isort", Rev: "${rev}"},
	"mypy":       {Repo: "https://github.com/pre-commit/mirrors-mypy", Rev: "v${rev}"},
	"pydocstyle": {Repo: "https://github.com/pycqa/pydocstyle", Rev: "${rev}"},
	"pylint":     {Repo: "https://github.com/pycqa/pylint", Rev: "v${rev}"},
	"pyupgrade":  {Repo: "https://github.com/asottile/pyupgrade", Rev: "v${rev}"},
	"ruff":       {Repo: "https://github.com/astral-sh/ruff-pre-commit", Rev: "v${rev}"},
	"yapf":       {Repo: "https://github.com/pre-commit/mirrors-yapf", Rev: "v${rev}"},
}

// DefaultMappingTable returns the built-in dependency mapping.
func DefaultMappingTable() MappingTable {
	return NewMappingTable(defaultMapping)
}

var _ ports.MappingPort = MappingTable{}
