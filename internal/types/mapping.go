package types

import "strings"

// RevPlaceholder is substituted with the lock-resolved version when a
// RepoMapping's revision template is rendered.
const RevPlaceholder = "${rev}"

// RepoMapping ties a dependency to the hook repository that runs it.
type RepoMapping struct {
	// Repo is the repository URL as written in the repos list of the
	// pre-commit configuration.
	Repo string `yaml:"repo" json:"repo"`

	// Rev is the revision template, e.g. "v${rev}" for mirrors that tag
	// with a leading v. Empty means "${rev}".
	Rev string `yaml:"rev,omitempty" json:"rev,omitempty"`
}

// RenderRev expands the revision template with version.
func (m RepoMapping) RenderRev(version string) string {
	template := m.Rev
	if strings.TrimSpace(template) == "" {
		template = RevPlaceholder
	}
	return strings.ReplaceAll(template, RevPlaceholder, version)
}

// MappingFile is the top-level structure of a custom mapping file: a plain
// object keyed by dependency name.
type MappingFile map[string]RepoMapping
