// Package shared provides small helpers used by more than one layer of
// hooksync.
package shared

import (
	"regexp"
	"strings"
)

var pipNameSeparators = regexp.MustCompile(`[-_.]+`)

// NormalizePipName applies PEP 503 normalization: lowercase, with every
// run of hyphens, underscores and dots collapsed to a single hyphen.
func NormalizePipName(value string) string {
	lower := strings.ToLower(strings.TrimSpace(value))
	return pipNameSeparators.ReplaceAllString(lower, "-")
}
