package adapters

import (
	"bytes"
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/natefinch/atomic"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"

	"hooksync/internal/ports"
	"hooksync/internal/types"
)

// PreCommitConfigAdapter reads .pre-commit-config.yaml files, keeping the
// byte position of every rev value so it can be rewritten in place.
type PreCommitConfigAdapter struct{}

func NewPreCommitConfigAdapter() PreCommitConfigAdapter {
	return PreCommitConfigAdapter{}
}

func (a PreCommitConfigAdapter) LoadConfig(path string) (types.HookConfig, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return types.HookConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeNotFound).
			WithMsg("pre-commit config not found: " + path).
			WithCause(err)
	}
	repos, err := parseHookRepos(content)
	if err != nil {
		return types.HookConfig{}, errbuilder.New().
			WithCode(errbuilder.CodeInvalidArgument).
			WithMsg("pre-commit config is malformed: " + path).
			WithCause(err)
	}
	log.Debug().Str("path", path).Int("repos", len(repos)).Msg("pre-commit config loaded")
	return types.HookConfig{Path: path, Content: content, Repos: repos}, nil
}

// WriteConfig replaces the file through a temporary file and rename, so
// readers never observe a partial write.
func (a PreCommitConfigAdapter) WriteConfig(path string, content []byte) error {
	if err := atomic.WriteFile(path, bytes.NewReader(content)); err != nil {
		return errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("failed to write pre-commit config: " + path).
			WithCause(err)
	}
	return nil
}

func parseHookRepos(content []byte) ([]types.HookRepo, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(content, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("empty document")
	}
	top := doc.Content[0]
	if top.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("line %d: top level must be a mapping", top.Line)
	}
	reposNode := mappingValue(top, "repos")
	if reposNode == nil {
		return nil, fmt.Errorf("missing repos list")
	}
	if reposNode.Kind != yaml.SequenceNode {
		return nil, fmt.Errorf("line %d: repos must be a list", reposNode.Line)
	}

	lines := lineOffsets(content)
	repos := make([]types.HookRepo, 0, len(reposNode.Content))
	for i, item := range reposNode.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("line %d: repos entry must be a mapping", item.Line)
		}
		repoNode := mappingValue(item, "repo")
		if repoNode == nil || repoNode.Kind != yaml.ScalarNode {
			return nil, fmt.Errorf("line %d: repos entry has no repo", item.Line)
		}
		repo := types.HookRepo{Index: i, Repo: repoNode.Value, Line: item.Line}
		if revNode := mappingValue(item, "rev"); revNode != nil {
			span, style, err := scalarSpan(content, lines, revNode)
			if err != nil {
				return nil, err
			}
			repo.HasRev = true
			repo.Rev = revNode.Value
			repo.RevSpan = span
			repo.RevStyle = style
			repo.Line = revNode.Line
		}
		repos = append(repos, repo)
	}
	return repos, nil
}

func mappingValue(node *yaml.Node, key string) *yaml.Node {
	for i := 0; i+1 < len(node.Content); i += 2 {
		if node.Content[i].Value == key {
			return node.Content[i+1]
		}
	}
	return nil
}

// lineOffsets returns the byte offset at which each line starts.
func lineOffsets(content []byte) []int {
	offsets := []int{0}
	for i, b := range content {
		if b == '\n' {
			offsets = append(offsets, i+1)
		}
	}
	return offsets
}

// scalarSpan locates the source bytes of a single-line scalar. yaml.v3
// reports 1-based line and character columns.
func scalarSpan(content []byte, lines []int, node *yaml.Node) (types.Span, types.ScalarStyle, error) {
	if node.Kind != yaml.ScalarNode {
		return types.Span{}, "", fmt.Errorf("line %d: rev must be a scalar", node.Line)
	}
	if node.Line < 1 || node.Line > len(lines) || node.Column < 1 {
		return types.Span{}, "", fmt.Errorf("line %d: rev position out of range", node.Line)
	}
	start := lines[node.Line-1]
	for col := 1; col < node.Column; col++ {
		if start >= len(content) || content[start] == '\n' {
			return types.Span{}, "", fmt.Errorf("line %d: rev position out of range", node.Line)
		}
		_, width := utf8.DecodeRune(content[start:])
		start += width
	}
	// yaml.v3 positions an anchored scalar at its anchor.
	if node.Anchor != "" {
		anchor := []byte("&" + node.Anchor)
		if bytes.HasPrefix(content[start:], anchor) {
			start += len(anchor)
			for start < len(content) && (content[start] == ' ' || content[start] == '\t') {
				start++
			}
		}
	}

	switch {
	case node.Style&yaml.DoubleQuotedStyle != 0:
		end, err := quotedEnd(content, start, '"')
		if err != nil {
			return types.Span{}, "", fmt.Errorf("line %d: %w", node.Line, err)
		}
		return types.Span{Start: start, End: end}, types.ScalarStyleDoubleQuoted, nil
	case node.Style&yaml.SingleQuotedStyle != 0:
		end, err := quotedEnd(content, start, '\'')
		if err != nil {
			return types.Span{}, "", fmt.Errorf("line %d: %w", node.Line, err)
		}
		return types.Span{Start: start, End: end}, types.ScalarStyleSingleQuoted, nil
	case node.Style&(yaml.LiteralStyle|yaml.FoldedStyle) != 0:
		return types.Span{}, "", fmt.Errorf("line %d: block scalar rev is not supported", node.Line)
	}

	end := start + len(node.Value)
	if node.Value == "" || end > len(content) || !bytes.Equal(content[start:end], []byte(node.Value)) {
		return types.Span{}, "", fmt.Errorf("line %d: rev must be a single-line scalar", node.Line)
	}
	return types.Span{Start: start, End: end}, types.ScalarStylePlain, nil
}

// quotedEnd returns the offset just past the closing quote of a quoted
// scalar opening at start. Single-quoted scalars escape a quote by
// doubling it; double-quoted ones use backslash escapes.
func quotedEnd(content []byte, start int, quote byte) (int, error) {
	if start >= len(content) || content[start] != quote {
		return 0, fmt.Errorf("expected %c at rev position", quote)
	}
	for i := start + 1; i < len(content); i++ {
		switch content[i] {
		case '\n':
			return 0, fmt.Errorf("rev must be a single-line scalar")
		case '\\':
			if quote == '"' {
				if i+1 < len(content) && content[i+1] == '\n' {
					return 0, fmt.Errorf("rev must be a single-line scalar")
				}
				i++
			}
		case quote:
			if quote == '\'' && i+1 < len(content) && content[i+1] == '\'' {
				i++
				continue
			}
			return i + 1, nil
		}
	}
	return 0, fmt.Errorf("unterminated quoted rev")
}

var _ ports.HookConfigPort = PreCommitConfigAdapter{}
