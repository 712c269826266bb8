package core

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	assert "github.com/ZanzyTHEbar/assert-lib"
	"github.com/ZanzyTHEbar/errbuilder-go"
	"gopkg.in/yaml.v3"

	"hooksync/internal/types"
)

// Rewrite splices the updated revisions into config.Content and returns
// the new content. Every byte outside the rewritten rev tokens is kept,
// and each token keeps its quoting style where the new value allows it.
func Rewrite(ctx context.Context, config types.HookConfig, updates []types.RevUpdate) ([]byte, error) {
	byIndex := make(map[int]types.HookRepo, len(config.Repos))
	for _, repo := range config.Repos {
		byIndex[repo.Index] = repo
	}

	type splice struct {
		span  types.Span
		token string
	}
	splices := make([]splice, 0, len(updates))
	for _, update := range updates {
		assert.NotEmpty(ctx, update.To, "rendered rev must not be empty")
		repo, ok := byIndex[update.RepoIndex]
		if !ok || !repo.HasRev || repo.RevSpan.Empty() || repo.RevSpan.End > len(config.Content) {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg(fmt.Sprintf("no rev position for repos entry %d", update.RepoIndex))
		}
		splices = append(splices, splice{span: repo.RevSpan, token: encodeRev(update.To, repo.RevStyle)})
	}

	sort.Slice(splices, func(i, j int) bool {
		return splices[i].span.Start > splices[j].span.Start
	})
	out := append([]byte(nil), config.Content...)
	for i, sp := range splices {
		if i > 0 && sp.span.End > splices[i-1].span.Start {
			return nil, errbuilder.New().
				WithCode(errbuilder.CodeInternal).
				WithMsg("overlapping rev positions")
		}
		tail := append([]byte(sp.token), out[sp.span.End:]...)
		out = append(out[:sp.span.Start], tail...)
	}

	if bytes.Count(out, []byte("\n")) != bytes.Count(config.Content, []byte("\n")) {
		return nil, errbuilder.New().
			WithCode(errbuilder.CodeInternal).
			WithMsg("rewrite changed the line count")
	}
	return out, nil
}

func encodeRev(value string, style types.ScalarStyle) string {
	switch style {
	case types.ScalarStyleSingleQuoted:
		return "'" + strings.ReplaceAll(value, "'", "''") + "'"
	case types.ScalarStyleDoubleQuoted:
		return doubleQuote(value)
	default:
		if plainSafe(value) {
			return value
		}
		return doubleQuote(value)
	}
}

func doubleQuote(value string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `"`, `\"`, "\n", `\n`, "\t", `\t`)
	return `"` + replacer.Replace(value) + `"`
}

// plainSafe reports whether value reads back as the same string when
// written unquoted.
func plainSafe(value string) bool {
	if value == "" || strings.ContainsAny(value, "\n\r\t") {
		return false
	}
	var decoded any
	if err := yaml.Unmarshal([]byte("rev: "+value), &decoded); err != nil {
		return false
	}
	doc, ok := decoded.(map[string]any)
	if !ok || len(doc) != 1 {
		return false
	}
	got, ok := doc["rev"].(string)
	return ok && got == value
}
