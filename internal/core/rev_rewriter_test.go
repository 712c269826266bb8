package core

import (
	"bytes"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hooksync/internal/types"
)

const rewriteSource = `repos:
  - repo: https://github.com/psf/black
    rev: 20.8b1  # formatter
  - repo: https://github.com/pycqa/flake8
    rev: "3.9.0"
  - repo: https://github.com/pre-commit/mirrors-mypy
    rev: 'v0.900'
`

func rewriteConfig() types.HookConfig {
	content := []byte(rewriteSource)
	span := func(token string) types.Span {
		start := bytes.Index(content, []byte(token))
		return types.Span{Start: start, End: start + len(token)}
	}
	return types.HookConfig{Content: content, Repos: []types.HookRepo{
		{Index: 0, Repo: "https://github.com/psf/black", Rev: "20.8b1", HasRev: true, RevSpan: span("20.8b1"), RevStyle: types.ScalarStylePlain},
		{Index: 1, Repo: "https://github.com/pycqa/flake8", Rev: "3.9.0", HasRev: true, RevSpan: span(`"3.9.0"`), RevStyle: types.ScalarStyleDoubleQuoted},
		{Index: 2, Repo: "https://github.com/pre-commit/mirrors-mypy", Rev: "v0.900", HasRev: true, RevSpan: span("'v0.900'"), RevStyle: types.ScalarStyleSingleQuoted},
	}}
}

func TestRewriteKeepsStyleAndLayout(t *testing.T) {
	config := rewriteConfig()
	updates := []types.RevUpdate{
		{Dependency: "mypy", RepoIndex: 2, To: "v0.910"},
		{Dependency: "black", RepoIndex: 0, To: "21.11b1"},
		{Dependency: "flake8", RepoIndex: 1, To: "4.0.1"},
	}
	out, err := Rewrite(t.Context(), config, updates)
	require.NoError(t, err)

	want := `repos:
  - repo: https://github.com/psf/black
    rev: 21.11b1  # formatter
  - repo: https://github.com/pycqa/flake8
    rev: "4.0.1"
  - repo: https://github.com/pre-commit/mirrors-mypy
    rev: 'v0.910'
`
	if diff := cmp.Diff(want, string(out)); diff != "" {
		t.Fatalf("unexpected content (-want +got):\n%s", diff)
	}
	assert.Equal(t, rewriteSource, string(config.Content), "input content must not be modified")
}

func TestRewriteNoUpdates(t *testing.T) {
	config := rewriteConfig()
	out, err := Rewrite(t.Context(), config, nil)
	require.NoError(t, err)
	assert.Equal(t, rewriteSource, string(out))
}

func TestRewriteUnknownRepo(t *testing.T) {
	_, err := Rewrite(t.Context(), rewriteConfig(), []types.RevUpdate{{RepoIndex: 9, To: "1.0"}})
	require.Error(t, err)
	if diff := cmp.Diff(errbuilder.CodeInternal, errbuilder.CodeOf(err)); diff != "" {
		t.Fatalf("unexpected error code (-want +got):\n%s", diff)
	}
}

func TestEncodeRev(t *testing.T) {
	tests := []struct {
		name  string
		value string
		style types.ScalarStyle
		want  string
	}{
		{name: "plain string", value: "21.11b1", style: types.ScalarStylePlain, want: "21.11b1"},
		{name: "plain that reads as a number", value: "22.1", style: types.ScalarStylePlain, want: `"22.1"`},
		{name: "plain that reads as a bool", value: "true", style: types.ScalarStylePlain, want: `"true"`},
		{name: "plain with comment marker", value: "v1 #2", style: types.ScalarStylePlain, want: `"v1 #2"`},
		{name: "single quoted", value: "it's", style: types.ScalarStyleSingleQuoted, want: "'it''s'"},
		{name: "double quoted", value: `a"b`, style: types.ScalarStyleDoubleQuoted, want: `"a\"b"`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, encodeRev(tt.value, tt.style))
		})
	}
}
