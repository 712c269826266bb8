package types

// ScalarStyle records how a rev value is quoted in the source so a rewrite
// can keep the same form.
type ScalarStyle string

const (
	ScalarStylePlain        ScalarStyle = "plain"
	ScalarStyleSingleQuoted ScalarStyle = "single"
	ScalarStyleDoubleQuoted ScalarStyle = "double"
)

// Span is a half-open byte range [Start, End) into a file's content.
type Span struct {
	Start int
	End   int
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.End <= s.Start
}

// HookRepo is one element of the repos list in a pre-commit configuration.
type HookRepo struct {
	Index int
	Repo  string
	Rev   string

	// HasRev is false for local and meta repos, which pin nothing.
	HasRev   bool
	RevSpan  Span
	RevStyle ScalarStyle
	Line     int
}

// HookConfig is a parsed pre-commit configuration. Content is the exact
// source the spans index into.
type HookConfig struct {
	Path    string
	Content []byte
	Repos   []HookRepo
}

// RevUpdate is a single planned revision change.
type RevUpdate struct {
	Dependency string
	Class      DependencyClass
	RepoIndex  int
	Repo       string
	From       string
	To         string
	Line       int
}
