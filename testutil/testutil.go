// Package testutil drives the yaml-fixture test harness: each fixture names a
// snippet of Java source and either the set of nodes a parse of it must
// contain, or the diagnostic it must fail with. Modeled on the teacher's
// testutil.TestCase/ReadTests/RunTest (testutil/testutil.go), generalized
// from a schema-migration test case to a parse-one-snippet test case.
package testutil

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/assert"

	"github.com/cowwoc/styler-sub000/ast"
	"github.com/cowwoc/styler-sub000/javaversion"
	"github.com/cowwoc/styler-sub000/parser"
	"github.com/cowwoc/styler-sub000/source"
)

// NodeExpectation is one entry of a TestCase's expected node set: a node of
// the given Kind must exist in the parse with exactly this span. Name is
// checked too, but only when given: it's empty for node kinds spec.md §3.2
// never attaches a declared name to (expressions, statements, clauses).
type NodeExpectation struct {
	Kind  string
	Start int
	End   int
	Name  string
}

// nodeKey is the part of a NodeExpectation used to look a node up in a
// nodeSet; Name is checked separately since "don't care about the name" has
// to mean something different from "the name is the empty string".
type nodeKey struct {
	Kind  string
	Start int
	End   int
}

// TestCase is one named fixture: a Java snippet plus the expected outcome of
// parsing it. Exactly one of Nodes or WantError is normally set: Nodes
// asserts a successful parse contains (at least) the given node set;
// WantError asserts the parse produces a diagnostic containing that text.
type TestCase struct {
	Source     string
	Nodes      []NodeExpectation
	WantError  string `yaml:"want_error"`
	MinVersion string `yaml:"min_version"` // "21", "25", or "25-preview"; default "21"
}

// ReadTests loads every fixture matched by pattern (a filepath.Glob pattern
// over *.yml files), keyed by test name.
func ReadTests(pattern string) (map[string]TestCase, error) {
	files, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	}

	ret := map[string]TestCase{}
	fileOf := map[string]string{}
	for _, file := range files {
		var tests map[string]*TestCase
		buf, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		dec := yaml.NewDecoder(bytes.NewReader(buf), yaml.DisallowUnknownField())
		if err := dec.Decode(&tests); err != nil {
			return nil, fmt.Errorf("%s: %w", file, err)
		}
		for name, tc := range tests {
			if existing, ok := fileOf[name]; ok {
				return nil, fmt.Errorf("duplicate test case name %q: defined in both %q and %q", name, existing, file)
			}
			fileOf[name] = file
			ret[name] = *tc
		}
	}
	return ret, nil
}

func parseMinVersion(spelling string) javaversion.Version {
	switch spelling {
	case "25":
		return javaversion.Java25
	case "25-preview":
		return javaversion.Java25Preview
	default:
		return javaversion.Java21
	}
}

// nodeSet flattens every node reachable from id (inclusive) into a
// kind/start/end keyed map of declared names, the shape NodeExpectation is
// checked against. Order doesn't matter: fixtures assert set membership, not
// tree shape or sibling order, so reordering productions in the parser
// doesn't spuriously break fixtures that only care a node exists.
func nodeSet(a *ast.Arena, id ast.NodeID) map[nodeKey]string {
	set := map[nodeKey]string{}
	var walk func(ast.NodeID)
	walk = func(id ast.NodeID) {
		n := a.Get(id)
		set[nodeKey{Kind: n.Kind.String(), Start: n.Start, End: n.End}] = n.Name
		for _, c := range a.Children(id) {
			walk(c)
		}
	}
	walk(id)
	return set
}

// RunTest parses tc.Source and asserts the outcome matches tc.WantError (if
// set) or that every entry of tc.Nodes is present in the parsed tree.
func RunTest(t *testing.T, tc TestCase) {
	t.Helper()

	src, err := source.New(tc.Source)
	if err != nil {
		t.Fatalf("source.New: %v", err)
	}
	result := parser.Parse(src, parseMinVersion(tc.MinVersion))

	if tc.WantError != "" {
		if result.Success() {
			t.Fatalf("expected a diagnostic containing %q, got none", tc.WantError)
		}
		assert.Contains(t, result.Diagnostics[0].Message, tc.WantError)
		return
	}

	if !result.Success() {
		var messages []string
		for _, d := range result.Diagnostics {
			messages = append(messages, d.Message)
		}
		t.Fatalf("expected a clean parse, got diagnostics:\n%s", strings.Join(messages, "\n"))
	}

	if len(tc.Nodes) == 0 {
		return
	}
	got := nodeSet(result.Arena, result.Root)
	for _, want := range tc.Nodes {
		kind, ok := ast.ParseKind(want.Kind)
		if !ok {
			t.Errorf("unknown node kind %q in fixture", want.Kind)
			continue
		}
		key := nodeKey{Kind: kind.String(), Start: want.Start, End: want.End}
		name, found := got[key]
		if !found {
			t.Errorf("expected node %s[%d:%d] not found in parse", key.Kind, key.Start, key.End)
			continue
		}
		if want.Name != "" {
			assert.Equal(t, want.Name, name, "name of node %s[%d:%d]", key.Kind, key.Start, key.End)
		}
	}
}
