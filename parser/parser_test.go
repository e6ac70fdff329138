package parser

import (
	"strings"
	"testing"

	"github.com/cowwoc/styler-sub000/ast"
	"github.com/cowwoc/styler-sub000/javaversion"
	"github.com/cowwoc/styler-sub000/source"
)

func mustParse(t *testing.T, text string) ParseResult {
	t.Helper()
	src, err := source.New(text)
	if err != nil {
		t.Fatalf("source.New: %v", err)
	}
	return Parse(src, javaversion.Java25Preview)
}

// findFirst returns the first descendant of id (id itself included) with the
// given Kind, found via a pre-order walk over Children.
func findFirst(a *ast.Arena, id ast.NodeID, kind ast.Kind) (ast.NodeID, bool) {
	if a.Get(id).Kind == kind {
		return id, true
	}
	for _, child := range a.Children(id) {
		if found, ok := findFirst(a, child, kind); ok {
			return found, true
		}
	}
	return 0, false
}

func countKind(a *ast.Arena, id ast.NodeID, kind ast.Kind) int {
	count := 0
	if a.Get(id).Kind == kind {
		count++
	}
	for _, child := range a.Children(id) {
		count += countKind(a, child, kind)
	}
	return count
}

func TestCompilationUnitWithPackageAndImports(t *testing.T) {
	result := mustParse(t, `package com.example;

import java.util.List;
import static java.util.Collections.emptyList;

class Foo {}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if _, ok := findFirst(result.Arena, result.Root, ast.PACKAGE_DECLARATION); !ok {
		t.Error("expected a PACKAGE_DECLARATION node")
	}
	if n := countKind(result.Arena, result.Root, ast.IMPORT_DECLARATION); n != 2 {
		t.Errorf("expected 2 IMPORT_DECLARATION nodes, got %d", n)
	}
	if _, ok := findFirst(result.Arena, result.Root, ast.CLASS_DECLARATION); !ok {
		t.Error("expected a CLASS_DECLARATION node")
	}
}

// TestTernaryWithLambdaAlternative exercises the scenario where a lambda
// appears as a ternary's alternative branch with no parentheses around it:
// `cond ? x : () -> y`.
func TestTernaryWithLambdaAlternative(t *testing.T) {
	result := mustParse(t, `class Foo {
    Runnable r = flag ? other : () -> { doThing(); };
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	cond, ok := findFirst(result.Arena, result.Root, ast.CONDITIONAL_EXPRESSION)
	if !ok {
		t.Fatal("expected a CONDITIONAL_EXPRESSION node")
	}
	if _, ok := findFirst(result.Arena, cond, ast.LAMBDA_EXPRESSION); !ok {
		t.Error("expected the conditional expression to contain a LAMBDA_EXPRESSION")
	}
}

// TestRecordPatternInSwitch exercises a record-deconstruction pattern in a
// modern arrow-rule switch: `case Point(var x, var y) -> ...`.
func TestRecordPatternInSwitch(t *testing.T) {
	result := mustParse(t, `class Foo {
    int m(Object o) {
        return switch (o) {
            case Point(var x, var y) -> x + y;
            default -> 0;
        };
    }
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if _, ok := findFirst(result.Arena, result.Root, ast.RECORD_PATTERN); !ok {
		t.Error("expected a RECORD_PATTERN node")
	}
	if n := countKind(result.Arena, result.Root, ast.SWITCH_RULE); n != 2 {
		t.Errorf("expected 2 SWITCH_RULE nodes, got %d", n)
	}
}

// TestWhenGuardPromotion exercises `when` being promoted to a guard only
// right after a complete case pattern.
func TestWhenGuardPromotion(t *testing.T) {
	result := mustParse(t, `class Foo {
    String m(Object o) {
        return switch (o) {
            case Integer i when i > 0 -> "positive";
            case Integer i -> "non-positive";
            default -> "other";
        };
    }
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if n := countKind(result.Arena, result.Root, ast.GUARDED_PATTERN); n != 1 {
		t.Errorf("expected 1 GUARDED_PATTERN node, got %d", n)
	}
}

// TestWhenAsIdentifier confirms `when` is still an ordinary identifier
// everywhere outside a case-pattern guard position (spec.md §8's
// "when-as-identifier" scenario).
func TestWhenAsIdentifier(t *testing.T) {
	result := mustParse(t, `class Foo {
    void m() {
        int when = 5;
        when = when + 1;
    }
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if n := countKind(result.Arena, result.Root, ast.LOCAL_VARIABLE_DECLARATION); n != 1 {
		t.Errorf("expected 1 LOCAL_VARIABLE_DECLARATION node, got %d", n)
	}
}

// TestHexFloatLiteral exercises a hexadecimal floating-point literal, which
// requires a binary exponent marker ('p'/'P') rather than a decimal one.
func TestHexFloatLiteral(t *testing.T) {
	result := mustParse(t, `class Foo {
    double d = 0x1.8p3;
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	lit, ok := findFirst(result.Arena, result.Root, ast.LITERAL)
	if !ok {
		t.Fatal("expected a LITERAL node")
	}
	node := result.Arena.Get(lit)
	if node.End-node.Start != len("0x1.8p3") {
		t.Errorf("expected the literal span to cover the whole hex float, got length %d", node.End-node.Start)
	}
}

// TestUnicodeEscapedKeyword exercises JLS §3.3's Unicode-escape
// preprocessing applied before keyword recognition: a Unicode-escaped 'a' in
// the middle of "class" is still the CLASS keyword.
func TestUnicodeEscapedKeyword(t *testing.T) {
	result := mustParse(t, "cl\\u0061ss Foo {}\n")
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if _, ok := findFirst(result.Arena, result.Root, ast.CLASS_DECLARATION); !ok {
		t.Error("expected a CLASS_DECLARATION node (the escaped keyword should still be recognized)")
	}
}

// TestTryWithResourcesVariableReferenceForm exercises the Java 9+ form where
// a resource is a bare expression naming an existing effectively-final
// variable, rather than a fresh declaration.
func TestTryWithResourcesVariableReferenceForm(t *testing.T) {
	result := mustParse(t, `class Foo {
    void m(AutoCloseable resource) {
        try (resource) {
            use(resource);
        }
    }
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if n := countKind(result.Arena, result.Root, ast.RESOURCE); n != 1 {
		t.Errorf("expected 1 RESOURCE node, got %d", n)
	}
}

// TestTryWithResourcesDeclaredForm exercises the classic declared-resource
// form alongside multi-catch, to make sure the two resource forms and
// multi-catch parsing don't interfere.
func TestTryWithResourcesDeclaredForm(t *testing.T) {
	result := mustParse(t, `class Foo {
    void m() {
        try (InputStream in = open(); OutputStream out = create()) {
            copy(in, out);
        } catch (IOException | RuntimeException e) {
            log(e);
        } finally {
            cleanup();
        }
    }
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if n := countKind(result.Arena, result.Root, ast.RESOURCE); n != 2 {
		t.Errorf("expected 2 RESOURCE nodes, got %d", n)
	}
	if n := countKind(result.Arena, result.Root, ast.CATCH_CLAUSE); n != 1 {
		t.Errorf("expected 1 CATCH_CLAUSE node, got %d", n)
	}
}

// TestNestingDepthWithinLimitSucceeds builds an expression nested just under
// maxNestingDepth deep and expects no diagnostics.
func TestNestingDepthWithinLimitSucceeds(t *testing.T) {
	depth := maxNestingDepth - 10
	expr := "0"
	for i := 0; i < depth; i++ {
		expr = "(" + expr + ")"
	}
	result := mustParse(t, "class Foo { int x = "+expr+"; }\n")
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic at depth %d: %s", depth, d.Message)
		}
	}
}

// TestNestingDepthBeyondLimitRecoversGracefully builds an expression well
// past maxNestingDepth deep and expects the parser to both return (rather
// than overflow the call stack) and report the nesting-depth-exceeded
// diagnostic, so callers see this as a Failure rather than a silent
// truncated success.
func TestNestingDepthBeyondLimitRecoversGracefully(t *testing.T) {
	depth := maxNestingDepth + 50
	expr := "0"
	for i := 0; i < depth; i++ {
		expr = "(" + expr + ")"
	}
	text := "class Foo { int x = " + expr + "; }\n"
	src, err := source.New(text)
	if err != nil {
		t.Fatalf("source.New: %v", err)
	}
	result := Parse(src, javaversion.Java25Preview)
	if result.Success() {
		t.Fatal("expected nesting-depth-exceeded to be reported as a failure")
	}
	found := false
	for _, d := range result.Diagnostics {
		if strings.Contains(d.Message, "nesting depth") {
			found = true
			break
		}
	}
	if !found {
		t.Errorf("expected a nesting-depth-exceeded diagnostic, got: %v", result.Diagnostics)
	}
}

func TestShiftRightVsGenericsClose(t *testing.T) {
	result := mustParse(t, `class Foo {
    Map<String, List<Integer>> m;
    int x = 1 >> 2;
    int y = 1 >>> 2;
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if n := countKind(result.Arena, result.Root, ast.TYPE_ARGUMENT_LIST); n != 2 {
		t.Errorf("expected 2 TYPE_ARGUMENT_LIST nodes, got %d", n)
	}
}

func TestLambdaCastParenDisambiguation(t *testing.T) {
	result := mustParse(t, `class Foo {
    void m() {
        Runnable a = () -> doThing();
        Runnable b = (Runnable) other;
        int c = (x + y);
        int d = (x) + y;
    }
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if n := countKind(result.Arena, result.Root, ast.LAMBDA_EXPRESSION); n != 1 {
		t.Errorf("expected 1 LAMBDA_EXPRESSION node, got %d", n)
	}
	if n := countKind(result.Arena, result.Root, ast.CAST_EXPRESSION); n != 1 {
		t.Errorf("expected 1 CAST_EXPRESSION node, got %d", n)
	}
}

func TestModuleDeclaration(t *testing.T) {
	result := mustParse(t, `module com.example.app {
    requires transitive java.sql;
    requires static com.example.optional;
    exports com.example.app.api;
    exports com.example.app.internal to com.example.friend;
    opens com.example.app.model;
    uses com.example.app.spi.Plugin;
    provides com.example.app.spi.Plugin with com.example.app.impl.PluginImpl;
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if _, ok := findFirst(result.Arena, result.Root, ast.MODULE_DECLARATION); !ok {
		t.Fatal("expected a MODULE_DECLARATION node")
	}
	for _, kind := range []ast.Kind{
		ast.REQUIRES_DIRECTIVE, ast.EXPORTS_DIRECTIVE, ast.OPENS_DIRECTIVE,
		ast.USES_DIRECTIVE, ast.PROVIDES_DIRECTIVE,
	} {
		if _, ok := findFirst(result.Arena, result.Root, kind); !ok {
			t.Errorf("expected at least one %s node", kind)
		}
	}
}

func TestNonSealedModifier(t *testing.T) {
	result := mustParse(t, `sealed interface Shape permits Circle, Square {}
non-sealed class Circle implements Shape {}
final class Square implements Shape {}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if n := countKind(result.Arena, result.Root, ast.MODIFIER); n < 2 {
		t.Errorf("expected at least 2 MODIFIER nodes (sealed, non-sealed), got %d", n)
	}
	if _, ok := findFirst(result.Arena, result.Root, ast.PERMITS_CLAUSE); !ok {
		t.Error("expected a PERMITS_CLAUSE node")
	}
}

// TestNonSealedRequiresByteAdjacency makes sure a real subtraction
// `non - sealed` (with whitespace, and "non"/"sealed" as unrelated
// identifiers) is never misread as the non-sealed modifier: it can only
// appear in an expression context here, so it must parse as a binary
// subtraction of two names.
func TestNonSealedRequiresByteAdjacency(t *testing.T) {
	result := mustParse(t, `class Foo {
    int m() {
        return non - sealed;
    }
}
`)
	// "non" and "sealed" are ordinary identifiers here (undeclared names are
	// not a parse-time concern), so this should parse with no diagnostics as
	// a binary subtraction, not a modifier.
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if n := countKind(result.Arena, result.Root, ast.BINARY_EXPRESSION); n != 1 {
		t.Errorf("expected 1 BINARY_EXPRESSION node for 'non - sealed', got %d", n)
	}
}

func TestRecordDeclaration(t *testing.T) {
	result := mustParse(t, `record Point(int x, int y) {
    Point {
        if (x < 0) throw new IllegalArgumentException();
    }
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if _, ok := findFirst(result.Arena, result.Root, ast.RECORD_DECLARATION); !ok {
		t.Error("expected a RECORD_DECLARATION node")
	}
	if n := countKind(result.Arena, result.Root, ast.RECORD_COMPONENT); n != 2 {
		t.Errorf("expected 2 RECORD_COMPONENT nodes, got %d", n)
	}
}

func TestEnumWithBodyAndConstants(t *testing.T) {
	result := mustParse(t, `enum Direction {
    NORTH, SOUTH, EAST, WEST;

    boolean isVertical() {
        return this == NORTH || this == SOUTH;
    }
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if n := countKind(result.Arena, result.Root, ast.ENUM_CONSTANT); n != 4 {
		t.Errorf("expected 4 ENUM_CONSTANT nodes, got %d", n)
	}
	if n := countKind(result.Arena, result.Root, ast.METHOD_DECLARATION); n != 1 {
		t.Errorf("expected 1 METHOD_DECLARATION node, got %d", n)
	}
}

func TestAnonymousClassBody(t *testing.T) {
	result := mustParse(t, `class Foo {
    Runnable r = new Runnable() {
        public void run() {
            doThing();
        }
    };
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if _, ok := findFirst(result.Arena, result.Root, ast.CLASS_INSTANCE_CREATION); !ok {
		t.Error("expected a CLASS_INSTANCE_CREATION node")
	}
}

func TestDiagnosticFormatting(t *testing.T) {
	result := mustParse(t, "class Foo {\n    int x = ;\n}\n")
	if result.Success() {
		t.Fatal("expected at least one diagnostic for the malformed field initializer")
	}
	formatted := result.Diagnostics[0].Format("class Foo {\n    int x = ;\n}\n")
	if !strings.Contains(formatted, "line 2") {
		t.Errorf("expected the formatted diagnostic to reference line 2, got: %s", formatted)
	}
	if !strings.Contains(formatted, "^") {
		t.Errorf("expected the formatted diagnostic to include a caret, got: %s", formatted)
	}
}

func TestAnnotationTypeDeclaration(t *testing.T) {
	result := mustParse(t, `@interface Config {
    String name();
    int retries() default 3;
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if _, ok := findFirst(result.Arena, result.Root, ast.ANNOTATION_TYPE_DECLARATION); !ok {
		t.Error("expected an ANNOTATION_TYPE_DECLARATION node")
	}
}

func TestGenericClassWithBoundedTypeParameter(t *testing.T) {
	result := mustParse(t, `class Box<T extends Comparable<T>> {
    private T value;

    T get() {
        return value;
    }

    void set(T value) {
        this.value = value;
    }
}
`)
	if !result.Success() {
		for _, d := range result.Diagnostics {
			t.Errorf("unexpected diagnostic: %s", d.Message)
		}
	}
	if _, ok := findFirst(result.Arena, result.Root, ast.TYPE_PARAMETER); !ok {
		t.Error("expected a TYPE_PARAMETER node")
	}
	if n := countKind(result.Arena, result.Root, ast.FIELD_DECLARATION); n != 1 {
		t.Errorf("expected 1 FIELD_DECLARATION node, got %d", n)
	}
	if n := countKind(result.Arena, result.Root, ast.METHOD_DECLARATION); n != 2 {
		t.Errorf("expected 2 METHOD_DECLARATION nodes, got %d", n)
	}
}
