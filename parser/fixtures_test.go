package parser_test

import (
	"testing"

	"github.com/cowwoc/styler-sub000/testutil"
)

// TestFixtures runs every case in testdata/tests.yml: snippets of Java source
// paired with their expected parse outcome. Modeled on the teacher's
// TestApply-style yaml-fixture loops (e.g. cmd/mysqldef/mysqldef_test.go),
// generalized from a schema-migration assertion to a parse assertion.
func TestFixtures(t *testing.T) {
	tests, err := testutil.ReadTests("../testdata/tests.yml")
	if err != nil {
		t.Fatalf("ReadTests: %v", err)
	}
	if len(tests) == 0 {
		t.Fatal("no test cases loaded from testdata/tests.yml")
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.RunTest(t, tc)
		})
	}
}
