package javaversion

import "testing"

func TestVersionsAreAdditive(t *testing.T) {
	if !Java21.Supports(FeatureRecordPatterns) {
		t.Fatalf("Java21 should support FeatureRecordPatterns")
	}
	if Java21.Supports(FeatureUnnamedVariables) {
		t.Fatalf("Java21 should not support FeatureUnnamedVariables")
	}
	if !Java25.Supports(FeatureRecordPatterns) {
		t.Fatalf("Java25 should still support FeatureRecordPatterns (additive)")
	}
	if !Java25.Supports(FeatureUnnamedVariables) {
		t.Fatalf("Java25 should support FeatureUnnamedVariables")
	}
	if Java25.Supports(FeatureModuleImports) {
		t.Fatalf("Java25 should not support preview-only FeatureModuleImports")
	}
	if !Java25Preview.Supports(FeatureModuleImports) {
		t.Fatalf("Java25Preview should support FeatureModuleImports")
	}
}
