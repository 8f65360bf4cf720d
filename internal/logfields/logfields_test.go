package logfields

import (
	"errors"
	"log/slog"
	"testing"
)

// TestHelperKeyNames verifies helper key/value stability.
func TestHelperKeyNames(t *testing.T) {
	cases := []struct {
		name    string
		attrKey string
		attrVal string
		attr    slog.Attr
	}{
		{"Config", KeyConfig, "handbook.yaml", Config("handbook.yaml")},
		{"ContentDir", KeyContentDir, "docs", ContentDir("docs")},
		{"Path", KeyPath, "/api/naming", Path("/api/naming")},
		{"Rule", KeyRule, "dangling-path", Rule("dangling-path")},
		{"RunID", KeyRunID, "r1", RunID("r1")},
		{"Output", KeyOutput, ".vuepress/config.js", Output(".vuepress/config.js")},
	}

	for _, tc := range cases {
		if tc.attr.Key != tc.attrKey {
			// Key drift would break log ingestion schemas.
			t.Fatalf("%s: expected key %s, got %s", tc.name, tc.attrKey, tc.attr.Key)
		}
		if tc.attr.Value.String() != tc.attrVal {
			t.Fatalf("%s: expected value %s, got %s", tc.name, tc.attrVal, tc.attr.Value.String())
		}
	}
}

func TestNumericAndErrorHelpers(t *testing.T) {
	if got := Errors(3).Value.Int64(); got != 3 {
		t.Fatalf("errors: got %d", got)
	}
	if got := Pages(12).Value.Int64(); got != 12 {
		t.Fatalf("pages: got %d", got)
	}
	if got := DurationMS(1.5).Value.Float64(); got != 1.5 {
		t.Fatalf("duration: got %v", got)
	}
	if got := Error(nil).Value.String(); got != "" {
		t.Fatalf("nil error: got %q", got)
	}
	if got := Error(errors.New("boom")).Value.String(); got != "boom" {
		t.Fatalf("error: got %q", got)
	}
}
