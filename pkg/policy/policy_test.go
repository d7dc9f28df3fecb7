package policy

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	doc := Default()

	wantIDs := []string{"POL-1", "POL-2", "POL-3", "POL-4", "POL-5", "POL-6", "POL-8"}
	gotIDs := doc.RuleIDs()

	if len(gotIDs) != len(wantIDs) {
		t.Fatalf("expected %d rules, got %d", len(wantIDs), len(gotIDs))
	}
	for i, id := range wantIDs {
		if gotIDs[i] != id {
			t.Errorf("rule %d: expected %s, got %s", i, id, gotIDs[i])
		}
	}

	// POL-7 was retired; citing it must fail.
	if doc.HasRule("POL-7") {
		t.Error("POL-7 should not exist")
	}

	rule, ok := doc.Rule("POL-4")
	if !ok {
		t.Fatal("POL-4 not found")
	}
	if rule.Category != CategoryRejection {
		t.Errorf("POL-4 should be a rejection rule, got %s", rule.Category)
	}
}

func TestText_ContainsEveryRule(t *testing.T) {
	doc := Default()
	text := doc.Text()

	for _, r := range doc.Rules() {
		if !strings.Contains(text, r.ID+": ") {
			t.Errorf("policy text missing rule %s", r.ID)
		}
		if !strings.Contains(text, r.Statement) {
			t.Errorf("policy text missing statement of %s", r.ID)
		}
	}

	// Rendering is deterministic.
	if doc.Text() != text {
		t.Error("policy text is not stable across calls")
	}
}

func TestNew_Errors(t *testing.T) {
	tests := []struct {
		name  string
		rules []Rule
	}{
		{"no rules", nil},
		{"empty id", []Rule{{ID: "", Statement: "x", Category: CategoryEligibility}}},
		{"empty statement", []Rule{{ID: "POL-1", Statement: "", Category: CategoryEligibility}}},
		{"duplicate id", []Rule{
			{ID: "POL-1", Statement: "a", Category: CategoryEligibility},
			{ID: "POL-1", Statement: "b", Category: CategoryRejection},
		}},
		{"unknown category", []Rule{{ID: "POL-1", Statement: "x", Category: "advisory"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New("test", tt.rules); err == nil {
				t.Fatal("expected error, got nil")
			}
		})
	}
}

func TestLoad(t *testing.T) {
	content := `# custom policy
version: 2.1

POL-1 | eligibility | Only final judgments are purchased.
POL-2 | rejection   | Labor sphere condemnations are not purchased.
`
	path := filepath.Join(t.TempDir(), "policy.txt")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	doc, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if doc.Version != "2.1" {
		t.Errorf("expected version 2.1, got %s", doc.Version)
	}
	if len(doc.Rules()) != 2 {
		t.Fatalf("expected 2 rules, got %d", len(doc.Rules()))
	}
	if !doc.HasRule("POL-2") {
		t.Error("POL-2 not loaded")
	}

	rule, _ := doc.Rule("POL-2")
	if rule.Category != CategoryRejection {
		t.Errorf("expected rejection category, got %s", rule.Category)
	}
	if rule.Statement != "Labor sphere condemnations are not purchased." {
		t.Errorf("statement not trimmed: %q", rule.Statement)
	}
}

func TestLoad_Errors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		if _, err := Load(filepath.Join(t.TempDir(), "absent.txt")); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("malformed line", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.txt")
		if err := os.WriteFile(path, []byte("POL-1 only two|fields"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("bad category", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.txt")
		if err := os.WriteFile(path, []byte("POL-1|advisory|text"), 0o644); err != nil {
			t.Fatal(err)
		}
		if _, err := Load(path); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
