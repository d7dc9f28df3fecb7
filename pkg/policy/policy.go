package policy

import (
	"fmt"
	"os"
	"strings"
)

// Category classifies what a rule triggers when it applies.
type Category string

// Rule category constants
const (
	// CategoryEligibility rules state the baseline conditions for purchase.
	CategoryEligibility Category = "eligibility"

	// CategoryRejection rules force a rejected decision.
	CategoryRejection Category = "rejection"

	// CategoryCompleteness rules force an incomplete decision.
	CategoryCompleteness Category = "completeness"
)

// Rule is a single numbered clause of the purchase policy.
type Rule struct {
	// ID is the stable rule identifier cited in decisions (e.g. "POL-3")
	ID string

	// Statement is the natural-language rule text shown to the reasoning
	// service verbatim
	Statement string

	// Category classifies the rule (eligibility, rejection, completeness)
	Category Category
}

// Document is the fixed, ordered purchase policy. It is immutable after
// construction and safe for concurrent use.
type Document struct {
	// Version identifies the policy revision
	Version string

	rules []Rule
	byID  map[string]Rule
	text  string
}

// Default returns the built-in JusCash purchase policy.
func Default() *Document {
	doc, err := New("1.0", []Rule{
		{
			ID:        "POL-1",
			Statement: "We only purchase credit from processes with a confirmed final judgment (trânsito em julgado) that are in the execution phase.",
			Category:  CategoryEligibility,
		},
		{
			ID:        "POL-2",
			Statement: "The condemnation value must be informed.",
			Category:  CategoryEligibility,
		},
		{
			ID:        "POL-3",
			Statement: "A condemnation value below R$ 1,000.00 is not purchased (REJECT).",
			Category:  CategoryRejection,
		},
		{
			ID:        "POL-4",
			Statement: "Condemnations in the Labor sphere are not purchased (REJECT).",
			Category:  CategoryRejection,
		},
		{
			ID:        "POL-5",
			Statement: "If the claimant is deceased without estate representation, the credit is not purchased (REJECT).",
			Category:  CategoryRejection,
		},
		{
			ID:        "POL-6",
			Statement: "A power-of-attorney transfer without reservation of powers is not purchased (REJECT).",
			Category:  CategoryRejection,
		},
		{
			ID:        "POL-8",
			Statement: "If an essential document is missing (e.g. the final judgment is not confirmed), the analysis is INCOMPLETE.",
			Category:  CategoryCompleteness,
		},
	})
	if err != nil {
		// The built-in policy is a compile-time constant; a construction
		// failure is a programming error.
		panic(err)
	}
	return doc
}

// New constructs a policy document from an ordered rule set.
// Rule identifiers must be unique and non-empty.
func New(version string, rules []Rule) (*Document, error) {
	if len(rules) == 0 {
		return nil, fmt.Errorf("policy must contain at least one rule")
	}

	byID := make(map[string]Rule, len(rules))
	for _, r := range rules {
		if r.ID == "" {
			return nil, fmt.Errorf("policy rule with empty identifier")
		}
		if r.Statement == "" {
			return nil, fmt.Errorf("policy rule %s has an empty statement", r.ID)
		}
		if _, exists := byID[r.ID]; exists {
			return nil, fmt.Errorf("duplicate policy rule identifier %s", r.ID)
		}
		switch r.Category {
		case CategoryEligibility, CategoryRejection, CategoryCompleteness:
		default:
			return nil, fmt.Errorf("policy rule %s has unknown category %q", r.ID, r.Category)
		}
		byID[r.ID] = r
	}

	doc := &Document{
		Version: version,
		rules:   rules,
		byID:    byID,
	}
	doc.text = doc.render()
	return doc, nil
}

// Rules returns the ordered rule set.
func (d *Document) Rules() []Rule {
	out := make([]Rule, len(d.rules))
	copy(out, d.rules)
	return out
}

// HasRule reports whether the policy contains a rule with the given ID.
func (d *Document) HasRule(id string) bool {
	_, ok := d.byID[id]
	return ok
}

// Rule returns the rule with the given ID.
func (d *Document) Rule(id string) (Rule, bool) {
	r, ok := d.byID[id]
	return r, ok
}

// RuleIDs returns every rule identifier, in policy order.
func (d *Document) RuleIDs() []string {
	ids := make([]string, 0, len(d.rules))
	for _, r := range d.rules {
		ids = append(ids, r.ID)
	}
	return ids
}

// Text returns the canonical policy text injected into every evaluation
// request. The rendering is fixed at construction, so every call to the
// reasoning service sees exactly the same text.
func (d *Document) Text() string {
	return d.text
}

// render produces the canonical text: one section per category, rules in
// policy order, each clause prefixed by its identifier.
func (d *Document) render() string {
	var b strings.Builder

	sections := []struct {
		category Category
		heading  string
	}{
		{CategoryEligibility, "Baseline rules (eligibility)"},
		{CategoryRejection, "When we do NOT purchase the credit (rejected)"},
		{CategoryCompleteness, "Missing inputs and quality (incomplete)"},
	}

	for i, section := range sections {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(section.heading)
		b.WriteString("\n")
		for _, r := range d.rules {
			if r.Category != section.category {
				continue
			}
			b.WriteString(r.ID)
			b.WriteString(": ")
			b.WriteString(r.Statement)
			b.WriteString("\n")
		}
	}

	return b.String()
}

// Load reads a policy file at startup. The file format is one rule per
// line, "ID|category|statement", with "#" comments and blank lines
// ignored. The first line may declare "version: <v>". Load never watches
// the file; the returned document is fixed for the process lifetime.
func Load(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read policy file %q: %w", path, err)
	}

	version := "custom"
	var rules []Rule
	for n, line := range strings.Split(string(data), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if v, ok := strings.CutPrefix(line, "version:"); ok {
			version = strings.TrimSpace(v)
			continue
		}
		parts := strings.SplitN(line, "|", 3)
		if len(parts) != 3 {
			return nil, fmt.Errorf("policy file %q line %d: expected ID|category|statement", path, n+1)
		}
		rules = append(rules, Rule{
			ID:        strings.TrimSpace(parts[0]),
			Category:  Category(strings.TrimSpace(parts[1])),
			Statement: strings.TrimSpace(parts[2]),
		})
	}

	doc, err := New(version, rules)
	if err != nil {
		return nil, fmt.Errorf("policy file %q: %w", path, err)
	}
	return doc, nil
}
