// Package categorize maps free-text vendor names to spending categories using
// an ordered keyword table.
package categorize

import "strings"

const (
	// Fallback is returned when no keyword matches.
	Fallback = "Miscellaneous"
	// WalletTopUp labels money added to a wallet.
	WalletTopUp = "Wallet Top-up"
)

// Rule maps a lower-case keyword to a category label.
type Rule struct {
	Keyword  string
	Category string
}

// Classifier resolves a vendor to the category of the first rule whose
// keyword it contains. It is safe for concurrent use.
type Classifier struct {
	rules    []Rule
	fallback string
}

// New builds a classifier over rules, evaluated in the given order.
// An empty fallback defaults to Fallback.
func New(rules []Rule, fallback string) *Classifier {
	if fallback == "" {
		fallback = Fallback
	}
	return &Classifier{rules: lowerRules(rules), fallback: fallback}
}

// Default returns a classifier over DefaultRules.
func Default() *Classifier {
	return New(DefaultRules(), Fallback)
}

// Classify returns the category label for vendor. It never fails.
func (c *Classifier) Classify(vendor string) string {
	if category, ok := firstMatch(c.rules, strings.ToLower(vendor)); ok {
		return category
	}
	return c.fallback
}

// TagSet recognizes "#tag" category hints written next to a payment.
type TagSet struct {
	rules []Rule
}

// NewTagSet builds a tag matcher evaluated in the given order.
func NewTagSet(rules []Rule) TagSet {
	return TagSet{rules: lowerRules(rules)}
}

// DefaultTagSet returns a TagSet over DefaultTags.
func DefaultTagSet() TagSet {
	return NewTagSet(DefaultTags())
}

// Len returns the number of tags.
func (t TagSet) Len() int { return len(t.rules) }

// Match reports the category hinted by line. Lines without a '#' never match.
func (t TagSet) Match(line string) (string, bool) {
	lower := strings.ToLower(line)
	if !strings.Contains(lower, "#") {
		return "", false
	}
	return firstMatch(t.rules, lower)
}

func firstMatch(rules []Rule, lower string) (string, bool) {
	for _, r := range rules {
		if r.Keyword != "" && strings.Contains(lower, r.Keyword) {
			return r.Category, true
		}
	}
	return "", false
}

func lowerRules(rules []Rule) []Rule {
	out := make([]Rule, 0, len(rules))
	for _, r := range rules {
		out = append(out, Rule{Keyword: strings.ToLower(strings.TrimSpace(r.Keyword)), Category: r.Category})
	}
	return out
}
