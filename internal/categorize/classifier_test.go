package categorize

import "testing"

func TestClassify(t *testing.T) {
	c := Default()

	tests := []struct {
		vendor string
		want   string
	}{
		{"SWIGGY ORDER #123", "Food"},
		{"Swiggy Bangalore", "Food"},
		{"completely-unknown-vendor", Fallback},
		{"", Fallback},
		{"Apollo Pharmacy", "Medical"},
		{"Nursing Home Pune", "Hospital"},
		{"HDFC Bank", WalletTopUp},
		{"PaytmMall order", "Shopping"},
		{"maxfashion store", "Shopping"},
		{"Starbucks Coffee", "Cafe"},
		{"Zerodha Broking", "Investments"},
		{"FASTag recharge", "Recharges"},
	}

	for _, tt := range tests {
		t.Run(tt.vendor, func(t *testing.T) {
			if got := c.Classify(tt.vendor); got != tt.want {
				t.Errorf("Classify(%q) = %q, want %q", tt.vendor, got, tt.want)
			}
		})
	}
}

func TestClassifyFirstRuleWins(t *testing.T) {
	c := New([]Rule{{"pharmacy", "Pharmacy"}, {"medical", "Medical"}}, "")
	if got := c.Classify("City Medical Pharmacy"); got != "Pharmacy" {
		t.Errorf("Classify() = %q, want Pharmacy", got)
	}

	c = New([]Rule{{"medical", "Medical"}, {"pharmacy", "Pharmacy"}}, "Other")
	if got := c.Classify("City Medical Pharmacy"); got != "Medical" {
		t.Errorf("Classify() = %q, want Medical", got)
	}
	if got := c.Classify("bookstore"); got != "Other" {
		t.Errorf("Classify() fallback = %q, want Other", got)
	}
}

func TestNewLowercasesKeywords(t *testing.T) {
	c := New([]Rule{{" ACME ", "Tools"}}, "")
	if got := c.Classify("acme hardware"); got != "Tools" {
		t.Errorf("Classify() = %q, want Tools", got)
	}
	if got := c.Classify("ACMEWORKS"); got != "Tools" {
		t.Errorf("Classify() = %q, want Tools", got)
	}
}

func TestDefaultRulesAreLowercase(t *testing.T) {
	for _, r := range DefaultRules() {
		for _, ch := range r.Keyword {
			if ch >= 'A' && ch <= 'Z' {
				t.Errorf("keyword %q is not lower-case", r.Keyword)
				break
			}
		}
	}
}

func TestTagSetMatch(t *testing.T) {
	tags := DefaultTagSet()

	tests := []struct {
		name   string
		line   string
		want   string
		wantOK bool
	}{
		{"food tag", "#Food lunch with team", "Food", true},
		{"no hash", "food lunch", "", false},
		{"unknown tag", "#gifts", "", false},
		{"bill before medical", "#Medical bills", "Bills", true},
		{"transfer", "Tag: #Transfer", "Transfers", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tags.Match(tt.line)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("Match(%q) = (%q, %v), want (%q, %v)", tt.line, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}
