package ledger

import (
	"fmt"
	"strings"
	"unicode"
)

// Root categories permitted as the first segment of an account name.
var rootCategories = map[string]bool{
	"Assets":      true,
	"Liabilities": true,
	"Equity":      true,
	"Income":      true,
	"Expenses":    true,
}

// ValidateAccount checks that name is a well-formed beancount account:
// colon-separated segments, a known root category, every segment starting
// with an uppercase letter or digit.
func ValidateAccount(name string) error {
	segments := strings.Split(name, ":")
	if len(segments) < 2 {
		return fmt.Errorf("account %q: need at least a category and one component", name)
	}
	if !rootCategories[segments[0]] {
		return fmt.Errorf("account %q: unknown root category %q", name, segments[0])
	}
	for _, seg := range segments[1:] {
		if seg == "" {
			return fmt.Errorf("account %q: empty component", name)
		}
		first := rune(seg[0])
		if !unicode.IsUpper(first) && !unicode.IsDigit(first) {
			return fmt.Errorf("account %q: component %q must start with an uppercase letter or digit", name, seg)
		}
	}
	return nil
}
