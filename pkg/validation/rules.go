package validation

import "regexp"

// Validation rule patterns
var (
	// Mobile numbers are exactly 10 digits
	MobilePattern = `^\d{10}$`

	// Minimal email shape: something@something.something. Matches anywhere
	// in the value, the same loose check the registration form always ran.
	EmailPattern = `\S+@\S+\.\S+`

	// Age is exactly two digits. This restricts registrants to ages 10-99;
	// the rule is reproduced as-is rather than widened.
	AgePattern = `^\d{2}$`
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Mobile *regexp.Regexp
	Email  *regexp.Regexp
	Age    *regexp.Regexp
}{
	Mobile: regexp.MustCompile(MobilePattern),
	Email:  regexp.MustCompile(EmailPattern),
	Age:    regexp.MustCompile(AgePattern),
}
