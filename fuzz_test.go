package nccase

import (
	"strings"
	"testing"
)

func FuzzConversions(f *testing.F) {
	f.Add("Hey there")
	f.Add("SCREEN_NAME")
	f.Add("mobile-number")
	f.Add("some_mixed-delims.here")
	f.Add("hello")
	f.Add("")
	f.Add("   ")
	f.Add("_leading")
	f.Add("double  space")
	f.Add("123 numbers")
	f.Add("\xff\xfe")
	f.Add("ünïcode words")

	f.Fuzz(func(t *testing.T, s string) {
		// Determinism: every conversion returns the same result on
		// repeated calls, including the same error.
		camel1, err1 := ToCamelCase(s)
		camel2, err2 := ToCamelCase(s)
		if camel1 != camel2 || err1 != err2 {
			t.Errorf("ToCamelCase not deterministic for %q", s)
		}

		// Lowercase invariant for dot and snake output.
		if dot, err := ToDotCase(s); err == nil {
			for _, ch := range dot {
				if ch >= 'A' && ch <= 'Z' {
					t.Errorf("ToDotCase(%q) = %q contains uppercase", s, dot)
				}
			}
		}
		if snake, err := ToSnakeCase(s); err == nil {
			for _, ch := range snake {
				if ch >= 'A' && ch <= 'Z' {
					t.Errorf("ToSnakeCase(%q) = %q contains uppercase", s, snake)
				}
			}
		}

		// Separator substitution: kebab output never contains a
		// delimiter other than the configured separator.
		if kebab, err := ToKebabCase(s, KebabOptions{Separator: "+"}); err == nil {
			for _, ch := range " _.-" {
				if strings.ContainsRune(kebab, ch) {
					t.Errorf("ToKebabCase(%q) = %q contains delimiter %q", s, kebab, ch)
				}
			}
		}

		// Successful camel output re-converts to itself when it lands on
		// the fast path.
		if err1 == nil && camelPattern.MatchString(camel1) {
			if again, err := ToCamelCase(camel1); err == nil && again != camel1 {
				t.Errorf("ToCamelCase not idempotent:\ninput:  %q\nfirst:  %q\nsecond: %q", s, camel1, again)
			}
		}
	})
}
