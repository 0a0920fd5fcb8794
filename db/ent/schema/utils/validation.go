package utils

import (
	"fmt"
	"strings"
)

// EnumValidator builds a field validator accepting exactly the allowed values.
// Status and role columns are plain strings at the schema level; this keeps
// their value sets closed.
func EnumValidator(allowed ...string) func(string) error {
	set := make(map[string]struct{}, len(allowed))
	for _, a := range allowed {
		set[a] = struct{}{}
	}
	return func(s string) error {
		if _, ok := set[s]; ok {
			return nil
		}
		return fmt.Errorf("value %q not in {%s}", s, strings.Join(allowed, ", "))
	}
}
