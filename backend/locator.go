package backend

import (
	"fmt"
	"strings"
)

// ParseLocator splits a locator into kind and target. "console" has no
// target; "file:cases.txt" has kind "file" and target "cases.txt". Only the
// first colon separates, so targets may contain colons.
func ParseLocator(locator string) (kind, target string, err error) {
	locator = strings.TrimSpace(locator)
	if locator == "" {
		return "", "", ErrInvalidLocator
	}
	kind, target, _ = strings.Cut(locator, ":")
	if kind == "" {
		return "", "", fmt.Errorf("%w: %q has no kind", ErrInvalidLocator, locator)
	}
	return kind, target, nil
}

// FormatLocator builds a locator from kind and target.
func FormatLocator(kind, target string) string {
	if target == "" {
		return kind
	}
	return fmt.Sprintf("%s:%s", kind, target)
}
