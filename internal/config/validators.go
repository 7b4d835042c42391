package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Validator normalizes a raw value or rejects it. Rejected values are
// replaced by the key's default.
type Validator func(value string) (string, error)

func intAtLeast(floor int) Validator {
	return func(value string) (string, error) {
		n, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return "", fmt.Errorf("must be an integer")
		}
		if n < floor {
			return "", fmt.Errorf("must be at least %d", floor)
		}
		return strconv.Itoa(n), nil
	}
}

func oneOf(allowed ...string) Validator {
	return func(value string) (string, error) {
		v := strings.ToLower(strings.TrimSpace(value))
		for _, a := range allowed {
			if v == a {
				return v, nil
			}
		}
		return "", fmt.Errorf("must be one of %s", strings.Join(allowed, ", "))
	}
}

func boolean() Validator {
	return func(value string) (string, error) {
		b, ok := parseBool(value)
		if !ok {
			return "", fmt.Errorf("must be a boolean (1, true, yes, on, 0, false, no, off)")
		}
		return strconv.FormatBool(b), nil
	}
}

// keyPrefix appends the ':' separator if missing.
func keyPrefix() Validator {
	return func(value string) (string, error) {
		v := strings.TrimSpace(value)
		if v == "" {
			return "", fmt.Errorf("must not be empty")
		}
		if !strings.HasSuffix(v, ":") {
			v += ":"
		}
		return v, nil
	}
}

func parseBool(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "1", "true", "yes", "on":
		return true, true
	case "0", "false", "no", "off":
		return false, true
	default:
		return false, false
	}
}
