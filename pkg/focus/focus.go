package focus

import (
	"errors"
	"strings"
)

// ErrInvalidFlag is returned when a focus flag cannot be read as a boolean.
var ErrInvalidFlag = errors.New("invalid focus mode flag")

// Context is the user context snapshot the evaluator reduces.
// A nil FocusMode means the caller did not say, which counts as not focused.
type Context struct {
	FocusMode *bool
}

// On returns a Context with focus mode set to v.
func On(v bool) Context {
	return Context{FocusMode: &v}
}

// IsFocused reports whether the user wants interruptions suppressed.
func IsFocused(c Context) bool {
	if c.FocusMode == nil {
		return false
	}
	return *c.FocusMode
}

// ParseFlag reads a focus flag as it arrives in a query string.
// An empty value means the flag was not supplied.
func ParseFlag(raw string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return false, nil
	case "1", "true", "t", "yes", "y", "on":
		return true, nil
	case "0", "false", "f", "no", "n", "off":
		return false, nil
	default:
		return false, errors.Join(ErrInvalidFlag, errors.New("unrecognized value "+raw))
	}
}
