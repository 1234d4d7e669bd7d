// Package limit implements the optional hard limit on input length.
package limit

import (
	"strconv"
	"strings"
)

// State is the enforcement state of a Limit.
type State int

const (
	// Disabled means no truncation happens.
	Disabled State = iota
	// EnabledUnset means the limit is switched on but has no valid value.
	EnabledUnset
	// EnabledSet means text longer than the value is truncated.
	EnabledSet
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case EnabledUnset:
		return "enabled-unset"
	case EnabledSet:
		return "enabled-set"
	default:
		return "disabled"
	}
}

// Limit is an immutable character-limit setting. The zero value is disabled
// with no value.
type Limit struct {
	enabled bool
	raw     string
	value   int
}

// New returns a limit with the given switch position and raw input.
func New(enabled bool, raw string) Limit {
	return Limit{enabled: enabled}.WithInput(raw)
}

// Parse accepts a positive decimal integer, ignoring surrounding whitespace.
func Parse(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

// Toggle switches enforcement on or off. The entered value is kept.
func (l Limit) Toggle(enabled bool) Limit {
	l.enabled = enabled
	return l
}

// WithInput re-parses the entered limit value.
func (l Limit) WithInput(raw string) Limit {
	l.raw = raw
	l.value, _ = Parse(raw)
	return l
}

// Enabled reports whether the limit switch is on.
func (l Limit) Enabled() bool {
	return l.enabled
}

// Input returns the raw entered value.
func (l Limit) Input() string {
	return l.raw
}

// Value returns the parsed limit, if the entered value is valid.
func (l Limit) Value() (int, bool) {
	return l.value, l.value > 0
}

// State returns the current enforcement state.
func (l Limit) State() State {
	switch {
	case !l.enabled:
		return Disabled
	case l.value > 0:
		return EnabledSet
	default:
		return EnabledUnset
	}
}

// Enforce truncates text to the limit when the state is EnabledSet. caret is a
// rune offset; after truncation it is placed at the truncation point,
// otherwise it is clamped to the text length. The boolean reports whether
// text was truncated.
func (l Limit) Enforce(text string, caret int) (string, int, bool) {
	if l.State() != EnabledSet {
		return text, clamp(caret, text), false
	}
	runes := []rune(text)
	if len(runes) <= l.value {
		return text, clamp(caret, text), false
	}
	return string(runes[:l.value]), l.value, true
}

// Remaining returns how many more runes fit under the limit. ok is false
// unless the state is EnabledSet.
func (l Limit) Remaining(text string) (int, bool) {
	if l.State() != EnabledSet {
		return 0, false
	}
	return l.value - len([]rune(text)), true
}

func clamp(caret int, text string) int {
	if caret < 0 {
		return 0
	}
	if n := len([]rune(text)); caret > n {
		return n
	}
	return caret
}
