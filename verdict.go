package uomgrade

import (
	"fmt"
	"strings"
)

// A Verdict is the outcome of grading an answer.
// The zero value is [Invalid].
type Verdict uint8

const (
	Invalid Verdict = iota
	Incorrect
	Correct
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Incorrect:
		return "incorrect"
	case Invalid:
		return "invalid"
	}
	return fmt.Sprintf("Verdict(%d)", uint8(v))
}

// MarshalText implements [encoding.TextMarshaler].
func (v Verdict) MarshalText() ([]byte, error) {
	if v > Correct {
		return nil, fmt.Errorf("invalid verdict %d", uint8(v))
	}
	return []byte(v.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler], ignoring case.
func (v *Verdict) UnmarshalText(b []byte) error {
	switch strings.ToLower(string(b)) {
	case "correct":
		*v = Correct
	case "incorrect":
		*v = Incorrect
	case "invalid":
		*v = Invalid
	default:
		return fmt.Errorf("unknown verdict %q", b)
	}
	return nil
}
