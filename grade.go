package uomgrade

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/lone-faerie/uomgrade/log"
	"github.com/lone-faerie/uomgrade/tolerance"
	"github.com/lone-faerie/uomgrade/units"
)

var ErrMalformedNumber = errors.New("malformed number")

// NumberError records a control or answer value that could not be parsed.
type NumberError struct {
	Field string // "control" or "answer"
	Input string
	Err   error // error from strconv, if any
}

func (e *NumberError) Error() string {
	s := e.Field + " " + strconv.Quote(e.Input) + " is a " + ErrMalformedNumber.Error()
	if e.Err != nil {
		s += " (" + e.Err.Error() + ")"
	}
	return s
}

func (e *NumberError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrMalformedNumber}
	}
	return []error{ErrMalformedNumber, e.Err}
}

// goOnlySyntax reports whether s uses number syntax that strconv accepts
// but a plain decimal literal does not: a base prefix or digit separators.
func goOnlySyntax(s string) bool {
	if strings.ContainsRune(s, '_') {
		return true
	}
	s = strings.TrimLeft(s, "+-")
	return len(s) > 1 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// parseNumber parses a decimal floating-point literal. Literals too large
// for a float64 are ±Inf rather than an error.
func parseNumber(field, s string) (float64, error) {
	if goOnlySyntax(s) {
		return 0, &NumberError{Field: field, Input: s}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil && !(errors.Is(err, strconv.ErrRange) && math.IsInf(v, 0)) {
		return 0, &NumberError{Field: field, Input: s, Err: err}
	}
	if math.IsNaN(v) {
		return 0, &NumberError{Field: field, Input: s}
	}
	return v, nil
}

// Result is the outcome of grading a single answer.
type Result struct {
	Verdict  Verdict
	From, To units.Unit
	Control  float64
	Answer   float64
	Expected float64 // only meaningful if Err is nil
	Err      error   // reason for an Invalid verdict
}

// Grader grades answers against a tolerance profile.
// A Grader is safe for concurrent use.
type Grader struct {
	profile tolerance.Profile
}

// Option configures a [Grader].
type Option func(*Grader)

// WithProfile sets the tolerance profile used to compare answers.
// The default is [tolerance.Single].
func WithProfile(p tolerance.Profile) Option {
	return func(g *Grader) {
		g.profile = p
	}
}

// New returns a new Grader with the given options.
func New(opts ...Option) *Grader {
	g := &Grader{profile: tolerance.Single}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Profile returns the tolerance profile of g.
func (g *Grader) Profile() tolerance.Profile {
	return g.profile
}

var defaultGrader = New()

// Grade converts control from the input unit to the target unit and
// compares the result to answer. Every failure to parse or convert yields
// an [Invalid] verdict with the cause in [Result.Err].
func (g *Grader) Grade(input, target, control, answer string) (res Result) {
	defer func() {
		if res.Err != nil {
			log.Debug("Invalid answer", "cause", res.Err)
		}
	}()

	if res.From, res.Err = units.Parse(input); res.Err != nil {
		return
	}
	if res.To, res.Err = units.Parse(target); res.Err != nil {
		return
	}
	if res.Control, res.Err = parseNumber("control", control); res.Err != nil {
		return
	}
	if res.Answer, res.Err = parseNumber("answer", answer); res.Err != nil {
		return
	}

	expected, ok := units.Convert(res.From, res.To, res.Control)
	if !ok {
		res.Err = &units.ConversionError{From: res.From, To: res.To}
		return
	}
	res.Expected = expected

	if g.profile.Close(expected, res.Answer) {
		res.Verdict = Correct
	} else {
		res.Verdict = Incorrect
	}
	return
}

// Evaluate is like [Grader.Grade] but returns only the verdict.
func (g *Grader) Evaluate(input, target, control, answer string) Verdict {
	return g.Grade(input, target, control, answer).Verdict
}

// Grade grades an answer using [tolerance.Single].
func Grade(input, target, control, answer string) Result {
	return defaultGrader.Grade(input, target, control, answer)
}

// Evaluate returns the verdict of an answer using [tolerance.Single].
func Evaluate(input, target, control, answer string) Verdict {
	return defaultGrader.Evaluate(input, target, control, answer)
}
