package uomgrade

import (
	"context"
	"errors"
	"io"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Case is a single problem to grade. If Expect is set, the computed verdict
// is checked against it by [Mismatches].
type Case struct {
	ID      string   `yaml:"id,omitempty" json:"id,omitempty"`
	Input   string   `yaml:"input" json:"input"`
	Target  string   `yaml:"target" json:"target"`
	Control string   `yaml:"control" json:"control"`
	Answer  string   `yaml:"answer" json:"answer"`
	Expect  *Verdict `yaml:"expect,omitempty" json:"expect,omitempty"`
}

// GradeCase grades c using g.
func (g *Grader) GradeCase(c Case) Result {
	return g.Grade(c.Input, c.Target, c.Control, c.Answer)
}

// ReadCases decodes a yaml sequence of cases from r. An empty document
// yields no cases.
func ReadCases(r io.Reader) ([]Case, error) {
	var cases []Case
	if err := yaml.NewDecoder(r).Decode(&cases); err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cases, nil
}

// GradeAll grades every case using up to workers goroutines, or
// runtime.GOMAXPROCS(0) if workers <= 0. The results are in the same order
// as cases. GradeAll stops early and returns the context's error if ctx is
// cancelled.
func (g *Grader) GradeAll(ctx context.Context, cases []Case, workers int) ([]Result, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	results := make([]Result, len(cases))

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i := range cases {
		if egCtx.Err() != nil {
			break
		}
		eg.Go(func() error {
			if err := egCtx.Err(); err != nil {
				return err
			}
			results[i] = g.GradeCase(cases[i])
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

// Mismatches returns the indices of the cases whose expected verdict
// differs from the corresponding result.
func Mismatches(cases []Case, results []Result) []int {
	var idx []int
	for i, c := range cases {
		if i >= len(results) {
			break
		}
		if c.Expect != nil && *c.Expect != results[i].Verdict {
			idx = append(idx, i)
		}
	}
	return idx
}
