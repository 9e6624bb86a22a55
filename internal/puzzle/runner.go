package puzzle

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Expected holds known answers for a day. Empty fields are not checked.
type Expected struct {
	Part1 string
	Part2 string
}

// MismatchError reports an answer that differs from the expected one.
type MismatchError struct {
	Day  int
	Part int
	Got  string
	Want string
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("day %d part %d: got %s, want %s", e.Day, e.Part, e.Got, e.Want)
}

type Result struct {
	Day     int
	Part1   string
	Part2   string
	Elapsed time.Duration
}

type Runner struct {
	Input    InputFunc
	Expected map[int]Expected
	Log      *zap.Logger

	// Workers bounds how many days are solved at once. Zero means one
	// goroutine per day.
	Workers int
}

// Run solves days and returns their results in the order given. The
// first failure cancels the remaining days.
func (r *Runner) Run(ctx context.Context, days []Day) ([]Result, error) {
	log := r.Log
	if log == nil {
		log = zap.NewNop()
	}
	input := r.Input
	if input == nil {
		input = SampleInput
	}

	results := make([]Result, len(days))
	g, ctx := errgroup.WithContext(ctx)
	if r.Workers > 0 {
		g.SetLimit(r.Workers)
	}
	for i, d := range days {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := r.solve(d, input, log.With(zap.Int("day", d.Number)))
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *Runner) solve(d Day, input InputFunc, log *zap.Logger) (Result, error) {
	start := time.Now()
	text, err := input(d)
	if err != nil {
		return Result{}, err
	}
	res := Result{Day: d.Number}
	want := r.Expected[d.Number]

	for i, p := range []struct {
		part Part
		want string
		got  *string
	}{
		{d.Part1, want.Part1, &res.Part1},
		{d.Part2, want.Part2, &res.Part2},
	} {
		partStart := time.Now()
		v, err := p.part(text)
		if err != nil {
			return Result{}, fmt.Errorf("day %d part %d: %w", d.Number, i+1, err)
		}
		*p.got = fmt.Sprint(v)
		log.Debug("solved part",
			zap.Int("part", i+1),
			zap.String("answer", *p.got),
			zap.Duration("elapsed", time.Since(partStart)))
		if p.want != "" && p.want != *p.got {
			return Result{}, &MismatchError{Day: d.Number, Part: i + 1, Got: *p.got, Want: p.want}
		}
	}

	res.Elapsed = time.Since(start)
	log.Info("solved day", zap.Duration("elapsed", res.Elapsed))
	return res, nil
}
