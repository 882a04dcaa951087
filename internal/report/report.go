// Package report runs named steps and turns their outcome into
// domain.TestResult values. A failing step is data, never a fault: errors and
// panics are captured in the result and never propagated to the caller.
package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"sports_syncer/internal/domain"
)

// Outcome is what a step reports when it returns without error.
type Outcome struct {
	Failed  bool
	Message string
	Data    any
}

// Func is the unit of work behind a step.
type Func func(ctx context.Context) (Outcome, error)

// SyncFunc is a sync operation reporting its synced/errors tally.
type SyncFunc func(ctx context.Context) (domain.SyncRunSummary, error)

type Step struct {
	Name string
	Run  Func
}

// SyncStep adapts a sync operation into a step.
func SyncStep(name string, fn SyncFunc) Step {
	return Step{Name: name, Run: syncFunc(fn)}
}

// Summary is the aggregate of a set of steps. Results keep submission order.
type Summary struct {
	Results  []domain.TestResult
	Success  bool
	Duration time.Duration
}

// Passed returns the number of successful results.
func (s Summary) Passed() int {
	n := 0
	for _, r := range s.Results {
		if r.Success {
			n++
		}
	}
	return n
}

// Run executes fn, timing it, and converts the outcome into a result.
func Run(ctx context.Context, name string, fn Func) (result domain.TestResult) {
	start := time.Now()

	defer func() {
		if r := recover(); r != nil {
			result = finish(name, start, false, fmt.Sprintf("panic: %v", r), nil)
		}
	}()

	out, err := fn(ctx)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = fmt.Sprintf("%T", err)
		}
		return finish(name, start, false, msg, out.Data)
	}

	msg := out.Message
	if msg == "" {
		msg = "ok"
	}
	return finish(name, start, !out.Failed, msg, out.Data)
}

// RunSync runs a sync operation. Success means the tally has no errors.
func RunSync(ctx context.Context, name string, fn SyncFunc) domain.TestResult {
	return Run(ctx, name, syncFunc(fn))
}

// RunAll runs every step concurrently and waits for all of them.
func RunAll(ctx context.Context, steps []Step) Summary {
	start := time.Now()
	results := make([]domain.TestResult, len(steps))

	var g errgroup.Group
	for i, step := range steps {
		i, step := i, step
		g.Go(func() error {
			results[i] = Run(ctx, step.Name, step.Run)
			return nil
		})
	}
	_ = g.Wait()

	return Summary{
		Results:  results,
		Success:  AllPassed(results),
		Duration: time.Since(start),
	}
}

// RunSequence runs steps in order and stops after the first failure.
func RunSequence(ctx context.Context, steps []Step) Summary {
	start := time.Now()
	results := make([]domain.TestResult, 0, len(steps))

	for _, step := range steps {
		r := Run(ctx, step.Name, step.Run)
		results = append(results, r)
		if !r.Success {
			break
		}
	}

	return Summary{
		Results:  results,
		Success:  AllPassed(results),
		Duration: time.Since(start),
	}
}

// AllPassed is the logical AND of every result's success.
func AllPassed(results []domain.TestResult) bool {
	for _, r := range results {
		if !r.Success {
			return false
		}
	}
	return true
}

func syncFunc(fn SyncFunc) Func {
	return func(ctx context.Context) (Outcome, error) {
		sum, err := fn(ctx)
		if err != nil {
			return Outcome{Data: sum}, err
		}
		return Outcome{
			Failed:  sum.Errors > 0,
			Message: fmt.Sprintf("synced %d records, %d errors", sum.Synced, sum.Errors),
			Data:    sum,
		}, nil
	}
}

func finish(name string, start time.Time, success bool, msg string, data any) domain.TestResult {
	ms := time.Since(start).Milliseconds()
	return domain.TestResult{
		Test:       name,
		Success:    success,
		Message:    msg,
		DurationMS: &ms,
		Data:       data,
	}
}
