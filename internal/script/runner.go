package script

import (
	"context"
	"fmt"
	"strings"
	"time"

	"capdemo/internal/capability"
	"capdemo/pkg/logging"
)

// Status is the outcome of one step.
type Status string

const (
	StatusPassed  Status = "passed"
	StatusFailed  Status = "failed"
	StatusSkipped Status = "skipped"
)

// StepResult records what happened to one step.
type StepResult struct {
	Step     Step
	Status   Status
	Err      error
	Duration time.Duration
}

// Report is the outcome of a whole script run.
type Report struct {
	Script  string
	Results []StepResult
}

// Counts returns the number of passed, failed and skipped steps.
func (r *Report) Counts() (passed, failed, skipped int) {
	for _, res := range r.Results {
		switch res.Status {
		case StatusPassed:
			passed++
		case StatusFailed:
			failed++
		case StatusSkipped:
			skipped++
		}
	}
	return passed, failed, skipped
}

// Err summarizes failed and skipped steps, or returns nil when all passed.
func (r *Report) Err() error {
	var msgs []string
	for _, res := range r.Results {
		switch res.Status {
		case StatusFailed:
			msgs = append(msgs, fmt.Sprintf("%s: %v", res.Step.Label(), res.Err))
		case StatusSkipped:
			msgs = append(msgs, fmt.Sprintf("%s: skipped", res.Step.Label()))
		}
	}
	if len(msgs) == 0 {
		return nil
	}
	return fmt.Errorf("script %q: %d step(s) did not pass: %s", r.Script, len(msgs), strings.Join(msgs, "; "))
}

// Runner executes scripts against a registry.
type Runner struct {
	registry *capability.Registry
}

// NewRunner creates a runner for registry.
func NewRunner(registry *capability.Registry) *Runner {
	return &Runner{registry: registry}
}

// Run executes the steps in order. A failing step ends only that step; output
// already emitted stays valid and the run continues. Once ctx is done the
// remaining steps are skipped.
func (r *Runner) Run(ctx context.Context, s *Script) *Report {
	report := &Report{Script: s.Name}

	for _, step := range s.Steps {
		if ctx.Err() != nil {
			report.Results = append(report.Results, StepResult{Step: step, Status: StatusSkipped, Err: ctx.Err()})
			continue
		}

		start := time.Now()
		err := r.registry.Invoke(ctx, step.Capability, step.Variant, step.Args...)
		res := StepResult{Step: step, Duration: time.Since(start)}

		if verr := checkExpectation(step.Expect, err); verr != nil {
			res.Status = StatusFailed
			res.Err = verr
			logging.Warn("Runner", "Step %s failed: %v", step.Label(), verr)
		} else {
			res.Status = StatusPassed
			res.Err = err
			logging.Debug("Runner", "Step %s passed", step.Label())
		}
		report.Results = append(report.Results, res)
	}

	passed, failed, skipped := report.Counts()
	logging.Info("Runner", "Script %s finished: %d passed, %d failed, %d skipped", s.Name, passed, failed, skipped)
	return report
}

// checkExpectation returns nil when err matches expect.
func checkExpectation(expect Expectation, err error) error {
	switch expect {
	case ExpectSuccess:
		return err
	case ExpectUnknownCapability:
		if capability.IsUnknownCapability(err) {
			return nil
		}
	case ExpectUnknownVariant:
		if capability.IsUnknownVariant(err) {
			return nil
		}
	case ExpectFailure:
		if err != nil && !capability.IsUnknownCapability(err) && !capability.IsUnknownVariant(err) {
			return nil
		}
	}
	if err == nil {
		return fmt.Errorf("expected %s, got success", expect)
	}
	return fmt.Errorf("expected %s, got: %w", expect, err)
}
