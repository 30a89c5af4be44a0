// Package workrule turns maintenance plans into maintenance work rules.
package workrule

import (
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/alfredodrv/mwrgen/internal/maintenance"
	"github.com/alfredodrv/mwrgen/internal/recurrence"
)

// ErrorPolicy decides what happens when a plan's rule cannot be derived.
type ErrorPolicy string

// Error policy constants
const (
	// PolicyAbort fails the whole run on the first bad plan.
	PolicyAbort ErrorPolicy = "abort"
	// PolicySkip drops the bad plan, records it and keeps going.
	PolicySkip ErrorPolicy = "skip"
)

// ParseErrorPolicy validates a policy name. An empty name means PolicyAbort.
func ParseErrorPolicy(s string) (ErrorPolicy, error) {
	switch ErrorPolicy(s) {
	case "", PolicyAbort:
		return PolicyAbort, nil
	case PolicySkip:
		return PolicySkip, nil
	default:
		return "", fmt.Errorf("invalid error policy %q (want abort|skip)", s)
	}
}

// Options controls a pipeline run.
type Options struct {
	// Cutoff is the instant plans are judged past-due against.
	Cutoff         time.Time
	IncludePastDue bool
	OnError        ErrorPolicy
	Logger         zerolog.Logger
}

// Failure records a plan skipped under PolicySkip.
type Failure struct {
	Index int
	Plan  maintenance.Plan
	Err   error
}

// Result is the output of a pipeline run.
type Result struct {
	Rules   []maintenance.WorkRule
	PastDue int // past-due plans left out
	Failed  []Failure
}

// PlanError wraps a derivation failure with the position of the plan that caused it.
type PlanError struct {
	Index int
	Label string
	Err   error
}

func (e *PlanError) Error() string {
	return fmt.Sprintf("plan %d (%s): %v", e.Index, e.Label, e.Err)
}

func (e *PlanError) Unwrap() error {
	return e.Err
}

// IsPastDue reports whether p ended strictly before cutoff.
func IsPastDue(p maintenance.Plan, cutoff time.Time) bool {
	return p.EndDate.Before(cutoff)
}

// Generate builds one work rule per accepted plan, in input order.
//
// Under PolicyAbort the first derivation failure is returned as a *PlanError
// and no rules are returned.
func Generate(plans []maintenance.Plan, opts Options) (*Result, error) {
	log := opts.Logger
	res := &Result{Rules: make([]maintenance.WorkRule, 0, len(plans))}

	for i, p := range plans {
		if IsPastDue(p, opts.Cutoff) && !opts.IncludePastDue {
			res.PastDue++
			log.Debug().Int("index", i).Str("plan", p.Label()).Time("end_date", p.EndDate.Time).Msg("Skipping past-due plan")
			continue
		}

		derived := recurrence.DerivePlan(p)
		if !derived.OK() {
			if opts.OnError != PolicySkip {
				return nil, &PlanError{Index: i, Label: p.Label(), Err: derived.Err}
			}
			log.Warn().Err(derived.Err).Int("index", i).Str("plan", p.Label()).Msg("Skipping plan")
			res.Failed = append(res.Failed, Failure{Index: i, Plan: p, Err: derived.Err})
			continue
		}

		log.Debug().Int("index", i).Str("plan", p.Label()).Str("rule", derived.Rule).Msg("Derived recurrence rule")
		res.Rules = append(res.Rules, maintenance.NewWorkRule(p, derived.Rule))
	}

	return res, nil
}
