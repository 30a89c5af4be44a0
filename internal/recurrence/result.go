package recurrence

import "github.com/alfredodrv/mwrgen/internal/maintenance"

// Result is the outcome of deriving the rule for one plan. Exactly one of
// Rule and Err is set.
type Result struct {
	Rule string
	Err  error
}

// OK reports whether derivation succeeded.
func (r Result) OK() bool {
	return r.Err == nil
}

// DerivePlan derives the rule for p. Failures are returned in the result
// rather than aborting so callers can decide how to treat a bad record.
func DerivePlan(p maintenance.Plan) Result {
	rule, err := Derive(p.FrequencyType, p.Frequency, p.StartDate.Time, p.EndDate.Time)
	if err != nil {
		return Result{Err: err}
	}
	return Result{Rule: rule}
}
