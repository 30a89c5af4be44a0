package maintenance

import (
	"fmt"

	json "github.com/goccy/go-json"
)

// RuleTypeCalendar is the only rule type this tool produces.
const RuleTypeCalendar = "Calendar"

// DefaultSortOrder is assigned to every generated rule.
const DefaultSortOrder = 1

// WorkRule is a maintenance work rule derived from a single plan.
type WorkRule struct {
	NextSuggestedMaintenanceDate json.RawMessage `json:"NextSuggestedMaintenanceDate,omitempty"`
	ParentMaintenancePlanID      json.RawMessage `json:"ParentMaintenancePlanId"`
	Title                        string          `json:"Title"`
	Type                         string          `json:"Type"`
	RecurrencePattern            string          `json:"RecurrencePattern"`
	SortOrder                    int             `json:"SortOrder"`
}

// RuleTitle builds the work rule title for a plan.
func RuleTitle(p Plan) string {
	return fmt.Sprintf("Rule for %s - %s", p.MaintenancePlanTitle, p.MaintenancePlanNumber)
}

// NewWorkRule assembles the work rule for p using an already derived recurrence pattern.
func NewWorkRule(p Plan, pattern string) WorkRule {
	return WorkRule{
		NextSuggestedMaintenanceDate: p.NextSuggestedMaintenanceDate,
		ParentMaintenancePlanID:      p.ID,
		Title:                        RuleTitle(p),
		Type:                         RuleTypeCalendar,
		RecurrencePattern:            pattern,
		SortOrder:                    DefaultSortOrder,
	}
}
