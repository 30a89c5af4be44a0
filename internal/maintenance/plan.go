package maintenance

import (
	json "github.com/goccy/go-json"
)

// Plan is a maintenance plan record as exported from the source system.
type Plan struct {
	ID                           json.RawMessage `json:"Id"`
	NextSuggestedMaintenanceDate json.RawMessage `json:"NextSuggestedMaintenanceDate,omitempty"`
	MaintenancePlanNumber        string          `json:"MaintenancePlanNumber"`
	MaintenancePlanTitle         string          `json:"MaintenancePlanTitle"`
	StartDate                    Timestamp       `json:"StartDate"`
	EndDate                      Timestamp       `json:"EndDate"`
	Frequency                    int             `json:"Frequency"`
	FrequencyType                FrequencyType   `json:"FrequencyType"`
}

// FrequencyType is the unit a plan's Frequency is counted in.
type FrequencyType string

// Frequency type constants
const (
	FrequencySeconds FrequencyType = "Seconds"
	FrequencyMinutes FrequencyType = "Minutes"
	FrequencyHours   FrequencyType = "Hours"
	FrequencyDays    FrequencyType = "Days"
	FrequencyWeeks   FrequencyType = "Weeks"
	FrequencyMonths  FrequencyType = "Months"
	FrequencyYears   FrequencyType = "Years"
)

// FrequencyTypes lists every supported unit, smallest first.
var FrequencyTypes = []FrequencyType{
	FrequencySeconds,
	FrequencyMinutes,
	FrequencyHours,
	FrequencyDays,
	FrequencyWeeks,
	FrequencyMonths,
	FrequencyYears,
}

// Label identifies the plan in log lines and error messages.
func (p Plan) Label() string {
	if p.MaintenancePlanNumber != "" {
		return p.MaintenancePlanNumber
	}
	return string(p.ID)
}
