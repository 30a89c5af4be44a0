package maintenance

import (
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Time
	}{
		{"utc", "2030-01-01T00:00:00Z", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"offset", "2030-01-01T02:00:00+02:00", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"fractional", "2030-01-01T00:00:00.250Z", time.Date(2030, 1, 1, 0, 0, 0, 250_000_000, time.UTC)},
		{"salesforce utc", "2030-01-01T00:00:00.000+0000", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"salesforce offset", "2030-01-01T00:00:00.000-0500", time.Date(2030, 1, 1, 5, 0, 0, 0, time.UTC)},
		{"offset without colon", "2030-01-01T07:00:00+0700", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"no offset", "2030-01-01T08:30:00", time.Date(2030, 1, 1, 8, 30, 0, 0, time.UTC)},
		{"date only", "2030-01-01", time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, got.Equal(tt.want), "got %s, want %s", got.Time, tt.want)
		})
	}
}

func TestParseTimestamp_Invalid(t *testing.T) {
	_, err := ParseTimestamp("next tuesday")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "next tuesday")
}

func TestPlan_UnmarshalKeepsOpaqueFields(t *testing.T) {
	data := []byte(`{
		"Id": "a0B5g00000XyZ",
		"NextSuggestedMaintenanceDate": "2030-01-01",
		"MaintenancePlanNumber": "MP-7",
		"MaintenancePlanTitle": "Boiler",
		"StartDate": "2025-01-01T00:00:00Z",
		"EndDate": "2030-01-01",
		"Frequency": 2,
		"FrequencyType": "Weeks"
	}`)

	var p Plan
	require.NoError(t, json.Unmarshal(data, &p))

	assert.Equal(t, `"a0B5g00000XyZ"`, string(p.ID))
	assert.Equal(t, `"2030-01-01"`, string(p.NextSuggestedMaintenanceDate))
	assert.Equal(t, FrequencyWeeks, p.FrequencyType)
	assert.Equal(t, 2, p.Frequency)
	assert.True(t, p.EndDate.Equal(time.Date(2030, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func TestPlan_UnmarshalBadDate(t *testing.T) {
	var p Plan
	err := json.Unmarshal([]byte(`{"Id":1,"EndDate":"soon"}`), &p)
	require.Error(t, err)
}

func TestNewWorkRule(t *testing.T) {
	p := Plan{
		ID:                           json.RawMessage(`1`),
		NextSuggestedMaintenanceDate: json.RawMessage(`"2030-01-01"`),
		MaintenancePlanNumber:        "MP-1",
		MaintenancePlanTitle:         "Pump Check",
	}

	rule := NewWorkRule(p, "FREQ=DAILY")

	assert.Equal(t, "Rule for Pump Check - MP-1", rule.Title)
	assert.Equal(t, RuleTypeCalendar, rule.Type)
	assert.Equal(t, DefaultSortOrder, rule.SortOrder)
	assert.Equal(t, "FREQ=DAILY", rule.RecurrencePattern)
	assert.Equal(t, `1`, string(rule.ParentMaintenancePlanID))
}

func TestWorkRule_MarshalFieldOrder(t *testing.T) {
	rule := WorkRule{
		NextSuggestedMaintenanceDate: json.RawMessage(`"2030-01-01"`),
		ParentMaintenancePlanID:      json.RawMessage(`1`),
		Title:                        "Rule for Pump Check - MP-1",
		Type:                         RuleTypeCalendar,
		RecurrencePattern:            "FREQ=MONTHLY;INTERVAL=3;UNTIL=20300101T000000Z",
		SortOrder:                    1,
	}

	data, err := json.Marshal(rule)
	require.NoError(t, err)
	assert.Equal(t,
		`{"NextSuggestedMaintenanceDate":"2030-01-01","ParentMaintenancePlanId":1,"Title":"Rule for Pump Check - MP-1","Type":"Calendar","RecurrencePattern":"FREQ=MONTHLY;INTERVAL=3;UNTIL=20300101T000000Z","SortOrder":1}`,
		string(data))
}

func TestWorkRule_OmitsMissingNextDate(t *testing.T) {
	data, err := json.Marshal(WorkRule{ParentMaintenancePlanID: json.RawMessage(`"x"`)})
	require.NoError(t, err)
	assert.NotContains(t, string(data), "NextSuggestedMaintenanceDate")
}
