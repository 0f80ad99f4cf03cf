package models

// ConditionCount is how many readings in a report had a given condition code.
type ConditionCount struct {
	Code  int    `json:"code"`
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TempStats summarizes one temperature series.
type TempStats struct {
	Avg float64 `json:"avg"`
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type DailyReport struct {
	Date                string           `json:"date"` // YYYY-MM-DD in the report offset
	UTCOffsetHours      int              `json:"utc_offset_hours"`
	TotalReadings       int              `json:"total_readings"`
	OpenReadings        int              `json:"open_readings"`
	OpenPercentage      float64          `json:"open_percentage"`
	Inside              TempStats        `json:"inside"`
	Outside             TempStats        `json:"outside"`
	Conditions          []ConditionCount `json:"conditions"` // ascending by code
	MostCommonCondition *ConditionCount  `json:"most_common_condition,omitempty"`
}
