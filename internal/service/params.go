package service

import "time"

// Event types written to the window event log.
const (
	EventDecisionChange = "DECISION_CHANGE"
	EventError          = "ERROR"
	EventSystem         = "SYSTEM"
)

// ReadingParams is one set of already-parsed readings from the device.
type ReadingParams struct {
	DesiredTempC  float64
	InsideTempC   float64
	OutsideTempC  float64
	ConditionCode int
	RecordedAt    time.Time // zero means now
}

// Evaluation is the decision for one ReadingParams.
type Evaluation struct {
	Open      bool   `json:"open"`
	Favorable bool   `json:"favorable"`
	Branch    string `json:"branch"`
	Reason    string `json:"reason"`
}

type ConditionInfo struct {
	Code      int    `json:"code"`
	Name      string `json:"name"`
	Favorable bool   `json:"favorable"`
}

// LogFilter supports history filtering by time range and type.
type LogFilter struct {
	From time.Time // inclusive; zero means no lower bound
	To   time.Time // inclusive; zero means no upper bound
	Type string    // "", "DECISION_CHANGE", "ERROR", "SYSTEM"
}
