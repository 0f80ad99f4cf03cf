package models

import "time"

// Reading is one evaluated sample as stored by the collector.
type Reading struct {
	ID            int64     `json:"id"`
	RecordedAt    time.Time `json:"recorded_at"`
	DesiredTempC  float64   `json:"desired_temp_c"`
	InsideTempC   float64   `json:"inside_temp_c"`  // °C, "offline" sensor
	OutsideTempC  float64   `json:"outside_temp_c"` // °C, "online" weather API
	ConditionCode int       `json:"condition_code"`
	Favorable     bool      `json:"favorable"`
	IsOpen        bool      `json:"is_open"`
	Branch        string    `json:"branch"` // rule that produced IsOpen
}
