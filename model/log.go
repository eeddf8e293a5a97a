package model

// LogEntry is one formatted reading in the scrolling event log.
// No is a monotonic sequence number that keeps increasing even after
// older entries are evicted.
type LogEntry struct {
	No         int    `json:"no"`
	Time       string `json:"time"`
	SensorName string `json:"sensorName"`
	Value      string `json:"value"` // 2-decimal formatted
	Status     Status `json:"status"`
}
