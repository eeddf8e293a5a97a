package model

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// SeriesKey is the wire key for one charted channel, e.g. "sensor_7".
func SeriesKey(id int) string {
	return fmt.Sprintf("sensor_%d", id)
}

// ChartPoint is one time-stamped sample of the selected channels.
// Values is keyed by channel id; ids selected but missing from the sensor
// set at sample time are simply absent.
type ChartPoint struct {
	Time   string
	Values map[int]float64
}

// MarshalJSON flattens the point into {"time": ..., "sensor_<id>": ...}
// so chart consumers can key series without knowing the id set upfront.
func (p ChartPoint) MarshalJSON() ([]byte, error) {
	flat := make(map[string]interface{}, len(p.Values)+1)
	flat["time"] = p.Time
	for id, v := range p.Values {
		flat[SeriesKey(id)] = v
	}
	return json.Marshal(flat)
}

// UnmarshalJSON rebuilds a point from its flattened wire form.
func (p *ChartPoint) UnmarshalJSON(data []byte) error {
	var flat map[string]json.RawMessage
	if err := json.Unmarshal(data, &flat); err != nil {
		return err
	}
	p.Values = make(map[int]float64)
	for k, raw := range flat {
		if k == "time" {
			if err := json.Unmarshal(raw, &p.Time); err != nil {
				return err
			}
			continue
		}
		idStr, ok := strings.CutPrefix(k, "sensor_")
		if !ok {
			continue
		}
		id, err := strconv.Atoi(idStr)
		if err != nil {
			continue
		}
		var v float64
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		p.Values[id] = v
	}
	return nil
}
