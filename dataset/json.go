// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/json"
	"fmt"
)

// Wire shapes for host bindings:
//
//	DataPoint         {"features":[x0,x1,...]}
//	LabelledDataPoint {"data_point":{"features":[...]},"label":1}

type dataPointJSON struct {
	Features []float64 `json:"features"`
}

type labelledDataPointJSON struct {
	DataPoint dataPointJSON `json:"data_point"`
	Label     Label         `json:"label"`
}

// MarshalJSON implements json.Marshaler.
func (p DataPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.wire())
}

// UnmarshalJSON implements json.Unmarshaler.
func (p *DataPoint) UnmarshalJSON(b []byte) error {
	var w dataPointJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	p.features = w.Features

	return nil
}

// MarshalJSON implements json.Marshaler.
func (lp LabelledDataPoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(labelledDataPointJSON{DataPoint: lp.point.wire(), Label: lp.label})
}

// UnmarshalJSON implements json.Unmarshaler. Labels other than ±1 are
// rejected with ErrInvalidLabel.
func (lp *LabelledDataPoint) UnmarshalJSON(b []byte) error {
	var w labelledDataPointJSON
	if err := json.Unmarshal(b, &w); err != nil {
		return err
	}
	if !w.Label.Valid() {
		return fmt.Errorf("UnmarshalJSON: label=%d: %w", int(w.Label), ErrInvalidLabel)
	}
	lp.point = DataPoint{features: w.DataPoint.Features}
	lp.label = w.Label

	return nil
}

func (p DataPoint) wire() dataPointJSON {
	f := p.features
	if f == nil {
		f = []float64{}
	}

	return dataPointJSON{Features: f}
}
