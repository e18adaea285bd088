// Package ingest defines the position report events consumed from Kafka.
package ingest

import (
	"fmt"
	"strings"
	"time"

	"github.com/mohammed-shakir/csquares-cache/pkg/csquares"
)

// PositionReport is one observed position to pre-encode into the cache.
// Decimals is optional; a nil value means the service default.
type PositionReport struct {
	Version int       `json:"version"`
	Source  string    `json:"source"`
	TS      time.Time `json:"ts"`
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`

	Decimals *int `json:"decimals,omitempty"`
}

func (p PositionReport) Validate() error {
	if p.Version != 1 {
		return fmt.Errorf("version must be 1")
	}
	if strings.TrimSpace(p.Source) == "" {
		return fmt.Errorf("source is required")
	}
	if p.TS.IsZero() {
		return fmt.Errorf("ts is required")
	}
	if p.Lat < -90 || p.Lat > 90 {
		return fmt.Errorf("lat out of range")
	}
	if p.Lng < -180 || p.Lng > 180 {
		return fmt.Errorf("lng out of range")
	}
	if p.Decimals != nil && (*p.Decimals < 0 || *p.Decimals > csquares.MaxDecimals) {
		return fmt.Errorf("decimals must be in 0..%d", csquares.MaxDecimals)
	}
	return nil
}
