// Package model defines core domain types shared across the service.
package model

import "fmt"

type Position struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

func (p Position) String() string {
	return fmt.Sprintf("%.6f,%.6f", p.Lat, p.Lng)
}

// SquareResponse is the wire form of an encoded or looked-up cell.
// Boundaries keep the codec's (near, far) edge order.
type SquareResponse struct {
	Identifier  string     `json:"identifier"`
	Resolution  float64    `json:"resolution_degrees"`
	LatBoundary [2]float64 `json:"lat_boundary"`
	LngBoundary [2]float64 `json:"lng_boundary"`
	Center      Position   `json:"center"`
}

type EncodeRequest struct {
	Lat      float64
	Lng      float64
	Decimals int
	Format   string // "json" or "geojson"
}

type DistanceRequest struct {
	From Position
	To   Position
}

type DistanceResponse struct {
	From Position `json:"from"`
	To   Position `json:"to"`
	Km   float64  `json:"km"`
}
