package squares

import (
	"encoding/json"
	"testing"

	"github.com/paulmach/orb"

	"github.com/mohammed-shakir/csquares-cache/internal/core/model"
)

func TestCellFeature_RingAndProperties(t *testing.T) {
	v := model.SquareResponse{
		Identifier:  "3414:227",
		Resolution:  1,
		LatBoundary: [2]float64{-42, -43},
		LngBoundary: [2]float64{147, 148},
		Center:      model.Position{Lat: -42.5, Lng: 147.5},
	}

	f := CellFeature(v)
	poly, ok := f.Geometry.(orb.Polygon)
	if !ok {
		t.Fatalf("geometry is %T, want orb.Polygon", f.Geometry)
	}
	ring := poly[0]
	if len(ring) != 5 || ring[0] != ring[len(ring)-1] {
		t.Fatalf("ring must be closed with 5 points, got %v", ring)
	}
	// edges must be sorted regardless of the codec's near/far order
	if ring[0] != (orb.Point{147, -43}) || ring[2] != (orb.Point{148, -42}) {
		t.Fatalf("unexpected corners: %v", ring)
	}
	if f.Properties["identifier"] != "3414:227" {
		t.Fatalf("identifier property = %v", f.Properties["identifier"])
	}

	raw, err := json.Marshal(f)
	if err != nil {
		t.Fatalf("marshal feature: %v", err)
	}
	var hdr struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(raw, &hdr); err != nil || hdr.Type != "Feature" {
		t.Fatalf("feature json = %s (err %v)", raw, err)
	}
}
