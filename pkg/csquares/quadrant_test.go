package csquares

import "testing"

func TestGlobalQuadrant_SignTable(t *testing.T) {
	cases := []struct {
		lat, lng float64
		want     GlobalQuadrant
	}{
		{10, 20, NE},
		{10, -20, NW},
		{-10, 20, SE},
		{-10, -20, SW},
		{0, 0, NE},
		{0, -0.5, NW},
		{-0.5, 0, SE},
	}
	for _, c := range cases {
		if got := GlobalQuadrantFor(c.lat, c.lng); got != c.want {
			t.Fatalf("GlobalQuadrantFor(%v, %v) = %d, want %d", c.lat, c.lng, got, c.want)
		}
	}
}

func TestIntermediateQuadrant_Totality(t *testing.T) {
	for ld := 0; ld <= 9; ld++ {
		for gd := 0; gd <= 9; gd++ {
			got := IntermediateQuadrantFor(ld, gd)

			var want IntermediateQuadrant
			switch {
			case ld < 5 && gd < 5:
				want = LowLow
			case ld < 5:
				want = LowHigh
			case gd < 5:
				want = HighLow
			default:
				want = HighHigh
			}
			if got != want {
				t.Fatalf("IntermediateQuadrantFor(%d, %d) = %d, want %d", ld, gd, got, want)
			}
			if got < LowLow || got > HighHigh {
				t.Fatalf("IntermediateQuadrantFor(%d, %d) out of range: %d", ld, gd, got)
			}
		}
	}
}

func TestQuadrant_AxisSides(t *testing.T) {
	if !SE.south() || !SW.south() || NE.south() || NW.south() {
		t.Fatalf("southern hemisphere quadrants misclassified")
	}
	if !NW.west() || !SW.west() || NE.west() || SE.west() {
		t.Fatalf("western hemisphere quadrants misclassified")
	}
	if !HighLow.highLat() || !HighHigh.highLat() || LowLow.highLat() || LowHigh.highLat() {
		t.Fatalf("high-latitude quarters misclassified")
	}
	if !LowHigh.highLng() || !HighHigh.highLng() || LowLow.highLng() || HighLow.highLng() {
		t.Fatalf("high-longitude quarters misclassified")
	}
}
