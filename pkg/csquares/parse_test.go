package csquares

import (
	"errors"
	"testing"
)

func TestParse_RoundTrip(t *testing.T) {
	points := []struct {
		lat, lng float64
		decimals int
	}{
		{-42, 147, 0},
		{-42.357, 147.841, 3},
		{59.3293, 18.0686, 4},
		{35.6764, -139.65, 2},
		{0, 0, 0},
	}
	for _, p := range points {
		enc, err := Encode(p.lat, p.lng, p.decimals)
		if err != nil {
			t.Fatalf("Encode(%v, %v, %d): %v", p.lat, p.lng, p.decimals, err)
		}
		dec, err := Parse(enc.Identifier())
		if err != nil {
			t.Fatalf("Parse(%q): %v", enc.Identifier(), err)
		}
		if dec.Identifier() != enc.Identifier() {
			t.Fatalf("round trip: %q -> %q", enc.Identifier(), dec.Identifier())
		}
		if dec.LatBoundary() != enc.LatBoundary() || dec.LngBoundary() != enc.LngBoundary() {
			t.Fatalf("%q: boundaries changed across round trip", enc.Identifier())
		}
		if dec.Center() != enc.Center() {
			t.Fatalf("%q: center changed across round trip", enc.Identifier())
		}
	}
}

func TestParse_QuarterCellTail(t *testing.T) {
	sq, err := Parse("3414:2")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if sq.Resolution().Degrees() != 5 {
		t.Fatalf("resolution = %v, want 5", sq.Resolution().Degrees())
	}
	if lat := sq.LatBoundary(); lat.Near != -40 || lat.Far != -45 {
		t.Fatalf("LatBoundary() = (%v, %v), want (-40, -45)", lat.Near, lat.Far)
	}
	if lng := sq.LngBoundary(); lng.Near != 145 || lng.Far != 150 {
		t.Fatalf("LngBoundary() = (%v, %v), want (145, 150)", lng.Near, lng.Far)
	}
	if sq.Identifier() != "3414:2" {
		t.Fatalf("Identifier() = %q, want %q", sq.Identifier(), "3414:2")
	}
}

func TestParse_Malformed(t *testing.T) {
	bad := []string{
		"",
		"12",
		"12345",
		"2414",      // even global quadrant tag
		"3a14",      // non-digit
		"3414:5",    // intermediate quadrant out of range
		"3414:22",   // short group that is not a quadrant alone
		"3414:199",  // quadrant does not match digits
		"3414:2:27", // quadrant-only group before the end
	}
	for _, id := range bad {
		if _, err := Parse(id); !errors.Is(err, ErrMalformedIdentifier) {
			t.Fatalf("Parse(%q): err = %v, want ErrMalformedIdentifier", id, err)
		}
	}
}

func TestParse_DeeperThanLadder(t *testing.T) {
	// Five refinement groups reach the ladder floor; a sixth must fail.
	ok := "1000:100:100:100:100:100"
	if _, err := Parse(ok); err != nil {
		t.Fatalf("Parse(%q): %v", ok, err)
	}
	tooDeep := ok + ":100"
	if _, err := Parse(tooDeep); !errors.Is(err, ErrResolutionExhausted) {
		t.Fatalf("Parse(%q): err = %v, want ErrResolutionExhausted", tooDeep, err)
	}
}
