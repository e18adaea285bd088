// Package csquares encodes geographic points into hierarchical C-squares
// grid-cell identifiers and derives cell boundaries and centers back from
// them. The codec is pure and allocation-light; values are immutable once
// built, so concurrent use needs no coordination.
package csquares

// GlobalQuadrant names the hemisphere quadrant a point falls into. Tags
// follow the C-squares notation.
type GlobalQuadrant int

const (
	NE GlobalQuadrant = 1
	SE GlobalQuadrant = 3
	SW GlobalQuadrant = 5
	NW GlobalQuadrant = 7
)

// GlobalQuadrantFor dispatches on the signs of (lat, lng). Zero counts as
// the non-negative branch on both axes.
func GlobalQuadrantFor(lat, lng float64) GlobalQuadrant {
	switch {
	case lat >= 0 && lng >= 0:
		return NE
	case lat >= 0:
		return NW
	case lng >= 0:
		return SE
	default:
		return SW
	}
}

func (q GlobalQuadrant) south() bool { return q == SE || q == SW }
func (q GlobalQuadrant) west() bool  { return q == NW || q == SW }

// IntermediateQuadrant names which quarter of a cell a finer digit pair
// selects. Tags follow the C-squares notation.
type IntermediateQuadrant int

const (
	LowLow   IntermediateQuadrant = 1 // lat digit < 5, lng digit < 5
	LowHigh  IntermediateQuadrant = 2 // lat digit < 5, lng digit >= 5
	HighLow  IntermediateQuadrant = 3 // lat digit >= 5, lng digit < 5
	HighHigh IntermediateQuadrant = 4 // lat digit >= 5, lng digit >= 5
)

// IntermediateQuadrantFor dispatches on a digit pair, splitting each axis
// at digit 5.
func IntermediateQuadrantFor(latDigit, lngDigit int) IntermediateQuadrant {
	switch {
	case latDigit < 5 && lngDigit < 5:
		return LowLow
	case latDigit < 5:
		return LowHigh
	case lngDigit < 5:
		return HighLow
	default:
		return HighHigh
	}
}

func (q IntermediateQuadrant) highLat() bool { return q == HighLow || q == HighHigh }
func (q IntermediateQuadrant) highLng() bool { return q == LowHigh || q == HighHigh }
