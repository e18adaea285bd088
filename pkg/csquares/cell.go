package csquares

type cellKind uint8

const (
	rootCell cellKind = iota
	partialCell
	digitPairCell
)

// cell is one link of the nested chain locating a point. The root link has
// no parent and sits at 10 degrees; below it partial and digit-pair links
// alternate, each one ladder step finer than its parent. Links are built
// once by Encode/Parse and never mutated.
type cell struct {
	kind   cellKind
	res    Resolution
	parent *cell // nil iff kind == rootCell

	// rootCell: hemisphere quadrant and tens-scale parts.
	global  GlobalQuadrant
	latPart int
	lngPart int

	// partialCell: which quarter of the parent cell.
	quad IntermediateQuadrant

	// digitPairCell: one decimal digit per axis.
	latDigit int
	lngDigit int
}

// latOffset folds this link's latitude contribution into the accumulated
// offset and delegates upward. The root terminates the recursion, applying
// the hemisphere sign. A partial link contributes nothing here: its quarter
// selection is already encoded in the child digits it wraps.
func (c *cell) latOffset(acc int64) int64 {
	switch c.kind {
	case rootCell:
		acc += c.res.units() * int64(c.latPart)
		if c.global.south() {
			acc = -acc
		}
		return acc
	case digitPairCell:
		return c.parent.latOffset(acc + c.step()*int64(c.latDigit))
	default:
		return c.parent.latOffset(acc)
	}
}

func (c *cell) lngOffset(acc int64) int64 {
	switch c.kind {
	case rootCell:
		acc += c.res.units() * int64(c.lngPart)
		if c.global.west() {
			acc = -acc
		}
		return acc
	case digitPairCell:
		return c.parent.lngOffset(acc + c.step()*int64(c.lngDigit))
	default:
		return c.parent.lngOffset(acc)
	}
}

// step is the positional value of a digit-pair's digits: a fifth of the
// enclosing partial's width. It equals the link's own resolution at every
// ladder step except the finest, where the cell narrows to 0.00001
// degrees while the digits still sit at the 0.0001 position.
func (c *cell) step() int64 { return c.parent.res.units() / 5 }

// cornerLatUnits starts the offset recursion at this link with a zero
// accumulator. Only when the recursion starts at a partial link does its
// quarter selection seed one resolution unit on the high side; a digit
// pair delegating through the same partial must not pick that unit up
// again, since its digit places the point inside the whole parent cell.
func (c *cell) cornerLatUnits() int64 {
	var seed int64
	if c.kind == partialCell && c.quad.highLat() {
		seed = c.res.units()
	}
	return c.latOffset(seed)
}

func (c *cell) cornerLngUnits() int64 {
	var seed int64
	if c.kind == partialCell && c.quad.highLng() {
		seed = c.res.units()
	}
	return c.lngOffset(seed)
}

// latBoundary is the link's own latitude edge pair.
func (c *cell) latBoundary() Boundary { return boundaryFrom(c.cornerLatUnits(), c.res) }

func (c *cell) lngBoundary() Boundary { return boundaryFrom(c.cornerLngUnits(), c.res) }

// Boundary is a (near, far) edge pair in degrees. Near is the corner
// recovered from the offset chain; far sits one resolution width away, on
// the side the hemisphere sign points to. The pair is deliberately not
// sorted ascending, so Near may be the numerically larger edge.
type Boundary struct {
	Near float64
	Far  float64
}

// Min returns the numerically smaller edge.
func (b Boundary) Min() float64 {
	if b.Near < b.Far {
		return b.Near
	}
	return b.Far
}

// Max returns the numerically larger edge.
func (b Boundary) Max() float64 {
	if b.Near > b.Far {
		return b.Near
	}
	return b.Far
}

// Contains reports whether v lies within the pair, edges included.
func (b Boundary) Contains(v float64) bool { return v >= b.Min() && v <= b.Max() }

func boundaryFrom(offsetUnits int64, r Resolution) Boundary {
	far := offsetUnits + r.units()
	if offsetUnits < 0 {
		far = offsetUnits - r.units()
	}
	return Boundary{Near: toDegrees(offsetUnits), Far: toDegrees(far)}
}

func toDegrees(units int64) float64 { return float64(units) / unitsPerDegree }
