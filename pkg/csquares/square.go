package csquares

import (
	"math"
	"strconv"
	"strings"
	"sync"
)

// Position is a plain (latitude, longitude) pair in degrees.
type Position struct {
	Lat float64
	Lng float64
}

// Square is the public result of encoding or parsing: it wraps the finest
// link of a cell chain and derives the identifier text, the axis
// boundaries and the center on demand. Derivations are memoized; Square is
// immutable and safe for concurrent use.
type Square struct {
	tail *cell

	once   sync.Once
	id     string
	lat    Boundary
	lng    Boundary
	center Position
}

// Resolution reports the cell width of the finest link.
func (s *Square) Resolution() Resolution { return s.tail.res }

// Identifier returns the canonical C-squares text form.
func (s *Square) Identifier() string {
	s.derive()
	return s.id
}

// LatBoundary returns the latitude edge pair of the finest cell.
func (s *Square) LatBoundary() Boundary {
	s.derive()
	return s.lat
}

// LngBoundary returns the longitude edge pair of the finest cell.
func (s *Square) LngBoundary() Boundary {
	s.derive()
	return s.lng
}

// Center returns the arithmetic midpoint of the cell, per axis
// |near-far|/2 + min(near, far), regardless of which edge is larger.
func (s *Square) Center() Position {
	s.derive()
	return s.center
}

func (s *Square) derive() {
	s.once.Do(func() {
		s.id = render(s.tail)
		s.lat = s.tail.latBoundary()
		s.lng = s.tail.lngBoundary()
		s.center = Position{Lat: midpoint(s.lat), Lng: midpoint(s.lng)}
	})
}

func midpoint(b Boundary) float64 {
	return math.Abs(b.Near-b.Far)/2 + b.Min()
}

// render walks the chain tail-to-root collecting fragments, then emits
// them root-first. The root prints its quadrant tag and parts as plain
// integers; each partial opens a refinement group with ":" and its quadrant
// tag; each digit pair appends its two digits verbatim.
func render(tail *cell) string {
	var frags []string
	for c := tail; c != nil; c = c.parent {
		switch c.kind {
		case rootCell:
			frags = append(frags,
				strconv.Itoa(int(c.global))+strconv.Itoa(c.latPart)+strconv.Itoa(c.lngPart))
		case partialCell:
			frags = append(frags, ":"+strconv.Itoa(int(c.quad)))
		case digitPairCell:
			frags = append(frags, strconv.Itoa(c.latDigit)+strconv.Itoa(c.lngDigit))
		}
	}
	var b strings.Builder
	for i := len(frags) - 1; i >= 0; i-- {
		b.WriteString(frags[i])
	}
	return b.String()
}
