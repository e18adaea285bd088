package csquares

import (
	"errors"
	"fmt"
)

// ErrResolutionExhausted is returned when navigation steps past either end
// of the resolution ladder, or when an encode requests more precision than
// the ladder supports.
var ErrResolutionExhausted = errors.New("csquares: resolution ladder exhausted")

// unitsPerDegree fixes the internal scale: offsets and widths are carried
// as int64 multiples of 1e-5 degrees so chained additions stay exact
// decimal arithmetic instead of drifting binary floats.
const unitsPerDegree = 100000

// ladderUnits holds the eleven cell widths of the C-squares ladder,
// coarsest first, in 1e-5 degree units.
var ladderUnits = [...]int64{
	10 * unitsPerDegree, // 10
	5 * unitsPerDegree,  // 5
	1 * unitsPerDegree,  // 1
	50000,               // 0.5
	10000,               // 0.1
	5000,                // 0.05
	1000,                // 0.01
	500,                 // 0.005
	100,                 // 0.001
	50,                  // 0.0005
	1,                   // 0.00001
}

// MaxDecimals is the deepest sub-degree precision Encode can resolve
// before the ladder runs out.
const MaxDecimals = 4

// Resolution is one of the eleven fixed cell sizes, identified by its
// ladder position.
type Resolution struct {
	idx int
}

// Coarsest returns the 10-degree root resolution.
func Coarsest() Resolution { return Resolution{idx: 0} }

// LadderDepth reports how many resolutions the ladder holds.
func LadderDepth() int { return len(ladderUnits) }

// Degrees reports the cell width in degrees.
func (r Resolution) Degrees() float64 { return float64(ladderUnits[r.idx]) / unitsPerDegree }

func (r Resolution) units() int64 { return ladderUnits[r.idx] }

// Finer returns the next narrower resolution, or ErrResolutionExhausted
// past the 0.00001-degree end of the ladder.
func (r Resolution) Finer() (Resolution, error) {
	if r.idx+1 >= len(ladderUnits) {
		return Resolution{}, fmt.Errorf("no resolution finer than %v degrees: %w", r.Degrees(), ErrResolutionExhausted)
	}
	return Resolution{idx: r.idx + 1}, nil
}

// Coarser returns the next wider resolution, or ErrResolutionExhausted
// above the 10-degree root.
func (r Resolution) Coarser() (Resolution, error) {
	if r.idx == 0 {
		return Resolution{}, fmt.Errorf("no resolution coarser than %v degrees: %w", r.Degrees(), ErrResolutionExhausted)
	}
	return Resolution{idx: r.idx - 1}, nil
}

func (r Resolution) String() string { return fmt.Sprintf("%v°", r.Degrees()) }
