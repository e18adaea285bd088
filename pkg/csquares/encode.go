package csquares

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// guardDigits is how far past the requested precision the fixed-point
// rendering extends before truncation. Inputs meant as short decimals
// ("42.9") round back to their decimal digits at this depth, while the
// final truncation still floors toward the containing cell instead of
// rounding out of it.
const guardDigits = 7

// Encode decomposes a coordinate pair into per-resolution decimal digits
// and folds them into a cell chain with `decimals` sub-degree places of
// precision. decimals above MaxDecimals exhausts the ladder and returns
// ErrResolutionExhausted; negative decimals is treated as zero.
func Encode(lat, lng float64, decimals int) (*Square, error) {
	if decimals < 0 {
		decimals = 0
	}

	latDigits := digits(lat, decimals)
	lngDigits := digits(lng, decimals)

	root := &cell{
		kind:    rootCell,
		res:     Coarsest(),
		global:  GlobalQuadrantFor(lat, lng),
		latPart: latDigits[1],
		lngPart: lngDigits[0]*10 + lngDigits[1],
	}
	tail := root

	// The units fold is skipped only when the plain decimal rendering of
	// both inputs carries no digits beyond what the root consumed: the
	// chain then stays at the bare two-digit root.
	start := 2
	if decimals == 0 && math.Abs(lat) < 10 && math.Abs(lng) < 100 {
		start = len(latDigits)
	}

	for i := start; i < len(latDigits); i++ {
		ld, gd := latDigits[i], lngDigits[i]

		partialRes, err := tail.res.Finer()
		if err != nil {
			return nil, fmt.Errorf("encode %d decimals: %w", decimals, err)
		}
		partial := &cell{
			kind:   partialCell,
			res:    partialRes,
			parent: tail,
			quad:   IntermediateQuadrantFor(ld, gd),
		}

		pairRes, err := partial.res.Finer()
		if err != nil {
			return nil, fmt.Errorf("encode %d decimals: %w", decimals, err)
		}
		tail = &cell{
			kind:     digitPairCell,
			res:      pairRes,
			parent:   partial,
			latDigit: ld,
			lngDigit: gd,
		}
	}

	return &Square{tail: tail}, nil
}

// digits extracts the decimal digits of |v| at positions 10^2 down to
// 10^-decimals, most significant first, from a fixed-point decimal
// rendering rather than repeated binary-float arithmetic. Integer digits
// above the hundreds position are discarded.
func digits(v float64, decimals int) []int {
	s := strconv.FormatFloat(math.Abs(v), 'f', decimals+guardDigits, 64)

	intPart, fracPart, _ := strings.Cut(s, ".")
	for len(intPart) < 3 {
		intPart = "0" + intPart
	}
	intPart = intPart[len(intPart)-3:]
	fracPart = fracPart[:decimals]

	out := make([]int, 0, decimals+3)
	for _, ch := range []byte(intPart) {
		out = append(out, int(ch-'0'))
	}
	for _, ch := range []byte(fracPart) {
		out = append(out, int(ch-'0'))
	}
	return out
}
