package csquares

import (
	"errors"
	"fmt"
	"strings"
)

// ErrMalformedIdentifier is returned by Parse for text that is not a
// well-formed C-squares identifier.
var ErrMalformedIdentifier = errors.New("csquares: malformed identifier")

// Parse rebuilds a cell chain from its canonical text form: a root token
// of three or four digits followed by ":"-separated refinement groups of a
// quadrant tag plus one digit per axis. A trailing group may carry the
// quadrant tag alone, naming the half-step quarter cell. The refinement
// quadrant must agree with the digits it precedes.
func Parse(identifier string) (*Square, error) {
	parts := strings.Split(identifier, ":")

	root := parts[0]
	if len(root) != 3 && len(root) != 4 {
		return nil, fmt.Errorf("root token %q: %w", root, ErrMalformedIdentifier)
	}
	if !allDigits(root) {
		return nil, fmt.Errorf("root token %q: %w", root, ErrMalformedIdentifier)
	}

	gq := GlobalQuadrant(root[0] - '0')
	switch gq {
	case NE, SE, SW, NW:
	default:
		return nil, fmt.Errorf("global quadrant %q: %w", root[:1], ErrMalformedIdentifier)
	}

	lngPart := int(root[2] - '0')
	if len(root) == 4 {
		lngPart = lngPart*10 + int(root[3]-'0')
	}

	tail := &cell{
		kind:    rootCell,
		res:     Coarsest(),
		global:  gq,
		latPart: int(root[1] - '0'),
		lngPart: lngPart,
	}

	for i, group := range parts[1:] {
		if len(group) != 1 && len(group) != 3 {
			return nil, fmt.Errorf("refinement group %q: %w", group, ErrMalformedIdentifier)
		}
		if !allDigits(group) {
			return nil, fmt.Errorf("refinement group %q: %w", group, ErrMalformedIdentifier)
		}

		quad := IntermediateQuadrant(group[0] - '0')
		if quad < LowLow || quad > HighHigh {
			return nil, fmt.Errorf("intermediate quadrant %q: %w", group[:1], ErrMalformedIdentifier)
		}

		partialRes, err := tail.res.Finer()
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", identifier, err)
		}
		partial := &cell{kind: partialCell, res: partialRes, parent: tail, quad: quad}

		if len(group) == 1 {
			if i != len(parts[1:])-1 {
				return nil, fmt.Errorf("short group %q before end: %w", group, ErrMalformedIdentifier)
			}
			tail = partial
			break
		}

		ld, gd := int(group[1]-'0'), int(group[2]-'0')
		if IntermediateQuadrantFor(ld, gd) != quad {
			return nil, fmt.Errorf("quadrant %d does not match digits %d%d: %w", quad, ld, gd, ErrMalformedIdentifier)
		}

		pairRes, err := partial.res.Finer()
		if err != nil {
			return nil, fmt.Errorf("parse %q: %w", identifier, err)
		}
		tail = &cell{kind: digitPairCell, res: pairRes, parent: partial, latDigit: ld, lngDigit: gd}
	}

	return &Square{tail: tail}, nil
}

func allDigits(s string) bool {
	for _, ch := range []byte(s) {
		if ch < '0' || ch > '9' {
			return false
		}
	}
	return len(s) > 0
}
