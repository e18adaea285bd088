package keys

import (
	"strings"
	"testing"
)

func TestEncode_DeterministicAndDistinct(t *testing.T) {
	a := Encode(-42.357, 147.841, 3)
	b := Encode(-42.357, 147.841, 3)
	if a != b {
		t.Fatalf("same input produced different keys: %q vs %q", a, b)
	}

	if Encode(-42.357, 147.841, 3) == Encode(-42.357, 147.841, 2) {
		t.Fatalf("decimals must separate keys")
	}
	if Encode(-42.357, 147.841, 3) == Encode(147.841, -42.357, 3) {
		t.Fatalf("swapped axes must separate keys")
	}
	if !strings.HasPrefix(a, "csq:enc:3:") {
		t.Fatalf("unexpected key shape: %q", a)
	}
}

func TestSquare_KeyShape(t *testing.T) {
	if got := Square(" 3414:227 "); got != "csq:sq:3414:227" {
		t.Fatalf("Square key = %q", got)
	}
}
