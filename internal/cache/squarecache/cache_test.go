package squarecache

import (
	"strconv"
	"testing"

	"github.com/mohammed-shakir/csquares-cache/internal/core/model"
)

func TestCache_HitMissAndEviction(t *testing.T) {
	c, err := New(2)
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	if _, ok := c.Get("a"); ok {
		t.Fatalf("unexpected hit on empty cache")
	}

	c.Add("a", model.SquareResponse{Identifier: "3414:227"})
	got, ok := c.Get("a")
	if !ok || got.Identifier != "3414:227" {
		t.Fatalf("Get(a) = (%+v, %v)", got, ok)
	}

	// capacity 2: adding two more evicts the oldest
	c.Add("b", model.SquareResponse{Identifier: "100"})
	c.Add("c", model.SquareResponse{Identifier: "7414:2"})
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
}

func TestCache_DefaultSizeForNonPositive(t *testing.T) {
	c, err := New(0)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	for i := 0; i < 10; i++ {
		c.Add("k"+strconv.Itoa(i), model.SquareResponse{})
	}
	if c.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", c.Len())
	}
}
