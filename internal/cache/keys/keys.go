// Package keys builds deterministic cache keys for codec results.
package keys

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Encode keys hash the shortest round-trip rendering of the coordinates so
// that numerically identical inputs always map to the same key, while the
// decimals count stays readable in the key for debugging.
func Encode(lat, lng float64, decimals int) string {
	raw := strconv.FormatFloat(lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(lng, 'f', -1, 64) + "," +
		strconv.Itoa(decimals)
	return fmt.Sprintf("csq:enc:%d:%016x", decimals, xxhash.Sum64String(raw))
}

// Square keys embed the identifier itself; its alphabet is digits and ":"
// which are safe in Redis keys as-is.
func Square(identifier string) string {
	return "csq:sq:" + strings.TrimSpace(identifier)
}
