package squares

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"

	"github.com/mohammed-shakir/csquares-cache/internal/core/model"
)

// CellFeature renders a cell as a GeoJSON polygon feature. The ring is
// built from the sorted edges (GeoJSON has no notion of the codec's
// near/far order) and closed explicitly.
func CellFeature(v model.SquareResponse) *geojson.Feature {
	latMin := math.Min(v.LatBoundary[0], v.LatBoundary[1])
	latMax := math.Max(v.LatBoundary[0], v.LatBoundary[1])
	lngMin := math.Min(v.LngBoundary[0], v.LngBoundary[1])
	lngMax := math.Max(v.LngBoundary[0], v.LngBoundary[1])

	ring := orb.Ring{
		{lngMin, latMin},
		{lngMax, latMin},
		{lngMax, latMax},
		{lngMin, latMax},
		{lngMin, latMin},
	}

	f := geojson.NewFeature(orb.Polygon{ring})
	f.Properties["identifier"] = v.Identifier
	f.Properties["resolution_degrees"] = v.Resolution
	f.Properties["center"] = []float64{v.Center.Lng, v.Center.Lat}
	return f
}
