package geodesy

import (
	"math"
	"testing"
)

func TestRadii_EquatorAndPole(t *testing.T) {
	// At the equator the meridional radius is the smallest, at the pole the
	// largest; the normal radius equals the equatorial radius at lat 0.
	if m0, m90 := MeridionalRadius(0), MeridionalRadius(90); m0 >= m90 {
		t.Fatalf("meridional radius: equator %v >= pole %v", m0, m90)
	}
	if n0 := NormalRadius(0); math.Abs(n0-6378.137) > 1e-9 {
		t.Fatalf("NormalRadius(0) = %v, want 6378.137", n0)
	}
	for _, lat := range []float64{-90, -45, 0, 45, 90} {
		if m := MeridionalRadius(lat); m < 6330 || m > 6410 {
			t.Fatalf("MeridionalRadius(%v) = %v, outside plausible range", lat, m)
		}
		if n := NormalRadius(lat); n < 6370 || n > 6410 {
			t.Fatalf("NormalRadius(%v) = %v, outside plausible range", lat, n)
		}
	}
}

func TestDegreesPerKm_Equator(t *testing.T) {
	// One kilometer is roughly 1/111 of a degree near the equator.
	if d := DegreesPerKmLat(0); math.Abs(d-1.0/110.574) > 1e-4 {
		t.Fatalf("DegreesPerKmLat(0) = %v", d)
	}
	if d := DegreesPerKmLng(0); math.Abs(d-1.0/111.320) > 1e-4 {
		t.Fatalf("DegreesPerKmLng(0) = %v", d)
	}
	// Longitude degrees get cheaper toward the poles.
	if DegreesPerKmLng(60) <= DegreesPerKmLng(0) {
		t.Fatalf("expected DegreesPerKmLng to grow with latitude")
	}
}

func TestDistance_KnownPairs(t *testing.T) {
	if d := Distance(10, 20, 10, 20); d != 0 {
		t.Fatalf("zero distance expected, got %v", d)
	}

	// Stockholm - Malmö, roughly 513 km.
	if d := Distance(59.3293, 18.0686, 55.6050, 13.0038); math.Abs(d-513) > 5 {
		t.Fatalf("Stockholm-Malmö = %v km, want ~513", d)
	}

	// Quarter meridian.
	if d := Distance(0, 0, 90, 0); math.Abs(d-meanRadiusKm*math.Pi/2) > 1e-6 {
		t.Fatalf("equator to pole = %v km", d)
	}

	if a, b := Distance(-42, 147, 59, 18), Distance(59, 18, -42, 147); math.Abs(a-b) > 1e-9 {
		t.Fatalf("distance not symmetric: %v vs %v", a, b)
	}
}
