package geo

import "math"

// EarthRadiusKm is the mean earth radius used by every distance computation.
const EarthRadiusKm = 6371.0

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}

// DistanceKm returns the great-circle distance between two points using the
// spherical law of cosines, the same expression the legacy SQL used.
func DistanceKm(lat1, lon1, lat2, lon2 float64) float64 {
	cos := math.Cos(radians(lat1))*math.Cos(radians(lat2))*math.Cos(radians(lon2)-radians(lon1)) +
		math.Sin(radians(lat1))*math.Sin(radians(lat2))
	// rounding can push identical points slightly above 1
	if cos > 1 {
		cos = 1
	} else if cos < -1 {
		cos = -1
	}
	return EarthRadiusKm * math.Acos(cos)
}

// Box is a latitude/longitude rectangle used to prefilter rows in SQL before
// the precise distance check.
type Box struct {
	MinLat, MaxLat float64
	MinLon, MaxLon float64
}

// BoundingBox returns the rectangle enclosing every point within radiusKm of
// (lat, lon).
func BoundingBox(lat, lon, radiusKm float64) Box {
	latDelta := radiusKm / EarthRadiusKm * 180 / math.Pi
	cosLat := math.Cos(radians(lat))
	lonDelta := 180.0
	if cosLat > 1e-9 {
		lonDelta = math.Min(180, radiusKm/(EarthRadiusKm*cosLat)*180/math.Pi)
	}
	return Box{
		MinLat: lat - latDelta,
		MaxLat: lat + latDelta,
		MinLon: lon - lonDelta,
		MaxLon: lon + lonDelta,
	}
}

// Contains reports whether the point lies inside the box.
func (b Box) Contains(lat, lon float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lon >= b.MinLon && lon <= b.MaxLon
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
