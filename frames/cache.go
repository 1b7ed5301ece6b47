package frames

import (
	"fmt"

	lru "github.com/hashicorp/golang-lru"

	"github.com/echoflaresat/csys/matrices"
	"github.com/echoflaresat/csys/vectors"
)

// OrientationCache memoizes composed orientation matrices per angle
// triple. Callers that build many frames from a small set of attitudes
// (e.g. one per sensor mount) skip the six trig calls and three matrix
// products on repeats. Results are bit-identical to
// matrices.Orientation; the cache is safe for concurrent use.
type OrientationCache struct {
	cache *lru.Cache // angleKey -> matrices.Mat3
}

type angleKey struct {
	x, y, z matrices.Degrees
}

// NewOrientationCache creates a cache holding up to size recently used
// orientations.
func NewOrientationCache(size int) (*OrientationCache, error) {
	cache, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &OrientationCache{cache: cache}, nil
}

// Orientation returns RotZ(z)·RotY(y)·RotX(x), composing it on a miss.
func (c *OrientationCache) Orientation(x, y, z matrices.Degrees) matrices.Mat3 {
	key := angleKey{x, y, z}
	if val, ok := c.cache.Get(key); ok {
		return val.(matrices.Mat3)
	}
	m := matrices.Orientation(x, y, z)
	c.cache.Add(key, m)
	return m
}

// NewFrame builds a frame like the package-level NewFrame, taking the
// orientation through the cache.
func (c *OrientationCache) NewFrame(origin vectors.Vec3, x, y, z matrices.Degrees) (CoordinateFrame, error) {
	if !origin.Finite() {
		return CoordinateFrame{}, fmt.Errorf("frame origin %v: %w", origin, ErrNonFinite)
	}
	if !anglesFinite(x, y, z) {
		return CoordinateFrame{}, fmt.Errorf("frame angles (%v, %v, %v): %w", x, y, z, ErrNonFinite)
	}
	return CoordinateFrame{
		Origin:      origin,
		Orientation: c.Orientation(x, y, z),
	}, nil
}
