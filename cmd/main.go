package main

import (
	"fmt"
	"log"
	"math"

	"github.com/echoflaresat/csys/frames"
	"github.com/echoflaresat/csys/vectors"
)

// Self-check: transform a point between two known frames and compare the
// library result against the transform formula composed by hand,
// R2ᵀ·(o1 + R1·p − o2).
func main() {

	cs1, err := frames.NewFrame(vectors.Zero(), 0, 0, 0)
	if err != nil {
		log.Fatal(err)
	}

	// Rotated 6° about Z, translated to [10,5,3].
	cs2, err := frames.NewFrame(vectors.Vec3{X: 10, Y: 5, Z: 3}, 0, 0, 6)
	if err != nil {
		log.Fatal(err)
	}

	p := vectors.Vec3{X: 1, Y: 0, Z: 0}

	result, err := frames.TransformPoint(p, cs1, cs2)
	if err != nil {
		log.Fatal(err)
	}

	pGlobal := cs1.Origin.Add(cs1.Orientation.MulVec(p))
	expected := cs2.Orientation.Transpose().MulVec(pGlobal.Sub(cs2.Origin))

	fmt.Println("Point transformation is correct:", allClose(result, expected, 1e-12))
}

func allClose(a, b vectors.Vec3, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol &&
		math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.Z-b.Z) <= tol
}
