package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/echoflaresat/csys/earth"
	"github.com/echoflaresat/csys/frames"
	"github.com/echoflaresat/csys/matrices"
	"github.com/echoflaresat/csys/vectors"
)

type config struct {
	fromOrigin, fromAngles *string
	toOrigin, toAngles     *string
	point                  *string
	objectAngles           *string
	sunTime                *string
	showHelp               *bool
}

func defineFlags() config {
	return config{
		fromOrigin: flag.String("from-origin", "0,0,0", "Source frame origin in global coordinates (x,y,z)"),
		fromAngles: flag.String("from-angles", "0,0,0", "Source frame rotation angles in degrees (x,y,z)"),
		toOrigin:   flag.String("to-origin", "0,0,0", "Target frame origin in global coordinates (x,y,z)"),
		toAngles:   flag.String("to-angles", "0,0,0", "Target frame rotation angles in degrees (x,y,z)"),

		point:        flag.String("point", "1,0,0", "Point to transform, expressed in the source frame (x,y,z)"),
		objectAngles: flag.String("object-angles", "", "Also transform an object at -point with these orientation angles (x,y,z degrees)"),

		sunTime: flag.String("sun", "", "Print the sun direction in the target frame at this RFC3339 time (or \"now\")"),

		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Coordinate Transformer - Frame-to-Frame Converter

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Frame Options", []string{"from-origin", "from-angles", "to-origin", "to-angles"})
	printGroup("Input", []string{"point", "object-angles"})
	printGroup("Extras", []string{"sun"})
	printGroup("Misc", []string{"h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-14s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {

	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}

	src := parseFrameOrExit(*cfg.fromOrigin, *cfg.fromAngles, "source")
	dst := parseFrameOrExit(*cfg.toOrigin, *cfg.toAngles, "target")
	point := parseVec3OrExit(*cfg.point, "point")

	result, err := frames.TransformPoint(point, src, dst)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("point in target frame:  [%.6f, %.6f, %.6f]\n", result.X, result.Y, result.Z)

	if *cfg.objectAngles != "" {
		ax, ay, az := parseAnglesOrExit(*cfg.objectAngles, "object angles")
		obj, err := frames.NewObject(point, ax, ay, az)
		if err != nil {
			log.Fatal(err)
		}
		out, err := frames.TransformObject(obj, src, dst)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("object position:        [%.6f, %.6f, %.6f]\n", out.Position.X, out.Position.Y, out.Position.Z)
		fmt.Println("object rotation:")
		for _, row := range out.Rotation {
			fmt.Printf("  [%9.6f, %9.6f, %9.6f]\n", row[0], row[1], row[2])
		}
	}

	if *cfg.sunTime != "" {
		t := parseTimeOrExit(*cfg.sunTime)
		// A direction has no origin, so only the target orientation applies.
		sun := dst.Orientation.Transpose().MulVec(earth.SunDirectionECEF(t))
		fmt.Printf("sun direction (target): [%.6f, %.6f, %.6f]\n", sun.X, sun.Y, sun.Z)
	}
}

func parseFrameOrExit(origin, angles, name string) frames.CoordinateFrame {
	o := parseVec3OrExit(origin, name+" origin")
	x, y, z := parseAnglesOrExit(angles, name+" angles")
	f, err := frames.NewFrame(o, x, y, z)
	if err != nil {
		log.Fatal(err)
	}
	return f
}

func parseVec3OrExit(s, name string) vectors.Vec3 {
	c, err := parseTriple(s)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", name, s, err)
	}
	return vectors.Vec3{X: c[0], Y: c[1], Z: c[2]}
}

func parseAnglesOrExit(s, name string) (x, y, z matrices.Degrees) {
	c, err := parseTriple(s)
	if err != nil {
		log.Fatalf("Invalid %s %q: %v", name, s, err)
	}
	return matrices.Degrees(c[0]), matrices.Degrees(c[1]), matrices.Degrees(c[2])
}

func parseTriple(s string) ([3]float64, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return [3]float64{}, fmt.Errorf("want 3 comma-separated values, got %d", len(parts))
	}
	var c [3]float64
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return [3]float64{}, err
		}
		c[i] = v
	}
	return c, nil
}

func parseTimeOrExit(timeStr string) time.Time {
	if timeStr == "now" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		log.Fatalf("Invalid time format: %v", err)
	}
	return t
}
