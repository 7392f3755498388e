package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/RaysceneNS/femcore/loop"
)

// parseFloatList parses a comma-separated list of floats, e.g. "1,2,3.5".
func parseFloatList(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	out := make([]float64, len(parts))
	for i, p := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(p), 64)
		if err != nil {
			return nil, fmt.Errorf("parsing %q: %w", p, err)
		}
		out[i] = v
	}
	return out, nil
}

// buildRectangleLoop parses "cx,cy,w,h" into a clockwise rectangle loop.
func buildRectangleLoop(spec string, maxSpacing float64) (loop.Loop, error) {
	v, err := parseFloatList(spec)
	if err != nil {
		return nil, err
	}
	if len(v) != 4 {
		return nil, fmt.Errorf("rectangle spec %q: want cx,cy,w,h", spec)
	}
	b := loop.NewBuilder()
	b.AddRectangle(v[0], v[1], v[2], v[3])
	return b.Build(true, maxSpacing), nil
}

// buildCircleHoleLoop parses "cx,cy,r" into a counter-clockwise hole loop.
func buildCircleHoleLoop(spec string, maxSpacing float64) (loop.Loop, error) {
	v, err := parseFloatList(spec)
	if err != nil {
		return nil, err
	}
	if len(v) != 3 {
		return nil, fmt.Errorf("hole spec %q: want cx,cy,r", spec)
	}
	b := loop.NewBuilder()
	b.AddCircle(v[0], v[1], v[2])
	return b.Build(false, maxSpacing), nil
}
