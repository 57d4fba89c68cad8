package ln

import (
	"strings"
	"testing"
)

func TestPathChopSubdividesLongSegments(t *testing.T) {
	ps := PathsFromSlice([]Path{{V(0, 0, 0), V(10, 0, 0)}})
	chopped := ps.Chop(1)
	if len(chopped.Paths[0]) < 10 {
		t.Fatalf("expected chopping a length-10 segment at step 1 to produce >=10 points, got %d", len(chopped.Paths[0]))
	}
	for i := 0; i < len(chopped.Paths[0])-1; i++ {
		a, b := chopped.Paths[0][i], chopped.Paths[0][i+1]
		if b.Sub(a).Length() > 1+1e-9 {
			t.Fatalf("chopped segment %d exceeds step: %v", i, b.Sub(a).Length())
		}
	}
}

func TestPathSimplifyNeverIncreasesPointCount(t *testing.T) {
	p := Path{V(0, 0, 0), V(1, 0.0001, 0), V(2, -0.0001, 0), V(3, 0, 0)}
	ps := PathsFromSlice([]Path{p})
	simplified := ps.Simplify(0.01)
	if len(simplified.Paths[0]) > len(p) {
		t.Fatalf("Simplify should never increase point count: got %d from %d", len(simplified.Paths[0]), len(p))
	}
	if len(simplified.Paths[0]) != 2 {
		t.Fatalf("a near-collinear path should simplify to its 2 endpoints, got %d points", len(simplified.Paths[0]))
	}
}

func TestPathSimplifyKeepsSignificantDeviation(t *testing.T) {
	p := Path{V(0, 0, 0), V(1, 10, 0), V(2, 0, 0)}
	ps := PathsFromSlice([]Path{p})
	simplified := ps.Simplify(0.01)
	if len(simplified.Paths[0]) != 3 {
		t.Fatalf("a sharply deviating midpoint must survive simplification, got %d points", len(simplified.Paths[0]))
	}
}

type rejectXAbove struct{ threshold float64 }

func (f rejectXAbove) Filter(v Vector) (Vector, bool) {
	return v, v.X <= f.threshold
}

func TestPathFilterSplitsOnRejection(t *testing.T) {
	p := Path{V(0, 0, 0), V(1, 0, 0), V(5, 0, 0), V(0, 1, 0), V(1, 1, 0), V(2, 1, 0)}
	ps := PathsFromSlice([]Path{p})
	filtered := ps.Filter(rejectXAbove{threshold: 2})
	if len(filtered.Paths) != 2 {
		t.Fatalf("expected the path to split into 2 sub-paths around the rejected vertex, got %d", len(filtered.Paths))
	}
	if len(filtered.Paths[0]) != 2 || len(filtered.Paths[1]) != 3 {
		t.Fatalf("unexpected sub-path lengths: %d, %d", len(filtered.Paths[0]), len(filtered.Paths[1]))
	}
}

func TestPathFilterDropsSingletonSubpaths(t *testing.T) {
	p := Path{V(0, 0, 0), V(5, 0, 0), V(1, 0, 0)}
	ps := PathsFromSlice([]Path{p})
	filtered := ps.Filter(rejectXAbove{threshold: 2})
	if len(filtered.Paths) != 0 {
		t.Fatalf("sub-paths of length 1 must be dropped, got %d paths", len(filtered.Paths))
	}
}

func TestPathsToSVGContainsPolylines(t *testing.T) {
	ps := PathsFromSlice([]Path{{V(0, 0, 0), V(1, 1, 0)}})
	svg := ps.ToSVG(100, 100)
	if !strings.Contains(svg, "<svg") || !strings.Contains(svg, "<polyline") {
		t.Fatalf("expected SVG output to contain an svg root and a polyline, got: %s", svg)
	}
}

func TestPathsToTextOneLinePerPath(t *testing.T) {
	ps := PathsFromSlice([]Path{
		{V(0, 0, 0), V(1, 1, 0)},
		{V(2, 2, 0), V(3, 3, 0)},
	})
	text := ps.ToText()
	lines := strings.Split(strings.TrimRight(text, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines of text output, got %d: %q", len(lines), text)
	}
}
