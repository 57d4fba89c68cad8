// Package objloader parses Wavefront OBJ files into ln.Triangle lists,
// triangulating n-gon faces as a fan from their first vertex.
package objloader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/HellOwhatAs/larnt-go"
)

// Load parses the OBJ file at path into a slice of triangles, suitable for
// ln.NewMesh.
func Load(path string) ([]ln.Triangle, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("objloader: %w", err)
	}
	defer f.Close()
	return Decode(f)
}

// Decode parses OBJ data from r. Only "v" (vertex) and "f" (face) records
// are recognized; everything else (normals, texture coordinates, groups,
// materials, comments) is ignored. Faces with fewer than 3 vertices, or
// referencing out-of-range indices, are skipped rather than erroring, since
// a single malformed face in an otherwise usable file should not discard
// the whole mesh.
func Decode(r io.Reader) ([]ln.Triangle, error) {
	var vertices []ln.Vector
	var triangles []ln.Triangle

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			v, err := parseVertex(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objloader: line %d: %w", lineNo, err)
			}
			vertices = append(vertices, v)
		case "f":
			idx, err := parseFaceIndices(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("objloader: line %d: %w", lineNo, err)
			}
			if len(idx) < 3 {
				continue
			}
			for i := 1; i < len(idx)-1; i++ {
				v1, ok1 := resolveIndex(vertices, idx[0])
				v2, ok2 := resolveIndex(vertices, idx[i])
				v3, ok3 := resolveIndex(vertices, idx[i+1])
				if !ok1 || !ok2 || !ok3 {
					continue
				}
				if isDegenerate(v1, v2, v3) {
					continue
				}
				triangles = append(triangles, *ln.NewTriangle(v1, v2, v3))
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("objloader: %w", err)
	}
	return triangles, nil
}

func parseVertex(fields []string) (ln.Vector, error) {
	if len(fields) < 3 {
		return ln.Vector{}, fmt.Errorf("vertex needs 3 coordinates, got %d", len(fields))
	}
	x, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return ln.Vector{}, err
	}
	y, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return ln.Vector{}, err
	}
	z, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return ln.Vector{}, err
	}
	return ln.V(x, y, z), nil
}

// parseFaceIndices returns each face vertex's 1-based (or negative,
// relative-to-end) vertex index, discarding any "/vt/vn" suffix.
func parseFaceIndices(fields []string) ([]int, error) {
	indices := make([]int, len(fields))
	for i, f := range fields {
		token := f
		if slash := strings.IndexByte(f, '/'); slash >= 0 {
			token = f[:slash]
		}
		n, err := strconv.Atoi(token)
		if err != nil {
			return nil, err
		}
		indices[i] = n
	}
	return indices, nil
}

func resolveIndex(vertices []ln.Vector, idx int) (ln.Vector, bool) {
	var i int
	if idx < 0 {
		i = len(vertices) + idx
	} else {
		i = idx - 1
	}
	if i < 0 || i >= len(vertices) {
		return ln.Vector{}, false
	}
	return vertices[i], true
}

func isDegenerate(v1, v2, v3 ln.Vector) bool {
	return v2.Sub(v1).Cross(v3.Sub(v1)).LengthSquared() < 1e-18
}
