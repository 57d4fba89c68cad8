// Package plugin decodes a CBOR-encoded render request — camera parameters
// plus a flat list of axis-aligned box shapes — into an ln.Scene render,
// mirroring the CBOR-argument wasm plugin shape of the original renderer.
package plugin

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"

	"github.com/HellOwhatAs/larnt-go"
)

// RenderArgs is the CBOR-decoded camera and output configuration for a
// render request.
type RenderArgs struct {
	Eye    [3]float64 `cbor:"eye"`
	Center [3]float64 `cbor:"center"`
	Up     [3]float64 `cbor:"up"`
	Width  float64    `cbor:"width"`
	Height float64    `cbor:"height"`
	Fovy   float64    `cbor:"fovy"`
	Near   float64    `cbor:"near"`
	Far    float64    `cbor:"far"`
	Step   float64    `cbor:"step"`
}

// BoxShape is a single axis-aligned box, the wire shape for the item list
// accepted by Render: a 2-element array of [min, max] corner triples.
type BoxShape [2][3]float64

// Render decodes renderArgsCBOR into a RenderArgs and itemsCBOR into a list
// of BoxShape, builds a Scene of one ln.Cube per item, renders it, and
// returns the result as an SVG document's bytes.
func Render(renderArgsCBOR, itemsCBOR []byte) ([]byte, error) {
	var args RenderArgs
	if err := cbor.Unmarshal(renderArgsCBOR, &args); err != nil {
		return nil, fmt.Errorf("plugin: decoding render args: %w", err)
	}

	var items []BoxShape
	if err := cbor.Unmarshal(itemsCBOR, &items); err != nil {
		return nil, fmt.Errorf("plugin: decoding items: %w", err)
	}

	scene := ln.NewScene()
	for _, item := range items {
		min := ln.V(item[0][0], item[0][1], item[0][2])
		max := ln.V(item[1][0], item[1][1], item[1][2])
		scene.Add(ln.NewCube(min, max))
	}

	eye := ln.V(args.Eye[0], args.Eye[1], args.Eye[2])
	center := ln.V(args.Center[0], args.Center[1], args.Center[2])
	up := ln.V(args.Up[0], args.Up[1], args.Up[2])

	paths := scene.Render(eye,
		ln.WithCenter(center),
		ln.WithUp(up),
		ln.WithSize(args.Width, args.Height),
		ln.WithFovy(args.Fovy),
		ln.WithClip(args.Near, args.Far),
		ln.WithStep(args.Step),
	)

	return []byte(paths.ToSVG(args.Width, args.Height)), nil
}
