// Command larnt-render renders a demo scene (or an OBJ mesh, if given) to
// SVG and PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/HellOwhatAs/larnt-go"
	"github.com/HellOwhatAs/larnt-go/objloader"
	"github.com/HellOwhatAs/larnt-go/raster"
)

func main() {
	var (
		objPath = flag.String("obj", "", "OBJ file to render; renders a demo cube scene if empty")
		output  = flag.String("output", "out", "output file basename (writes .svg and .png)")
		width   = flag.Float64("width", 1024, "image width")
		height  = flag.Float64("height", 1024, "image height")
		fovy    = flag.Float64("fovy", 50, "vertical field of view, degrees")
		verbose = flag.Bool("v", false, "verbose logging")
	)
	flag.Parse()

	if *verbose {
		ln.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	scene := ln.NewScene()
	eye := ln.V(4, 3, 2)

	if *objPath != "" {
		triangles, err := objloader.Load(*objPath)
		if err != nil {
			log.Fatalf("loading obj: %v", err)
		}
		mesh, err := ln.NewMesh(triangles)
		if err != nil {
			log.Fatalf("building mesh: %v", err)
		}
		scene.Add(mesh.UnitCube())
		eye = ln.V(-0.5, 0.5, 2)
	} else {
		scene.Add(ln.NewCube(ln.V(-1, -1, -1), ln.V(1, 1, 1)))
	}

	paths := scene.Render(eye,
		ln.WithSize(*width, *height),
		ln.WithFovy(*fovy),
	)

	if err := os.WriteFile(*output+".svg", []byte(paths.ToSVG(*width, *height)), 0o644); err != nil {
		log.Fatalf("writing svg: %v", err)
	}
	if err := raster.SavePNG(*output+".png", paths, int(*width), int(*height)); err != nil {
		log.Fatalf("writing png: %v", err)
	}

	log.Printf("rendered %d paths to %s.svg and %s.png", len(paths.Paths), *output, *output)
}
