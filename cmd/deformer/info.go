package main

import (
	"fmt"
	"strconv"

	"github.com/Faultbox/normal-deformer/internal/config"
	"github.com/Faultbox/normal-deformer/internal/mesh"
	"github.com/Faultbox/normal-deformer/pkg/math"
	"github.com/Faultbox/normal-deformer/pkg/noise"
)

func cmdInfo(cfg *config.Config, args []string) error {
	src, err := loadSource(cfg, args)
	if err != nil {
		return err
	}

	shading := mesh.ShadingFor(cfg.Deform.Smooth)
	topo, err := mesh.Prepare(src, shading)
	if err != nil {
		return err
	}
	b := math.BoundsOf(src.Positions)

	fmt.Printf("Vertices:   %d\n", src.VertexCount())
	fmt.Printf("Triangles:  %d\n", src.TriangleCount())
	fmt.Printf("UV0:        %t\n", len(src.UV0) > 0)
	fmt.Printf("UV1:        %t\n", len(src.UV1) > 0)
	fmt.Printf("Bounds:     %v .. %v\n", b.Min, b.Max)
	fmt.Printf("Shading:    %s\n", shading)
	fmt.Printf("Output:     %d vertices, %d indices\n", topo.VertexCount, len(topo.Indices))
	return nil
}

func cmdSample(cfg *config.Config, args []string) error {
	if len(args) < 3 {
		return fmt.Errorf("usage: deformer sample <x> <y> <z>")
	}
	var p [3]float32
	for i := range p {
		v, err := strconv.ParseFloat(args[i], 32)
		if err != nil {
			return fmt.Errorf("bad coordinate %q: %w", args[i], err)
		}
		p[i] = float32(v)
	}

	basis, err := noise.ParseBasis(cfg.Deform.Basis)
	if err != nil {
		return err
	}
	field, err := noise.New(basis, cfg.Deform.Seed)
	if err != nil {
		return err
	}

	fmt.Printf("Basis:     %s\n", basis)
	fmt.Printf("Sample:    %g\n", field.Sample(p[0], p[1], p[2]))
	fmt.Printf("Fractal4:  %g\n", noise.Fractal4(field, p[0], p[1], p[2]))
	fmt.Printf("FBM3(4):   %g\n", noise.FBM3(p[0], p[1], p[2], 4))
	return nil
}
