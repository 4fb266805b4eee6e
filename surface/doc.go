// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package surface provides the drawing target the benchmark measures.
//
// A Surface is a device-space rendering target: it fills and strokes
// paths and draws images through an affine transform. The same drawing
// code works with any backend registered in the Registry:
//
//   - ImageSurface: software rasterizer into *image.RGBA built on
//     golang.org/x/image/vector, registered as "image"
//   - Third-party backends added with Register
//
// # Graphics
//
// Graphics2D layers user-space state on top of a Surface: foreground and
// background colors, a Matrix transform, a device-space clip rectangle
// and the anti-aliasing hint. Every primitive (lines, rectangles, ovals,
// polylines, polygons, strings and images) is turned into a Path, mapped
// through the current transform and handed to the surface.
//
// # Registry
//
// Backends register a Factory under a name and priority:
//
//	surface.Register(surface.Backend{
//	    Name:     "custom",
//	    Priority: 20,
//	    Factory: func(opts surface.Options) (surface.Surface, error) {
//	        return newCustomSurface(opts.Width, opts.Height)
//	    },
//	})
//
//	// Later:
//	s, err := surface.New("custom", surface.DefaultOptions(500, 500))
//
// An empty name picks the highest-priority available backend.
//
// # Usage
//
//	s := surface.NewImageSurface(500, 500)
//	s.Clear(color.White)
//
//	g := surface.NewGraphics(s, nil)
//	g.SetColor(color.RGBA{255, 0, 0, 255})
//	g.SetTransform(surface.Scale(2, 2))
//	g.FillOval(10, 10, 100, 50)
//
//	img := s.Snapshot()
//	_ = g.Dispose()
package surface
