// Package ggbench measures the throughput of primitive 2D drawing calls.
//
// # Overview
//
// A Harness drives a [surface.Graphics] through every combination of a
// rendering context and a test case. Each combination runs a fixed
// wall-clock window (5 seconds by default) and records how many calls
// per second completed. The table is written as tab-separated text.
//
// # Quick Start
//
//	images, err := imagesource.Default()
//	if err != nil {
//	    return err
//	}
//	face, err := text.DefaultFace(12)
//	if err != nil {
//	    return err
//	}
//	s := surface.NewImageSurface(512, 512)
//	g := surface.NewGraphics(s, face)
//
//	h := ggbench.New(images)
//	report, err := h.RunAll(g, ggbench.Config{Antialiased: true})
//
// # Contexts
//
//   - normal: identity transform, no setup
//   - transform: a random uniform scale in [0.1, 5.1) applied every batch
//
// # Test cases
//
// line, rect, fill rect, oval, fill oval, poly, fill poly, text, image,
// scaled image, mask image, alpha image and argb image.
//
// # Determinism
//
// Every test reseeds two generators from the same seed: one feeds context
// setup, the other feeds colors and draw arguments. A (context, test)
// pair therefore issues the same call sequence on every run.
//
// # Results
//
// Throughput is added into the results table rather than stored, so
// benchmarking a pair twice without dumping in between sums both runs.
// [Harness.DumpResults] clears the table after a successful write.
package ggbench

// Version is the current version of ggbench.
const Version = "0.1.0"
