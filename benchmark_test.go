package ggbench

import (
	"testing"

	"github.com/gogpu/ggbench/surface"
	"github.com/gogpu/ggbench/text"
)

// BenchmarkTestCases runs each catalog entry against an in-memory surface
// under both contexts, the testing.B counterpart of RunAll.
func BenchmarkTestCases(b *testing.B) {
	face, err := text.DefaultFace(12)
	if err != nil {
		b.Fatal(err)
	}
	h := New(testImages(b))

	for _, aa := range []bool{false, true} {
		mode := "aliased"
		if aa {
			mode = "antialiased"
		}
		for _, c := range Contexts() {
			for _, tc := range h.Tests() {
				b.Run(mode+"/"+c.Name+"/"+tc.Name, func(b *testing.B) {
					g := surface.NewGraphics(surface.NewImageSurface(512, 512), face)
					g.SetAntialias(aa)
					setup := newGenerator(DefaultSeed)
					args := newGenerator(DefaultSeed)
					b.ReportAllocs()
					b.ResetTimer()
					for i := 0; i < b.N; i++ {
						if i%DefaultBatchSize == 0 {
							c.Setup(g, setup)
						}
						g.SetColor(pickColor(args))
						g.SetBackground(pickColor(args))
						tc.Draw(g, args)
					}
				})
			}
		}
	}
}
