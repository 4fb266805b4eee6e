package ggbench

import (
	"fmt"
	"math/rand/v2"

	"github.com/gogpu/ggbench/surface"
)

// ContextID identifies a rendering context.
type ContextID int

// Contexts in run order.
const (
	ContextNormal ContextID = iota
	ContextTransformed
)

// NumContexts is the number of rendering contexts.
const NumContexts = int(ContextTransformed) + 1

var contextNames = [NumContexts]string{
	"normal",
	"transform",
}

// String returns the display name used in the results table.
func (c ContextID) String() string {
	if c < 0 || int(c) >= NumContexts {
		return fmt.Sprintf("ContextID(%d)", int(c))
	}
	return contextNames[c]
}

// ContextNames returns the display names of all contexts in run order.
func ContextNames() []string {
	return append([]string(nil), contextNames[:]...)
}

// Context is a graphics-state configuration. Setup runs before every
// batch of draw calls.
type Context struct {
	ID    ContextID
	Name  string
	Setup func(g surface.Graphics, r *rand.Rand)
}

// Contexts returns the rendering contexts in run order.
func Contexts() []Context {
	return []Context{
		{ID: ContextNormal, Name: contextNames[ContextNormal], Setup: setupNormal},
		{ID: ContextTransformed, Name: contextNames[ContextTransformed], Setup: setupTransform},
	}
}

func setupNormal(surface.Graphics, *rand.Rand) {}

// setupTransform installs a random uniform scale.
func setupTransform(g surface.Graphics, r *rand.Rand) {
	r.Int32() // transform selector: only uniform scale is enabled
	s := scaleFactor(r)
	g.SetTransform(surface.Scale(s, s))
}
