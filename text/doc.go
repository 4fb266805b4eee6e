// Package text turns strings into glyph outlines for the drawing surface.
//
// Shaping uses the HarfBuzz port in github.com/go-text/typesetting, the
// paragraph direction comes from golang.org/x/text/unicode/bidi, and
// outlines are loaded with golang.org/x/image/font/sfnt. The default face
// is Go Regular from golang.org/x/image/font/gofont.
//
// Example:
//
//	face, err := text.DefaultFace(12)
//	if err != nil {
//	    return err
//	}
//	p := surface.NewPath()
//	if err := face.AppendString(p, "Abcdefghijklmnop", 10, 20); err != nil {
//	    return err
//	}
package text
