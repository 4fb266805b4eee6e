// Package imagesource decodes the fixed set of test images drawn by the
// benchmark: an opaque raster, a 1-bit transparency ("bitmask") raster, an
// alpha-translucent raster, and an ARGB raster made by compositing the
// translucent image onto a blank canvas.
//
// Images are looked up by base name with any registered extension, so a
// directory may supply opaque.jpg, bitmask.gif and translucent.png, or
// any of png, gif, jpeg, bmp, tiff and webp.
package imagesource

import (
	"embed"
	"image"
	"image/color"
	_ "image/gif"  // decoder registration
	_ "image/jpeg" // decoder registration
	_ "image/png"  // decoder registration
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp" // decoder registration
	xdraw "golang.org/x/image/draw"
	_ "golang.org/x/image/tiff" // decoder registration
	_ "golang.org/x/image/webp" // decoder registration
)

// Resource base names.
const (
	OpaqueName      = "opaque"
	BitmaskName     = "bitmask"
	TranslucentName = "translucent"
)

// DefaultSize is the edge length of the square test images.
const DefaultSize = 128

//go:embed resources
var resources embed.FS

// Set holds the decoded test images. When loaded with a non-zero
// Options.Size all four are Size x Size.
type Set struct {
	Opaque      image.Image
	Bitmask     image.Image
	Translucent image.Image
	ARGB        *image.RGBA
}

// Options controls decoding.
type Options struct {
	// Size is the edge length images are resized to when their bounds
	// differ. Zero keeps decoded sizes.
	Size int
}

// DefaultOptions returns Options with DefaultSize.
func DefaultOptions() Options {
	return Options{Size: DefaultSize}
}

// Embedded returns the built-in images as a file system.
func Embedded() (fs.FS, error) {
	sub, err := fs.Sub(resources, "resources")
	if err != nil {
		return nil, errors.Wrap(err, "imagesource: embedded resources")
	}
	return sub, nil
}

// Default decodes the embedded resources at DefaultSize.
func Default() (*Set, error) {
	fsys, err := Embedded()
	if err != nil {
		return nil, err
	}
	return Load(fsys, DefaultOptions())
}

// LoadDir decodes the images found in dir.
func LoadDir(dir string, opts Options) (*Set, error) {
	return Load(os.DirFS(dir), opts)
}

// Load decodes the three named images from fsys and builds the ARGB
// image. A missing or undecodable resource fails the whole load.
//
// The opaque image is flattened onto white when it carries any
// transparency, and partial alpha in the bitmask image is snapped to
// fully opaque or fully transparent at the 50% mark.
func Load(fsys fs.FS, opts Options) (*Set, error) {
	opaque, err := decode(fsys, OpaqueName)
	if err != nil {
		return nil, err
	}
	bitmask, err := decode(fsys, BitmaskName)
	if err != nil {
		return nil, err
	}
	translucent, err := decode(fsys, TranslucentName)
	if err != nil {
		return nil, err
	}

	if opts.Size > 0 {
		opaque = fit(opaque, opts.Size, resize.Bilinear)
		// Nearest neighbor keeps the transparency mask binary.
		bitmask = fit(bitmask, opts.Size, resize.NearestNeighbor)
		translucent = fit(translucent, opts.Size, resize.Bilinear)
	}
	if !IsOpaque(opaque) {
		opaque = flattenOnWhite(opaque)
	}
	if !IsBitmask(bitmask) {
		bitmask = snapAlpha(bitmask)
	}

	return &Set{
		Opaque:      opaque,
		Bitmask:     bitmask,
		Translucent: translucent,
		ARGB:        Composite(translucent),
	}, nil
}

// Composite draws img over a blank, fully transparent canvas of the same
// size and returns the canvas.
func Composite(img image.Image) *image.RGBA {
	b := img.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(canvas, canvas.Bounds(), img, b.Min, xdraw.Over)
	return canvas
}

// flattenOnWhite composites img over an opaque white canvas.
func flattenOnWhite(img image.Image) *image.RGBA {
	b := img.Bounds()
	canvas := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	xdraw.Draw(canvas, canvas.Bounds(), image.White, image.Point{}, xdraw.Src)
	xdraw.Draw(canvas, canvas.Bounds(), img, b.Min, xdraw.Over)
	return canvas
}

// snapAlpha returns a copy of img whose pixels are either fully opaque or
// fully transparent.
func snapAlpha(img image.Image) *image.NRGBA {
	b := img.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			if c.A >= 0x80 {
				c.A = 0xff
			} else {
				c = color.NRGBA{}
			}
			out.SetNRGBA(x, y, c)
		}
	}
	return out
}

// IsBitmask reports whether every pixel of img is either fully opaque or
// fully transparent.
func IsBitmask(img image.Image) bool {
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _, _, a := img.At(x, y).RGBA()
			if a != 0 && a != 0xffff {
				return false
			}
		}
	}
	return true
}

// IsOpaque reports whether every pixel of img is fully opaque.
func IsOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if _, _, _, a := img.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}

// imageExts lists the extensions of the registered decoders.
var imageExts = map[string]bool{
	".png": true, ".gif": true, ".jpg": true, ".jpeg": true,
	".bmp": true, ".tif": true, ".tiff": true, ".webp": true,
}

// decode finds name.<ext> in fsys, for a registered image extension, and
// decodes it. Other files sharing the base name are ignored.
func decode(fsys fs.FS, name string) (image.Image, error) {
	matches, err := fs.Glob(fsys, name+".*")
	if err != nil {
		return nil, errors.Wrapf(err, "imagesource: look up %s", name)
	}
	file := ""
	for _, m := range matches {
		if imageExts[strings.ToLower(path.Ext(m))] {
			file = m
			break
		}
	}
	if file == "" {
		return nil, errors.Wrapf(fs.ErrNotExist, "imagesource: resource %s", name)
	}

	f, err := fsys.Open(file)
	if err != nil {
		return nil, errors.Wrapf(err, "imagesource: open %s", file)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "imagesource: decode %s", path.Base(file))
	}
	if bitmaskFormat(format) && name == BitmaskName {
		img = flattenPaletted(img)
	}
	return img, nil
}

// bitmaskFormat reports formats that carry 1-bit transparency through a
// palette.
func bitmaskFormat(format string) bool {
	return format == "gif"
}

// flattenPaletted converts a paletted image to NRGBA so later resizing
// and drawing treat the transparent index as alpha zero.
func flattenPaletted(img image.Image) image.Image {
	p, ok := img.(*image.Paletted)
	if !ok {
		return img
	}
	b := p.Bounds()
	out := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, color.NRGBAModel.Convert(p.At(x, y)))
		}
	}
	return out
}

// fit resizes img to a size x size square unless it already is one.
func fit(img image.Image, size int, interp resize.InterpolationFunction) image.Image {
	b := img.Bounds()
	if b.Dx() == size && b.Dy() == size {
		return img
	}
	return resize.Resize(uint(size), uint(size), img, interp) //nolint:gosec // size is positive
}
