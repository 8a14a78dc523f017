package fluentemoji

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"

	"github.com/disintegration/imaging"
	"github.com/kolesa-team/go-webp/encoder"
	"github.com/kolesa-team/go-webp/webp"
)

// Converter re-encodes decoded raster images into the output WebP tree.
type Converter struct {
	// TrimmedDir receives the padding-trimmed renditions.
	TrimmedDir string
	// OriginalDir receives the untrimmed renditions.
	OriginalDir string
	// Quality is the lossy WebP encoding quality.
	Quality float32
}

// NewConverter binds a converter to the output tree of the run.
func NewConverter(cfg *Config) *Converter {
	return &Converter{
		TrimmedDir:  cfg.TrimmedDir(),
		OriginalDir: cfg.OriginalDir(),
		Quality:     cfg.Quality,
	}
}

// Convert writes both renditions of one decoded raster image: the image with
// its uniform transparent border removed under the trimmed directory, and the
// re-encoded image as-is under the original directory. The file is named after
// the Unicode key plus the skin tone suffix. Any failure is reported to the
// caller as a per-icon error.
func (c *Converter) Convert(img image.Image, name string) error {
	src := imaging.Clone(img)
	trimmed := imaging.Crop(src, opaqueBounds(src))

	fname := name + ".webp"
	if err := c.encode(filepath.Join(c.TrimmedDir, fname), trimmed); err != nil {
		return err
	}
	return c.encode(filepath.Join(c.OriginalDir, fname), src)
}

// encode writes a single image as lossy WebP to the destination path.
func (c *Converter) encode(path string, img image.Image) error {
	opts, err := encoder.NewLossyEncoderOptions(encoder.PresetDefault, c.Quality)
	if err != nil {
		return fmt.Errorf("unable to set up the webp encoder: %w", err)
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("unable to create the destination file: %w", err)
	}
	defer out.Close()

	if err := webp.Encode(out, img, opts); err != nil {
		return fmt.Errorf("unable to encode %s: %w", filepath.Base(path), err)
	}
	return nil
}

// DecodeImage decodes a raster source file to type image.Image.
func DecodeImage(src string) (image.Image, error) {
	file, err := os.Open(src)
	if err != nil {
		return nil, fmt.Errorf("could not open the image file: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("could not decode the image file: %w", err)
	}
	return img, nil
}

// opaqueBounds returns the bounding box of the non-transparent pixels.
// A fully transparent image keeps its original bounds.
func opaqueBounds(img *image.NRGBA) image.Rectangle {
	b := img.Bounds()
	min, max := b.Max, b.Min

	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[(y-b.Min.Y)*img.Stride : (y-b.Min.Y)*img.Stride+b.Dx()*4]
		for x := 0; x < b.Dx(); x++ {
			if row[x*4+3] == 0 {
				continue
			}
			px := b.Min.X + x
			if px < min.X {
				min.X = px
			}
			if px >= max.X {
				max.X = px + 1
			}
			if y < min.Y {
				min.Y = y
			}
			if y >= max.Y {
				max.Y = y + 1
			}
		}
	}
	if min.X >= max.X || min.Y >= max.Y {
		return b
	}
	return image.Rect(min.X, min.Y, max.X, max.Y)
}
