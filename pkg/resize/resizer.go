package resize

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/disintegration/imaging"
)

// Resizer scales single images so that their longer side matches a target size.
type Resizer struct {
	resampler   imaging.ResampleFilter
	jpegQuality int
}

// NewResizer creates a Resizer using the given resample filter and JPEG quality.
func NewResizer(resampler imaging.ResampleFilter, jpegQuality int) *Resizer {
	return &Resizer{
		resampler:   resampler,
		jpegQuality: jpegQuality,
	}
}

// TargetDimensions computes the output size of a w x h image for the given target size.
// scale is false when both sides are already smaller than size; the image is then kept as is.
// Otherwise the longer side becomes size and the shorter one is truncated proportionally.
// Square images are driven by their width and come out size x size.
func TargetDimensions(w, h, size int) (nw, nh int, scale bool) {
	if w < size && h < size {
		return w, h, false
	}

	if w >= h {
		nw, nh = size, size*h/w
	} else {
		nw, nh = size*w/h, size
	}

	// imaging treats a zero side as "keep aspect ratio"; extreme strips keep one pixel instead.
	return max(nw, 1), max(nh, 1), true
}

// Resize reads src, scales it to size and writes the result to dst.
// Images already smaller than size are copied byte for byte.
func (r *Resizer) Resize(src, dst string, size int) error {
	img, format, err := decodeFile(src)
	if err != nil {
		return err
	}

	bounds := img.Bounds()
	nw, nh, scale := TargetDimensions(bounds.Dx(), bounds.Dy(), size)
	if !scale {
		return copyFile(src, dst)
	}

	outFormat := outputFormat(dst, format)
	resized := imaging.Resize(img, nw, nh, r.resampler)
	return writeFile(dst, func(w io.Writer) error {
		return imaging.Encode(w, resized, outFormat, imaging.JPEGQuality(r.jpegQuality))
	})
}

// outputFormat picks the encoder for dst: its extension first, then the source format.
// Formats that can be decoded but not encoded (webp) are written as PNG.
func outputFormat(dst, sourceFormat string) imaging.Format {
	if f, err := imaging.FormatFromFilename(dst); err == nil {
		return f
	}
	if f, err := imaging.FormatFromExtension(sourceFormat); err == nil {
		return f
	}
	return imaging.PNG
}

// decodeFile fully decodes the image at path.
func decodeFile(path string) (image.Image, string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, "", err
	}
	defer file.Close()

	img, format, err := image.Decode(file)
	if err != nil {
		return nil, "", fmt.Errorf("decoding %s: %w", path, err)
	}
	return img, format, nil
}

// copyFile copies src to dst verbatim.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	return writeFile(dst, func(w io.Writer) error {
		_, err := io.Copy(w, in)
		return err
	})
}

// writeFile creates dst and fills it with write. dst is removed again if anything fails.
func writeFile(dst string, write func(io.Writer) error) (err error) {
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); err == nil {
			err = cerr
		}
		if err != nil {
			err = errors.Join(err, removeIfExists(dst))
		}
	}()

	if err := write(out); err != nil {
		return fmt.Errorf("writing %s: %w", dst, err)
	}
	return nil
}

func removeIfExists(path string) error {
	if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}
