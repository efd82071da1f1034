package imgio

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/gif"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

var (
	// ErrInvalidData flags pixel data whose buffer length doesn't match its
	// declared dimensions and color mode.
	ErrInvalidData = errors.New("unable to use pixel data")
	// ErrUnknownFormat flags an output extension with no registered codec.
	ErrUnknownFormat = errors.New("unsupported image format")
)

// ColorMode identifies the channel layout of a flattened pixel buffer.
// Its numeric value is the channel count, which also serves as the mode tag
// in the raw container format.
type ColorMode byte

const (
	L    ColorMode = 1 // 8-bit grayscale
	RGB  ColorMode = 3 // 8-bit color, no alpha
	RGBA ColorMode = 4 // 8-bit color with alpha
)

// Channels reports the number of bytes per pixel for the mode.
func (m ColorMode) Channels() int {
	return int(m)
}

func (m ColorMode) String() string {
	switch m {
	case L:
		return "L"
	case RGB:
		return "RGB"
	case RGBA:
		return "RGBA"
	default:
		return fmt.Sprintf("ColorMode(%d)", byte(m))
	}
}

func (m ColorMode) valid() bool {
	return m == L || m == RGB || m == RGBA
}

// PixelData is a flattened image: row-major pixel bytes plus the dimensions
// and color mode needed to rebuild the image. The buffer length is always
// Width*Height*Mode.Channels().
type PixelData struct {
	Pix    []byte
	Mode   ColorMode
	Width  int
	Height int
}

func (d *PixelData) validate() error {
	if d == nil {
		return fmt.Errorf("%w: nil PixelData", ErrInvalidData)
	}
	if !d.Mode.valid() {
		return fmt.Errorf("%w: unknown color mode %d", ErrInvalidData, byte(d.Mode))
	}
	if d.Width < 0 || d.Height < 0 {
		return fmt.Errorf("%w: negative dimensions %dx%d", ErrInvalidData, d.Width, d.Height)
	}
	if expected := d.Width * d.Height * d.Mode.Channels(); len(d.Pix) != expected {
		return fmt.Errorf("%w: %dx%d %s needs %d bytes, have %d", ErrInvalidData, d.Width, d.Height, d.Mode, expected, len(d.Pix))
	}
	return nil
}

// Load decodes the image at path and flattens it via FromImage.
// PNG, JPEG, GIF, BMP, and TIFF inputs are recognized.
func Load(path string) (*PixelData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return FromImage(img)
}

// FromImage normalizes img to a stable color mode and flattens it.
//
// Grayscale images keep mode L. Everything else is drawn into an NRGBA
// canvas; fully opaque results become RGB, the rest RGBA. The same rules
// re-apply when a saved image is loaded again, so the mode and buffer length
// round-trip through an encode/decode cycle.
func FromImage(img image.Image) (*PixelData, error) {
	bounds := img.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if gray, ok := img.(*image.Gray); ok {
		pix := make([]byte, w*h)
		for y := 0; y < h; y++ {
			copy(pix[y*w:(y+1)*w], gray.Pix[y*gray.Stride:y*gray.Stride+w])
		}
		d := &PixelData{Pix: pix, Mode: L, Width: w, Height: h}
		return d, d.validate()
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Draw(canvas, canvas.Bounds(), img, bounds.Min, draw.Src)

	if canvas.Opaque() {
		pix := make([]byte, w*h*3)
		for i := 0; i < w*h; i++ {
			copy(pix[i*3:i*3+3], canvas.Pix[i*4:i*4+3])
		}
		d := &PixelData{Pix: pix, Mode: RGB, Width: w, Height: h}
		return d, d.validate()
	}

	pix := make([]byte, len(canvas.Pix))
	copy(pix, canvas.Pix)
	d := &PixelData{Pix: pix, Mode: RGBA, Width: w, Height: h}
	return d, d.validate()
}

// ToImage rebuilds an image from flattened pixel data.
func ToImage(d *PixelData) (image.Image, error) {
	if err := d.validate(); err != nil {
		return nil, err
	}
	switch d.Mode {
	case L:
		img := image.NewGray(image.Rect(0, 0, d.Width, d.Height))
		for y := 0; y < d.Height; y++ {
			copy(img.Pix[y*img.Stride:y*img.Stride+d.Width], d.Pix[y*d.Width:(y+1)*d.Width])
		}
		return img, nil
	case RGB:
		img := image.NewNRGBA(image.Rect(0, 0, d.Width, d.Height))
		for i := 0; i < d.Width*d.Height; i++ {
			copy(img.Pix[i*4:i*4+3], d.Pix[i*3:i*3+3])
			img.Pix[i*4+3] = 0xff
		}
		return img, nil
	default:
		img := image.NewNRGBA(image.Rect(0, 0, d.Width, d.Height))
		copy(img.Pix, d.Pix)
		return img, nil
	}
}

// Save re-encodes pixel data to path, choosing the codec by extension:
// .png, .jpg/.jpeg, .bmp, or .tif/.tiff. A missing extension defaults to PNG
// and ".png" is appended to the path.
//
// JPEG output is lossy, which destroys a scrambled buffer beyond recovery.
// It's supported for decrypted output only; scrambled images belong in PNG,
// BMP, TIFF, or the raw container.
func Save(path string, d *PixelData) error {
	img, err := ToImage(d)
	if err != nil {
		return err
	}
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		path += ".png"
		ext = ".png"
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	switch ext {
	case ".png":
		err = png.Encode(f, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(f, img, nil)
	case ".bmp":
		err = bmp.Encode(f, img)
	case ".tif", ".tiff":
		err = tiff.Encode(f, img, nil)
	default:
		err = fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
