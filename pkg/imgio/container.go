package imgio

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	bin "github.com/saylorsolutions/binmap"
)

const (
	// RawExt is the extension that selects the raw container format.
	RawExt = ".pxr"

	rawMagic   uint16 = 0x5058
	rawVersion uint8  = 1
)

// rawHeader precedes the pixel bytes in a raw container file.
type rawHeader struct {
	magic   uint16
	version uint8
	mode    uint8
	width   uint32
	height  uint32
}

func (h *rawHeader) mapper() bin.Mapper {
	return bin.MapSequence(
		bin.Int(&h.magic),
		bin.Byte(&h.version),
		bin.Byte(&h.mode),
		bin.Int(&h.width),
		bin.Int(&h.height),
	)
}

// IsRaw reports whether path selects the raw container format by extension.
func IsRaw(path string) bool {
	return strings.EqualFold(filepath.Ext(path), RawExt)
}

// WriteRaw stores pixel data in the raw container format: a fixed header
// carrying the mode tag and dimensions, followed by the pixel bytes verbatim.
// Unlike image codecs, the container never re-detects the color mode, so any
// buffer round-trips exactly.
func WriteRaw(path string, d *PixelData) error {
	if err := d.validate(); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	h := rawHeader{
		magic:   rawMagic,
		version: rawVersion,
		mode:    uint8(d.Mode),
		width:   uint32(d.Width),
		height:  uint32(d.Height),
	}
	if err := h.mapper().Write(f, binary.BigEndian); err != nil {
		_ = f.Close()
		return err
	}
	if _, err := f.Write(d.Pix); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// ReadRaw loads pixel data from a raw container file written by WriteRaw.
func ReadRaw(path string) (*PixelData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = f.Close()
	}()

	var h rawHeader
	if err := h.mapper().Read(f, binary.BigEndian); err != nil {
		return nil, fmt.Errorf("%w: short or malformed header: %v", ErrInvalidData, err)
	}
	if h.magic != rawMagic {
		return nil, fmt.Errorf("%w: bad magic 0x%04x", ErrInvalidData, h.magic)
	}
	if h.version != rawVersion {
		return nil, fmt.Errorf("%w: unsupported container version %d", ErrInvalidData, h.version)
	}
	pix, err := io.ReadAll(f)
	if err != nil {
		return nil, err
	}
	d := &PixelData{
		Pix:    pix,
		Mode:   ColorMode(h.mode),
		Width:  int(h.width),
		Height: int(h.height),
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return d, nil
}
