package vfx

import (
	"bufio"
	"fmt"
	"image"
	"image/color"
	"os"
)

// ReadFile parses a VFX container from a file on disk.
func ReadFile(path string) (*Container, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrOpenFile, path, err)
	}
	defer func() { _ = f.Close() }()

	return Parse(bufio.NewReader(f))
}

// Config returns the texture's dimensions and color model without decoding
// pixel data.
func (t *Texture) Config() image.Config {
	p := t.Properties()

	return image.Config{
		Width:      int(p.Width),
		Height:     int(p.Height),
		ColorModel: color.NRGBAModel,
	}
}
