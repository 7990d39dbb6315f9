package vfx

import (
	"encoding/binary"
	"fmt"
	"runtime"
	"sync"
)

// DecodeOptions configures container-wide decoding.
type DecodeOptions struct {
	// Workers is the number of goroutines used by DecompressAll.
	// Zero or negative means GOMAXPROCS.
	Workers int
}

// Decompress decodes the texture payload into an RGBA8 buffer of
// width*height*4 bytes. The payload length must match the derived geometry
// exactly; no partial decode is attempted. The buffer is filled in the
// payload's column-major order; Image hands it to writers as width x height
// raster rows under the same convention.
func (t *Texture) Decompress() ([]byte, error) {
	p := t.Properties()
	if len(t.Data) != p.DataLength() {
		return nil, fmt.Errorf("%w: expected %d, got %d", ErrDataLengthMismatch, p.DataLength(), len(t.Data))
	}

	switch t.Format {
	case FormatR7G6B5A1:
		return decompressR7G6B5A1(t.Data, p), nil
	case FormatARGB4:
		return decompressARGB4(t.Data, p), nil
	case FormatRGB8A1:
		return decompressRGB8A1(t.Data, p, &t.Brightness, &t.RGB0, &t.RGB1), nil
	default:
		// Unreachable for parsed containers; Parse rejects unknown codes.
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, t.Format)
	}
}

// decompressR7G6B5A1 expands 16-bit words with 5-bit color channels and a
// high alpha bit. The channel shifts are the original encoder's, not a
// standard 5-to-8 expansion. A set alpha bit still decodes transparent when
// the low 15 bits are all zero.
func decompressR7G6B5A1(data []byte, p Properties) []byte {
	out := make([]byte, p.PixelCount()*4)
	width, height := int(p.Width), int(p.Height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			i := y + x*height
			v := binary.LittleEndian.Uint16(data[2*i:])
			out[4*i+0] = uint8((v & 0x7C00) >> 7)
			out[4*i+1] = uint8((v & 0x03E0) >> 2)
			out[4*i+2] = uint8((v & 0x001F) << 3)
			if v&0x7FFF != 0 && v&0x8000 != 0 {
				out[4*i+3] = 255
			}
		}
	}

	return out
}

// decompressARGB4 places each 4-bit channel into the high nibble of its
// output byte; the low nibble stays zero.
func decompressARGB4(data []byte, p Properties) []byte {
	out := make([]byte, p.PixelCount()*4)
	width, height := int(p.Width), int(p.Height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			i := y + x*height
			v := binary.LittleEndian.Uint16(data[2*i:])
			out[4*i+0] = uint8((v & 0x0F00) >> 4)
			out[4*i+1] = uint8(v & 0x00F0)
			out[4*i+2] = uint8((v & 0x000F) << 4)
			out[4*i+3] = uint8((v & 0xF000) >> 8)
		}
	}

	return out
}

// decompressRGB8A1 sums a brightness level with two signed palette
// corrections per channel, clamped to [0, 255]. The top nibble of each
// payload byte selects the brightness level, bits 2-3 the first palette
// entry and bits 0-1 the second.
func decompressRGB8A1(data []byte, p Properties, brightness *[16]uint8, rgb0, rgb1 *[4]RGB) []byte {
	out := make([]byte, p.PixelCount()*4)
	width, height := int(p.Width), int(p.Height)
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			i := y + x*height
			v := data[i]
			l := int32(brightness[v>>4])
			c0 := rgb0[(v>>2)&3]
			c1 := rgb1[v&3]
			r := clampU8(l + signExtend9(c0.R) + signExtend9(c1.R))
			g := clampU8(l + signExtend9(c0.G) + signExtend9(c1.G))
			b := clampU8(l + signExtend9(c0.B) + signExtend9(c1.B))
			out[4*i+0] = r
			out[4*i+1] = g
			out[4*i+2] = b
			if r|g|b != 0 {
				out[4*i+3] = 255
			}
		}
	}

	// The original encoder corrupts the second and third pixels; the game
	// replaces both with the first pixel, so the decoder must too.
	for i := 1; i < len(data) && i < 3; i++ {
		copy(out[4*i:4*i+4], out[0:4])
	}

	return out
}

// signExtend9 treats the low 9 bits of a palette cell as a signed value in
// [-256, 255].
func signExtend9(v int16) int32 {
	return int32((v << 7) >> 7)
}

func clampU8(v int32) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}

	return uint8(v)
}

// DecompressAll decodes every texture in the container. Textures are
// independent, so with opts.Workers above one they are decoded concurrently;
// results keep their original container order. The first failure aborts with
// that texture's error.
func (c *Container) DecompressAll(opts *DecodeOptions) ([][]byte, error) {
	workers := 0
	if opts != nil {
		workers = opts.Workers
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	if workers > len(c.Textures) {
		workers = len(c.Textures)
	}

	results := make([][]byte, len(c.Textures))

	if workers <= 1 {
		for i, texture := range c.Textures {
			buf, err := texture.Decompress()
			if err != nil {
				return nil, fmt.Errorf("texture %d: %w", i, err)
			}
			results[i] = buf
		}

		return results, nil
	}

	jobs := make(chan int)
	errs := make([]error, len(c.Textures))

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				buf, err := c.Textures[i].Decompress()
				if err != nil {
					errs[i] = err
					continue
				}
				results[i] = buf
			}
		}()
	}

	for i := range c.Textures {
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("texture %d: %w", i, err)
		}
	}

	return results, nil
}
