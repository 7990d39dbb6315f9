package vfx

import "fmt"

// Format identifies the pixel compression of a texture payload.
type Format uint32

// Texture formats used by VFX containers. The numeric codes are part of the
// wire format; no other values are legal.
const (
	FormatRGB8A1   Format = 1
	FormatR7G6B5A1 Format = 11
	FormatARGB4    Format = 12
)

func (f Format) valid() bool {
	switch f {
	case FormatRGB8A1, FormatR7G6B5A1, FormatARGB4:
		return true
	}

	return false
}

// Stride is the number of bytes one pixel occupies in the compressed payload.
func (f Format) Stride() uint32 {
	switch f {
	case FormatR7G6B5A1, FormatARGB4:
		return 2
	default:
		return 1
	}
}

// String returns the lower-case format name used in extractor file names.
func (f Format) String() string {
	switch f {
	case FormatRGB8A1:
		return "rgb8a1"
	case FormatR7G6B5A1:
		return "r7g6b5a1"
	case FormatARGB4:
		return "argb4"
	default:
		return fmt.Sprintf("unknown(%d)", uint32(f))
	}
}
