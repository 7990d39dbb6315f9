package vfx

// Properties is the geometry derived from a texture record: logical pixel
// dimensions plus the per-pixel byte stride of the compressed payload.
// Properties are never stored in the container; they are recomputed from the
// size code and aspect exponent on demand.
type Properties struct {
	Width  uint32
	Height uint32
	Stride uint32
}

// Properties derives the texture geometry. Size1 encodes a power-of-two base
// dimension (1 << (8 - Size1)) and AspectRatio a signed exponent biased by
// +3: values above 3 halve the width per unit, values below 3 halve the
// height. Oversized shift counts collapse to zero dimensions, which the
// decompress length check rejects.
func (t *Texture) Properties() Properties {
	base := uint32(1) << (8 - t.Size1)

	p := Properties{Stride: t.Format.Stride()}
	if t.AspectRatio > 3 {
		p.Width = base >> (t.AspectRatio - 3)
		p.Height = base
	} else {
		p.Width = base
		p.Height = base >> (3 - t.AspectRatio)
	}

	return p
}

// PixelCount is the number of pixels in the decoded image.
func (p Properties) PixelCount() int {
	return int(p.Width) * int(p.Height)
}

// DataLength is the expected compressed payload size in bytes.
func (p Properties) DataLength() int {
	return p.PixelCount() * int(p.Stride)
}
