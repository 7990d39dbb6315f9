package vfx

import "image"

// Image wraps a decoded RGBA8 buffer as an NRGBA image, treating the buffer
// as width x height raster rows.
func Image(buf []byte, p Properties) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, int(p.Width), int(p.Height)))
	copy(img.Pix, buf)

	return img
}

// Image decodes the texture and returns it as an NRGBA image.
func (t *Texture) Image() (*image.NRGBA, error) {
	buf, err := t.Decompress()
	if err != nil {
		return nil, err
	}

	return Image(buf, t.Properties()), nil
}
