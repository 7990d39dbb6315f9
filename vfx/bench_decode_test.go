package vfx

import "testing"

// benchTexture builds a deterministic 256x256 texture for decode benchmarks.
func benchTexture(format Format) *Texture {
	texture := &Texture{
		Size0:  0,
		Size1:  0,
		Format: format,
	}
	texture.AspectRatio = 3

	for i := range texture.Brightness {
		texture.Brightness[i] = uint8(i * 16) //nolint:gosec // bounded
	}
	for i := range texture.RGB0 {
		texture.RGB0[i] = RGB{R: int16(i*37 - 50), G: int16(i * 11), B: int16(-i * 23)}
		texture.RGB1[i] = RGB{R: int16(i * 13), G: int16(i*29 - 40), B: int16(i * 7)}
	}

	p := texture.Properties()
	texture.Data = make([]byte, p.DataLength())
	for i := range texture.Data {
		// Deterministic pattern with mixed low/high frequencies.
		texture.Data[i] = byte((i*31 + (i>>8)*7) & 0xff)
	}
	texture.DataCount0 = uint32(len(texture.Data)) //nolint:gosec // bounded
	texture.DataCount1 = texture.DataCount0

	return texture
}

func BenchmarkDecompress(b *testing.B) {
	for _, format := range []Format{FormatRGB8A1, FormatR7G6B5A1, FormatARGB4} {
		texture := benchTexture(format)
		b.Run(format.String(), func(b *testing.B) {
			b.SetBytes(int64(len(texture.Data)))
			for i := 0; i < b.N; i++ {
				if _, err := texture.Decompress(); err != nil {
					b.Fatalf("Decompress: %v", err)
				}
			}
		})
	}
}

func BenchmarkDecompressAll(b *testing.B) {
	textures := make([]*Texture, 16)
	for i := range textures {
		textures[i] = benchTexture(FormatRGB8A1)
	}
	container := &Container{Textures: textures}

	benches := []struct {
		name    string
		workers int
	}{
		{name: "serial", workers: 1},
		{name: "workers-4", workers: 4},
	}

	for _, bc := range benches {
		b.Run(bc.name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				if _, err := container.DecompressAll(&DecodeOptions{Workers: bc.workers}); err != nil {
					b.Fatalf("DecompressAll: %v", err)
				}
			}
		})
	}
}
