package vfx

import (
	"encoding/binary"
	"fmt"
	"io"
)

// RGB is one palette entry. Each channel occupies a 16-bit cell but only the
// low 9 bits are meaningful; they are sign-extended at decode time.
type RGB struct {
	R, G, B int16
}

// Texture is one compressed image record from a VFX container. The size and
// data-count fields are duplicated on the wire and validated equal at parse
// time. Unk0 and Unk1 are preserved but not interpreted.
type Texture struct {
	Size0       uint32
	Size1       uint32
	AspectRatio uint32
	Format      Format
	Unk0        [2]uint16
	Brightness  [16]uint8
	RGB0        [4]RGB
	RGB1        [4]RGB
	Unk1        [24]uint16
	DataCount0  uint32
	DataCount1  uint32
	Data        []byte
}

// Container is a parsed VFX file.
type Container struct {
	Textures []*Texture
}

// textureHeader is the fixed-size part of a texture record, in wire order.
type textureHeader struct {
	Size0       uint32
	Size1       uint32
	AspectRatio uint32
	Format      uint32
	Unk0        [2]uint16
	Brightness  [16]uint8
	RGB0        [4]RGB
	RGB1        [4]RGB
	Unk1        [24]uint16
	DataCount0  uint32
	DataCount1  uint32
}

// Parse reads a VFX container from r. All integers are little-endian. The
// duplicated size and data-count fields must agree and the format code must
// be one of the known values; any violation aborts the parse.
func Parse(r io.Reader) (*Container, error) {
	var count uint32
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrReadTextureCount, err)
	}

	textures := make([]*Texture, 0, count)
	for i := uint32(0); i < count; i++ {
		texture, err := readTexture(r, i)
		if err != nil {
			return nil, err
		}
		textures = append(textures, texture)
	}

	return &Container{Textures: textures}, nil
}

// readTexture reads one texture record: the fixed header, the cross-field
// checks, then exactly DataCount0 payload bytes.
func readTexture(r io.Reader, index uint32) (*Texture, error) {
	var hdr textureHeader
	if err := binary.Read(r, binary.LittleEndian, &hdr); err != nil {
		return nil, fmt.Errorf("%w: texture %d: %v", ErrReadTextureHeader, index, err)
	}

	if hdr.Size0 != hdr.Size1 {
		return nil, fmt.Errorf("%w: texture %d: %d != %d", ErrSizeFieldMismatch, index, hdr.Size0, hdr.Size1)
	}
	if hdr.DataCount0 != hdr.DataCount1 {
		return nil, fmt.Errorf("%w: texture %d: %d != %d", ErrDataCountMismatch, index, hdr.DataCount0, hdr.DataCount1)
	}

	format := Format(hdr.Format)
	if !format.valid() {
		return nil, fmt.Errorf("%w: texture %d: %d", ErrInvalidFormat, index, hdr.Format)
	}

	data := make([]byte, hdr.DataCount0)
	if _, err := io.ReadFull(r, data); err != nil {
		return nil, fmt.Errorf("%w: texture %d: %v", ErrReadTextureData, index, err)
	}

	return &Texture{
		Size0:       hdr.Size0,
		Size1:       hdr.Size1,
		AspectRatio: hdr.AspectRatio,
		Format:      format,
		Unk0:        hdr.Unk0,
		Brightness:  hdr.Brightness,
		RGB0:        hdr.RGB0,
		RGB1:        hdr.RGB1,
		Unk1:        hdr.Unk1,
		DataCount0:  hdr.DataCount0,
		DataCount1:  hdr.DataCount1,
		Data:        data,
	}, nil
}
