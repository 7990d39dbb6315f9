package vfx

import (
	"fmt"
	"os"

	"github.com/woozymasta/bcn"
)

// WriteDDS decodes the texture and writes it as an uncompressed RGBA8 DDS
// file with a single mip level.
func WriteDDS(t *Texture, path string) error {
	buf, err := t.Decompress()
	if err != nil {
		return err
	}
	p := t.Properties()

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("%w: %q: %v", ErrCreateFile, path, err)
	}
	defer func() { _ = f.Close() }()

	if err := bcn.WriteDDSMagic(f); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSMagic, err)
	}
	if err := bcn.WriteDDSHeader(f, makeDDSHeader(p.Width, p.Height)); err != nil {
		return fmt.Errorf("%w: %v", ErrWriteDDSHeader, err)
	}
	if _, err := f.Write(buf); err != nil {
		return fmt.Errorf("%w: %v", ErrWritePixels, err)
	}

	return nil
}

// makeDDSHeader builds an uncompressed RGBA8 header for a single mip level.
func makeDDSHeader(width, height uint32) *bcn.DDSHeader {
	hdr := &bcn.DDSHeader{
		Size:              bcn.DDSHeaderSize,
		Flags:             bcn.DDSFlagCaps | bcn.DDSFlagHeight | bcn.DDSFlagWidth | bcn.DDSFlagPixelFormat | bcn.DDSFlagPitch,
		Height:            height,
		Width:             width,
		PitchOrLinearSize: width * 4,
		Depth:             1,
		MipMapCount:       1,
		Caps:              bcn.DDSCapsTexture,
	}
	hdr.PixelFormat.Size = bcn.DDSPixelFormatSize
	hdr.PixelFormat.Flags = bcn.DDSPFRGB | bcn.DDSPFAlphaPixels
	hdr.PixelFormat.RGBBitCount = 32
	hdr.PixelFormat.RBitMask = 0x000000ff
	hdr.PixelFormat.GBitMask = 0x0000ff00
	hdr.PixelFormat.BBitMask = 0x00ff0000
	hdr.PixelFormat.ABitMask = 0xff000000

	return hdr
}
