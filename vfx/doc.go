/*
Package vfx decodes Gex 2 VFX texture containers into RGBA8 pixel buffers.

A VFX file is a count-prefixed sequence of texture records, little-endian
throughout. Each record carries its dimensions as a power-of-two size code
plus a biased aspect exponent, a format code, brightness and palette tables,
and a raw bit-packed pixel payload in one of three formats: RGB8A1 (palette
corrected luminance, 1 byte per pixel), R7G6B5A1 and ARGB4 (packed 16-bit
words). Pixels are stored column-major.

The package focuses on extraction workflows: parse a container, derive each
texture's geometry, decompress to RGBA8, and hand the result to an image
writer as an NRGBA image or an uncompressed DDS file.
*/
package vfx
