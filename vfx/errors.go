package vfx

import "errors"

var (
	// ErrReadTextureCount indicates the container texture count read failed.
	ErrReadTextureCount = errors.New("reading texture count failed")
	// ErrReadTextureHeader indicates a texture record header read failed.
	ErrReadTextureHeader = errors.New("reading texture header failed")
	// ErrReadTextureData indicates a texture payload read failed.
	ErrReadTextureData = errors.New("reading texture data failed")
	// ErrSizeFieldMismatch indicates the duplicated size fields disagree.
	ErrSizeFieldMismatch = errors.New("size field mismatch")
	// ErrDataCountMismatch indicates the duplicated data-count fields disagree.
	ErrDataCountMismatch = errors.New("data count mismatch")
	// ErrInvalidFormat indicates an unknown texture format code.
	ErrInvalidFormat = errors.New("invalid format")
	// ErrUnsupportedFormat indicates a format the decompressor cannot handle.
	ErrUnsupportedFormat = errors.New("unsupported format")
	// ErrDataLengthMismatch indicates the payload length disagrees with the
	// derived geometry.
	ErrDataLengthMismatch = errors.New("data length mismatch")
	// ErrOpenFile indicates a VFX file open failed.
	ErrOpenFile = errors.New("open file failed")
	// ErrCreateFile indicates file creation failed.
	ErrCreateFile = errors.New("create file failed")
	// ErrWriteDDSMagic indicates DDS magic write failed.
	ErrWriteDDSMagic = errors.New("writing DDS magic failed")
	// ErrWriteDDSHeader indicates DDS header write failed.
	ErrWriteDDSHeader = errors.New("writing DDS header failed")
	// ErrWritePixels indicates pixel payload write failed.
	ErrWritePixels = errors.New("writing pixel data failed")
)
