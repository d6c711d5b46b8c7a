// Package imageio saves and loads the images produced by the shapes demo.
package imageio

import (
	"path/filepath"
	"strings"
)

// Format identifies an output encoding.
type Format int

const (
	// FormatUnknown is returned for unrecognized extensions.
	FormatUnknown Format = iota
	// FormatPNG is lossless PNG.
	FormatPNG
	// FormatJPEG is baseline JPEG.
	FormatJPEG
	// FormatBMP is uncompressed Windows bitmap.
	FormatBMP
	// FormatTIFF is TIFF with deflate compression.
	FormatTIFF
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpeg"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return "unknown"
	}
}

// FormatFromPath picks a format from the file extension of path.
func FormatFromPath(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG
	case ".jpg", ".jpeg":
		return FormatJPEG
	case ".bmp":
		return FormatBMP
	case ".tif", ".tiff":
		return FormatTIFF
	default:
		return FormatUnknown
	}
}
