// Package tga writes uncompressed 24-bit true-color TGA files.
package tga

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// HeaderSize is the fixed TGA header length in bytes.
const HeaderSize = 18

// MaxDimension is the largest width or height the 16-bit header fields can hold.
const MaxDimension = 65535

const imageTypeTrueColor = 2

// Encode serializes an RGB pixel buffer as an uncompressed true-color TGA
// image. The buffer is 3 bytes per pixel in row-major order and is written
// verbatim in that row order, with each pixel converted to the BGR channel
// order the format requires. The result is always 18 + width*height*3 bytes.
func Encode(width, height int, rgb []byte) ([]byte, error) {
	if err := validate(width, height, rgb); err != nil {
		return nil, err
	}

	out := make([]byte, HeaderSize+width*height*3)
	out[2] = imageTypeTrueColor
	binary.LittleEndian.PutUint16(out[12:14], uint16(width))
	binary.LittleEndian.PutUint16(out[14:16], uint16(height))
	out[16] = 24 // bits per pixel
	// out[17] stays 0: bottom-left origin, no alpha bits

	dst := out[HeaderSize:]
	for i := 0; i < width*height; i++ {
		dst[i*3] = rgb[i*3+2]
		dst[i*3+1] = rgb[i*3+1]
		dst[i*3+2] = rgb[i*3]
	}

	return out, nil
}

// Write encodes the pixel buffer and writes it to w.
func Write(w io.Writer, width, height int, rgb []byte) error {
	data, err := Encode(width, height, rgb)
	if err != nil {
		return err
	}
	if _, err := w.Write(data); err != nil {
		return fmt.Errorf("write TGA data: %w", err)
	}
	return nil
}

// WriteFile encodes the pixel buffer and writes it to the given path.
func WriteFile(path string, width, height int, rgb []byte) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	if err := Write(f, width, height, rgb); err != nil {
		return err
	}
	return f.Close()
}

func validate(width, height int, rgb []byte) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("dimensions must be > 0, got %dx%d", width, height)
	}
	if width > MaxDimension || height > MaxDimension {
		return fmt.Errorf("dimensions exceed TGA maximum %d, got %dx%d", MaxDimension, width, height)
	}
	if len(rgb) != width*height*3 {
		return fmt.Errorf("pixel buffer has %d bytes, want %d for %dx%d", len(rgb), width*height*3, width, height)
	}
	return nil
}
