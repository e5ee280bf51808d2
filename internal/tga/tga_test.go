package tga

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
)

func TestEncode_Header(t *testing.T) {
	width, height := 256, 256
	rgb := make([]byte, width*height*3)

	data, err := Encode(width, height, rgb)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	if len(data) != HeaderSize+width*height*3 {
		t.Errorf("Expected %d bytes, got %d", HeaderSize+width*height*3, len(data))
	}

	// Fixed header fields
	if data[0] != 0 {
		t.Errorf("ID length byte: expected 0, got %d", data[0])
	}
	if data[1] != 0 {
		t.Errorf("Color map type byte: expected 0, got %d", data[1])
	}
	if data[2] != 2 {
		t.Errorf("Image type byte: expected 2 (uncompressed true-color), got %d", data[2])
	}

	// Width and height are little-endian 16-bit
	if got := int(data[12]) | int(data[13])<<8; got != width {
		t.Errorf("Header width: expected %d, got %d", width, got)
	}
	if got := int(data[14]) | int(data[15])<<8; got != height {
		t.Errorf("Header height: expected %d, got %d", height, got)
	}

	if data[16] != 24 {
		t.Errorf("Bits per pixel: expected 24, got %d", data[16])
	}
	if data[17] != 0 {
		t.Errorf("Image descriptor: expected 0, got %d", data[17])
	}
}

func TestEncode_PixelsAreBGR(t *testing.T) {
	// 2x1 image: red pixel then blue pixel
	rgb := []byte{
		255, 0, 0, // red
		0, 0, 255, // blue
	}

	data, err := Encode(2, 1, rgb)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	pixels := data[HeaderSize:]
	wantPixels := []byte{
		0, 0, 255, // red stored as B, G, R
		255, 0, 0, // blue stored as B, G, R
	}
	if !bytes.Equal(pixels, wantPixels) {
		t.Errorf("Pixel data mismatch:\ngot  %v\nwant %v", pixels, wantPixels)
	}
}

func TestEncode_RowOrderPreserved(t *testing.T) {
	// 1x2 image: first generated row white, second black. The file must keep
	// the generation order, first row first.
	rgb := []byte{
		255, 255, 255,
		0, 0, 0,
	}

	data, err := Encode(1, 2, rgb)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	pixels := data[HeaderSize:]
	if pixels[0] != 255 || pixels[1] != 255 || pixels[2] != 255 {
		t.Errorf("First row not written first: got %v", pixels[:3])
	}
	if pixels[3] != 0 || pixels[4] != 0 || pixels[5] != 0 {
		t.Errorf("Second row corrupted: got %v", pixels[3:6])
	}
}

func TestEncode_InvalidInputs(t *testing.T) {
	tests := []struct {
		name   string
		width  int
		height int
		rgb    []byte
	}{
		{"zero width", 0, 10, make([]byte, 0)},
		{"zero height", 10, 0, make([]byte, 0)},
		{"negative width", -1, 10, make([]byte, 30)},
		{"width too large", 65536, 1, make([]byte, 65536*3)},
		{"buffer too short", 4, 4, make([]byte, 4*4*3-1)},
		{"buffer too long", 4, 4, make([]byte, 4*4*3+3)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Encode(tt.width, tt.height, tt.rgb); err == nil {
				t.Errorf("Encode(%d, %d, len %d) expected error, got nil",
					tt.width, tt.height, len(tt.rgb))
			}
		})
	}
}

func TestWriteFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "out.tga")

	width, height := 8, 4
	rgb := make([]byte, width*height*3)
	for i := range rgb {
		rgb[i] = byte(i % 251)
	}

	if err := WriteFile(path, width, height, rgb); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read written file: %v", err)
	}

	want, err := Encode(width, height, rgb)
	if err != nil {
		t.Fatalf("Encode failed: %v", err)
	}
	if !bytes.Equal(data, want) {
		t.Error("File contents differ from Encode output")
	}
}

func TestWriteFile_InvalidPath(t *testing.T) {
	rgb := make([]byte, 3)
	err := WriteFile("/nonexistent/deeply/nested/out.tga", 1, 1, rgb)
	if err == nil {
		t.Error("Expected error when writing to invalid path, got nil")
	}
}
