package util

import "testing"

func TestParseDimensions_ValidInputs(t *testing.T) {
	tests := []struct {
		input      string
		wantWidth  int
		wantHeight int
	}{
		{"256x256", 256, 256},
		{"64x128", 64, 128},
		{"1x1", 1, 1},
		{"1024x768", 1024, 768},
		{"65535x65535", 65535, 65535},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			width, height, err := ParseDimensions(tt.input)
			if err != nil {
				t.Fatalf("ParseDimensions(%q) unexpected error: %v", tt.input, err)
			}
			if width != tt.wantWidth || height != tt.wantHeight {
				t.Errorf("ParseDimensions(%q) = %dx%d, want %dx%d",
					tt.input, width, height, tt.wantWidth, tt.wantHeight)
			}
		})
	}
}

func TestParseDimensions_InvalidInputs(t *testing.T) {
	tests := []string{
		"",
		"256",
		"256x",
		"x256",
		"256x256x256",
		"256 x 256",
		"-64x64",
		"0x256",
		"256x0",
		"65536x256",
		"abcxdef",
	}

	for _, input := range tests {
		t.Run(input, func(t *testing.T) {
			_, _, err := ParseDimensions(input)
			if err == nil {
				t.Errorf("ParseDimensions(%q) expected error, got nil", input)
			}
		})
	}
}
