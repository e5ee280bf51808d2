package icon

import (
	"bytes"
	"testing"
)

func TestDrawLabel_ChangesPixels(t *testing.T) {
	plain, err := Generate(Options{SeedText: "pokemon"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	labeled, err := Generate(Options{SeedText: "pokemon", Label: "GO"})
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if bytes.Equal(plain.Pix, labeled.Pix) {
		t.Error("Label did not change any pixels")
	}
}

func TestDrawLabel_Deterministic(t *testing.T) {
	opts := Options{SeedText: "budget calculator", Label: "FIN"}

	first, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	second, err := Generate(opts)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if !bytes.Equal(first.Pix, second.Pix) {
		t.Error("Same label produced different pixel buffers")
	}
}

func TestDrawLabel_EmptyTextIsNoOp(t *testing.T) {
	im := NewImage(64, 64)
	before := make([]byte, len(im.Pix))
	copy(before, im.Pix)

	DrawLabel(im, "")

	if !bytes.Equal(before, im.Pix) {
		t.Error("Empty label modified the image")
	}
}

func TestDrawLabel_DrawsBlackOutlineAndWhiteCore(t *testing.T) {
	// Fill with a color the overlay never produces, then check both overlay
	// colors appear.
	im := NewImage(256, 256)
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			im.set(x, y, 7, 99, 7)
		}
	}

	DrawLabel(im, "AB")

	var sawBlack, sawWhite bool
	for y := 0; y < im.Height && !(sawBlack && sawWhite); y++ {
		for x := 0; x < im.Width; x++ {
			r, g, b := im.At(x, y)
			if r == 0 && g == 0 && b == 0 {
				sawBlack = true
			}
			if r == 255 && g == 255 && b == 255 {
				sawWhite = true
			}
		}
	}

	if !sawBlack {
		t.Error("Expected black outline pixels")
	}
	if !sawWhite {
		t.Error("Expected white glyph pixels")
	}
}
