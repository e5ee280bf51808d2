package icon

import (
	"image"
	"image/color"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// DrawLabel draws a text label centered on the icon: white glyphs over a
// circular black outline, scaled so the text spans about 30% of the image
// width. Rendering is fully deterministic for a fixed label and size.
func DrawLabel(im *Image, text string) {
	width, height := im.Width, im.Height

	// Render the label at base size with the bitmap font.
	face := basicfont.Face7x13
	baseTextWidth := font.MeasureString(face, text).Ceil()
	baseTextHeight := 13
	if baseTextWidth == 0 {
		return
	}

	textImg := image.NewRGBA(image.Rect(0, 0, baseTextWidth, baseTextHeight))
	drawer := &font.Drawer{
		Dst:  textImg,
		Src:  image.NewUniform(color.RGBA{255, 255, 255, 255}),
		Face: face,
		Dot:  fixed.Point26_6{Y: fixed.I(13)}, // baseline at height
	}
	drawer.DrawString(text)

	// Scale to 30% of image width, with a floor for readability.
	scaleFactor := float64(width) * 0.3 / float64(baseTextWidth)
	if scaleFactor < 2.0 {
		scaleFactor = 2.0
	}
	scaledWidth := int(float64(baseTextWidth) * scaleFactor)
	scaledHeight := int(float64(baseTextHeight) * scaleFactor)

	scaledTextImg := image.NewRGBA(image.Rect(0, 0, scaledWidth, scaledHeight))
	draw.BiLinear.Scale(scaledTextImg, scaledTextImg.Bounds(), textImg, textImg.Bounds(), draw.Over, nil)

	posX := (width - scaledWidth) / 2
	posY := (height - scaledHeight) / 2

	// Thick circular black outline behind the glyphs.
	outline := scaledHeight / 10
	if outline < 3 {
		outline = 3
	}
	for dx := -outline; dx <= outline; dx++ {
		for dy := -outline; dy <= outline; dy++ {
			if dx*dx+dy*dy > outline*outline {
				continue
			}
			for sy := 0; sy < scaledHeight; sy++ {
				for sx := 0; sx < scaledWidth; sx++ {
					_, _, _, a := scaledTextImg.At(sx, sy).RGBA()
					if a == 0 {
						continue
					}
					destX := posX + sx + dx
					destY := posY + sy + dy
					if destX >= 0 && destX < width && destY >= 0 && destY < height {
						im.set(destX, destY, 0, 0, 0)
					}
				}
			}
		}
	}

	// Main text on top.
	for sy := 0; sy < scaledHeight; sy++ {
		for sx := 0; sx < scaledWidth; sx++ {
			r, g, b, a := scaledTextImg.At(sx, sy).RGBA()
			if a == 0 {
				continue
			}
			destX := posX + sx
			destY := posY + sy
			if destX >= 0 && destX < width && destY >= 0 && destY < height {
				brightness := uint8((r + g + b) / 3 / 256)
				im.set(destX, destY, brightness, brightness, brightness)
			}
		}
	}
}
