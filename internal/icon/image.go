package icon

// Image is an in-memory RGB pixel buffer, 3 bytes per pixel, rows stored in
// generation order (row 0 first).
type Image struct {
	Width  int
	Height int
	Pix    []byte
}

// NewImage allocates a zeroed pixel buffer for the given dimensions.
func NewImage(width, height int) *Image {
	return &Image{
		Width:  width,
		Height: height,
		Pix:    make([]byte, width*height*3),
	}
}

func (im *Image) set(x, y int, r, g, b uint8) {
	i := (y*im.Width + x) * 3
	im.Pix[i] = r
	im.Pix[i+1] = g
	im.Pix[i+2] = b
}

// At returns the RGB channels of the pixel at (x, y).
func (im *Image) At(x, y int) (r, g, b uint8) {
	i := (y*im.Width + x) * 3
	return im.Pix[i], im.Pix[i+1], im.Pix[i+2]
}

// clamp truncates a signed channel value into the 0-255 range.
func clamp(v int) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v)
}
