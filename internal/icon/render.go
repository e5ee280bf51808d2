package icon

import (
	"math"
	randv2 "math/rand/v2"
)

// render fills the pixel buffer with the theme's pattern. The scan is always
// row-major (y outer, x inner) so themes that draw from the PRNG consume the
// stream in a fixed order.
func render(im *Image, theme Theme, rng *randv2.Rand) {
	switch theme {
	case ThemeTikTok:
		renderTikTok(im)
	case ThemeFileCity:
		renderFileCity(im)
	case ThemePokemon:
		renderPokemon(im)
	case ThemeIMessage:
		renderIMessage(im)
	case ThemeRust:
		renderRust(im, rng)
	case ThemePython:
		renderPython(im)
	case ThemeIOS:
		renderIOS(im)
	case ThemeAI:
		renderAI(im)
	case ThemeFinance:
		renderFinance(im)
	case ThemeRealEstate:
		renderRealEstate(im)
	case ThemeAudio:
		renderAudio(im)
	case ThemeCamera:
		renderCamera(im)
	case ThemeWeb:
		renderWeb(im)
	default:
		renderDefault(im, rng)
	}
}

// renderDefault draws a checkerboard of 32px cells over a random base color
// with per-pixel noise, plus a fixed "lit window" color inside each cell.
// Draw order is part of the output contract: one base triple before the
// loop, then exactly one noise draw per pixel.
func renderDefault(im *Image, rng *randv2.Rand) {
	baseR := 50 + rng.IntN(151)
	baseG := 50 + rng.IntN(151)
	baseB := 50 + rng.IntN(151)

	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			check := 0
			if ((x/32)+(y/32))%2 == 1 {
				check = 40
			}
			noise := rng.IntN(41) - 20

			r := clamp(baseR + check + noise)
			g := clamp(baseG + check + noise)
			b := clamp(baseB + check + noise)

			wx, wy := x%32, y%32
			if wx > 10 && wx < 22 && wy > 10 && wy < 22 {
				r, g, b = 255, 255, 200
			}
			im.set(x, y, r, g, b)
		}
	}
}

// tiktokNote is the musical-note silhouette: a circle of radius 30 below a
// vertical bar to its right.
func tiktokNote(x, y, cx, cy int) bool {
	if x >= cx+10 && x <= cx+26 && y >= cy-60 && y <= cy+20 {
		return true
	}
	dx := x - cx
	dy := y - (cy + 20)
	return dx*dx+dy*dy <= 30*30
}

// renderTikTok draws the note silhouette twice, shifted 5px left and right,
// cyan on one side, red on the other, white where both overlap.
func renderTikTok(im *Image) {
	cx, cy := im.Width/2, im.Height/2
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			cyan := tiktokNote(x+5, y, cx, cy)
			red := tiktokNote(x-5, y, cx, cy)
			switch {
			case cyan && red:
				im.set(x, y, 255, 255, 255)
			case cyan:
				im.set(x, y, 37, 244, 238)
			case red:
				im.set(x, y, 254, 44, 85)
			default:
				im.set(x, y, 20, 20, 20)
			}
		}
	}
}

// renderFileCity draws a building silhouette with window bands and a door
// using thresholds on coordinates normalized to [0,1].
func renderFileCity(im *Image) {
	for y := 0; y < im.Height; y++ {
		v := float64(y) / float64(im.Height)
		for x := 0; x < im.Width; x++ {
			u := float64(x) / float64(im.Width)

			switch {
			case u >= 0.2 && u < 0.8 && v >= 0.25 && v < 0.85:
				// Building silhouette, with door and lit window bands inside.
				switch {
				case u >= 0.45 && u < 0.55 && v >= 0.7:
					im.set(x, y, 40, 35, 30)
				case fileCityWindowU(u) && fileCityWindowV(v):
					im.set(x, y, 255, 235, 160)
				default:
					im.set(x, y, 70, 80, 95)
				}
			case v >= 0.85:
				im.set(x, y, 50, 60, 70)
			default:
				im.set(x, y, 110, 160, 210)
			}
		}
	}
}

func fileCityWindowU(u float64) bool {
	return (u >= 0.3 && u < 0.4) || (u >= 0.5 && u < 0.6) || (u >= 0.65 && u < 0.75)
}

func fileCityWindowV(v float64) bool {
	return (v >= 0.35 && v < 0.45) || (v >= 0.55 && v < 0.65)
}

// renderPokemon draws a ball: red top half, light bottom half, a black
// horizontal band through the middle with a white center button, and a black
// outline ring. The band and button checks run before the ring so the
// center stays black and the button stays white.
func renderPokemon(im *Image) {
	cx, cy := im.Width/2, im.Height/2
	for y := 0; y < im.Height; y++ {
		dy := y - cy
		for x := 0; x < im.Width; x++ {
			dx := x - cx
			dist := math.Sqrt(float64(dx*dx + dy*dy))

			if dist >= 110 {
				im.set(x, y, 160, 160, 170)
				continue
			}
			switch {
			case dy >= -10 && dy <= 10:
				im.set(x, y, 20, 20, 20)
			case dist < 20:
				im.set(x, y, 255, 255, 255)
			case dist >= 100:
				im.set(x, y, 20, 20, 20)
			case dy < 0:
				im.set(x, y, 230, 30, 40)
			default:
				im.set(x, y, 245, 245, 245)
			}
		}
	}
}

// renderIMessage tiles alternating blue and green chat bubbles on a 64px grid.
func renderIMessage(im *Image) {
	for y := 0; y < im.Height; y++ {
		ly := y % 64
		for x := 0; x < im.Width; x++ {
			lx := x % 64
			if lx >= 6 && lx < 58 && ly >= 12 && ly < 52 {
				if ((x/64)+(y/64))%2 == 0 {
					im.set(x, y, 10, 132, 255)
				} else {
					im.set(x, y, 52, 199, 89)
				}
			} else {
				im.set(x, y, 245, 245, 247)
			}
		}
	}
}

// renderRust fills a circle of radius 80 with jittered rust orange, darkened
// on alternating 40px vertical stripes. Two PRNG draws per pixel inside the
// circle, in r-then-g order.
func renderRust(im *Image, rng *randv2.Rand) {
	cx, cy := im.Width/2, im.Height/2
	for y := 0; y < im.Height; y++ {
		dy := y - cy
		for x := 0; x < im.Width; x++ {
			dx := x - cx
			if dx*dx+dy*dy > 80*80 {
				im.set(x, y, 15, 15, 18)
				continue
			}
			r := 180 + rng.IntN(51)
			g := 90 + rng.IntN(51)
			b := 40
			if (x/40)%2 == 1 {
				r -= 30
				g -= 30
				b -= 30
			}
			im.set(x, y, clamp(r), clamp(g), clamp(b))
		}
	}
}

// renderPython draws two intertwined sine bands, one blue and one gold.
func renderPython(im *Image) {
	cy := float64(im.Height / 2)
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			wave := cy + 40*math.Sin(2*math.Pi*float64(x)/128)
			d := float64(y) - wave
			switch {
			case math.Abs(d) < 22:
				im.set(x, y, 48, 105, 152)
			case math.Abs(d-56) < 22:
				im.set(x, y, 255, 212, 59)
			default:
				im.set(x, y, 40, 44, 52)
			}
		}
	}
}

// renderIOS fills a superellipse ("squircle") with a vertical purple-to-blue
// gradient on a light background.
func renderIOS(im *Image) {
	cx, cy := im.Width/2, im.Height/2
	for y := 0; y < im.Height; y++ {
		dy := math.Abs(float64(y-cy)) / 90
		t := float64(y) / float64(im.Height)
		for x := 0; x < im.Width; x++ {
			dx := math.Abs(float64(x-cx)) / 90
			if math.Pow(dx, 4)+math.Pow(dy, 4) <= 1 {
				r := lerp(88, 0, t)
				g := lerp(86, 122, t)
				b := lerp(214, 255, t)
				im.set(x, y, r, g, b)
			} else {
				im.set(x, y, 245, 245, 247)
			}
		}
	}
}

func lerp(a, b uint8, t float64) uint8 {
	return uint8(float64(a) + (float64(b)-float64(a))*t)
}

// renderAI draws glowing nodes on a 32px lattice connected by diagonal lines
// over a dark blue background.
func renderAI(im *Image) {
	for y := 0; y < im.Height; y++ {
		ly := y % 32
		for x := 0; x < im.Width; x++ {
			lx := x % 32
			ndx, ndy := lx-16, ly-16
			switch {
			case ndx*ndx+ndy*ndy <= 36:
				im.set(x, y, 0, 229, 255)
			case (x+y)%32 < 2 || abs(x-y)%32 < 2:
				im.set(x, y, 40, 70, 120)
			default:
				im.set(x, y, 15, 20, 40)
			}
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// renderFinance draws a bar chart of gold columns of varying height over a
// dark green background with a light baseline axis.
func renderFinance(im *Image) {
	for y := 0; y < im.Height; y++ {
		for x := 0; x < im.Width; x++ {
			col := x / 32
			barTop := im.Height - (col%8+1)*im.Height/12
			bx := x % 32
			switch {
			case y >= im.Height-6:
				im.set(x, y, 220, 220, 220)
			case y >= barTop && bx >= 4 && bx < 28:
				im.set(x, y, 212, 175, 55)
			default:
				im.set(x, y, 10, 60, 35)
			}
		}
	}
}

// renderRealEstate draws a house: triangular roof, beige body with a door
// and a window, grass below, sky above.
func renderRealEstate(im *Image) {
	cx, cy := im.Width/2, im.Height/2
	for y := 0; y < im.Height; y++ {
		dy := y - cy
		for x := 0; x < im.Width; x++ {
			dx := x - cx
			adx := abs(dx)
			switch {
			case dy >= -60 && dy < -10 && adx <= (dy+60)*3/2+8:
				im.set(x, y, 120, 50, 35)
			case dy >= -10 && dy < 70 && adx <= 60:
				switch {
				case abs(dx-30) <= 12 && dy >= 15:
					im.set(x, y, 90, 60, 40)
				case abs(dx+30) <= 12 && dy >= 5 && dy < 30:
					im.set(x, y, 180, 220, 240)
				default:
					im.set(x, y, 230, 220, 200)
				}
			case dy >= 70:
				im.set(x, y, 70, 150, 70)
			default:
				im.set(x, y, 135, 190, 235)
			}
		}
	}
}

// renderAudio draws a teal waveform envelope around a light center line.
func renderAudio(im *Image) {
	cy := im.Height / 2
	for y := 0; y < im.Height; y++ {
		dy := abs(y - cy)
		for x := 0; x < im.Width; x++ {
			amp := float64(im.Height) / 3 * (0.25 + 0.75*math.Abs(math.Sin(2*math.Pi*float64(x)/96)))
			switch {
			case dy <= 2:
				im.set(x, y, 240, 240, 240)
			case float64(dy) <= amp:
				im.set(x, y, 0, 200, 180)
			default:
				im.set(x, y, 22, 22, 33)
			}
		}
	}
}

// renderCamera draws a lens as concentric rings on a camera body with a
// darker top bar.
func renderCamera(im *Image) {
	cx, cy := im.Width/2, im.Height/2
	for y := 0; y < im.Height; y++ {
		dy := y - cy
		for x := 0; x < im.Width; x++ {
			dx := x - cx
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			switch {
			case dist < 24:
				im.set(x, y, 12, 12, 14)
			case dist < 40:
				im.set(x, y, 70, 130, 180)
			case dist < 56:
				im.set(x, y, 28, 28, 32)
			case dist < 70:
				im.set(x, y, 190, 190, 196)
			case y < im.Height/6:
				im.set(x, y, 30, 30, 34)
			default:
				im.set(x, y, 45, 45, 50)
			}
		}
	}
}

// renderWeb draws a globe: a blue ring with a meridian grid over a pale fill.
func renderWeb(im *Image) {
	cx, cy := im.Width/2, im.Height/2
	for y := 0; y < im.Height; y++ {
		dy := y - cy
		for x := 0; x < im.Width; x++ {
			dx := x - cx
			dist := math.Sqrt(float64(dx*dx + dy*dy))
			if dist > 90 {
				im.set(x, y, 250, 250, 252)
				continue
			}
			switch {
			case dist >= 86:
				im.set(x, y, 30, 100, 200)
			case abs(dx)%30 < 2 || abs(dy)%30 < 2:
				im.set(x, y, 30, 100, 200)
			default:
				im.set(x, y, 225, 240, 255)
			}
		}
	}
}
