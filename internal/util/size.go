package util

import (
	"fmt"
	"regexp"
	"strconv"
)

var dimensionsPattern = regexp.MustCompile(`^(\d+)x(\d+)$`)

// maxDimension matches the largest value the TGA header's 16-bit dimension
// fields can hold.
const maxDimension = 65535

// ParseDimensions parses a dimensions string (e.g., "256x256", "64x128")
// into a width and height.
//
// Returns the dimensions in pixels or an error if the format is invalid or
// a dimension is out of range.
func ParseDimensions(dimStr string) (width, height int, err error) {
	matches := dimensionsPattern.FindStringSubmatch(dimStr)

	if matches == nil {
		return 0, 0, fmt.Errorf("invalid format: '%s'. Use format like '256x256', '64x128'", dimStr)
	}

	width, err = strconv.Atoi(matches[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width: %v", err)
	}
	height, err = strconv.Atoi(matches[2])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height: %v", err)
	}

	if width == 0 || height == 0 {
		return 0, 0, fmt.Errorf("dimensions must be > 0, got %dx%d", width, height)
	}
	if width > maxDimension || height > maxDimension {
		return 0, 0, fmt.Errorf("dimensions must be <= %d, got %dx%d", maxDimension, width, height)
	}

	return width, height, nil
}
