package svgdoc

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tsawler/gridmark/model"
)

// ParseViewBox parses an SVG viewBox attribute value: four numbers
// (min-x, min-y, width, height) separated by whitespace and/or commas.
// Extents whose origin is not exactly (0, 0) are an unsupported
// configuration and are rejected rather than approximated.
func ParseViewBox(value string) (model.BBox, error) {
	fields := strings.FieldsFunc(value, func(r rune) bool {
		return r == ' ' || r == '\t' || r == '\n' || r == '\r' || r == ','
	})
	if len(fields) != 4 {
		return model.BBox{}, fmt.Errorf("viewBox %q: want 4 numbers, got %d", value, len(fields))
	}

	nums := make([]float64, 4)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return model.BBox{}, fmt.Errorf("viewBox %q: bad number %q", value, f)
		}
		nums[i] = v
	}

	if nums[0] != 0 || nums[1] != 0 {
		return model.BBox{}, fmt.Errorf("viewBox %q: non-zero origin (%g, %g) is not supported", value, nums[0], nums[1])
	}

	return model.NewBBox(0, 0, nums[2], nums[3]), nil
}
