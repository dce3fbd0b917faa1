// Copyright 2012 - 2018 The ASCIIToSVG Contributors
// All rights reserved.

package monartist

import (
	"fmt"
	"strconv"
	"strings"
)

// namedColors covers the color keywords rule authors reach for most.
var namedColors = map[string][3]int{
	"black": {0, 0, 0},
	"white": {255, 255, 255},
	"red":   {255, 0, 0},
	"green": {0, 128, 0},
	"blue":  {0, 0, 255},
	"gray":  {128, 128, 128},
	"grey":  {128, 128, 128},
}

// parseHexColor parses #rgb and #rrggbb.
func parseHexColor(c string) (r, g, b int, err error) {
	var width int
	switch len(c) {
	case 4:
		width = 1
	case 7:
		width = 2
	default:
		return 0, 0, 0, fmt.Errorf("color '%s' not of valid length", c)
	}

	var rgb [3]int
	for i := range rgb {
		part := c[1+i*width : 1+(i+1)*width]
		v, err := strconv.ParseInt(part, 16, 0)
		if err != nil {
			return 0, 0, 0, err
		}
		if width == 1 {
			v *= 17
		}
		rgb[i] = int(v)
	}
	return rgb[0], rgb[1], rgb[2], nil
}

// colorToRGB matches a color string and returns its RGB components.
func colorToRGB(c string) (r, g, b int, err error) {
	if len(c) == 0 {
		return 0, 0, 0, fmt.Errorf("empty color")
	}
	if c[0] == '#' {
		return parseHexColor(c)
	}
	if rgb, ok := namedColors[strings.ToLower(c)]; ok {
		return rgb[0], rgb[1], rgb[2], nil
	}

	return 0, 0, 0, fmt.Errorf("color '%s' can't be parsed", c)
}

// textColor returns an accessible text color to use on top of a supplied background color. The
// formula used for calculating whether the contrast is accessible comes from a W3 working group
// paper on accessibility at http://www.w3.org/TR/AERT. The recommended contrast is a brightness
// difference of at least 125 and a color difference of at least 500. Our default text color is
// black, so the color difference for text is just the sum of the components.
func textColor(c string) (string, error) {
	r, g, b, err := colorToRGB(c)
	if err != nil {
		return "#000", err
	}

	brightness := (r*299 + g*587 + b*114) / 1000
	difference := r + g + b
	if brightness < 125 && difference < 500 {
		return "#fff", nil
	}

	return "#000", nil
}
