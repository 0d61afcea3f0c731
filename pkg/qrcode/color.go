package qrcode

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

var (
	DefaultForeground = color.RGBA{0, 0, 0, 0xff}
	DefaultBackground = color.RGBA{0xff, 0xff, 0xff, 0xff}
)

// ParseHexColor parses "rrggbb" or "#rrggbb". Malformed input yields fallback.
func ParseHexColor(s string, fallback color.RGBA) color.RGBA {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(s) != 6 {
		return fallback
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return fallback
	}
	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}
}

// HexColor formats c as "#rrggbb".
func HexColor(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
