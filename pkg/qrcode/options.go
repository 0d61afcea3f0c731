package qrcode

import (
	"image/color"
	"strings"

	skipqrcode "github.com/skip2/go-qrcode"
)

const (
	// MaxContentLength is the maximum number of characters accepted for encoding.
	MaxContentLength = 2000

	// defaultSize is the size in pixels used when no size is specified
	defaultSize = 256

	// defaultMargin is the quiet zone width in modules.
	defaultMargin = 2
)

// Format is the output encoding of a generated image.
type Format string

const (
	PNG Format = "png"
	SVG Format = "svg"
)

// ParseFormat returns the format named by s, defaulting to PNG for empty input.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "png":
		return PNG, nil
	case "svg":
		return SVG, nil
	default:
		return "", ErrUnsupportedFormat
	}
}

// UnmarshalText parses a format name. Empty input leaves the zero value,
// which renders as PNG.
func (f *Format) UnmarshalText(text []byte) error {
	if strings.TrimSpace(string(text)) == "" {
		*f = ""
		return nil
	}
	parsed, err := ParseFormat(string(text))
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

// ContentType returns the MIME type of the format.
func (f Format) ContentType() string {
	if f == SVG {
		return "image/svg+xml"
	}
	return "image/png"
}

// Ext returns the file extension without the dot.
func (f Format) Ext() string {
	if f == SVG {
		return "svg"
	}
	return "png"
}

// Level is the error-correction level.
type Level int

const (
	// LevelMedium recovers roughly 15% of damaged modules.
	LevelMedium Level = iota
	// LevelHigh recovers roughly 30% of damaged modules. Use it when a logo covers the code.
	LevelHigh
)

func (l Level) String() string {
	if l == LevelHigh {
		return "high"
	}
	return "medium"
}

func (l Level) recovery() skipqrcode.RecoveryLevel {
	if l == LevelHigh {
		return skipqrcode.Highest
	}
	return skipqrcode.Medium
}

// DotStyle is the shape used for data modules.
type DotStyle string

const (
	DotSquare  DotStyle = "square"
	DotRounded DotStyle = "rounded"
	DotDots    DotStyle = "dots"
)

// ParseDotStyle maps s to a DotStyle, falling back to DotSquare.
func ParseDotStyle(s string) DotStyle {
	switch DotStyle(strings.ToLower(strings.TrimSpace(s))) {
	case DotRounded:
		return DotRounded
	case DotDots:
		return DotDots
	default:
		return DotSquare
	}
}

// UnmarshalText never fails; unknown names become DotSquare.
func (d *DotStyle) UnmarshalText(text []byte) error {
	*d = ParseDotStyle(string(text))
	return nil
}

// CornerStyle is the shape used for the three finder patterns.
type CornerStyle string

const (
	CornerSquare  CornerStyle = "square"
	CornerRounded CornerStyle = "rounded"
	CornerDots    CornerStyle = "dots"
)

// ParseCornerStyle maps s to a CornerStyle, falling back to CornerSquare.
func ParseCornerStyle(s string) CornerStyle {
	switch CornerStyle(strings.ToLower(strings.TrimSpace(s))) {
	case CornerRounded:
		return CornerRounded
	case CornerDots:
		return CornerDots
	default:
		return CornerSquare
	}
}

func (c *CornerStyle) UnmarshalText(text []byte) error {
	*c = ParseCornerStyle(string(text))
	return nil
}

// Options controls how a QR code is rendered.
// The zero value renders a 256px black-on-white PNG at medium correction.
type Options struct {
	Size       int
	Foreground string
	Background string
	Level      Level
	Dots       DotStyle
	Corners    CornerStyle
	// MatchCorners makes finder patterns follow Dots, ignoring Corners.
	MatchCorners bool
	Format       Format
	// Margin is the quiet zone in modules. Zero means the default of 2; negative disables it.
	Margin int
}

// style is Options resolved to concrete values.
type style struct {
	size    int
	fg, bg  color.RGBA
	dots    DotStyle
	corners CornerStyle
	margin  int
}

func (o Options) resolve() style {
	s := style{
		size:    o.Size,
		fg:      ParseHexColor(o.Foreground, DefaultForeground),
		bg:      ParseHexColor(o.Background, DefaultBackground),
		dots:    ParseDotStyle(string(o.Dots)),
		corners: ParseCornerStyle(string(o.Corners)),
		margin:  o.Margin,
	}
	if s.size <= 0 {
		s.size = defaultSize
	}
	switch {
	case s.margin == 0:
		s.margin = defaultMargin
	case s.margin < 0:
		s.margin = 0
	}
	if o.MatchCorners {
		s.corners = CornerStyle(s.dots)
	}
	return s
}
