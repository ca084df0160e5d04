package qrimage

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/skip2/go-qrcode"
	"golang.org/x/image/colornames"
)

const (
	// PixelsPerModule is the side length of one QR module in the output PNG.
	PixelsPerModule = 10
	// BorderModules is the quiet zone the encoder adds around the symbol.
	BorderModules = 4
)

var ErrInvalidColor = errors.New("invalid color")

// Synthesizer renders level-H QR codes with a fixed module size and border. The
// encoder picks the smallest version that fits the payload.
type Synthesizer struct {
	level qrcode.RecoveryLevel
}

func New() *Synthesizer {
	return &Synthesizer{level: qrcode.Highest}
}

func (s *Synthesizer) Render(text, fillColor, backColor string) ([]byte, error) {
	fill, err := ParseColor(fillColor)
	if err != nil {
		return nil, err
	}
	back, err := ParseColor(backColor)
	if err != nil {
		return nil, err
	}

	code, err := qrcode.New(text, s.level)
	if err != nil {
		return nil, fmt.Errorf("failed to encode qr code: %w", err)
	}
	code.ForegroundColor = fill
	code.BackgroundColor = back

	// A negative size asks the encoder for a fixed number of pixels per module.
	png, err := code.PNG(-PixelsPerModule)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}
	return png, nil
}

// ParseColor accepts CSS color names ("black") and hex triplets ("#1DA1F2" or "#fff").
func ParseColor(s string) (color.Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		if c, ok := colornames.Map[strings.ToLower(s)]; ok {
			return c, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
}
