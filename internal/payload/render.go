package payload

import (
	"encoding/base64"
	"fmt"
	"image/color"
	"strings"

	qrcode "github.com/skip2/go-qrcode"

	"slipverify/internal/common"
)

// Style controls how a payment code is rendered.
type Style struct {
	Dark  string // foreground hex color, e.g. "#000"
	Light string // background hex color, e.g. "#fff"
	Size  int    // output PNG size in pixels
}

// DefaultStyle matches the colors and size the web client expects.
var DefaultStyle = Style{Dark: "#000", Light: "#fff", Size: 256}

// RenderDataURI renders the payload string as a PNG QR code and returns it
// as a base64 data URI.
func RenderDataURI(text string, style Style) (string, error) {
	if style.Size <= 0 {
		style.Size = DefaultStyle.Size
	}

	q, err := qrcode.New(text, qrcode.Medium)
	if err != nil {
		return "", common.NewAppError("RENDER_FAILED", "encode QR code", common.ErrRender)
	}
	if c, err := parseHexColor(style.Dark); err == nil {
		q.ForegroundColor = c
	}
	if c, err := parseHexColor(style.Light); err == nil {
		q.BackgroundColor = c
	}

	png, err := q.PNG(style.Size)
	if err != nil {
		return "", common.NewAppError("RENDER_FAILED", "render QR PNG", common.ErrRender)
	}
	return "data:image/png;base64," + base64.StdEncoding.EncodeToString(png), nil
}

// parseHexColor parses #rgb and #rrggbb colors.
func parseHexColor(s string) (color.Color, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	var r, g, b uint8
	switch len(s) {
	case 3:
		if _, err := fmt.Sscanf(s, "%1x%1x%1x", &r, &g, &b); err != nil {
			return nil, err
		}
		r, g, b = r*17, g*17, b*17
	case 6:
		if _, err := fmt.Sscanf(s, "%02x%02x%02x", &r, &g, &b); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported color %q", s)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
