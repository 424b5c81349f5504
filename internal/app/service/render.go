package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/atinyakov/go-qr-generator/internal/models"
	"github.com/atinyakov/go-qr-generator/internal/qr"
)

// RenderSVG renders a module matrix into an SVG document. The output is a
// pure function of its inputs.
//
// The module size is kept fractional on purpose: rounding it would make the
// drawing drift away from the requested canvas, while fractional pixel
// boundaries guarantee the image is exactly Size x Size. The quiet zone is
// realized by offsetting every module by BorderWidth; light cells emit
// nothing, so output size grows with the dark cell count only.
func RenderSVG(matrix qr.Matrix, params models.ImageParams) string {
	moduleCount := matrix.SideLength()
	moduleSize := float64(params.Size) / float64(moduleCount+2*params.BorderWidth)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf(
		`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %d %d" width="%d" height="%d">`,
		params.Size, params.Size, params.Size, params.Size,
	))
	sb.WriteString(fmt.Sprintf(
		`<rect width="%d" height="%d" fill="#%s"/>`,
		params.Size, params.Size, params.BgColor,
	))

	for row := 0; row < moduleCount; row++ {
		for col := 0; col < moduleCount; col++ {
			if !matrix.IsDark(row, col) {
				continue
			}
			x := (float64(col) + float64(params.BorderWidth)) * moduleSize
			y := (float64(row) + float64(params.BorderWidth)) * moduleSize
			sb.WriteString(fmt.Sprintf(
				`<rect x="%s" y="%s" width="%s" height="%s" fill="#%s"/>`,
				coord(x), coord(y), coord(moduleSize), coord(moduleSize), params.FgColor,
			))
		}
	}

	sb.WriteString(`</svg>`)
	return sb.String()
}

// coord formats a coordinate in its shortest exact decimal form.
func coord(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
