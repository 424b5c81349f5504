// Package handler contains the HTTP handlers of the QR generator service.
// It parses and validates query parameters, invokes the generation service
// and shapes the response as either a raw SVG document or a JSON payload
// wrapping an SVG data URL.
package handler

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"

	"github.com/atinyakov/go-qr-generator/internal/models"
)

// Defaults applied when a query parameter is absent. A parameter that is
// present but invalid never falls back to its default.
const (
	defaultText        = "https://example.com"
	defaultSize        = 300
	defaultFgColor     = "000000"
	defaultBgColor     = "FFFFFF"
	defaultECLevel     = "M"
	defaultBorderWidth = 4
	defaultFormat      = models.FormatSVG
)

var hexColorRe = regexp.MustCompile(`^[0-9A-Fa-f]{6}$`)

// malformedParam reports a query parameter that failed validation. The
// message is shown to the client verbatim.
type malformedParam struct {
	msg string
}

// Error returns the user-facing validation message.
func (e *malformedParam) Error() string {
	return e.msg
}

// parseImageParams validates the raw query values and builds the request
// parameters. Parameters are checked in a fixed order and the first failure
// wins; nothing is encoded or rendered before the whole set is valid.
func parseImageParams(query url.Values) (*models.ImageParams, error) {
	params := &models.ImageParams{
		Text:        defaultText,
		Size:        defaultSize,
		FgColor:     defaultFgColor,
		BgColor:     defaultBgColor,
		ECLevel:     defaultECLevel,
		BorderWidth: defaultBorderWidth,
		Format:      defaultFormat,
	}

	if text := query.Get("url"); text != "" {
		params.Text = text
	}

	if query.Has("size") {
		size, err := strconv.Atoi(query.Get("size"))
		if err != nil || size < 100 || size > 1000 {
			return nil, &malformedParam{msg: "Size must be between 100 and 1000"}
		}
		params.Size = size
	}

	if query.Has("fgColor") {
		fg := query.Get("fgColor")
		if !hexColorRe.MatchString(fg) {
			return nil, &malformedParam{msg: "Invalid color format. Use hex format without #"}
		}
		params.FgColor = fg
	}

	if query.Has("bgColor") {
		bg := query.Get("bgColor")
		if !hexColorRe.MatchString(bg) {
			return nil, &malformedParam{msg: "Invalid color format. Use hex format without #"}
		}
		params.BgColor = bg
	}

	if query.Has("ecLevel") {
		switch level := query.Get("ecLevel"); level {
		case "L", "M", "Q", "H":
			params.ECLevel = level
		default:
			return nil, &malformedParam{msg: "Error correction level must be L, M, Q, or H"}
		}
	}

	if query.Has("borderWidth") {
		border, err := strconv.Atoi(query.Get("borderWidth"))
		if err != nil || border < 0 || border > 20 {
			return nil, &malformedParam{msg: "Border width must be between 0 and 20"}
		}
		params.BorderWidth = border
	}

	if query.Has("format") {
		switch format := strings.ToLower(query.Get("format")); format {
		case models.FormatSVG, models.FormatPNG:
			params.Format = format
		default:
			return nil, &malformedParam{msg: "Format must be svg or png"}
		}
	}

	return params, nil
}
