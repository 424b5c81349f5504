// Package models defines the request and response data structures used
// for communication between the client and the QR generator service.
package models

// Supported output formats for a rendered QR code.
const (
	// FormatSVG returns the raw SVG document.
	FormatSVG = "svg"

	// FormatPNG returns a JSON payload wrapping the SVG as a data URL.
	// Despite the name no raster pixels are produced; the front-end is
	// expected to convert the data URL client-side.
	FormatPNG = "png"
)

// ImageParams holds the validated parameters of a single generation request.
// It is built once at request entry and never mutated afterwards.
type ImageParams struct {
	// Text is the payload to encode, free-form.
	Text string

	// Size is the edge length of the output image in pixels, 100-1000.
	Size int

	// FgColor is the module color as six hex digits without '#'.
	FgColor string

	// BgColor is the background color as six hex digits without '#'.
	BgColor string

	// ECLevel is the error correction level: L, M, Q or H.
	ECLevel string

	// BorderWidth is the quiet zone width in modules, 0-20.
	BorderWidth int

	// Format selects the response shape, FormatSVG or FormatPNG.
	Format string
}

// DataURLResponse is the JSON body returned for FormatPNG requests.
type DataURLResponse struct {
	// DataURL contains the URL-encoded SVG as a data: URL.
	DataURL string `json:"dataUrl"`
}
