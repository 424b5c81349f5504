package handler

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/atinyakov/go-qr-generator/internal/models"
)

func TestParseImageParamsDefaults(t *testing.T) {
	params, err := parseImageParams(url.Values{})

	require.NoError(t, err)
	assert.Equal(t, &models.ImageParams{
		Text:        "https://example.com",
		Size:        300,
		FgColor:     "000000",
		BgColor:     "FFFFFF",
		ECLevel:     "M",
		BorderWidth: 4,
		Format:      "svg",
	}, params)
}

func TestParseImageParamsValid(t *testing.T) {
	query := url.Values{
		"url":         {"https://pkg.go.dev"},
		"size":        {"1000"},
		"fgColor":     {"ff00ff"},
		"bgColor":     {"00AA00"},
		"ecLevel":     {"H"},
		"borderWidth": {"0"},
		"format":      {"PNG"},
	}

	params, err := parseImageParams(query)

	require.NoError(t, err)
	assert.Equal(t, &models.ImageParams{
		Text:        "https://pkg.go.dev",
		Size:        1000,
		FgColor:     "ff00ff",
		BgColor:     "00AA00",
		ECLevel:     "H",
		BorderWidth: 0,
		Format:      "png",
	}, params)
}

func TestParseImageParamsValidation(t *testing.T) {
	tests := []struct {
		name        string
		query       url.Values
		expectedMsg string
	}{
		{"size too small", url.Values{"size": {"50"}}, "Size must be between 100 and 1000"},
		{"size too large", url.Values{"size": {"1001"}}, "Size must be between 100 and 1000"},
		{"size not a number", url.Values{"size": {"abc"}}, "Size must be between 100 and 1000"},
		{"size empty", url.Values{"size": {""}}, "Size must be between 100 and 1000"},
		{"fg color bad digits", url.Values{"fgColor": {"ZZZZZZ"}}, "Invalid color format. Use hex format without #"},
		{"fg color with hash", url.Values{"fgColor": {"#00000"}}, "Invalid color format. Use hex format without #"},
		{"fg color too short", url.Values{"fgColor": {"fff"}}, "Invalid color format. Use hex format without #"},
		{"bg color bad digits", url.Values{"bgColor": {"GGGGGG"}}, "Invalid color format. Use hex format without #"},
		{"ec level unknown", url.Values{"ecLevel": {"X"}}, "Error correction level must be L, M, Q, or H"},
		{"ec level lowercase", url.Values{"ecLevel": {"m"}}, "Error correction level must be L, M, Q, or H"},
		{"border negative", url.Values{"borderWidth": {"-1"}}, "Border width must be between 0 and 20"},
		{"border too wide", url.Values{"borderWidth": {"21"}}, "Border width must be between 0 and 20"},
		{"border not a number", url.Values{"borderWidth": {"wide"}}, "Border width must be between 0 and 20"},
		{"format unknown", url.Values{"format": {"gif"}}, "Format must be svg or png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			params, err := parseImageParams(tt.query)

			assert.Nil(t, params)
			require.Error(t, err)
			assert.Equal(t, tt.expectedMsg, err.Error())
		})
	}
}

func TestParseImageParamsFirstFailureWins(t *testing.T) {
	// size is checked before format
	query := url.Values{
		"size":   {"50"},
		"format": {"gif"},
	}

	_, err := parseImageParams(query)

	require.Error(t, err)
	assert.Equal(t, "Size must be between 100 and 1000", err.Error())
}

func TestParseImageParamsBoundaries(t *testing.T) {
	for _, query := range []url.Values{
		{"size": {"100"}},
		{"size": {"1000"}},
		{"borderWidth": {"0"}},
		{"borderWidth": {"20"}},
	} {
		_, err := parseImageParams(query)
		assert.NoError(t, err, "query %v", query)
	}
}
