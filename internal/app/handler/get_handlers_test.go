package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"

	"github.com/atinyakov/go-qr-generator/internal/mocks"
	"github.com/atinyakov/go-qr-generator/internal/models"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 300 300" width="300" height="300"><rect width="300" height="300" fill="#FFFFFF"/></svg>`

func createTestHandler(mockService *mocks.MockQRServiceIface) *GetHandler {
	logger, _ := zap.NewDevelopment()
	return NewGet(mockService, logger)
}

func TestGenerateImageDefaults(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockQRServiceIface(ctrl)
	handler := createTestHandler(mockService)

	expectedParams := models.ImageParams{
		Text:        "https://example.com",
		Size:        300,
		FgColor:     "000000",
		BgColor:     "FFFFFF",
		ECLevel:     "M",
		BorderWidth: 4,
		Format:      "svg",
	}
	mockService.EXPECT().Generate(gomock.Any(), expectedParams).Return(testSVG, nil)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()

	handler.GenerateImage(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "image/svg+xml", resp.Header.Get("Content-Type"))
	assert.Equal(t, "public, max-age=86400", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "GET", resp.Header.Get("Access-Control-Allow-Methods"))
	assert.Equal(t, `attachment; filename="qrcode.svg"`, resp.Header.Get("Content-Disposition"))
	assert.Equal(t, testSVG, w.Body.String())
}

func TestGenerateImageValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// the service must never be invoked for invalid parameters
	mockService := mocks.NewMockQRServiceIface(ctrl)
	handler := createTestHandler(mockService)

	tests := []struct {
		name         string
		target       string
		expectedBody string
	}{
		{"size below range", "/?size=50", "Size must be between 100 and 1000"},
		{"size above range", "/?size=1001", "Size must be between 100 and 1000"},
		{"bad fg color", "/?fgColor=ZZZZZZ", "Invalid color format. Use hex format without #"},
		{"bad ec level", "/?ecLevel=X", "Error correction level must be L, M, Q, or H"},
		{"bad border", "/?borderWidth=99", "Border width must be between 0 and 20"},
		{"bad format", "/?format=gif", "Format must be svg or png"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.target, nil)
			w := httptest.NewRecorder()

			handler.GenerateImage(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
			assert.Equal(t, tt.expectedBody, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestGenerateImageAcceptsBoundaryValues(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockQRServiceIface(ctrl)
	handler := createTestHandler(mockService)

	for _, target := range []string{"/?size=1000", "/?fgColor=ff00ff", "/?ecLevel=H"} {
		t.Run(target, func(t *testing.T) {
			mockService.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(testSVG, nil)

			req := httptest.NewRequest(http.MethodGet, target, nil)
			w := httptest.NewRecorder()

			handler.GenerateImage(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, http.StatusOK, resp.StatusCode)
		})
	}
}

func TestGenerateImagePNGFormat(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockQRServiceIface(ctrl)
	handler := createTestHandler(mockService)

	mockService.EXPECT().Generate(gomock.Any(), gomock.Any()).Return(testSVG, nil)

	req := httptest.NewRequest(http.MethodGet, "/?format=png", nil)
	w := httptest.NewRecorder()

	handler.GenerateImage(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))
	assert.Equal(t, "public, max-age=86400", resp.Header.Get("Cache-Control"))
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Empty(t, resp.Header.Get("Content-Disposition"))

	var body models.DataURLResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&body))

	require.True(t, strings.HasPrefix(body.DataURL, "data:image/svg+xml;charset=UTF-8,"))

	encoded := strings.TrimPrefix(body.DataURL, "data:image/svg+xml;charset=UTF-8,")
	decoded, err := url.PathUnescape(encoded)
	require.NoError(t, err)
	assert.Equal(t, testSVG, decoded)
}

func TestGenerateImageEncoderFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockQRServiceIface(ctrl)
	handler := createTestHandler(mockService)

	tests := []struct {
		name         string
		err          error
		expectedBody string
	}{
		{
			name:         "error with message",
			err:          errors.New("content too long to be encoded"),
			expectedBody: "Error generating QR code: content too long to be encoded",
		},
		{
			name:         "error without message",
			err:          errors.New(""),
			expectedBody: "Error generating QR code: Unknown error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockService.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", tt.err)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			w := httptest.NewRecorder()

			handler.GenerateImage(w, req)

			resp := w.Result()
			defer resp.Body.Close()

			assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
			assert.Equal(t, tt.expectedBody, strings.TrimSpace(w.Body.String()))
		})
	}
}

func TestPing(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := mocks.NewMockQRServiceIface(ctrl)
	handler := createTestHandler(mockService)

	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	w := httptest.NewRecorder()

	handler.Ping(w, req)

	resp := w.Result()
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}
