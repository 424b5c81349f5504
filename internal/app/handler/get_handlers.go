package handler

import (
	"encoding/json"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/atinyakov/go-qr-generator/internal/app/service"
	"github.com/atinyakov/go-qr-generator/internal/models"
)

// dataURLPrefix precedes the URL-encoded SVG in FormatPNG responses.
const dataURLPrefix = "data:image/svg+xml;charset=UTF-8,"

type GetHandler struct {
	service service.QRServiceIface
	logger  *zap.Logger
}

func NewGet(s service.QRServiceIface, l *zap.Logger) *GetHandler {
	return &GetHandler{
		service: s,
		logger:  l,
	}
}

// GenerateImage handles GET requests for QR code generation. Validation
// failures map to 400 with the parameter-specific message, encoder failures
// to 500; successful responses carry cache and CORS headers.
func (h *GetHandler) GenerateImage(res http.ResponseWriter, req *http.Request) {
	params, err := parseImageParams(req.URL.Query())
	if err != nil {
		http.Error(res, err.Error(), http.StatusBadRequest)
		return
	}

	svg, err := h.service.Generate(req.Context(), *params)
	if err != nil {
		msg := err.Error()
		if msg == "" {
			msg = "Unknown error occurred"
		}
		http.Error(res, "Error generating QR code: "+msg, http.StatusInternalServerError)
		return
	}

	header := res.Header()
	header.Set("Cache-Control", "public, max-age=86400")
	header.Set("Access-Control-Allow-Origin", "*")
	header.Set("Access-Control-Allow-Methods", "GET")

	if params.Format == models.FormatPNG {
		header.Set("Content-Type", "application/json")
		res.WriteHeader(http.StatusOK)

		body := models.DataURLResponse{DataURL: dataURLPrefix + url.PathEscape(svg)}
		if err := json.NewEncoder(res).Encode(body); err != nil {
			h.logger.Error("failed to write data URL response", zap.Error(err))
		}
		return
	}

	header.Set("Content-Type", "image/svg+xml")
	header.Set("Content-Disposition", `attachment; filename="qrcode.svg"`)
	res.WriteHeader(http.StatusOK)

	if _, err := res.Write([]byte(svg)); err != nil {
		h.logger.Error("failed to write SVG response", zap.Error(err))
	}
}

// Ping reports service liveness. The service keeps no state, so liveness is
// the whole story.
func (h *GetHandler) Ping(res http.ResponseWriter, req *http.Request) {
	res.Header().Set("Content-Type", "application/json")
	res.WriteHeader(http.StatusOK)

	if err := json.NewEncoder(res).Encode(map[string]string{"status": "ok"}); err != nil {
		h.logger.Error("failed to write ping response", zap.Error(err))
	}
}
