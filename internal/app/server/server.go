// Package server assembles the chi router of the QR generator service.
package server

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/atinyakov/go-qr-generator/internal/app/handler"
	"github.com/atinyakov/go-qr-generator/internal/app/service"
	"github.com/atinyakov/go-qr-generator/internal/middleware"
)

func Init(logger *zap.Logger, qrService service.QRServiceIface) *chi.Mux {

	getHandler := handler.NewGet(qrService, logger)

	r := chi.NewRouter()
	r.Use(middleware.WithRequestID)
	r.Use(middleware.WithRequestLogging(logger))
	r.Use(middleware.WithGZIPGet)

	r.Get("/", getHandler.GenerateImage)
	r.Get("/ping", getHandler.Ping)

	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Method Not Allowed", http.StatusMethodNotAllowed)
	})

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "Route not found", http.StatusNotFound)
	})

	return r
}
