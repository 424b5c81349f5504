package service

import (
	"context"

	"github.com/atinyakov/go-qr-generator/internal/models"
)

//go:generate mockgen -source=interface.go -destination=../../mocks/mock_service.go -package=mocks

// QRServiceIface generates a rendered QR image for validated parameters.
type QRServiceIface interface {
	Generate(ctx context.Context, params models.ImageParams) (string, error)
}
