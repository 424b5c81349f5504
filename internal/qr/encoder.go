// Package qr defines the contract with the QR symbol encoder and provides
// the production implementation backed by github.com/skip2/go-qrcode.
// Data placement, error-correction codeword generation and masking all
// happen inside the library; this package only exposes the resulting
// module matrix cell-by-cell.
package qr

import (
	"fmt"

	qrcode "github.com/skip2/go-qrcode"
)

// Level is a QR error correction level. Higher levels survive more damage
// at the cost of data capacity.
type Level string

const (
	LevelL Level = "L"
	LevelM Level = "M"
	LevelQ Level = "Q"
	LevelH Level = "H"
)

// recoveryLevels maps a Level onto the library's recovery constants.
var recoveryLevels = map[Level]qrcode.RecoveryLevel{
	LevelL: qrcode.Low,
	LevelM: qrcode.Medium,
	LevelQ: qrcode.High,
	LevelH: qrcode.Highest,
}

// Matrix is a read-only square grid of QR modules. Coordinates are
// 0-indexed and must be within [0, SideLength).
type Matrix interface {
	// SideLength returns the number of modules per side.
	SideLength() int

	// IsDark reports whether the module at (row, col) is dark.
	IsDark(row, col int) bool
}

//go:generate mockgen -source=encoder.go -destination=../mocks/mock_encoder.go -package=mocks

// Encoder produces a module matrix for a payload at a given error
// correction level.
type Encoder interface {
	Encode(text string, level Level) (Matrix, error)
}

// QRCodeEncoder implements Encoder on top of skip2/go-qrcode.
type QRCodeEncoder struct{}

// NewEncoder returns a ready-to-use QRCodeEncoder.
func NewEncoder() *QRCodeEncoder {
	return &QRCodeEncoder{}
}

// Encode builds the QR symbol for text. The library border is disabled so
// that the matrix holds data modules only; the quiet zone is the renderer's
// concern.
func (e *QRCodeEncoder) Encode(text string, level Level) (Matrix, error) {
	rl, ok := recoveryLevels[level]
	if !ok {
		return nil, fmt.Errorf("unknown error correction level: %q", level)
	}

	code, err := qrcode.New(text, rl)
	if err != nil {
		return nil, err
	}
	code.DisableBorder = true

	return &bitmapMatrix{cells: code.Bitmap()}, nil
}

// bitmapMatrix adapts the library's [][]bool bitmap to the Matrix interface.
type bitmapMatrix struct {
	cells [][]bool
}

func (m *bitmapMatrix) SideLength() int {
	return len(m.cells)
}

func (m *bitmapMatrix) IsDark(row, col int) bool {
	return m.cells[row][col]
}
