package render

import (
	"fmt"

	qrcode "github.com/yeqown/go-qrcode/v2"
)

// Encoder is the seam to the QR encoding black box: a square module
// matrix addressed by row and column.
type Encoder interface {
	ModuleCount() int
	IsDark(row, col int) bool
}

// moduleGrid captures the encoder's matrix. It implements
// qrcode.Writer the same way rasterizing backends do, but keeps the
// modules instead of painting them.
type moduleGrid struct {
	modules [][]bool
}

func (g *moduleGrid) ModuleCount() int { return len(g.modules) }

func (g *moduleGrid) IsDark(row, col int) bool {
	if row < 0 || row >= len(g.modules) || col < 0 || col >= len(g.modules) {
		return false
	}
	return g.modules[row][col]
}

func (g *moduleGrid) Write(mat qrcode.Matrix) error {
	n := mat.Width()
	g.modules = make([][]bool, n)
	for i := range g.modules {
		g.modules[i] = make([]bool, n)
	}
	mat.Iterate(qrcode.IterDirection_ROW, func(x, y int, v qrcode.QRValue) {
		if y >= 0 && y < n && x >= 0 && x < n {
			g.modules[y][x] = v.IsSet()
		}
	})
	return nil
}

func (g *moduleGrid) Close() error { return nil }

func (l ECLevel) encodeOption() qrcode.EncodeOption {
	switch l {
	case ECLow:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionLow)
	case ECQuart:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionQuart)
	case ECHighest:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionHighest)
	default:
		return qrcode.WithErrorCorrectionLevel(qrcode.ErrorCorrectionMedium)
	}
}

// encode runs the black-box encoder over raw byte values and lifts the
// resulting module matrix. Failures here are fatal to the render.
func encode(data []byte, level ECLevel) (Encoder, error) {
	qrc, err := qrcode.NewWith(string(data),
		qrcode.WithEncodingMode(qrcode.EncModeByte),
		level.encodeOption(),
	)
	if err != nil {
		return nil, fmt.Errorf("encode qr data: %w", err)
	}

	var grid moduleGrid
	if err := qrc.Save(&grid); err != nil {
		return nil, fmt.Errorf("extract qr matrix: %w", err)
	}
	return &grid, nil
}
