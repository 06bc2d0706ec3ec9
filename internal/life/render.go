package life

import (
	"bytes"
	"fmt"

	"github.com/gogpu/gg"
)

var (
	deadColor = gg.Hex("#101820")
	liveColor = gg.Hex("#7fdbca")
)

// Render draws each live cell as a cellSize square and encodes the board
// as PNG.
func Render(b *Board, cellSize int) ([]byte, error) {
	if cellSize <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCellSize, cellSize)
	}

	dc := gg.NewContext(b.width*cellSize, b.height*cellSize)
	defer dc.Close()

	dc.ClearWithColor(deadColor)

	if b.Alive() > 0 {
		size := float64(cellSize)
		for y := range b.height {
			for x := range b.width {
				if b.cells[y*b.width+x] {
					dc.DrawRectangle(float64(x)*size, float64(y)*size, size, size)
				}
			}
		}
		dc.SetColor(liveColor.Color())
		if err := dc.Fill(); err != nil {
			return nil, fmt.Errorf("fill cells: %w", err)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}
