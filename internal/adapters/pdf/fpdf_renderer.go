// Package pdf serializes composed report documents to PDF bytes.
package pdf

import (
	"bytes"
	"fmt"

	"github.com/phpdave11/gofpdf"

	"travel-order-service/internal/domain"
)

// FPDFRenderer renders a Document with the gofpdf engine. Pages map 1:1,
// blocks are drawn in order, and the built-in Helvetica font is used
// throughout, so the document text must stay within Latin-1.
type FPDFRenderer struct{}

func NewFPDFRenderer() *FPDFRenderer {
	return &FPDFRenderer{}
}

func (r *FPDFRenderer) Render(doc *domain.Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLineWidth(0.3)

	for _, page := range doc.Pages {
		pdf.AddPage()
		for _, block := range page.Blocks {
			drawBlock(pdf, block)
		}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}

func drawBlock(pdf *gofpdf.Fpdf, block domain.Block) {
	switch b := block.(type) {
	case domain.Text:
		style := ""
		if b.Bold {
			style = "B"
		}
		pdf.SetFont("Helvetica", style, b.Size)

		x := b.X
		switch b.Align {
		case domain.AlignCenter:
			x -= pdf.GetStringWidth(b.Value) / 2
		case domain.AlignRight:
			x -= pdf.GetStringWidth(b.Value)
		}
		pdf.Text(x, b.Y, b.Value)

	case domain.Line:
		pdf.Line(b.X1, b.Y1, b.X2, b.Y2)

	case domain.Rect:
		pdf.Rect(b.X, b.Y, b.W, b.H, "D")
	}
}
