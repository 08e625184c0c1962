package export

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

const (
	pageMarginMM = 15.0
	labelColMM   = 130.0
	valueColMM   = 50.0
)

// StatementPDF renders doc as a single-column A4 PDF.
func StatementPDF(doc Document) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(pageMarginMM, pageMarginMM, pageMarginMM)
	pdf.SetAutoPageBreak(true, pageMarginMM)
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Arial", "B", 14)
	pdf.Cell(0, 8, tr(doc.Titulo))
	pdf.Ln(10)

	pdf.SetFont("Arial", "", 10)
	for _, f := range doc.Header {
		pdf.SetFont("Arial", "B", 10)
		pdf.CellFormat(45, 6, tr(f.Label+":"), "", 0, "L", false, 0, "")
		pdf.SetFont("Arial", "", 10)
		pdf.CellFormat(0, 6, tr(f.Value), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	for _, s := range doc.Sections {
		pdf.SetFont("Arial", "B", 11)
		pdf.SetFillColor(230, 230, 230)
		pdf.CellFormat(labelColMM+valueColMM, 7, tr(s.Titulo), "1", 1, "L", true, 0, "")
		pdf.SetFont("Arial", "", 10)
		if len(s.Lines) == 0 {
			pdf.CellFormat(labelColMM+valueColMM, 6, tr(s.Vazio), "1", 1, "C", false, 0, "")
		}
		for _, l := range s.Lines {
			pdf.CellFormat(labelColMM, 6, tr(l.Descricao), "1", 0, "L", false, 0, "")
			pdf.CellFormat(valueColMM, 6, tr(l.Formatado), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	if len(doc.Totais) > 0 {
		pdf.SetFont("Arial", "B", 10)
		for _, t := range doc.Totais {
			pdf.CellFormat(labelColMM, 7, tr(t.Descricao), "1", 0, "L", false, 0, "")
			pdf.CellFormat(valueColMM, 7, tr(t.Formatado), "1", 1, "R", false, 0, "")
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Arial", "I", 9)
	for _, n := range doc.Notas {
		pdf.MultiCell(0, 5, tr(n), "", "L", false)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render pdf: %w", err)
	}
	return buf.Bytes(), nil
}
