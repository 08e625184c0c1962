package export

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

const (
	summarySheet = "Resumo"
	itemsSheet   = "Lancamentos"
)

// StatementXLSX renders doc as a workbook: a summary sheet with the header
// and totals, and an entries sheet with one row per section line.
func StatementXLSX(doc Document) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	if _, err := f.NewSheet(itemsSheet); err != nil {
		return nil, fmt.Errorf("create sheet: %w", err)
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 4}) // #,##0.00
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}

	_ = f.SetCellValue(summarySheet, "A1", doc.Titulo)
	_ = f.SetCellStyle(summarySheet, "A1", "A1", bold)

	row := 3
	for _, h := range doc.Header {
		_ = f.SetCellValue(summarySheet, cell("A", row), h.Label)
		_ = f.SetCellValue(summarySheet, cell("B", row), h.Value)
		row++
	}
	row++
	for _, t := range doc.Totais {
		_ = f.SetCellValue(summarySheet, cell("A", row), t.Descricao)
		_ = f.SetCellValue(summarySheet, cell("B", row), t.Valor)
		_ = f.SetCellStyle(summarySheet, cell("A", row), cell("A", row), bold)
		_ = f.SetCellStyle(summarySheet, cell("B", row), cell("B", row), money)
		row++
	}
	for _, n := range doc.Notas {
		row++
		_ = f.SetCellValue(summarySheet, cell("A", row), n)
	}
	_ = f.SetColWidth(summarySheet, "A", "A", 30)
	_ = f.SetColWidth(summarySheet, "B", "B", 45)

	_ = f.SetCellValue(itemsSheet, "A1", "Grupo")
	_ = f.SetCellValue(itemsSheet, "B1", "Descrição")
	_ = f.SetCellValue(itemsSheet, "C1", "Valor")
	_ = f.SetCellStyle(itemsSheet, "A1", "C1", bold)
	row = 2
	for _, s := range doc.Sections {
		for _, l := range s.Lines {
			_ = f.SetCellValue(itemsSheet, cell("A", row), s.Titulo)
			_ = f.SetCellValue(itemsSheet, cell("B", row), l.Descricao)
			_ = f.SetCellValue(itemsSheet, cell("C", row), l.Valor)
			_ = f.SetCellStyle(itemsSheet, cell("C", row), cell("C", row), money)
			row++
		}
	}
	_ = f.SetColWidth(itemsSheet, "A", "B", 30)

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, fmt.Errorf("render xlsx: %w", err)
	}
	return buf.Bytes(), nil
}

func cell(col string, row int) string {
	return fmt.Sprintf("%s%d", col, row)
}
