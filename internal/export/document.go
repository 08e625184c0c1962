// Package export renders statement documents as PDF and XLSX files.
package export

// Field is a label/value pair of a document header.
type Field struct {
	Label string
	Value string
}

// Line is one row of a section: a description and its amount.
type Line struct {
	Descricao string
	Valor     float64
	// Formatado is the display string of Valor.
	Formatado string
}

// Section is a titled group of lines.
type Section struct {
	Titulo string
	Lines  []Line
	// Vazio is printed when Lines is empty.
	Vazio string
}

// Document is the format-independent content of an exported statement.
type Document struct {
	Titulo   string
	Header   []Field
	Sections []Section
	Totais   []Line
	Notas    []string
}
