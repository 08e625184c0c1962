package export

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func sampleDocument() Document {
	return Document{
		Titulo: "Prestação de contas - março/2024",
		Header: []Field{{"Locatário", "Maria Souza"}, {"Imóvel", "Rua das Flores, 100"}},
		Sections: []Section{
			{Titulo: "Valores do termo", Lines: []Line{{"Aluguel", 2000, "R$ 2.000,00"}}},
			{Titulo: "Descontos", Vazio: "Nenhum dado disponível"},
		},
		Totais: []Line{{"Valor do repasse", 1800, "R$ 1.800,00"}},
		Notas:  []string{"Documento gerado pelo portal."},
	}
}

func pngOf(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		img.Set(w/2, y, color.Black)
	}
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return buf.Bytes()
}

func TestStatementPDF(t *testing.T) {
	out, err := StatementPDF(sampleDocument())
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
}

func TestStatementXLSX(t *testing.T) {
	out, err := StatementXLSX(sampleDocument())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(out))
	require.NoError(t, err)
	defer f.Close()

	title, err := f.GetCellValue(summarySheet, "A1")
	require.NoError(t, err)
	assert.Equal(t, "Prestação de contas - março/2024", title)

	desc, err := f.GetCellValue(itemsSheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Aluguel", desc)

	empty, err := f.GetCellValue(itemsSheet, "A3")
	require.NoError(t, err)
	assert.Empty(t, empty, "empty sections add no rows")
}

func TestRasterPages(t *testing.T) {
	tests := []struct {
		w, h int
		want int
	}{
		{210, 297, 1},
		{210, 298, 2},
		{210, 594, 2},
		{420, 594, 1},
		{100, 1000, 8}, // 141 px per page
		{1000, 14142, 11},
		{0, 100, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, RasterPages(tt.w, tt.h), "%dx%d", tt.w, tt.h)
	}
}

// WHY: page slices are whole pixels, so the page count must cover every
// row even when a page is not a whole number of pixels tall.
func TestRasterPagesCoverEveryRow(t *testing.T) {
	for _, w := range []int{7, 100, 333, 1000, 1366} {
		for _, h := range []int{1, 99, 1414, 14142, 30001} {
			pages := RasterPages(w, h)
			slice := pageSlicePx(w)
			assert.GreaterOrEqual(t, pages*slice, h, "%dx%d", w, h)
			assert.Less(t, (pages-1)*slice, h, "%dx%d has a blank last page", w, h)
		}
	}
}

// pngHeader returns a PNG signature and IHDR chunk for an RGBA image of the
// given size, without pixel data.
func pngHeader(w, h uint32) []byte {
	ihdr := make([]byte, 13)
	binary.BigEndian.PutUint32(ihdr[0:], w)
	binary.BigEndian.PutUint32(ihdr[4:], h)
	ihdr[8] = 8 // bit depth
	ihdr[9] = 6 // truecolor with alpha

	var buf bytes.Buffer
	buf.WriteString("\x89PNG\r\n\x1a\n")
	binary.Write(&buf, binary.BigEndian, uint32(len(ihdr))) //nolint:errcheck // bytes.Buffer writes do not fail
	chunk := append([]byte("IHDR"), ihdr...)
	buf.Write(chunk)
	binary.Write(&buf, binary.BigEndian, crc32.ChecksumIEEE(chunk)) //nolint:errcheck // bytes.Buffer writes do not fail
	return buf.Bytes()
}

func TestRasterToPDF(t *testing.T) {
	t.Run("slices a tall capture into pages", func(t *testing.T) {
		out, pages, err := RasterToPDF(pngOf(t, 210, 700))
		require.NoError(t, err)
		assert.Equal(t, 3, pages)
		assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
	})

	t.Run("short capture fits one page", func(t *testing.T) {
		_, pages, err := RasterToPDF(pngOf(t, 800, 400))
		require.NoError(t, err)
		assert.Equal(t, 1, pages)
	})

	t.Run("keeps the last rows when a page is not a whole number of pixels", func(t *testing.T) {
		// 7 px wide gives 9.9 px per page, sliced as 9.
		_, pages, err := RasterToPDF(pngOf(t, 7, 99))
		require.NoError(t, err)
		assert.Equal(t, 11, pages)
	})

	t.Run("rejects oversized images before decoding", func(t *testing.T) {
		_, _, err := RasterToPDF(pngHeader(50000, 50000))
		assert.ErrorIs(t, err, ErrImageTooLarge)

		_, _, err = RasterToPDF(pngHeader(15000, 15000))
		assert.ErrorIs(t, err, ErrImageTooLarge, "225 MP exceeds the pixel budget")
	})

	t.Run("rejects non-images", func(t *testing.T) {
		_, _, err := RasterToPDF([]byte("not an image"))
		assert.Error(t, err)
	})
}
