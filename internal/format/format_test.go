package format

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestBRL(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{1234.56, "R$ 1.234,56"},
		{1234567.891, "R$ 1.234.567,89"},
		{-45.5, "-R$ 45,50"},
		{0.005, "R$ 0,01"},
		{-0.001, "R$ 0,00"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, BRL(tt.in), "BRL(%v)", tt.in)
	}
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "33,33%", Percent(33.3333))
	assert.Equal(t, "100,00%", Percent(100))
}

func TestDate(t *testing.T) {
	assert.Equal(t, "05/03/2024", Date(time.Date(2024, 3, 5, 10, 0, 0, 0, time.UTC)))
	assert.Equal(t, NotInformed, Date(time.Time{}))
}

func TestMonthYearAndReference(t *testing.T) {
	assert.Equal(t, "março/2024", MonthYear(2024, 3))
	assert.Equal(t, NotInformed, MonthYear(2024, 13))
	assert.Equal(t, "dezembro/2023", Reference("2023-12"))
	assert.Equal(t, "03/2024", Reference(" 03/2024 "))
	assert.Equal(t, NotInformed, Reference(""))
}

func TestOrPlaceholder(t *testing.T) {
	assert.Equal(t, "Ana", OrPlaceholder("Ana"))
	assert.Equal(t, NotInformed, OrPlaceholder("   "))
}
