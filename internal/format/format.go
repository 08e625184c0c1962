// Package format renders amounts, dates and placeholders the way the portal
// displays them (pt-BR).
package format

import (
	"math"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Placeholders shown when data is missing.
const (
	NotInformed = "Não informado"
	NoData      = "Nenhum dado disponível"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

var monthNames = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// Decimal formats v with two fraction digits and pt-BR separators: 1.234,56.
func Decimal(v float64) string {
	v = math.Round(v*100) / 100
	if v == 0 {
		v = 0 // normalises -0
	}
	return printer.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// BRL formats v as Brazilian reais: R$ 1.234,56 and -R$ 1.234,56.
func BRL(v float64) string {
	rounded := math.Round(v*100) / 100
	if rounded < 0 {
		return "-R$ " + Decimal(-rounded)
	}
	return "R$ " + Decimal(rounded)
}

// Percent formats v (already in percent units) as 33,33%.
func Percent(v float64) string {
	return Decimal(v) + "%"
}

// Date formats t as 02/01/2006; the zero time renders the placeholder.
func Date(t time.Time) string {
	if t.IsZero() {
		return NotInformed
	}
	return t.Format("02/01/2006")
}

// MonthYear formats a reference period as "março/2024".
func MonthYear(year, month int) string {
	if month < 1 || month > 12 || year <= 0 {
		return NotInformed
	}
	return monthNames[month-1] + "/" + strconv.Itoa(year)
}

// Reference formats a backend "YYYY-MM" reference into "março/2024".
// Unrecognised input is returned trimmed; empty input renders the placeholder.
func Reference(ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return NotInformed
	}
	t, err := time.Parse("2006-01", ref)
	if err != nil {
		return ref
	}
	return MonthYear(t.Year(), int(t.Month()))
}

// OrPlaceholder returns s, or the "Não informado" placeholder when s is blank.
func OrPlaceholder(s string) string {
	if strings.TrimSpace(s) == "" {
		return NotInformed
	}
	return s
}
