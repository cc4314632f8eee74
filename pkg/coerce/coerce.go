// Package coerce convierte valores de entrada (fechas, montos) devolviendo un
// error explícito cuando el valor no es interpretable. Nunca "se ignora" un
// valor inválido: el llamador decide.
package coerce

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/shopspring/decimal"
)

// ErrNegativeAmount monto negativo.
var ErrNegativeAmount = errors.New("valor não pode ser negativo")

// Formatos con día primero; dateparse asume mes primero en fechas con barras.
var dayFirstLayouts = []string{"2006-01-02", "02/01/2006", "02-01-2006", "02.01.2006"}

// Date interpreta una fecha (ISO, dd/mm/aaaa o formatos libres) y la devuelve a medianoche UTC.
func Date(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, errors.New("data vazia")
	}
	for _, layout := range dayFirstLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return truncateDay(t), nil
		}
	}
	t, err := dateparse.ParseAny(s)
	if err != nil {
		return time.Time{}, fmt.Errorf("data inválida %q: %w", s, err)
	}
	return truncateDay(t), nil
}

// Money valida que el monto no sea negativo y lo redondea a 2 decimales.
func Money(d decimal.Decimal) (decimal.Decimal, error) {
	if d.IsNegative() {
		return decimal.Decimal{}, ErrNegativeAmount
	}
	return d.Round(2), nil
}

// MoneyString interpreta un monto textual ("1234.5", "1.234,50").
func MoneyString(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Decimal{}, errors.New("valor vazio")
	}
	// Formato brasileño: punto de miles y coma decimal.
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("valor inválido %q: %w", s, err)
	}
	return Money(d)
}

func truncateDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
