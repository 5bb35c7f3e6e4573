// Package money fija la representación canónica de precios en FoodHub:
// enteros en unidades menores (paise). La conversión a unidades de
// presentación (rupias) solo ocurre al mostrar.
package money

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// MinorUnitsPerMajor 100 paise = 1 rupia.
const MinorUnitsPerMajor = 100

var (
	printer = message.NewPrinter(language.English)
	unit    = currency.INR
)

// Paise precio en unidades menores.
type Paise int64

// Parse interpreta el valor de un formulario ("15000") como unidades menores.
// Rechaza vacíos, decimales y negativos.
func Parse(raw string) (Paise, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, fmt.Errorf("money: precio vacío")
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("money: precio inválido %q: debe ser un entero en paise", raw)
	}
	if n < 0 {
		return 0, fmt.Errorf("money: precio negativo %q", raw)
	}
	return Paise(n), nil
}

// Decimal devuelve el valor en unidades de presentación (escala 2).
func (p Paise) Decimal() decimal.Decimal {
	return decimal.New(int64(p), -2)
}

// String formatea con símbolo de moneda, p.ej. "₹ 150.00".
func (p Paise) String() string {
	amount := unit.Amount(p.Decimal().InexactFloat64())
	return printer.Sprint(currency.Symbol(amount))
}

// Times multiplica por una cantidad (líneas de pedido).
func (p Paise) Times(qty int) Paise {
	return p * Paise(qty)
}

// UnmarshalJSON acepta números enteros, números con fracción (se redondean a la
// unidad menor más cercana) y strings numéricos; el backend no es consistente.
func (p *Paise) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*p = 0
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return fmt.Errorf("money: %w", err)
		}
		data = []byte(strings.TrimSpace(s))
	}
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return fmt.Errorf("money: número inválido %q", string(data))
	}
	*p = Paise(d.Round(0).IntPart())
	return nil
}
