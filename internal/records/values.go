package records

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Valor is a money amount as the sheet stores it. JSON input may be a
// string, kept verbatim, or a number, rendered without float rounding.
type Valor string

func (v *Valor) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case bytes.Equal(b, []byte("null")):
		*v = ""
		return nil
	case len(b) > 0 && b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*v = Valor(s)
		return nil
	}

	d, err := decimal.NewFromString(string(b))
	if err != nil {
		return fmt.Errorf("valor: %w", err)
	}
	*v = Valor(d.String())
	return nil
}

func (v Valor) String() string {
	return string(v)
}

// Position is a positional row id as sent by clients: a JSON number or a
// numeric string. Anything else is kept as an invalid position, which
// addresses no row.
type Position struct {
	Value int
	Valid bool
}

func (p *Position) UnmarshalJSON(b []byte) error {
	*p = Position{}

	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		return nil
	}

	raw := string(b)
	if b[0] == '"' {
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil
		}
		raw = strings.TrimSpace(raw)
	}

	d, err := decimal.NewFromString(raw)
	if err != nil || !d.IsInteger() {
		return nil
	}
	n, err := strconv.Atoi(d.String())
	if err != nil {
		return nil
	}

	*p = Position{Value: n, Valid: true}
	return nil
}

func (p Position) MarshalJSON() ([]byte, error) {
	if !p.Valid {
		return []byte("null"), nil
	}
	return []byte(strconv.Itoa(p.Value)), nil
}
