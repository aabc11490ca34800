package payroll

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Amount is a money field. Absent, null and blank values are zero; numbers
// and numeric strings are both accepted.
type Amount struct {
	decimal.Decimal
}

func NewAmount(v int64) Amount {
	return Amount{decimal.NewFromInt(v)}
}

func AmountOf(d decimal.Decimal) Amount {
	return Amount{d}
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		a.Decimal = decimal.Zero
		return nil
	}

	text := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		text = strings.TrimSpace(strings.ReplaceAll(s, ",", ""))
		if text == "" {
			a.Decimal = decimal.Zero
			return nil
		}
	}

	d, err := decimal.NewFromString(text)
	if err != nil {
		return fmt.Errorf("invalid amount %s", string(data))
	}
	a.Decimal = d
	return nil
}

// MarshalJSON writes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}

func sum(amounts ...Amount) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a.Decimal)
	}
	return total
}
