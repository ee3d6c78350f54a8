package model

import (
	"bytes"
	"fmt"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/apd/v3"
	"github.com/moznion/go-optional"
)

// Decimal is an exact amount. The API sends decimals as quoted strings;
// bare numbers are accepted as well. null and "" decode to zero.
type Decimal struct {
	apd.Decimal
}

// NullDecimal is an amount the API may send as null, such as the price of
// a market order.
type NullDecimal = optional.Option[Decimal]

// String formats d without an exponent where possible.
func (d Decimal) String() string {
	return d.Decimal.String()
}

// UnmarshalJSON implements json.Unmarshaler.
func (d *Decimal) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		d.Decimal = apd.Decimal{}
		return nil
	}

	text := string(data)
	if data[0] == '"' {
		if err := sonic.Unmarshal(data, &text); err != nil {
			return err
		}
		if text == "" {
			d.Decimal = apd.Decimal{}
			return nil
		}
	}

	if _, _, err := d.Decimal.SetString(text); err != nil {
		return fmt.Errorf("decimal %s: %w", data, err)
	}
	return nil
}

// MarshalJSON implements json.Marshaler. The amount is quoted, as the API
// sends it.
func (d Decimal) MarshalJSON() ([]byte, error) {
	return sonic.Marshal(d.Decimal.Text('f'))
}
