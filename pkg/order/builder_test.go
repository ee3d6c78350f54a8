package order

import (
	"testing"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robinhood/pkg/core"
	"robinhood/pkg/model"
)

func TestBuilder_Build(t *testing.T) {
	tests := []struct {
		name       string
		build      func() (*Order, error)
		wantErr    bool
		errContain string
	}{
		{
			name: "limit buy",
			build: func() (*Order, error) {
				return NewBuilder("AAPL").Buy().Limit().Price("150.25").Quantity("10").GTC().Build()
			},
		},
		{
			name: "market sell",
			build: func() (*Order, error) {
				return NewBuilder("MSFT").Sell().Market().Quantity("1").Build()
			},
		},
		{
			name: "stop market",
			build: func() (*Order, error) {
				return NewBuilder("MSFT").Sell().Market().StopPrice("300").Quantity("2").Build()
			},
		},
		{
			name: "decimal setters",
			build: func() (*Order, error) {
				var price, qty apd.Decimal
				price.SetString("99.5")
				qty.SetString("3")
				return NewBuilder("AAPL").Buy().Limit().PriceDecimal(price).QuantityDecimal(qty).Build()
			},
		},
		{
			name: "missing symbol",
			build: func() (*Order, error) {
				return NewBuilder("").Buy().Market().Quantity("1").Build()
			},
			wantErr:    true,
			errContain: "Symbol",
		},
		{
			name: "missing side",
			build: func() (*Order, error) {
				return NewBuilder("AAPL").Market().Quantity("1").Build()
			},
			wantErr:    true,
			errContain: "Side",
		},
		{
			name: "missing type",
			build: func() (*Order, error) {
				return NewBuilder("AAPL").Buy().Quantity("1").Build()
			},
			wantErr:    true,
			errContain: "Type",
		},
		{
			name: "zero quantity",
			build: func() (*Order, error) {
				return NewBuilder("AAPL").Buy().Market().Quantity("0").Build()
			},
			wantErr:    true,
			errContain: "quantity must be positive",
		},
		{
			name: "negative quantity",
			build: func() (*Order, error) {
				return NewBuilder("AAPL").Buy().Market().Quantity("-1").Build()
			},
			wantErr:    true,
			errContain: "quantity must be positive",
		},
		{
			name: "limit without price",
			build: func() (*Order, error) {
				return NewBuilder("AAPL").Buy().Limit().Quantity("1").Build()
			},
			wantErr:    true,
			errContain: "price must be positive",
		},
		{
			name: "stop price zero",
			build: func() (*Order, error) {
				return NewBuilder("AAPL").Sell().Market().StopPrice("0").Quantity("1").Build()
			},
			wantErr:    true,
			errContain: "stop price must be positive",
		},
		{
			name: "bad instrument url",
			build: func() (*Order, error) {
				return NewBuilder("AAPL").Instrument("not a url").Buy().Market().Quantity("1").Build()
			},
			wantErr:    true,
			errContain: "InstrumentURL",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, err := tt.build()
			if tt.wantErr {
				require.Error(t, err)
				assert.Nil(t, o)
				assert.True(t, core.IsType(err, core.ErrorTypeInvalidRequest))
				assert.Contains(t, err.Error(), tt.errContain)
				return
			}
			require.NoError(t, err)
			assert.NotEqual(t, uuid.Nil, o.RefID)
		})
	}
}

func TestBuilder_Defaults(t *testing.T) {
	o, err := NewBuilder("AAPL").Buy().Market().Quantity("1").Build()

	require.NoError(t, err)
	assert.Equal(t, model.GFD, o.TimeInForce)
	assert.Equal(t, model.TriggerImmediate, o.Trigger)
}

func TestBuilder_RefID(t *testing.T) {
	id := uuid.MustParse("3f1c1f9e-6a55-4b2b-9d7e-2f8a4d0c1b11")

	o, err := NewBuilder("AAPL").Buy().Market().Quantity("1").RefID(id).Build()
	require.NoError(t, err)
	assert.Equal(t, id, o.RefID)

	a, err := NewBuilder("AAPL").Buy().Market().Quantity("1").Build()
	require.NoError(t, err)
	b, err := NewBuilder("AAPL").Buy().Market().Quantity("1").Build()
	require.NoError(t, err)
	assert.NotEqual(t, a.RefID, b.RefID)
}

func TestBuilder_ChainOnError(t *testing.T) {
	o, err := NewBuilder("AAPL").
		Buy().
		Price("invalid").
		Limit().
		Quantity("1").
		Build()

	assert.Error(t, err)
	assert.Nil(t, o)
	assert.Contains(t, err.Error(), "parse price")
}

func TestBuilder_StopPriceParseError(t *testing.T) {
	_, err := NewBuilder("AAPL").Sell().Market().StopPrice("x").Quantity("1").Build()
	assert.ErrorContains(t, err, "parse stop price")
}

func TestOrder_Fields(t *testing.T) {
	id := uuid.MustParse("3f1c1f9e-6a55-4b2b-9d7e-2f8a4d0c1b11")

	t.Run("limit", func(t *testing.T) {
		o, err := NewBuilder("AAPL").
			Instrument("https://api.example.com/instruments/450dfc6d/").
			Buy().Limit().Price("150.25").Quantity("10").GTC().RefID(id).
			Build()
		require.NoError(t, err)

		assert.Equal(t, core.Params{
			"account":       "https://api.example.com/accounts/ACC1/",
			"instrument":    "https://api.example.com/instruments/450dfc6d/",
			"symbol":        "AAPL",
			"type":          "limit",
			"time_in_force": "gtc",
			"trigger":       "immediate",
			"price":         "150.25",
			"quantity":      "10",
			"side":          "buy",
			"ref_id":        id.String(),
		}, o.Fields("https://api.example.com/accounts/ACC1/"))
	})

	t.Run("market_without_price", func(t *testing.T) {
		o, err := NewBuilder("AAPL").Sell().Market().Quantity("2").RefID(id).Build()
		require.NoError(t, err)

		fields := o.Fields("acct")
		assert.NotContains(t, fields, "price")
		assert.NotContains(t, fields, "stop_price")
		assert.Equal(t, "market", fields["type"])
		assert.Equal(t, "sell", fields["side"])
	})

	t.Run("stop", func(t *testing.T) {
		o, err := NewBuilder("AAPL").Sell().Market().StopPrice("120.5").Quantity("2").RefID(id).Build()
		require.NoError(t, err)

		fields := o.Fields("acct")
		assert.Equal(t, "stop", fields["trigger"])
		assert.Equal(t, "120.5", fields["stop_price"])
	})
}

func TestOrder_String(t *testing.T) {
	o, err := NewBuilder("AAPL").Buy().Market().Quantity("3").Build()
	require.NoError(t, err)
	assert.Equal(t, "buy market AAPL x3", o.String())
}
