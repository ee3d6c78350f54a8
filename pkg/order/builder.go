package order

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/google/uuid"

	"robinhood/pkg/model"
)

// Builder provides a fluent interface for constructing orders.
// It keeps the first parse error and reports it on Build.
//
// Example:
//
//	o, err := order.NewBuilder("AAPL").
//	    Buy().
//	    Limit().
//	    Price("150.25").
//	    Quantity("10").
//	    GTC().
//	    Build()
type Builder struct {
	order *Order
	err   error
}

// NewBuilder starts an order for symbol. Unless overridden the order is
// good for the day and triggers immediately.
func NewBuilder(symbol string) *Builder {
	return &Builder{
		order: &Order{
			Symbol:      symbol,
			TimeInForce: model.GFD,
			Trigger:     model.TriggerImmediate,
		},
	}
}

// Instrument sets the instrument URL, skipping the lookup by symbol.
func (b *Builder) Instrument(url string) *Builder {
	if b.err != nil {
		return b
	}
	b.order.InstrumentURL = url
	return b
}

// Side sets the order side.
func (b *Builder) Side(side model.Side) *Builder {
	if b.err != nil {
		return b
	}
	b.order.Side = side
	return b
}

func (b *Builder) Buy() *Builder {
	return b.Side(model.SideBuy)
}

func (b *Builder) Sell() *Builder {
	return b.Side(model.SideSell)
}

// Type sets the order type.
func (b *Builder) Type(orderType model.OrderType) *Builder {
	if b.err != nil {
		return b
	}
	b.order.Type = orderType
	return b
}

func (b *Builder) Market() *Builder {
	return b.Type(model.TypeMarket)
}

func (b *Builder) Limit() *Builder {
	return b.Type(model.TypeLimit)
}

// Price sets the limit price from its decimal string.
func (b *Builder) Price(price string) *Builder {
	return b.parse(&b.order.Price, price, "price")
}

// PriceDecimal sets the limit price.
func (b *Builder) PriceDecimal(price apd.Decimal) *Builder {
	if b.err != nil {
		return b
	}
	b.order.Price.Set(&price)
	return b
}

// StopPrice sets the stop price and switches the trigger to stop.
func (b *Builder) StopPrice(price string) *Builder {
	b.parse(&b.order.StopPrice, price, "stop price")
	if b.err == nil {
		b.order.Trigger = model.TriggerStop
	}
	return b
}

// Quantity sets the share count from its decimal string.
func (b *Builder) Quantity(qty string) *Builder {
	return b.parse(&b.order.Quantity, qty, "quantity")
}

// QuantityDecimal sets the share count.
func (b *Builder) QuantityDecimal(qty apd.Decimal) *Builder {
	if b.err != nil {
		return b
	}
	b.order.Quantity.Set(&qty)
	return b
}

// TimeInForce sets how long the order stays open.
func (b *Builder) TimeInForce(tif model.TimeInForce) *Builder {
	if b.err != nil {
		return b
	}
	b.order.TimeInForce = tif
	return b
}

func (b *Builder) GFD() *Builder {
	return b.TimeInForce(model.GFD)
}

func (b *Builder) GTC() *Builder {
	return b.TimeInForce(model.GTC)
}

func (b *Builder) IOC() *Builder {
	return b.TimeInForce(model.IOC)
}

func (b *Builder) OPG() *Builder {
	return b.TimeInForce(model.OPG)
}

// RefID sets the idempotency key. Build generates one when unset.
func (b *Builder) RefID(id uuid.UUID) *Builder {
	if b.err != nil {
		return b
	}
	b.order.RefID = id
	return b
}

// Build validates and returns the constructed order.
func (b *Builder) Build() (*Order, error) {
	if b.err != nil {
		return nil, b.err
	}

	if b.order.RefID == uuid.Nil {
		b.order.RefID = uuid.New()
	}

	if err := b.order.Validate(); err != nil {
		return nil, err
	}

	return b.order, nil
}

func (b *Builder) parse(dst *apd.Decimal, s, field string) *Builder {
	if b.err != nil {
		return b
	}
	if _, _, err := dst.SetString(s); err != nil {
		b.err = fmt.Errorf("parse %s: %w", field, err)
	}
	return b
}
