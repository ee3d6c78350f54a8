// Package order describes equity orders before they are placed and
// encodes them into the form the orders endpoint accepts.
package order

import (
	"fmt"

	"github.com/cockroachdb/apd/v3"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"robinhood/pkg/core"
	"robinhood/pkg/model"
)

// Order is an order ready to be placed. Build one with NewBuilder.
type Order struct {
	Symbol string `validate:"required"`
	// InstrumentURL identifies the security. When empty the client looks
	// it up from Symbol before placing the order.
	InstrumentURL string            `validate:"omitempty,url"`
	Side          model.Side        `validate:"required"`
	Type          model.OrderType   `validate:"required"`
	TimeInForce   model.TimeInForce `validate:"required"`
	Trigger       model.Trigger     `validate:"required"`
	Price         apd.Decimal       `validate:"-"`
	StopPrice     apd.Decimal       `validate:"-"`
	Quantity      apd.Decimal       `validate:"-"`
	// RefID lets the server drop duplicate submissions of the same order.
	RefID uuid.UUID `validate:"-"`
}

var validate = validator.New()

// Validate checks the field constraints and the price rules that depend
// on the order type and trigger.
func (o *Order) Validate() error {
	if err := validate.Struct(o); err != nil {
		return core.WrapError(core.ErrorTypeInvalidRequest, "invalid order", err)
	}

	if !positive(&o.Quantity) {
		return core.NewError(core.ErrorTypeInvalidRequest, "quantity must be positive")
	}
	if o.Type == model.TypeLimit && !positive(&o.Price) {
		return core.NewError(core.ErrorTypeInvalidRequest, "price must be positive for limit orders")
	}
	if o.Trigger == model.TriggerStop && !positive(&o.StopPrice) {
		return core.NewError(core.ErrorTypeInvalidRequest, "stop price must be positive for stop orders")
	}
	if o.RefID == uuid.Nil {
		return core.NewError(core.ErrorTypeInvalidRequest, "ref id is required")
	}
	return nil
}

// Fields encodes o as the form fields of a placement for the account at
// accountURL. Price and stop price are sent only when set.
func (o *Order) Fields(accountURL string) core.Params {
	fields := core.Params{
		"account":       accountURL,
		"instrument":    o.InstrumentURL,
		"symbol":        o.Symbol,
		"type":          o.Type.String(),
		"time_in_force": o.TimeInForce.String(),
		"trigger":       o.Trigger.String(),
		"quantity":      o.Quantity.Text('f'),
		"side":          o.Side.String(),
		"ref_id":        o.RefID.String(),
	}
	if positive(&o.Price) {
		fields["price"] = o.Price.Text('f')
	}
	if o.Trigger == model.TriggerStop {
		fields["stop_price"] = o.StopPrice.Text('f')
	}
	return fields
}

func (o *Order) String() string {
	return fmt.Sprintf("%s %s %s x%s", o.Side, o.Type, o.Symbol, o.Quantity.Text('f'))
}

func positive(d *apd.Decimal) bool {
	return d.Form == apd.Finite && d.Sign() > 0
}
