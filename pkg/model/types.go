// Package model defines the JSON shapes returned by the brokerage API.
//
// Money and quantity fields are Decimal values backed by apd; fields the API
// may leave null, such as order prices, are NullDecimal. Enumerations travel as lowercase
// strings and decode leniently: a value this package does not know leaves
// the field at its zero value.
package model

import (
	"strings"

	"github.com/bytedance/sonic"
)

// Side is the direction of an order.
type Side int

// Order side constants. The zero value is unset.
const (
	SideBuy Side = iota + 1
	SideSell
)

var sideNames = [...]string{"", "buy", "sell"}

// String returns the wire form of the side ("buy" or "sell").
func (s Side) String() string {
	return enumName(sideNames[:], int(s))
}

// MarshalJSON implements json.Marshaler for Side.
func (s Side) MarshalJSON() ([]byte, error) {
	return marshalEnum(s.String())
}

// UnmarshalJSON implements json.Unmarshaler for Side.
func (s *Side) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, sideNames[:], (*int)(s))
}

// OrderType selects how an order executes.
type OrderType int

// Order type constants. The zero value is unset.
const (
	TypeMarket OrderType = iota + 1
	TypeLimit
)

var orderTypeNames = [...]string{"", "market", "limit"}

// String returns the wire form of the order type.
func (t OrderType) String() string {
	return enumName(orderTypeNames[:], int(t))
}

// MarshalJSON implements json.Marshaler for OrderType.
func (t OrderType) MarshalJSON() ([]byte, error) {
	return marshalEnum(t.String())
}

// UnmarshalJSON implements json.Unmarshaler for OrderType.
func (t *OrderType) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, orderTypeNames[:], (*int)(t))
}

// TimeInForce defines how long an order remains active.
type TimeInForce int

// Time in force constants. The zero value is unset.
const (
	// GFD (good for day) expires at the end of the trading day.
	GFD TimeInForce = iota + 1
	// GTC (good till canceled) stays open until filled or canceled.
	GTC
	// IOC (immediate or cancel) cancels whatever does not fill at once.
	IOC
	// OPG executes at the market open only.
	OPG
)

var timeInForceNames = [...]string{"", "gfd", "gtc", "ioc", "opg"}

// String returns the wire form of the time in force.
func (t TimeInForce) String() string {
	return enumName(timeInForceNames[:], int(t))
}

// MarshalJSON implements json.Marshaler for TimeInForce.
func (t TimeInForce) MarshalJSON() ([]byte, error) {
	return marshalEnum(t.String())
}

// UnmarshalJSON implements json.Unmarshaler for TimeInForce.
func (t *TimeInForce) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, timeInForceNames[:], (*int)(t))
}

// Trigger decides when an order becomes active.
type Trigger int

// Trigger constants. The zero value is unset.
const (
	TriggerImmediate Trigger = iota + 1
	TriggerStop
)

var triggerNames = [...]string{"", "immediate", "stop"}

// String returns the wire form of the trigger.
func (t Trigger) String() string {
	return enumName(triggerNames[:], int(t))
}

// MarshalJSON implements json.Marshaler for Trigger.
func (t Trigger) MarshalJSON() ([]byte, error) {
	return marshalEnum(t.String())
}

// UnmarshalJSON implements json.Unmarshaler for Trigger.
func (t *Trigger) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, triggerNames[:], (*int)(t))
}

// OrderState is the lifecycle state of a placed order.
type OrderState int

// Order state constants. StateUnknown covers states this package does not
// recognise.
const (
	StateUnknown OrderState = iota
	StateQueued
	StateUnconfirmed
	StateConfirmed
	StatePartiallyFilled
	StateFilled
	StateRejected
	StateCancelled
	StateFailed
)

var orderStateNames = [...]string{
	"", "queued", "unconfirmed", "confirmed", "partially_filled",
	"filled", "rejected", "cancelled", "failed",
}

// String returns the wire form of the state.
func (s OrderState) String() string {
	return enumName(orderStateNames[:], int(s))
}

// IsTerminal reports whether the order can no longer change.
func (s OrderState) IsTerminal() bool {
	return s == StateFilled || s == StateRejected || s == StateCancelled || s == StateFailed
}

// MarshalJSON implements json.Marshaler for OrderState.
func (s OrderState) MarshalJSON() ([]byte, error) {
	return marshalEnum(s.String())
}

// UnmarshalJSON implements json.Unmarshaler for OrderState.
func (s *OrderState) UnmarshalJSON(data []byte) error {
	return unmarshalEnum(data, orderStateNames[:], (*int)(s))
}

func enumName(names []string, v int) string {
	if v < 0 || v >= len(names) {
		return ""
	}
	return names[v]
}

func marshalEnum(name string) ([]byte, error) {
	if name == "" {
		return []byte("null"), nil
	}
	return sonic.Marshal(name)
}

// unmarshalEnum accepts the name in any case; null and unknown names
// reset dst to zero.
func unmarshalEnum(data []byte, names []string, dst *int) error {
	var name *string
	if err := sonic.Unmarshal(data, &name); err != nil {
		return err
	}
	*dst = 0
	if name == nil {
		return nil
	}
	for i, n := range names {
		if n != "" && strings.EqualFold(n, *name) {
			*dst = i
			return nil
		}
	}
	return nil
}
