package model

import "time"

// Order is an order as reported by the API after placement.
type Order struct {
	ID                 string      `json:"id"`
	RefID              string      `json:"ref_id"`
	URL                string      `json:"url"`
	Account            string      `json:"account"`
	Instrument         string      `json:"instrument"`
	Position           string      `json:"position"`
	Cancel             string      `json:"cancel"`
	Side               Side        `json:"side"`
	Type               OrderType   `json:"type"`
	TimeInForce        TimeInForce `json:"time_in_force"`
	Trigger            Trigger     `json:"trigger"`
	State              OrderState  `json:"state"`
	Price              NullDecimal `json:"price"`
	StopPrice          NullDecimal `json:"stop_price"`
	Quantity           Decimal     `json:"quantity"`
	CumulativeQuantity Decimal     `json:"cumulative_quantity"`
	AveragePrice       NullDecimal `json:"average_price"`
	Fees               Decimal     `json:"fees"`
	RejectReason       string      `json:"reject_reason"`
	Executions         []Execution `json:"executions"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
	LastTransactionAt  time.Time   `json:"last_transaction_at"`
}

// Execution is one fill of an Order.
type Execution struct {
	ID             string    `json:"id"`
	Price          Decimal   `json:"price"`
	Quantity       Decimal   `json:"quantity"`
	SettlementDate string    `json:"settlement_date"`
	Timestamp      time.Time `json:"timestamp"`
}

// Cancelable reports whether the API still offers a cancel link for o.
func (o *Order) Cancelable() bool {
	return o.Cancel != "" && !o.State.IsTerminal()
}
