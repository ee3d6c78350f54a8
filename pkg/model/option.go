package model

import "time"

// OptionPosition is an aggregate options position, possibly spanning
// several legs of a strategy.
type OptionPosition struct {
	ID                       string      `json:"id"`
	Account                  string      `json:"account"`
	Chain                    string      `json:"chain"`
	Symbol                   string      `json:"symbol"`
	Strategy                 string      `json:"strategy"`
	Direction                string      `json:"direction"`
	IntradayDirection        string      `json:"intraday_direction"`
	Quantity                 Decimal     `json:"quantity"`
	IntradayQuantity         Decimal     `json:"intraday_quantity"`
	AverageOpenPrice         Decimal     `json:"average_open_price"`
	IntradayAverageOpenPrice Decimal     `json:"intraday_average_open_price"`
	TradeValueMultiplier     Decimal     `json:"trade_value_multiplier"`
	Legs                     []OptionLeg `json:"legs"`
	CreatedAt                time.Time   `json:"created_at"`
	UpdatedAt                time.Time   `json:"updated_at"`
}

// OptionLeg is one contract of an OptionPosition.
type OptionLeg struct {
	ID             string  `json:"id"`
	Position       string  `json:"position"`
	PositionType   string  `json:"position_type"`
	Option         string  `json:"option"`
	OptionType     string  `json:"option_type"`
	ExpirationDate string  `json:"expiration_date"`
	StrikePrice    Decimal `json:"strike_price"`
	RatioQuantity  int     `json:"ratio_quantity"`
}
