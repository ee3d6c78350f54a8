package model

// Fundamental is the fundamentals snapshot of one ticker.
type Fundamental struct {
	Instrument    string  `json:"instrument"`
	Description   string  `json:"description"`
	Open          Decimal `json:"open"`
	High          Decimal `json:"high"`
	Low           Decimal `json:"low"`
	Volume        Decimal `json:"volume"`
	AverageVolume Decimal `json:"average_volume"`
	High52Weeks   Decimal `json:"high_52_weeks"`
	Low52Weeks    Decimal `json:"low_52_weeks"`
	DividendYield Decimal `json:"dividend_yield"`
	MarketCap     Decimal `json:"market_cap"`
	PERatio       Decimal `json:"pe_ratio"`
}

// Instrument is a tradable security.
type Instrument struct {
	ID                 string  `json:"id"`
	URL                string  `json:"url"`
	Symbol             string  `json:"symbol"`
	Name               string  `json:"name"`
	SimpleName         string  `json:"simple_name"`
	Type               string  `json:"type"`
	Country            string  `json:"country"`
	Market             string  `json:"market"`
	Quote              string  `json:"quote"`
	Fundamentals       string  `json:"fundamentals"`
	State              string  `json:"state"`
	Tradability        string  `json:"tradability"`
	Tradeable          bool    `json:"tradeable"`
	BloombergUnique    string  `json:"bloomberg_unique"`
	ListDate           string  `json:"list_date"`
	MinTickSize        Decimal `json:"min_tick_size"`
	DayTradeRatio      Decimal `json:"day_trade_ratio"`
	MaintenanceRatio   Decimal `json:"maintenance_ratio"`
	MarginInitialRatio Decimal `json:"margin_initial_ratio"`
}
