package model

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/bytedance/sonic"
	"github.com/moznion/go-optional"
)

// Token is the body of a successful login.
type Token struct {
	Token       string `json:"token"`
	MFARequired bool   `json:"mfa_required"`
	MFAType     string `json:"mfa_type"`
}

// Account is a brokerage account owned by the logged-in user.
type Account struct {
	URL                       string    `json:"url"`
	AccountNumber             string    `json:"account_number"`
	Type                      string    `json:"type"`
	User                      string    `json:"user"`
	Portfolio                 string    `json:"portfolio"`
	Positions                 string    `json:"positions"`
	Cash                      Decimal   `json:"cash"`
	BuyingPower               Decimal   `json:"buying_power"`
	CashHeldForOrders         Decimal   `json:"cash_held_for_orders"`
	UnclearedDeposits         Decimal   `json:"uncleared_deposits"`
	UnsettledFunds            Decimal   `json:"unsettled_funds"`
	SMA                       Decimal   `json:"sma"`
	Deactivated               bool      `json:"deactivated"`
	DepositHalted             bool      `json:"deposit_halted"`
	WithdrawalHalted          bool      `json:"withdrawal_halted"`
	OnlyPositionClosingTrades bool      `json:"only_position_closing_trades"`
	CreatedAt                 time.Time `json:"created_at"`
	UpdatedAt                 time.Time `json:"updated_at"`
}

// AccountEnvelope is the body of the accounts resource. The API has sent
// "results" both as a single object and as an array; both decode into
// Accounts.
type AccountEnvelope struct {
	Accounts []Account
}

// UnmarshalJSON implements json.Unmarshaler for AccountEnvelope.
func (e *AccountEnvelope) UnmarshalJSON(data []byte) error {
	var raw struct {
		Results json.RawMessage `json:"results"`
	}
	if err := sonic.Unmarshal(data, &raw); err != nil {
		return err
	}

	e.Accounts = nil
	results := bytes.TrimSpace(raw.Results)
	switch {
	case len(results) == 0, bytes.Equal(results, []byte("null")):
		return nil
	case results[0] == '[':
		return sonic.Unmarshal(results, &e.Accounts)
	default:
		var account Account
		if err := sonic.Unmarshal(results, &account); err != nil {
			return err
		}
		e.Accounts = []Account{account}
		return nil
	}
}

// Primary returns the first account carrying an account number.
func (e *AccountEnvelope) Primary() optional.Option[Account] {
	for _, a := range e.Accounts {
		if a.AccountNumber != "" {
			return optional.Some(a)
		}
	}
	return optional.None[Account]()
}
