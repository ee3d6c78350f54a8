package robinhood

import (
	"context"

	"robinhood/pkg/core"
	"robinhood/pkg/dispatch"
	"robinhood/pkg/model"
	"robinhood/pkg/order"
	"robinhood/pkg/pagination"
)

func fetch[T any](ctx context.Context, c *Client, req *core.Request) (*T, error) {
	v, err := dispatch.Do[T](ctx, c.dispatcher, req)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func list[T any](ctx context.Context, c *Client, req *core.Request) (*pagination.Iterator[T], error) {
	env, err := fetch[pagination.Envelope[T]](ctx, c, req)
	if err != nil {
		return nil, err
	}
	return pagination.NewIterator(env, c.dispatcher, req.RequireAuth), nil
}

// GetAccountData returns the primary account of the logged-in user.
func (c *Client) GetAccountData(ctx context.Context) (*model.Account, error) {
	env, err := fetch[model.AccountEnvelope](ctx, c, c.endpoints.Accounts())
	if err != nil {
		return nil, err
	}
	account := env.Primary()
	if account.IsNone() {
		return nil, core.NewError(core.ErrorTypeAccountResolution, "no account number in accounts response")
	}
	a := account.Unwrap()
	return &a, nil
}

func (c *Client) GetBasicUserInfo(ctx context.Context) (*model.BasicUserInfo, error) {
	return fetch[model.BasicUserInfo](ctx, c, c.endpoints.BasicUserInfo())
}

func (c *Client) GetAccountHolderInfo(ctx context.Context) (*model.AccountHolderInfo, error) {
	return fetch[model.AccountHolderInfo](ctx, c, c.endpoints.AccountHolderInfo())
}

func (c *Client) GetAccountHolderAffiliation(ctx context.Context) (*model.AccountHolderAffiliation, error) {
	return fetch[model.AccountHolderAffiliation](ctx, c, c.endpoints.AccountHolderAffiliation())
}

func (c *Client) GetAccountHolderEmployment(ctx context.Context) (*model.AccountHolderEmployment, error) {
	return fetch[model.AccountHolderEmployment](ctx, c, c.endpoints.AccountHolderEmployment())
}

func (c *Client) GetAccountHolderInvestment(ctx context.Context) (*model.AccountHolderInvestment, error) {
	return fetch[model.AccountHolderInvestment](ctx, c, c.endpoints.AccountHolderInvestment())
}

// GetOptionPositions iterates over the user's aggregate option positions.
func (c *Client) GetOptionPositions(ctx context.Context) (*pagination.Iterator[model.OptionPosition], error) {
	return list[model.OptionPosition](ctx, c, c.endpoints.OptionPositions())
}

// GetTickerFundamental does not require a login.
func (c *Client) GetTickerFundamental(ctx context.Context, ticker string) (*model.Fundamental, error) {
	return fetch[model.Fundamental](ctx, c, c.endpoints.TickerFundamental(ticker))
}

// GetInstrumentBySymbol returns the instrument listed under symbol, or an
// ErrorTypeNotFound error when there is none.
func (c *Client) GetInstrumentBySymbol(ctx context.Context, symbol string) (*model.Instrument, error) {
	env, err := fetch[pagination.Envelope[model.Instrument]](ctx, c, c.endpoints.InstrumentBySymbol(symbol))
	if err != nil {
		return nil, err
	}
	if len(env.Results) == 0 {
		return nil, core.Errorf(core.ErrorTypeNotFound, "ticker %q not found", symbol)
	}
	return &env.Results[0], nil
}

// SearchInstruments iterates over instruments matching keyword.
func (c *Client) SearchInstruments(ctx context.Context, keyword string) (*pagination.Iterator[model.Instrument], error) {
	return list[model.Instrument](ctx, c, c.endpoints.SearchInstruments(keyword))
}

// GetOrders iterates over the user's order history, newest first.
func (c *Client) GetOrders(ctx context.Context) (*pagination.Iterator[model.Order], error) {
	return list[model.Order](ctx, c, c.endpoints.Orders())
}

// PlaceOrder submits o for the logged-in account. An order without an
// instrument URL has it looked up by symbol first; o itself is not
// modified.
func (c *Client) PlaceOrder(ctx context.Context, o *order.Order) (*model.Order, error) {
	if o == nil {
		return nil, core.NewError(core.ErrorTypeInvalidRequest, "order is required")
	}
	if err := o.Validate(); err != nil {
		return nil, err
	}

	accountID, err := c.state.RequireAccountID()
	if err != nil {
		return nil, err
	}

	placed := *o
	if placed.InstrumentURL == "" {
		instrument, err := c.GetInstrumentBySymbol(ctx, o.Symbol)
		if err != nil {
			return nil, err
		}
		placed.InstrumentURL = instrument.URL
	}

	result, err := fetch[model.Order](ctx, c, c.endpoints.PlaceOrder(&placed, c.endpoints.AccountURL(accountID)))
	if err != nil {
		c.logger.Error().Err(err).Str("order", placed.String()).Msg("place order failed")
		return nil, err
	}

	c.logger.Info().
		Str("order", placed.String()).
		Str("id", result.ID).
		Str("ref_id", placed.RefID.String()).
		Msg("order placed")
	return result, nil
}
