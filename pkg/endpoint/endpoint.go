// Package endpoint builds the request descriptors for each API resource.
//
// Builders only describe requests. Authenticated descriptors carry
// RequireAuth; the token itself is attached by the dispatcher at send time.
package endpoint

import (
	"strings"

	"robinhood/pkg/core"
	"robinhood/pkg/order"
)

// Resource paths relative to the base URL.
const (
	PathLogin                    = "/api-token-auth/"
	PathLogout                   = "/api-token-logout/"
	PathAccounts                 = "/accounts/"
	PathUser                     = "/user/"
	PathAccountHolderInfo        = "/user/basic_info/"
	PathAccountHolderAffiliation = "/user/additional_info/"
	PathAccountHolderEmployment  = "/user/employment/"
	PathAccountHolderInvestment  = "/user/investment_profile/"
	PathFundamental              = "/fundamentals/{ticker}/"
	PathInstruments              = "/instruments/"
	PathOptionPositions          = "/options/aggregate_positions/"
	PathOrders                   = "/orders/"
)

// Endpoints builds descriptors against one base URL.
type Endpoints struct {
	base string
}

// New returns builders rooted at baseURL. A trailing slash is ignored.
func New(baseURL string) *Endpoints {
	return &Endpoints{base: strings.TrimRight(baseURL, "/")}
}

// BaseURL returns the root every descriptor is built on.
func (e *Endpoints) BaseURL() string {
	return e.base
}

func (e *Endpoints) url(path string) string {
	return e.base + path
}

func (e *Endpoints) authGet(path string) *core.Request {
	req := core.Get(e.url(path))
	req.RequireAuth = true
	return req
}

// Login exchanges credentials for a token. Decodes into model.Token.
func (e *Endpoints) Login(username, password string) *core.Request {
	return core.Post(e.url(PathLogin)).
		SetField("username", username).
		SetField("password", password)
}

// Logout revokes the current token. The response body is ignored.
func (e *Endpoints) Logout() *core.Request {
	req := core.Post(e.url(PathLogout)).SetNoContent(true)
	req.RequireAuth = true
	return req
}

// Accounts lists the user's accounts. Decodes into model.AccountEnvelope.
func (e *Endpoints) Accounts() *core.Request {
	return e.authGet(PathAccounts)
}

// AccountURL is the resource URL of the account numbered number, as
// referenced by orders.
func (e *Endpoints) AccountURL(number string) string {
	return e.url(PathAccounts) + number + "/"
}

// BasicUserInfo decodes into model.BasicUserInfo.
func (e *Endpoints) BasicUserInfo() *core.Request {
	return e.authGet(PathUser)
}

// AccountHolderInfo decodes into model.AccountHolderInfo.
func (e *Endpoints) AccountHolderInfo() *core.Request {
	return e.authGet(PathAccountHolderInfo)
}

// AccountHolderAffiliation decodes into model.AccountHolderAffiliation.
func (e *Endpoints) AccountHolderAffiliation() *core.Request {
	return e.authGet(PathAccountHolderAffiliation)
}

// AccountHolderEmployment decodes into model.AccountHolderEmployment.
func (e *Endpoints) AccountHolderEmployment() *core.Request {
	return e.authGet(PathAccountHolderEmployment)
}

// AccountHolderInvestment decodes into model.AccountHolderInvestment.
func (e *Endpoints) AccountHolderInvestment() *core.Request {
	return e.authGet(PathAccountHolderInvestment)
}

// TickerFundamental decodes into model.Fundamental.
func (e *Endpoints) TickerFundamental(ticker string) *core.Request {
	return core.Get(e.url(PathFundamental)).SetRoute("ticker", strings.ToUpper(ticker))
}

// InstrumentBySymbol decodes into pagination.Envelope[model.Instrument];
// an empty result means the symbol is unknown.
func (e *Endpoints) InstrumentBySymbol(symbol string) *core.Request {
	return core.Get(e.url(PathInstruments)).SetQuery("symbol", strings.ToUpper(symbol))
}

// SearchInstruments decodes into pagination.Envelope[model.Instrument].
func (e *Endpoints) SearchInstruments(keyword string) *core.Request {
	return core.Get(e.url(PathInstruments)).SetQuery("query", keyword)
}

// OptionPositions decodes into pagination.Envelope[model.OptionPosition].
func (e *Endpoints) OptionPositions() *core.Request {
	return e.authGet(PathOptionPositions)
}

// Orders decodes into pagination.Envelope[model.Order].
func (e *Endpoints) Orders() *core.Request {
	return e.authGet(PathOrders)
}

// PlaceOrder submits o for the account at accountURL. Decodes into
// model.Order.
func (e *Endpoints) PlaceOrder(o *order.Order, accountURL string) *core.Request {
	req := core.Post(e.url(PathOrders)).SetFields(o.Fields(accountURL))
	req.RequireAuth = true
	return req
}

// NextPage fetches the page at an absolute cursor URL.
func NextPage(url string, requireAuth bool) *core.Request {
	req := core.Get(url)
	req.RequireAuth = requireAuth
	return req
}
