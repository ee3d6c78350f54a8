package core

import (
	"maps"
	"net/url"
	"regexp"
)

// Params is a set of string parameters keyed by name.
type Params map[string]string

// Void is the result of calls that return no content.
type Void struct{}

// Request describes one API call: verb, URL template, parameters and the
// shape of the expected result. The decode target itself is chosen by the
// caller of dispatch.Do; NoContent marks calls whose body is ignored.
type Request struct {
	Verb          Verb          `json:"verb"`
	URL           string        `json:"url"`
	Headers       Params        `json:"headers,omitempty"`
	Query         Params        `json:"query,omitempty"`
	Fields        Params        `json:"fields,omitempty"`
	Route         Params        `json:"route,omitempty"`
	NoContent     bool          `json:"no_content"`
	RequireAuth   bool          `json:"require_auth"`
	AuthPlacement AuthPlacement `json:"auth_placement"`
}

var routePlaceholder = regexp.MustCompile(`\{([^{}]+)\}`)

func NewRequest(verb Verb, rawURL string) *Request {
	return &Request{
		Verb:    verb,
		URL:     rawURL,
		Headers: make(Params),
		Query:   make(Params),
		Fields:  make(Params),
		Route:   make(Params),
	}
}

// Get is shorthand for NewRequest(VerbGet, rawURL).
func Get(rawURL string) *Request {
	return NewRequest(VerbGet, rawURL)
}

// Post is shorthand for NewRequest(VerbPost, rawURL).
func Post(rawURL string) *Request {
	return NewRequest(VerbPost, rawURL)
}

func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(Params)
	}
	r.Headers[key] = value
	return r
}

func (r *Request) SetQuery(key, value string) *Request {
	if r.Query == nil {
		r.Query = make(Params)
	}
	r.Query[key] = value
	return r
}

func (r *Request) SetQueryParams(params Params) *Request {
	if r.Query == nil {
		r.Query = make(Params)
	}
	maps.Copy(r.Query, params)
	return r
}

// SetField adds a form field. Fields are only sent with POST.
func (r *Request) SetField(key, value string) *Request {
	if r.Fields == nil {
		r.Fields = make(Params)
	}
	r.Fields[key] = value
	return r
}

func (r *Request) SetFields(params Params) *Request {
	if r.Fields == nil {
		r.Fields = make(Params)
	}
	maps.Copy(r.Fields, params)
	return r
}

// SetRoute binds a {key} placeholder in the URL template.
func (r *Request) SetRoute(key, value string) *Request {
	if r.Route == nil {
		r.Route = make(Params)
	}
	r.Route[key] = value
	return r
}

func (r *Request) SetNoContent(noContent bool) *Request {
	r.NoContent = noContent
	return r
}

func (r *Request) SetAuthPlacement(p AuthPlacement) *Request {
	r.AuthPlacement = p
	return r
}

// AddAuthToken marks the request as authenticated after checking that src
// currently holds a token. The token itself is written by the dispatcher
// when the request is sent. On failure the request is left unchanged.
func (r *Request) AddAuthToken(src TokenSource) error {
	if src == nil {
		return NewError(ErrorTypeNotAuthenticated, "no session to take a token from")
	}
	if _, err := src.RequireToken(); err != nil {
		return err
	}
	r.RequireAuth = true
	return nil
}

// Placeholders returns the route placeholder names found in the URL template.
func (r *Request) Placeholders() []string {
	matches := routePlaceholder.FindAllStringSubmatch(r.URL, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, m[1])
	}
	return names
}

// Validate reports a malformed descriptor: an empty or relative URL, or a
// route placeholder without a value.
func (r *Request) Validate() error {
	if r.URL == "" {
		return NewError(ErrorTypeInvalidRequest, "request url is empty")
	}
	u, err := url.Parse(routePlaceholder.ReplaceAllString(r.URL, "x"))
	if err != nil {
		return WrapError(ErrorTypeInvalidRequest, "parse request url", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return Errorf(ErrorTypeInvalidRequest, "request url %q is not absolute", r.URL)
	}
	for _, name := range r.Placeholders() {
		if _, ok := r.Route[name]; !ok {
			return Errorf(ErrorTypeInvalidRequest, "route parameter %q is not set", name)
		}
	}
	return nil
}

// Clone returns a deep copy, so callers can derive variants without
// touching a descriptor that may be in flight.
func (r *Request) Clone() *Request {
	c := *r
	c.Headers = maps.Clone(r.Headers)
	c.Query = maps.Clone(r.Query)
	c.Fields = maps.Clone(r.Fields)
	c.Route = maps.Clone(r.Route)
	return &c
}
